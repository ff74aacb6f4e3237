package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveRole(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  Role
	}{
		{
			name:  "institutional email with roll-number prefix is a student",
			email: "f20220123@hyderabad.bits-pilani.ac.in",
			want:  RoleStudent,
		},
		{
			name:  "institutional email without the prefix is other",
			email: "admissions@hyderabad.bits-pilani.ac.in",
			want:  RoleOther,
		},
		{
			name:  "outside email is a teacher",
			email: "prof.sharma@gmail.com",
			want:  RoleTeacher,
		},
		{
			name:  "outside email starting with f is still a teacher",
			email: "frank@example.com",
			want:  RoleTeacher,
		},
		{
			name:  "empty email is a teacher",
			email: "",
			want:  RoleTeacher,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DeriveRole(tt.email))
		})
	}
}
