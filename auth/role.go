package auth

import "strings"

// Role is the account category derived from the sign-in email.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleOther   Role = "other"
)

// institutionalDomain is the campus mail domain. Student accounts there start
// with "f" (the roll-number convention); every other institutional account is
// staff of some non-teaching kind. Addresses outside the domain are treated as
// teacher accounts.
const institutionalDomain = "@hyderabad.bits-pilani.ac.in"

// DeriveRole maps a sign-in email to its Role. Kept as a pure function so the
// policy is testable without touching the OAuth flow.
func DeriveRole(email string) Role {
	if strings.Contains(email, institutionalDomain) {
		if strings.HasPrefix(email, "f") {
			return RoleStudent
		}
		return RoleOther
	}
	return RoleTeacher
}
