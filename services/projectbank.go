package services

import (
	"strconv"

	"github.com/sdp-portal/projectbank-backend/models"
)

// Eligibility verdicts rendered in the project bank.
const (
	Eligible    = "Eligible"
	NotEligible = "Not Eligible"
)

// UnknownTeacher is shown when a project's teacherId matches no directory entry.
const UnknownTeacher = "Unknown"

// ProjectBankEntry is one display-ready row of the student-facing project bank:
// the project's fields joined with its teacher's name and department and the
// student's eligibility verdict.
type ProjectBankEntry struct {
	ProjectID          string   `json:"projectId"`
	ProjectName        string   `json:"project_name"`
	ProjectDescription string   `json:"project_description"`
	ProjectType        string   `json:"project_type"`
	ProjectDomain      string   `json:"project_domain"`
	TeacherName        string   `json:"teacher_name"`
	Department         string   `json:"department"`
	Prerequisites      []string `json:"pre_requisites"`
	CGCutoff           string   `json:"cg_cutoff"`
	CGEligibility      string   `json:"cg_eligibility"`
}

// CGEligibility compares a student's CGPA against a project's cutoff. Both
// values travel as free-text form input, so either may fail to parse; any
// parse failure yields NotEligible. This mirrors the frontend's expectation
// that an unparseable cutoff never admits anyone.
func CGEligibility(cg, cutoff string) string {
	cgValue, err := strconv.ParseFloat(cg, 64)
	if err != nil {
		return NotEligible
	}
	cutoffValue, err := strconv.ParseFloat(cutoff, 64)
	if err != nil {
		return NotEligible
	}
	if cgValue >= cutoffValue {
		return Eligible
	}
	return NotEligible
}

// BuildProjectBank joins every project with its owning teacher and the given
// student's eligibility verdict, producing one entry per project in the order
// the projects were given. A missing teacher is not an error; the entry simply
// shows UnknownTeacher for the name and department.
func BuildProjectBank(projects []*models.Project, teachers []*models.Teacher, student *models.Student) []ProjectBankEntry {
	teachersByUserID := make(map[string]*models.Teacher, len(teachers))
	for _, teacher := range teachers {
		teachersByUserID[teacher.UserID] = teacher
	}

	entries := make([]ProjectBankEntry, 0, len(projects))
	for _, project := range projects {
		entry := ProjectBankEntry{
			ProjectID:          project.ID.String(),
			ProjectName:        project.ProjectName,
			ProjectDescription: project.ProjectDescription,
			ProjectType:        project.ProjectType,
			ProjectDomain:      project.ProjectDomain,
			TeacherName:        UnknownTeacher,
			Department:         UnknownTeacher,
			Prerequisites:      project.Prerequisites,
			CGCutoff:           project.CGCutoff,
			CGEligibility:      CGEligibility(student.CG, project.CGCutoff),
		}
		if teacher, ok := teachersByUserID[project.TeacherID]; ok {
			entry.TeacherName = teacher.Name
			entry.Department = teacher.Department
		}
		entries = append(entries, entry)
	}
	return entries
}
