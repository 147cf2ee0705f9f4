package candidate

import (
	"encoding/json"
	"time"
)

// Status is the review state assigned by the quality gate.
type Status string

const (
	StatusActive      Status = "ACTIVE"
	StatusNeedsReview Status = "NEEDS_REVIEW"
)

// Record is the persisted candidate row, keyed by LinkedinURL.
type Record struct {
	LinkedinURL                       string    `json:"linkedinUrl"`
	FullName                          string    `json:"fullName"`
	CurrentCompany                    string    `json:"currentCompany,omitempty"`
	CurrentCompanyStartDate           string    `json:"currentCompanyStartDate,omitempty"`
	CurrentCompanyEndDate             string    `json:"currentCompanyEndDate,omitempty"`
	CurrentCompanyTenureYears         string    `json:"currentCompanyTenureYears,omitempty"`
	CurrentCompanyTenureMonths        string    `json:"currentCompanyTenureMonths,omitempty"`
	JobTitle                          string    `json:"jobTitle,omitempty"`
	Location                          string    `json:"location,omitempty"`
	PreviousTargetCompany             string    `json:"previousTargetCompany,omitempty"`
	PreviousTargetCompanyStartDate    string    `json:"previousTargetCompanyStartDate,omitempty"`
	PreviousTargetCompanyEndDate      string    `json:"previousTargetCompanyEndDate,omitempty"`
	PreviousTargetCompanyTenureYears  string    `json:"previousTargetCompanyTenureYears,omitempty"`
	PreviousTargetCompanyTenureMonths string    `json:"previousTargetCompanyTenureMonths,omitempty"`
	TenurePreviousTarget              string    `json:"tenurePreviousTarget,omitempty"`
	PreviousTitles                    string    `json:"previousTitles,omitempty"`
	TotalYearsExperience              string    `json:"totalYearsExperience,omitempty"`
	Companies                         []string  `json:"companies,omitempty"`
	Universities                      []string  `json:"universities,omitempty"`
	FieldsOfStudy                     []string  `json:"fieldsOfStudy,omitempty"`
	Degrees                           string    `json:"degrees,omitempty"`
	UndergradGraduationYear           string    `json:"undergradGraduationYear,omitempty"`
	Certifications                    string    `json:"certifications,omitempty"`
	Languages                         string    `json:"languages,omitempty"`
	Projects                          string    `json:"projects,omitempty"`
	Publications                      string    `json:"publications,omitempty"`
	VolunteerOrganizations            string    `json:"volunteerOrganizations,omitempty"`
	Courses                           string    `json:"courses,omitempty"`
	HonorsAwards                      string    `json:"honorsAwards,omitempty"`
	Organizations                     string    `json:"organizations,omitempty"`
	Patents                           string    `json:"patents,omitempty"`
	TestScores                        string    `json:"testScores,omitempty"`
	Emails                            string    `json:"emails,omitempty"`
	Phones                            string    `json:"phones,omitempty"`
	SocialLinks                       string    `json:"socialLinks,omitempty"`
	SkillsCount                       string    `json:"skillsCount,omitempty"`
	ExperienceCount                   string    `json:"experienceCount,omitempty"`
	EducationCount                    string    `json:"educationCount,omitempty"`
	RawData                           string    `json:"rawData,omitempty"`
	Status                            Status    `json:"status"`
	Summary                           string    `json:"summary,omitempty"`
	CreatedAt                         time.Time `json:"createdAt,omitzero"`
	UpdatedAt                         time.Time `json:"updatedAt,omitzero"`
}

// encodeList stores a list column as a JSON array, or NULL when empty.
func encodeList(items []string) *string {
	if len(items) == 0 {
		return nil
	}
	b, _ := json.Marshal(items)
	s := string(b)
	return &s
}

// decodeList reverses encodeList.
func decodeList(s *string) []string {
	if s == nil || *s == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(*s), &out); err != nil {
		return nil
	}
	return out
}
