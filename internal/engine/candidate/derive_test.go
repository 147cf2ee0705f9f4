package candidate

import (
	"testing"
	"time"

	"github.com/anatolykoptev/go_candidates/internal/engine/linkedin"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

func janeDoc() *linkedin.Document {
	return &linkedin.Document{
		PersonalInfo: linkedin.PersonalInfo{
			Name:     "Jane Doe",
			Headline: "Senior Engineer at Acme Corp",
			Location: "Berlin",
		},
		Experience: []linkedin.Experience{
			{Title: "Senior Engineer", Company: "Acme Corp", DateRange: "Jan 2020 - Present"},
			{Title: "Software Engineer", Company: "Globex", DateRange: "Mar 2016 - Dec 2019"},
			{Title: "Intern", Company: "Initech", EmploymentType: "Internship", DateRange: "Jun 2015 - Aug 2015"},
		},
		Education: []linkedin.Education{
			{School: "MIT", Degree: "Bachelor of Science - BS", FieldOfStudy: "Computer Science", GraduationYear: "2016"},
		},
		Skills: []linkedin.Skill{{Name: "Go"}, {Name: "SQL"}},
	}
}

func TestFromDocument(t *testing.T) {
	f := FromDocument(janeDoc(), testNow, NewTitleNormalizer())

	want := map[string]string{
		KeyFullName:                          "Jane Doe",
		KeyLocation:                          "Berlin",
		KeyCurrentCompany:                    "Acme Corp",
		KeyJobTitle:                          "Senior Engineer",
		KeyCurrentCompanyStartDate:           "Jan 2020",
		KeyCurrentCompanyEndDate:             "Present",
		KeyCurrentCompanyTenureYears:         "4",
		KeyCurrentCompanyTenureMonths:        "6",
		KeyPreviousTargetCompany:             "Globex",
		KeyPreviousTargetCompanyStartDate:    "Mar 2016",
		KeyPreviousTargetCompanyEndDate:      "Dec 2019",
		KeyPreviousTargetCompanyTenureYears:  "3",
		KeyPreviousTargetCompanyTenureMonths: "10",
		KeyTenurePreviousTarget:              "2016 - 2019",
		KeyPreviousTitles:                    "Software Engineer; Intern",
		KeyTotalYearsExperience:              "8",
		KeyDegrees:                           "Bachelor of Science - BS",
		KeyUndergradGraduationYear:           "2016",
		KeyExperienceCount:                   "3",
		KeyEducationCount:                    "1",
		KeySkillsCount:                       "2",
	}
	for k, v := range want {
		assert.Equal(t, v, f.Str(k), k)
	}
	assert.Equal(t, []string{"Acme Corp", "Globex", "Initech"}, f.Get(KeyCompanies).Items())
	assert.Equal(t, []string{"MIT"}, f.Get(KeyUniversities).Items())
	assert.Equal(t, []string{"Computer Science"}, f.Get(KeyFieldsOfStudy).Items())
}

func TestFromDocumentHeadlineFallback(t *testing.T) {
	doc := &linkedin.Document{PersonalInfo: linkedin.PersonalInfo{
		Name:     "John Roe",
		Headline: "Staff Engineer at Initech | Go, Kubernetes",
	}}
	f := FromDocument(doc, testNow, nil)
	assert.Equal(t, "Staff Engineer", f.Str(KeyJobTitle))
	assert.Equal(t, "Initech", f.Str(KeyCurrentCompany))
	assert.False(t, f.Has(KeyExperienceCount))
}

func TestFromDocumentDropsSiteChrome(t *testing.T) {
	doc := &linkedin.Document{PersonalInfo: linkedin.PersonalInfo{
		Name:     "Join LinkedIn",
		Location: "Sign in",
	}}
	f := FromDocument(doc, testNow, nil)
	assert.False(t, f.Has(KeyFullName))
	assert.False(t, f.Has(KeyLocation))
}

func TestFromDocumentNameFromRawText(t *testing.T) {
	doc := &linkedin.Document{
		RawText:      "Join LinkedIn\nJane Doe\nSenior Engineer at Acme",
		PersonalInfo: linkedin.PersonalInfo{Name: "Join LinkedIn"},
	}
	assert.Equal(t, "Jane Doe", FromDocument(doc, testNow, nil).Str(KeyFullName))
}

func TestBuildIgnoresChromeName(t *testing.T) {
	t.Run("derived name kept", func(t *testing.T) {
		sub := &Submission{
			URL:    "https://www.linkedin.com/in/jane",
			Fields: Fields{KeyFullName: Scalar("Join LinkedIn")},
		}
		f := Build(sub, janeDoc(), testNow, nil)
		assert.Equal(t, "Jane Doe", f.Str(KeyFullName))
	})

	t.Run("no other source goes to review", func(t *testing.T) {
		sub := &Submission{
			URL: "https://www.linkedin.com/in/jane",
			Fields: Fields{
				KeyFullName:       Scalar("Join LinkedIn"),
				KeyJobTitle:       Scalar("CTO"),
				KeyCurrentCompany: Scalar("Acme"),
				KeyLocation:       Scalar("Berlin"),
				KeyUniversities:   List("MIT"),
			},
		}
		r := Finalize(Build(sub, nil, testNow, nil), "", testNow)
		assert.Empty(t, r.FullName)
		assert.Equal(t, StatusNeedsReview, r.Status)
	})
}

func TestFromDocumentNil(t *testing.T) {
	assert.Empty(t, FromDocument(nil, testNow, nil))
}

func TestTotalYearsExperience(t *testing.T) {
	tests := []struct {
		name string
		exps []linkedin.Experience
		want int
	}{
		{"empty", nil, 0},
		{"overlap counted once", []linkedin.Experience{
			{Title: "A", DateRange: "Jan 2018 - Dec 2019"},
			{Title: "B", DateRange: "Jan 2019 - Dec 2020"},
		}, 3},
		{"part time skipped", []linkedin.Experience{
			{Title: "A", DateRange: "Jan 2018 - Dec 2019"},
			{Title: "B", EmploymentType: "Part-time", DateRange: "Jan 2010 - Dec 2017"},
		}, 2},
		{"current runs to now", []linkedin.Experience{
			{Title: "A", DateRange: "Jun 2022 - Present"},
		}, 2},
		{"no start date skipped", []linkedin.Experience{
			{Title: "A", IsCurrent: true},
		}, 0},
		{"year-only range", []linkedin.Experience{
			{Title: "A", DateRange: "2010 - 2014"},
		}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalYearsExperience(tt.exps, testNow))
		})
	}
}

func TestBuildSubmissionOverridesDerived(t *testing.T) {
	sub := &Submission{
		URL: "https://www.linkedin.com/in/jane",
		Fields: Fields{
			KeyCurrentCompany: Scalar("Override Inc"),
			"Company 1":       Scalar("Umbrella"),
		},
	}
	f := Build(sub, janeDoc(), testNow, nil)

	assert.Equal(t, "Override Inc", f.Str(KeyCurrentCompany))
	assert.Equal(t, "Senior Engineer", f.Str(KeyJobTitle))
	assert.Equal(t, "https://www.linkedin.com/in/jane", f.Str(KeyLinkedinURL))

	r := Finalize(f, `{"x":1}`, testNow)
	assert.Equal(t, []string{"Acme Corp", "Globex", "Initech", "Umbrella"}, r.Companies)
	assert.Equal(t, StatusActive, r.Status)
	assert.Equal(t, `{"x":1}`, r.RawData)
	assert.Equal(t, testNow, r.CreatedAt)
	assert.Equal(t, r.CreatedAt, r.UpdatedAt)
}

func TestFinalizeNeedsReview(t *testing.T) {
	f := Fields{KeyLinkedinURL: Scalar("https://www.linkedin.com/in/x"), KeyFullName: Scalar("X")}
	r := Finalize(f, "", testNow)
	assert.Equal(t, StatusNeedsReview, r.Status)
}
