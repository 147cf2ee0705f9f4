package candidate

import (
	"maps"
	"slices"
)

// Canonical field keys.
const (
	KeyLinkedinURL                       = "linkedinUrl"
	KeyFullName                          = "fullName"
	KeyCurrentCompany                    = "currentCompany"
	KeyCurrentCompanyStartDate           = "currentCompanyStartDate"
	KeyCurrentCompanyEndDate             = "currentCompanyEndDate"
	KeyCurrentCompanyTenureYears         = "currentCompanyTenureYears"
	KeyCurrentCompanyTenureMonths        = "currentCompanyTenureMonths"
	KeyJobTitle                          = "jobTitle"
	KeyLocation                          = "location"
	KeyPreviousTargetCompany             = "previousTargetCompany"
	KeyPreviousTargetCompanyStartDate    = "previousTargetCompanyStartDate"
	KeyPreviousTargetCompanyEndDate      = "previousTargetCompanyEndDate"
	KeyPreviousTargetCompanyTenureYears  = "previousTargetCompanyTenureYears"
	KeyPreviousTargetCompanyTenureMonths = "previousTargetCompanyTenureMonths"
	KeyTenurePreviousTarget              = "tenurePreviousTarget"
	KeyPreviousTitles                    = "previousTitles"
	KeyTotalYearsExperience              = "totalYearsExperience"
	KeyDegrees                           = "degrees"
	KeyUndergradGraduationYear           = "undergradGraduationYear"
	KeyCertifications                    = "certifications"
	KeyLanguages                         = "languages"
	KeyProjects                          = "projects"
	KeyPublications                      = "publications"
	KeyVolunteerOrganizations            = "volunteerOrganizations"
	KeyCourses                           = "courses"
	KeyHonorsAwards                      = "honorsAwards"
	KeyOrganizations                     = "organizations"
	KeyPatents                           = "patents"
	KeyTestScores                        = "testScores"
	KeyEmails                            = "emails"
	KeyPhones                            = "phones"
	KeySocialLinks                       = "socialLinks"
	KeySkillsCount                       = "skillsCount"
	KeyExperienceCount                   = "experienceCount"
	KeyEducationCount                    = "educationCount"
	KeyCompanies                         = "companies"
	KeyUniversities                      = "universities"
	KeyFieldsOfStudy                     = "fieldsOfStudy"
)

// fieldSpec maps a canonical key to its submission column names and Record slot.
type fieldSpec struct {
	key     string
	columns []string
	ptr     func(*Record) *string
}

var scalarFields = []fieldSpec{
	{KeyLinkedinURL, []string{"Linkedin URL", "LinkedIn URL"}, func(r *Record) *string { return &r.LinkedinURL }},
	{KeyFullName, []string{"Full Name"}, func(r *Record) *string { return &r.FullName }},
	{KeyCurrentCompany, []string{"Current Company"}, func(r *Record) *string { return &r.CurrentCompany }},
	{KeyCurrentCompanyStartDate, []string{"Current Company Start Date"}, func(r *Record) *string { return &r.CurrentCompanyStartDate }},
	{KeyCurrentCompanyEndDate, []string{"Current Company End Date"}, func(r *Record) *string { return &r.CurrentCompanyEndDate }},
	{KeyCurrentCompanyTenureYears, []string{"Current Company Tenure Years"}, func(r *Record) *string { return &r.CurrentCompanyTenureYears }},
	{KeyCurrentCompanyTenureMonths, []string{"Current Company Tenure Months"}, func(r *Record) *string { return &r.CurrentCompanyTenureMonths }},
	{KeyJobTitle, []string{"Job title", "Job Title"}, func(r *Record) *string { return &r.JobTitle }},
	{KeyLocation, []string{"Location"}, func(r *Record) *string { return &r.Location }},
	{KeyPreviousTargetCompany, []string{"Previous target company"}, func(r *Record) *string { return &r.PreviousTargetCompany }},
	{KeyPreviousTargetCompanyStartDate, []string{"Previous target company Start Date"}, func(r *Record) *string { return &r.PreviousTargetCompanyStartDate }},
	{KeyPreviousTargetCompanyEndDate, []string{"Previous target company End Date"}, func(r *Record) *string { return &r.PreviousTargetCompanyEndDate }},
	{KeyPreviousTargetCompanyTenureYears, []string{"Previous target company Tenure Years"}, func(r *Record) *string { return &r.PreviousTargetCompanyTenureYears }},
	{KeyPreviousTargetCompanyTenureMonths, []string{"Previous target company Tenure Months"}, func(r *Record) *string { return &r.PreviousTargetCompanyTenureMonths }},
	{KeyTenurePreviousTarget, []string{"Tenure at previous target (Year start to year end)"}, func(r *Record) *string { return &r.TenurePreviousTarget }},
	{KeyPreviousTitles, []string{"Previous title(s)"}, func(r *Record) *string { return &r.PreviousTitles }},
	{KeyTotalYearsExperience, []string{"Total Years full time experience"}, func(r *Record) *string { return &r.TotalYearsExperience }},
	{KeyDegrees, []string{"Degrees"}, func(r *Record) *string { return &r.Degrees }},
	{KeyUndergradGraduationYear, []string{"Year of Undergrad Graduation"}, func(r *Record) *string { return &r.UndergradGraduationYear }},
	{KeyCertifications, []string{"Certifications"}, func(r *Record) *string { return &r.Certifications }},
	{KeyLanguages, []string{"Languages"}, func(r *Record) *string { return &r.Languages }},
	{KeyProjects, []string{"Projects"}, func(r *Record) *string { return &r.Projects }},
	{KeyPublications, []string{"Publications"}, func(r *Record) *string { return &r.Publications }},
	{KeyVolunteerOrganizations, []string{"Volunteer Organizations"}, func(r *Record) *string { return &r.VolunteerOrganizations }},
	{KeyCourses, []string{"Courses"}, func(r *Record) *string { return &r.Courses }},
	{KeyHonorsAwards, []string{"Honors & Awards"}, func(r *Record) *string { return &r.HonorsAwards }},
	{KeyOrganizations, []string{"Organizations"}, func(r *Record) *string { return &r.Organizations }},
	{KeyPatents, []string{"Patents"}, func(r *Record) *string { return &r.Patents }},
	{KeyTestScores, []string{"Test Scores"}, func(r *Record) *string { return &r.TestScores }},
	{KeyEmails, []string{"Emails"}, func(r *Record) *string { return &r.Emails }},
	{KeyPhones, []string{"Phones"}, func(r *Record) *string { return &r.Phones }},
	{KeySocialLinks, []string{"Social Links"}, func(r *Record) *string { return &r.SocialLinks }},
	{KeySkillsCount, []string{"Skills Count"}, func(r *Record) *string { return &r.SkillsCount }},
	{KeyExperienceCount, []string{"Experience Count"}, func(r *Record) *string { return &r.ExperienceCount }},
	{KeyEducationCount, []string{"Education Count"}, func(r *Record) *string { return &r.EducationCount }},
}

// Fields is a sparse map of canonical key (or numbered column such as
// "Company 3") to value. Absent keys and empty values are equivalent.
type Fields map[string]FieldValue

// Get returns the value under key, absent if unset.
func (f Fields) Get(key string) FieldValue { return f[key] }

// Str returns the value under key rendered as one line.
func (f Fields) Str(key string) string { return f[key].String() }

// Has reports whether key holds a non-empty value.
func (f Fields) Has(key string) bool { return !f[key].IsEmpty() }

// Set stores v under key; empty values delete the key.
func (f Fields) Set(key string, v FieldValue) {
	if v.IsEmpty() {
		delete(f, key)
		return
	}
	f[key] = v
}

// SetIfEmpty stores v only when key holds nothing yet.
func (f Fields) SetIfEmpty(key string, v FieldValue) {
	if !f.Has(key) {
		f.Set(key, v)
	}
}

// Clone returns a shallow copy; FieldValues are immutable.
func (f Fields) Clone() Fields { return maps.Clone(f) }

// Keys returns the populated keys in sorted order.
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k, v := range f {
		if !v.IsEmpty() {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

// Equal reports whether f and o hold the same content under every key.
func (f Fields) Equal(o Fields) bool {
	return slices.Equal(f.Keys(), o.Keys()) && !slices.ContainsFunc(f.Keys(), func(k string) bool {
		return !f[k].Equal(o[k])
	})
}

// IsRecordKey reports whether key is a canonical Record field.
func IsRecordKey(key string) bool {
	if key == KeyCompanies || key == KeyUniversities || key == KeyFieldsOfStudy {
		return true
	}
	return slices.ContainsFunc(scalarFields, func(s fieldSpec) bool { return s.key == key })
}

// RecordKeys returns every canonical Record field key in schema order.
func RecordKeys() []string {
	keys := make([]string, 0, len(scalarFields)+len(families))
	for _, s := range scalarFields {
		keys = append(keys, s.key)
	}
	for _, fam := range families {
		keys = append(keys, fam.Key)
	}
	return keys
}

// IsListKey reports whether key is one of the consolidated list families.
func IsListKey(key string) bool {
	return slices.ContainsFunc(families, func(fam Family) bool { return fam.Key == key })
}

// Record builds the persisted row from f. List families are consolidated.
// Status, RawData, and timestamps are left for the caller.
func (f Fields) Record() Record {
	var r Record
	for _, s := range scalarFields {
		*s.ptr(&r) = f.Str(s.key)
	}
	r.Companies = Consolidate(f, Companies)
	r.Universities = Consolidate(f, Universities)
	r.FieldsOfStudy = Consolidate(f, FieldsOfStudy)
	return r
}
