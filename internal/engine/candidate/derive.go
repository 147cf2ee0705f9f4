package candidate

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/anatolykoptev/go_candidates/internal/engine"
	"github.com/anatolykoptev/go_candidates/internal/engine/linkedin"
)

var (
	// Positions excluded from full-time experience totals.
	nonFullTimeRe = regexp.MustCompile(`(?i)\b(?:part[- ]time|contract|contractor|freelance|intern|internship)\b`)
	bachelorRe    = regexp.MustCompile(`(?i)\b(?:bachelor'?s?|b\.?\s?s\.?c?|b\.?\s?a|b\.?\s?eng|b\.?\s?tech|undergraduate|licenciatura)\b`)
)

// FromDocument derives record fields from a structured profile document.
// Current company and title come from the first current position, falling
// back to the headline; the previous target is the first other employer.
func FromDocument(doc *linkedin.Document, now time.Time, titles *TitleNormalizer) Fields {
	f := Fields{}
	if doc == nil {
		return f
	}

	pi := doc.PersonalInfo
	name := pi.Name
	if name == "" || linkedin.IsSiteChrome(name) {
		name = linkedin.NameFromText(doc.RawText)
	}
	f.Set(KeyFullName, Scalar(engine.NormalizeSpace(name)))
	if !linkedin.IsSiteChrome(pi.Location) {
		f.Set(KeyLocation, Scalar(engine.NormalizeSpace(pi.Location)))
	}

	deriveExperience(f, doc.Experience, now, titles)

	if f.Has(KeyJobTitle) && f.Has(KeyCurrentCompany) {
		return withEducation(f, doc)
	}
	if title, company := splitHeadline(pi.Headline); !linkedin.IsSiteChrome(pi.Headline) {
		f.SetIfEmpty(KeyJobTitle, Scalar(titles.Normalize(title)))
		f.SetIfEmpty(KeyCurrentCompany, Scalar(company))
	}
	return withEducation(f, doc)
}

func deriveExperience(f Fields, exps []linkedin.Experience, now time.Time, titles *TitleNormalizer) {
	if len(exps) == 0 {
		return
	}
	ranges := make([]linkedin.DateRange, len(exps))
	current := -1
	for i, e := range exps {
		ranges[i] = e.Range(now)
		if current < 0 && ranges[i].IsCurrent {
			current = i
		}
	}

	if current >= 0 {
		e, d := exps[current], ranges[current]
		f.Set(KeyCurrentCompany, Scalar(e.Company))
		f.Set(KeyJobTitle, Scalar(titles.Normalize(e.Title)))
		f.Set(KeyCurrentCompanyStartDate, Scalar(d.Start))
		f.Set(KeyCurrentCompanyEndDate, Scalar(d.End))
		setTenure(f, KeyCurrentCompanyTenureYears, KeyCurrentCompanyTenureMonths, d)
	}

	currentCompany := engine.FoldKey(f.Str(KeyCurrentCompany))
	for i, e := range exps {
		if i == current || e.Company == "" || engine.FoldKey(e.Company) == currentCompany {
			continue
		}
		d := ranges[i]
		f.Set(KeyPreviousTargetCompany, Scalar(e.Company))
		f.Set(KeyPreviousTargetCompanyStartDate, Scalar(d.Start))
		f.Set(KeyPreviousTargetCompanyEndDate, Scalar(d.End))
		setTenure(f, KeyPreviousTargetCompanyTenureYears, KeyPreviousTargetCompanyTenureMonths, d)
		if d.StartYear > 0 {
			end := d.End
			if d.EndYear > 0 {
				end = strconv.Itoa(d.EndYear)
			}
			f.Set(KeyTenurePreviousTarget, Scalar(strings.TrimSuffix(fmt.Sprintf("%d - %s", d.StartYear, end), " - ")))
		}
		break
	}

	var prevTitles, companies []string
	for i, e := range exps {
		if e.Company != "" {
			companies = append(companies, e.Company)
		}
		if i != current && e.Title != "" {
			prevTitles = appendUnique(prevTitles, titles.Normalize(e.Title))
		}
	}
	f.Set(KeyPreviousTitles, Scalar(strings.Join(prevTitles, "; ")))
	f.Set(KeyCompanies, List(companies...))

	if years := TotalYearsExperience(exps, now); years > 0 {
		f.Set(KeyTotalYearsExperience, Scalar(strconv.Itoa(years)))
	}
	f.Set(KeyExperienceCount, Scalar(strconv.Itoa(len(exps))))
}

func setTenure(f Fields, yearsKey, monthsKey string, d linkedin.DateRange) {
	if d.Months <= 0 {
		return
	}
	f.Set(yearsKey, Scalar(strconv.Itoa(d.TenureYears())))
	f.Set(monthsKey, Scalar(strconv.Itoa(d.TenureRemMonths())))
}

func withEducation(f Fields, doc *linkedin.Document) Fields {
	var schools, studyFields, degrees []string
	for _, e := range doc.Education {
		schools = append(schools, e.School)
		if e.FieldOfStudy != "" {
			studyFields = append(studyFields, e.FieldOfStudy)
		}
		if e.Degree != "" {
			degrees = appendUnique(degrees, e.Degree)
		}
		if !f.Has(KeyUndergradGraduationYear) && e.GraduationYear != "" && bachelorRe.MatchString(e.Degree) {
			f.Set(KeyUndergradGraduationYear, Scalar(e.GraduationYear))
		}
	}
	f.Set(KeyUniversities, List(schools...))
	f.Set(KeyFieldsOfStudy, List(studyFields...))
	f.Set(KeyDegrees, Scalar(strings.Join(degrees, "; ")))
	if len(doc.Education) > 0 {
		f.Set(KeyEducationCount, Scalar(strconv.Itoa(len(doc.Education))))
	}
	if len(doc.Skills) > 0 {
		f.Set(KeySkillsCount, Scalar(strconv.Itoa(len(doc.Skills))))
	}
	return f
}

// TotalYearsExperience sums full-time employment, counting overlapping
// positions once, rounded to whole years. Part-time, contract, freelance,
// and internship positions are skipped, as are entries without a start date.
func TotalYearsExperience(exps []linkedin.Experience, now time.Time) int {
	type span struct{ from, to int } // month indexes, inclusive
	var spans []span
	for _, e := range exps {
		if nonFullTimeRe.MatchString(e.EmploymentType + " " + e.Title) {
			continue
		}
		d := e.Range(now)
		if d.StartYear == 0 {
			continue
		}
		from := d.StartYear*12 + max(d.StartMonth, 1) - 1
		var to int
		switch {
		case d.EndYear > 0:
			endMonth := d.EndMonth
			if endMonth == 0 {
				endMonth = 12
			}
			to = d.EndYear*12 + endMonth - 1
		case d.IsCurrent:
			to = now.Year()*12 + int(now.Month()) - 1
		default:
			continue
		}
		if to >= from {
			spans = append(spans, span{from, to})
		}
	}
	if len(spans) == 0 {
		return 0
	}

	slices.SortFunc(spans, func(a, b span) int { return a.from - b.from })
	total := 0
	cur := spans[0]
	for _, s := range spans[1:] {
		if s.from <= cur.to+1 {
			cur.to = max(cur.to, s.to)
			continue
		}
		total += cur.to - cur.from + 1
		cur = s
	}
	total += cur.to - cur.from + 1
	return (total + 6) / 12
}

func appendUnique(list []string, s string) []string {
	if s == "" {
		return list
	}
	k := engine.FoldKey(s)
	if slices.ContainsFunc(list, func(x string) bool { return engine.FoldKey(x) == k }) {
		return list
	}
	return append(list, s)
}
