package linkedin

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/anatolykoptev/go_candidates/internal/engine"
)

var (
	// "Acme Corp · Full-time"
	companySepRe = regexp.MustCompile(`(?i)^(.+?)\s*[·•]\s*(full[- ]time|part[- ]time|contract|contractor|self-employed|freelance|internship|apprenticeship|seasonal|temporary)\b`)
	parenRe      = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
	separatorRe  = regexp.MustCompile(`\s*[·•]\s*`)
)

// parseExperience extracts positions from an experience section.
// Items with neither title nor company are dropped; identical entries
// produced by nested item wrappers collapse to one.
func parseExperience(section *goquery.Selection, now time.Time) []Experience {
	var out []Experience
	seen := make(map[string]bool)
	section.Find(itemSelector).Each(func(_ int, item *goquery.Selection) {
		title := titleChain.Resolve(item)
		company := companyChain.ResolveWith(item, notOneOf(title))
		if company == "" {
			company = companyFromText(item, title)
		}
		company, empType := cleanCompany(company, title)
		if title == "" && company == "" {
			return
		}

		dateText := dateChain.ResolveWith(item, notOneOf(title, company))
		desc := descriptionChain.ResolveWith(item, notOneOf(title, company, dateText))

		exp := Experience{
			Title:          title,
			Company:        company,
			EmploymentType: empType,
			DateRange:      dateText,
			Description:    desc,
		}
		if dateText != "" {
			d := ParseDateRange(dateText, now)
			exp.StartDate, exp.EndDate, exp.IsCurrent = d.Start, d.End, d.IsCurrent
			if d.StartYear == 0 && d.Months > 0 {
				exp.Duration = dateText
			}
		}

		key := engine.FoldKey(title + "|" + company + "|" + dateText)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, exp)
	})
	return out
}

// companyFromText scans an item's text nodes for "<company> · <employment type>".
func companyFromText(item *goquery.Selection, title string) string {
	for _, n := range item.Nodes {
		for _, t := range textNodes(n) {
			m := companySepRe.FindStringSubmatch(t)
			if m == nil {
				continue
			}
			if c := strings.TrimSpace(m[1]); ValidCompany(c) && notOneOf(title)(c) {
				return t
			}
		}
	}
	return ""
}

// cleanCompany splits "Acme Corp (Remote) · Full-time" into ("Acme Corp", "Full-time")
// and removes a leading copy of the title.
func cleanCompany(raw, title string) (company, employmentType string) {
	parts := separatorRe.Split(engine.NormalizeSpace(raw), -1)
	company = parts[0]
	for _, p := range parts[1:] {
		if isEmploymentType(p) {
			employmentType = p
			break
		}
	}
	if isEmploymentType(company) {
		return "", company
	}

	company = parenRe.ReplaceAllString(company, "")
	if title != "" && len(company) > len(title) && strings.EqualFold(company[:len(title)], title) {
		rest := strings.TrimSpace(company[len(title):])
		rest = strings.TrimSpace(strings.TrimLeft(strings.TrimPrefix(strings.TrimPrefix(rest, "at "), "@"), "-–,|"))
		if rest != "" {
			company = rest
		}
	}
	return strings.TrimSpace(company), employmentType
}

// parseEducation extracts schools from an education section. Items without a school are dropped.
func parseEducation(section *goquery.Selection) []Education {
	var out []Education
	seen := make(map[string]bool)
	section.Find(itemSelector).Each(func(_ int, item *goquery.Selection) {
		school := schoolChain.Resolve(item)
		if school == "" {
			return
		}
		degree := degreeChain.ResolveWith(item, notOneOf(school))
		field := fieldChain.ResolveWith(item, notOneOf(school, degree))
		if field == "" && degree != "" {
			// "Bachelor of Science - BS, Computer Science"
			if i := strings.Index(degree, ", "); i > 0 {
				degree, field = strings.TrimSpace(degree[:i]), strings.TrimSpace(degree[i+2:])
			}
		}
		dateText := dateChain.ResolveWith(item, notOneOf(school, degree))

		edu := Education{
			School:         school,
			Degree:         degree,
			FieldOfStudy:   field,
			DateRange:      dateText,
			GraduationYear: lastYear(dateText),
		}
		key := engine.FoldKey(school + "|" + degree + "|" + dateText)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, edu)
	})
	return out
}

// parseSkills extracts distinct skill names from a skills section.
func parseSkills(section *goquery.Selection) []Skill {
	var out []Skill
	seen := make(map[string]bool)
	section.Find(itemSelector).Each(func(_ int, item *goquery.Selection) {
		name := skillChain.Resolve(item)
		if name == "" {
			return
		}
		k := engine.FoldKey(name)
		if seen[k] {
			return
		}
		seen[k] = true
		out = append(out, Skill{Name: name})
	})
	return out
}
