package linkedin

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/anatolykoptev/go_candidates/internal/engine"
)

// Validator accepts or rejects a candidate value.
type Validator func(string) bool

// Site chrome matched as a case-insensitive substring.
var chromePhrases = []string{
	"join linkedin", "sign in", "sign up", "agree & join", "new to linkedin",
	"accessibility", "user agreement", "privacy policy", "cookie policy", "copyright policy",
	"linkedin member", "linkedin corporation", "me for business", "connect message more",
	"skip to main content", "try premium", "show all", "see all", "view profile",
	"people also viewed", "forgot password",
}

// Navigation labels matched exactly; too short to match as substrings.
var chromeLabels = map[string]bool{
	"home": true, "my network": true, "jobs": true, "messaging": true, "notifications": true,
	"me": true, "work": true, "learning": true, "premium": true, "for business": true,
	"connect": true, "message": true, "more": true, "follow": true,
}

// Section headings are never field values.
var sectionWords = map[string]bool{
	"about": true, "activity": true, "experience": true, "education": true, "skills": true,
	"licenses & certifications": true, "interests": true, "languages": true, "projects": true,
	"volunteering": true, "recommendations": true, "honors & awards": true, "courses": true,
	"publications": true, "featured": true, "organizations": true, "highlights": true,
}

var (
	yearRe       = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	presentRe    = regexp.MustCompile(`(?i)\b(?:present|current|now)\b`)
	socialRe     = regexp.MustCompile(`(?i)\b(?:connections?|followers?)\b`)
	dateTextRe   = regexp.MustCompile(`(?i)^(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|\d{4}(?:\s*[-–—]|$)|(?:present|current)$)`)
	durationRe   = regexp.MustCompile(`(?i)^(?:less than a year|\d+\s*(?:yrs?|years?|mos?|months?)(?:\s+\d+\s*(?:mos?|months?))?)$`)
	employmentRe = regexp.MustCompile(`(?i)^(?:full[- ]time|part[- ]time|contract|contractor|self-employed|freelance|internship|apprenticeship|seasonal|temporary)$`)
)

func isChrome(s string) bool {
	k := engine.FoldKey(s)
	if chromeLabels[k] {
		return true
	}
	for _, p := range chromePhrases {
		if strings.Contains(k, p) {
			return true
		}
	}
	return false
}

func isSectionWord(s string) bool { return sectionWords[engine.FoldKey(s)] }

func isDateText(s string) bool { return dateTextRe.MatchString(strings.TrimSpace(s)) }

func isDuration(s string) bool { return durationRe.MatchString(strings.TrimSpace(s)) }

func isEmploymentType(s string) bool { return employmentRe.MatchString(strings.TrimSpace(s)) }

func between(s string, minLen, maxLen int) bool {
	n := utf8.RuneCountInString(s)
	return n >= minLen && n <= maxLen
}

// ValidName accepts 2-4 word person names of 3-100 characters that are not site chrome.
func ValidName(s string) bool {
	s = engine.NormalizeSpace(s)
	if !between(s, 3, 100) || isChrome(s) || isSectionWord(s) {
		return false
	}
	if n := len(strings.Fields(s)); n < 2 || n > 4 {
		return false
	}
	if strings.ContainsAny(s, "0123456789@|/:") {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r)
}

// ValidHeadline rejects chrome, section titles, and connection counters.
func ValidHeadline(s string) bool {
	return between(s, 2, 300) && !isChrome(s) && !isSectionWord(s) && !socialRe.MatchString(s)
}

// ValidLocation rejects chrome, counters, and contact-info links.
func ValidLocation(s string) bool {
	if !between(s, 2, 150) || isChrome(s) || isSectionWord(s) || socialRe.MatchString(s) {
		return false
	}
	if strings.Contains(strings.ToLower(s), "contact info") {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return !unicode.IsDigit(r)
}

// ValidTitle accepts a position title.
func ValidTitle(s string) bool {
	return between(s, 2, 200) && !isChrome(s) && !isSectionWord(s) &&
		!isDateText(s) && !isDuration(s) && !isEmploymentType(s)
}

// ValidCompany accepts an employer name, possibly still carrying a "· Full-time" suffix.
func ValidCompany(s string) bool {
	return between(s, 2, 150) && !isChrome(s) && !isSectionWord(s) &&
		!isDateText(s) && !isDuration(s) && !isEmploymentType(s)
}

// ValidDateRange accepts text carrying a year, a present marker, or a tenure like "2 yrs 3 mos".
func ValidDateRange(s string) bool {
	if !between(s, 4, 100) {
		return false
	}
	return yearRe.MatchString(s) || presentRe.MatchString(s) || isDuration(s)
}

// ValidDescription accepts free text of 10-5000 characters.
func ValidDescription(s string) bool {
	return between(s, 10, 5000) && !isDateText(s) && !companySepRe.MatchString(s)
}

// ValidSchool accepts an institution name.
func ValidSchool(s string) bool {
	return between(s, 2, 200) && !isChrome(s) && !isSectionWord(s) && !isDateText(s)
}

// ValidDegree accepts a degree line.
func ValidDegree(s string) bool {
	return between(s, 2, 200) && !isChrome(s) && !isDateText(s) && !isDuration(s)
}

// ValidField accepts a field of study.
func ValidField(s string) bool {
	return between(s, 2, 150) && !isDateText(s)
}

// ValidSkill accepts a skill name.
func ValidSkill(s string) bool {
	if !between(s, 1, 100) || isChrome(s) || isSectionWord(s) || socialRe.MatchString(s) || isDateText(s) {
		return false
	}
	return !strings.Contains(strings.ToLower(s), "endorse")
}

// notOneOf rejects values equal (case-insensitively) to any of vals.
func notOneOf(vals ...string) Validator {
	return func(s string) bool {
		k := engine.FoldKey(s)
		for _, v := range vals {
			if v != "" && k == engine.FoldKey(v) {
				return false
			}
		}
		return true
	}
}

// IsSiteChrome reports whether s is LinkedIn page chrome rather than profile content.
func IsSiteChrome(s string) bool { return isChrome(s) }
