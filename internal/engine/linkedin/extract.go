package linkedin

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/anatolykoptev/go_candidates/internal/engine"
)

const (
	// MaxStoredHTML caps Document.RawHTML.
	MaxStoredHTML = 200_000
	// nameScanChars bounds the raw-text name fallback to the top of the page.
	nameScanChars = 1000
)

// A capitalized run of 2-4 words filling a whole line.
var nameLineRe = regexp.MustCompile(`^\p{Lu}[\p{L}'.-]*(?: \p{Lu}[\p{L}'.-]*){1,3}$`)

// Extract parses a captured profile page into a Document.
// Fields that no selector rule resolves are left empty. now anchors
// open-ended date ranges.
func Extract(profileURL, rawHTML string, now time.Time) (*Document, error) {
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("linkedin: parse html: %w", err)
	}
	root := gq.Selection

	body := gq.Find("body")
	if body.Length() == 0 {
		body = root
	}

	doc := &Document{
		SourceURL:   profileURL,
		RawHTML:     engine.Truncate(rawHTML, MaxStoredHTML),
		RawText:     flattenText(body.Get(0)),
		ExtractedAt: now,
	}

	name := nameChain.Resolve(root)
	if name == "" {
		name = NameFromText(doc.RawText)
	}
	headline := headlineChain.ResolveWith(root, notOneOf(name))
	doc.PersonalInfo = PersonalInfo{
		Name:       name,
		Headline:   headline,
		Location:   locationChain.ResolveWith(root, notOneOf(name, headline)),
		ProfileURL: profileURL,
	}

	if sec := Locate(root, ExperienceSection); sec != nil {
		doc.Experience = parseExperience(sec, now)
	}
	if sec := Locate(root, EducationSection); sec != nil {
		doc.Education = parseEducation(sec)
	}
	if sec := Locate(root, SkillsSection); sec != nil {
		doc.Skills = parseSkills(sec)
	}
	return doc, nil
}

// NameFromText looks for a plausible name line near the top of the page text.
func NameFromText(text string) string {
	if text == "" {
		return ""
	}
	head := []rune(text)
	if len(head) > nameScanChars {
		head = head[:nameScanChars]
	}
	for _, line := range strings.Split(string(head), "\n") {
		line = strings.TrimSpace(line)
		if nameLineRe.MatchString(line) && ValidName(line) {
			return line
		}
	}
	return ""
}
