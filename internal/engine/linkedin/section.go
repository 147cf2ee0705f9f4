package linkedin

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/anatolykoptev/go_candidates/internal/engine"
)

// maxHeadingLen bounds what counts as a section heading; longer h1-h6 text is prose.
const maxHeadingLen = 60

// Section describes one profile section family.
type Section struct {
	Name     string   // lowercase token also looked for in container class/id
	Keywords []string // heading synonyms, matched as lowercase substrings
	Exclude  []string // headings containing any of these never match
}

// Known section families.
var (
	ExperienceSection = Section{
		Name:     "experience",
		Keywords: []string{"experience", "work history", "employment"},
		Exclude:  []string{"volunteer"},
	}
	EducationSection = Section{
		Name:     "education",
		Keywords: []string{"education"},
	}
	SkillsSection = Section{
		Name:     "skills",
		Keywords: []string{"skills"},
	}
)

func (s Section) matchesHeading(text string) bool {
	k := engine.FoldKey(text)
	if k == "" || len(k) > maxHeadingLen {
		return false
	}
	for _, ex := range s.Exclude {
		if strings.Contains(k, ex) {
			return false
		}
	}
	for _, kw := range s.Keywords {
		if strings.Contains(k, kw) {
			return true
		}
	}
	return false
}

func (s Section) isContainer(n *html.Node) bool {
	if n.DataAtom == atom.Section {
		return true
	}
	for _, attr := range []string{"class", "id"} {
		v := strings.ToLower(getAttr(n, attr))
		if strings.Contains(v, "section") || strings.Contains(v, s.Name) {
			return true
		}
	}
	return false
}

// Locate finds the first h1-h6 whose text contains one of the section's
// keywords and returns its nearest section-like ancestor, or the heading's
// parent when no ancestor qualifies. Returns nil when no heading matches.
func Locate(root *goquery.Selection, s Section) *goquery.Selection {
	var heading *goquery.Selection
	root.Find("h1, h2, h3, h4, h5, h6").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if s.matchesHeading(selectionText(h)) {
			heading = h
			return false
		}
		return true
	})
	if heading == nil {
		return nil
	}

	for p := heading.Parent(); p.Length() > 0; p = p.Parent() {
		n := p.Get(0)
		if n.Type != html.ElementNode || n.DataAtom == atom.Body || n.DataAtom == atom.Html {
			break
		}
		if s.isContainer(n) {
			return p
		}
	}
	return heading.Parent()
}
