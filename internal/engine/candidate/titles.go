package candidate

import (
	"regexp"
	"strings"
	"sync"

	"github.com/anatolykoptev/go_candidates/internal/engine"
)

// Cuts a headline such as "Staff Engineer at Acme | Go, Kubernetes" into title and company.
var headlineSplitRe = regexp.MustCompile(`(?i)\s+(?:at|@)\s+`)

// TitleNormalizer canonicalizes position titles. Results are memoized per
// instance; callers create one per batch. A nil *TitleNormalizer works
// without memoization.
type TitleNormalizer struct {
	mu   sync.Mutex
	memo map[string]string
}

// NewTitleNormalizer returns an empty normalizer.
func NewTitleNormalizer() *TitleNormalizer {
	return &TitleNormalizer{memo: make(map[string]string)}
}

// Normalize collapses whitespace and drops trailing "| ..." or "· ..." qualifiers.
func (n *TitleNormalizer) Normalize(title string) string {
	if n == nil {
		return normalizeTitle(title)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if v, ok := n.memo[title]; ok {
		return v
	}
	v := normalizeTitle(title)
	n.memo[title] = v
	return v
}



func normalizeTitle(title string) string {
	t := engine.NormalizeSpace(title)
	for _, sep := range []string{" | ", " · ", " • "} {
		if i := strings.Index(t, sep); i > 0 {
			t = t[:i]
		}
	}
	return strings.TrimSpace(strings.TrimRight(t, ",;-"))
}

// splitHeadline splits "Senior Engineer at Acme Corp | Go" into ("Senior Engineer", "Acme Corp").
// Company is "" when the headline names none.
func splitHeadline(headline string) (title, company string) {
	h := engine.NormalizeSpace(headline)
	loc := headlineSplitRe.FindStringIndex(h)
	if loc == nil {
		return h, ""
	}
	title = h[:loc[0]]
	company = normalizeTitle(h[loc[1]:])
	return title, company
}
