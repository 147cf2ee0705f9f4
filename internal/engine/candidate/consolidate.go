package candidate

import (
	"strconv"

	"github.com/anatolykoptev/go_candidates/internal/engine"
)

// numberedSlots is how many "<Type> N" columns a submission may carry.
const numberedSlots = 10

// Family describes one list field assembled from a primary value plus
// numbered columns.
type Family struct {
	Key      string // canonical key of the primary value
	Column   string // submission column of the primary value
	Numbered string // prefix of the numbered columns, e.g. "Company"
	Max      int
}

// List families.
var (
	Companies     = Family{Key: KeyCompanies, Column: "Companies", Numbered: "Company", Max: 50}
	Universities  = Family{Key: KeyUniversities, Column: "Universities", Numbered: "University", Max: 20}
	FieldsOfStudy = Family{Key: KeyFieldsOfStudy, Column: "Fields of Study", Numbered: "Field of Study", Max: 20}

	families = []Family{Companies, Universities, FieldsOfStudy}
)

// FamilyOf returns the list family whose primary value is stored under key.
func FamilyOf(key string) (Family, bool) {
	for _, fam := range families {
		if fam.Key == key {
			return fam, true
		}
	}
	return Family{}, false
}

// NumberedKey returns the column name of slot n (1-based).
func (fam Family) NumberedKey(n int) string {
	return fam.Numbered + " " + strconv.Itoa(n)
}

// Consolidate merges the family's primary value with its numbered fields:
// primary entries first, then "<Type> 1".."<Type> 10" in order. Empty and
// duplicate entries (ignoring case and spacing) are dropped, first
// occurrence wins, and the result is capped at fam.Max.
func Consolidate(f Fields, fam Family) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(items []string) {
		for _, it := range items {
			if len(out) >= fam.Max {
				return
			}
			k := engine.FoldKey(it)
			if k == "" || seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, engine.NormalizeSpace(it))
		}
	}

	add(f.Get(fam.Key).Items())
	for n := 1; n <= numberedSlots; n++ {
		add(f.Get(fam.NumberedKey(n)).Items())
	}
	return out
}

// ConsolidateAll replaces every family's primary value in f with its
// consolidated list. Numbered fields are left in place.
func ConsolidateAll(f Fields) Fields {
	out := f.Clone()
	for _, fam := range families {
		out.Set(fam.Key, List(Consolidate(f, fam)...))
	}
	return out
}
