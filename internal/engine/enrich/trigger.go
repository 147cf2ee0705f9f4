package enrich

import "github.com/anatolykoptev/go_candidates/internal/engine/candidate"

// Fields whose absence alone justifies an enrichment call.
var criticalFields = []string{
	candidate.KeyCurrentCompany,
	candidate.KeyJobTitle,
	candidate.KeyLocation,
	candidate.KeyTotalYearsExperience,
}

// RawCounts is how many entries the collector's own structured arrays held.
type RawCounts struct {
	Experience int
	Education  int
	Skills     int
}

// Request asks for enrichment of one profile.
type Request struct {
	Text    string
	HTML    string
	Partial candidate.Fields
	Raw     RawCounts
}

// ShouldEnrich reports whether req is worth a model call: there must be raw
// content to read, and either a critical field is missing or the collector
// saw entries that normalization lost.
func ShouldEnrich(req Request) bool {
	if req.Text == "" && req.HTML == "" {
		return false
	}
	for _, k := range criticalFields {
		if !req.Partial.Has(k) {
			return true
		}
	}
	return underExtracted(req)
}

func underExtracted(req Request) bool {
	p := req.Partial
	switch {
	case req.Raw.Experience > 0 && !p.Has(candidate.KeyCompanies) && !p.Has(candidate.Companies.NumberedKey(1)):
		return true
	case req.Raw.Education > 0 && !p.Has(candidate.KeyUniversities) && !p.Has(candidate.KeyDegrees):
		return true
	case req.Raw.Skills > 0 && !p.Has(candidate.KeySkillsCount):
		return true
	}
	return false
}
