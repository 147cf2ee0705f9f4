package enrich

import (
	"log/slog"

	"github.com/anatolykoptev/go_candidates/internal/engine"
	"github.com/anatolykoptev/go_candidates/internal/engine/candidate"
)

// Merge folds res into original and returns the merged copy plus the
// corrections that were applied. original is not modified.
//
// Enriched values only fill fields original leaves empty; a list family
// counts as populated when its primary or any numbered column has an entry.
// A populated value
// changes only through a correction whose originalValue matches it (ignoring
// case and spacing); the first correction per field wins, list families are
// never corrected, and linkedinUrl is never touched. Merging the same result
// twice yields the same fields as merging it once.
func Merge(original candidate.Fields, res *Result) (candidate.Fields, []Correction) {
	merged := original.Clone()
	if merged == nil {
		merged = candidate.Fields{}
	}
	if res == nil {
		return merged, nil
	}

	for _, k := range res.Fields.Keys() {
		if !mergeable(k) {
			continue
		}
		if fam, ok := candidate.FamilyOf(k); ok && len(candidate.Consolidate(merged, fam)) > 0 {
			continue
		}
		merged.SetIfEmpty(k, res.Fields.Get(k))
	}

	var applied []Correction
	seen := make(map[string]bool)
	for _, c := range res.Corrections {
		if !mergeable(c.Field) || candidate.IsListKey(c.Field) || seen[c.Field] {
			continue
		}
		seen[c.Field] = true

		cur := merged.Str(c.Field)
		if cur == "" || engine.FoldKey(cur) != engine.FoldKey(c.OriginalValue) {
			continue
		}
		next := candidate.Scalar(c.CorrectedValue)
		if next.IsEmpty() || next.String() == cur {
			continue
		}
		merged.Set(c.Field, next)
		applied = append(applied, c)
		slog.Info("enrich: correction applied",
			slog.String("field", c.Field),
			slog.String("from", cur),
			slog.String("to", next.String()),
			slog.String("reason", c.Reason))
	}
	engine.AddCorrections(len(applied))
	return merged, applied
}

func mergeable(key string) bool {
	return key != candidate.KeyLinkedinURL && candidate.IsRecordKey(key)
}
