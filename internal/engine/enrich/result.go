// Package enrich fills gaps in a partially extracted candidate by asking a
// language model to read the raw profile, and merges its answer back without
// overwriting what extraction already found.
package enrich

import (
	"errors"

	"github.com/anatolykoptev/go_candidates/internal/engine/candidate"
)

// ErrEnrichmentEmpty is returned when every attempt failed or came back empty.
var ErrEnrichmentEmpty = errors.New("enrich: no usable result")

// Correction is a model-flagged error in an extracted value.
type Correction struct {
	Field          string `json:"field"`
	OriginalValue  string `json:"originalValue"`
	CorrectedValue string `json:"correctedValue"`
	Reason         string `json:"reason,omitempty"`
}

// Result is a sparse set of inferred fields plus corrections. An absent
// field means no opinion, never "clear this field".
type Result struct {
	Fields      candidate.Fields `json:"fields,omitempty"`
	Corrections []Correction     `json:"corrections,omitempty"`
}

// Empty reports whether r proposes nothing.
func (r *Result) Empty() bool {
	return r == nil || (len(r.Fields.Keys()) == 0 && len(r.Corrections) == 0)
}
