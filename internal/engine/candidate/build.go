package candidate

import (
	"time"

	"github.com/anatolykoptev/go_candidates/internal/engine/linkedin"
)

// Build assembles the pre-enrichment field set for a submission: values
// derived from doc (may be nil), overridden by every value the submission
// supplied directly. A submitted name that is site chrome counts as absent.
func Build(sub *Submission, doc *linkedin.Document, now time.Time, titles *TitleNormalizer) Fields {
	f := FromDocument(doc, now, titles)
	for k, v := range sub.Fields {
		if k == KeyFullName && linkedin.IsSiteChrome(v.String()) {
			continue
		}
		f.Set(k, v)
	}
	f.Set(KeyLinkedinURL, Scalar(sub.URL))
	return f
}

// Finalize turns merged fields into the record to persist: list families
// consolidated, raw data capped, status assigned by the quality gate.
// Timestamps are truncated to what Postgres stores.
func Finalize(f Fields, rawData string, now time.Time) Record {
	r := f.Record()
	r.RawData = CapRawData(rawData)
	r.Status = Evaluate(r)
	r.CreatedAt = now.UTC().Truncate(time.Microsecond)
	r.UpdatedAt = r.CreatedAt
	return r
}
