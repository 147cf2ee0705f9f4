package candidate

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_candidates/internal/engine/linkedin"
)

// RawDataColumn carries the original collector payload when present.
const RawDataColumn = "Raw Data"

// Keys tried, in order, for the profile URL after the record columns.
var urlKeys = []string{"linkedin_url", "profileUrl", "profile_url", "url", "source_url"}

var (
	htmlKeys = []string{"html", "raw_html", "rawHtml"}
	textKeys = []string{"raw_text", "rawText", "text"}
)

// Keys whose presence marks a submission (or its Raw Data) as a profile document.
var documentKeys = []string{"personal_info", "experience", "education", "skills", "raw_html", "raw_text", "extraction_metadata"}

// Submission is one parsed collector record.
type Submission struct {
	URL      string             // normalized profile URL
	Fields   Fields             // values from record columns or camelCase keys
	Document *linkedin.Document // structured document content, nil if none was submitted
	HTML     string             // full submitted page HTML
	Text     string             // full submitted page text
	RawData  string             // payload to persist, uncapped
}

// ParseSubmission reads a collector record in any of the accepted shapes:
// spreadsheet-style columns ("Full Name", "Company 1", ...), camelCase keys
// ("fullName"), or a profile document ({personal_info, experience, ...}),
// possibly nested as JSON text under "Raw Data". Column keys win over
// camelCase keys. Returns ErrMissingURL when no profile URL resolves.
func ParseSubmission(m map[string]any) (*Submission, error) {
	sub := &Submission{Fields: Fields{}}

	for _, s := range scalarFields {
		v := firstValue(m, s.columns...)
		if v.IsEmpty() {
			v = ParseValue(m[s.key])
		}
		sub.Fields.Set(s.key, v)
	}
	for _, fam := range families {
		sub.Fields.Set(fam.Key, firstValue(m, fam.Column, fam.Key))
		for n := 1; n <= numberedSlots; n++ {
			k := fam.NumberedKey(n)
			sub.Fields.Set(k, ParseValue(m[k]))
		}
	}

	sub.Document = documentFrom(m)
	sub.HTML = firstString(m, htmlKeys...)
	sub.Text = firstString(m, textKeys...)
	if sub.Document != nil {
		if sub.HTML == "" {
			sub.HTML = sub.Document.RawHTML
		}
		if sub.Text == "" {
			sub.Text = sub.Document.RawText
		}
	}

	sub.URL = resolveURL(sub, m)
	if sub.URL == "" {
		return nil, ErrMissingURL
	}
	sub.Fields.Set(KeyLinkedinURL, Scalar(sub.URL))

	sub.RawData = rawDataOf(m)
	return sub, nil
}

// resolveURL tries the record columns, the URL-ish keys, the document's
// profile URL, the capture's source URL, and finally a link in the page text.
func resolveURL(sub *Submission, m map[string]any) string {
	candidates := []string{sub.Fields.Str(KeyLinkedinURL), firstString(m, urlKeys...)}
	if d := sub.Document; d != nil {
		candidates = append(candidates, d.PersonalInfo.ProfileURL)
		for _, src := range []string{d.Metadata.SourceURL, d.SourceURL} {
			if linkedin.IsProfileURL(src) {
				candidates = append(candidates, src)
			}
		}
	}
	candidates = append(candidates, linkedin.FindProfileURL(sub.Text))
	for _, c := range candidates {
		if u := linkedin.NormalizeProfileURL(c); u != "" {
			return u
		}
	}
	return ""
}

func firstValue(m map[string]any, keys ...string) FieldValue {
	for _, k := range keys {
		if v := ParseValue(m[k]); !v.IsEmpty() {
			return v
		}
	}
	return FieldValue{}
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// documentFrom decodes the submission itself, or its Raw Data, as a profile document.
func documentFrom(m map[string]any) *linkedin.Document {
	src := m
	if !hasAnyKey(src, documentKeys) {
		raw, ok := m[RawDataColumn].(string)
		if !ok || !strings.HasPrefix(strings.TrimSpace(raw), "{") {
			return nil
		}
		var inner map[string]any
		if err := json.Unmarshal([]byte(raw), &inner); err != nil || !hasAnyKey(inner, documentKeys) {
			return nil
		}
		src = inner
	}

	data, err := json.Marshal(src)
	if err != nil {
		return nil
	}
	var doc linkedin.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Debug("submission: document shape not decodable", slog.Any("error", err))
		return nil
	}
	return &doc
}

func hasAnyKey(m map[string]any, keys []string) bool {
	for _, k := range keys {
		if _, ok := m[k]; ok {
			return true
		}
	}
	return false
}

// rawDataOf returns the submitted Raw Data, or the whole submission as JSON.
func rawDataOf(m map[string]any) string {
	switch v := m[RawDataColumn].(type) {
	case string:
		if strings.TrimSpace(v) != "" {
			return v
		}
	case map[string]any, []any:
		if b, err := json.Marshal(v); err == nil {
			return string(b)
		}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return string(b)
}
