// Package candidateserver exposes the candidate pipeline as MCP tools.
package candidateserver

import "github.com/anatolykoptev/go_candidates/internal/engine/linkedin"

// ImportInput is the input for candidate_import.
type ImportInput struct {
	Profiles     []map[string]any `json:"profiles,omitempty" jsonschema:"Profile submissions as JSON objects"`
	JSON         string           `json:"json,omitempty" jsonschema:"Alternative to profiles: raw JSON text holding one submission object or an array of them"`
	SkipExisting bool             `json:"skip_existing,omitempty" jsonschema:"Leave profiles that are already stored untouched and count them as skipped"`
}

// ExtractInput is the input for profile_extract.
type ExtractInput struct {
	URL  string `json:"url,omitempty" jsonschema:"Profile URL the page was captured from"`
	HTML string `json:"html" jsonschema:"Full HTML of the captured profile page"`
}

// ExtractOutput is the structured output of profile_extract.
type ExtractOutput struct {
	PersonalInfo linkedin.PersonalInfo `json:"personal_info"`
	Experience   []linkedin.Experience `json:"experience"`
	Education    []linkedin.Education  `json:"education"`
	Skills       []string              `json:"skills"`
	Fields       map[string]string     `json:"fields"`
	Status       string                `json:"status"`
}

// GetInput is the input for candidate_get.
type GetInput struct {
	LinkedinURL string `json:"linkedin_url" jsonschema:"LinkedIn profile URL, e.g. https://www.linkedin.com/in/jane-doe"`
}

// GetOutput is the structured output of candidate_get.
type GetOutput struct {
	Found     bool           `json:"found"`
	Candidate map[string]any `json:"candidate,omitempty"`
}
