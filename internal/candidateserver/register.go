package candidateserver

import (
	"context"
	"errors"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_candidates/internal/engine/candidate"
	"github.com/anatolykoptev/go_candidates/internal/engine/pipeline"
)

// Deps are the collaborators the tools share.
type Deps struct {
	Pipeline    *pipeline.Pipeline
	Store       candidate.Store
	Concurrency int
	Now         func() time.Time
}

type tools struct {
	Deps
}

// RegisterTools registers candidate_import, profile_extract, and
// candidate_get on server.
func RegisterTools(server *mcp.Server, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	t := &tools{Deps: d}
	registerCandidateImport(server, t)
	registerProfileExtract(server, t)
	registerCandidateGet(server, t)
}

func registerCandidateImport(server *mcp.Server, t *tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "candidate_import",
		Description: "Import LinkedIn profile captures as candidate records. Accepts spreadsheet-style rows (\"Linkedin URL\", \"Full Name\", \"Company 1\"...), camelCase records, or profile documents with raw_html/raw_text. Each profile is extracted, enriched when fields are missing, consolidated, and upserted by LinkedIn URL (re-submission replaces the stored record). Returns counts plus per-profile errors.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ImportInput) (*mcp.CallToolResult, *pipeline.Summary, error) {
		sum, err := t.importProfiles(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		return nil, sum, nil
	})
}

func registerProfileExtract(server *mcp.Server, t *tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "profile_extract",
		Description: "Parse a captured LinkedIn profile page (HTML) into structured personal info, experience, education, and skills, plus the candidate fields derived from them. Nothing is stored.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ExtractInput) (*mcp.CallToolResult, *ExtractOutput, error) {
		if input.HTML == "" {
			return nil, nil, errors.New("html is required")
		}
		out, err := t.extractProfile(input)
		if err != nil {
			return nil, nil, err
		}
		return nil, out, nil
	})
}

func registerCandidateGet(server *mcp.Server, t *tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "candidate_get",
		Description: "Look up a stored candidate record by LinkedIn profile URL. Returns found=false when no record exists.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input GetInput) (*mcp.CallToolResult, *GetOutput, error) {
		if input.LinkedinURL == "" {
			return nil, nil, errors.New("linkedin_url is required")
		}
		out, err := t.getCandidate(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		return nil, out, nil
	})
}
