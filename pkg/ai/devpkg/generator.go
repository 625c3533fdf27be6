package devpkg

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"advisor-portal-be/internal/pkg/logger"
	"advisor-portal-be/pkg/ai/spec"
	"advisor-portal-be/pkg/llm"
)

// File is one generated document inside a dev package.
type File struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// ModelCaller is the slice of the fallback ladder the generator needs.
type ModelCaller interface {
	Generate(ctx context.Context, history []llm.Message, primaryModel string, options ...llm.Option) (string, error)
}

// Generator turns a finalized specification into a set of Markdown
// documents ready to seed a development repository.
type Generator struct {
	caller  ModelCaller
	primary string
	log     logger.ILogger
}

func NewGenerator(caller ModelCaller, primary string, log logger.ILogger) *Generator {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Generator{caller: caller, primary: primary, log: log}
}

// Generate asks the model for the package and falls back to the
// deterministic document set when the model fails or returns something
// that is not the strict JSON shape. It never fails.
func (g *Generator) Generate(ctx context.Context, artifact *spec.Artifact) []File {
	prompt := BuildPrompt(artifact)

	raw, err := g.caller.Generate(ctx,
		[]llm.Message{{Role: "user", Content: prompt}},
		g.primary,
		llm.WithTemperature(0.2),
		llm.WithMaxTokens(8192),
	)
	if err != nil {
		g.log.Warn("devpkg", "model generation failed, using fallback documents", map[string]interface{}{
			"error": err.Error(),
		})
		return FallbackFiles(artifact)
	}

	files := parseFiles(raw)
	if len(files) == 0 {
		g.log.Warn("devpkg", "model output was not a file set, using fallback documents", nil)
		return FallbackFiles(artifact)
	}
	return files
}

func parseFiles(raw string) []File {
	payload := spec.ExtractFenced(raw)
	var parsed struct {
		Files []File `json:"files"`
	}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil
	}

	var out []File
	for _, f := range parsed.Files {
		if strings.TrimSpace(f.Path) == "" || strings.TrimSpace(f.Content) == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}

// BuildPrompt composes the generation request from the specification.
func BuildPrompt(artifact *spec.Artifact) string {
	stack := rawExtra(artifact, "agent_stack")
	enhancements := rawExtra(artifact, "future_enhancements")

	return fmt.Sprintf(`You are an elite Staff Engineer. Generate a complete, production-grade development package composed ONLY of project-unique Markdown files derived from the specification below. Do NOT include any example/baseline templates.

STRICT OUTPUT FORMAT:
Return ONLY a JSON object (no prose) with the shape:
{
  "files": [
    { "path": "README.md", "content": "..." },
    { "path": "ARCHITECTURE.md", "content": "..." },
    { "path": "IMPLEMENTATION_PLAN.md", "content": "..." },
    { "path": "API_SPEC.md", "content": "..." },
    { "path": "DATA_MODEL.md", "content": "..." },
    { "path": "MIGRATIONS.md", "content": "..." },
    { "path": "SECURITY.md", "content": "..." },
    { "path": "OBSERVABILITY.md", "content": "..." },
    { "path": "DEPLOYMENT.md", "content": "..." },
    { "path": "RUNBOOK.md", "content": "..." },
    { "path": "TEST_STRATEGY.md", "content": "..." },
    { "path": "CONFIGURATION.md", "content": "..." },
    { "path": "CURSOR_OPENING_PROMPT.md", "content": "..." }
  ]
}

DEPTH AND TECHNICALITY REQUIREMENTS:
- Expand beyond UI-visible details. Infer and elaborate realistic, detailed architecture from the specification.
- Include textual component and sequence diagrams (use Mermaid where useful).
- API_SPEC: list endpoints with method, path, auth, request/response JSON schemas, error codes, idempotency, and pagination.
- DATA_MODEL: provide normalized relational schema with keys, indexes, and example DDL.
- MIGRATIONS: ordered plan for evolving the schema from current to target, with safe rollout notes.
- SECURITY: RBAC, authN/Z, secrets, least-privilege, data retention, PII handling.
- OBSERVABILITY: logging, metrics, traces; critical SLOs, dashboards, and alerts.
- DEPLOYMENT: step-by-step environment setup (services, env vars, build/start), and rollbacks.
- RUNBOOK: operational procedures, common incidents, investigation steps, and on-call tips.
- CONFIGURATION: explicit environment variable matrix (name, purpose, default, required).

CONSTRAINTS:
- Only project-specific, uniquely generated files.
- Use a REST API + Next.js + PostgreSQL + JWT stack as the default integration context unless the spec overrides.
- Write in clear, skimmable sections with headings, lists, and tables.

PROJECT SPECIFICATION:
Title: %s
Executive Summary: %s
Implementation Steps: %s
Technical Stack (agent_stack JSON): %s
Client Requirements: %s
Security Considerations: %s
Enhancements: %s`,
		artifact.Title,
		artifact.Summary,
		strings.Join(artifact.Steps, " | "),
		stack,
		strings.Join(artifact.ClientRequirements, " | "),
		strings.Join(artifact.SecurityConsiderations, " | "),
		enhancements,
	)
}

func rawExtra(artifact *spec.Artifact, key string) string {
	if raw, ok := artifact.Extra[key]; ok {
		return string(raw)
	}
	return "{}"
}
