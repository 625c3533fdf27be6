package devpkg

import (
	"fmt"
	"strings"

	"advisor-portal-be/pkg/ai/spec"
)

// FallbackFiles builds the deterministic document set from the
// specification alone. Used when the model cannot deliver a parseable
// package; the advisor still gets something to hand off.
func FallbackFiles(artifact *spec.Artifact) []File {
	title := artifact.Title
	if title == "" {
		title = "Project"
	}
	summary := artifact.Summary

	security := artifact.SecurityConsiderations
	if len(security) == 0 {
		security = []string{
			"TLS in transit; managed encryption at rest.",
			"JWT-based auth with strict RBAC (admin/advisor/client).",
			"Parameterized SQL queries; no dynamic SQL.",
			"Rotate secrets; store only via environment variables.",
		}
	}

	var steps strings.Builder
	for i, s := range artifact.Steps {
		fmt.Fprintf(&steps, "### %d. %s\n", i+1, s)
	}

	var phases strings.Builder
	for _, p := range artifact.BuildPhases {
		fmt.Fprintf(&phases, "## %s (%s)\n%s\n\n", p.Phase, p.Duration, p.Description)
		for _, task := range p.Tasks {
			fmt.Fprintf(&phases, "- %s\n", task)
		}
		phases.WriteString("\n")
	}

	return []File{
		{
			Path:    "README.md",
			Content: fmt.Sprintf("# %s – Development Package\n\n%s\n\nThis package contains project-specific technical documentation to accelerate implementation. Start with ARCHITECTURE.md and IMPLEMENTATION_PLAN.md.\n", title, summary),
		},
		{
			Path:    "ARCHITECTURE.md",
			Content: "# Architecture\n\n## System Context\n- Frontend: Next.js (App Router)\n- Backend: REST API service\n- Database: PostgreSQL\n- Auth: JWT (RBAC: admin, advisor, client)\n\n## Components\n- API Server: request handling, RBAC middleware, feature modules (ideas, projects, files).\n- Web App: advisor dashboard, client portal, authentication.\n- Database: normalized relational schema, migrations.\n\n## Sequence (High-Level)\n~~~mermaid\nsequenceDiagram\n  participant Web as Web (Next.js)\n  participant API as API\n  participant DB as Postgres\n  Web->>API: Authenticated request (Bearer JWT)\n  API->>API: RBAC check (role + ownership)\n  API->>DB: Parameterized SQL query\n  DB-->>API: Rows\n  API-->>Web: JSON response\n~~~\n",
		},
		{
			Path:    "IMPLEMENTATION_PLAN.md",
			Content: fmt.Sprintf("# Implementation Plan\n\n## Overview\n%s\n\n## Steps\n%s\n## Build Phases\n%s## Client Requirements\n%s\n", summary, steps.String(), phases.String(), bullets(artifact.ClientRequirements)),
		},
		{
			Path:    "API_SPEC.md",
			Content: "# API Spec\n\n- Auth: Bearer JWT (Authorization: Bearer <token>)\n- Content-Type: application/json\n\n## Endpoints (examples)\n- GET /me – returns user profile\n- GET /projects/:id/files – list files (RBAC-aware)\n- POST /advisor/projects/:projectId/dev-package – generate package (advisor)\n\nFor each endpoint: include request parameters, response schema, and error codes.\n",
		},
		{
			Path:    "DATA_MODEL.md",
			Content: "# Data Model\n\n## Entities\n- users(id PK, role, name, email, company_name)\n- projects(id PK, client_id FK->users, name, status, eta, chat_history jsonb)\n- agent_ideas(id PK, project_id FK->projects, title, summary, steps jsonb, agent_stack jsonb)\n- project_files(id PK, project_id FK->projects, user_id FK->users, filename, mimetype, size, advisor_only)\n\n## Example DDL (excerpt)\n~~~sql\ncreate table if not exists projects(\n  id uuid primary key,\n  client_id uuid not null references users(id) on delete cascade,\n  name text not null,\n  status text not null,\n  eta text,\n  created_at timestamptz default now()\n);\n~~~\n",
		},
		{
			Path:    "MIGRATIONS.md",
			Content: "# Migrations\n\n1. Add advisor_only to project_files (if missing)\n2. Add chat_history to projects (if missing)\n3. Create indexes on projects(status) and agent_ideas(project_id)\n\nEach migration should be idempotent and backward compatible.\n",
		},
		{
			Path:    "SECURITY.md",
			Content: fmt.Sprintf("# Security\n\n%s\n", bullets(security)),
		},
		{
			Path:    "OBSERVABILITY.md",
			Content: "# Observability\n\n## Metrics\n- Request rate, error rate, latency (p50/p95)\n- DB query timings\n\n## Logs\n- Structured JSON logs with request id\n\n## Tracing\n- Trace API handlers and DB calls\n",
		},
		{
			Path:    "DEPLOYMENT.md",
			Content: "# Deployment\n\n- Backend: containerized API service, health check on GET /health\n- Frontend: Next.js static or SSR service\n- Env Vars: see CONFIGURATION.md\n- Rollback: redeploy previous image tag\n",
		},
		{
			Path:    "RUNBOOK.md",
			Content: "# Runbook\n\n## Common Incidents\n- 401/403: verify JWT and role mapping\n- DB connection errors: check DATABASE_URL and SSL flags\n\n## Operational Tasks\n- Rotate JWT_SECRET quarterly\n- Review indices monthly\n",
		},
		{
			Path:    "TEST_STRATEGY.md",
			Content: "# Test Strategy\n\n- Unit: RBAC middleware, validators\n- Integration: endpoints with seeded DB\n- E2E: advisor and client critical flows\n",
		},
		{
			Path:    "CONFIGURATION.md",
			Content: "# Configuration\n\n| Name | Description | Required | Default |\n|------|-------------|----------|---------|\n| JWT_SECRET | JWT signing secret | yes | |\n| DATABASE_URL | Postgres connection string | yes | |\n| DATABASE_SSL | Enable SSL (true/false) | no | false |\n| AI_API_KEY | Model API key | yes | |\n| AI_MODEL | Model name | no | gemini-2.5-pro |\n",
		},
		{
			Path:    "CURSOR_OPENING_PROMPT.md",
			Content: fmt.Sprintf("# Cursor Opening Prompt\n\nYou are working on %s. Follow IMPLEMENTATION_PLAN.md, consult ARCHITECTURE.md, and use API_SPEC.md and DATA_MODEL.md to build endpoints and schema.\n", title),
		},
	}
}

func bullets(items []string) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	return b.String()
}
