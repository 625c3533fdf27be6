package spec

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FallbackInputs carries what the pipeline already knows about the
// conversation, so a failed parse can still produce a grounded artifact
// instead of an empty shell.
type FallbackInputs struct {
	Title              string
	Summary            string
	Steps              []string
	Stack              string
	ClientRequirements []string
}

const defaultFallbackTitle = "AI Agent Project"

// defaultBuildPhases is the standard delivery plan used when the model
// did not produce one.
var defaultBuildPhases = []BuildPhase{
	{
		Phase:       "Scope",
		Description: "Initial project scoping and requirements gathering",
		Tasks: []string{
			"Define project goals and objectives",
			"Identify key stakeholders and their requirements",
			"Document technical constraints and dependencies",
			"Establish success criteria and KPIs",
		},
		Deliverables: []string{
			"Project scope document",
			"Requirements specification",
			"Initial timeline and budget estimate",
		},
		Duration: "1-2 weeks",
	},
	{
		Phase:       "Discovery",
		Description: "Deep dive into technical architecture and design planning",
		Tasks: []string{
			"Design system architecture and data flows",
			"Select optimal tech stack and LLM models",
			"Plan integration points and APIs",
			"Create detailed technical specifications",
		},
		Deliverables: []string{
			"Technical architecture document",
			"System design diagrams",
			"Development environment configuration",
		},
		Duration: "1-2 weeks",
	},
	{
		Phase:       "UX/UI",
		Description: "User experience design and interface development",
		Tasks: []string{
			"Create user journey maps and workflows",
			"Design wireframes and mockups",
			"Develop interactive prototypes",
			"Finalize UI components and design system",
		},
		Deliverables: []string{
			"UX wireframes and user flows",
			"High-fidelity UI mockups",
			"Design system documentation",
		},
		Duration: "2-3 weeks",
	},
	{
		Phase:       "Development",
		Description: "Core development and implementation of features",
		Tasks: []string{
			"Implement backend services and APIs",
			"Integrate LLM and AI components",
			"Build frontend interfaces",
			"Implement security and authentication",
		},
		Deliverables: []string{
			"Functional backend system",
			"Integrated AI/LLM components",
			"Complete frontend application",
			"API documentation",
		},
		Duration: "4-6 weeks",
	},
	{
		Phase:       "Q/C",
		Description: "Quality assurance and comprehensive testing",
		Tasks: []string{
			"Perform unit and integration testing",
			"Test LLM performance and accuracy",
			"Security and vulnerability testing",
			"User acceptance testing (UAT)",
		},
		Deliverables: []string{
			"Test reports and coverage metrics",
			"Performance benchmarks",
			"UAT sign-off",
		},
		Duration: "2-3 weeks",
	},
	{
		Phase:       "Launch",
		Description: "Production deployment and go-live preparation",
		Tasks: []string{
			"Prepare production environment",
			"Configure monitoring and alerting",
			"Conduct final smoke tests",
			"Train users and prepare documentation",
		},
		Deliverables: []string{
			"Production deployment",
			"Monitoring dashboards",
			"User documentation and training materials",
		},
		Duration: "1-2 weeks",
	},
}

// NewFallbackArtifact builds a complete artifact from conversation
// inputs alone. Every section is filled from fixed templates so the
// result is always well-formed regardless of what the model returned.
func NewFallbackArtifact(inputs FallbackInputs) *Artifact {
	title := strings.TrimSpace(inputs.Title)
	if title == "" {
		title = defaultFallbackTitle
	}

	summary := strings.TrimSpace(inputs.Summary)
	if summary == "" {
		summary = fmt.Sprintf("%s automates the workflow discussed in the scoping conversation, combining an LLM-driven core with the integrations and data sources identified so far.", title)
	}

	steps := inputs.Steps
	if len(steps) == 0 {
		steps = []string{
			"Ingest and validate incoming requests from the configured channels",
			"Apply the agent's core reasoning over the relevant business data",
			"Produce the requested output and deliver it to the downstream system",
			"Record the interaction for auditing and continuous improvement",
		}
	}

	requirements := inputs.ClientRequirements
	if len(requirements) == 0 {
		requirements = []string{
			"Access to the systems and data sources the agent will operate on",
			"API keys or credentials for third-party integrations, stored securely",
			"A point of contact for requirement clarifications during the build",
		}
	}

	stack := strings.TrimSpace(inputs.Stack)
	if stack == "" {
		stack = "LLM-driven core with PostgreSQL for transactional data and a managed vector store for retrieval"
	}

	a := &Artifact{
		Title:                  title,
		AgentType:              "other",
		Summary:                summary,
		Steps:                  steps,
		BuildPhases:            append([]BuildPhase{}, defaultBuildPhases...),
		SecurityConsiderations: append([]string{}, defaultSecurityBullets...),
		ClientRequirements:     requirements,
		SummaryMessage:         synthesizeSummaryMessage(title),
		Extra:                  make(map[string]json.RawMessage),
	}

	sections := map[string]string{
		"architecture": fmt.Sprintf("## Architecture\n\n%s. The service layer exposes a REST API, delegates model calls through a retrying fallback ladder, and persists artifacts transactionally.", stack),
		"api_surface":  "## API Surface\n\n- POST /chat: submit a conversation turn, streamed response\n- POST /finalize: generate and persist the specification\n- GET /specifications/{id}: retrieve a stored specification",
		"data_model":   "## Data Model\n\nPostgreSQL tables for projects, specifications, and conversation history; JSON columns hold the structured specification payload.",
		"deployment":   "## Deployment\n\nContainerized service behind a load balancer; environment-driven configuration; rolling deploys with health checks.",
		"runbook":      "## Runbook\n\n- 401/403: verify JWT and role mapping\n- Model errors: check provider status and quota before escalating\n- DB connection errors: check connection string and SSL flags",
	}
	for key, content := range sections {
		encoded, _ := json.Marshal(content)
		a.Extra[key] = encoded
	}

	return a
}
