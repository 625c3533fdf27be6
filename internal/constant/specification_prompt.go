package constant

const (
	// SpecificationPromptHeader opens the generation request. When the user
	// forced generation with a command, DoneCommandAssumptions is appended
	// so the model fills gaps instead of asking more questions.
	SpecificationPromptHeader = `Based on our conversation, generate a comprehensive agent specification in JSON format`

	DoneCommandAssumptions = `. The user has requested immediate specification generation, so make intelligent assumptions based on best practices and industry standards for any missing information`

	// SpecificationPromptBody pins the output schema. The parser tolerates
	// deviations, but the closer the model sticks to this shape the less
	// repair work happens downstream.
	SpecificationPromptBody = `. Be thorough but concise. Use tables where helpful. with these sections:

{
    "title": "Descriptive agent name",
    "agent_type": "one of: customer_service, data_analysis, content_creation, process_automation, or other",
    "summary": "2-3 sentence overview of the agent's purpose and value",
    "steps": [
        "Clear, action-oriented description with sub-tasks and technical details for the first phase",
        "Next step in the workflow with specific implementation details"
    ],
    "build_phases": [
        {
            "phase": "Phase name (Scope, Discovery, UX/UI, Development, Q/C, Launch)",
            "description": "What this phase covers",
            "tasks": ["Concrete tasks for the phase"],
            "deliverables": ["Artifacts produced by the phase"],
            "duration": "Estimated duration, e.g. 1-2 weeks"
        }
    ],
    "agent_stack": {
        "llm_model": {
            "primary_model": {
                "recommendation": "Best primary model for this use case",
                "provider": "Provider name",
                "strengths": ["Specific strengths for this use case"],
                "reasoning": "Why this model excels for these requirements"
            },
            "fallback_model": "Model to use if the primary is unavailable",
            "cost_optimization": {
                "strategy": "How to balance performance vs cost",
                "estimated_monthly_cost": "Rough estimate based on expected usage"
            }
        },
        "vector_database": {
            "recommendation": "e.g. Pinecone for production, Qdrant for on-premise",
            "purpose": "Store embeddings for long-term memory and retrieval",
            "reasoning": "Why this specific vector DB is recommended"
        },
        "retrieval_system": {
            "recommendation": "Advanced retrieval method (RAG with reranking, hybrid search)",
            "reasoning": "How this enhances the agent's capabilities"
        },
        "orchestration": {
            "framework": "Workflow framework and why it fits",
            "agent_architecture": "Single agent, multi-agent, or hierarchical"
        },
        "integrations": [
            {
                "service": "API or service name",
                "purpose": "What it's used for",
                "security": "How credentials are handled"
            }
        ],
        "monitoring": {
            "tools": "Observability and analytics tools",
            "metrics": "Key metrics to track"
        },
        "infrastructure": {
            "hosting": "Recommended hosting solution",
            "scalability": "How the system scales"
        }
    },
    "security_considerations": [
        "Data encryption at rest and in transit",
        "API authentication and authorization",
        "Role-based access control",
        "Audit logging and monitoring",
        "Compliance with relevant regulations"
    ],
    "client_requirements": [
        "Specific access or resources needed from the client with detailed explanation",
        "API keys or credentials required and how they'll be secured",
        "Data access requirements and compliance needs"
    ],
    "future_enhancements": [
        {
            "enhancement": "Advanced feature or capability",
            "description": "What this would add",
            "impact": "Business impact and user benefits",
            "implementation_effort": "Estimated effort to implement"
        }
    ],
    "implementation_estimate": {
        "traditional_approach": {
            "hours": "Estimated hours for traditional development",
            "total_cost": "Estimated cost at $150/hour"
        },
        "ai_powered_approach": {
            "hours": "10% of traditional hours",
            "cost_savings": "90% reduction from traditional approach",
            "total_cost": "10% of traditional cost"
        }
    },
    "summary_message": "A friendly message summarizing what we've created and the value proposition"
}

IMPORTANT GUIDELINES FOR LLM SELECTION:
- NEVER default to a single model for everything
- Consider the specific use case and cost implications
- For high-volume tasks: Always include a fast inference option
- Include open-source alternatives when appropriate

OTHER IMPORTANT NOTES:
- ALWAYS include vector databases for long-term memory, even for simple use cases
- Provide detailed explanations for each technical choice
- Include comprehensive security considerations
- Generate innovative future enhancement ideas that extend the core functionality
- Be specific and detailed in all sections`
)
