package spec

import (
	"encoding/json"
	"fmt"
)

// BuildPhase is one delivery phase inside a specification.
type BuildPhase struct {
	Phase        string   `json:"phase"`
	Description  string   `json:"description"`
	Tasks        []string `json:"tasks"`
	Deliverables []string `json:"deliverables"`
	Duration     string   `json:"duration"`
}

// Artifact is a parsed agent specification. Known fields are typed;
// everything else the model emitted rides along in Extra so newer
// model output survives a round trip unchanged.
type Artifact struct {
	Title                  string       `json:"title"`
	AgentType              string       `json:"agent_type"`
	Summary                string       `json:"summary"`
	Steps                  []string     `json:"steps"`
	BuildPhases            []BuildPhase `json:"build_phases"`
	SecurityConsiderations []string     `json:"security_considerations"`
	ClientRequirements     []string     `json:"client_requirements"`
	SummaryMessage         string       `json:"summary_message"`

	Extra map[string]json.RawMessage `json:"-"`
}

// knownKeys are unmarshalled into typed fields; the rest go to Extra.
var knownKeys = map[string]bool{
	"title":                   true,
	"agent_type":              true,
	"summary":                 true,
	"steps":                   true,
	"build_phases":            true,
	"security_considerations": true,
	"client_requirements":     true,
	"summary_message":         true,
}

func (a *Artifact) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	a.Extra = make(map[string]json.RawMessage)
	for key, value := range raw {
		if !knownKeys[key] {
			a.Extra[key] = value
			continue
		}
		if err := a.setKnown(key, value); err != nil {
			return fmt.Errorf("field %s: %w", key, err)
		}
	}
	return nil
}

func (a *Artifact) setKnown(key string, value json.RawMessage) error {
	switch key {
	case "title":
		return json.Unmarshal(value, &a.Title)
	case "agent_type":
		return json.Unmarshal(value, &a.AgentType)
	case "summary":
		return json.Unmarshal(value, &a.Summary)
	case "summary_message":
		return json.Unmarshal(value, &a.SummaryMessage)
	case "steps":
		a.Steps = coerceStringArray(value)
	case "client_requirements":
		a.ClientRequirements = coerceStringArray(value)
	case "security_considerations":
		a.SecurityConsiderations = normalizeSecurity(value)
	case "build_phases":
		// Tolerate malformed phases rather than failing the whole parse
		if err := json.Unmarshal(value, &a.BuildPhases); err != nil {
			a.BuildPhases = nil
		}
	}
	return nil
}

func (a Artifact) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(a.Extra)+len(knownKeys))
	for key, value := range a.Extra {
		out[key] = value
	}
	out["title"] = a.Title
	out["agent_type"] = a.AgentType
	out["summary"] = a.Summary
	out["steps"] = emptyToNilSafe(a.Steps)
	out["build_phases"] = a.BuildPhases
	out["security_considerations"] = emptyToNilSafe(a.SecurityConsiderations)
	out["client_requirements"] = emptyToNilSafe(a.ClientRequirements)
	out["summary_message"] = a.SummaryMessage
	return json.Marshal(out)
}

// emptyToNilSafe keeps nil slices rendering as [] instead of null.
func emptyToNilSafe(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// coerceStringArray accepts an array of strings or a bare string,
// which some models emit for single-element lists.
func coerceStringArray(value json.RawMessage) []string {
	var list []string
	if err := json.Unmarshal(value, &list); err == nil {
		return list
	}
	var single string
	if err := json.Unmarshal(value, &single); err == nil && single != "" {
		return []string{single}
	}
	return nil
}
