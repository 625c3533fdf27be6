package spec

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractFenced strips a markdown code fence around the payload. It
// prefers a json-tagged fence, falls back to a bare one, and returns
// the input untouched when no fence is present.
func ExtractFenced(raw string) string {
	if strings.Contains(raw, "```json") {
		after := strings.SplitN(raw, "```json", 2)[1]
		return strings.TrimSpace(strings.SplitN(after, "```", 2)[0])
	}
	if strings.Contains(raw, "```") {
		after := strings.SplitN(raw, "```", 2)[1]
		return strings.TrimSpace(strings.SplitN(after, "```", 2)[0])
	}
	return strings.TrimSpace(raw)
}

// ParseArtifact turns free-form model output into a usable artifact.
// It never fails: malformed or empty output yields a deterministic
// fallback built from the conversation inputs, so a bad model response
// costs quality, not availability.
func ParseArtifact(raw string, inputs FallbackInputs) *Artifact {
	payload := ExtractFenced(raw)
	if payload == "" {
		return NewFallbackArtifact(inputs)
	}

	var artifact Artifact
	if err := json.Unmarshal([]byte(payload), &artifact); err != nil {
		return NewFallbackArtifact(inputs)
	}

	normalize(&artifact)
	return &artifact
}

func normalize(a *Artifact) {
	if len(a.SecurityConsiderations) == 0 {
		a.SecurityConsiderations = append([]string{}, defaultSecurityBullets...)
	}
	if a.SummaryMessage == "" {
		a.SummaryMessage = synthesizeSummaryMessage(a.Title)
	}
}

func synthesizeSummaryMessage(title string) string {
	if title == "" {
		title = "your agent"
	}
	return fmt.Sprintf("Great! I've created a comprehensive specification for your %q. This includes all the technical details, implementation steps, and requirements we discussed. You can now view the full project scope in your projects list.", title)
}
