package spec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFenced(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"json tagged fence", "```json\n{\"title\":\"X\"}\n```", `{"title":"X"}`},
		{"bare fence", "```\n{\"title\":\"X\"}\n```", `{"title":"X"}`},
		{"no fence", `{"title":"X"}`, `{"title":"X"}`},
		{"prose around fence", "Here you go:\n```json\n{\"a\":1}\n```\nLet me know!", `{"a":1}`},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractFenced(tt.raw))
		})
	}
}

func TestParseArtifactFlattensSecurityObject(t *testing.T) {
	raw := "```json\n{\"title\":\"X\",\"security_considerations\":{\"a\":\"b\"}}\n```"

	artifact := ParseArtifact(raw, FallbackInputs{})
	require.NotNil(t, artifact)
	assert.Equal(t, "X", artifact.Title)
	assert.Equal(t, []string{"a: b"}, artifact.SecurityConsiderations)
}

func TestParseArtifactFlattensNestedSecurity(t *testing.T) {
	raw := `{
		"title": "Agent",
		"security_considerations": {
			"access_control": {
				"authentication": "JWT",
				"authorization": "RBAC"
			},
			"compliance": {
				"standards": ["GDPR", "SOC2"]
			}
		}
	}`

	artifact := ParseArtifact(raw, FallbackInputs{})
	assert.Equal(t, []string{
		"access_control / authentication: JWT",
		"access_control / authorization: RBAC",
		"GDPR",
		"SOC2",
	}, artifact.SecurityConsiderations)
}

func TestParseArtifactDefaultsMissingSecurity(t *testing.T) {
	artifact := ParseArtifact(`{"title":"Agent"}`, FallbackInputs{})
	assert.Equal(t, defaultSecurityBullets, artifact.SecurityConsiderations)
}

func TestParseArtifactSynthesizesSummaryMessage(t *testing.T) {
	artifact := ParseArtifact(`{"title":"Support Bot"}`, FallbackInputs{})
	assert.Contains(t, artifact.SummaryMessage, "Support Bot")

	withMessage := ParseArtifact(`{"title":"X","summary_message":"All set."}`, FallbackInputs{})
	assert.Equal(t, "All set.", withMessage.SummaryMessage)
}

func TestParseArtifactCoercesSingleStrings(t *testing.T) {
	raw := `{"title":"X","steps":"only one step","client_requirements":"api access"}`

	artifact := ParseArtifact(raw, FallbackInputs{})
	assert.Equal(t, []string{"only one step"}, artifact.Steps)
	assert.Equal(t, []string{"api access"}, artifact.ClientRequirements)
}

func TestParseArtifactUnparsableFallsBack(t *testing.T) {
	artifact := ParseArtifact("not json at all", FallbackInputs{Title: "Invoice Agent"})
	require.NotNil(t, artifact)
	assert.Equal(t, "Invoice Agent", artifact.Title)
	assert.NotEmpty(t, artifact.Steps)
	assert.NotEmpty(t, artifact.BuildPhases)
	assert.Equal(t, defaultSecurityBullets, artifact.SecurityConsiderations)
}

func TestParseArtifactEmptyInputFallsBack(t *testing.T) {
	artifact := ParseArtifact("", FallbackInputs{})
	require.NotNil(t, artifact)
	assert.Equal(t, defaultFallbackTitle, artifact.Title)
}

func TestParseArtifactPassesThroughUnknownKeys(t *testing.T) {
	raw := `{"title":"X","agent_stack":{"llm_model":"claude"},"future_enhancements":["voice"]}`

	artifact := ParseArtifact(raw, FallbackInputs{})
	require.Contains(t, artifact.Extra, "agent_stack")
	require.Contains(t, artifact.Extra, "future_enhancements")

	encoded, err := json.Marshal(artifact)
	require.NoError(t, err)

	var roundTrip map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(encoded, &roundTrip))
	assert.JSONEq(t, `{"llm_model":"claude"}`, string(roundTrip["agent_stack"]))
	assert.JSONEq(t, `["voice"]`, string(roundTrip["future_enhancements"]))
}

func TestParseArtifactBuildPhases(t *testing.T) {
	raw := `{
		"title": "X",
		"build_phases": [
			{"phase":"Scope","description":"d","tasks":["t1"],"deliverables":["d1"],"duration":"1 week"}
		]
	}`

	artifact := ParseArtifact(raw, FallbackInputs{})
	require.Len(t, artifact.BuildPhases, 1)
	assert.Equal(t, "Scope", artifact.BuildPhases[0].Phase)
	assert.Equal(t, []string{"t1"}, artifact.BuildPhases[0].Tasks)
}
