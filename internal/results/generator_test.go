package results

import (
	"encoding/json"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/quantaflow/quantaflow/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator() *Generator {
	return NewGeneratorWithSource(rand.NewSource(1))
}

func TestGenerate_TextShape(t *testing.T) {
	g := newTestGenerator()
	res, ok := g.Generate("q1", models.ModalityText)
	require.True(t, ok)
	assert.Equal(t, "q1", res.QueryID)
	assert.Equal(t, models.ModalityText, res.Modality)

	var payload TextPayload
	require.NoError(t, json.Unmarshal([]byte(res.Content), &payload))
	assert.Equal(t, "Research Paper Excerpt", payload.Title)
	assert.Contains(t, payload.Snippet, "superposition and entanglement")
}

func TestGenerate_PayloadFieldsPerModality(t *testing.T) {
	g := newTestGenerator()

	cases := []struct {
		modality models.Modality
		fields   []string
	}{
		{models.ModalityText, []string{"title", "snippet"}},
		{models.ModalityImage, []string{"title", "caption"}},
		{models.ModalityVideo, []string{"title", "timestamp", "description"}},
		{models.ModalityAudio, []string{"title", "transcript", "duration"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.modality), func(t *testing.T) {
			res, ok := g.Generate("q1", tc.modality)
			require.True(t, ok)
			var decoded map[string]string
			require.NoError(t, json.Unmarshal([]byte(res.Content), &decoded))
			require.Len(t, decoded, len(tc.fields))
			for _, f := range tc.fields {
				assert.NotEmpty(t, decoded[f], "missing field %q", f)
			}
		})
	}
}

func TestGenerate_ScoresWithinRanges(t *testing.T) {
	g := newTestGenerator()

	ranges := map[models.Modality]struct{ cLo, cHi, eLo, eHi int }{
		models.ModalityText:  {96, 99, 92, 97},
		models.ModalityImage: {94, 97, 90, 95},
		models.ModalityVideo: {89, 92, 85, 90},
		models.ModalityAudio: {93, 96, 90, 95},
	}
	for modality, want := range ranges {
		for i := 0; i < 200; i++ {
			res, ok := g.Generate("q1", modality)
			require.True(t, ok)
			assert.GreaterOrEqual(t, res.ConfidenceScore, want.cLo, "%s confidence", modality)
			assert.LessOrEqual(t, res.ConfidenceScore, want.cHi, "%s confidence", modality)
			assert.GreaterOrEqual(t, res.QuantumEntanglement, want.eLo, "%s entanglement", modality)
			assert.LessOrEqual(t, res.QuantumEntanglement, want.eHi, "%s entanglement", modality)
		}
	}
}

func TestGenerate_UnknownModality(t *testing.T) {
	g := newTestGenerator()
	_, ok := g.Generate("q1", models.Modality("hologram"))
	assert.False(t, ok)
}

func TestQuantumLogs(t *testing.T) {
	g := newTestGenerator()
	now := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

	logs := g.QuantumLogs(now)
	require.Len(t, logs, 4)
	for i, entry := range logs {
		assert.Equal(t, now, entry.Timestamp)
		assert.NotEmpty(t, entry.Message)
		assert.Contains(t, []string{"info", "success"}, entry.Level)
		if i > 0 {
			assert.NotEqual(t, logs[i-1].ID, entry.ID)
		}
	}
	assert.True(t, strings.HasPrefix(logs[2].Message, "Similarity Optimization ΔE="))
	assert.Contains(t, logs[3].Message, "Cross-modal alignment achieved at")
}

func TestPrivacyScore_Range(t *testing.T) {
	g := newTestGenerator()
	for i := 0; i < 100; i++ {
		score := g.PrivacyScore()
		assert.GreaterOrEqual(t, score, 97.0)
		assert.Less(t, score, 100.0)
	}
}
