// Package results synthesizes mock retrieval results. Scores are random
// numbers drawn at response time; no content analysis happens anywhere.
package results

import (
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/quantaflow/quantaflow/internal/models"
)

// Payload is the modality-specific body of a synthesized result. Each
// modality carries its own shape; the concrete type is JSON-serialized into
// QueryResult.Content.
type Payload interface {
	isPayload()
}

// TextPayload is the body of a text result.
type TextPayload struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// ImagePayload is the body of an image result.
type ImagePayload struct {
	Title   string `json:"title"`
	Caption string `json:"caption"`
}

// VideoPayload is the body of a video result.
type VideoPayload struct {
	Title       string `json:"title"`
	Timestamp   string `json:"timestamp"`
	Description string `json:"description"`
}

// AudioPayload is the body of an audio result.
type AudioPayload struct {
	Title      string `json:"title"`
	Transcript string `json:"transcript"`
	Duration   string `json:"duration"`
}

func (TextPayload) isPayload()  {}
func (ImagePayload) isPayload() {}
func (VideoPayload) isPayload() {}
func (AudioPayload) isPayload() {}

// scoreRange draws integers from [base, base+spread).
type scoreRange struct {
	base   int
	spread int
}

// canned holds the fixed payload and score sub-ranges for one modality.
type canned struct {
	payload      Payload
	confidence   scoreRange
	entanglement scoreRange
}

var cannedByModality = map[models.Modality]canned{
	models.ModalityText: {
		payload: TextPayload{
			Title:   "Research Paper Excerpt",
			Snippet: "Quantum computing represents a paradigm shift in computational capabilities, leveraging quantum mechanical phenomena such as superposition and entanglement...",
		},
		confidence:   scoreRange{base: 96, spread: 4},
		entanglement: scoreRange{base: 92, spread: 6},
	},
	models.ModalityImage: {
		payload: ImagePayload{
			Title:   "Neural Network Architecture",
			Caption: "Advanced transformer-based architecture diagram showing multi-head attention mechanisms",
		},
		confidence:   scoreRange{base: 94, spread: 4},
		entanglement: scoreRange{base: 90, spread: 6},
	},
	models.ModalityVideo: {
		payload: VideoPayload{
			Title:       "AI Model Training Session",
			Timestamp:   "02:34",
			Description: "Live training session demonstrating real-time model optimization",
		},
		confidence:   scoreRange{base: 89, spread: 4},
		entanglement: scoreRange{base: 85, spread: 6},
	},
	models.ModalityAudio: {
		payload: AudioPayload{
			Title:      "Conference Recording",
			Transcript: "The future of artificial intelligence lies in the convergence of quantum computing and federated learning...",
			Duration:   "12:45",
		},
		confidence:   scoreRange{base: 93, spread: 4},
		entanglement: scoreRange{base: 90, spread: 6},
	},
}

// Generator produces canned result records with randomized scores. Safe for
// concurrent use; the shared rand source is mutex-guarded.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a generator seeded from the wall clock.
func NewGenerator() *Generator {
	return NewGeneratorWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewGeneratorWithSource creates a generator with a caller-supplied source,
// for deterministic tests.
func NewGeneratorWithSource(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Generate synthesizes one result for the modality, or reports false for an
// unknown tag. Deterministic in shape, random only in the two scores.
func (g *Generator) Generate(queryID string, modality models.Modality) (models.InsertQueryResult, bool) {
	c, ok := cannedByModality[modality]
	if !ok {
		return models.InsertQueryResult{}, false
	}
	content, _ := json.Marshal(c.payload)
	return models.InsertQueryResult{
		QueryID:             queryID,
		Modality:            modality,
		Content:             string(content),
		ConfidenceScore:     g.draw(c.confidence),
		QuantumEntanglement: g.draw(c.entanglement),
	}, true
}

func (g *Generator) draw(r scoreRange) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return r.base + g.rng.Intn(r.spread)
}
