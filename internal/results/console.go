package results

import (
	"fmt"
	"strconv"
	"time"

	"github.com/quantaflow/quantaflow/internal/models"
)

// QuantumLogs returns the four cosmetic console entries shown in the client,
// with the numeric parts re-randomized on every call.
func (g *Generator) QuantumLogs(now time.Time) []models.QuantumLog {
	g.mu.Lock()
	deltaE := g.rng.Float64() * 0.01
	alignment := 95 + g.rng.Float64()*4
	g.mu.Unlock()

	entries := []struct {
		message string
		level   string
	}{
		{"Quantum Node 3 Initialized", "info"},
		{"Federated NAS Search Running...", "info"},
		{fmt.Sprintf("Similarity Optimization ΔE=%.5f", deltaE), "success"},
		{fmt.Sprintf("Cross-modal alignment achieved at %.2f%%", alignment), "success"},
	}

	logs := make([]models.QuantumLog, 0, len(entries))
	for i, e := range entries {
		logs = append(logs, models.QuantumLog{
			ID:        strconv.Itoa(i + 1),
			Timestamp: now,
			Message:   e.message,
			Level:     e.level,
		})
	}
	return logs
}

// PrivacyScore returns the cosmetic high-nineties percentage shown in the
// client status bar.
func (g *Generator) PrivacyScore() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return 97 + g.rng.Float64()*2.9
}
