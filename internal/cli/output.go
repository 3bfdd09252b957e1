// Package cli provides output formatting for the Quantaflow command line client.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/quantaflow/quantaflow/internal/models"
	"github.com/quantaflow/quantaflow/pkg/utils"
)

// OutputFormat is the format for CLI output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteFiles writes an uploaded-file list to w in the given format.
func WriteFiles(w io.Writer, files []models.UploadedFile, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, files)
	}
	if len(files) == 0 {
		fmt.Fprintln(w, "No files uploaded.")
		return nil
	}
	for _, f := range files {
		fmt.Fprintf(w, "%s  %-24s %-8s %8d bytes  %s\n",
			f.ID, utils.Truncate(f.FileName, 24), f.FileType, f.FileSize, f.Status)
	}
	return nil
}

// WriteQueries writes a query list to w in the given format.
func WriteQueries(w io.Writer, queries []models.Query, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, queries)
	}
	if len(queries) == 0 {
		fmt.Fprintln(w, "No queries submitted.")
		return nil
	}
	for _, q := range queries {
		fmt.Fprintf(w, "%s  [%s] %s  modalities=%s\n",
			q.ID, q.Status, utils.Truncate(q.QueryText, 48), q.Modalities)
	}
	return nil
}

// WriteResults writes synthesized query results to w in the given format.
func WriteResults(w io.Writer, queryResults []models.QueryResult, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, queryResults)
	}
	if len(queryResults) == 0 {
		fmt.Fprintln(w, "No results.")
		return nil
	}
	for _, res := range queryResults {
		fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
		fmt.Fprintf(w, "[%s] Confidence: %d | Entanglement: %d\n",
			res.Modality, res.ConfidenceScore, res.QuantumEntanglement)
		fmt.Fprintf(w, "%s\n\n", utils.Truncate(res.Content, 200))
	}
	return nil
}

// WriteLogs writes quantum console entries to w in the given format.
func WriteLogs(w io.Writer, logs []models.QuantumLog, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, logs)
	}
	for _, entry := range logs {
		fmt.Fprintf(w, "%s  [%-7s] %s\n",
			entry.Timestamp.Format("15:04:05"), entry.Level, entry.Message)
	}
	return nil
}
