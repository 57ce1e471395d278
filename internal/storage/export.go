package storage

import (
	"encoding/json"
	"io"
	"time"

	"github.com/san-kum/piquad/internal/sweep"
)

type ExportRow struct {
	Steps    int64   `json:"steps"`
	Workers  int     `json:"workers"`
	Seconds  float64 `json:"seconds"`
	Estimate float64 `json:"estimate"`
}

type ExportData struct {
	ID        string      `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
	Rule      string      `json:"rule"`
	Rows      []ExportRow `json:"rows"`
}

// ExportJSON writes a stored run as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, records []sweep.Record) error {
	data := ExportData{
		ID:        meta.ID,
		Timestamp: meta.Timestamp,
		Rule:      meta.Rule,
		Rows:      make([]ExportRow, 0, len(records)),
	}

	for _, rec := range records {
		data.Rows = append(data.Rows, ExportRow{
			Steps:    rec.Steps,
			Workers:  rec.Workers,
			Seconds:  rec.Elapsed.Seconds(),
			Estimate: rec.Estimate,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
