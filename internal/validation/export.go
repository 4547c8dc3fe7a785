package validation

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

// exportColumns is the fixed CSV column order
var exportColumns = []string{
	"id", "user_id", "created_at", "v", "R", "r", "C", "S", "wellbeing", "phase", "text",
}

type exportRecord struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	CreatedAt  string  `json:"created_at"`
	Velocity   float64 `json:"v"`
	Resistance float64 `json:"R"`
	Resonance  float64 `json:"r"`
	Capacity   float64 `json:"C"`
	Entropy    float64 `json:"S"`
	Wellbeing  float64 `json:"wellbeing"`
	Phase      string  `json:"phase"`
	Text       string  `json:"text,omitempty"`
}

func toExportRecord(rec models.StateRecord) exportRecord {
	return exportRecord{
		ID:         rec.ID,
		UserID:     rec.UserID,
		CreatedAt:  rec.CreatedAt.UTC().Format(time.RFC3339),
		Velocity:   models.Round3(rec.Vector.Velocity),
		Resistance: models.Round3(rec.Vector.Resistance),
		Resonance:  models.Round3(rec.Vector.Resonance),
		Capacity:   models.Round3(rec.Vector.Capacity),
		Entropy:    models.Round3(rec.Vector.Entropy),
		Wellbeing:  models.Round3(rec.Wellbeing),
		Phase:      rec.Phase,
		Text:       rec.Text,
	}
}

// ExportJSON writes records as a JSON array with rounded components and
// RFC3339 timestamps
func ExportJSON(w io.Writer, records []models.StateRecord) error {
	out := make([]exportRecord, len(records))
	for i, rec := range records {
		out[i] = toExportRecord(rec)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ExportCSV writes records in the fixed column order, one row per record
func ExportCSV(w io.Writer, records []models.StateRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportColumns); err != nil {
		return err
	}

	for _, rec := range records {
		e := toExportRecord(rec)
		row := []string{
			e.ID,
			e.UserID,
			e.CreatedAt,
			formatScore(e.Velocity),
			formatScore(e.Resistance),
			formatScore(e.Resonance),
			formatScore(e.Capacity),
			formatScore(e.Entropy),
			formatScore(e.Wellbeing),
			e.Phase,
			e.Text,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatScore(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
