package session

import (
	"borrowx/types"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"
)

// WriteActivityCSVFile writes the action log to a CSV file at the given path.
func (s *Session) WriteActivityCSVFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create activity file: %w", err)
	}
	defer f.Close()

	return writeActivityCSV(f, s.activities)
}

// WriteActivityCSV writes the action log to any io.Writer as CSV.
func (s *Session) WriteActivityCSV(w io.Writer) error {
	return writeActivityCSV(w, s.activities)
}

func writeActivityCSV(w io.Writer, activities []types.Activity) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"activity_id",
		"kind",
		"symbol",
		"quantity",
		"amount_usd",
		"time", // RFC3339
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, a := range activities {
		record := []string{
			a.ID.String(),
			string(a.Kind),
			a.Symbol,
			a.Quantity.String(),
			a.AmountUsd.StringFixed(2),
			a.Time.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
