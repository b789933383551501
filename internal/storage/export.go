package storage

import (
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
)

// csvRun is the CSV shape of a RunRecord.
type csvRun struct {
	ID        int64  `csv:"id"`
	SessionID string `csv:"session"`
	Run       int    `csv:"run"`
	Score     int    `csv:"score"`
	Level     int    `csv:"level"`
	Length    int    `csv:"length"`
	Cause     string `csv:"cause"`
	CreatedAt string `csv:"created_at"`
}

// ExportCSV writes runs as CSV with a header row.
func ExportCSV(w io.Writer, runs []RunRecord) error {
	records := make([]*csvRun, 0, len(runs))
	for _, r := range runs {
		var created string
		if !r.CreatedAt.IsZero() {
			created = r.CreatedAt.UTC().Format(time.RFC3339)
		}
		records = append(records, &csvRun{
			ID:        r.ID,
			SessionID: r.SessionID,
			Run:       r.Run,
			Score:     r.Score,
			Level:     r.Level,
			Length:    r.Length,
			Cause:     r.Cause,
			CreatedAt: created,
		})
	}

	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("storage: writing csv: %w", err)
	}
	return nil
}
