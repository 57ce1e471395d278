package sweep

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

// Header kept verbatim from the legacy batch reports so downstream
// spreadsheets keep parsing.
var CSVHeader = []string{"Liczba krokow", "Liczba watków", "Czas (s)", "Przyblizona liczba PI"}

// WriteCSV emits one row per record under the legacy header.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return err
	}

	for _, rec := range records {
		row := []string{
			strconv.FormatInt(rec.Steps, 10),
			strconv.Itoa(rec.Workers),
			strconv.FormatFloat(rec.Elapsed.Seconds(), 'f', 6, 64),
			strconv.FormatFloat(rec.Estimate, 'f', 15, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses records written by WriteCSV, skipping the header.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) < 4 {
			continue
		}

		steps, err := strconv.ParseInt(row[0], 10, 64)
		if err != nil {
			continue
		}
		workers, err := strconv.Atoi(row[1])
		if err != nil {
			continue
		}
		seconds, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			continue
		}
		estimate, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			continue
		}

		records = append(records, Record{
			Steps:    steps,
			Workers:  workers,
			Elapsed:  time.Duration(seconds * float64(time.Second)),
			Estimate: estimate,
		})
	}

	return records, nil
}
