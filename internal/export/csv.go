package export

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"sonar-sim.klederson.com/internal/samplelog"
)

// CSVExporter writes one header row followed by one row per entry.
type CSVExporter struct{}

func (CSVExporter) Export(ctx context.Context, path string, entries []samplelog.Entry) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("csv close: %w", cerr)
		}
	}()

	bw := bufio.NewWriterSize(f, 64*1024)
	cw := csv.NewWriter(bw)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("csv write header: %w", err)
	}

	record := make([]string, len(Columns))
	for i, e := range entries {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		for j, v := range Row(e) {
			record[j] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csv write row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv flush: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("csv flush: %w", err)
	}
	return nil
}
