package quality

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Training columns from the Sleep Health and Lifestyle dataset. Columns are
// addressed by header name, never by position, so schema drift in the CSV
// fails loudly instead of silently shifting features.
var featureColumns = [...]string{
	"Sleep Duration",
	"Physical Activity Level",
	"Stress Level",
	"Heart Rate",
	"Daily Steps",
}

const labelColumn = "Quality of Sleep"

type dataset struct {
	features [][]float64 // one row per record, len(featureColumns) values each
	labels   []int       // 1-10 quality label per record
}

func loadDataset(path string) (*dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}

	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[name] = i
	}

	featureIdx := make([]int, len(featureColumns))
	for i, name := range featureColumns {
		idx, ok := colIndex[name]
		if !ok {
			return nil, fmt.Errorf("dataset missing column %q", name)
		}
		featureIdx[i] = idx
	}
	labelIdx, ok := colIndex[labelColumn]
	if !ok {
		return nil, fmt.Errorf("dataset missing column %q", labelColumn)
	}

	ds := &dataset{}
	for line := 2; ; line++ {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset line %d: %w", line, err)
		}
		row := make([]float64, len(featureIdx))
		for i, idx := range featureIdx {
			v, err := strconv.ParseFloat(record[idx], 64)
			if err != nil {
				return nil, fmt.Errorf("dataset line %d: column %q: %w", line, featureColumns[i], err)
			}
			row[i] = v
		}
		label, err := strconv.Atoi(record[labelIdx])
		if err != nil {
			return nil, fmt.Errorf("dataset line %d: column %q: %w", line, labelColumn, err)
		}
		ds.features = append(ds.features, row)
		ds.labels = append(ds.labels, label)
	}

	if len(ds.features) == 0 {
		return nil, fmt.Errorf("dataset %s contains no records", path)
	}
	return ds, nil
}
