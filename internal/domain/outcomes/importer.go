package outcomes

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// numericFields se guardan como número para que los predicados de rango funcionen.
var numericFields = map[string]struct{}{
	FieldAgeInWeeks:   {},
	FieldLocationLat:  {},
	FieldLocationLong: {},
}

// Normalize deja el record listo para insertar: trim de keys, sin row key,
// campos numéricos conocidos convertidos a float64 (los feeds suelen traerlos como texto).
func Normalize(in Record) Record {
	out := make(Record, len(in))
	for k, v := range in {
		k = strings.TrimSpace(k)
		if k == "" || k == RowKeyField {
			continue
		}
		if _, ok := numericFields[k]; ok {
			if f, ok := toFloat(v); ok {
				out[k] = f
				continue
			}
			if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
				continue
			}
		}
		if n, ok := v.(json.Number); ok {
			if f, err := n.Float64(); err == nil {
				out[k] = f
				continue
			}
		}
		out[k] = v
	}
	return out
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return Record{"v": v}.Float("v")
	}
}

// ReadCSV lee un export CSV con header. Columnas sin nombre (índice de pandas) se descartan.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("csv: header: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	out := make([]Record, 0)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: line %d: %w", line, err)
		}

		rec := Record{}
		for i, v := range row {
			if i >= len(header) || header[i] == "" {
				continue
			}
			rec[header[i]] = v
		}
		out = append(out, Normalize(rec))
	}
	return out, nil
}

// ImportResult resume un seed.
type ImportResult struct {
	Inserted int
	Failed   int
}

// Import inserta cada record con Create. Un fallo no corta el import; se cuenta.
func Import(ctx context.Context, s *Store, recs []Record) ImportResult {
	var res ImportResult
	for _, r := range recs {
		if ctx.Err() != nil {
			res.Failed += len(recs) - res.Inserted - res.Failed
			break
		}
		if s.Create(ctx, Normalize(r)) {
			res.Inserted++
		} else {
			res.Failed++
		}
	}
	return res
}
