package dashboard

import (
	"context"
	"sort"

	"animal-shelter-dashboard/internal/domain/outcomes"
)

const (
	PageSize = 10
	TopN     = 10

	ChartTitle  = "Top Breeds in Current Selection"
	NoChartData = "No data to display."
	NoRecords   = "No records."

	DefaultLat  = 30.75
	DefaultLong = -97.48
	Unknown     = "Unknown"
	MapZoom     = 10
)

// Table es el estado de la tabla: filas completas + columnas a mostrar.
type Table struct {
	Category outcomes.FilterCategory `json:"category"`
	Columns  []string                `json:"columns"`
	Rows     []outcomes.Record       `json:"rows"`
	PageSize int                     `json:"page_size"`
}

// BreedCount es una barra del gráfico.
type BreedCount struct {
	Breed string `json:"breed"`
	Count int    `json:"count"`
}

// Chart: si Placeholder != "", Bars viene vacío y la UI muestra el mensaje.
type Chart struct {
	Title       string       `json:"title"`
	XAxis       string       `json:"x_axis"`
	YAxis       string       `json:"y_axis"`
	Bars        []BreedCount `json:"bars"`
	Placeholder string       `json:"placeholder,omitempty"`
}

// Marker es el punto de interés del mapa.
type Marker struct {
	Lat   float64 `json:"lat"`
	Long  float64 `json:"long"`
	Breed string  `json:"breed"` // tooltip
	Name  string  `json:"name"`  // popup
}

type MapView struct {
	Marker      *Marker `json:"marker,omitempty"`
	Row         int     `json:"row"`
	Zoom        int     `json:"zoom"`
	Placeholder string  `json:"placeholder,omitempty"`
}

// RefreshTable consulta el store con la categoría y reemplaza la tabla completa.
func RefreshTable(ctx context.Context, store outcomes.Reader, category outcomes.FilterCategory) Table {
	rows := store.Read(ctx, outcomes.BuildQuery(category))
	if rows == nil {
		rows = []outcomes.Record{}
	}
	return Table{
		Category: category,
		Columns:  Columns(rows),
		Rows:     rows,
		PageSize: PageSize,
	}
}

// Columns devuelve la unión de campos: primero en el orden conocido del dataset,
// luego los extra ordenados. Sin filas => columnas de fallback.
func Columns(rows []outcomes.Record) []string {
	if len(rows) == 0 {
		return append([]string(nil), outcomes.FallbackColumns...)
	}

	seen := map[string]struct{}{}
	for _, r := range rows {
		for k := range r {
			if k == outcomes.RowKeyField {
				continue
			}
			seen[k] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for _, c := range outcomes.FallbackColumns {
		if _, ok := seen[c]; ok {
			out = append(out, c)
			delete(seen, c)
		}
	}

	extra := make([]string, 0, len(seen))
	for k := range seen {
		extra = append(extra, k)
	}
	sort.Strings(extra)

	return append(out, extra...)
}

// BreedHistogram cuenta breeds (case-sensitive, tal cual están guardados),
// ordena desc por count y corta en TopN. Empates: orden de primera aparición.
func BreedHistogram(rows []outcomes.Record) Chart {
	c := Chart{
		Title: ChartTitle,
		XAxis: "Breed",
		YAxis: "Count",
		Bars:  []BreedCount{},
	}

	idx := map[string]int{}
	for _, r := range rows {
		b, ok := r.String(outcomes.FieldBreed)
		if !ok {
			continue
		}
		if i, seen := idx[b]; seen {
			c.Bars[i].Count++
			continue
		}
		idx[b] = len(c.Bars)
		c.Bars = append(c.Bars, BreedCount{Breed: b, Count: 1})
	}

	if len(c.Bars) == 0 {
		c.Placeholder = NoChartData
		return c
	}

	sort.SliceStable(c.Bars, func(i, j int) bool {
		return c.Bars[i].Count > c.Bars[j].Count
	})
	if len(c.Bars) > TopN {
		c.Bars = c.Bars[:TopN]
	}
	return c
}

// MarkerFor deriva el punto del mapa para la fila seleccionada (default fila 0).
// Un índice fuera de rango se ajusta a [0, len-1].
func MarkerFor(rows []outcomes.Record, selected *int) MapView {
	if len(rows) == 0 {
		return MapView{Zoom: MapZoom, Placeholder: NoRecords}
	}

	row := 0
	if selected != nil {
		row = clamp(*selected, 0, len(rows)-1)
	}

	r := rows[row]
	return MapView{
		Row:  row,
		Zoom: MapZoom,
		Marker: &Marker{
			Lat:   r.FloatOr(outcomes.FieldLocationLat, DefaultLat),
			Long:  r.FloatOr(outcomes.FieldLocationLong, DefaultLong),
			Breed: r.StringOr(outcomes.FieldBreed, Unknown),
			Name:  r.StringOr(outcomes.FieldName, Unknown),
		},
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
