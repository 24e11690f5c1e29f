package timeline

// Position places entry i of n evenly along a track that begins at start
// and is span long. A single entry sits at start.
func Position(i, n int, start, span float64) float64 {
	last := n - 1
	if last < 1 {
		last = 1
	}
	return start + float64(i)/float64(last)*span
}

// Rail is the visual track of the archive's side navigation, in percent of
// the viewport height.
type Rail struct {
	Start float64
	Span  float64
}

var DefaultRail = Rail{Start: 12.5, Span: 75}

type Marker struct {
	Kind      Kind    `json:"kind"`
	Label     string  `json:"label"`
	PeriodKey string  `json:"period_key"`
	Top       float64 `json:"top"`
}

// Markers positions every bucket, year entries included, top to bottom.
func (r Rail) Markers(buckets []Bucket) []Marker {
	out := make([]Marker, len(buckets))
	for i, b := range buckets {
		out[i] = Marker{
			Kind:      b.Kind,
			Label:     b.Label,
			PeriodKey: b.PeriodKey,
			Top:       Position(i, len(buckets), r.Start, r.Span),
		}
	}
	return out
}
