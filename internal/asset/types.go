package asset

import (
	"encoding/json"
	"math"

	"github.com/five82/akshrail/internal/render"
)

// Lottie mirrors the header fields of a Lottie animation document. Layer and
// asset bodies are kept raw; only their counts are used.
type Lottie struct {
	Version   string            `json:"v"`
	Name      string            `json:"nm"`
	FrameRate float64           `json:"fr"`
	InPoint   float64           `json:"ip"`
	OutPoint  float64           `json:"op"`
	Width     int               `json:"w"`
	Height    int               `json:"h"`
	Layers    []json.RawMessage `json:"layers"`
	Assets    []json.RawMessage `json:"assets"`
}

// Frames returns the playable frame count.
func (l Lottie) Frames() int {
	if l.OutPoint <= l.InPoint {
		return 0
	}
	return int(math.Round(l.OutPoint - l.InPoint))
}

// Summary converts the document into the decoration shown on screen.
func (l Lottie) Summary(source string) render.Animation {
	return render.Animation{
		Name:      l.Name,
		Source:    source,
		Width:     l.Width,
		Height:    l.Height,
		FrameRate: l.FrameRate,
		Frames:    l.Frames(),
		Layers:    len(l.Layers),
	}
}
