package pipeline

import (
	"fmt"

	"github.com/LuizVenosa/GraficoCameraSite/internal/layout"
	"github.com/LuizVenosa/GraficoCameraSite/internal/sparsify"
	"github.com/go-playground/validator/v10"
)

// Params are the tunable knobs of a run.
type Params struct {
	Threshold float64      `json:"threshold" yaml:"threshold" validate:"gte=-1,lte=1"`
	TopK      int          `json:"top_k" yaml:"top_k" validate:"gte=0"`
	Layout    LayoutParams `json:"layout" yaml:"layout"`
}

type LayoutParams struct {
	K          float64 `json:"k" yaml:"k" validate:"gt=0"`
	Iterations int     `json:"iterations" yaml:"iterations" validate:"gte=0"`
	Seed       int64   `json:"seed" yaml:"seed"`
}

func DefaultParams() Params {
	return Params{
		Threshold: sparsify.DefaultThreshold,
		TopK:      sparsify.DefaultTopK,
		Layout: LayoutParams{
			K:          layout.DefaultK,
			Iterations: layout.DefaultIterations,
			Seed:       layout.DefaultSeed,
		},
	}
}

var validate = validator.New()

// Validate checks parameter ranges.
func (p Params) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid pipeline parameters: %w", err)
	}
	return nil
}

func (p Params) selection() sparsify.Options {
	return sparsify.Options{Threshold: p.Threshold, TopK: p.TopK}
}

func (p Params) layout() layout.Options {
	return layout.Options{K: p.Layout.K, Iterations: p.Layout.Iterations, Seed: p.Layout.Seed}
}
