/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package order

import "fmt"

// Numeric constants fixed by the algorithm (not exposed in Config): see spec.md §6.
const (
	medianWidthMultiplier  = 1.3
	crossLayoutMinOverlaps = 2
	isolationRadius        = 50.0
	centralRatioThreshold  = 0.2
	densityRatioCutoff     = 0.9
	largeGroupCutoff       = 10
	spanningWidthRatio     = 0.6
	densityEpsilon         = 1e-9
)

// Config holds the tunable options of the engine. All fields have documented
// defaults; use DefaultConfig to start from them.
type Config struct {
	// MinCutThreshold is the minimum gap width, in coordinate units, the
	// projection segmenter will accept as a cut.
	MinCutThreshold float64
	// HistogramResolutionScale is the number of histogram bins per coordinate
	// unit; bin width is 1/HistogramResolutionScale.
	HistogramResolutionScale float64
	// SameRowTolerance is the |Δ center_y| below which two elements are
	// considered to be in the same row by the projection fallback sort.
	SameRowTolerance float64
}

// DefaultConfig returns the engine's default configuration.
func DefaultConfig() Config {
	return Config{
		MinCutThreshold:          15.0,
		HistogramResolutionScale: 0.5,
		SameRowTolerance:         10.0,
	}
}

// Validate returns an error if any field is out of range.
func (c Config) Validate() error {
	if c.MinCutThreshold < 0 {
		return fmt.Errorf("order: MinCutThreshold must be >= 0, got %v", c.MinCutThreshold)
	}
	if c.HistogramResolutionScale <= 0 {
		return fmt.Errorf("order: HistogramResolutionScale must be > 0, got %v", c.HistogramResolutionScale)
	}
	if c.SameRowTolerance < 0 {
		return fmt.Errorf("order: SameRowTolerance must be >= 0, got %v", c.SameRowTolerance)
	}
	return nil
}

// binWidth returns 1/HistogramResolutionScale.
func (c Config) binWidth() float64 {
	return 1.0 / c.HistogramResolutionScale
}
