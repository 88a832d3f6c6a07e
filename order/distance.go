/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package order

import (
	"math"

	"github.com/readingorder/xycut/model"
)

// componentWeights holds the per-label multipliers μ = [μ1,μ2,μ3,μ4] of Eq 10.
type componentWeights [4]float64

var labelMultipliers = map[model.SemanticLabel]componentWeights{
	model.CrossLayout:     {1.0, 1.0, 0.1, 1.0},
	model.HorizontalTitle: {1.0, 0.1, 0.1, 1.0},
	model.VerticalTitle:   {0.2, 0.1, 1.0, 1.0},
	model.Vision:          {1.0, 1.0, 1.0, 0.1},
	model.Regular:         {1.0, 1.0, 1.0, 0.1},
}

// distance computes D(m, a), the four-component distance from masked element m
// to anchor a (spec.md §4.4). Terms are summed in the fixed order φ1,φ2,φ3,φ4
// and computation halts as soon as the running partial sum exceeds `best`, the
// incumbent best distance found so far by the caller (pass +Inf to disable
// early termination). The returned value is only a lower bound on the true
// distance when termination was early; callers must only use early-terminated
// results for "is this worse than best" comparisons, never as an exact value.
func distance(m, a *view, best float64) float64 {
	h := math.Max(m.rect.Height(), m.rect.Width())
	if h == 0 {
		h = densityEpsilon
	}
	mu := labelMultipliers[m.label]
	base := [4]float64{h * h, h, 1, 1 / h}

	var sum float64

	phi1 := 0.0
	if _, overlap := model.Intersection(m.rect, a.rect); !overlap {
		phi1 = 100
	}
	sum += base[0] * mu[0] * phi1
	if sum > best {
		return sum
	}

	phi2 := model.EdgeDistance(m.rect, a.rect)
	sum += base[1] * mu[1] * phi2
	if sum > best {
		return sum
	}

	phi3 := math.Abs(a.rect.CenterY() - m.rect.CenterY())
	sum += base[2] * mu[2] * phi3
	if sum > best {
		return sum
	}

	phi4 := math.Abs(a.rect.X1 - m.rect.X1)
	sum += base[3] * mu[3] * phi4
	return sum
}
