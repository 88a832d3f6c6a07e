/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package order

import (
	"math"
	"sort"

	"github.com/readingorder/xycut/common"
	"github.com/readingorder/xycut/model"
)

// axis is one of the two projection directions the segmenter cuts along.
type axis int

const (
	// axisHorizontal cuts along y, separating a region into top/bottom rows.
	axisHorizontal axis = iota
	// axisVertical cuts along x, separating a region into left/right columns.
	axisVertical
)

func (a axis) toggled() axis {
	if a == axisHorizontal {
		return axisVertical
	}
	return axisHorizontal
}

// axisSpan returns the rectangle's projected interval on `a`.
func axisSpan(r model.Rectangle, a axis) (lo, hi float64) {
	if a == axisVertical {
		return r.X1, r.X2
	}
	return r.Y1, r.Y2
}

func axisCenter(r model.Rectangle, a axis) float64 {
	if a == axisVertical {
		return r.CenterX()
	}
	return r.CenterY()
}

// splitRegion returns the two sub-regions `region` is divided into by a cut at
// `mid` along `a`.
func splitRegion(region model.Rectangle, a axis, mid float64) (before, after model.Rectangle) {
	before, after = region, region
	if a == axisVertical {
		before.X2, after.X1 = mid, mid
	} else {
		before.Y2, after.Y1 = mid, mid
	}
	return before, after
}

// segmentRegular runs the projection segmenter (spec.md §4.3) over `regular`,
// returning a flat ordered list that is a permutation of `regular`.
// `crossLayout` is the set of elements the pre-mask classifier promoted to
// CrossLayout in phase 1; it is used only to pick the initial cut axis (Eq 4-5).
func segmentRegular(regular, crossLayout []*view, page model.Rectangle, cfg Config) []*view {
	if len(regular) <= 1 {
		return append([]*view(nil), regular...)
	}

	sc := stretchSum(crossLayout)
	ss := stretchSum(regular)
	ratio := densityRatio(sc, ss)

	initial := axisHorizontal
	if ratio > densityRatioCutoff || len(regular) > largeGroupCutoff {
		initial = axisVertical
	}
	common.Log.Debug("segment: density_ratio=%.3f regular=%d initial_axis=%v", ratio, len(regular), initial)

	return cut(page, regular, initial, cfg)
}

// stretchSum returns Σ(width/height) over `views`, skipping zero-height elements.
func stretchSum(views []*view) float64 {
	var sum float64
	for _, v := range views {
		h := v.rect.Height()
		if h > 0 {
			sum += v.rect.Width() / h
		}
	}
	return sum
}

// densityRatio implements Eq 4: τ_d = S_c / max(S_s, ε), or ∞ if S_s == 0.
func densityRatio(sc, ss float64) float64 {
	if ss == 0 {
		return math.Inf(1)
	}
	return sc / math.Max(ss, densityEpsilon)
}

// cut recursively partitions `elements` at the widest qualifying projection gap
// along `ax`, alternating axis on recursion, and falls back to a row/column sort
// when no gap qualifies (spec.md §4.3 steps 1-6).
func cut(region model.Rectangle, elements []*view, ax axis, cfg Config) []*view {
	if len(elements) <= 1 {
		return append([]*view(nil), elements...)
	}

	gap, ok := findWidestGap(region, elements, ax, cfg)
	if !ok {
		return fallbackOrder(elements, cfg.SameRowTolerance)
	}

	before, after := splitAt(elements, ax, gap.mid)
	if len(before) == 0 || len(after) == 0 {
		return fallbackOrder(elements, cfg.SameRowTolerance)
	}

	beforeRegion, afterRegion := splitRegion(region, ax, gap.mid)
	next := ax.toggled()
	ordered := cut(beforeRegion, before, next, cfg)
	ordered = append(ordered, cut(afterRegion, after, next, cfg)...)
	return ordered
}

// gapInfo describes a candidate projection gap.
type gapInfo struct {
	width float64
	mid   float64
}

// findWidestGap builds the projection histogram of `elements` on `ax` over
// `region`'s extent, finds the maximal zero-count bin runs ("gaps"), and
// returns the widest one at least cfg.MinCutThreshold wide, breaking ties on
// the gap whose midpoint is closest to the region's center (spec.md §4.3 steps
// 2-4).
func findWidestGap(region model.Rectangle, elements []*view, ax axis, cfg Config) (gapInfo, bool) {
	lo, hi := axisSpan(region, ax)
	span := hi - lo
	if span <= 0 {
		return gapInfo{}, false
	}
	binWidth := cfg.binWidth()
	numBins := int(math.Ceil(span / binWidth))
	if numBins < 1 {
		numBins = 1
	}

	diff := make([]int, numBins+1)
	for _, v := range elements {
		s, e := axisSpan(v.rect, ax)
		s = math.Max(s, lo)
		e = math.Min(e, hi)
		if e <= s {
			continue
		}
		bStart := int((s - lo) / binWidth)
		bEnd := int(math.Ceil((e - lo) / binWidth))
		if bStart < 0 {
			bStart = 0
		}
		if bEnd > numBins {
			bEnd = numBins
		}
		if bStart >= bEnd {
			continue
		}
		diff[bStart]++
		diff[bEnd]--
	}

	counts := make([]int, numBins)
	running := 0
	for i := 0; i < numBins; i++ {
		running += diff[i]
		counts[i] = running
	}

	regionCenter := (lo + hi) / 2
	var best gapInfo
	found := false
	i := 0
	for i < numBins {
		if counts[i] != 0 {
			i++
			continue
		}
		j := i
		for j < numBins && counts[j] == 0 {
			j++
		}
		width := float64(j-i) * binWidth
		mid := lo + (float64(i)+float64(j-i)/2)*binWidth
		if width >= cfg.MinCutThreshold {
			better := !found || width > best.width ||
				(width == best.width && math.Abs(mid-regionCenter) < math.Abs(best.mid-regionCenter))
			if better {
				best = gapInfo{width: width, mid: mid}
				found = true
			}
		}
		i = j
	}
	return best, found
}

// splitAt partitions `elements` into those strictly before and strictly after
// `mid` on `ax`. A true zero-density gap guarantees every element's full span
// falls on one side; the center-based tie-break only guards against float edge
// cases at the gap boundary.
func splitAt(elements []*view, ax axis, mid float64) (before, after []*view) {
	for _, v := range elements {
		lo, hi := axisSpan(v.rect, ax)
		switch {
		case hi <= mid:
			before = append(before, v)
		case lo >= mid:
			after = append(after, v)
		case axisCenter(v.rect, ax) < mid:
			before = append(before, v)
		default:
			after = append(after, v)
		}
	}
	return before, after
}

// fallbackOrder sorts `elements` by (row bucket, x1): elements whose centers lie
// within `tolerance` on y of a row's anchor element join that row; rows are
// emitted top-to-bottom, each sorted left-to-right by x1 (spec.md §4.3 step 6).
func fallbackOrder(elements []*view, tolerance float64) []*view {
	sorted := append([]*view(nil), elements...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].centerY() < sorted[j].centerY() })

	var rows [][]*view
	for _, v := range sorted {
		placed := false
		for i, row := range rows {
			if math.Abs(v.centerY()-row[0].centerY()) <= tolerance {
				rows[i] = append(rows[i], v)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, []*view{v})
		}
	}

	result := make([]*view, 0, len(elements))
	for _, row := range rows {
		sort.Slice(row, func(i, j int) bool { return row[i].rect.X1 < row[j].rect.X1 })
		result = append(result, row...)
	}
	return result
}
