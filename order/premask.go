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

// classify partitions `views` into masked and regular sets per spec.md §4.2.
// Ties between the three rules resolve in the order the rules are listed:
// explicit mask hint, then cross-layout promotion, then geometric isolation.
func classify(views []*view, page model.Rectangle, cfg Config) (masked, regular []*view) {
	n := len(views)
	if n == 0 {
		return nil, nil
	}

	rects := make([]model.Rectangle, n)
	for i, v := range views {
		rects[i] = v.rect
	}
	idx := newRectIndex(rects)

	threshold := medianWidthMultiplier * medianWidth(rects)
	cx, cy := page.Center()
	diag := page.Diagonal()

	effective := make([]model.SemanticLabel, n)
	isMasked := make([]bool, n)
	for i, v := range views {
		effective[i] = v.label
	}

	// Rule 1: explicit mask hint.
	for i, v := range views {
		if v.mask {
			isMasked[i] = true
			common.Log.Debug("premask: element %d masked by explicit hint (label=%v)", v.id, v.label)
		}
	}

	// Rule 2: cross-layout promotion (Eq 1-2).
	for i, v := range views {
		width := v.rect.Width()
		if width <= threshold {
			continue
		}
		overlap := idx.overlapsX(v.rect)
		overlap.Remove(uint32(i))
		count := overlap.GetCardinality()
		if count >= crossLayoutMinOverlaps {
			isMasked[i] = true
			effective[i] = model.CrossLayout
			common.Log.Debug("premask: element %d promoted to CrossLayout (width=%.2f > %.2f threshold, overlap_count=%d)",
				v.id, width, threshold, count)
		}
	}

	// Rule 3: geometric isolation (Eq 3).
	for i, v := range views {
		if isMasked[i] {
			continue
		}
		label := v.label
		if label != model.Vision && label != model.HorizontalTitle && label != model.VerticalTitle {
			continue
		}
		ex, ey := v.rect.Center()
		dist := math.Hypot(ex-cx, ey-cy)
		ratio := math.Inf(1)
		if diag > 0 {
			ratio = dist / diag
		}
		if ratio > centralRatioThreshold {
			continue
		}
		if isolatedFromText(v, views, i) {
			isMasked[i] = true
			common.Log.Debug("premask: element %d masked by isolation (ratio=%.3f)", v.id, ratio)
		}
	}

	masked = make([]*view, 0, n)
	regular = make([]*view, 0, n)
	for i, v := range views {
		effectiveView := &view{elem: v.elem, id: v.id, rect: v.rect, label: effective[i], mask: v.mask}
		if isMasked[i] {
			masked = append(masked, effectiveView)
		} else {
			regular = append(regular, effectiveView)
		}
	}
	return masked, regular
}

// isolatedFromText reports whether no Regular element lies within
// isolationRadius of views[self]'s boundary (edge-to-edge, per spec.md's Open
// Question resolution, see DESIGN.md).
func isolatedFromText(v *view, views []*view, self int) bool {
	for j, w := range views {
		if j == self {
			continue
		}
		if w.label != model.Regular {
			continue
		}
		if model.EdgeDistance(v.rect, w.rect) <= isolationRadius {
			return false
		}
	}
	return true
}

// medianWidth returns the median rectangle width: the exact middle for an odd
// count, the mean of the two middles for an even count.
func medianWidth(rects []model.Rectangle) float64 {
	widths := make([]float64, len(rects))
	for i, r := range rects {
		widths[i] = r.Width()
	}
	sort.Float64s(widths)
	n := len(widths)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return widths[n/2]
	}
	return (widths[n/2-1] + widths[n/2]) / 2
}
