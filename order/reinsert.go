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

// reinsert runs the priority-ordered re-insertion engine (spec.md §4.5). `regular`
// is the segmenter's flat ordered list, `masked` is the pre-mask classifier's
// masked set, and `page` supplies the page width used by the spanning rule.
func reinsert(regular, masked []*view, page model.Rectangle, cfg Config) []*view {
	working := append([]*view(nil), regular...)

	queue := append([]*view(nil), masked...)
	sort.Slice(queue, func(i, j int) bool {
		a, b := queue[i], queue[j]
		pa, pb := a.label.Priority(), b.label.Priority()
		if pa != pb {
			return pa < pb
		}
		if a.centerY() != b.centerY() {
			return a.centerY() < b.centerY()
		}
		return a.centerX() < b.centerX()
	})

	pageWidth := page.Width()

	for _, m := range queue {
		p := m.label.Priority()
		var candidates []int
		for i, c := range working {
			if c.label.Priority() >= p {
				candidates = append(candidates, i)
			}
		}
		if len(candidates) == 0 {
			common.Log.Debug("reinsert: element %d has no legal anchor, appending", m.id)
			working = append(working, m)
			continue
		}

		if anchor := firstIoUCandidate(m, working, candidates); anchor >= 0 {
			common.Log.Debug("reinsert: element %d placed by IoU shortcut", m.id)
			working = insertAfterIndex(working, anchor, m)
			continue
		}

		var anchor int
		if m.rect.Width() > spanningWidthRatio*pageWidth {
			anchor = bestSpanningCandidate(m, working, candidates)
			common.Log.Debug("reinsert: element %d placed by spanning rule", m.id)
		} else {
			anchor = bestColumnCandidate(m, working, candidates)
			common.Log.Debug("reinsert: element %d placed by column rule", m.id)
		}

		// The spanning/column rules pick the geometrically nearest anchor, not
		// necessarily one that precedes m in reading order (e.g. a title whose
		// nearest anchor is the first column it sits above). Resolve the side
		// from the anchor's row: a preceding masked element goes before the
		// anchor's whole row, a following one goes after it, so a row of
		// same-line siblings is never split by an insertion anchored to one
		// member of it (see DESIGN.md).
		lo, hi := rowExtent(working, anchor, cfg.SameRowTolerance)
		if isBeforeInReadingOrder(m, working[anchor], cfg.SameRowTolerance) {
			working = insertBeforeIndex(working, lo, m)
		} else {
			working = insertAfterIndex(working, hi, m)
		}
	}
	return working
}

// isBeforeInReadingOrder reports whether `m` precedes `c` in reading order:
// strictly above by more than `tol`, or in the same row and to the left.
func isBeforeInReadingOrder(m, c *view, tol float64) bool {
	dy := m.centerY() - c.centerY()
	if math.Abs(dy) > tol {
		return dy < 0
	}
	return m.centerX() < c.centerX()
}

// rowExtent returns the index range [lo,hi] of the maximal run of elements
// around `working[i]` whose centers lie within `tol` of working[i]'s center on y.
func rowExtent(working []*view, i int, tol float64) (lo, hi int) {
	lo, hi = i, i
	for lo > 0 && math.Abs(working[lo-1].centerY()-working[i].centerY()) <= tol {
		lo--
	}
	for hi < len(working)-1 && math.Abs(working[hi+1].centerY()-working[i].centerY()) <= tol {
		hi++
	}
	return lo, hi
}

// firstIoUCandidate returns the position of the first candidate (in working-list
// order) with nonzero IoU against m, or -1 if none exists.
func firstIoUCandidate(m *view, working []*view, candidates []int) int {
	for _, i := range candidates {
		if m.iou(working[i]) > 0 {
			return i
		}
	}
	return -1
}

// bestSpanningCandidate picks the candidate minimizing |center_y(m)-center_y(c)|
// alone, per the spanning rule (spec.md §4.5 step 3).
func bestSpanningCandidate(m *view, working []*view, candidates []int) int {
	best := candidates[0]
	bestDiff := math.Abs(working[best].centerY() - m.centerY())
	for _, i := range candidates[1:] {
		diff := math.Abs(working[i].centerY() - m.centerY())
		if diff < bestDiff {
			bestDiff = diff
			best = i
		}
	}
	return best
}

// bestColumnCandidate evaluates D(m,c) over every candidate and returns the
// argmin, breaking ties on smaller center_y then smaller center_x (spec.md §4.5
// step 4).
func bestColumnCandidate(m *view, working []*view, candidates []int) int {
	best := candidates[0]
	bestD := distance(m, working[best], math.Inf(1))
	for _, i := range candidates[1:] {
		d := distance(m, working[i], bestD)
		if d < bestD || (d == bestD && candidateLess(working[i], working[best])) {
			bestD = d
			best = i
		}
	}
	return best
}

func candidateLess(a, b *view) bool {
	if a.centerY() != b.centerY() {
		return a.centerY() < b.centerY()
	}
	return a.centerX() < b.centerX()
}

// insertAfterIndex returns a copy of `list` with `v` inserted immediately after
// position `i`.
func insertAfterIndex(list []*view, i int, v *view) []*view {
	result := make([]*view, 0, len(list)+1)
	result = append(result, list[:i+1]...)
	result = append(result, v)
	result = append(result, list[i+1:]...)
	return result
}

// insertBeforeIndex returns a copy of `list` with `v` inserted immediately
// before position `i`.
func insertBeforeIndex(list []*view, i int, v *view) []*view {
	result := make([]*view, 0, len(list)+1)
	result = append(result, list[:i]...)
	result = append(result, v)
	result = append(result, list[i:]...)
	return result
}
