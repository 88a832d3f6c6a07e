/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package order

import (
	"sort"

	"github.com/RoaringBitmap/roaring"

	"github.com/readingorder/xycut/model"
)

// attr identifies one of the sortable coordinates of a rectangle. The pre-mask
// classifier needs fast "which elements have attr <= z" / "attr >= z" queries; rectIndex precomputes one sorted order per attr so those
// queries are a binary search plus a bitmap materialization instead of an O(n)
// rescan per call.
type attr int

const (
	attrX1 attr = iota
	attrX2
	attrY1
	attrY2
)

var attrValue = map[attr]func(model.Rectangle) float64{
	attrX1: func(r model.Rectangle) float64 { return r.X1 },
	attrX2: func(r model.Rectangle) float64 { return r.X2 },
	attrY1: func(r model.Rectangle) float64 { return r.Y1 },
	attrY2: func(r model.Rectangle) float64 { return r.Y2 },
}

// rectIndex is a multi-attribute sorted index over a fixed slice of rectangles,
// grounded on the teacher's extractor.rectIndex (extractor/text_rect.go): one
// sorted permutation of element indices per attribute, queried with binary
// search and materialized as a roaring.Bitmap for set algebra.
type rectIndex struct {
	rects  []model.Rectangle
	orders map[attr][]uint32
}

func newRectIndex(rects []model.Rectangle) *rectIndex {
	idx := &rectIndex{rects: rects, orders: map[attr][]uint32{}}
	for a, get := range attrValue {
		idx.orders[a] = sortedOrder(rects, get)
	}
	return idx
}

func sortedOrder(rects []model.Rectangle, value func(model.Rectangle) float64) []uint32 {
	order := make([]uint32, len(rects))
	for i := range rects {
		order[i] = uint32(i)
	}
	sort.Slice(order, func(i, j int) bool {
		return value(rects[order[i]]) < value(rects[order[j]])
	})
	return order
}

// le returns the indices i with attrValue[a](rects[i]) <= z.
func (idx *rectIndex) le(a attr, z float64) *roaring.Bitmap {
	order := idx.orders[a]
	value := attrValue[a]
	n := len(order)
	i := sort.Search(n, func(i int) bool { return value(idx.rects[order[i]]) > z })
	return roaring.BitmapOf(order[:i]...)
}

// ge returns the indices i with attrValue[a](rects[i]) >= z.
func (idx *rectIndex) ge(a attr, z float64) *roaring.Bitmap {
	order := idx.orders[a]
	value := attrValue[a]
	n := len(order)
	i := sort.Search(n, func(i int) bool { return value(idx.rects[order[i]]) >= z })
	return roaring.BitmapOf(order[i:]...)
}

// overlapsX returns the indices of rectangles whose horizontal span overlaps
// `r`'s: other.X1 <= r.X2 AND other.X2 >= r.X1.
func (idx *rectIndex) overlapsX(r model.Rectangle) *roaring.Bitmap {
	left := idx.le(attrX1, r.X2)
	right := idx.ge(attrX2, r.X1)
	left.And(right)
	return left
}
