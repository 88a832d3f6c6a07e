/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package order

import (
	"github.com/readingorder/xycut/model"
)

// view is a cheap handle caching an element's id, rectangle, and semantic label,
// grounded on the teacher's textWord/bounded split (extractor/text_bound.go):
// the engine carries views by index into its own slice rather than copying
// caller structures, and never mutates the underlying model.Element.
type view struct {
	elem  model.Element
	id    int
	rect  model.Rectangle
	label model.SemanticLabel // effective label, possibly promoted by the pre-mask classifier
	mask  bool                // caller's should_mask hint
}

func newView(e model.Element) *view {
	return &view{
		elem:  e,
		id:    e.ID(),
		rect:  e.Bounds(),
		label: e.SemanticLabel(),
		mask:  e.ShouldMask(),
	}
}

func (v *view) centerX() float64 { return v.rect.CenterX() }
func (v *view) centerY() float64 { return v.rect.CenterY() }

func (v *view) iou(other *view) float64 {
	return v.elem.IoU(other.elem)
}
