/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

// Element is the capability interface the engine consumes from the caller. It is
// the sole extension point: implementations may realize it with a struct, a view
// into a larger document object, or a closure-backed adapter, as long as each
// method is cheap — the segmenter and distance metric are hot paths.
type Element interface {
	// ID returns a non-negative integer, stable and unique within one ComputeOrder call.
	ID() int
	// Bounds returns the element's axis-aligned bounding rectangle.
	Bounds() Rectangle
	// Center returns the element's center point. Implementations may cache this;
	// the default is the rectangle's geometric center.
	Center() (x, y float64)
	// IoU returns the intersection-over-union of this element with `other`.
	IoU(other Element) float64
	// ShouldMask is a caller-supplied hint: true for titles/figures/tables by convention.
	ShouldMask() bool
	// SemanticLabel returns the element's coarse class tag.
	SemanticLabel() SemanticLabel
}

// Basic is a minimal, immutable Element implementation backed by plain fields. It
// is the one most callers need; IoU is computed from Bounds via model.IoU so two
// Basic values never need to know about each other's concrete type.
type Basic struct {
	IDValue     int
	BoundsValue Rectangle
	Label       SemanticLabel
	Mask        bool
}

// NewBasic returns a Basic element.
func NewBasic(id int, bounds Rectangle, label SemanticLabel, shouldMask bool) Basic {
	return Basic{IDValue: id, BoundsValue: bounds, Label: label, Mask: shouldMask}
}

func (b Basic) ID() int             { return b.IDValue }
func (b Basic) Bounds() Rectangle   { return b.BoundsValue }
func (b Basic) ShouldMask() bool    { return b.Mask }
func (b Basic) SemanticLabel() SemanticLabel { return b.Label }

func (b Basic) Center() (float64, float64) {
	return b.BoundsValue.Center()
}

func (b Basic) IoU(other Element) float64 {
	return IoU(b.BoundsValue, other.Bounds())
}
