/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package order implements the reading-order detection engine: pre-mask
// classification, projection segmentation, and priority-ordered semantic
// re-insertion, driven by Engine.ComputeOrder.
package order

import (
	"golang.org/x/xerrors"

	"github.com/readingorder/xycut/common"
	"github.com/readingorder/xycut/model"
)

// Engine computes reading order over a caller-supplied set of elements. It is
// stateless beyond its configuration and safe for concurrent use on disjoint
// inputs (spec.md §5).
type Engine struct {
	cfg Config
}

// NewEngine returns an Engine configured with `cfg`, or an error if `cfg` is
// invalid.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, xerrors.Errorf("order: %w", err)
	}
	return &Engine{cfg: cfg}, nil
}

// ComputeOrder returns a permutation of the ids of `elements` in reading order.
// `page` is the rectangle enclosing all elements. An empty `elements` returns a
// nil slice and no error. Invalid rectangles or duplicate ids are rejected with
// no partial result (spec.md §7).
func (e *Engine) ComputeOrder(elements []model.Element, page model.Rectangle) ([]int, error) {
	if len(elements) == 0 {
		return nil, nil
	}
	if err := validate(elements); err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, xerrors.Errorf("order: page rectangle: %w", err)
	}

	views := make([]*view, len(elements))
	for i, el := range elements {
		views[i] = newView(el)
	}
	if len(views) == 1 {
		return []int{views[0].id}, nil
	}

	masked, regular := classify(views, page, e.cfg)
	common.Log.Info("compute_order: %d elements -> %d masked, %d regular", len(views), len(masked), len(regular))

	crossLayout := make([]*view, 0, len(masked))
	for _, v := range masked {
		if v.label == model.CrossLayout {
			crossLayout = append(crossLayout, v)
		}
	}

	orderedRegular := segmentRegular(regular, crossLayout, page, e.cfg)
	common.Log.Info("compute_order: segmenter produced %d regular ids", len(orderedRegular))

	final := reinsert(orderedRegular, masked, page, e.cfg)
	common.Log.Info("compute_order: re-insertion produced %d final ids", len(final))

	ids := make([]int, len(final))
	for i, v := range final {
		ids[i] = v.id
	}
	return ids, nil
}
