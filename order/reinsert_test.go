/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package order

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/readingorder/xycut/model"
)

func TestReinsertIoUShortcut(t *testing.T) {
	page := rect(0, 0, 200, 200)
	regular := newViews([]model.Element{
		model.NewBasic(0, rect(10, 10, 90, 90), model.Regular, false),
		model.NewBasic(1, rect(10, 110, 90, 190), model.Regular, false),
	})
	// masked element overlaps id 0 directly.
	masked := newViews([]model.Element{
		model.NewBasic(2, rect(20, 20, 80, 80), model.Vision, true),
	})
	result := reinsert(regular, masked, page, DefaultConfig())
	assert.Equal(t, []int{0, 2, 1}, idsOf(result))
}

func TestReinsertSpanningTitlePrecedesColumns(t *testing.T) {
	page := rect(0, 0, 200, 300)
	regular := newViews([]model.Element{
		model.NewBasic(1, rect(10, 60, 90, 290), model.Regular, false),
		model.NewBasic(2, rect(110, 60, 190, 290), model.Regular, false),
	})
	masked := newViews([]model.Element{
		model.NewBasic(0, rect(10, 10, 190, 40), model.HorizontalTitle, true),
	})
	result := reinsert(regular, masked, page, DefaultConfig())
	assert.Equal(t, []int{0, 1, 2}, idsOf(result))
}

func TestReinsertDoesNotSplitARow(t *testing.T) {
	page := rect(0, 0, 200, 400)
	regular := newViews([]model.Element{
		model.NewBasic(0, rect(10, 10, 90, 180), model.Regular, false),
		model.NewBasic(1, rect(110, 10, 190, 180), model.Regular, false),
		model.NewBasic(3, rect(10, 340, 90, 390), model.Regular, false),
		model.NewBasic(4, rect(110, 340, 190, 390), model.Regular, false),
	})
	masked := newViews([]model.Element{
		model.NewBasic(2, rect(40, 200, 160, 320), model.Vision, true),
	})
	result := reinsert(regular, masked, page, DefaultConfig())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, idsOf(result))
}

func TestReinsertRespectsPriorityMonotonicity(t *testing.T) {
	page := rect(0, 0, 200, 200)
	// A Vision element (priority 2) cannot displace a higher-priority
	// CrossLayout element (priority 0); with no legal candidate of
	// sufficient priority it must append.
	regular := newViews(nil)
	masked := newViews([]model.Element{
		model.NewBasic(0, rect(0, 0, 190, 20), model.CrossLayout, true),
		model.NewBasic(1, rect(10, 40, 90, 100), model.Vision, true),
	})
	result := reinsert(regular, masked, page, DefaultConfig())
	assert.Equal(t, []int{0, 1}, idsOf(result))
}

func TestInsertAfterAndBeforeIndex(t *testing.T) {
	a := newView(model.NewBasic(0, rect(0, 0, 10, 10), model.Regular, false))
	b := newView(model.NewBasic(1, rect(0, 0, 10, 10), model.Regular, false))
	c := newView(model.NewBasic(2, rect(0, 0, 10, 10), model.Regular, false))
	v := newView(model.NewBasic(9, rect(0, 0, 10, 10), model.Regular, false))

	list := []*view{a, b, c}
	afterA := insertAfterIndex(list, 0, v)
	assert.Equal(t, []int{0, 9, 1, 2}, idsOf(afterA))

	beforeC := insertBeforeIndex(list, 2, v)
	assert.Equal(t, []int{0, 1, 9, 2}, idsOf(beforeC))
}
