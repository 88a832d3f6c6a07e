/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readingorder/xycut/model"
)

func newViews(elems []model.Element) []*view {
	views := make([]*view, len(elems))
	for i, e := range elems {
		views[i] = newView(e)
	}
	return views
}

func TestClassifyExplicitMaskHint(t *testing.T) {
	page := rect(0, 0, 100, 100)
	elems := []model.Element{
		model.NewBasic(0, rect(10, 10, 90, 20), model.HorizontalTitle, true),
		model.NewBasic(1, rect(10, 30, 90, 90), model.Regular, false),
	}
	masked, regular := classify(newViews(elems), page, DefaultConfig())
	require.Len(t, masked, 1)
	require.Len(t, regular, 1)
	assert.Equal(t, 0, masked[0].id)
	assert.Equal(t, model.HorizontalTitle, masked[0].label)
	assert.Equal(t, 1, regular[0].id)
}

func TestClassifyCrossLayoutPromotion(t *testing.T) {
	page := rect(0, 0, 300, 200)
	// median width of [290,80,80,80] = 80; threshold = 1.3*80 = 104.
	elems := []model.Element{
		model.NewBasic(0, rect(0, 10, 290, 40), model.Regular, false),
		model.NewBasic(1, rect(10, 60, 90, 190), model.Regular, false),
		model.NewBasic(2, rect(110, 60, 190, 190), model.Regular, false),
		model.NewBasic(3, rect(210, 60, 290, 190), model.Regular, false),
	}
	masked, regular := classify(newViews(elems), page, DefaultConfig())
	require.Len(t, masked, 1)
	assert.Equal(t, 0, masked[0].id)
	assert.Equal(t, model.CrossLayout, masked[0].label)
	assert.Len(t, regular, 3)
}

func TestClassifyCrossLayoutRequiresTwoOverlaps(t *testing.T) {
	page := rect(0, 0, 300, 200)
	// e0 is wide but only overlaps one other element on x.
	elems := []model.Element{
		model.NewBasic(0, rect(0, 10, 200, 40), model.Regular, false),
		model.NewBasic(1, rect(10, 60, 90, 190), model.Regular, false),
	}
	masked, regular := classify(newViews(elems), page, DefaultConfig())
	assert.Len(t, masked, 0)
	assert.Len(t, regular, 2)
}

func TestClassifyGeometricIsolation(t *testing.T) {
	page := rect(0, 0, 1000, 1000)
	// A Vision element near the page center with no text within 50 units.
	elems := []model.Element{
		model.NewBasic(0, rect(480, 480, 520, 520), model.Vision, false),
		model.NewBasic(1, rect(0, 0, 50, 50), model.Regular, false),
	}
	masked, regular := classify(newViews(elems), page, DefaultConfig())
	require.Len(t, masked, 1)
	assert.Equal(t, 0, masked[0].id)
	assert.Len(t, regular, 1)
}

func TestClassifyIsolationRequiresCentralLocation(t *testing.T) {
	page := rect(0, 0, 1000, 1000)
	// Vision element far from the page center, isolated, but isolation rule
	// only applies within 0.2 of the page diagonal from center.
	elems := []model.Element{
		model.NewBasic(0, rect(0, 0, 40, 40), model.Vision, false),
	}
	masked, regular := classify(newViews(elems), page, DefaultConfig())
	assert.Len(t, masked, 0)
	require.Len(t, regular, 1)
}

func TestClassifyRegularNeverIsolated(t *testing.T) {
	page := rect(0, 0, 1000, 1000)
	// A lone Regular element near the center is never masked by isolation:
	// the rule only applies to Vision/HorizontalTitle/VerticalTitle.
	elems := []model.Element{
		model.NewBasic(0, rect(480, 480, 520, 520), model.Regular, false),
	}
	masked, regular := classify(newViews(elems), page, DefaultConfig())
	assert.Len(t, masked, 0)
	assert.Len(t, regular, 1)
}

func TestMedianWidthOddAndEven(t *testing.T) {
	odd := []model.Rectangle{rect(0, 0, 10, 0), rect(0, 0, 30, 0), rect(0, 0, 20, 0)}
	assert.Equal(t, 20.0, medianWidth(odd))

	even := []model.Rectangle{rect(0, 0, 10, 0), rect(0, 0, 30, 0), rect(0, 0, 20, 0), rect(0, 0, 40, 0)}
	assert.Equal(t, 25.0, medianWidth(even))
}
