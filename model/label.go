/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

// SemanticLabel is a coarse class tag carrying both a mask hint and a reading
// priority. Lower Priority() values are read first.
type SemanticLabel int

const (
	// CrossLayout elements span multiple columns.
	CrossLayout SemanticLabel = iota
	// HorizontalTitle is a horizontally laid section/page title.
	HorizontalTitle
	// VerticalTitle is a vertically laid title. Rare.
	VerticalTitle
	// Vision is a figure, table, or image.
	Vision
	// Regular is body text.
	Regular
)

var labelNames = map[SemanticLabel]string{
	CrossLayout:      "CrossLayout",
	HorizontalTitle:  "HorizontalTitle",
	VerticalTitle:    "VerticalTitle",
	Vision:           "Vision",
	Regular:          "Regular",
}

// String returns the label's name.
func (l SemanticLabel) String() string {
	if s, ok := labelNames[l]; ok {
		return s
	}
	return "Unknown"
}

// Priority returns the total order used for priority-ordered re-insertion and for
// tie-breaking; lower sorts first. CrossLayout=0, the two title variants tie
// at 1, Vision=2, Regular=3, matching spec.md's enum values directly.
func (l SemanticLabel) Priority() int {
	switch l {
	case CrossLayout:
		return 0
	case HorizontalTitle, VerticalTitle:
		return 1
	case Vision:
		return 2
	default:
		return 3
	}
}

// IsTitle returns true for HorizontalTitle and VerticalTitle.
func (l SemanticLabel) IsTitle() bool {
	return l == HorizontalTitle || l == VerticalTitle
}
