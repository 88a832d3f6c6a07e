/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import "errors"

// ErrInvalidRectangle is returned when a rectangle has x1>x2 or y1>y2.
var ErrInvalidRectangle = errors.New("model: invalid rectangle")

// ErrDuplicateID is returned when two input elements share an id.
var ErrDuplicateID = errors.New("model: duplicate element id")
