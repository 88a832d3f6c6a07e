/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package order

import (
	"golang.org/x/xerrors"

	"github.com/readingorder/xycut/model"
)

// validate checks the invariants spec.md §7 requires at the call boundary: every
// rectangle is well-formed and every id is unique. It returns wrapped
// model.ErrInvalidRectangle / model.ErrDuplicateID, never a partial result.
func validate(elements []model.Element) error {
	seen := make(map[int]bool, len(elements))
	for _, e := range elements {
		if err := e.Bounds().Validate(); err != nil {
			return xerrors.Errorf("order: element %d: %w", e.ID(), err)
		}
		if seen[e.ID()] {
			return xerrors.Errorf("order: element %d: %w", e.ID(), model.ErrDuplicateID)
		}
		seen[e.ID()] = true
	}
	return nil
}
