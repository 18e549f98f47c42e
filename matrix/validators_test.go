// SPDX-License-Identifier: MIT

package matrix

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blockmat/layout"
)

// TestValidators checks the shared bounds helpers against a 3×2 plan.
func TestValidators(t *testing.T) {
	p, err := layout.New(3, 2, 4, 4)
	require.NoError(t, err)

	require.NoError(t, validateRow(&p, 0))
	require.NoError(t, validateRow(&p, 2))
	require.ErrorIs(t, validateRow(&p, 3), ErrIndexOutOfRange)
	require.ErrorIs(t, validateRow(&p, -1), ErrIndexOutOfRange)

	require.NoError(t, validateCoord(&p, 2, 1))
	require.ErrorIs(t, validateCoord(&p, 2, 2), ErrIndexOutOfRange)
	require.ErrorIs(t, validateCoord(&p, 3, 0), ErrIndexOutOfRange)

	require.NoError(t, validateIndex(&p, 5))
	require.ErrorIs(t, validateIndex(&p, 6), ErrIndexOutOfRange)
	require.ErrorIs(t, validateIndex(&p, -1), ErrIndexOutOfRange)
}
