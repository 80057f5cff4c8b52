// SPDX-License-Identifier: MIT

package hungarian_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hungarian/hungarian"
)

func TestVerify(t *testing.T) {
	cases := []struct {
		name string
		a    hungarian.Assignment
		err  error
	}{
		{"valid", hungarian.Assignment{{0, 2}, {1, 0}, {2, 1}}, nil},
		{"short", hungarian.Assignment{{0, 0}, {1, 1}}, hungarian.ErrIncomplete},
		{"long", hungarian.Assignment{{0, 0}, {1, 1}, {2, 2}, {0, 1}}, hungarian.ErrIncomplete},
		{"negative", hungarian.Assignment{{0, 0}, {1, -1}, {2, 2}}, hungarian.ErrCellOutOfRange},
		{"too large", hungarian.Assignment{{0, 0}, {3, 1}, {2, 2}}, hungarian.ErrCellOutOfRange},
		{"row reused", hungarian.Assignment{{0, 0}, {0, 1}, {2, 2}}, hungarian.ErrRowReused},
		{"col reused", hungarian.Assignment{{0, 0}, {1, 0}, {2, 2}}, hungarian.ErrColReused},
		{"nil", nil, hungarian.ErrIncomplete},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := hungarian.Check(tc.a, 3)
			if tc.err == nil {
				require.NoError(t, err)
				require.True(t, hungarian.Verify(tc.a, 3))
				return
			}
			require.ErrorIs(t, err, tc.err)
			require.False(t, hungarian.Verify(tc.a, 3))
		})
	}
}

func TestVerify_Empty(t *testing.T) {
	require.True(t, hungarian.Verify(nil, 0))
	require.NoError(t, hungarian.Check(hungarian.Assignment{}, 0))
}
