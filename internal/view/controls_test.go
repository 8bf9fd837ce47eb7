package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControlsNoPages(t *testing.T) {
	assert.Nil(t, Controls(1, 0))
}

func TestControlsSinglePage(t *testing.T) {
	controls := Controls(1, 1)

	require.Len(t, controls, 3)
	assert.Equal(t, ControlPrev, controls[0].Kind)
	assert.True(t, controls[0].Disabled)
	assert.Equal(t, ControlPage, controls[1].Kind)
	assert.True(t, controls[1].Active)
	assert.Equal(t, ControlNext, controls[2].Kind)
	assert.True(t, controls[2].Disabled)
}

func TestControlsMiddleOfLargeRange(t *testing.T) {
	// Page 6 of 12: prev, first, ..., 4 5 [6] 7 8, ..., last, next.
	controls := Controls(6, 12)

	kinds := make([]ControlKind, 0, len(controls))
	for _, c := range controls {
		kinds = append(kinds, c.Kind)
	}
	assert.Equal(t, []ControlKind{
		ControlPrev, ControlFirst, ControlEllipsis,
		ControlPage, ControlPage, ControlPage, ControlPage, ControlPage,
		ControlEllipsis, ControlLast, ControlNext,
	}, kinds)

	assert.Equal(t, 5, controls[0].Target)
	assert.False(t, controls[0].Disabled)
	assert.Equal(t, 1, controls[1].Target)
	assert.Equal(t, 12, controls[9].Target)
	assert.Equal(t, 7, controls[10].Target)

	var active []int
	for _, c := range controls {
		if c.Active {
			active = append(active, c.Target)
		}
	}
	assert.Equal(t, []int{6}, active)
}

func TestControlsWindowTouchingStart(t *testing.T) {
	// Page 1 of 5: no first jump, no leading ellipsis.
	controls := Controls(1, 5)

	require.Equal(t, ControlPrev, controls[0].Kind)
	assert.True(t, controls[0].Disabled)
	assert.Equal(t, ControlPage, controls[1].Kind)
	assert.Equal(t, 1, controls[1].Target)

	// Window is 1..3, then a jump straight to 5 with an ellipsis
	// because 3 < 5-1.
	kinds := make([]ControlKind, 0, len(controls))
	for _, c := range controls {
		kinds = append(kinds, c.Kind)
	}
	assert.Equal(t, []ControlKind{
		ControlPrev, ControlPage, ControlPage, ControlPage,
		ControlEllipsis, ControlLast, ControlNext,
	}, kinds)
}

func TestControlsFirstWithoutEllipsis(t *testing.T) {
	// Page 4 of 6: window 2..6 starts exactly at 2, so the first jump
	// appears without an ellipsis and the window runs to the end.
	controls := Controls(4, 6)

	kinds := make([]ControlKind, 0, len(controls))
	for _, c := range controls {
		kinds = append(kinds, c.Kind)
	}
	assert.Equal(t, []ControlKind{
		ControlPrev, ControlFirst,
		ControlPage, ControlPage, ControlPage, ControlPage, ControlPage,
		ControlNext,
	}, kinds)
}

func TestControlsLastWithoutEllipsis(t *testing.T) {
	// Page 3 of 6: window 1..5 ends exactly one before the last page,
	// so the last jump appears without an ellipsis.
	controls := Controls(3, 6)

	kinds := make([]ControlKind, 0, len(controls))
	for _, c := range controls {
		kinds = append(kinds, c.Kind)
	}
	assert.Equal(t, []ControlKind{
		ControlPrev,
		ControlPage, ControlPage, ControlPage, ControlPage, ControlPage,
		ControlLast, ControlNext,
	}, kinds)
	assert.Equal(t, 6, controls[6].Target)
}

func TestControlsLastPage(t *testing.T) {
	controls := Controls(12, 12)

	last := controls[len(controls)-1]
	assert.Equal(t, ControlNext, last.Kind)
	assert.True(t, last.Disabled)
	assert.Equal(t, 12, last.Target)
}

func TestControlsClampsOutOfRangePage(t *testing.T) {
	assert.Equal(t, Controls(3, 3), Controls(99, 3))
}
