package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigationState_AdvanceWraps(t *testing.T) {
	nav := NewNavigationState()
	assert.Equal(t, NoFocus, nav.Focused)

	nav.Advance(3)
	assert.Equal(t, 0, nav.Focused)
	nav.Advance(3)
	nav.Advance(3)
	assert.Equal(t, 2, nav.Focused)
	nav.Advance(3)
	assert.Equal(t, 0, nav.Focused)
}

func TestNavigationState_RetreatWraps(t *testing.T) {
	nav := NavigationState{Focused: 0}
	nav.Retreat(4)
	assert.Equal(t, 3, nav.Focused)
	nav.Retreat(4)
	assert.Equal(t, 2, nav.Focused)

	nav.Reset()
	nav.Retreat(4)
	assert.Equal(t, 3, nav.Focused)
}

func TestNavigationState_EmptyList(t *testing.T) {
	nav := NavigationState{Focused: 2}
	nav.Advance(0)
	assert.Equal(t, NoFocus, nav.Focused)

	nav.Focused = 1
	nav.Retreat(0)
	assert.False(t, nav.HasFocus())
}

func TestNavigationState_SelectFirst(t *testing.T) {
	nav := NavigationState{Focused: 5}
	nav.SelectFirst(7)
	assert.Equal(t, 0, nav.Focused)

	nav.SelectFirst(0)
	assert.Equal(t, NoFocus, nav.Focused)
}
