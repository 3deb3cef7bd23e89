package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigatorEmpty(t *testing.T) {
	nav := NewNavigator(0)

	assert.Equal(t, -1, nav.Index())
	assert.False(t, nav.HasNext())
	assert.False(t, nav.HasPrev())
	assert.False(t, nav.Next())
	assert.False(t, nav.Prev())
}

func TestNavigatorMovesAreClamped(t *testing.T) {
	nav := NewNavigator(3)

	assert.Equal(t, 0, nav.Index())
	assert.False(t, nav.Prev())
	assert.Equal(t, 0, nav.Index())

	assert.True(t, nav.Next())
	assert.True(t, nav.Next())
	assert.Equal(t, 2, nav.Index())
	assert.False(t, nav.Next())
	assert.Equal(t, 2, nav.Index())
}

func TestNavigatorDirection(t *testing.T) {
	nav := NewNavigator(3)

	assert.Equal(t, DirectionNone, nav.Direction())
	nav.Next()
	assert.Equal(t, DirectionDown, nav.Direction())
	nav.Prev()
	assert.Equal(t, DirectionUp, nav.Direction())

	// A blocked move resets the direction so no animation plays.
	nav.Prev()
	assert.Equal(t, DirectionNone, nav.Direction())

	nav.Jump(2)
	assert.Equal(t, DirectionNone, nav.Direction())
}

func TestNavigatorJumpClamps(t *testing.T) {
	nav := NewNavigator(4)

	nav.Jump(99)
	assert.Equal(t, 3, nav.Index())
	nav.Jump(-5)
	assert.Equal(t, 0, nav.Index())
}

func TestNavigatorSetLength(t *testing.T) {
	nav := NewNavigator(5)
	nav.Jump(4)

	nav.SetLength(2)
	assert.Equal(t, 1, nav.Index())

	nav.SetLength(0)
	assert.Equal(t, -1, nav.Index())

	nav.SetLength(3)
	assert.Equal(t, 0, nav.Index())
}

func TestNavigatorPreload(t *testing.T) {
	nav := NewNavigator(5)

	assert.Equal(t, []int{0, 1}, nav.Preload())

	nav.Jump(2)
	assert.Equal(t, []int{1, 2, 3}, nav.Preload())

	nav.Jump(4)
	assert.Equal(t, []int{3, 4}, nav.Preload())
}

func TestNavigatorIsActive(t *testing.T) {
	nav := NewNavigator(3)
	nav.Next()

	assert.True(t, nav.IsActive(1))
	assert.False(t, nav.IsActive(0))
	assert.False(t, nav.IsActive(2))
}
