// Package feed holds the presentation state machines behind the vertical
// video feed: the single-active-index navigator and the per-video player
// lifecycle.
package feed

// Direction of the last navigation step, used only to drive the slide
// animation. It carries no data semantics.
type Direction int

const (
	DirectionUp   Direction = -1
	DirectionNone Direction = 0
	DirectionDown Direction = 1
)

// Navigator tracks the active position in an ordered list of video entries.
// Exactly one entry is active at a time; moves are clamped at the list
// bounds and never wrap around.
type Navigator struct {
	length    int
	index     int
	direction Direction
}

// NewNavigator creates a navigator over a list of the given length.
// An empty list has no active entry and refuses to move.
func NewNavigator(length int) *Navigator {
	if length < 0 {
		length = 0
	}
	return &Navigator{length: length}
}

// Len returns the number of entries.
func (n *Navigator) Len() int { return n.length }

// Index returns the active index. For an empty list it returns -1.
func (n *Navigator) Index() int {
	if n.length == 0 {
		return -1
	}
	return n.index
}

// Direction returns the direction of the last successful move.
func (n *Navigator) Direction() Direction { return n.direction }

// HasNext reports whether an entry exists after the active one.
func (n *Navigator) HasNext() bool { return n.index < n.length-1 }

// HasPrev reports whether an entry exists before the active one.
func (n *Navigator) HasPrev() bool { return n.index > 0 }

// Next advances to the following entry. At the last entry it stays put,
// resets the direction and reports false.
func (n *Navigator) Next() bool {
	if n.length == 0 || !n.HasNext() {
		n.direction = DirectionNone
		return false
	}
	n.index++
	n.direction = DirectionDown
	return true
}

// Prev moves back one entry. At the first entry it stays put, resets the
// direction and reports false.
func (n *Navigator) Prev() bool {
	if n.length == 0 || !n.HasPrev() {
		n.direction = DirectionNone
		return false
	}
	n.index--
	n.direction = DirectionUp
	return true
}

// Jump moves straight to index i, clamped into range. Jumps reset the
// direction since they are not swipe-animated.
func (n *Navigator) Jump(i int) {
	if n.length == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= n.length {
		i = n.length - 1
	}
	n.index = i
	n.direction = DirectionNone
}

// SetLength resizes the underlying list (e.g. after loading another page)
// and re-clamps the active index.
func (n *Navigator) SetLength(length int) {
	if length < 0 {
		length = 0
	}
	n.length = length
	if n.index >= length {
		n.index = length - 1
	}
	if n.index < 0 {
		n.index = 0
	}
}

// IsActive reports whether entry i is the single active entry. Inactive
// entries are rendered paused.
func (n *Navigator) IsActive(i int) bool {
	return n.length > 0 && i == n.index
}

// Preload returns the indexes worth keeping loaded: the active entry and
// its immediate neighbors.
func (n *Navigator) Preload() []int {
	if n.length == 0 {
		return nil
	}
	indexes := []int{n.index}
	if n.HasPrev() {
		indexes = append([]int{n.index - 1}, indexes...)
	}
	if n.HasNext() {
		indexes = append(indexes, n.index+1)
	}
	return indexes
}
