package logic

// Navigator handles the panel cursor and its viewport
type Navigator struct {
	selectedIndex  int
	viewportOffset int
	viewportHeight int
	totalItems     int
}

// NewNavigator creates a new navigator showing viewportHeight rows at a time
func NewNavigator(viewportHeight int) *Navigator {
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	return &Navigator{viewportHeight: viewportHeight}
}

// UpdateState updates the row count and viewport height, keeping the cursor
// on a valid row
func (n *Navigator) UpdateState(totalItems, viewportHeight int) {
	if totalItems < 0 {
		totalItems = 0
	}
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	n.totalItems = totalItems
	n.viewportHeight = viewportHeight
	n.clampSelected()
	n.ensureSelectedVisible()
}

// Reset puts the cursor back on the first row
func (n *Navigator) Reset() {
	n.selectedIndex = 0
	n.viewportOffset = 0
}

// GetSelectedIndex returns the cursor row, or -1 when there are no rows
func (n *Navigator) GetSelectedIndex() int {
	if n.totalItems == 0 {
		return -1
	}
	return n.selectedIndex
}

// GetViewportOffset returns the first visible row
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// GetViewportHeight returns how many rows fit in the panel
func (n *Navigator) GetViewportHeight() int {
	return n.viewportHeight
}

// TotalItems returns the number of rows
func (n *Navigator) TotalItems() int {
	return n.totalItems
}

// SetSelectedIndex sets the cursor and ensures it's visible
func (n *Navigator) SetSelectedIndex(index int) (int, int) {
	n.selectedIndex = index
	n.clampSelected()
	n.ensureSelectedVisible()
	return n.selectedIndex, n.viewportOffset
}

// Move moves the cursor: "up", "down", "pageup", "pagedown", "home" or "end"
func (n *Navigator) Move(direction string) {
	if n.totalItems == 0 {
		return
	}
	switch direction {
	case "up":
		n.selectedIndex--
	case "down":
		n.selectedIndex++
	case "pageup":
		n.selectedIndex -= n.viewportHeight
	case "pagedown":
		n.selectedIndex += n.viewportHeight
	case "home":
		n.selectedIndex = 0
	case "end":
		n.selectedIndex = n.totalItems - 1
	}
	n.clampSelected()
	n.ensureSelectedVisible()
}

// VisibleRange returns the half-open row range in view and how many rows
// are hidden above and below it
func (n *Navigator) VisibleRange() (start, end, above, below int) {
	start = n.viewportOffset
	end = start + n.viewportHeight
	if end > n.totalItems {
		end = n.totalItems
	}
	return start, end, start, n.totalItems - end
}

func (n *Navigator) clampSelected() {
	if n.selectedIndex >= n.totalItems {
		n.selectedIndex = n.totalItems - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}
}

// ensureSelectedVisible adjusts the viewport to keep the cursor visible
func (n *Navigator) ensureSelectedVisible() {
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}
	if n.selectedIndex >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.selectedIndex - n.viewportHeight + 1
	}

	// Don't leave empty rows at the bottom when the list could fill them
	maxOffset := n.totalItems - n.viewportHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
