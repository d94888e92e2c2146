package listnav

// GridNavigator encapsulates cursor and scroll state for items laid out
// left-to-right in rows of a fixed column count. It does NOT render - it only
// manages navigation state. Scrolling is by whole rows.
type GridNavigator struct {
	cursor       int // Currently selected item index (0-based)
	scrollRow    int // First visible row
	itemCount    int // Total items (set externally before navigation)
	columns      int // Cards per row
	viewportRows int // Visible rows
}

// New creates a GridNavigator with a single column.
func New() *GridNavigator {
	return &GridNavigator{
		columns:      1,
		viewportRows: 3, // sensible default
	}
}

// Cursor returns the currently selected item index.
func (n *GridNavigator) Cursor() int {
	return n.cursor
}

// ScrollRow returns the index of the first visible row.
func (n *GridNavigator) ScrollRow() int {
	return n.scrollRow
}

// Columns returns the cards-per-row count.
func (n *GridNavigator) Columns() int {
	return n.columns
}

// ViewportRows returns the visible row count.
func (n *GridNavigator) ViewportRows() int {
	return n.viewportRows
}

// VisibleRange returns the [start, end) item indexes currently on screen.
func (n *GridNavigator) VisibleRange() (int, int) {
	start := n.scrollRow * n.columns
	end := min(n.itemCount, start+n.viewportRows*n.columns)
	return min(start, end), end
}

// SetItemCount updates the total item count and clamps cursor/scroll.
func (n *GridNavigator) SetItemCount(count int) {
	n.itemCount = max(0, count)
	n.clampCursor()
	n.ensureCursorVisible()
}

// SetColumns updates the number of cards per row.
func (n *GridNavigator) SetColumns(c int) {
	if c < 1 {
		c = 1
	}
	n.columns = c
	n.ensureCursorVisible()
}

// SetViewportRows updates the visible row count.
func (n *GridNavigator) SetViewportRows(rows int) {
	if rows < 1 {
		rows = 1
	}
	n.viewportRows = rows
	n.ensureCursorVisible()
}

// MoveLeft moves one card back. Returns true if state changed.
func (n *GridNavigator) MoveLeft() bool {
	return n.moveTo(n.cursor - 1)
}

// MoveRight moves one card forward. Returns true if state changed.
func (n *GridNavigator) MoveRight() bool {
	return n.moveTo(n.cursor + 1)
}

// MoveUp moves one row up, keeping the column. Returns true if state changed.
func (n *GridNavigator) MoveUp() bool {
	if n.cursor-n.columns < 0 {
		return false
	}
	return n.moveTo(n.cursor - n.columns)
}

// MoveDown moves one row down, keeping the column, or to the last card when
// the row below is shorter. Returns true if state changed.
func (n *GridNavigator) MoveDown() bool {
	if n.itemCount == 0 || n.rowOf(n.cursor) >= n.rowOf(n.itemCount-1) {
		return false
	}
	return n.moveTo(min(n.cursor+n.columns, n.itemCount-1))
}

// GoToTop moves the cursor to the first item.
func (n *GridNavigator) GoToTop() bool {
	if n.cursor == 0 && n.scrollRow == 0 {
		return false
	}
	n.cursor = 0
	n.scrollRow = 0
	return true
}

// GoToBottom moves the cursor to the last item.
func (n *GridNavigator) GoToBottom() bool {
	if n.itemCount == 0 {
		return false
	}
	return n.moveTo(n.itemCount - 1)
}

// SetCursor directly sets the cursor position with bounds checking.
func (n *GridNavigator) SetCursor(idx int) {
	n.cursor = idx
	n.clampCursor()
	n.ensureCursorVisible()
}

// Reset clears state to initial values.
func (n *GridNavigator) Reset() {
	n.cursor = 0
	n.scrollRow = 0
}

func (n *GridNavigator) moveTo(idx int) bool {
	if n.itemCount == 0 || idx < 0 || idx >= n.itemCount || idx == n.cursor {
		return false
	}
	n.cursor = idx
	n.ensureCursorVisible()
	return true
}

func (n *GridNavigator) rowOf(idx int) int {
	return idx / n.columns
}

func (n *GridNavigator) totalRows() int {
	if n.itemCount == 0 {
		return 0
	}
	return n.rowOf(n.itemCount-1) + 1
}

// clampCursor ensures cursor is within valid bounds.
func (n *GridNavigator) clampCursor() {
	if n.itemCount == 0 || n.cursor < 0 {
		n.cursor = 0
		return
	}
	if n.cursor >= n.itemCount {
		n.cursor = n.itemCount - 1
	}
}

// ensureCursorVisible adjusts scroll so the cursor's row is on screen.
func (n *GridNavigator) ensureCursorVisible() {
	row := n.rowOf(n.cursor)
	if row < n.scrollRow {
		n.scrollRow = row
	}
	if row >= n.scrollRow+n.viewportRows {
		n.scrollRow = row - n.viewportRows + 1
	}
	maxScroll := max(0, n.totalRows()-n.viewportRows)
	if n.scrollRow > maxScroll {
		n.scrollRow = maxScroll
	}
	if n.scrollRow < 0 {
		n.scrollRow = 0
	}
}
