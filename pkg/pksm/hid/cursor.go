// Package hid tracks a highlighted selection over a paginated list.
//
// A Cursor keeps the page and the index within the page separately. The
// absolute position is derived as page*pageSize + index. Pages may be laid
// out in several columns, filled top to bottom and then left to right, in
// which case left and right move between columns before turning the page.
package hid

import (
	"github.com/flagbrew/pksm/pkg/pksm/constants"
	"github.com/flagbrew/pksm/pkg/pksm/input"
)

// Cursor is a paginated selection cursor.
type Cursor struct {
	index    int
	page     int
	pageSize int
	columns  int

	// Wrap makes movement past either end of the collection continue from
	// the other end instead of stopping.
	Wrap bool
}

// NewCursor creates a wrapping cursor showing pageSize entries per page in
// the given number of columns. pageSize is rounded up to a multiple of
// columns.
func NewCursor(pageSize, columns int) *Cursor {
	if columns < 1 {
		columns = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if rem := pageSize % columns; rem != 0 {
		pageSize += columns - rem
	}
	return &Cursor{pageSize: pageSize, columns: columns, Wrap: true}
}

// Index is the highlighted position within the visible page.
func (c *Cursor) Index() int { return c.index }

// Page is the visible page.
func (c *Cursor) Page() int { return c.page }

// PageSize is the number of entries per page.
func (c *Cursor) PageSize() int { return c.pageSize }

// MaxVisibleEntries is an alias of PageSize used by the draw code.
func (c *Cursor) MaxVisibleEntries() int { return c.pageSize }

// Columns is the number of columns a page is split into.
func (c *Cursor) Columns() int { return c.columns }

// VisibleRows is the number of rows in each column.
func (c *Cursor) VisibleRows() int { return c.pageSize / c.columns }

// FullIndex is the absolute position of the highlight.
func (c *Cursor) FullIndex() int { return c.page*c.pageSize + c.index }

// PageStart is the absolute position of the first entry on the visible page.
func (c *Cursor) PageStart() int { return c.page * c.pageSize }

// Column returns the column the highlight is in.
func (c *Cursor) Column() int { return c.index / c.VisibleRows() }

// Row returns the row the highlight is in within its column.
func (c *Cursor) Row() int { return c.index % c.VisibleRows() }

// MaxPage returns the number of pages a collection of size entries spans.
// An empty collection still has one (empty) page.
func (c *Cursor) MaxPage(size int) int {
	if size <= 0 {
		return 1
	}
	return (size + c.pageSize - 1) / c.pageSize
}

// Update re-clamps the cursor after the collection may have changed size.
// Afterwards 0 <= FullIndex() < max(size, 1).
func (c *Cursor) Update(size int) {
	if size <= 0 {
		c.page = 0
		c.index = 0
		return
	}

	maxPage := c.MaxPage(size)
	if c.page < 0 {
		c.page = 0
	}
	if c.page > maxPage-1 {
		c.page = maxPage - 1
	}

	if c.index < 0 {
		c.index = 0
	}
	if c.index > c.pageSize-1 {
		c.index = c.pageSize - 1
	}
	if onPage := size - c.PageStart(); c.index > onPage-1 {
		c.index = onPage - 1
	}
}

// Select jumps to an absolute position. Negative positions select 0.
func (c *Cursor) Select(i int) {
	if i < 0 {
		i = 0
	}
	c.page = i / c.pageSize
	c.index = i % c.pageSize
}

// MoveUp moves the highlight one entry towards the start.
func (c *Cursor) MoveUp(size int) {
	c.move(-1, size)
}

// MoveDown moves the highlight one entry towards the end.
func (c *Cursor) MoveDown(size int) {
	c.move(1, size)
}

func (c *Cursor) move(delta, size int) {
	if size <= 0 {
		c.Select(0)
		return
	}
	next := c.FullIndex() + delta
	switch {
	case next < 0 && c.Wrap:
		next = size - 1
	case next < 0:
		next = 0
	case next >= size && c.Wrap:
		next = 0
	case next >= size:
		next = size - 1
	}
	c.Select(next)
}

// MoveLeft moves one column left, or to the previous page from the first
// column. Without Wrap it stays put on the first column of the first page.
func (c *Cursor) MoveLeft(size int) {
	rows := c.VisibleRows()
	if c.columns > 1 && c.index-rows >= 0 {
		c.index -= rows
		return
	}
	if !c.Wrap && c.page == 0 {
		return
	}
	if c.columns > 1 {
		c.index += rows * (c.columns - 1)
	}
	c.PrevPage(size)
}

// MoveRight moves one column right, or to the next page from the last
// column or when the next column holds no entry. Without Wrap it stays put
// there on the last page.
func (c *Cursor) MoveRight(size int) {
	rows := c.VisibleRows()
	if c.columns > 1 {
		if c.index+rows < c.pageSize && c.FullIndex()+rows < size {
			c.index += rows
			return
		}
	}
	if !c.Wrap && c.page >= c.MaxPage(size)-1 {
		return
	}
	if c.columns > 1 {
		c.index %= rows
	}
	c.NextPage(size)
}

// PrevPage turns to the previous page, keeping the index where possible.
func (c *Cursor) PrevPage(size int) {
	maxPage := c.MaxPage(size)
	switch {
	case c.page > 0:
		c.page--
	case c.Wrap:
		c.page = maxPage - 1
	}
	c.Update(size)
}

// NextPage turns to the next page, keeping the index where possible.
func (c *Cursor) NextPage(size int) {
	maxPage := c.MaxPage(size)
	switch {
	case c.page < maxPage-1:
		c.page++
	case c.Wrap:
		c.page = 0
	}
	c.Update(size)
}

// Navigate applies the frame's directional and shoulder presses, including
// auto-repeat, then re-clamps against size.
func (c *Cursor) Navigate(in *input.Snapshot, size int) {
	switch {
	case in.Repeated(constants.KeyDUp):
		c.MoveUp(size)
	case in.Repeated(constants.KeyDDown):
		c.MoveDown(size)
	case in.Repeated(constants.KeyDLeft):
		c.MoveLeft(size)
	case in.Repeated(constants.KeyDRight):
		c.MoveRight(size)
	case in.Repeated(constants.KeyL):
		c.PrevPage(size)
	case in.Repeated(constants.KeyR):
		c.NextPage(size)
	}
	c.Update(size)
}
