package menu

// Item is one editable setting of the menu.
//
// Next and Previous return false when the move would leave the item's
// sections; the menu then switches to the neighbouring item.
type Item interface {
	Label() string
	Extent() Extent

	Show(endFirst bool)
	Hide()

	Next() bool
	Previous() bool
	PlaceCursor()

	Increase()
	Decrease()
}

const blankLine = "                "

// section tracks the editable sub-unit under the cursor.
type section struct {
	disp     Display
	label    string
	s        int
	sections int
}

func (c *section) Label() string { return c.label }

// Section returns the index of the section under the cursor.
func (c *section) Section() int { return c.s }

func (c *section) start(endFirst bool) {
	if endFirst {
		c.s = c.sections - 1
		return
	}
	c.s = 0
}

func (c *section) move(delta int) bool {
	n := c.s + delta
	if n < 0 || n >= c.sections {
		return false
	}
	c.s = n
	return true
}

// writeLine writes s at the start of row and blanks the rest of the row.
func writeLine(d Display, row int, s string) {
	if len(s) > Columns {
		s = s[:Columns]
	}
	d.WriteAt(row, 0, s)
	if len(s) < Columns {
		d.WriteAt(row, len(s), blankLine[len(s):Columns])
	}
}
