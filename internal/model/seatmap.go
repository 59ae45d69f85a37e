package model

import (
	"fmt"
	"strconv"
	"strings"
)

// SeatMapText renders the train as a fixed-width text grid, one block per
// carriage, blocks joined side by side. Within a block each text line is
// one seat column (all left-side columns first, then a blank divider, then
// the right-side columns) and each position along the line is one row, so
// the drawing matches the physical orientation of a carriage viewed from
// above. Free seats show their number, booked seats show a mask of
// asterisks of the same width. Output is byte-identical for identical seat
// state, which makes it snapshot-testable.
func (t *Train) SeatMapText() string {
	blocks := make([][]string, len(t.Carriages))
	widths := make([]int, len(t.Carriages))
	height := 0
	for i, car := range t.Carriages {
		blocks[i] = carriageBlock(car)
		widths[i] = len(blocks[i][0])
		if len(blocks[i]) > height {
			height = len(blocks[i])
		}
	}

	var b strings.Builder
	for line := 0; line < height; line++ {
		for i, block := range blocks {
			if i > 0 {
				b.WriteString("  ")
			}
			if line < len(block) {
				b.WriteString(block[line])
			} else {
				b.WriteString(strings.Repeat(" ", widths[i]))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// carriageBlock renders one carriage as its stack of text lines: a header
// with the carriage number, a dashed border, the left seat columns, an
// empty divider line for the aisle, the right seat columns, and a closing
// border. Every line has the same width.
func carriageBlock(c *Carriage) []string {
	cellW := len(strconv.Itoa(c.TotalSeats()))
	width := c.Rows*(cellW+1) + 3
	border := strings.Repeat("-", width)

	lines := make([]string, 0, c.LeftSeats+c.RightSeats+5)
	lines = append(lines, centered(fmt.Sprintf("Car %d", c.Number), width))
	lines = append(lines, border)
	for col := 0; col < c.LeftSeats; col++ {
		lines = append(lines, columnLine(c, SideLeft, col, cellW))
	}
	lines = append(lines, "|"+strings.Repeat(" ", width-2)+"|")
	for col := 0; col < c.RightSeats; col++ {
		lines = append(lines, columnLine(c, SideRight, col, cellW))
	}
	lines = append(lines, border)
	return lines
}

// columnLine renders one seat column across all rows of the carriage.
func columnLine(c *Carriage, side Side, col, cellW int) string {
	rowWidth := c.LeftSeats + c.RightSeats
	var b strings.Builder
	b.WriteString("| ")
	for row := 0; row < c.Rows; row++ {
		n := row*rowWidth + col + 1
		if side == SideRight {
			n += c.LeftSeats
		}
		seat := c.seats[n-1]
		if seat.IsBooked() {
			b.WriteString(strings.Repeat("*", cellW))
		} else {
			b.WriteString(fmt.Sprintf("%-*d", cellW, n))
		}
		b.WriteByte(' ')
	}
	b.WriteByte('|')
	return b.String()
}

func centered(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
