package widgets

import (
	"fmt"
	"strconv"
	"strings"
)

type TableRow struct {
	Cells []string
	// Meta travels with the row so a selection can be mapped back to its record.
	Meta any
}

func NewRow(cells ...string) TableRow {
	return TableRow{Cells: cells}
}

func (r TableRow) WithMeta(meta any) TableRow {
	r.Meta = meta
	return r
}

type Table struct {
	header []string
	rows   []TableRow
	align  []Alignment
	border Border
	expand bool
}

// NewTable fails with a *DimensionError when a row does not have one cell per header.
func NewTable(header []string, rows ...TableRow) (Table, error) {
	for i, row := range rows {
		if len(row.Cells) != len(header) {
			return Table{}, &DimensionError{Row: i, Expected: len(header), Actual: len(row.Cells)}
		}
	}
	return Table{
		header: header,
		rows:   rows,
		align:  make([]Alignment, len(header)),
		border: Thin,
	}, nil
}

func (t Table) AlignColumn(column int, alignment Alignment) Table {
	if column < 0 || column >= len(t.align) {
		return t
	}
	align := make([]Alignment, len(t.align))
	copy(align, t.align)
	align[column] = alignment
	t.align = align
	return t
}

func (t Table) Border(border Border) Table {
	t.border = border
	return t
}

// Expand stretches the columns to the full context width.
func (t Table) Expand() Table {
	t.expand = true
	return t
}

func (t Table) Rows() []TableRow {
	return t.rows
}

func (t Table) Render(ctx Context) []string {
	if len(t.header) == 0 {
		return nil
	}
	g := t.border.glyphs()
	gap, cross := " "+g.Left+" ", g.Top+g.Middle+g.Top
	if t.border == NoBorder {
		gap, cross = "   ", g.Top+g.Top+g.Top
	}

	widths := t.columnWidths(ctx.width() - Width(gap)*(len(t.header)-1))

	result := make([]string, 0, len(t.rows)+2)
	result = append(result, t.line(ctx.WithStyle(Bold), t.header, widths, gap))
	separator := make([]string, len(widths))
	for i, width := range widths {
		separator[i] = strings.Repeat(g.Top, width)
	}
	result = append(result, strings.Join(separator, cross))
	for _, row := range t.rows {
		result = append(result, t.line(ctx, row.Cells, widths, gap))
	}
	return result
}

func (t Table) columnWidths(target int) []int {
	widths := make([]int, len(t.header))
	flexes := make([]int, len(t.header))
	total := 0
	for i, cell := range t.header {
		widths[i] = max(Width(flatten(cell)), 1)
	}
	for _, row := range t.rows {
		for i, cell := range row.Cells {
			widths[i] = max(widths[i], Width(flatten(cell)))
		}
	}
	for i := range widths {
		total += widths[i]
		if t.expand {
			flexes[i] = 1
		}
	}
	if total > target || t.expand {
		return fitSizes(target, widths, flexes)
	}
	return widths
}

// line renders one row; embedded newlines and tabs are flattened so a row is always one line.
func (t Table) line(ctx Context, cells []string, widths []int, gap string) string {
	placed := make([]string, len(cells))
	for i, cell := range cells {
		placed[i] = applyStyle(ctx.Profile, ctx.Style, place(flatten(cell), widths[i], t.align[i]))
	}
	return strings.Join(placed, gap)
}

func (t Table) String() string { return toString(t) }

func (t Table) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sTable(%s, Rows: %d, Expand: %v\n", offset, strings.Join(t.header, " | "), len(t.rows), t.expand)
}

// EnumeratedTable numbers its rows from 1 so a row can be picked by typing its ordinal.
type EnumeratedTable struct {
	Table
	rows []TableRow
}

func NewEnumeratedTable(header []string, rows ...TableRow) (EnumeratedTable, error) {
	for i, row := range rows {
		if len(row.Cells) != len(header) {
			return EnumeratedTable{}, &DimensionError{Row: i, Expected: len(header), Actual: len(row.Cells)}
		}
	}
	numbered := make([]TableRow, len(rows))
	for i, row := range rows {
		cells := make([]string, 0, len(row.Cells)+1)
		cells = append(cells, strconv.Itoa(i+1))
		numbered[i] = TableRow{Cells: append(cells, row.Cells...), Meta: row.Meta}
	}
	table, err := NewTable(append([]string{"#"}, header...), numbered...)
	if err != nil {
		return EnumeratedTable{}, err
	}
	return EnumeratedTable{Table: table.AlignColumn(0, End), rows: rows}, nil
}

func (t EnumeratedTable) Expand() EnumeratedTable {
	t.Table = t.Table.Expand()
	return t
}

func (t EnumeratedTable) Border(border Border) EnumeratedTable {
	t.Table = t.Table.Border(border)
	return t
}

// AlignColumn aligns a data column; the ordinal column is not counted.
func (t EnumeratedTable) AlignColumn(column int, alignment Alignment) EnumeratedTable {
	t.Table = t.Table.AlignColumn(column+1, alignment)
	return t
}

// Rows returns the rows as given, without the ordinal cell.
func (t EnumeratedTable) Rows() []TableRow {
	return t.rows
}

func (t EnumeratedTable) Len() int {
	return len(t.rows)
}

// Select maps a displayed ordinal back to the row it was rendered from.
func (t EnumeratedTable) Select(ordinal int) (TableRow, bool) {
	if ordinal < 1 || ordinal > len(t.rows) {
		return TableRow{}, false
	}
	return t.rows[ordinal-1], true
}

// Pick is a Validator for typed ordinals.
func (t EnumeratedTable) Pick(raw string) (TableRow, error) {
	if len(t.rows) == 0 {
		return TableRow{}, Invalid("There is nothing to select.")
	}
	ordinal, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return TableRow{}, Invalid("%q is not a number.", raw)
	}
	row, ok := t.Select(ordinal)
	if !ok {
		return TableRow{}, Invalid("Please enter a number between 1 and %d.", len(t.rows))
	}
	return row, nil
}

func (t EnumeratedTable) String() string { return toString(t) }

func (t EnumeratedTable) ToString(buf *strings.Builder, offset string) {
	fmt.Fprintf(buf, "%sEnumeratedTable(Rows: %d\n", offset, len(t.rows))
	t.Table.ToString(buf, offset+"| ")
}
