package widgets

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestFitSizes(t *testing.T) {
	for w := 4; w <= 80; w++ {
		widths := fitSizes(w, []int{14, 15, 16, 8}, []int{1, 1, 1, 1})
		total := 0
		for _, width := range widths {
			total += width
		}
		if total != w {
			t.Error("Expected", w, "got", total)
		}
	}
}

func TestFitSizesShrinksWidestFirst(t *testing.T) {
	widths := fitSizes(40, []int{14, 20, 8}, []int{0, 0, 0})
	if !reflect.DeepEqual(widths, []int{14, 18, 8}) {
		t.Error("Expected [14 18 8] got", widths)
	}
}

func TestAlignCenterOddRemainder(t *testing.T) {
	lines := Align(Center, Text("1234567")).Render(NewContext(10))
	if len(lines) != 1 || lines[0] != " 1234567  " {
		t.Errorf("Expected %q got %q", " 1234567  ", lines)
	}
}

func TestAlign(t *testing.T) {
	for w := 0; w <= 30; w++ {
		for _, alignment := range []Alignment{Start, Center, End} {
			lines := Align(alignment, Text("foofoofoofoofoo")).Render(NewContext(w))
			want := max(w, 1)
			if Width(lines[0]) != want {
				t.Error("Expected", want, "got", Width(lines[0]), "for", alignment)
			}
		}
	}
}

func TestTextDegradesOnExhaustedWidth(t *testing.T) {
	lines := Text("hello").Render(NewContext(-3))
	if len(lines) != 1 || lines[0] != "…" {
		t.Errorf("Expected %q got %q", "…", lines)
	}
}

func TestColumnSpaceBetween(t *testing.T) {
	lines := Column(Text("a"), Text("b"), Text("c")).
		MainAxis(SpaceBetween).
		Height(10).
		Render(NewContext(3))
	want := []string{
		"a  ",
		"   ", "   ", "   ",
		"b  ",
		"   ", "   ", "   ", "   ",
		"c  ",
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Expected %q got %q", want, lines)
	}
}

func TestColumnMainAxis(t *testing.T) {
	for height := 0; height <= 12; height++ {
		for _, alignment := range []MainAxisAlignment{MainStart, MainCenter, MainEnd, SpaceBetween} {
			lines := Column(Text("a"), VSpacer(2), Text("b")).
				MainAxis(alignment).
				Height(height).
				Render(NewContext(5))
			want := max(height, 4)
			if len(lines) != want {
				t.Error("Expected", want, "got", len(lines), "for", alignment)
			}
		}
	}
}

func TestColumnCenterPutsRemainderBelow(t *testing.T) {
	lines := Column(Text("x")).MainAxis(MainCenter).Height(4).Render(NewContext(1))
	want := []string{" ", "x", " ", " "}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Expected %q got %q", want, lines)
	}
}

func TestColumnCrossAxis(t *testing.T) {
	lines := Column(Text("ab")).CrossAxis(CrossEnd).Render(NewContext(5))
	if lines[0] != "   ab" {
		t.Errorf("Expected %q got %q", "   ab", lines[0])
	}
}

func TestContainerMissingChild(t *testing.T) {
	_, err := NewContainer().Border(Thin).Build()
	if !errors.Is(err, ErrMissingChild) {
		t.Error("Expected ErrMissingChild got", err)
	}
}

func TestContainer(t *testing.T) {
	box, err := NewContainer().Child(Text("hi")).Border(Thin).Build()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"┌────┐",
		"│hi  │",
		"└────┘",
	}
	if lines := box.Render(NewContext(6)); !reflect.DeepEqual(lines, want) {
		t.Errorf("Expected %q got %q", want, lines)
	}

	box, _ = NewContainer().Child(Text("hi")).Border(Thick).Padding(1, 1).Shrink().Build()
	want = []string{
		"┏━━━━┓",
		"┃    ┃",
		"┃ hi ┃",
		"┃    ┃",
		"┗━━━━┛",
	}
	if lines := box.Render(NewContext(40)); !reflect.DeepEqual(lines, want) {
		t.Errorf("Expected %q got %q", want, lines)
	}
}

func TestContainerHeight(t *testing.T) {
	box, _ := NewContainer().Child(Text("x")).Border(Double).VAlign(Center).Align(Center).Height(6).Build()
	want := []string{
		"╔═══╗",
		"║   ║",
		"║ x ║",
		"║   ║",
		"║   ║",
		"╚═══╝",
	}
	if lines := box.Render(NewContext(5)); !reflect.DeepEqual(lines, want) {
		t.Errorf("Expected %q got %q", want, lines)
	}
}

func TestBordered(t *testing.T) {
	lines := Bordered(Dashed, Text("ok")).Render(NewContext(4))
	want := []string{"┌┄┄┐", "┆ok┆", "└┄┄┘"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Expected %q got %q", want, lines)
	}
}

func TestTableDimensionError(t *testing.T) {
	_, err := NewTable([]string{"Name", "Age"}, NewRow("Alice", "30"), NewRow("Bob"))
	var dimension *DimensionError
	if !errors.As(err, &dimension) {
		t.Fatal("Expected DimensionError got", err)
	}
	if dimension.Row != 1 || dimension.Expected != 2 || dimension.Actual != 1 {
		t.Error("Expected row 1 expected 2 actual 1 got", dimension)
	}
}

func TestTable(t *testing.T) {
	table, err := NewTable([]string{"Name", "Age"}, NewRow("Alice", "30"), NewRow("Bob", "7"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"Name  │ Age",
		"──────┼────",
		"Alice │ 30 ",
		"Bob   │ 7  ",
	}
	if lines := table.Render(NewContext(80)); !reflect.DeepEqual(lines, want) {
		t.Errorf("Expected %q got %q", want, lines)
	}
}

func TestTableLines(t *testing.T) {
	rows := []TableRow{
		NewRow("1", "Paracetamol", "100"),
		NewRow("2", "Ibuprofen", "50"),
		NewRow("3", "Amoxicillin and clavulanate", "75"),
	}
	for w := 10; w <= 80; w++ {
		for n := 0; n <= len(rows); n++ {
			for _, expand := range []bool{false, true} {
				table, err := NewTable([]string{"Id", "Medicine", "Stock"}, rows[:n]...)
				if err != nil {
					t.Fatal(err)
				}
				if expand {
					table = table.Expand()
				}
				lines := table.Render(NewContext(w))
				if len(lines) != n+2 {
					t.Error("Expected", n+2, "lines got", len(lines))
				}
				for _, line := range lines {
					if Width(line) != Width(lines[0]) {
						t.Errorf("Expected width %d got %d for %q", Width(lines[0]), Width(line), line)
					}
					if Width(line) > w {
						t.Error("Expected at most", w, "got", Width(line))
					}
				}
				if expand && Width(lines[0]) != w {
					t.Error("Expected expanded width", w, "got", Width(lines[0]))
				}
			}
		}
	}
}

func TestTableFlattensMultilineCells(t *testing.T) {
	table, err := NewTable([]string{"Diagnosis", "Treatment"}, NewRow("flu\nfever", "rest\tdaily"))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"Diagnosis │ Treatment ",
		"──────────┼───────────",
		"flu fever │ rest daily",
	}
	lines := table.Render(NewContext(40))
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Expected %q got %q", want, lines)
	}
	for _, line := range lines {
		if strings.ContainsAny(line, "\n\t") {
			t.Errorf("Expected a single physical line got %q", line)
		}
	}
}

func TestTableZeroRows(t *testing.T) {
	table, err := NewTable([]string{"Medicine", "Stock"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Medicine │ Stock", "─────────┼──────"}
	if lines := table.Render(NewContext(40)); !reflect.DeepEqual(lines, want) {
		t.Errorf("Expected %q got %q", want, lines)
	}
}

func TestEnumeratedTable(t *testing.T) {
	table, err := NewEnumeratedTable([]string{"Doctor"},
		NewRow("Dr. Lim").WithMeta("D001"),
		NewRow("Dr. Tan").WithMeta("D002"),
	)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"# │ Doctor ",
		"──┼────────",
		"1 │ Dr. Lim",
		"2 │ Dr. Tan",
	}
	if lines := table.Render(NewContext(40)); !reflect.DeepEqual(lines, want) {
		t.Errorf("Expected %q got %q", want, lines)
	}
	row, ok := table.Select(2)
	if !ok || row.Meta != "D002" || row.Cells[0] != "Dr. Tan" {
		t.Error("Expected D002 got", row, ok)
	}
	if _, ok := table.Select(0); ok {
		t.Error("Expected ordinal 0 to be rejected")
	}
	if rows := table.Rows(); len(rows) != 2 || rows[0].Cells[0] != "Dr. Lim" || len(rows[0].Cells) != 1 {
		t.Error("Expected rows without ordinals got", rows)
	}
	if _, ok := table.Select(3); ok {
		t.Error("Expected ordinal 3 to be rejected")
	}
}

func TestBreadcrumbs(t *testing.T) {
	want := []string{
		"  ╔══════════════╗  ",
		"  ║ Login > Home ║  ",
		"  ╚══════════════╝  ",
		"                    ",
	}
	if lines := Breadcrumbs("Login", "Home").Render(NewContext(20)); !reflect.DeepEqual(lines, want) {
		t.Errorf("Expected %q got %q", want, lines)
	}
}

func TestRenderIsPure(t *testing.T) {
	table, _ := NewEnumeratedTable([]string{"Medicine", "Stock"}, NewRow("Paracetamol", "100"))
	box, _ := NewContainer().Child(table).Border(Double).Padding(1, 2).Build()
	tree := Column(Title("Inventory"), Breadcrumbs("Home", "Inventory"), box, VSpacer(1), PauseGoBack()).
		MainAxis(SpaceBetween).
		Height(30)
	ctx := NewContext(60)
	first, second := tree.Render(ctx), tree.Render(ctx)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expected identical renders got\n%q\n%q", first, second)
	}
}

func TestStyledText(t *testing.T) {
	ctx := NewContext(10)
	ctx.Profile = termenv.ANSI
	lines := Text("hello").Style(Bold).Render(ctx)
	if lines[0] != "\x1b[1mhello\x1b[0m" || Width(lines[0]) != 5 {
		t.Errorf("Expected bold hello got %q", lines[0])
	}
	cut := truncate("\x1b[1mhello world\x1b[0m", 6)
	if cut != "\x1b[1mhello…\x1b[0m" || Width(cut) != 6 {
		t.Errorf("Expected truncated bold hello got %q", cut)
	}
}
