// seehuhn.de/go/invoice - render invoice data as PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package layout

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"seehuhn.de/go/invoice/config"
	"seehuhn.de/go/invoice/surface/surfacetest"
)

func columns(values ...string) []config.Column {
	res := make([]config.Column, len(values))
	for i, v := range values {
		res[i] = config.Column{Value: config.String(v)}
	}
	return res
}

// rowPositions draws a row and returns the x positions of the drawn texts.
func rowPositions(s *Session, rec *surfacetest.Recorder, kind RowKind, cols []config.Column) []float64 {
	start := len(rec.Ops)
	s.DrawRow(kind, cols)
	var xs []float64
	for _, op := range rec.Ops[start:] {
		if op.Kind == surfacetest.OpText {
			xs = append(xs, op.X)
		}
	}
	return xs
}

func TestFixedSlotRowsAreAligned(t *testing.T) {
	cfg := config.Default()
	cfg.Style.Table.Layout = config.LayoutFixed
	s, rec := newTestSession(t, cfg, nil)
	s.SetCursor(AxisY, 300)

	want := []float64{30, 270, 340, 490}
	rows := [][]config.Column{
		columns("Item", "Quantity", "Rate", "Amount"),
		columns("Nike Air Max", "1", "53", "53"),
		columns("A very long description of an item which needs several lines", "12", "4.50", "54"),
		columns("x", "0", "y", "z"),
	}
	for i, row := range rows {
		kind := DataRow
		if i == 0 {
			kind = HeaderRow
		}
		got := rowPositions(s, rec, kind, row)
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("row %d: (-want +got):\n%s", i, d)
		}
	}
}

func TestAutoWidthColumns(t *testing.T) {
	s, _ := newTestSession(t, config.Default(), nil)

	// (490 - 30 - 2*10) / 2 = 220
	got := s.columnSlots(3)
	want := []config.Slot{
		{Position: 30, MaxWidth: 220},
		{Position: 260, MaxWidth: 220},
		{Name: "total", Position: 490, MaxWidth: 80},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	got = s.columnSlots(1)
	if len(got) != 1 || got[0].Position != 490 {
		t.Errorf("single column: %v", got)
	}
}

func TestFixedSlotFallback(t *testing.T) {
	cfg := config.Default()
	cfg.Style.Table.Layout = config.LayoutFixed
	cfg.Style.Table.Slots = cfg.Style.Table.Slots[:2]

	core, logs := observer.New(zap.WarnLevel)
	s, _ := newTestSession(t, cfg, zap.New(core))

	got := s.columnSlots(3)
	want := []config.Slot{
		{Name: "item", Position: 30, MaxWidth: 230},
		{Name: "quantity", Position: 270, MaxWidth: 60},
		{Position: 340, MaxWidth: 80},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	if logs.FilterMessageSnippet("no slot configured").Len() != 1 {
		t.Errorf("missing warning, got %v", logs.All())
	}
}

func TestRowHeightIsTallestColumn(t *testing.T) {
	s, rec := newTestSession(t, config.Default(), nil)
	s.SetCursor(AxisY, 300)

	// The first column is 220 units wide, which gives 44 characters per
	// line.  Twenty words of four letters need three lines.
	long := strings.TrimSpace(strings.Repeat("aaaa ", 20))
	s.DrawRow(DataRow, columns(long, "1", "10"))

	lines := rec.OpsOf(surfacetest.OpLine)
	if len(lines) != 1 {
		t.Fatalf("%d separator lines, want 1", len(lines))
	}
	if lines[0].Y != 330 {
		t.Errorf("separator at y=%g, want 330", lines[0].Y)
	}
	if got := s.Cursor().Y; got != 335 {
		t.Errorf("cursor at %g, want 335", got)
	}
	for _, op := range rec.OpsOf(surfacetest.OpText) {
		if op.Y != 300 {
			t.Errorf("%q drawn at y=%g, want 300", op.Text, op.Y)
		}
	}
}

func TestPageBreakInsideRow(t *testing.T) {
	s, rec := newTestSession(t, config.Default(), nil)

	// The first column still fits, the second column needs three lines
	// and moves to the next page.
	s.SetCursor(AxisY, 790)
	long := strings.TrimSpace(strings.Repeat("aaaa ", 20))
	s.DrawRow(DataRow, columns("short", long, "10"))

	if s.Page() != 2 {
		t.Fatalf("on page %d, want 2", s.Page())
	}
	first, _ := rec.Find("short")
	second, _ := rec.Find(long)
	third, _ := rec.Find("10")
	if first.Page != 1 || second.Page != 2 || third.Page != 2 {
		t.Errorf("pages %d, %d, %d", first.Page, second.Page, third.Page)
	}
	if second.Y != 30 || third.Y != 30 {
		t.Errorf("columns on the new page at y=%g and y=%g", second.Y, third.Y)
	}

	// The row height is measured on the new page only.
	if got := s.Cursor().Y; got != 30+30+5 {
		t.Errorf("cursor at %g, want 65", got)
	}
}

func TestHeaderRowStyle(t *testing.T) {
	s, rec := newTestSession(t, config.Default(), nil)
	s.SetCursor(AxisY, 300)

	s.DrawRow(HeaderRow, columns("Description", "Quantity", "Subtotal"))
	s.DrawRow(DataRow, []config.Column{
		{Value: config.String("Widget")},
		{Value: config.Number(1)},
		{Value: config.Number(10), Price: true},
	})

	for _, text := range []string{"Description", "Quantity", "Subtotal"} {
		op, ok := rec.Find(text)
		if !ok || op.Font != "Helvetica-Bold" {
			t.Errorf("%s: font %q", text, op.Font)
		}
	}
	op, ok := rec.Find("10.00")
	if !ok || op.Font != "Helvetica" || op.X != 490 {
		t.Errorf("price cell: %v", op)
	}
	if n := len(rec.OpsOf(surfacetest.OpLine)); n != 2 {
		t.Errorf("%d separator lines, want 2", n)
	}
}

func TestRowColumnMismatch(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	s, rec := newTestSession(t, config.Default(), zap.New(core))
	s.SetCursor(AxisY, 300)

	s.DrawRow(HeaderRow, columns("Description", "Quantity", "Subtotal"))
	s.DrawRow(DataRow, columns("Widget", "10"))

	if logs.FilterMessage("table row does not match the header").Len() != 1 {
		t.Errorf("missing warning, got %v", logs.All())
	}
	// the row is still drawn, with the last column in the total slot
	op, ok := rec.Find("10")
	if !ok || op.X != 490 {
		t.Errorf("last column: %v", op)
	}
}
