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
	"errors"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/invoice/config"
	"seehuhn.de/go/invoice/surface"
	"seehuhn.de/go/invoice/surface/surfacetest"
)

func sampleConfig() *config.Config {
	cfg := config.Default()
	inv := &cfg.Data.Invoice
	inv.Name = "Invoice for Acme"
	inv.Currency = "EUR"
	inv.Customer = []config.Line{
		{Label: "Bill To", Value: config.Values{
			config.String("John Doe"),
			config.String("Acme Corp"),
			config.String("522 Main Street, New York"),
		}},
	}
	inv.Seller = []config.Line{
		{Label: "Bill From", Value: config.Values{
			config.String("Shoe Shop"),
			config.String("1 High Street"),
		}},
		{Label: "VAT", Value: config.Values{config.String("DE123456789")}},
	}
	inv.Details = config.Details{
		Header: columns("Description", "Quantity", "Subtotal"),
		Parts: [][]config.Column{
			{
				{Value: config.String("Nike Air Max")},
				{Value: config.Number(1)},
				{Value: config.Number(53), Price: true},
			},
		},
		Total: []config.Total{
			{Label: "Total", Value: config.Number(53), Price: true},
		},
	}
	return cfg
}

func TestRender(t *testing.T) {
	cfg := sampleConfig()
	s, rec := newTestSession(t, cfg, nil)

	if err := s.Render(); err != nil {
		t.Fatal(err)
	}

	band := rec.Ops[0]
	if band.Kind != surfacetest.OpRect || band.Y != 0 || band.H != 150 {
		t.Errorf("header band: %v", band)
	}

	title, ok := rec.Find("Invoice for Acme")
	if !ok || title.X != 330 || title.Y != 30 || title.Size != 15 {
		t.Errorf("title: %v", title)
	}
	if number, ok := rec.Find("1"); !ok || number.X != 330 {
		t.Errorf("invoice number: %v", number)
	}

	customer, _ := rec.Find("John Doe")
	seller, _ := rec.Find("Shoe Shop")
	if customer.X != 30 || seller.X != 330 {
		t.Errorf("detail blocks at x=%g and x=%g", customer.X, seller.X)
	}
	if customer.Y != seller.Y {
		t.Errorf("detail blocks start at y=%g and y=%g", customer.Y, seller.Y)
	}

	h := s.Heights()
	head, ok := rec.Find("Description")
	if !ok {
		t.Fatal("table header not drawn")
	}
	if head.Y <= h.Customer || head.Y <= h.Seller {
		t.Errorf("table header at y=%g, detail blocks end at %g and %g",
			head.Y, h.Customer, h.Seller)
	}
	if want := max(h.Customer, h.Seller) + 11.5; !near(head.Y, want) {
		t.Errorf("table header at y=%g, want %g", head.Y, want)
	}

	price, ok := rec.Find("53.00 EUR")
	if !ok || price.X != 490 {
		t.Errorf("price: %v", price)
	}
	total, ok := rec.Find("Total")
	if !ok || total.X != 330 || total.Font != "Helvetica-Bold" {
		t.Errorf("total label: %v", total)
	}
	if total.Y <= price.Y {
		t.Errorf("total at y=%g above the parts at %g", total.Y, price.Y)
	}
	if s.Page() != 1 || rec.Page != 1 {
		t.Errorf("on page %d", s.Page())
	}
}

func TestLegalAtBottom(t *testing.T) {
	cfg := sampleConfig()
	cfg.Data.Invoice.Legal = []config.Legal{
		{Value: "Thank you for your business."},
		{Value: "Payment is due within 30 days.", Weight: config.WeightBold, Color: config.ColorSecondary},
	}
	s, rec := newTestSession(t, cfg, nil)

	if err := s.Render(); err != nil {
		t.Fatal(err)
	}

	// The usable area ends at 801.89.  Each notice is 10 units high and
	// has a top margin of 10.
	first, _ := rec.Find("Thank you for your business.")
	second, _ := rec.Find("Payment is due within 30 days.")
	if !near(first.Y, 771.89) || !near(second.Y, 791.89) {
		t.Errorf("notices at y=%g and y=%g", first.Y, second.Y)
	}
	if !near(second.Y+second.H, 801.89) {
		t.Errorf("legal block ends at %g", second.Y+second.H)
	}
	if first.X != 60 || !near(first.W, 595.276-120) {
		t.Errorf("notice box at x=%g with width %g", first.X, first.W)
	}
	if first.Align != surface.AlignCenter {
		t.Errorf("notice alignment %v", first.Align)
	}
	if second.Font != "Helvetica-Bold" || second.Color == first.Color {
		t.Errorf("second notice: %v", second)
	}
	if first.Page != 1 {
		t.Errorf("notice on page %d", first.Page)
	}
}

func TestLegalOnNewPage(t *testing.T) {
	cfg := config.Default()
	cfg.Data.Invoice.Legal = []config.Legal{
		{Value: "first"},
		{Value: "second"},
	}
	s, rec := newTestSession(t, cfg, nil)

	s.SetCursor(AxisY, 790)
	s.legal()

	if s.Page() != 2 {
		t.Fatalf("on page %d, want 2", s.Page())
	}
	first, _ := rec.Find("first")
	second, _ := rec.Find("second")
	if first.Page != 2 || second.Page != 2 {
		t.Errorf("notices on pages %d and %d", first.Page, second.Page)
	}
	if !near(first.Y, 771.89) || !near(second.Y, 791.89) {
		t.Errorf("notices at y=%g and y=%g", first.Y, second.Y)
	}
}

func TestNoLegalNotices(t *testing.T) {
	s, rec := newTestSession(t, config.Default(), nil)
	s.SetCursor(AxisY, 790)
	s.legal()

	if s.Page() != 1 || len(rec.Ops) != 0 {
		t.Errorf("page %d, ops %v", s.Page(), rec.Ops)
	}
	if got := s.Cursor().Y; got != 805 {
		t.Errorf("cursor at %g, want 805", got)
	}
}

func TestUnknownFont(t *testing.T) {
	cfg := config.Default()
	cfg.Style.Fonts.Normal.Name = "Comic Sans"
	rec := surfacetest.NewRecorder(&surface.Setup{Width: 595, Height: 842})

	_, err := NewSession(cfg, rec, nil)
	var cfgErr *config.Error
	if !errors.As(err, &cfgErr) {
		t.Fatalf("got %v, want a configuration error", err)
	}
	if len(cfgErr.Problems) != 1 {
		t.Errorf("problems: %v", cfgErr.Problems)
	}
}

func TestMissingHeaderImage(t *testing.T) {
	cfg := sampleConfig()
	cfg.Style.Header.Image = &config.ImageStyle{
		Path:   filepath.Join(t.TempDir(), "missing.png"),
		Width:  50,
		Height: 50,
	}
	s, rec := newTestSession(t, cfg, nil)

	err := s.Render()
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got %v, want a missing file error", err)
	}
	if len(rec.OpsOf(surfacetest.OpImage)) != 0 {
		t.Error("image was drawn")
	}
}

func TestHeaderImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	fd, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	err = png.Encode(fd, image.NewRGBA(image.Rect(0, 0, 4, 4)))
	if err != nil {
		t.Fatal(err)
	}
	if err := fd.Close(); err != nil {
		t.Fatal(err)
	}

	cfg := sampleConfig()
	cfg.Style.Header.Image = &config.ImageStyle{Path: path, Width: 64, Height: 32}
	s, rec := newTestSession(t, cfg, nil)
	if err := s.Render(); err != nil {
		t.Fatal(err)
	}

	images := rec.OpsOf(surfacetest.OpImage)
	if len(images) != 1 {
		t.Fatalf("%d images drawn", len(images))
	}
	if img := images[0]; img.X != 30 || img.Y != 30 || img.W != 64 || img.H != 32 {
		t.Errorf("image: %v", img)
	}
}
