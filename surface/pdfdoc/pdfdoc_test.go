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

package pdfdoc

import (
	"bytes"
	"image"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/invoice/surface"
)

var a4 = &surface.Setup{Width: 595.276, Height: 841.890, MarginBottom: 40}

func TestWriteDocument(t *testing.T) {
	buf := &bytes.Buffer{}
	s, err := Create(buf, a4)
	if err != nil {
		t.Fatal(err)
	}

	if got := s.MaxY(); got != 841.890-40 {
		t.Errorf("MaxY() = %g", got)
	}

	s.SetInfo(&surface.Info{
		Title:    "Invoice for Acme",
		Author:   "Shoe Shop",
		Producer: "invoice test",
		Created:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	})
	s.FillRect(0, 0, s.PageWidth(), 150, surface.Color{R: 0.97, G: 0.97, B: 0.98})
	s.DrawImage(image.NewRGBA(image.Rect(0, 0, 2, 2)), 30, 30, 40, 40)

	s.SetFont("Helvetica-Bold")
	s.SetFontSize(15)
	s.SetFillColor(surface.Color{})
	s.DrawText("Invoice for Acme", 330, 30, nil)

	err = s.RegisterFont("Go-Regular", goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	s.SetFont("Go-Regular")
	s.SetFontSize(10)
	s.DrawText("Привет, мир", 30, 200, &surface.TextOptions{Width: 200, Align: surface.AlignRight})
	s.StrokeLine(30, 220, 565, 220, surface.Color{R: 0.94, G: 0.94, B: 0.94}, 1)

	s.AddPage()
	s.SetFont("Helvetica")
	s.DrawText("second page", 30, 30, &surface.TextOptions{Width: 100, Align: surface.AlignCenter})

	if err := s.Err(); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:min(buf.Len(), 20)])
	}
	if err := s.Close(); err == nil {
		t.Error("second Close succeeded")
	}
}

func TestTextHeight(t *testing.T) {
	s, err := Create(&bytes.Buffer{}, a4)
	if err != nil {
		t.Fatal(err)
	}
	s.SetFont("Helvetica")
	s.SetFontSize(10)

	one := s.TextHeight("word", 200)
	if one < 10 {
		t.Errorf("line height %g is smaller than the font size", one)
	}
	if got := s.TextHeight("", 200); got != 0 {
		t.Errorf("empty text has height %g", got)
	}
	two := s.TextHeight("first\nsecond", 200)
	if two != 2*one {
		t.Errorf("two lines have height %g, want %g", two, 2*one)
	}
	narrow := s.TextHeight("several words which need more than one line", 40)
	if narrow <= one {
		t.Errorf("text was not wrapped: height %g", narrow)
	}
}

func TestFontErrors(t *testing.T) {
	s, err := Create(&bytes.Buffer{}, a4)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.RegisterFont("Helvetica", goregular.TTF); err == nil {
		t.Error("registered a standard font name")
	}
	if err := s.RegisterFont("Broken", []byte("not a font")); err == nil {
		t.Error("registered invalid font data")
	}

	s.SetFont("Comic Sans")
	if s.Err() == nil {
		t.Error("unknown font was accepted")
	}
}

func TestEncryption(t *testing.T) {
	setup := *a4
	setup.UserPassword = "user"
	setup.OwnerPassword = "owner"

	buf := &bytes.Buffer{}
	s, err := New(buf, &setup)
	if err != nil {
		t.Fatal(err)
	}
	s.SetFont("Helvetica")
	s.DrawText("secret", 30, 30, nil)
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("/Encrypt")) {
		t.Error("no encryption dictionary")
	}
}

func TestInvalidSetup(t *testing.T) {
	_, err := New(&bytes.Buffer{}, &surface.Setup{})
	if err == nil {
		t.Error("zero page size was accepted")
	}
}
