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

// Package fpdfdoc implements a drawing surface on top of github.com/go-pdf/fpdf.
//
// The standard fonts use the Windows-1252 encoding, text in these fonts is
// translated before drawing.  Registered TrueType fonts are embedded as
// UTF-8 fonts.
package fpdfdoc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"

	"seehuhn.de/go/invoice/surface"
)

// lineSpacing is the distance between baselines, relative to the font size.
const lineSpacing = 1.2

// Surface draws onto the pages of a PDF document.
type Surface struct {
	pdf *fpdf.Fpdf
	w   io.Writer

	width, height float64
	marginBottom  float64

	utf8    map[string]bool
	font    string
	hasFont bool
	size    float64
	tr      func(string) string
	images  int

	err    error
	closed bool
}

var _ surface.Surface = (*Surface)(nil)

// New starts a PDF document which is written to w once the surface is
// closed.  New can be used as a surface.Factory.
func New(w io.Writer, setup *surface.Setup) (surface.Surface, error) {
	if setup.Width <= 0 || setup.Height <= 0 {
		return nil, fmt.Errorf("fpdfdoc: invalid page size %gx%g", setup.Width, setup.Height)
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: setup.Width, Ht: setup.Height},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetCellMargin(0)
	doc.SetAutoPageBreak(false, setup.MarginBottom)
	if setup.UserPassword != "" || setup.OwnerPassword != "" {
		doc.SetProtection(fpdf.CnProtectPrint, setup.UserPassword, setup.OwnerPassword)
	}
	doc.AddPage()

	s := &Surface{
		pdf:          doc,
		w:            w,
		width:        setup.Width,
		height:       setup.Height,
		marginBottom: setup.MarginBottom,
		utf8:         make(map[string]bool),
		size:         12,
		tr:           doc.UnicodeTranslatorFromDescriptor(""),
	}
	return s, nil
}

// PageWidth implements the surface.Surface interface.
func (s *Surface) PageWidth() float64 {
	return s.width
}

// MaxY implements the surface.Surface interface.
func (s *Surface) MaxY() float64 {
	return s.height - s.marginBottom
}

// AddPage implements the surface.Surface interface.
func (s *Surface) AddPage() {
	s.pdf.AddPage()
}

// RegisterFont implements the surface.Surface interface.
func (s *Surface) RegisterFont(name string, ttf []byte) error {
	if s.utf8[name] || surface.IsStandardFont(name) {
		return fmt.Errorf("font %q already registered", name)
	}
	if len(ttf) == 0 {
		return fmt.Errorf("font %q: empty font data", name)
	}
	s.pdf.AddUTF8FontFromBytes(name, "", ttf)
	if s.pdf.Err() {
		err := s.pdf.Error()
		s.pdf.ClearError()
		return fmt.Errorf("font %q: %w", name, err)
	}
	s.utf8[name] = true
	return nil
}

// SetFont implements the surface.Surface interface.
func (s *Surface) SetFont(name string) {
	var family, style string
	switch {
	case s.utf8[name]:
		family = name
	case surface.IsStandardFont(name):
		family, style = coreFont(name)
	default:
		s.setErr(fmt.Errorf("unknown font %q", name))
		return
	}
	s.font = name
	s.hasFont = true
	s.pdf.SetFont(family, style, s.size)
}

// coreFont splits the name of a standard font into the family and style
// names used by fpdf.
func coreFont(name string) (string, string) {
	family, variant, _ := strings.Cut(name, "-")
	if family == "Times" && variant == "Roman" {
		variant = ""
	}
	var style string
	if strings.Contains(variant, "Bold") {
		style += "B"
	}
	if strings.Contains(variant, "Oblique") || strings.Contains(variant, "Italic") {
		style += "I"
	}
	return family, style
}

// SetFontSize implements the surface.Surface interface.
func (s *Surface) SetFontSize(size float64) {
	s.size = size
	if s.hasFont {
		s.pdf.SetFontSize(size)
	}
}

// SetFillColor implements the surface.Surface interface.
func (s *Surface) SetFillColor(c surface.Color) {
	r, g, b := rgb(c)
	s.pdf.SetTextColor(r, g, b)
}

// TextHeight implements the surface.Surface interface.
func (s *Surface) TextHeight(text string, width float64) float64 {
	if !s.hasFont {
		return 0
	}
	return float64(len(s.split(text, width))) * s.size * lineSpacing
}

// DrawText implements the surface.Surface interface.
func (s *Surface) DrawText(text string, x, y float64, opt *surface.TextOptions) {
	if !s.hasFont {
		s.setErr(errors.New("no font selected"))
		return
	}
	if opt == nil {
		opt = &surface.TextOptions{}
	}

	align := "L"
	switch opt.Align {
	case surface.AlignCenter:
		align = "C"
	case surface.AlignRight:
		align = "R"
	}

	leading := s.size * lineSpacing
	for i, line := range s.split(text, opt.Width) {
		line = strings.TrimRight(line, " ")
		if line == "" {
			continue
		}
		lineX, w := x, opt.Width
		if w <= 0 {
			w = s.pdf.GetStringWidth(line)
			switch opt.Align {
			case surface.AlignCenter:
				lineX -= w / 2
			case surface.AlignRight:
				lineX -= w
			}
		}
		s.pdf.SetXY(lineX, y+float64(i)*leading)
		s.pdf.CellFormat(w, leading, line, "", 0, align, false, 0, "")
	}
}

// FillRect implements the surface.Surface interface.
func (s *Surface) FillRect(x, y, w, h float64, c surface.Color) {
	r, g, b := rgb(c)
	s.pdf.SetFillColor(r, g, b)
	s.pdf.Rect(x, y, w, h, "F")
}

// DrawImage implements the surface.Surface interface.
func (s *Surface) DrawImage(img image.Image, x, y, w, h float64) {
	if img == nil {
		s.setErr(errors.New("missing image"))
		return
	}
	buf := &bytes.Buffer{}
	err := png.Encode(buf, img)
	if err != nil {
		s.setErr(err)
		return
	}

	s.images++
	name := fmt.Sprintf("img%d", s.images)
	opt := fpdf.ImageOptions{ImageType: "PNG"}
	s.pdf.RegisterImageOptionsReader(name, opt, buf)
	s.pdf.ImageOptions(name, x, y, w, h, false, opt, 0, "")
}

// StrokeLine implements the surface.Surface interface.
func (s *Surface) StrokeLine(x1, y1, x2, y2 float64, c surface.Color, width float64) {
	r, g, b := rgb(c)
	s.pdf.SetDrawColor(r, g, b)
	s.pdf.SetLineWidth(width)
	s.pdf.Line(x1, y1, x2, y2)
}

// SetInfo implements the surface.Surface interface.
func (s *Surface) SetInfo(info *surface.Info) {
	if info == nil {
		return
	}
	s.pdf.SetTitle(info.Title, true)
	s.pdf.SetAuthor(info.Author, true)
	s.pdf.SetSubject(info.Subject, true)
	s.pdf.SetCreator(info.Creator, true)
	s.pdf.SetProducer(info.Producer, true)
	if !info.Created.IsZero() {
		s.pdf.SetCreationDate(info.Created)
		s.pdf.SetModificationDate(info.Created)
	}
}

// Err implements the surface.Surface interface.
func (s *Surface) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.pdf.Error()
}

// Close implements the surface.Surface interface.
func (s *Surface) Close() error {
	if s.closed {
		return errors.New("fpdfdoc: surface is closed")
	}
	s.closed = true
	if err := s.Err(); err != nil {
		return err
	}
	return s.pdf.Output(s.w)
}

// split breaks text into lines which fit into the given width, using the
// line breaking of fpdf.  The lines are encoded for the current font.  If
// width is not positive, text is only split at newlines.
func (s *Surface) split(text string, width float64) []string {
	if text == "" {
		return nil
	}
	enc := s.encode(text)
	if width <= 0 {
		return strings.Split(enc, "\n")
	}
	if s.utf8[s.font] {
		return s.pdf.SplitText(enc, width)
	}

	// SplitText looks up the widths of core fonts by byte code
	codes := make([]rune, len(enc))
	for i := range len(enc) {
		codes[i] = rune(enc[i])
	}
	lines := s.pdf.SplitText(string(codes), width)
	for i, line := range lines {
		buf := make([]byte, 0, len(line))
		for _, c := range line {
			buf = append(buf, byte(c))
		}
		lines[i] = string(buf)
	}
	return lines
}

// encode converts text for the current font.  UTF-8 fonts in fpdf only
// cover the basic multilingual plane.
func (s *Surface) encode(text string) string {
	if s.utf8[s.font] {
		return strings.Map(func(r rune) rune {
			if r > 0xFFFF {
				return utf8.RuneError
			}
			return r
		}, text)
	}
	return s.tr(text)
}

func (s *Surface) setErr(err error) {
	if s.err == nil {
		s.err = err
	}
}

func rgb(c surface.Color) (int, int, int) {
	conv := func(x float64) int {
		return int(min(max(x, 0), 1)*255 + 0.5)
	}
	return conv(c.R), conv(c.G), conv(c.B)
}
