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

// Package pdfdoc implements a drawing surface which writes PDF files using
// seehuhn.de/go/pdf.
//
// The standard PDF fonts are available without registration.  TrueType
// fonts registered with RegisterFont are embedded as composite fonts, so
// that text is not restricted to a single-byte encoding.
package pdfdoc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/font/standard"
	"seehuhn.de/go/pdf/font/truetype"
	"seehuhn.de/go/pdf/graphics/color"
	pdfimage "seehuhn.de/go/pdf/graphics/image"
	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/invoice/surface"
)

var errClosed = errors.New("pdfdoc: surface is closed")

// Surface draws onto the pages of a PDF document.
type Surface struct {
	doc  *document.MultiPage
	page *document.Page

	width, height float64
	marginBottom  float64

	fonts    map[string]font.Layouter
	font     font.Layouter
	fontName string
	size     float64
	fill     surface.Color

	err    error
	closed bool
}

var _ surface.Surface = (*Surface)(nil)

// New starts a PDF document which is written to w once the surface is
// closed.  New can be used as a surface.Factory.
func New(w io.Writer, setup *surface.Setup) (surface.Surface, error) {
	return Create(w, setup)
}

// Create is like New, but returns the concrete type.
func Create(w io.Writer, setup *surface.Setup) (*Surface, error) {
	if setup.Width <= 0 || setup.Height <= 0 {
		return nil, fmt.Errorf("pdfdoc: invalid page size %gx%g", setup.Width, setup.Height)
	}

	var opt *pdf.WriterOptions
	if setup.UserPassword != "" || setup.OwnerPassword != "" {
		opt = &pdf.WriterOptions{
			UserPassword:  setup.UserPassword,
			OwnerPassword: setup.OwnerPassword,
		}
	}

	paper := &pdf.Rectangle{URx: setup.Width, URy: setup.Height}
	doc, err := document.WriteMultiPage(w, paper, pdf.V1_7, opt)
	if err != nil {
		return nil, err
	}

	s := &Surface{
		doc:          doc,
		width:        setup.Width,
		height:       setup.Height,
		marginBottom: setup.MarginBottom,
		fonts:        make(map[string]font.Layouter),
		size:         12,
	}
	s.page = doc.AddPage()
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
	if s.closed {
		s.setErr(errClosed)
		return
	}
	err := s.page.Close()
	if err != nil {
		s.setErr(err)
	}
	s.page = s.doc.AddPage()
	s.applyFill()
}

// RegisterFont implements the surface.Surface interface.
func (s *Surface) RegisterFont(name string, ttf []byte) error {
	if _, exists := s.fonts[name]; exists || surface.IsStandardFont(name) {
		return fmt.Errorf("font %q already registered", name)
	}
	info, err := sfnt.Read(bytes.NewReader(ttf))
	if err != nil {
		return fmt.Errorf("font %q: %w", name, err)
	}
	F, err := truetype.NewComposite(info, nil)
	if err != nil {
		return fmt.Errorf("font %q: %w", name, err)
	}
	s.fonts[name] = F
	return nil
}

// SetFont implements the surface.Surface interface.
func (s *Surface) SetFont(name string) {
	if name == s.fontName && s.font != nil {
		return
	}
	F, ok := s.fonts[name]
	if !ok {
		if !surface.IsStandardFont(name) {
			s.setErr(fmt.Errorf("unknown font %q", name))
			return
		}
		F = standard.Font(name).New()
		s.fonts[name] = F
	}
	s.font = F
	s.fontName = name
}

// SetFontSize implements the surface.Surface interface.
func (s *Surface) SetFontSize(size float64) {
	s.size = size
}

// SetFillColor implements the surface.Surface interface.
func (s *Surface) SetFillColor(c surface.Color) {
	s.fill = c
	s.applyFill()
}

func (s *Surface) applyFill() {
	s.page.SetFillColor(color.DeviceRGB{s.fill.R, s.fill.G, s.fill.B})
}

// TextHeight implements the surface.Surface interface.
func (s *Surface) TextHeight(text string, width float64) float64 {
	if s.font == nil {
		return 0
	}
	lines := surface.Wrap(text, width, s.measure)
	return float64(len(lines)) * s.lineHeight()
}

// DrawText implements the surface.Surface interface.
func (s *Surface) DrawText(text string, x, y float64, opt *surface.TextOptions) {
	if s.closed {
		s.setErr(errClosed)
		return
	}
	if s.font == nil {
		s.setErr(errors.New("no font selected"))
		return
	}
	if opt == nil {
		opt = &surface.TextOptions{}
	}

	var q float64
	switch opt.Align {
	case surface.AlignCenter:
		q = 0.5
	case surface.AlignRight:
		q = 1
	}

	geom := s.font.GetGeometry()
	leading := s.lineHeight()
	baseline := s.height - y - geom.Ascent*s.size

	lines := surface.Wrap(text, opt.Width, s.measure)
	for i, line := range lines {
		line = strings.TrimRight(line, " ")
		if line == "" {
			continue
		}
		s.page.TextBegin()
		s.page.TextSetFont(s.font, s.size)
		s.page.TextFirstLine(x, baseline-float64(i)*leading)
		s.page.TextShowAligned(line, opt.Width, q)
		s.page.TextEnd()
	}
}

// FillRect implements the surface.Surface interface.
func (s *Surface) FillRect(x, y, w, h float64, c surface.Color) {
	if s.closed {
		s.setErr(errClosed)
		return
	}
	s.page.SetFillColor(color.DeviceRGB{c.R, c.G, c.B})
	s.page.Rectangle(x, s.height-y-h, w, h)
	s.page.Fill()
	s.applyFill()
}

// DrawImage implements the surface.Surface interface.
func (s *Surface) DrawImage(img image.Image, x, y, w, h float64) {
	if s.closed {
		s.setErr(errClosed)
		return
	}
	if img == nil {
		s.setErr(errors.New("missing image"))
		return
	}
	obj := pdfimage.FromImage(img, color.SpaceDeviceRGB, 8)

	s.page.PushGraphicsState()
	s.page.Transform(matrix.Translate(x, s.height-y-h))
	s.page.Transform(matrix.Scale(w, h))
	s.page.DrawXObject(obj)
	s.page.PopGraphicsState()
}

// StrokeLine implements the surface.Surface interface.
func (s *Surface) StrokeLine(x1, y1, x2, y2 float64, c surface.Color, width float64) {
	if s.closed {
		s.setErr(errClosed)
		return
	}
	s.page.PushGraphicsState()
	s.page.SetStrokeColor(color.DeviceRGB{c.R, c.G, c.B})
	s.page.SetLineWidth(width)
	s.page.MoveTo(x1, s.height-y1)
	s.page.LineTo(x2, s.height-y2)
	s.page.Stroke()
	s.page.PopGraphicsState()
}

// Err implements the surface.Surface interface.
func (s *Surface) Err() error {
	return s.err
}

// Close implements the surface.Surface interface.
func (s *Surface) Close() error {
	if s.closed {
		return errClosed
	}
	s.closed = true

	err := s.page.Close()
	if err != nil {
		s.setErr(err)
	}
	s.page = nil

	err = s.doc.Close()
	if err != nil {
		s.setErr(err)
	}
	return s.err
}

func (s *Surface) measure(text string) float64 {
	return s.font.Layout(nil, s.size, text).TotalWidth()
}

// lineHeight returns the distance between consecutive baselines for the
// current font and size.
func (s *Surface) lineHeight() float64 {
	geom := s.font.GetGeometry()
	h := (geom.Ascent - geom.Descent) * s.size
	if h < s.size {
		h = 1.2 * s.size
	}
	return h
}

func (s *Surface) setErr(err error) {
	if s.err == nil {
		s.err = err
	}
}
