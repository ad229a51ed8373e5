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

// Package surface defines the drawing surface used by the invoice layout
// engine.
//
// A Surface draws onto a sequence of pages.  All coordinates are measured
// in PDF units (1/72 inch) from the top-left corner of the page, with y
// increasing downwards.  Text is positioned by the top edge of its first
// line.  Implementations convert to the coordinate system of the
// underlying document format.
//
// Drawing methods do not return errors.  The first error encountered is
// kept and reported by Err and Close, in the same way as for the content
// stream builder of seehuhn.de/go/pdf.
package surface

import (
	"image"
	"io"
	"time"
)

// Surface is a paginated drawing surface.
type Surface interface {
	// PageWidth returns the width of the page.
	PageWidth() float64

	// MaxY returns the lowest y coordinate which content may reach on the
	// current page.
	MaxY() float64

	// AddPage finishes the current page and starts a new one.
	AddPage()

	// RegisterFont makes the TrueType font given by ttf available under
	// the given name.  Registering a name twice is an error.
	RegisterFont(name string, ttf []byte) error

	// SetFont selects the font used for subsequent text operations.  The
	// name must either be registered or be the name of one of the
	// standard PDF fonts.
	SetFont(name string)

	// SetFontSize sets the font size used for subsequent text operations.
	SetFontSize(size float64)

	// SetFillColor sets the colour used for text.
	SetFillColor(c Color)

	// TextHeight returns the height text would occupy when drawn with
	// the current font into a box of the given width.
	TextHeight(text string, width float64) float64

	// DrawText draws text into the box with top-left corner (x, y).
	// Long lines are wrapped at word boundaries to fit opt.Width.
	DrawText(text string, x, y float64, opt *TextOptions)

	// FillRect fills a rectangle with the given colour.
	FillRect(x, y, w, h float64, c Color)

	// DrawImage draws an image into the rectangle with top-left corner
	// (x, y) and the given width and height.
	DrawImage(img image.Image, x, y, w, h float64)

	// StrokeLine draws a straight line.
	StrokeLine(x1, y1, x2, y2 float64, c Color, width float64)

	// SetInfo sets the document metadata.
	SetInfo(info *Info)

	// Err returns the first error encountered while drawing.
	Err() error

	// Close finishes the document and writes it to the underlying writer.
	// The surface cannot be used after Close has been called.
	Close() error
}

// Factory creates a new surface which writes a document to w.
// The first page is started automatically.
type Factory func(w io.Writer, setup *Setup) (Surface, error)

// Setup contains the document-wide parameters of a surface.
type Setup struct {
	Width, Height float64

	// MarginBottom is the distance between MaxY and the bottom edge of
	// the page.
	MarginBottom float64

	// UserPassword and OwnerPassword, if set, enable encryption.
	UserPassword  string
	OwnerPassword string
}

// Align is the horizontal alignment of text within its box.
type Align int

// These are the supported alignments.
const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextOptions describe the box into which text is drawn.
type TextOptions struct {
	Align Align

	// Width is the width of the text box.  If Width is zero, lines are
	// not wrapped and alignment is relative to x.
	Width float64
}

// Color is an RGB colour with components in the range [0, 1].
type Color struct {
	R, G, B float64
}

// Info is the document metadata.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Creator  string
	Producer string
	Created  time.Time
}
