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

// Package surfacetest provides a drawing surface for tests.
//
// The Recorder keeps a list of all drawing operations instead of producing
// a document.  Text metrics are deterministic: every character is half the
// font size wide, and every line of text is one font size high.
package surfacetest

import (
	"errors"
	"fmt"
	"image"
	"io"
	"unicode/utf8"

	"seehuhn.de/go/invoice/surface"
)

// OpKind identifies the type of a recorded operation.
type OpKind int

// These are the recorded operations.
const (
	OpText OpKind = iota + 1
	OpRect
	OpImage
	OpLine
	OpPage
)

func (k OpKind) String() string {
	switch k {
	case OpText:
		return "text"
	case OpRect:
		return "rect"
	case OpImage:
		return "image"
	case OpLine:
		return "line"
	case OpPage:
		return "page"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is a recorded drawing operation.
//
// For text, (X, Y) is the top-left corner of the text box, W is the box
// width and H is the measured text height.  For lines, (X, Y) and (X2, Y2)
// are the end points.
type Op struct {
	Kind   OpKind
	Page   int
	Text   string
	X, Y   float64
	X2, Y2 float64
	W, H   float64
	Font   string
	Size   float64
	Color  surface.Color
	Align  surface.Align
}

// Recorder is a surface which records all operations.
type Recorder struct {
	Width, Height float64
	MarginBottom  float64

	// Ops lists the drawing operations in the order they were issued.
	Ops []Op

	// Registered lists the names passed to RegisterFont.
	Registered []string

	// Page is the number of the current page, starting at 1.
	Page int

	Info *surface.Info

	w      io.Writer
	fonts  map[string]bool
	font   string
	size   float64
	fill   surface.Color
	err    error
	closed bool
}

// NewRecorder returns a recorder for pages of the given setup.
// The output written by Close is discarded.
func NewRecorder(setup *surface.Setup) *Recorder {
	return &Recorder{
		Width:        setup.Width,
		Height:       setup.Height,
		MarginBottom: setup.MarginBottom,
		Page:         1,
		w:            io.Discard,
		fonts:        map[string]bool{},
		size:         12,
	}
}

// New is a surface.Factory for recorders.  Close writes a textual log of
// the recorded operations to w.
func New(w io.Writer, setup *surface.Setup) (surface.Surface, error) {
	r := NewRecorder(setup)
	r.w = w
	return r, nil
}

// Measure returns the width of a single line of text at the current font
// size.
func (r *Recorder) Measure(text string) float64 {
	return float64(utf8.RuneCountInString(text)) * r.size / 2
}

// PageWidth implements the surface.Surface interface.
func (r *Recorder) PageWidth() float64 {
	return r.Width
}

// MaxY implements the surface.Surface interface.
func (r *Recorder) MaxY() float64 {
	return r.Height - r.MarginBottom
}

// AddPage implements the surface.Surface interface.
func (r *Recorder) AddPage() {
	r.Page++
	r.Ops = append(r.Ops, Op{Kind: OpPage, Page: r.Page})
}

// RegisterFont implements the surface.Surface interface.
func (r *Recorder) RegisterFont(name string, ttf []byte) error {
	if r.fonts[name] || surface.IsStandardFont(name) {
		return fmt.Errorf("font %q already registered", name)
	}
	if len(ttf) == 0 {
		return errors.New("empty font data")
	}
	r.fonts[name] = true
	r.Registered = append(r.Registered, name)
	return nil
}

// SetFont implements the surface.Surface interface.
func (r *Recorder) SetFont(name string) {
	if !r.fonts[name] && !surface.IsStandardFont(name) {
		r.setErr(fmt.Errorf("unknown font %q", name))
		return
	}
	r.font = name
}

// SetFontSize implements the surface.Surface interface.
func (r *Recorder) SetFontSize(size float64) {
	r.size = size
}

// SetFillColor implements the surface.Surface interface.
func (r *Recorder) SetFillColor(c surface.Color) {
	r.fill = c
}

// TextHeight implements the surface.Surface interface.
func (r *Recorder) TextHeight(text string, width float64) float64 {
	lines := surface.Wrap(text, width, r.Measure)
	return float64(len(lines)) * r.size
}

// DrawText implements the surface.Surface interface.
func (r *Recorder) DrawText(text string, x, y float64, opt *surface.TextOptions) {
	if opt == nil {
		opt = &surface.TextOptions{}
	}
	r.Ops = append(r.Ops, Op{
		Kind:  OpText,
		Page:  r.Page,
		Text:  text,
		X:     x,
		Y:     y,
		W:     opt.Width,
		H:     r.TextHeight(text, opt.Width),
		Font:  r.font,
		Size:  r.size,
		Color: r.fill,
		Align: opt.Align,
	})
}

// FillRect implements the surface.Surface interface.
func (r *Recorder) FillRect(x, y, w, h float64, c surface.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Page: r.Page, X: x, Y: y, W: w, H: h, Color: c})
}

// DrawImage implements the surface.Surface interface.
func (r *Recorder) DrawImage(img image.Image, x, y, w, h float64) {
	if img == nil {
		r.setErr(errors.New("missing image"))
		return
	}
	r.Ops = append(r.Ops, Op{Kind: OpImage, Page: r.Page, X: x, Y: y, W: w, H: h})
}

// StrokeLine implements the surface.Surface interface.
func (r *Recorder) StrokeLine(x1, y1, x2, y2 float64, c surface.Color, width float64) {
	r.Ops = append(r.Ops, Op{
		Kind:  OpLine,
		Page:  r.Page,
		X:     x1,
		Y:     y1,
		X2:    x2,
		Y2:    y2,
		W:     width,
		Color: c,
	})
}

// SetInfo implements the surface.Surface interface.
func (r *Recorder) SetInfo(info *surface.Info) {
	r.Info = info
}

// Err implements the surface.Surface interface.
func (r *Recorder) Err() error {
	return r.err
}

// Close implements the surface.Surface interface.
// The recorded operations remain accessible after Close.
func (r *Recorder) Close() error {
	if r.closed {
		return errors.New("surface already closed")
	}
	r.closed = true
	if r.err != nil {
		return r.err
	}
	for _, op := range r.Ops {
		_, err := fmt.Fprintln(r.w, op)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Recorder) setErr(err error) {
	if r.err == nil {
		r.err = err
	}
}

// OpsOf returns the recorded operations of the given kind.
func (r *Recorder) OpsOf(kind OpKind) []Op {
	var res []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			res = append(res, op)
		}
	}
	return res
}

// Find returns the first text operation which draws exactly the given
// text.  The second return value is false if there is no such operation.
func (r *Recorder) Find(text string) (Op, bool) {
	for _, op := range r.Ops {
		if op.Kind == OpText && op.Text == text {
			return op, true
		}
	}
	return Op{}, false
}

func (op Op) String() string {
	switch op.Kind {
	case OpText:
		return fmt.Sprintf("%d: text %q at (%g, %g) w=%g h=%g font=%s/%g",
			op.Page, op.Text, op.X, op.Y, op.W, op.H, op.Font, op.Size)
	case OpLine:
		return fmt.Sprintf("%d: line (%g, %g)-(%g, %g)", op.Page, op.X, op.Y, op.X2, op.Y2)
	case OpPage:
		return fmt.Sprintf("%d: page", op.Page)
	default:
		return fmt.Sprintf("%d: %s (%g, %g) %gx%g", op.Page, op.Kind, op.X, op.Y, op.W, op.H)
	}
}
