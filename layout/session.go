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

// Package layout places the content of an invoice onto a drawing surface.
//
// A Session holds the state of one rendering: the cursor, the heights of
// the customer and seller blocks, and the fallback font latch.  Sessions
// are cheap and must not be shared between goroutines; to render the same
// invoice concurrently, create one session per rendering.
//
// Rendering proceeds in a fixed order: the header band, the customer and
// seller blocks, the table of parts followed by the totals, and finally the
// legal notices at the bottom of the last page.
package layout

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"seehuhn.de/go/invoice/config"
	"seehuhn.de/go/invoice/surface"
)

// Axis selects a cursor coordinate.
type Axis int

// These are the cursor axes.
const (
	AxisX Axis = iota
	AxisY
)

// Cursor is a position on the page, measured from the top-left corner.
type Cursor struct {
	X, Y float64
}

// Heights records where the customer and seller blocks end.
type Heights struct {
	Customer float64
	Seller   float64
}

// Block selects one of the two detail blocks.
type Block int

// These are the detail blocks.
const (
	Customer Block = iota
	Seller
)

func (b Block) String() string {
	switch b {
	case Customer:
		return "customer"
	case Seller:
		return "seller"
	default:
		return fmt.Sprintf("Block(%d)", int(b))
	}
}

// Session renders one invoice onto one surface.
type Session struct {
	cfg  *config.Config
	surf surface.Surface
	log  *zap.Logger

	cursor  Cursor
	heights Heights
	fonts   *fontSelector
	colors  map[config.Color]surface.Color

	// lastBottom is the lower edge of the most recently placed text,
	// also when the cursor was rewound afterwards.
	lastBottom float64

	page         int
	tableColumns int
	warned       map[string]bool

	err error
}

// NewSession prepares the rendering of cfg onto surf.
//
// The configuration must be valid, see config.Validate.  Custom fonts are
// registered with the surface immediately.  If logger is nil, nothing is
// logged.
func NewSession(cfg *config.Config, surf surface.Surface, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		cfg:    cfg,
		surf:   surf,
		log:    logger,
		colors: make(map[config.Color]surface.Color),
		page:   1,
		warned: make(map[string]bool),
	}

	problems := checkFontNames(&cfg.Style.Fonts)
	if len(problems) > 0 {
		return nil, &config.Error{Problems: problems}
	}

	fonts := &cfg.Style.Fonts
	for _, face := range []config.FontFace{fonts.Normal, fonts.Bold} {
		if face.Path == "" {
			continue
		}
		data, err := os.ReadFile(face.Path)
		if err != nil {
			return nil, fmt.Errorf("font %q: %w", face.Name, err)
		}
		err = surf.RegisterFont(face.Name, data)
		if err != nil {
			return nil, fmt.Errorf("font %q: %w", face.Name, err)
		}
		s.log.Debug("registered font", zap.String("name", face.Name), zap.String("path", face.Path))
	}

	sel, err := newFontSelector(fonts, surf, s.log)
	if err != nil {
		return nil, err
	}
	s.fonts = sel

	return s, nil
}

func checkFontNames(fonts *config.FontsStyle) []string {
	var problems []string
	if fonts.Normal.Path == "" && !surface.IsStandardFont(fonts.Normal.Name) {
		problems = append(problems,
			fmt.Sprintf("style.fonts.normal.path: needed for the non-standard font %q", fonts.Normal.Name))
	}
	if fonts.Bold.Path == "" && !surface.IsStandardFont(fonts.Bold.Name) {
		problems = append(problems,
			fmt.Sprintf("style.fonts.bold.path: needed for the non-standard font %q", fonts.Bold.Name))
	}
	if fonts.Fallback.Mode == config.FallbackSubstitute && surface.IsStandardFont(fonts.Fallback.Name) {
		problems = append(problems,
			fmt.Sprintf("style.fonts.fallback.name: %q is the name of a standard font", fonts.Fallback.Name))
	}
	return problems
}

// Render draws the complete invoice.  The surface is not closed.
func (s *Session) Render() error {
	s.header()
	s.details(Customer)
	s.details(Seller)
	s.parts()
	s.legal()

	if s.err != nil {
		return s.err
	}
	return s.surf.Err()
}

// SetCursor moves the cursor along one axis.
func (s *Session) SetCursor(axis Axis, v float64) {
	switch axis {
	case AxisX:
		s.cursor.X = v
	case AxisY:
		s.cursor.Y = v
	}
}

// Cursor returns the current cursor position.
func (s *Session) Cursor() Cursor {
	return s.cursor
}

// Heights returns the recorded end positions of the detail blocks.
func (s *Session) Heights() Heights {
	return s.heights
}

// Page returns the number of the current page, starting at 1.
func (s *Session) Page() int {
	return s.page
}

// fail records the first error of the session.
func (s *Session) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// warnOnce logs a warning the first time a given key is seen.
func (s *Session) warnOnce(key, msg string, fields ...zap.Field) {
	if s.warned[key] {
		return
	}
	s.warned[key] = true
	s.log.Warn(msg, fields...)
}

// color converts a configured colour.  Invalid colours are logged and
// replaced by black.
func (s *Session) color(c config.Color) surface.Color {
	if res, ok := s.colors[c]; ok {
		return res
	}
	r, g, b, err := c.RGB()
	if err != nil {
		s.warnOnce("color:"+string(c), "invalid colour", zap.String("color", string(c)), zap.Error(err))
	}
	res := surface.Color{R: r, G: g, B: b}
	s.colors[c] = res
	return res
}
