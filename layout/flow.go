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
	"seehuhn.de/go/invoice/config"
	"seehuhn.de/go/invoice/surface"
)

// TextOptions control the placement of a piece of text.
// The zero value draws left-aligned primary text in the normal font at the
// regular size.
type TextOptions struct {
	Weight    config.FontWeight
	ColorCode config.ColorCode

	// Color, if set, overrides ColorCode.
	Color config.Color

	Size  config.FontSize
	Align config.Align

	// MarginTop is added to the cursor before the text is placed.
	MarginTop float64

	// MaxWidth is the width of the text box.  If MaxWidth is zero, the box
	// extends from the cursor to the right margin.
	MaxWidth float64

	// SkipDown leaves the cursor at the top of the text, so that the next
	// piece of text starts on the same line.
	SkipDown bool

	// OnPageBreak is called after a page break caused by this text, once
	// the cursor has been moved to the top of the new page.
	OnPageBreak func()
}

// PlaceText draws text at the cursor position and moves the cursor below
// the text.  If the text does not fit onto the current page, a new page is
// started first.
func (s *Session) PlaceText(text string, opt *TextOptions) {
	if opt == nil {
		opt = &TextOptions{}
	}

	s.cursor.Y += opt.MarginTop

	text, width, height := s.prepare(text, opt)

	if !s.fits(height) && s.cursor.Y > s.topMargin() {
		s.newPage(opt.OnPageBreak)
	}

	top := s.cursor.Y
	if text != "" {
		s.surf.DrawText(text, s.cursor.X, top, &surface.TextOptions{
			Align: surfaceAlign(opt.Align),
			Width: width,
		})
	}

	advance := height
	if advance <= 0 && text != "" {
		advance = s.cfg.Style.Text.LineFallback
	}
	s.lastBottom = top + advance

	if opt.SkipDown {
		s.cursor.Y = top
	} else {
		s.cursor.Y = top + advance
	}
}

// prepare selects font, size and colour for text on the surface.  It
// returns the text to draw, the width of the text box and the height the
// text will occupy.
func (s *Session) prepare(text string, opt *TextOptions) (string, float64, float64) {
	textStyle := &s.cfg.Style.Text

	col := opt.Color
	if col == "" {
		col = textStyle.PrimaryColor
		if opt.ColorCode == config.ColorSecondary {
			col = textStyle.SecondaryColor
		}
	}
	s.surf.SetFillColor(s.color(col))

	fontName := s.fonts.SelectFont(opt.Weight, text)
	if s.fonts.err != nil {
		s.fail(s.fonts.err)
	}
	text = s.fonts.RenderableText(text)
	s.surf.SetFont(fontName)

	size := textStyle.RegularSize
	if opt.Size == config.SizeHeading {
		size = textStyle.HeadingSize
	}
	s.surf.SetFontSize(size)

	width := opt.MaxWidth
	if width <= 0 {
		width = s.surf.PageWidth() - s.cursor.X - s.cfg.Style.Document.MarginRight
	}
	if width <= 0 {
		width = s.cfg.Style.Text.LineFallback
	}

	return text, width, s.surf.TextHeight(text, width)
}

func surfaceAlign(a config.Align) surface.Align {
	switch a {
	case config.AlignCenter:
		return surface.AlignCenter
	case config.AlignRight:
		return surface.AlignRight
	default:
		return surface.AlignLeft
	}
}
