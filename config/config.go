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

// Package config describes the configuration of an invoice rendering.
//
// A configuration has two parts: the Style, which holds geometry, colours
// and fonts, and the Data, which holds the content of the invoice.  The
// Default function returns a configuration in which every field the layout
// code reads has a value.  User supplied overrides are combined with the
// defaults using Merge (see Resolve), or are decoded from JSON files on top
// of the defaults (see Load).  The result is checked by Validate before
// anything is drawn.
//
// The JSON field names follow the option names of the configuration files,
// for example "style.header.backgroundColor".
package config

// Config is a complete invoice configuration.
type Config struct {
	Style Style `json:"style"`
	Data  Data  `json:"data"`
}

// Style contains the geometry, colour and font parameters of the invoice.
type Style struct {
	Document DocumentStyle `json:"document"`
	Fonts    FontsStyle    `json:"fonts"`
	Header   HeaderStyle   `json:"header"`
	Details  DetailsStyle  `json:"details"`
	Table    TableStyle    `json:"table"`
	Total    TotalStyle    `json:"total"`
	Legal    LegalStyle    `json:"legal"`
	Text     TextStyle     `json:"text"`
}

// DocumentStyle describes the page.
//
// If Width and Height are both set, they take precedence over Paper.
type DocumentStyle struct {
	Paper        string  `json:"paper"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	MarginLeft   float64 `json:"marginLeft"`
	MarginRight  float64 `json:"marginRight"`
	MarginTop    float64 `json:"marginTop"`
	MarginBottom float64 `json:"marginBottom"`
}

// PageSize returns the page dimensions in PDF units.
// The second return value is false if the size cannot be determined.
func (d *DocumentStyle) PageSize() (width, height float64, ok bool) {
	if d.Width > 0 && d.Height > 0 {
		return d.Width, d.Height, true
	}
	p, ok := LookupPaper(d.Paper)
	if !ok {
		return 0, 0, false
	}
	return p.Width, p.Height, true
}

// FontsStyle selects the fonts used for the invoice.
type FontsStyle struct {
	Normal   FontFace     `json:"normal"`
	Bold     FontFace     `json:"bold"`
	Fallback FallbackFont `json:"fallback"`
}

// FontFace names a font.  If Path is empty, Name must be one of the
// standard PDF fonts (for example "Helvetica" or "Helvetica-Bold").
// Otherwise Path points to a TrueType file which is registered under Name.
//
// Range is a regular expression which matches any character the font cannot
// render.  It is only used for the normal font, where it decides whether
// the fallback policy applies to a piece of text.
type FontFace struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Range string `json:"range"`
}

// FallbackFont configures the handling of text which the normal and bold
// fonts cannot render.
//
// Range matches characters which even the fallback font cannot render.  In
// substitution mode, text containing such characters keeps the requested
// font.  If Path is empty, the Go Regular font is used as the fallback font.
type FallbackFont struct {
	Name  string       `json:"name"`
	Path  string       `json:"path"`
	Range string       `json:"range"`
	Mode  FallbackMode `json:"mode"`
}

// HeaderStyle describes the coloured band at the top of the first page.
type HeaderStyle struct {
	BackgroundColor Color       `json:"backgroundColor"`
	Height          float64     `json:"height"`
	Image           *ImageStyle `json:"image"`
	TextPosition    float64     `json:"textPosition"`
	RegularColor    Color       `json:"regularColor"`
	SecondaryColor  Color       `json:"secondaryColor"`
	LineMargin      float64     `json:"lineMargin"`
}

// ImageStyle places a logo image in the header.
type ImageStyle struct {
	Path   string  `json:"path"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DetailsStyle describes the customer and seller blocks.
// The blocks start Offset units below the header band.
type DetailsStyle struct {
	Offset      float64 `json:"offset"`
	MaxWidth    float64 `json:"maxWidth"`
	LabelMargin float64 `json:"labelMargin"`
	ValueMargin float64 `json:"valueMargin"`
}

// Slot is a table column position.
type Slot struct {
	Name     string  `json:"name"`
	Position float64 `json:"position"`
	MaxWidth float64 `json:"maxWidth"`
}

// TableStyle describes the table of invoice parts.
//
// With the auto-width layout, all columns except the last share the space
// between the left margin and Total.Position, and the last column uses the
// Total slot.  With the fixed-slot layout, column i uses Slots[i].
type TableStyle struct {
	Layout    TableLayout `json:"layout"`
	Gap       float64     `json:"gap"`
	ColumnGap float64     `json:"columnGap"`
	Slots     []Slot      `json:"slots"`
	Total     Slot        `json:"total"`
	Line      LineStyle   `json:"line"`
}

// LineStyle describes the separator lines below table rows.
// Spacing is the vertical distance added after a line.
type LineStyle struct {
	Color   Color   `json:"color"`
	Width   float64 `json:"width"`
	Spacing float64 `json:"spacing"`
}

// TotalStyle describes the label/value pairs below the table.
type TotalStyle struct {
	Label     Slot    `json:"label"`
	Value     Slot    `json:"value"`
	Align     Align   `json:"align"`
	MarginTop float64 `json:"marginTop"`
	Gap       float64 `json:"gap"`
}

// LegalStyle describes the block of legal notices at the end of the invoice.
// Indent is the left edge of the notices, the block is centred between
// Indent and the same distance from the right edge of the page.
type LegalStyle struct {
	Gap       float64 `json:"gap"`
	MarginTop float64 `json:"marginTop"`
	Indent    float64 `json:"indent"`
}

// TextStyle contains the palette and the font sizes.
//
// LineFallback is the height of a single line of text, used where a drawn
// height cannot be measured.
type TextStyle struct {
	PrimaryColor   Color   `json:"primaryColor"`
	SecondaryColor Color   `json:"secondaryColor"`
	HeadingSize    float64 `json:"headingSize"`
	RegularSize    float64 `json:"regularSize"`
	LineFallback   float64 `json:"lineFallback"`
}

// Data holds the content of the invoice.
type Data struct {
	Invoice InvoiceData `json:"invoice"`
}

// InvoiceData is the content of one invoice.
type InvoiceData struct {
	Name     string  `json:"name"`
	Header   []Line  `json:"header"`
	Customer []Line  `json:"customer"`
	Seller   []Line  `json:"seller"`
	Details  Details `json:"details"`
	Legal    []Legal `json:"legal"`
	Currency string  `json:"currency"`
}

// Line is a labelled entry in the header or in one of the detail blocks.
type Line struct {
	Label string `json:"label"`
	Value Values `json:"value"`
}

// Details is the table of invoice parts together with the totals.
type Details struct {
	Header []Column   `json:"header"`
	Parts  [][]Column `json:"parts"`
	Total  []Total    `json:"total"`
}

// Column is a single table cell.
// If Price is set, the value is formatted as an amount of money.
type Column struct {
	Value Value `json:"value"`
	Price bool  `json:"price"`
}

// Total is a label/value pair below the table.
// Digits, if set, overrides the number of fraction digits used for prices.
type Total struct {
	Label  string `json:"label"`
	Value  Value  `json:"value"`
	Price  bool   `json:"price"`
	Digits *int   `json:"digits"`
}

// Legal is a notice printed at the end of the invoice.
type Legal struct {
	Value  string     `json:"value"`
	Weight FontWeight `json:"weight"`
	Color  ColorCode  `json:"color"`
	Align  Align      `json:"align"`
}
