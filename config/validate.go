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

package config

import (
	"fmt"
	"regexp"
	"strings"
)

// Error describes an invalid configuration.
// Problems lists every problem found, each prefixed with the option name.
type Error struct {
	Problems []string
}

func (err *Error) Error() string {
	return "invalid configuration: " + strings.Join(err.Problems, "; ")
}

// Resolve combines overrides with the built-in defaults and validates the
// result.  A nil overrides argument selects the defaults unchanged.
func Resolve(overrides *Config) (*Config, error) {
	cfg := Default()
	if overrides != nil {
		merged := Merge(*cfg, *overrides)
		cfg = &merged
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

type checker struct {
	problems []string
}

func (c *checker) addf(option, format string, args ...any) {
	c.problems = append(c.problems, option+": "+fmt.Sprintf(format, args...))
}

func (c *checker) positive(option string, x float64) {
	if !(x > 0) {
		c.addf(option, "must be positive, not %g", x)
	}
}

func (c *checker) nonNegative(option string, x float64) {
	if !(x >= 0) {
		c.addf(option, "must not be negative, not %g", x)
	}
}

func (c *checker) color(option string, col Color) {
	if col == "" {
		c.addf(option, "missing")
		return
	}
	if _, _, _, err := col.RGB(); err != nil {
		c.addf(option, "%v", err)
	}
}

func (c *checker) optionalColor(option string, col Color) {
	if col != "" {
		c.color(option, col)
	}
}

func (c *checker) regexp(option, expr string) {
	if _, err := regexp.Compile(expr); err != nil {
		c.addf(option, "invalid regular expression: %v", err)
	}
}

func (c *checker) slot(option string, s Slot, pageWidth float64) {
	c.nonNegative(option+".position", s.Position)
	c.positive(option+".maxWidth", s.MaxWidth)
	if pageWidth > 0 && s.Position >= pageWidth {
		c.addf(option+".position", "%g is outside the page", s.Position)
	}
}

func (c *checker) enum(option string, x, maxValue int, optional bool) {
	if x == 0 && optional {
		return
	}
	if x < 1 || x > maxValue {
		c.addf(option, "invalid value %d", x)
	}
}

// Validate checks that every field used for drawing has a usable value.
// All problems are reported together in a single *Error.
func Validate(cfg *Config) error {
	c := &checker{}
	st := &cfg.Style

	doc := &st.Document
	width, height, ok := doc.PageSize()
	if !ok {
		c.addf("style.document.paper", "unknown paper size %q", doc.Paper)
	}
	c.nonNegative("style.document.marginLeft", doc.MarginLeft)
	c.nonNegative("style.document.marginRight", doc.MarginRight)
	c.nonNegative("style.document.marginTop", doc.MarginTop)
	c.nonNegative("style.document.marginBottom", doc.MarginBottom)
	if ok {
		if doc.MarginLeft+doc.MarginRight >= width {
			c.addf("style.document", "horizontal margins exceed the page width %g", width)
		}
		if doc.MarginTop+doc.MarginBottom >= height {
			c.addf("style.document", "vertical margins exceed the page height %g", height)
		}
	}

	fonts := &st.Fonts
	if fonts.Normal.Name == "" {
		c.addf("style.fonts.normal.name", "missing")
	}
	if fonts.Bold.Name == "" {
		c.addf("style.fonts.bold.name", "missing")
	}
	c.regexp("style.fonts.normal.range", fonts.Normal.Range)
	c.regexp("style.fonts.fallback.range", fonts.Fallback.Range)
	c.enum("style.fonts.fallback.mode", int(fonts.Fallback.Mode), int(FallbackSubstitute), false)
	if fonts.Fallback.Mode == FallbackSubstitute && fonts.Fallback.Name == "" {
		c.addf("style.fonts.fallback.name", "missing")
	}

	hdr := &st.Header
	c.color("style.header.backgroundColor", hdr.BackgroundColor)
	c.positive("style.header.height", hdr.Height)
	c.nonNegative("style.header.textPosition", hdr.TextPosition)
	if ok && hdr.TextPosition >= width {
		c.addf("style.header.textPosition", "%g is outside the page", hdr.TextPosition)
	}
	c.optionalColor("style.header.regularColor", hdr.RegularColor)
	c.optionalColor("style.header.secondaryColor", hdr.SecondaryColor)
	c.nonNegative("style.header.lineMargin", hdr.LineMargin)
	if img := hdr.Image; img != nil && img.Path != "" {
		c.positive("style.header.image.width", img.Width)
		c.positive("style.header.image.height", img.Height)
	}

	det := &st.Details
	c.nonNegative("style.details.offset", det.Offset)
	c.positive("style.details.maxWidth", det.MaxWidth)
	c.nonNegative("style.details.labelMargin", det.LabelMargin)
	c.nonNegative("style.details.valueMargin", det.ValueMargin)

	tab := &st.Table
	c.enum("style.table.layout", int(tab.Layout), int(LayoutFixed), false)
	c.nonNegative("style.table.gap", tab.Gap)
	c.nonNegative("style.table.columnGap", tab.ColumnGap)
	if tab.Layout == LayoutFixed && len(tab.Slots) == 0 {
		c.addf("style.table.slots", "the fixed layout needs at least one slot")
	}
	for i, s := range tab.Slots {
		c.slot(fmt.Sprintf("style.table.slots[%d]", i), s, width)
	}
	c.slot("style.table.total", tab.Total, width)
	if tab.Layout == LayoutAuto && tab.Total.Position <= doc.MarginLeft {
		c.addf("style.table.total.position", "must be right of the left margin")
	}
	c.color("style.table.line.color", tab.Line.Color)
	c.nonNegative("style.table.line.width", tab.Line.Width)
	c.nonNegative("style.table.line.spacing", tab.Line.Spacing)

	tot := &st.Total
	c.slot("style.total.label", tot.Label, width)
	c.slot("style.total.value", tot.Value, width)
	c.enum("style.total.align", int(tot.Align), int(AlignRight), false)
	c.nonNegative("style.total.marginTop", tot.MarginTop)
	c.nonNegative("style.total.gap", tot.Gap)

	leg := &st.Legal
	c.nonNegative("style.legal.gap", leg.Gap)
	c.nonNegative("style.legal.marginTop", leg.MarginTop)
	c.nonNegative("style.legal.indent", leg.Indent)
	if ok && 2*leg.Indent >= width {
		c.addf("style.legal.indent", "no space left between %g and %g", leg.Indent, width-leg.Indent)
	}

	txt := &st.Text
	c.color("style.text.primaryColor", txt.PrimaryColor)
	c.color("style.text.secondaryColor", txt.SecondaryColor)
	c.positive("style.text.headingSize", txt.HeadingSize)
	c.positive("style.text.regularSize", txt.RegularSize)
	c.positive("style.text.lineFallback", txt.LineFallback)

	inv := &cfg.Data.Invoice
	for i, t := range inv.Details.Total {
		if t.Digits != nil && (*t.Digits < 0 || *t.Digits > 10) {
			c.addf(fmt.Sprintf("data.invoice.details.total[%d].digits", i),
				"must be between 0 and 10, not %d", *t.Digits)
		}
	}
	for i, l := range inv.Legal {
		option := fmt.Sprintf("data.invoice.legal[%d]", i)
		c.enum(option+".weight", int(l.Weight), int(WeightBold), true)
		c.enum(option+".color", int(l.Color), int(ColorSecondary), true)
		c.enum(option+".align", int(l.Align), int(AlignRight), true)
	}

	if len(c.problems) > 0 {
		return &Error{Problems: c.problems}
	}
	return nil
}
