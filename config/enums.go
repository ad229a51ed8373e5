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
	"strings"
)

// The enumerations in this file all reserve the zero value for "not set",
// so that a zero field in an override configuration leaves the default in
// place.

// FontWeight selects between the normal and the bold font.
type FontWeight int

// These are the supported font weights.
const (
	WeightNormal FontWeight = iota + 1
	WeightBold
)

func (w FontWeight) String() string {
	switch w {
	case WeightNormal:
		return "normal"
	case WeightBold:
		return "bold"
	default:
		return fmt.Sprintf("FontWeight(%d)", int(w))
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (w FontWeight) MarshalText() ([]byte, error) {
	if w == 0 {
		return []byte{}, nil
	}
	return []byte(w.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// Both "normal" and "regular" select the normal weight.
func (w *FontWeight) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "":
		*w = 0
	case "normal", "regular":
		*w = WeightNormal
	case "bold":
		*w = WeightBold
	default:
		return &EnumError{Kind: "font weight", Value: string(text)}
	}
	return nil
}

// ColorCode selects a colour from the palette in TextStyle.
type ColorCode int

// These are the palette entries.
const (
	ColorPrimary ColorCode = iota + 1
	ColorSecondary
)

func (c ColorCode) String() string {
	switch c {
	case ColorPrimary:
		return "primary"
	case ColorSecondary:
		return "secondary"
	default:
		return fmt.Sprintf("ColorCode(%d)", int(c))
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (c ColorCode) MarshalText() ([]byte, error) {
	if c == 0 {
		return []byte{}, nil
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (c *ColorCode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "":
		*c = 0
	case "primary":
		*c = ColorPrimary
	case "secondary":
		*c = ColorSecondary
	default:
		return &EnumError{Kind: "colour code", Value: string(text)}
	}
	return nil
}

// FontSize selects one of the two font sizes in TextStyle.
type FontSize int

// These are the supported font sizes.
const (
	SizeRegular FontSize = iota + 1
	SizeHeading
)

func (s FontSize) String() string {
	switch s {
	case SizeRegular:
		return "regular"
	case SizeHeading:
		return "heading"
	default:
		return fmt.Sprintf("FontSize(%d)", int(s))
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (s FontSize) MarshalText() ([]byte, error) {
	if s == 0 {
		return []byte{}, nil
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (s *FontSize) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "":
		*s = 0
	case "regular":
		*s = SizeRegular
	case "heading":
		*s = SizeHeading
	default:
		return &EnumError{Kind: "font size", Value: string(text)}
	}
	return nil
}

// Align is the horizontal alignment of text within its box.
type Align int

// These are the supported alignments.
const (
	AlignLeft Align = iota + 1
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("Align(%d)", int(a))
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (a Align) MarshalText() ([]byte, error) {
	if a == 0 {
		return []byte{}, nil
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (a *Align) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "":
		*a = 0
	case "left":
		*a = AlignLeft
	case "center", "centre":
		*a = AlignCenter
	case "right":
		*a = AlignRight
	default:
		return &EnumError{Kind: "alignment", Value: string(text)}
	}
	return nil
}

// TableLayout selects the strategy used to place table columns.
type TableLayout int

const (
	// LayoutAuto lets all columns but the last share the width left of the
	// total column.  The last column uses the total slot.
	LayoutAuto TableLayout = iota + 1

	// LayoutFixed places column i at the configured slot i.
	LayoutFixed
)

func (l TableLayout) String() string {
	switch l {
	case LayoutAuto:
		return "auto"
	case LayoutFixed:
		return "fixed"
	default:
		return fmt.Sprintf("TableLayout(%d)", int(l))
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (l TableLayout) MarshalText() ([]byte, error) {
	if l == 0 {
		return []byte{}, nil
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (l *TableLayout) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "":
		*l = 0
	case "auto":
		*l = LayoutAuto
	case "fixed":
		*l = LayoutFixed
	default:
		return &EnumError{Kind: "table layout", Value: string(text)}
	}
	return nil
}

// FallbackMode selects what happens to text which the normal and bold fonts
// cannot render.
type FallbackMode int

const (
	// FallbackNone draws all text with the requested font.
	FallbackNone FallbackMode = iota + 1

	// FallbackTransliterate replaces the text by an ASCII approximation and
	// keeps the requested font.
	FallbackTransliterate

	// FallbackSubstitute draws the text with the fallback font.
	FallbackSubstitute
)

func (m FallbackMode) String() string {
	switch m {
	case FallbackNone:
		return "none"
	case FallbackTransliterate:
		return "transliterate"
	case FallbackSubstitute:
		return "substitute"
	default:
		return fmt.Sprintf("FallbackMode(%d)", int(m))
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (m FallbackMode) MarshalText() ([]byte, error) {
	if m == 0 {
		return []byte{}, nil
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (m *FallbackMode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "":
		*m = 0
	case "none", "off":
		*m = FallbackNone
	case "transliterate":
		*m = FallbackTransliterate
	case "substitute", "font":
		*m = FallbackSubstitute
	default:
		return &EnumError{Kind: "fallback mode", Value: string(text)}
	}
	return nil
}

// EnumError is returned when an enumeration value cannot be decoded.
type EnumError struct {
	Kind  string
	Value string
}

func (err *EnumError) Error() string {
	return fmt.Sprintf("invalid %s %q", err.Kind, err.Value)
}
