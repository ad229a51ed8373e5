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

package surface

import (
	"strings"
	"unicode"
)

// Wrap breaks text into lines no wider than width, where measure gives the
// width of a string.  Line breaks in the text are kept.  Lines are broken
// at spaces where possible, words which are too long for a line on their
// own are broken between characters.  If width is not positive, only the
// explicit line breaks are used.
//
// Wrap returns no lines for the empty string.
func Wrap(text string, width float64, measure func(string) float64) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var lines []string
	for _, par := range strings.Split(text, "\n") {
		if width <= 0 {
			lines = append(lines, par)
			continue
		}
		lines = wrapParagraph(lines, par, width, measure)
	}
	return lines
}

func wrapParagraph(lines []string, par string, width float64, measure func(string) float64) []string {
	words := strings.FieldsFunc(par, unicode.IsSpace)
	if len(words) == 0 {
		return append(lines, "")
	}

	var cur string
	for _, word := range words {
		candidate := word
		if cur != "" {
			candidate = cur + " " + word
		}
		if measure(candidate) <= width {
			cur = candidate
			continue
		}
		if cur != "" {
			lines = append(lines, cur)
			cur = ""
		}
		for measure(word) > width {
			head, tail := splitWord(word, width, measure)
			lines = append(lines, head)
			word = tail
		}
		cur = word
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}

// splitWord returns the longest prefix of word which fits into width, and
// the remainder.  The prefix contains at least one character.
func splitWord(word string, width float64, measure func(string) float64) (string, string) {
	runes := []rune(word)
	n := 1
	for n < len(runes) && measure(string(runes[:n+1])) <= width {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}
