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
	"fmt"
	"os"
	"regexp"

	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/invoice/config"
	"seehuhn.de/go/invoice/surface"
)

// fontSelector chooses the font for each piece of text.
type fontSelector struct {
	surf surface.Surface
	log  *zap.Logger
	mode config.FallbackMode

	normal, bold string

	// needsFallback matches text which the normal and bold fonts cannot
	// render, unsupported matches text which the fallback font cannot
	// render either.
	needsFallback *regexp.Regexp
	unsupported   *regexp.Regexp

	fallbackName string
	fallbackTTF  []byte

	loaded bool
	failed bool
	err    error
}

func newFontSelector(fonts *config.FontsStyle, surf surface.Surface, logger *zap.Logger) (*fontSelector, error) {
	f := &fontSelector{
		surf:         surf,
		log:          logger,
		mode:         fonts.Fallback.Mode,
		normal:       fonts.Normal.Name,
		bold:         fonts.Bold.Name,
		fallbackName: fonts.Fallback.Name,
	}

	var err error
	if fonts.Normal.Range != "" {
		f.needsFallback, err = regexp.Compile(fonts.Normal.Range)
		if err != nil {
			return nil, fmt.Errorf("style.fonts.normal.range: %w", err)
		}
	}
	if fonts.Fallback.Range != "" {
		f.unsupported, err = regexp.Compile(fonts.Fallback.Range)
		if err != nil {
			return nil, fmt.Errorf("style.fonts.fallback.range: %w", err)
		}
	}

	if f.mode == config.FallbackSubstitute {
		if fonts.Fallback.Path == "" {
			f.fallbackTTF = goregular.TTF
		} else {
			f.fallbackTTF, err = os.ReadFile(fonts.Fallback.Path)
			if err != nil {
				return nil, fmt.Errorf("fallback font: %w", err)
			}
		}
	}

	return f, nil
}

// SelectFont returns the name of the font used to draw text with the given
// weight.  In substitution mode, the fallback font is registered with the
// surface the first time it is needed.
func (f *fontSelector) SelectFont(weight config.FontWeight, text string) string {
	requested := f.normal
	if weight == config.WeightBold {
		requested = f.bold
	}

	if f.mode != config.FallbackSubstitute || !f.matches(f.needsFallback, text) {
		return requested
	}
	if f.matches(f.unsupported, text) || f.failed {
		return requested
	}

	if !f.loaded {
		err := f.surf.RegisterFont(f.fallbackName, f.fallbackTTF)
		if err != nil {
			f.failed = true
			f.err = fmt.Errorf("fallback font %q: %w", f.fallbackName, err)
			return requested
		}
		f.loaded = true
		f.log.Debug("registered fallback font", zap.String("name", f.fallbackName))
	}
	return f.fallbackName
}

// RenderableText returns the text which is actually drawn.  In
// transliteration mode, text which the normal font cannot render is
// replaced by an ASCII approximation.
func (f *fontSelector) RenderableText(text string) string {
	if f.mode != config.FallbackTransliterate || !f.matches(f.needsFallback, text) {
		return text
	}
	return Transliterate(text)
}

// Loaded reports whether the fallback font has been registered.
func (f *fontSelector) Loaded() bool {
	return f.loaded
}

func (f *fontSelector) matches(re *regexp.Regexp, text string) bool {
	return re != nil && re.MatchString(text)
}
