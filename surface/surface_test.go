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
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

// monospace measures one unit per character.
func monospace(s string) float64 {
	return float64(utf8.RuneCountInString(s))
}

func TestWrap(t *testing.T) {
	testCases := []struct {
		text  string
		width float64
		want  []string
	}{
		{"", 10, nil},
		{"hello", 10, []string{"hello"}},
		{"hello world", 11, []string{"hello world"}},
		{"hello world", 10, []string{"hello", "world"}},
		{"a b c d e", 3, []string{"a b", "c d", "e"}},
		{"abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"ab abcdefgh", 4, []string{"ab", "abcd", "efgh"}},
		{"one\ntwo", 10, []string{"one", "two"}},
		{"one\n\ntwo", 10, []string{"one", "", "two"}},
		{"  spaced   out  ", 20, []string{"spaced out"}},
		{"no wrapping here", 0, []string{"no wrapping here"}},
		{"äöü ß", 3, []string{"äöü", "ß"}},
	}
	for _, tc := range testCases {
		got := Wrap(tc.text, tc.width, monospace)
		if d := cmp.Diff(tc.want, got); d != "" {
			t.Errorf("Wrap(%q, %g): (-want +got):\n%s", tc.text, tc.width, d)
		}
	}
}

func TestWrapNarrowBox(t *testing.T) {
	// even if no single character fits, every line must make progress
	got := Wrap("abc", 0.5, monospace)
	want := []string{"a", "b", "c"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestLoadImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	path := filepath.Join(t.TempDir(), "logo.png")
	fd, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	err = png.Encode(fd, img)
	if err != nil {
		t.Fatal(err)
	}
	err = fd.Close()
	if err != nil {
		t.Fatal(err)
	}

	got, err := LoadImage(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds() != img.Bounds() {
		t.Errorf("wrong bounds %v", got.Bounds())
	}

	_, err = LoadImage(filepath.Join(t.TempDir(), "missing.png"))
	if !os.IsNotExist(err) {
		t.Errorf("missing file: got %v", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadImage(bad); err == nil {
		t.Error("invalid image accepted")
	}
}
