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

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/invoice/config"
)

func TestRun(t *testing.T) {
	for _, b := range []string{"pdf", "fpdf"} {
		t.Run(b, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "acme.pdf")
			*outFile = out
			*backend = b

			err := run([]string{"testdata/style.json", "testdata/acme.json"})
			if err != nil {
				t.Fatal(err)
			}
			data, err := os.ReadFile(out)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.HasPrefix(data, []byte("%PDF-")) {
				t.Error("output is not a PDF file")
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	*outFile = filepath.Join(dir, "out.pdf")

	*backend = "png"
	if err := run(nil); err == nil {
		t.Error("unknown backend was accepted")
	}
	*backend = "pdf"

	bad := filepath.Join(dir, "bad.json")
	err := os.WriteFile(bad, []byte(`{"style": {"header": {"height": -5}}}`), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	err = run([]string{bad})
	var cfgErr *config.Error
	if !errors.As(err, &cfgErr) {
		t.Errorf("got %v, want a configuration error", err)
	}

	if err := run([]string{filepath.Join(dir, "missing.json")}); err == nil {
		t.Error("missing configuration file was accepted")
	}
}
