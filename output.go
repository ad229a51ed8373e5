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

package invoice

import "io"

// Output describes where Generate writes the PDF file.
type Output struct {
	// Path is the name of the file to write.
	Path string
}

// ToFile returns an Output which writes to the named file.
func ToFile(path string) *Output {
	return &Output{Path: path}
}

// OutputError is returned when the rendered document cannot be written.
// Path is empty if the document was written to an io.Writer.
type OutputError struct {
	Path string
	Err  error
}

func (err *OutputError) Error() string {
	msg := "cannot write invoice"
	if err.Path != "" {
		msg += " " + err.Path
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *OutputError) Unwrap() error {
	return err.Err
}

// outputWriter counts the bytes written and remembers the first write
// error, so that failures of the underlying writer can be told apart from
// rendering problems.
type outputWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (w *outputWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	w.n += int64(n)
	if err != nil {
		w.err = err
	}
	return n, err
}
