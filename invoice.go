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

// Package invoice renders invoices as PDF files.
//
// An invoice is described by a [config.Config], which combines the style of
// the document (page size, fonts, colours and the positions of all
// elements) with the invoice data (title, customer and seller details,
// the table of invoice parts, totals and legal notices).  Callers usually
// start from [config.Default] and override some of the values:
//
//	cfg, err := config.Resolve(&config.Config{
//		Data: config.Data{Invoice: config.InvoiceData{
//			Name:     "Invoice for Acme",
//			Currency: "EUR",
//		}},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	inv, err := invoice.New(cfg, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	_, err = inv.Generate(invoice.ToFile("invoice.pdf"))
//
// Each call to Generate or WriteTo uses its own render session, so that an
// Invoice can be rendered from several goroutines at the same time.
package invoice

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/xdg-go/stringprep"
	"go.uber.org/zap"

	"seehuhn.de/go/invoice/config"
	"seehuhn.de/go/invoice/internal/buildinfo"
	"seehuhn.de/go/invoice/layout"
	"seehuhn.de/go/invoice/surface"
	"seehuhn.de/go/invoice/surface/pdfdoc"
)

// Options control how an invoice is rendered.
// The zero value selects the default PDF backend without logging.
type Options struct {
	// Backend creates the drawing surface.  If this is nil,
	// pdfdoc.New is used.
	Backend surface.Factory

	// Logger receives diagnostic messages.  If this is nil, nothing is
	// logged.
	Logger *zap.Logger

	// UserPassword and OwnerPassword, if set, encrypt the generated PDF
	// file.  Passwords are normalised using SASLprep.
	UserPassword  string
	OwnerPassword string

	// Producer is stored in the document metadata.  If this is empty,
	// the name and version of this library is used.
	Producer string

	// Now returns the creation time stored in the document metadata.  If
	// this is nil, time.Now is used.
	Now func() time.Time
}

// Invoice is a validated invoice, ready to be rendered.
type Invoice struct {
	cfg *config.Config
	opt Options
	log *zap.Logger
}

// New prepares the invoice described by cfg for rendering.
//
// The configuration must be complete, see [config.Resolve] for merging
// partial overrides onto the defaults.  If cfg is nil, the default
// configuration is used.  Problems with the configuration or the options
// are reported as a single *config.Error before anything is drawn.
// New keeps a copy of cfg, later changes by the caller have no effect.
func New(cfg *config.Config, opt *Options) (*Invoice, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if opt == nil {
		opt = &Options{}
	}

	var problems []string
	if err := config.Validate(cfg); err != nil {
		var cfgErr *config.Error
		if !errors.As(err, &cfgErr) {
			return nil, err
		}
		problems = append(problems, cfgErr.Problems...)
	}

	inv := &Invoice{
		cfg: config.Clone(cfg),
		opt: *opt,
		log: opt.Logger,
	}
	if inv.log == nil {
		inv.log = zap.NewNop()
	}
	if inv.opt.Backend == nil {
		inv.opt.Backend = pdfdoc.New
	}
	if inv.opt.Producer == "" {
		inv.opt.Producer = buildinfo.Producer()
	}
	if inv.opt.Now == nil {
		inv.opt.Now = time.Now
	}

	var err error
	inv.opt.UserPassword, err = preparePassword(opt.UserPassword)
	if err != nil {
		problems = append(problems, "options.userPassword: "+err.Error())
	}
	inv.opt.OwnerPassword, err = preparePassword(opt.OwnerPassword)
	if err != nil {
		problems = append(problems, "options.ownerPassword: "+err.Error())
	}

	if len(problems) > 0 {
		return nil, &config.Error{Problems: problems}
	}
	return inv, nil
}

func preparePassword(passwd string) (string, error) {
	if passwd == "" {
		return "", nil
	}
	return stringprep.SASLprep.Prepare(passwd)
}

// Config returns a copy of the configuration used for rendering.
func (inv *Invoice) Config() *config.Config {
	return config.Clone(inv.cfg)
}

// Generate renders the invoice.
//
// If out is nil, the PDF file is returned as a byte slice.  Otherwise the
// file is written to out.Path and the returned slice is nil.  Failures to
// write the file are reported as *OutputError.  If rendering fails, no
// partial file is left behind.
func (inv *Invoice) Generate(out *Output) ([]byte, error) {
	if out == nil {
		buf := &bytes.Buffer{}
		err := inv.render(buf)
		if err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	if out.Path == "" {
		return nil, &OutputError{Err: errors.New("missing file name")}
	}
	fd, err := os.Create(out.Path)
	if err != nil {
		return nil, &OutputError{Path: out.Path, Err: err}
	}
	w := &outputWriter{w: fd}
	err = inv.render(w)
	if w.err != nil {
		err = &OutputError{Path: out.Path, Err: w.err}
	}
	closeErr := fd.Close()
	if err == nil && closeErr != nil {
		err = &OutputError{Path: out.Path, Err: closeErr}
	}
	if err != nil {
		os.Remove(out.Path)
		return nil, err
	}

	inv.log.Info("invoice written", zap.String("path", out.Path), zap.Int64("bytes", w.n))
	return nil, nil
}

// WriteTo renders the invoice and writes the PDF file to w.
// This implements the io.WriterTo interface.
func (inv *Invoice) WriteTo(w io.Writer) (int64, error) {
	ow := &outputWriter{w: w}
	err := inv.render(ow)
	if ow.err != nil {
		err = &OutputError{Err: ow.err}
	}
	return ow.n, err
}

// render runs one render session and writes the result to w.
func (inv *Invoice) render(w io.Writer) error {
	doc := &inv.cfg.Style.Document
	width, height, ok := doc.PageSize()
	if !ok {
		return &config.Error{Problems: []string{"style.document: unknown page size"}}
	}

	surf, err := inv.opt.Backend(w, &surface.Setup{
		Width:         width,
		Height:        height,
		MarginBottom:  doc.MarginBottom,
		UserPassword:  inv.opt.UserPassword,
		OwnerPassword: inv.opt.OwnerPassword,
	})
	if err != nil {
		return err
	}

	session, err := layout.NewSession(inv.cfg, surf, inv.log)
	if err != nil {
		surf.Close()
		return err
	}
	surf.SetInfo(inv.info())

	err = session.Render()
	if err != nil {
		surf.Close()
		return fmt.Errorf("render invoice: %w", err)
	}
	err = surf.Close()
	if err != nil {
		return err
	}

	inv.log.Debug("invoice rendered", zap.Int("pages", session.Page()))
	return nil
}

// info returns the document metadata.  The author is the first value in
// the seller block, which normally is the name of the seller.
func (inv *Invoice) info() *surface.Info {
	data := &inv.cfg.Data.Invoice
	info := &surface.Info{
		Title:    data.Name,
		Subject:  "Invoice",
		Creator:  "seehuhn.de/go/invoice",
		Producer: inv.opt.Producer,
		Created:  inv.opt.Now(),
	}
	for _, line := range data.Seller {
		if len(line.Value) > 0 {
			info.Author = line.Value[0].Text()
			break
		}
	}
	return info
}
