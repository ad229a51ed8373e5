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

// Invoice-pdf renders an invoice described by JSON configuration files.
//
// Usage:
//
//	invoice-pdf [options] [config.json ...]
//
// The configuration files are applied in order on top of the built-in
// defaults, so that a shared style file can be combined with a file
// holding the data of one invoice.  Without arguments, the built-in
// sample invoice is rendered.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"seehuhn.de/go/invoice"
	"seehuhn.de/go/invoice/config"
	"seehuhn.de/go/invoice/internal/buildinfo"
	"seehuhn.de/go/invoice/internal/profile"
	"seehuhn.de/go/invoice/surface"
	"seehuhn.de/go/invoice/surface/fpdfdoc"
	"seehuhn.de/go/invoice/surface/pdfdoc"
)

const toolName = "invoice-pdf"

var (
	outFile    = flag.String("o", "invoice.pdf", "output file name, use \"-\" for standard output")
	backend    = flag.String("backend", "pdf", "PDF backend to use (pdf or fpdf)")
	verbose    = flag.Bool("v", false, "log progress information")
	version    = flag.Bool("version", false, "print version information and exit")
	encrypt    = flag.Bool("encrypt", false, "ask for passwords and encrypt the output")
	cpuprofile = flag.String("cpuprofile", "", "write CPU profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] [config.json ...]\n", toolName)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Short(toolName))
		return
	}

	err := run(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", toolName, err)
		var cfgErr *config.Error
		if errors.As(err, &cfgErr) {
			for _, p := range cfgErr.Problems {
				fmt.Fprintln(os.Stderr, "  "+p)
			}
		}
		os.Exit(1)
	}
}

func run(files []string) error {
	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()
	}

	stop, err := profile.Start(*cpuprofile, *memprofile, logger)
	if err != nil {
		return err
	}
	defer stop()

	var factory surface.Factory
	switch *backend {
	case "pdf":
		factory = pdfdoc.New
	case "fpdf":
		factory = fpdfdoc.New
	default:
		return fmt.Errorf("unknown backend %q", *backend)
	}

	if *outFile == "-" && term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("refusing to write PDF data to a terminal")
	}

	cfg, err := config.Load(files...)
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded", zap.Strings("files", files))

	opt := &invoice.Options{
		Backend: factory,
		Logger:  logger,
	}
	if *encrypt {
		opt.UserPassword, err = readPassword("user password (may be empty): ")
		if err != nil {
			return err
		}
		opt.OwnerPassword, err = readPassword("owner password: ")
		if err != nil {
			return err
		}
	}

	inv, err := invoice.New(cfg, opt)
	if err != nil {
		return err
	}

	if *outFile == "-" {
		_, err = inv.WriteTo(os.Stdout)
		return err
	}
	_, err = inv.Generate(invoice.ToFile(*outFile))
	return err
}

// readPassword reads a password from the terminal without echoing it.
func readPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("passwords can only be read from a terminal")
	}
	fmt.Fprint(os.Stderr, prompt)
	passwd, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(passwd), nil
}
