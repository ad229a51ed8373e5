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
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"seehuhn.de/go/invoice/config"
)

func TestFormatPrice(t *testing.T) {
	testCases := []struct {
		v      config.Value
		code   string
		digits int
		want   string
	}{
		{config.Number(53), "EUR", 2, "53.00 EUR"},
		{config.Number(53), "", 2, "53.00"},
		{config.Number(1234.5), "USD", 2, "1234.50 USD"},
		{config.Number(1500), "JPY", 0, "1500 JPY"},
		{config.String("10"), "EUR", 2, "10 EUR"},
		{config.String("on request"), "", 2, "on request"},
	}
	for _, tc := range testCases {
		if got := FormatPrice(tc.v, tc.code, tc.digits); got != tc.want {
			t.Errorf("FormatPrice(%v, %q, %d) = %q, want %q",
				tc.v, tc.code, tc.digits, got, tc.want)
		}
	}
}

func TestCurrencyDigits(t *testing.T) {
	testCases := []struct {
		code   string
		digits int
		known  bool
	}{
		{"EUR", 2, true},
		{"USD", 2, true},
		{"JPY", 0, true},
		{"EURO", 2, false},
		{"", 2, false},
	}
	for _, tc := range testCases {
		digits, known := CurrencyDigits(tc.code)
		if digits != tc.digits || known != tc.known {
			t.Errorf("CurrencyDigits(%q) = %d, %t, want %d, %t",
				tc.code, digits, known, tc.digits, tc.known)
		}
	}
}

func TestSessionPrices(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	cfg := config.Default()
	cfg.Data.Invoice.Currency = "EURO"
	s, _ := newTestSession(t, cfg, zap.New(core))

	if got := s.formatPrice(config.Number(53), nil); got != "53.00 EURO" {
		t.Errorf("got %q", got)
	}
	three := 3
	if got := s.formatPrice(config.Number(53), &three); got != "53.000 EURO" {
		t.Errorf("got %q", got)
	}
	if n := logs.FilterMessage("unknown currency").Len(); n != 1 {
		t.Errorf("unknown currency logged %d times", n)
	}

	cfg = config.Default()
	cfg.Data.Invoice.Currency = "JPY"
	s, _ = newTestSession(t, cfg, nil)
	if got := s.formatPrice(config.Number(1500), nil); got != "1500 JPY" {
		t.Errorf("got %q", got)
	}
}
