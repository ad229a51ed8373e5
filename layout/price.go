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
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/currency"

	"seehuhn.de/go/invoice/config"
)

// FormatPrice formats an amount of money.
//
// Numbers are written with the given number of fraction digits, strings
// are used unchanged.  If code is not empty, it is appended after a space,
// for example "53.00 EUR".
func FormatPrice(v config.Value, code string, digits int) string {
	var res string
	if v.IsNumber() {
		x, _ := v.Float()
		res = strconv.FormatFloat(x, 'f', digits, 64)
	} else {
		res = v.Text()
	}
	if code != "" {
		res += " " + code
	}
	return res
}

// CurrencyDigits returns the standard number of fraction digits for the
// currency with the given ISO 4217 code.  The second return value is false
// if the code is not known, in which case 2 is returned.
func CurrencyDigits(code string) (int, bool) {
	unit, err := currency.ParseISO(strings.TrimSpace(code))
	if err != nil {
		return 2, false
	}
	scale, _ := currency.Standard.Rounding(unit)
	return scale, true
}

// formatPrice formats v using the currency of the invoice.  If digits is
// nil, the standard number of fraction digits of the currency is used.
func (s *Session) formatPrice(v config.Value, digits *int) string {
	code := s.cfg.Data.Invoice.Currency
	n := 2
	if code != "" {
		var known bool
		n, known = CurrencyDigits(code)
		if !known {
			s.warnOnce("currency:"+code, "unknown currency", zap.String("currency", code))
		}
	}
	if digits != nil {
		n = *digits
	}
	return FormatPrice(v, code, n)
}
