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
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Value is a scalar which holds either a string or a number.
// The zero Value is unset.
type Value struct {
	str   string
	num   float64
	isNum bool
	set   bool
}

// String returns a Value holding the string s.
func String(s string) Value {
	return Value{str: s, set: true}
}

// Number returns a Value holding the number x.
func Number(x float64) Value {
	return Value{num: x, isNum: true, set: true}
}

// IsSet reports whether v holds a value.
func (v Value) IsSet() bool {
	return v.set
}

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool {
	return v.isNum
}

// Float returns the numeric value of v.  String values are parsed, and the
// second return value is false if v cannot be interpreted as a number.
func (v Value) Float() (float64, bool) {
	if v.isNum {
		return v.num, true
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
	if err != nil {
		return 0, false
	}
	return x, true
}

// Text returns the value formatted for display.  Numbers use the shortest
// representation which round-trips, an unset Value gives the empty string.
func (v Value) Text() string {
	if v.isNum {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.str
}

func (v Value) String() string {
	return v.Text()
}

// Equal reports whether v and other hold the same value.
func (v Value) Equal(other Value) bool {
	return v == other
}

// MarshalJSON implements the json.Marshaler interface.
func (v Value) MarshalJSON() ([]byte, error) {
	switch {
	case !v.set:
		return []byte("null"), nil
	case v.isNum:
		return json.Marshal(v.num)
	default:
		return json.Marshal(v.str)
	}
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The JSON value must be a string, a number or null.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = Value{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = String(s)
		return nil
	}
	var x float64
	if err := json.Unmarshal(data, &x); err != nil {
		return fmt.Errorf("value must be a string or a number: %s", data)
	}
	*v = Number(x)
	return nil
}

// Values is a list of scalars.  In JSON, a single scalar is accepted in
// place of a list with one element.
type Values []Value

// UnmarshalJSON implements the json.Unmarshaler interface.
func (vv *Values) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*vv = nil
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var list []Value
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*vv = list
		return nil
	}
	var v Value
	if err := v.UnmarshalJSON(data); err != nil {
		return err
	}
	*vv = Values{v}
	return nil
}
