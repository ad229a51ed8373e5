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
	"io"
	"os"
	"reflect"
	"strings"
)

// Decode reads a JSON configuration from r and stores it in cfg.
//
// Values present in the input replace the corresponding values in cfg,
// everything else is left unchanged.  In contrast to Merge, explicit zero
// values in the input are kept.  As with Merge, arrays in the input
// replace the corresponding arrays in cfg as a whole.  Unknown option names
// are an error.
func Decode(r io.Reader, cfg *Config) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	clearArrays(reflect.ValueOf(cfg).Elem(), data)

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected data after the configuration")
	}
	return nil
}

// Load reads JSON configuration files on top of the defaults and validates
// the result.  Later files take precedence over earlier ones.
func Load(paths ...string) (*Config, error) {
	cfg := Default()
	for _, path := range paths {
		err := decodeFile(path, cfg)
		if err != nil {
			return nil, err
		}
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	fd, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fd.Close()

	err = Decode(fd, cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// clearArrays sets every slice in v to nil for which data contains a value,
// so that decoding data does not update the old array elements in place.
func clearArrays(v reflect.Value, data []byte) {
	switch v.Kind() {
	case reflect.Pointer:
		if !v.IsNil() {
			clearArrays(v.Elem(), data)
		}
	case reflect.Struct:
		if v.Addr().Type().Implements(unmarshalerType) {
			return
		}
		var fields map[string]json.RawMessage
		if json.Unmarshal(data, &fields) != nil {
			// syntax errors are reported by the real decoding pass
			return
		}
		t := v.Type()
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			raw, ok := lookupField(fields, jsonName(f))
			if !ok {
				continue
			}
			fv := v.Field(i)
			if fv.Kind() == reflect.Slice {
				fv.SetZero()
				continue
			}
			clearArrays(fv, raw)
		}
	}
}

var unmarshalerType = reflect.TypeFor[json.Unmarshaler]()

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" {
		return f.Name
	}
	return name
}

// lookupField finds a key the way encoding/json does: an exact match is
// preferred, otherwise the match is case-insensitive.
func lookupField(fields map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	if raw, ok := fields[name]; ok {
		return raw, true
	}
	for key, raw := range fields {
		if strings.EqualFold(key, name) {
			return raw, true
		}
	}
	return nil, false
}
