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

import "reflect"

// Merge returns a deep copy of defaults, with every field which is set in
// overrides replaced by the value from overrides.
//
// A field is set if it is not the zero value of its type.  Structs are merged
// field by field, maps are merged key by key, and pointers to structs are
// merged recursively.  Slices are atomic: a non-nil slice in overrides
// replaces the slice in defaults completely.  Struct types which have
// unexported fields (for example Value) are treated as scalars.
//
// Neither argument is modified, and the result shares no memory with
// either of them.
func Merge[T any](defaults, overrides T) T {
	d := reflect.ValueOf(&defaults).Elem()
	o := reflect.ValueOf(&overrides).Elem()

	var res T
	reflect.ValueOf(&res).Elem().Set(merge(d, o))
	return res
}

// Clone returns a deep copy of cfg.
func Clone(cfg *Config) *Config {
	if cfg == nil {
		return nil
	}
	res := reflect.New(reflect.TypeFor[Config]())
	res.Elem().Set(deepCopy(reflect.ValueOf(cfg).Elem()))
	return res.Interface().(*Config)
}

func merge(d, o reflect.Value) reflect.Value {
	switch d.Kind() {
	case reflect.Struct:
		if isScalarStruct(d.Type()) {
			break
		}
		out := reflect.New(d.Type()).Elem()
		for i := range d.NumField() {
			out.Field(i).Set(merge(d.Field(i), o.Field(i)))
		}
		return out

	case reflect.Pointer:
		if o.IsNil() {
			return deepCopy(d)
		}
		if d.IsNil() || d.Type().Elem().Kind() != reflect.Struct || isScalarStruct(d.Type().Elem()) {
			return deepCopy(o)
		}
		out := reflect.New(d.Type().Elem())
		out.Elem().Set(merge(d.Elem(), o.Elem()))
		return out

	case reflect.Map:
		if o.IsNil() {
			return deepCopy(d)
		}
		if d.IsNil() {
			return deepCopy(o)
		}
		out := reflect.MakeMapWithSize(d.Type(), d.Len())
		iter := d.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), deepCopy(iter.Value()))
		}
		iter = o.MapRange()
		for iter.Next() {
			k := iter.Key()
			if dv := d.MapIndex(k); dv.IsValid() {
				out.SetMapIndex(k, merge(dv, iter.Value()))
			} else {
				out.SetMapIndex(k, deepCopy(iter.Value()))
			}
		}
		return out
	}

	if o.IsZero() {
		return deepCopy(d)
	}
	return deepCopy(o)
}

func deepCopy(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		out := reflect.New(v.Type().Elem())
		out.Elem().Set(deepCopy(v.Elem()))
		return out

	case reflect.Slice:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := range v.Len() {
			out.Index(i).Set(deepCopy(v.Index(i)))
		}
		return out

	case reflect.Map:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), deepCopy(iter.Value()))
		}
		return out

	case reflect.Interface:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(deepCopy(v.Elem()))
		return out

	case reflect.Struct:
		if isScalarStruct(v.Type()) {
			return v
		}
		out := reflect.New(v.Type()).Elem()
		for i := range v.NumField() {
			out.Field(i).Set(deepCopy(v.Field(i)))
		}
		return out
	}
	return v
}

// isScalarStruct reports whether values of the struct type t must be
// copied as a whole.
func isScalarStruct(t reflect.Type) bool {
	for i := range t.NumField() {
		if !t.Field(i).IsExported() {
			return true
		}
	}
	return false
}
