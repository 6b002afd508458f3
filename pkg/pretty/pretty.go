// Copyright 2021-2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pretty renders the fields of fixed-layout structures in a human
// readable form.
package pretty

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/camelcase"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Field is a single rendered field of a structure.
type Field struct {
	Name  string
	Value string
}

// FieldName converts a Go field name into words: "DPABase" -> "DPA Base".
func FieldName(name string) string {
	return strings.Join(camelcase.Split(name), " ")
}

// Fields returns the exported fields of the structure `obj` points to (or
// is) in declaration order. Nested structures are flattened with their field
// name as a prefix. Fields named "Reserved*" are skipped unless they are
// nonzero.
func Fields(obj interface{}) []Field {
	v := reflect.Indirect(reflect.ValueOf(obj))
	if v.Kind() != reflect.Struct {
		return []Field{{Name: fmt.Sprintf("%T", obj), Value: Value(obj)}}
	}
	return fields("", v)
}

func fields(prefix string, v reflect.Value) []Field {
	var result []Field
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		fv := v.Field(i)
		name := prefix + FieldName(f.Name)
		if strings.HasPrefix(f.Name, "Reserved") && fv.IsZero() {
			continue
		}
		if fv.Kind() == reflect.Struct {
			result = append(result, fields(name+" / ", fv)...)
			continue
		}
		result = append(result, Field{Name: name, Value: Value(fv.Interface())})
	}
	return result
}

// Value describes a single value: unsigned integers are printed in hex,
// followed by the decimal value and, for big numbers, by the humanized size
// (with the decimal digits grouped).
func Value(value interface{}) string {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return "is not set (nil)"
	}

	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}

	v = reflect.Indirect(v)
	switch v.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i := v.Uint()
		hexFmt := fmt.Sprintf("0x%%0%dX", v.Type().Size()*2)
		switch {
		case i < 10:
			return fmt.Sprintf(hexFmt, i)
		case i < 65536:
			return fmt.Sprintf(hexFmt+" (%d)", i, i)
		default:
			return printer.Sprintf(hexFmt+" (%d: %s)", i, i, humanize.IBytes(i))
		}

	case reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return fmt.Sprintf("0x%X", v.Interface())
		}
		return fmt.Sprintf("%v", v.Interface())

	case reflect.Slice:
		if v.Len() == 0 {
			return "empty (len: 0)"
		}
		return fmt.Sprintf("len: %d", v.Len())
	}

	return fmt.Sprintf("%#+v (%T)", value, value)
}

// String renders all the fields of `obj`, one per line, aligned by name.
func String(obj interface{}) string {
	fields := Fields(obj)
	width := 0
	for _, f := range fields {
		if len(f.Name) > width {
			width = len(f.Name)
		}
	}
	var s strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&s, "%-*s : %s\n", width, f.Name, f.Value)
	}
	return s.String()
}
