// Package codec packs typed values into the pipe-delimited record strings
// kept in the backing store, and unpacks them again.
package codec

import (
	"fmt"
	"reflect"
)

// Kind is the type tag carried by a record.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindArray
	KindObject
)

// Type tags as written on the wire.
const (
	TagString = "string"
	TagNumber = "number"
	TagArray  = "array"
	TagObject = "object"
	TagNull   = "null"
)

// Tag returns the wire tag for k.
func (k Kind) Tag() string {
	switch k {
	case KindString:
		return TagString
	case KindNumber:
		return TagNumber
	case KindArray:
		return TagArray
	case KindObject:
		return TagObject
	default:
		return TagNull
	}
}

func (k Kind) String() string { return k.Tag() }

// Value is one of the five storable shapes. The zero Value is null.
type Value struct {
	kind   Kind
	text   string
	number float64
	list   []any
	object map[string]any
}

func Null() Value { return Value{} }

func Text(s string) Value { return Value{kind: KindString, text: s} }

func Number(f float64) Value { return Value{kind: KindNumber, number: f} }

// Numbers builds an array of numbers.
func Numbers(ns ...float64) Value {
	list := make([]any, len(ns))
	for i, n := range ns {
		list[i] = n
	}
	return Value{kind: KindArray, list: list}
}

// Texts builds an array of strings.
func Texts(ss ...string) Value {
	list := make([]any, len(ss))
	for i, s := range ss {
		list[i] = s
	}
	return Value{kind: KindArray, list: list}
}

// List builds an array from elements that are already string or float64.
// Any other element is coerced through fmt when the record is encoded.
func List(elems ...any) Value {
	return Value{kind: KindArray, list: append([]any(nil), elems...)}
}

// Object builds a plain mapping value. A nil map is still an object and
// encodes as JSON null.
func Object(m map[string]any) Value {
	return Value{kind: KindObject, object: m}
}

// FromAny classifies v by shape: string, then any numeric type, then
// slices and arrays, then maps keyed by string. Everything else, nil
// included, becomes Null.
func FromAny(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case string:
		return Text(t)
	case []string:
		return Texts(t...)
	case []float64:
		return Numbers(t...)
	case map[string]any:
		return Object(t)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return Text(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float())
	case reflect.Slice, reflect.Array:
		list := make([]any, rv.Len())
		for i := range list {
			list[i] = listElem(rv.Index(i).Interface())
		}
		return Value{kind: KindArray, list: list}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Null()
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return Object(m)
	}
	return Null()
}

func listElem(v any) any {
	switch e := FromAny(v); e.kind {
	case KindString:
		return e.text
	case KindNumber:
		return e.number
	}
	return v
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// Text returns the string payload and whether v is a string.
func (v Value) Text() (string, bool) { return v.text, v.kind == KindString }

// Number returns the numeric payload and whether v is a number.
func (v Value) Number() (float64, bool) { return v.number, v.kind == KindNumber }

// List returns the array elements, each a string or a float64.
func (v Value) List() ([]any, bool) { return v.list, v.kind == KindArray }

// Strings returns the array as strings when every element is a string.
func (v Value) Strings() ([]string, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	out := make([]string, len(v.list))
	for i, e := range v.list {
		s, ok := e.(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

// Floats returns the array as numbers when every element is a number.
func (v Value) Floats() ([]float64, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	out := make([]float64, len(v.list))
	for i, e := range v.list {
		f, ok := e.(float64)
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

// Object returns the mapping and whether v is an object.
func (v Value) Object() (map[string]any, bool) { return v.object, v.kind == KindObject }

// Any unwraps v into plain Go values: string, float64, []any,
// map[string]any or nil.
func (v Value) Any() any {
	switch v.kind {
	case KindString:
		return v.text
	case KindNumber:
		return v.number
	case KindArray:
		return v.list
	case KindObject:
		return v.object
	}
	return nil
}

// MarshalJSON encodes v as its plain Go form, so Values nested inside an
// object payload keep their data.
func (v Value) MarshalJSON() ([]byte, error) {
	return marshalJSON(v.Any())
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.text
	case KindNumber:
		return FormatNumber(v.number)
	case KindNull:
		return "null"
	}
	return fmt.Sprint(v.Any())
}
