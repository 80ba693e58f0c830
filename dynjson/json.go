// Package dynjson provides JSON, a read-only view over arbitrary decoded JSON data.
//
// Every accessor on JSON is total. Asking for the wrong shape, a missing member or an
// element out of range never fails. It yields an absent option, a default value or a
// null JSON, so lookups can be chained freely:
//
//	doc, err := dynjson.Parse(`{"user": {"tags": ["a", "b"]}}`)
//	if err != nil {
//		return err
//	}
//	first := doc.Get("user").Get("tags").Index(0).String() // "a"
//	missing := doc.Get("nope").Index(3).Number()          // 0
//
// JSON null, a missing member and a value of the wrong shape all behave the same.
package dynjson

import (
	"encoding/json"
	"iter"
	"math"
	"reflect"
	"slices"
	"sort"
	"strconv"

	"github.com/samber/lo"
	"github.com/samber/mo"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// JSON is an immutable JSON value. The zero value is JSON null.
//
// Objects keep the member order of the source text.
type JSON struct {
	kind Kind
	b    bool
	n    json.Number
	s    string
	a    []JSON
	o    *orderedmap.OrderedMap[string, JSON]
}

// New wraps an already decoded value.
//
// Recognized values are nil, bool, Go numeric types, json.Number, string, []any, []JSON,
// map[string]any, map[string]JSON, ordered maps of any or JSON values, and JSON itself.
// Containers are converted recursively. Go maps carry no order, so their members are
// ordered by key. Any other value, including NaN and infinities, wraps as null.
func New(v any) JSON {
	switch v := v.(type) {
	case nil:
		return JSON{}
	case JSON:
		return v
	case *JSON:
		if v == nil {
			return JSON{}
		}
		return *v
	case bool:
		return JSON{kind: Bool, b: v}
	case string:
		return JSON{kind: String, s: v}
	case json.Number:
		if _, err := strconv.ParseFloat(string(v), 64); err != nil && !isRangeError(err) {
			return JSON{}
		}
		return JSON{kind: Number, n: v}
	case float64:
		return newFloat(v)
	case float32:
		return newFloat(float64(v))
	case int, int8, int16, int32, int64:
		return JSON{kind: Number, n: json.Number(strconv.FormatInt(reflect.ValueOf(v).Int(), 10))}
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return JSON{kind: Number, n: json.Number(strconv.FormatUint(reflect.ValueOf(v).Uint(), 10))}
	case []any:
		return JSON{kind: Array, a: lo.Map(v, func(e any, _ int) JSON { return New(e) })}
	case []JSON:
		return JSON{kind: Array, a: slices.Clone(v)}
	case map[string]any:
		return newObjectFromMap(v)
	case map[string]JSON:
		return newObjectFromMap(v)
	case *orderedmap.OrderedMap[string, any]:
		return newObjectFromOrdered(v)
	case *orderedmap.OrderedMap[string, JSON]:
		return newObjectFromOrdered(v)
	}
	return JSON{}
}

func newFloat(f float64) JSON {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return JSON{}
	}
	return JSON{kind: Number, n: json.Number(strconv.FormatFloat(f, 'g', -1, 64))}
}

func newObjectFromMap[V any](m map[string]V) JSON {
	keys := lo.Keys(m)
	sort.Strings(keys)
	o := orderedmap.New[string, JSON](len(keys))
	for _, k := range keys {
		o.Set(k, New(m[k]))
	}
	return JSON{kind: Object, o: o}
}

func newObjectFromOrdered[V any](m *orderedmap.OrderedMap[string, V]) JSON {
	if m == nil {
		return JSON{}
	}
	o := orderedmap.New[string, JSON](m.Len())
	for p := m.Oldest(); p != nil; p = p.Next() {
		o.Set(p.Key, New(p.Value))
	}
	return JSON{kind: Object, o: o}
}

func isRangeError(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}

// Kind returns the shape of the value.
func (j JSON) Kind() Kind {
	return j.kind
}

// IsNull reports whether j is null, which includes missing members and elements.
func (j JSON) IsNull() bool {
	return j.kind == Null
}

// Raw returns the stored value: nil, bool, json.Number, string, []JSON or
// *orderedmap.OrderedMap[string, JSON]. Containers are copies, and New(j.Raw())
// behaves exactly like j.
func (j JSON) Raw() any {
	switch j.kind {
	case Bool:
		return j.b
	case Number:
		return j.n
	case String:
		return j.s
	case Array:
		return slices.Clone(j.a)
	case Object:
		return newObjectFromOrdered(j.o).o
	}
	return nil
}

// OptionalBool returns the value if it is a JSON boolean.
func (j JSON) OptionalBool() mo.Option[bool] {
	return mo.TupleToOption(j.b, j.kind == Bool)
}

// OptionalNumber returns the value if it is a JSON number.
// Strings holding digits are not numbers.
func (j JSON) OptionalNumber() mo.Option[float64] {
	if j.kind != Number {
		return mo.None[float64]()
	}
	f, err := j.n.Float64()
	if err != nil {
		return mo.None[float64]()
	}
	return mo.Some(f)
}

// OptionalInt returns the value if it is a JSON number with an integral value that fits
// in an int64. Both 1 and 1.0 match, 2.5 does not.
func (j JSON) OptionalInt() mo.Option[int64] {
	if j.kind != Number {
		return mo.None[int64]()
	}
	if i, err := j.n.Int64(); err == nil {
		return mo.Some(i)
	}
	f, err := j.n.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return mo.None[int64]()
	}
	return mo.Some(int64(f))
}

// OptionalString returns the value if it is a JSON string.
func (j JSON) OptionalString() mo.Option[string] {
	return mo.TupleToOption(j.s, j.kind == String)
}

// OptionalArray returns the elements if the value is a JSON array.
func (j JSON) OptionalArray() mo.Option[[]JSON] {
	if j.kind != Array {
		return mo.None[[]JSON]()
	}
	a := slices.Clone(j.a)
	if a == nil {
		a = []JSON{}
	}
	return mo.Some(a)
}

// OptionalMapping returns the members if the value is a JSON object.
func (j JSON) OptionalMapping() mo.Option[map[string]JSON] {
	if j.kind != Object {
		return mo.None[map[string]JSON]()
	}
	m := make(map[string]JSON, j.o.Len())
	for p := j.o.Oldest(); p != nil; p = p.Next() {
		m[p.Key] = p.Value
	}
	return mo.Some(m)
}

// Bool returns the boolean value, or false.
func (j JSON) Bool() bool {
	return j.OptionalBool().OrEmpty()
}

// Number returns the numeric value, or 0.
func (j JSON) Number() float64 {
	return j.OptionalNumber().OrEmpty()
}

// Int returns the integral numeric value, or 0.
func (j JSON) Int() int64 {
	return j.OptionalInt().OrEmpty()
}

// String returns the string value, or "".
// It does not format other kinds; use MarshalJSON for that.
func (j JSON) String() string {
	return j.OptionalString().OrEmpty()
}

// Array returns the elements of an array, or an empty slice.
func (j JSON) Array() []JSON {
	return j.OptionalArray().OrElse([]JSON{})
}

// Mapping returns the members of an object, or an empty map.
func (j JSON) Mapping() map[string]JSON {
	return j.OptionalMapping().OrElse(map[string]JSON{})
}

// Index returns the element at position i of an array. It returns null if j is not an
// array or i is out of range.
func (j JSON) Index(i int) JSON {
	if j.kind != Array || i < 0 || i >= len(j.a) {
		return JSON{}
	}
	return j.a[i]
}

// Get returns the member named key of an object. It returns null if j is not an object
// or has no such member.
func (j JSON) Get(key string) JSON {
	if j.kind != Object {
		return JSON{}
	}
	v, _ := j.o.Get(key)
	return v
}

// Field is field-style access to a member; j.Field("name") is j.Get("name").
func (j JSON) Field(name string) JSON {
	return j.Get(name)
}

// Keys returns the member names of an object in source order, or nil.
func (j JSON) Keys() []string {
	if j.kind != Object {
		return nil
	}
	keys := make([]string, 0, j.o.Len())
	for p := j.o.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

// Entries iterates the members of an object in source order.
func (j JSON) Entries() iter.Seq2[string, JSON] {
	return func(yield func(string, JSON) bool) {
		if j.kind != Object {
			return
		}
		for p := j.o.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Len returns the number of elements of an array, or 0.
func (j JSON) Len() int {
	if j.kind != Array {
		return 0
	}
	return len(j.a)
}

// StartIndex is the first valid index of the array view, always 0.
func (j JSON) StartIndex() int {
	return 0
}

// EndIndex is one past the last valid index of the array view. For non-arrays it equals
// StartIndex.
func (j JSON) EndIndex() int {
	return j.Len()
}

// All iterates the elements of an array with their positions.
func (j JSON) All() iter.Seq2[int, JSON] {
	return func(yield func(int, JSON) bool) {
		if j.kind != Array {
			return
		}
		for i, e := range j.a {
			if !yield(i, e) {
				return
			}
		}
	}
}
