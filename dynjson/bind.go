package dynjson

import (
	"fmt"
	"reflect"

	"github.com/noodlekit/noodle/mapping"
	"github.com/noodlekit/noodle/stack"
)

var jsonType = reflect.TypeOf(JSON{})

// bindTask either binds src into dst, or, when finish is set, runs finish. Finish tasks
// are pushed below the tasks that fill a map element, so they run once it is complete.
type bindTask struct {
	dst    reflect.Value
	src    JSON
	finish func()
}

// Bind copies j into the struct that dst points to.
//
// Struct fields are matched to object members by name as defined by the mapping package.
// Binding is lenient in the same way as the accessors: a missing member or a value of the
// wrong shape sets the field to its zero value. Fields of type JSON (or any) receive the
// member as is. Bind returns an error only if dst is not a non-nil pointer to a struct.
func (j JSON) Bind(dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer {
		return fmt.Errorf(`dst has non-pointer type %T`, dst)
	}
	if rv.IsNil() {
		return fmt.Errorf(`dst is nil`)
	}
	if rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf(`dst is not a pointer-to-struct type`)
	}
	work := stack.New(bindTask{dst: rv.Elem(), src: j})
	for !work.IsEmpty() {
		t := work.Pop().MustGet()
		if t.finish != nil {
			t.finish()
			continue
		}
		bindValue(work, t.dst, t.src)
	}
	return nil
}

func bindValue(work *stack.Stack[bindTask], dst reflect.Value, src JSON) {
	t := dst.Type()
	if t == jsonType {
		dst.Set(reflect.ValueOf(src))
		return
	}
	switch dst.Kind() {
	case reflect.Pointer:
		if src.IsNull() {
			dst.Set(reflect.Zero(t))
			return
		}
		if dst.IsNil() {
			dst.Set(reflect.New(t.Elem()))
		}
		work.Push(bindTask{dst: dst.Elem(), src: src})
	case reflect.Interface:
		if jsonType.Implements(t) {
			dst.Set(reflect.ValueOf(src))
		}
	case reflect.Bool:
		dst.SetBool(src.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := src.Int()
		if dst.OverflowInt(i) {
			i = 0
		}
		dst.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		i := src.Int()
		if i < 0 || dst.OverflowUint(uint64(i)) {
			i = 0
		}
		dst.SetUint(uint64(i))
	case reflect.Float32, reflect.Float64:
		dst.SetFloat(src.Number())
	case reflect.String:
		dst.SetString(src.String())
	case reflect.Slice:
		if src.Kind() != Array {
			dst.Set(reflect.Zero(t))
			return
		}
		elems := src.Array()
		s := reflect.MakeSlice(t, len(elems), len(elems))
		dst.Set(s)
		for i := len(elems) - 1; i >= 0; i-- {
			work.Push(bindTask{dst: s.Index(i), src: elems[i]})
		}
	case reflect.Map:
		if src.Kind() != Object || t.Key().Kind() != reflect.String {
			dst.Set(reflect.Zero(t))
			return
		}
		keys := src.Keys()
		m := reflect.MakeMapWithSize(t, len(keys))
		dst.Set(m)
		for _, k := range keys {
			elem := reflect.New(t.Elem()).Elem()
			key := reflect.ValueOf(k).Convert(t.Key())
			work.Push(bindTask{finish: func() {
				m.SetMapIndex(key, elem)
			}})
			work.Push(bindTask{dst: elem, src: src.Get(k)})
		}
	case reflect.Struct:
		pushFields(work, dst, src)
	}
}

// pushFields schedules the fields of the struct dst. Fields are pushed last to first so
// they are bound in declaration order.
func pushFields(work *stack.Stack[bindTask], dst reflect.Value, src JSON) {
	t := dst.Type()
	for i := t.NumField() - 1; i >= 0; i-- {
		structField := t.Field(i)
		if !structField.IsExported() && !structField.Anonymous {
			continue
		}
		fieldInfo := mapping.NewFieldInfo(structField)
		if fieldInfo.Skip() {
			continue
		}
		fv := dst.Field(i)
		if fieldInfo.Inline() {
			if fv.Kind() == reflect.Pointer {
				if fv.IsNil() {
					if !fv.CanSet() {
						continue
					}
					fv.Set(reflect.New(fv.Type().Elem()))
				}
				fv = fv.Elem()
			}
			work.Push(bindTask{dst: fv, src: src})
			continue
		}
		if !structField.IsExported() {
			continue
		}
		work.Push(bindTask{dst: fv, src: src.Get(fieldInfo.Name())})
	}
}
