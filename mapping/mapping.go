// Package mapping defines how fields of Go structs map to JSON object members.
package mapping

import (
	"reflect"
	"strings"

	"github.com/shurcooL/graphql/ident"
)

// TagName is the struct tag consulted first. The json tag is used when it is absent.
const TagName = "dynjson"

// FieldInfo defines how a field of a Go struct maps to a JSON object member.
type FieldInfo struct {
	inline bool
	skip   bool
	name   string
}

// NewFieldInfo maps a field of a Go struct to a JSON member name.
//
// The name is taken from the dynjson tag, then the json tag (options after a comma are
// ignored), and otherwise derived from the Go name in lowerCamelCase: OwnerID maps to
// ownerId. A tag of "-" skips the field. Embedded structs without a tag name are inlined.
func NewFieldInfo(f reflect.StructField) FieldInfo {
	var fieldInfo FieldInfo
	tag, hasTag := f.Tag.Lookup(TagName)
	if !hasTag {
		tag, hasTag = f.Tag.Lookup("json")
	}
	if tag == "-" {
		fieldInfo.skip = true
		return fieldInfo
	}
	name, _, _ := strings.Cut(tag, ",")
	name = strings.TrimSpace(name)
	if f.Anonymous && name == "" && isStruct(f.Type) {
		fieldInfo.inline = true
		return fieldInfo
	}
	if hasTag && name != "" {
		fieldInfo.name = name
	} else {
		fieldInfo.name = ident.ParseMixedCaps(f.Name).ToLowerCamelCase()
	}
	return fieldInfo
}

// Name is the JSON member the field binds to. It is empty for inlined and skipped fields.
func (f FieldInfo) Name() string {
	return f.name
}

// Inline returns true if the field is an embedded struct whose own fields should be
// bound as if they were fields of the outer struct.
func (f FieldInfo) Inline() bool {
	return f.inline
}

// Skip returns true if the field is excluded with a "-" tag.
func (f FieldInfo) Skip() bool {
	return f.skip
}

func isStruct(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}
