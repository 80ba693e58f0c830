package dynjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/noodlekit/noodle/stack"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Parse parses text as a single JSON value. It returns a *ParseError if text is not
// valid JSON or holds anything but whitespace after the value.
func Parse(text string) (JSON, error) {
	return ParseBytes([]byte(text))
}

// ParseBytes is like Parse but takes a byte slice.
func ParseBytes(b []byte) (JSON, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	v, err := decode(dec)
	if err != nil {
		return JSON{}, newParseError(dec.InputOffset(), err)
	}
	_, err = dec.Token()
	if err == io.EOF {
		return v, nil
	}
	if err == nil {
		err = fmt.Errorf(`JSON data contains extraneous token`)
	}
	return JSON{}, newParseError(dec.InputOffset(), err)
}

// MustParse is like Parse but panics if text cannot be parsed.
func MustParse(text string) JSON {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

// frame is an array or object that is still being decoded.
type frame struct {
	// inObject is true if the container is an object, false if it is an array.
	inObject bool
	// hasKey is true once the name of the next object member has been read.
	hasKey bool
	key    string
	array  []JSON
	object *orderedmap.OrderedMap[string, JSON]
}

func (f *frame) add(v JSON) {
	if f.inObject {
		f.object.Set(f.key, v)
		f.hasKey = false
		return
	}
	f.array = append(f.array, v)
}

func (f *frame) value() JSON {
	if f.inObject {
		return JSON{kind: Object, o: f.object}
	}
	if f.array == nil {
		return JSON{kind: Array, a: []JSON{}}
	}
	return JSON{kind: Array, a: f.array}
}

// decode walks the tokens of one JSON value and builds it bottom up. Containers that are
// still open are kept on a stack; a finished value is added to the container below it.
func decode(dec *json.Decoder) (JSON, error) {
	var state stack.Stack[*frame]
	for {
		token, err := dec.Token()
		if err != nil {
			return JSON{}, eofToUnexpected(err)
		}
		if f, ok := state.Peek().Get(); ok && f.inObject && !f.hasKey && token != json.Delim('}') {
			// Token is the name of the next member.
			key, ok := token.(string)
			if !ok {
				return JSON{}, fmt.Errorf(`JSON object member name must be a string, got %v`, token)
			}
			f.key = key
			f.hasKey = true
			continue
		}
		var v JSON
		switch token := token.(type) {
		case json.Delim:
			switch token {
			case '{':
				state.Push(&frame{
					inObject: true,
					object:   orderedmap.New[string, JSON](),
				})
				continue
			case '[':
				state.Push(&frame{})
				continue
			default:
				f, ok := state.Pop().Get()
				if !ok {
					return JSON{}, fmt.Errorf(`unexpected delimiter %v`, token)
				}
				v = f.value()
			}
		case bool:
			v = JSON{kind: Bool, b: token}
		case json.Number:
			v = JSON{kind: Number, n: token}
		case string:
			v = JSON{kind: String, s: token}
		case nil:
			v = JSON{}
		default:
			return JSON{}, fmt.Errorf(`unexpected token %v of type %T`, token, token)
		}
		parent, ok := state.Peek().Get()
		if !ok {
			return v, nil
		}
		parent.add(v)
	}
}
