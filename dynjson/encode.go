package dynjson

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON implements the Marshaler interface. Object members are written in source order.
func (j JSON) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	if err := j.encode(&b); err != nil {
		return nil, fmt.Errorf(`error in (dynjson.JSON).MarshalJSON: %w`, err)
	}
	return b.Bytes(), nil
}

func (j JSON) encode(b *bytes.Buffer) error {
	switch j.kind {
	case Bool:
		if j.b {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case Number:
		b.WriteString(j.n.String())
	case String:
		return writeJSON(b, j.s)
	case Array:
		b.WriteByte('[')
		for i, e := range j.a {
			if i > 0 {
				b.WriteByte(',')
			}
			if err := e.encode(b); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case Object:
		b.WriteByte('{')
		first := true
		for k, v := range j.Entries() {
			if !first {
				b.WriteByte(',')
			}
			first = false
			if err := writeJSON(b, k); err != nil {
				return err
			}
			b.WriteByte(':')
			if err := v.encode(b); err != nil {
				return err
			}
		}
		b.WriteByte('}')
	default:
		b.WriteString("null")
	}
	return nil
}

func writeJSON(b *bytes.Buffer, v any) error {
	enc, err := json.Marshal(v)
	if err != nil {
		return err
	}
	b.Write(enc)
	return nil
}

// UnmarshalJSON implements the Unmarshaler interface, so JSON can be used as a struct
// field with encoding/json.
func (j *JSON) UnmarshalJSON(b []byte) error {
	v, err := ParseBytes(b)
	if err != nil {
		return fmt.Errorf(`error in (*dynjson.JSON).UnmarshalJSON: %w`, err)
	}
	*j = v
	return nil
}
