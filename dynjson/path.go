package dynjson

import (
	"fmt"
	"strconv"
	"strings"
)

// Step is one element of a lookup path: either an object member or an array index.
type Step struct {
	Key     string
	Index   int
	IsIndex bool
}

func (s Step) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return "['" + s.Key + "']"
}

// ParsePath parses a lookup path such as
//
//	user.tags[0]
//	$.user['first name'][2]
//
// A leading "$" stands for the root and is optional. Bracketed names may be quoted with
// single or double quotes and contain any character but the closing quote.
func ParsePath(path string) ([]Step, error) {
	var steps []Step
	i := 0
	n := len(path)
	if strings.HasPrefix(path, "$") {
		i++
	}
	for i < n {
		switch c := path[i]; {
		case c == '.':
			i++
			start := i
			for i < n && path[i] != '.' && path[i] != '[' {
				i++
			}
			if start == i {
				return nil, fmt.Errorf(`empty member name at offset %d`, start)
			}
			steps = append(steps, Step{Key: path[start:i]})

		case c == '[':
			i++
			if i < n && (path[i] == '\'' || path[i] == '"') {
				quote := path[i]
				i++
				end := strings.IndexByte(path[i:], quote)
				if end < 0 {
					return nil, fmt.Errorf(`unterminated string at offset %d`, i-1)
				}
				key := path[i : i+end]
				i += end + 1
				if i >= n || path[i] != ']' {
					return nil, fmt.Errorf(`expected ']' at offset %d`, i)
				}
				i++
				steps = append(steps, Step{Key: key})
				continue
			}
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf(`mismatched brackets at offset %d`, i-1)
			}
			index, err := strconv.Atoi(strings.TrimSpace(path[i : i+end]))
			if err != nil {
				return nil, fmt.Errorf(`invalid index %q: %w`, path[i:i+end], err)
			}
			i += end + 1
			steps = append(steps, Step{Index: index, IsIndex: true})

		default:
			if len(steps) > 0 || (i > 0 && path[0] == '$') {
				return nil, fmt.Errorf(`unexpected character %q at offset %d`, c, i)
			}
			start := i
			for i < n && path[i] != '.' && path[i] != '[' {
				i++
			}
			steps = append(steps, Step{Key: path[start:i]})
		}
	}
	return steps, nil
}

// Lookup follows path from j using Get and Index. It returns null if any step is missing
// or path cannot be parsed. An empty path returns j.
func (j JSON) Lookup(path string) JSON {
	steps, err := ParsePath(path)
	if err != nil {
		return JSON{}
	}
	return j.Walk(steps...)
}

// Walk follows steps from j.
func (j JSON) Walk(steps ...Step) JSON {
	cur := j
	for _, s := range steps {
		if s.IsIndex {
			cur = cur.Index(s.Index)
		} else {
			cur = cur.Get(s.Key)
		}
	}
	return cur
}
