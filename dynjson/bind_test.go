package dynjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Bind(t *testing.T) {
	t.Run("Fields", func(t *testing.T) {
		j := MustParse(`{"name": "Henk", "age": 42, "ownerId": "o1", "score": 2.5, "active": true, "bio_text": "hi"}`)
		var q struct {
			Name    string
			Age     int
			OwnerID string
			Score   float32
			Active  bool
			Bio     string `json:"bio_text,omitempty"`
			Ignored string `json:"-"`
		}
		q.Ignored = "keep"
		err := j.Bind(&q)
		if assert.NoError(t, err) {
			assert.Equal(t, "Henk", q.Name)
			assert.Equal(t, 42, q.Age)
			assert.Equal(t, "o1", q.OwnerID)
			assert.Equal(t, float32(2.5), q.Score)
			assert.True(t, q.Active)
			assert.Equal(t, "hi", q.Bio)
			assert.Equal(t, "keep", q.Ignored)
		}
	})
	t.Run("WrongShapesGetZeroValues", func(t *testing.T) {
		j := MustParse(`{"name": 1, "age": "42", "tags": {"a": 1}, "counts": [1], "uint": -1, "small": 300}`)
		var q struct {
			Name   string
			Age    int
			Tags   []string
			Counts map[string]int
			Uint   uint
			Small  int8
		}
		q.Name = "previous"
		err := j.Bind(&q)
		if assert.NoError(t, err) {
			assert.Equal(t, "", q.Name)
			assert.Equal(t, 0, q.Age)
			assert.Nil(t, q.Tags)
			assert.Nil(t, q.Counts)
			assert.Equal(t, uint(0), q.Uint)
			assert.Equal(t, int8(0), q.Small)
		}
	})
	t.Run("Containers", func(t *testing.T) {
		j := MustParse(`{"names": ["n1", "n2"], "matrix": [[1, 2], [3]], "scores": {"a": 1, "b": 2}, "groups": {"x": ["p", "q"]}}`)
		var q struct {
			Names  []string
			Matrix [][]int
			Scores map[string]float64
			Groups map[string][]string
		}
		err := j.Bind(&q)
		if assert.NoError(t, err) {
			assert.Equal(t, []string{"n1", "n2"}, q.Names)
			assert.Equal(t, [][]int{{1, 2}, {3}}, q.Matrix)
			assert.Equal(t, map[string]float64{"a": 1, "b": 2}, q.Scores)
			assert.Equal(t, map[string][]string{"x": {"p", "q"}}, q.Groups)
		}
	})
	t.Run("NestedStructsAndPointers", func(t *testing.T) {
		j := MustParse(`{"person": {"firstName": "Henk", "pets": [{"legs": 4}, {"legs": 2}]}, "animal": null}`)
		type pet struct {
			Legs int
		}
		var q struct {
			Person *struct {
				FirstName string
				Pets      []pet
			}
			Animal *pet
		}
		q.Animal = &pet{Legs: 8}
		err := j.Bind(&q)
		if assert.NoError(t, err) {
			assert.Nil(t, q.Animal)
			if assert.NotNil(t, q.Person) {
				assert.Equal(t, "Henk", q.Person.FirstName)
				assert.Equal(t, []pet{{Legs: 4}, {Legs: 2}}, q.Person.Pets)
			}
		}
	})
	t.Run("Inline", func(t *testing.T) {
		type Base struct {
			ID string
		}
		j := MustParse(`{"id": "x1", "name": "n"}`)
		var q struct {
			Base
			Name string
		}
		err := j.Bind(&q)
		if assert.NoError(t, err) {
			assert.Equal(t, "x1", q.ID)
			assert.Equal(t, "n", q.Name)
		}
	})
	t.Run("RawMembers", func(t *testing.T) {
		j := MustParse(`{"meta": {"k": [1]}, "extra": "e"}`)
		var q struct {
			Meta  JSON
			Extra any
		}
		err := j.Bind(&q)
		if assert.NoError(t, err) {
			assert.Equal(t, 1.0, q.Meta.Get("k").Index(0).Number())
			if assert.IsType(t, JSON{}, q.Extra) {
				assert.Equal(t, "e", q.Extra.(JSON).String())
			}
		}
	})
	t.Run("InvalidDestination", func(t *testing.T) {
		j := MustParse(`{}`)
		var q struct{}
		assert.ErrorContains(t, j.Bind(q), "dst has non-pointer type")
		var nilPtr *struct{}
		assert.ErrorContains(t, j.Bind(nilPtr), "dst is nil")
		var i int
		assert.ErrorContains(t, j.Bind(&i), "dst is not a pointer-to-struct type")
	})
}
