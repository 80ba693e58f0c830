package mapping

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewFieldInfo(t *testing.T) {
	t.Run("Case1", func(t *testing.T) {
		rt := reflect.TypeOf(struct {
			ID string
		}{})
		id, _ := rt.FieldByName("ID")
		actual := NewFieldInfo(id)
		assert.Equal(t, "id", actual.Name())
	})
	t.Run("Case2", func(t *testing.T) {
		rt := reflect.TypeOf(struct {
			OwnerID string
		}{})
		ownerID, _ := rt.FieldByName("OwnerID")
		actual := NewFieldInfo(ownerID)
		assert.Equal(t, "ownerId", actual.Name())
	})
	t.Run("DynjsonTag", func(t *testing.T) {
		rt := reflect.TypeOf(struct {
			Bio string `dynjson:"biography" json:"bio"`
		}{})
		bio, _ := rt.FieldByName("Bio")
		actual := NewFieldInfo(bio)
		assert.Equal(t, "biography", actual.Name())
	})
	t.Run("JSONTagWithOptions", func(t *testing.T) {
		rt := reflect.TypeOf(struct {
			Bio string `json:"bio_text,omitempty"`
		}{})
		bio, _ := rt.FieldByName("Bio")
		actual := NewFieldInfo(bio)
		assert.Equal(t, "bio_text", actual.Name())
	})
	t.Run("TagWithOnlyOptions", func(t *testing.T) {
		rt := reflect.TypeOf(struct {
			FirstName string `json:",omitempty"`
		}{})
		f, _ := rt.FieldByName("FirstName")
		actual := NewFieldInfo(f)
		assert.Equal(t, "firstName", actual.Name())
	})
	t.Run("Skip", func(t *testing.T) {
		rt := reflect.TypeOf(struct {
			Secret string `json:"-"`
		}{})
		f, _ := rt.FieldByName("Secret")
		actual := NewFieldInfo(f)
		assert.True(t, actual.Skip())
		assert.Equal(t, "", actual.Name())
	})
	t.Run("Inline", func(t *testing.T) {
		type Base struct {
			Kind string
		}
		rt := reflect.TypeOf(struct {
			Base
			Name string
		}{})
		f, _ := rt.FieldByName("Base")
		actual := NewFieldInfo(f)
		assert.True(t, actual.Inline())
		assert.Equal(t, "", actual.Name())
	})
	t.Run("EmbeddedWithTagIsNotInlined", func(t *testing.T) {
		type Base struct {
			Kind string
		}
		rt := reflect.TypeOf(struct {
			Base `json:"base"`
		}{})
		f, _ := rt.FieldByName("Base")
		actual := NewFieldInfo(f)
		assert.False(t, actual.Inline())
		assert.Equal(t, "base", actual.Name())
	})
}
