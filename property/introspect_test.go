package property_test

import (
	"reflect"
	"testing"

	"property-mapper/deferred"
	"property-mapper/property"
	"property-mapper/typeexpr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type introState struct {
	property.Store

	name string                   `prop:"bucketName"`
	arn  *deferred.Value[string]  `prop:"arn"`
	size *deferred.Value[*int64]  `prop:"size"`
	tags map[string]string        `prop:"tags"`
}

type introArgs struct {
	property.Store

	name string `prop:"bucketName"`
}

type introResource struct {
	urn  *deferred.Value[string] `prop:"urn"`
	name *string                 `prop:"name"`
}

func init() {
	must(property.RegisterOutputType(&introState{}))
	must(property.RegisterInputType(&introArgs{}))
}

func TestOutputPropertyTypes(t *testing.T) {
	got, err := property.OutputPropertyTypes(reflect.TypeOf(&introState{}))
	require.NoError(t, err)

	want := map[string]typeexpr.Expr{
		"bucketName": typeexpr.Plain{Type: reflect.TypeOf("")},
		"arn":        typeexpr.Plain{Type: reflect.TypeOf("")},
		"size":       typeexpr.Plain{Type: reflect.TypeOf(int64(0))},
		"tags":       typeexpr.Plain{Type: reflect.TypeOf(map[string]string{})},
	}

	require.Len(t, got, len(want))
	for wire, expr := range want {
		assert.True(t, typeexpr.Equal(expr, got[wire]), "wire name %q: got %v", wire, got[wire])
	}
}

func TestOutputPropertyTypesRequiresOutputKind(t *testing.T) {
	_, err := property.OutputPropertyTypes(reflect.TypeOf(&introArgs{}))
	assert.ErrorIs(t, err, property.ErrKindRequired)

	type unregistered struct{ property.Store }
	_, err = property.OutputPropertyTypes(reflect.TypeOf(&unregistered{}))
	assert.ErrorIs(t, err, property.ErrKindRequired)
}

func TestResourcePropertyTypes(t *testing.T) {
	t.Run("unregistered structs are scanned in place", func(t *testing.T) {
		got, err := property.ResourcePropertyTypes(reflect.TypeOf(&introResource{}))
		require.NoError(t, err)

		require.Len(t, got, 2)
		assert.True(t, typeexpr.Equal(typeexpr.Plain{Type: reflect.TypeOf("")}, got["urn"]))
		assert.True(t, typeexpr.Equal(typeexpr.Plain{Type: reflect.TypeOf("")}, got["name"]))
	})

	t.Run("registered types use their recorded descriptors", func(t *testing.T) {
		got, err := property.ResourcePropertyTypes(reflect.TypeOf(introArgs{}))
		require.NoError(t, err)

		require.Len(t, got, 1)
		assert.True(t, typeexpr.Equal(typeexpr.Plain{Type: reflect.TypeOf("")}, got["bucketName"]))
	})

	t.Run("non-structs rejected", func(t *testing.T) {
		_, err := property.ResourcePropertyTypes(reflect.TypeOf(3))
		assert.ErrorIs(t, err, property.ErrNotAStruct)
	})
}
