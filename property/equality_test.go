package property_test

import (
	"testing"

	"property-mapper/property"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eqState struct {
	property.Store

	a int `prop:"a"`
}

type eqOtherState struct {
	property.Store

	a int `prop:"a"`
}

type eqCustom struct {
	property.Store

	a int `prop:"a"`
}

// Equal makes every eqCustom equal to every other eqCustom.
func (*eqCustom) Equal(other any) bool {
	_, ok := other.(*eqCustom)
	return ok
}

func init() {
	must(property.RegisterOutputType(&eqState{}))
	must(property.RegisterOutputType(&eqOtherState{}))
	must(property.RegisterOutputType(&eqCustom{}))
}

func TestEqual(t *testing.T) {
	t.Run("same type and store contents are equal", func(t *testing.T) {
		x, y := &eqState{}, &eqState{}
		require.NoError(t, property.NewOutput(x, map[string]any{"a": 1}))
		require.NoError(t, property.NewOutput(y, map[string]any{"a": 1}))

		assert.True(t, property.Equal(x, y))
	})

	t.Run("different store contents are unequal", func(t *testing.T) {
		x, y := &eqState{}, &eqState{}
		require.NoError(t, property.NewOutput(x, map[string]any{"a": 1}))
		require.NoError(t, property.NewOutput(y, map[string]any{"a": 2}))

		assert.False(t, property.Equal(x, y))
	})

	t.Run("different types with identical stores are unequal", func(t *testing.T) {
		x, y := &eqState{}, &eqOtherState{}
		require.NoError(t, property.NewOutput(x, map[string]any{"a": 1}))
		require.NoError(t, property.NewOutput(y, map[string]any{"a": 1}))

		assert.False(t, property.Equal(x, y))
	})

	t.Run("unseeded instances are equal", func(t *testing.T) {
		assert.True(t, property.Equal(&eqState{}, &eqState{}))
	})

	t.Run("user equality wins", func(t *testing.T) {
		x, y := &eqCustom{}, &eqCustom{}
		require.NoError(t, property.NewOutput(x, map[string]any{"a": 1}))
		require.NoError(t, property.NewOutput(y, map[string]any{"a": 2}))

		assert.True(t, property.Equal(x, y))
	})

	t.Run("named maps compare as maps", func(t *testing.T) {
		type eqTags map[string]string
		require.NoError(t, property.RegisterOutputType(eqTags{}))

		assert.True(t, property.Equal(eqTags{"k": "v"}, eqTags{"k": "v"}))
		assert.False(t, property.Equal(eqTags{"k": "v"}, eqTags{"k": "w"}))
	})

	t.Run("nils", func(t *testing.T) {
		assert.True(t, property.Equal(nil, nil))
		assert.False(t, property.Equal(&eqState{}, nil))
	})
}
