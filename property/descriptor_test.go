package property_test

import (
	"testing"

	"property-mapper/property"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDescriptor(t *testing.T) {
	t.Run("name only", func(t *testing.T) {
		d, err := property.New("bucketName")
		require.NoError(t, err)

		assert.Equal(t, "bucketName", d.WireName())
		assert.False(t, d.HasDefault())
		assert.Equal(t, property.Missing, d.Default())
	})

	t.Run("with default", func(t *testing.T) {
		d, err := property.New("count", property.Default(3))
		require.NoError(t, err)

		assert.True(t, d.HasDefault())
		assert.Equal(t, 3, d.Default())
	})

	t.Run("nil default is still a default", func(t *testing.T) {
		d, err := property.New("maybe", property.Default(nil))
		require.NoError(t, err)

		assert.True(t, d.HasDefault())
		assert.Nil(t, d.Default())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := property.New("")
		assert.ErrorIs(t, err, property.ErrMissingName)
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "KindInput", property.KindInput.String())
	assert.Equal(t, "KindOutput", property.KindOutput.String())
	assert.Equal(t, "KindUnknown", property.KindUnknown.String())
}
