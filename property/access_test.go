package property_test

import (
	"strings"
	"sync"
	"testing"

	"property-mapper/property"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accessArgs struct {
	property.Store

	name  string `prop:"bucketName"`
	count int    `prop:"count"`
}

type accessState struct {
	property.Store

	name string `prop:"bucketName"`
}

type translatedState struct {
	property.Store

	name string `prop:"bucket_name"`
}

type undecorated struct {
	property.Store

	name string
}

func init() {
	must(property.RegisterInputType(&accessArgs{}))
	must(property.RegisterOutputType(&accessState{}))
	must(property.RegisterOutputType(&translatedState{}, property.WithTranslate(func(name string) string {
		return strings.ReplaceAll(name, "-", "_")
	})))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func TestSetThenGet(t *testing.T) {
	args := &accessArgs{}

	require.NoError(t, property.Set(args, "bucketName", "photos"))
	require.NoError(t, property.Set(args, "count", 3))

	got, err := property.Get(args, "bucketName")
	require.NoError(t, err)
	assert.Equal(t, "photos", got)

	// Overwrite wins.
	require.NoError(t, property.Set(args, "count", 7))
	got, err = property.Get(args, "count")
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestGetUnsetReadsNil(t *testing.T) {
	args := &accessArgs{}

	got, err := property.Get(args, "bucketName")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetRejectsEmptyName(t *testing.T) {
	args := &accessArgs{}

	_, err := property.Get(args, "")
	assert.ErrorIs(t, err, property.ErrMissingName)
	assert.ErrorIs(t, property.Set(args, "", 1), property.ErrMissingName)
}

func TestAccessRequiresRegistration(t *testing.T) {
	u := &undecorated{}

	_, err := property.Get(u, "name")
	assert.ErrorIs(t, err, property.ErrNotRegistered)
	assert.ErrorIs(t, property.Set(u, "name", 1), property.ErrNotRegistered)
}

func TestSetRejectsOutputKind(t *testing.T) {
	state := &accessState{}
	assert.ErrorIs(t, property.Set(state, "bucketName", "x"), property.ErrNotInputType)
}

func TestNewOutput(t *testing.T) {
	t.Run("seeds the store wholesale", func(t *testing.T) {
		state := &accessState{}
		require.NoError(t, property.NewOutput(state, map[string]any{"bucketName": "photos"}))

		got, err := property.Get(state, "bucketName")
		require.NoError(t, err)
		assert.Equal(t, "photos", got)
	})

	t.Run("rejects non-mapping payload", func(t *testing.T) {
		state := &accessState{}
		assert.ErrorIs(t, property.NewOutput(state, 42), property.ErrNotAMapping)
	})

	t.Run("rejects input kinds", func(t *testing.T) {
		args := &accessArgs{}
		err := property.NewOutput(args, map[string]any{})
		assert.ErrorIs(t, err, property.ErrNotOutputType)
	})
}

func TestOutputTranslateHook(t *testing.T) {
	state := &translatedState{}
	require.NoError(t, property.NewOutput(state, map[string]any{"bucket_name": "photos"}))

	got, err := property.Get(state, "bucket-name")
	require.NoError(t, err)
	assert.Equal(t, "photos", got)
}

func TestNamedMapOutputGet(t *testing.T) {
	type mapState map[string]string
	require.NoError(t, property.RegisterOutputType(mapState{}))

	m := mapState{"bucketName": "photos"}

	got, err := property.Get(m, "bucketName")
	require.NoError(t, err)
	assert.Equal(t, "photos", got)

	got, err = property.Get(m, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestConcurrentStoreAccess(t *testing.T) {
	args := &accessArgs{}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = property.Set(args, "count", n)
				_, _ = property.Get(args, "count")
			}
		}(i)
	}
	wg.Wait()

	got, err := property.Get(args, "count")
	require.NoError(t, err)
	assert.IsType(t, 0, got)
}

func TestToMap(t *testing.T) {
	t.Run("returns exactly the set values", func(t *testing.T) {
		args := &accessArgs{}
		require.NoError(t, property.Set(args, "bucketName", "x"))
		require.NoError(t, property.Set(args, "count", 3))

		m, err := property.ToMap(args)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"bucketName": "x", "count": 3}, m)
	})

	t.Run("nothing set yields empty map", func(t *testing.T) {
		m, err := property.ToMap(&accessArgs{})
		require.NoError(t, err)
		assert.NotNil(t, m)
		assert.Empty(t, m)
	})

	t.Run("copy is detached from the store", func(t *testing.T) {
		args := &accessArgs{}
		require.NoError(t, property.Set(args, "count", 1))

		m, err := property.ToMap(args)
		require.NoError(t, err)
		m["count"] = 99

		got, err := property.Get(args, "count")
		require.NoError(t, err)
		assert.Equal(t, 1, got)
	})

	t.Run("rejects output kinds", func(t *testing.T) {
		_, err := property.ToMap(&accessState{})
		assert.ErrorIs(t, err, property.ErrNotInputType)
	})
}
