package util

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type JSONSimpleTest struct {
	Name   string  `json:"name"`
	Age    int     `json:"age"`
	Height float32 `json:"height"`
	Tags   []int64 `json:"tags"`
}

func TestJSONRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "simple.json")
	value := JSONSimpleTest{Name: "John", Age: 30, Height: 170.5, Tags: []int64{1, 2}}

	assert.False(t, FileExists(file))
	require.NoError(t, WriteJSONToFile(value, file))
	assert.True(t, FileExists(file))

	read, err := ReadJSONFromFile[JSONSimpleTest](file)
	require.NoError(t, err)
	assert.Equal(t, value, read)
}

func TestJSONMissingFile(t *testing.T) {
	_, err := ReadJSONFromFile[JSONSimpleTest](filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestDictList(t *testing.T) {
	d := NewDict[string, int](2)
	d.Set("a", 1)
	assert.True(t, d.ContainsKey("a"))
	assert.False(t, d.ContainsKey("b"))
	assert.Equal(t, 1, d.Get("a"))

	l := NewList[int](1)
	l.Add(3)
	l.Add(4)
	assert.Equal(t, 2, l.Length())
	assert.Equal(t, 4, l.Get(1))
}
