package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedSetPreservesInsertionOrder(t *testing.T) {
	s := NewOrderedSet()
	assert.True(t, s.Add("grande"))
	assert.True(t, s.Add("lakeview"))
	assert.False(t, s.Add("grande")) // duplicate

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has("lakeview"))
	assert.False(t, s.Has("hormel"))
	assert.Equal(t, []string{"grande", "lakeview"}, s.Values())
}

func TestOrderedSetMarshalsAsArray(t *testing.T) {
	s := NewOrderedSet()
	s.Add("b")
	s.Add("a")

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `["b","a"]`, string(out))

	out, err = json.Marshal(NewOrderedSet())
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(out))
}

func TestOrderedSetUnmarshalRoundTrip(t *testing.T) {
	var s OrderedSet
	require.NoError(t, json.Unmarshal([]byte(`["x","y","x"]`), &s))
	assert.Equal(t, []string{"x", "y"}, s.Values())
	assert.True(t, s.Has("y"))
}

func TestOrderedSetZeroValueIsUsable(t *testing.T) {
	var s OrderedSet
	assert.True(t, s.Add("first"))
	assert.Equal(t, 1, s.Len())
}
