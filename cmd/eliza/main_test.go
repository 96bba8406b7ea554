package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinArgs(t *testing.T) {
	assert.Equal(t, "", joinArgs(nil))
	assert.Equal(t, "i feel sad", joinArgs([]string{"i", "feel", "sad"}))
	assert.Equal(t, "one", joinArgs([]string{"one"}))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abc", shortID("abc"))
	assert.Equal(t, "12345678", shortID("12345678-aaaa-bbbb"))
}

func TestBuildSelector_Defaults(t *testing.T) {
	packPath = ""
	seed = 0
	sel, err := buildSelector()
	require.NoError(t, err)
	assert.Len(t, sel.Rules(), 10)
}

func TestBuildSelector_MissingPack(t *testing.T) {
	packPath = "testdata/does-not-exist.yaml"
	defer func() { packPath = "" }()

	_, err := buildSelector()
	assert.Error(t, err)
}

func TestBuildSelector_Seeded(t *testing.T) {
	packPath = ""
	seed = 42
	defer func() { seed = 0 }()

	a, err := buildSelector()
	require.NoError(t, err)
	b, err := buildSelector()
	require.NoError(t, err)

	// Same seed, same template choices.
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Respond("i feel sad"), b.Respond("i feel sad"))
	}
}
