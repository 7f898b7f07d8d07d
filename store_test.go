package semetrika

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lengths.db")

	d := &LengthDictionary{verdicts: map[string][]Length{
		"arma": {LengthLong, LengthShort},
		"cano": {LengthShort, LengthLong},
		"qui":  {LengthUnknown},
	}}
	require.NoError(t, d.Save(path))

	loaded, err := LoadLengthDictionary(path)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Len())

	vs, ok := loaded.Lookup("arma")
	require.True(t, ok)
	assert.Equal(t, []Length{LengthLong, LengthShort}, vs)

	vs, ok = loaded.Lookup("qui")
	require.True(t, ok)
	assert.Equal(t, []Length{LengthUnknown}, vs)

	// frequencies are working data and do not survive the store
	assert.Nil(t, loaded.Frequencies())
}

func TestStoreSaveReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lengths.db")

	first := &LengthDictionary{verdicts: map[string][]Length{
		"arma": {LengthLong, LengthShort},
		"cano": {LengthShort, LengthLong},
	}}
	require.NoError(t, first.Save(path))

	second := &LengthDictionary{verdicts: map[string][]Length{
		"virum": {LengthShort, LengthUnknown},
	}}
	require.NoError(t, second.Save(path))

	loaded, err := LoadLengthDictionary(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"virum"}, loaded.Words())
}

func TestLoadLengthDictionaryMissing(t *testing.T) {
	_, err := LoadLengthDictionary(filepath.Join(t.TempDir(), "absent.db"))
	assert.Error(t, err)
}

func TestVerdictCodec(t *testing.T) {
	vs := []Length{LengthLong, LengthShort, LengthUnknown}
	encoded := encodeVerdicts(vs)
	assert.Equal(t, "lsu", encoded)
	assert.Equal(t, vs, decodeVerdicts(encoded))
}
