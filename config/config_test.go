package config

import (
	"testing"

	"github.com/adwise-fiu/Ciphercraft/comparison"
	"github.com/stretchr/testify/require"
)

func TestLoadBytesDefaults(t *testing.T) {
	e, err := LoadBytes("yaml", []byte(`{}`))
	require.NoError(t, err)
	require.Equal(t, comparison.DGKMode, e.Mode)
	require.Equal(t, comparison.Original, e.Variant)
	require.Equal(t, 16, e.DGK.L)
	require.Equal(t, 160, e.DGK.T)
	require.Equal(t, 1024, e.DGK.K)
	require.Equal(t, 1024, e.Paillier.KeySize)
	require.True(t, e.Paillier.UseFastVariant)
}

func TestLoadBytesOverrides(t *testing.T) {
	yaml := []byte(`
mode: paillier
variant: joye
dgk_params:
  l: 8
  t: 100
  k: 512
paillier_params:
  key_size: 2048
  use_fast_variant: false
`)
	e, err := LoadBytes("yaml", yaml)
	require.NoError(t, err)
	require.Equal(t, comparison.PaillierMode, e.Mode)
	require.Equal(t, comparison.Joye, e.Variant)
	require.Equal(t, 8, e.DGK.L)
	require.Equal(t, 100, e.DGK.T)
	require.Equal(t, 512, e.DGK.K)
	require.Equal(t, 2048, e.Paillier.KeySize)
	require.False(t, e.Paillier.UseFastVariant)
}

func TestLoadBytesRejectsUnknownMode(t *testing.T) {
	_, err := LoadBytes("yaml", []byte(`mode: quantum`))
	require.Error(t, err)
}

func TestLoadBytesRejectsUnknownVariant(t *testing.T) {
	_, err := LoadBytes("yaml", []byte(`variant: nope`))
	require.Error(t, err)
}

func TestLoadBytesRejectsNonPositiveDGKParams(t *testing.T) {
	_, err := LoadBytes("yaml", []byte(`
dgk_params:
  l: 0
`))
	require.Error(t, err)
}

func TestLoadBytesRejectsNonPositiveKeySize(t *testing.T) {
	_, err := LoadBytes("yaml", []byte(`
paillier_params:
  key_size: -1
`))
	require.Error(t, err)
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	e, err := Load("ciphercraft-does-not-exist", t.TempDir())
	require.NoError(t, err)
	require.Equal(t, comparison.DGKMode, e.Mode)
}
