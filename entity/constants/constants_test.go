package constants

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	k := Default()

	assert.Equal(t, 2.435e18, k.MP)
	assert.Equal(t, 299792458.0, k.C)
	assert.Equal(t, 1.054571817e-34, k.Hbar)
	assert.Equal(t, 1.20e-10, k.A0)
	assert.InEpsilon(t, 2.24e-3*2.24e-3*2.24e-3*2.24e-3, k.RhoLambda, 1e-12)
	require.NoError(t, k.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Constants)
		field  string
	}{
		{"zero a0", func(k *Constants) { k.A0 = 0 }, "a0"},
		{"negative hbar", func(k *Constants) { k.Hbar = -1 }, "hbar"},
		{"NaN c", func(k *Constants) { k.C = math.NaN() }, "c"},
		{"infinite M_P", func(k *Constants) { k.MP = math.Inf(1) }, "M_P"},
		{"zero Rc", func(k *Constants) { k.Rc = 0 }, "Rc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := Default()
			tt.modify(&k)

			err := k.Validate()
			require.ErrorIs(t, err, ErrInvalidConstant)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "constants.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Overrides(t *testing.T) {
	path := writeFile(t, "a0: 1.5e-10\nrho_lambda_base: 2.0e-3\n")

	k, err := Load(path)
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, 1.5e-10, k.A0)
	assert.InEpsilon(t, 1.6e-11, k.RhoLambda, 1e-12)
	assert.Equal(t, def.MP, k.MP)
	assert.Equal(t, def.C, k.C)
	assert.Equal(t, def.Hbar, k.Hbar)
	assert.Equal(t, def.Rc, k.Rc)
}

func TestLoad_EmptyFileKeepsDefaults(t *testing.T) {
	k, err := Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), k)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Load(writeFile(t, "g: 1\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeFile(t, "a0: [1, 2\n"))
		require.Error(t, err)
	})

	t.Run("zero a0", func(t *testing.T) {
		_, err := Load(writeFile(t, "a0: 0\n"))
		require.ErrorIs(t, err, ErrInvalidConstant)
	})

	t.Run("negative rho base", func(t *testing.T) {
		_, err := Load(writeFile(t, "rho_lambda_base: -2.24e-3\n"))
		require.ErrorIs(t, err, ErrInvalidConstant)
	})
}
