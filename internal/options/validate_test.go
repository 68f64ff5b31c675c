package options

import (
	"errors"
	"testing"

	"github.com/erraggy/docdiff/docerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSingleInputSource(t *testing.T) {
	t.Run("exactly one", func(t *testing.T) {
		assert.NoError(t, ValidateSingleInputSource("source", "none", "many", false, true))
	})

	t.Run("none", func(t *testing.T) {
		err := ValidateSingleInputSource("source", "must specify a source", "many", false, false)
		require.Error(t, err)
		assert.True(t, errors.Is(err, docerrors.ErrConfig))
		assert.Contains(t, err.Error(), "must specify a source")
		assert.Contains(t, err.Error(), "for source")
	})

	t.Run("many", func(t *testing.T) {
		err := ValidateSingleInputSource("target", "none", "must specify exactly one target", true, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must specify exactly one target")
	})
}
