package jpegenc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultOptionsValidate(t *testing.T) {
	require.NoError(t, DefaultOptions().Validate())
}

func TestOptionsValidateRejectsUnsupportedBitDepth(t *testing.T) {
	o := DefaultOptions()
	o.BitsPerChannel = 16
	err := o.Validate()
	require.Error(t, err)
	kind, ok := Kind(err)
	require.True(t, ok)
	require.Equal(t, ErrConfigInvalid, kind)
}

func TestOptionsValidateRejectsZeroThreads(t *testing.T) {
	o := DefaultOptions()
	o.Threads = 0
	require.Error(t, o.Validate())
}
