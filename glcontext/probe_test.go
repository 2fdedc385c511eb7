package glcontext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileProbe(t *testing.T) {
	words, err := compileProbe()
	require.NoError(t, err)
	require.NotEmpty(t, words)
	assert.Equal(t, uint32(spirvMagic), words[0])
}
