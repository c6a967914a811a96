package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/sdkconf/pkg/version"
)

func TestVersion(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, version.Revision)
	require.NotEmpty(t, version.Version)
	assert.Regexp(t, `\d+\.\d+\.\d+`, version.String())
}
