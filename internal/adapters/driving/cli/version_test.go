package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withVersion restores the package version when the test ends.
func withVersion(t *testing.T) {
	t.Helper()
	original := version
	t.Cleanup(func() { version = original })
}

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_DefaultsToDev(t *testing.T) {
	withVersion(t)
	version = "dev"
	setupTestServices(t)

	out, err := execute(t, "", "version")

	require.NoError(t, err)
	assert.Equal(t, "drills version dev\n", out)
}

func TestSetVersion(t *testing.T) {
	withVersion(t)
	setupTestServices(t)

	SetVersion("1.4.2")
	out, err := execute(t, "", "version")

	require.NoError(t, err)
	assert.Equal(t, "drills version 1.4.2\n", out)
}

func TestVersionCmd_RejectsArgs(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "version", "extra")

	assert.Error(t, err)
}
