//go:build unit || !integration

package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bacalhau-project/ramdisk/pkg/config/types"
)

func TestCanonicalKey(t *testing.T) {
	key, err := CanonicalKey("ramdisk.mac.format")
	require.NoError(t, err)
	assert.Equal(t, "RAMDisk.mac.format", key)

	key, err = CanonicalKey("RAMDISK.SIZE")
	require.NoError(t, err)
	assert.Equal(t, "RAMDisk.size", key)

	_, err = CanonicalKey("org.gradle.jvmargs")
	assert.Error(t, err)
}

func TestSetPropertyCreatesFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, SetProperty(fs, projectDir+"/gradle.properties", "ramdisk.size", "512"))

	content, err := afero.ReadFile(fs, projectDir+"/gradle.properties")
	require.NoError(t, err)
	assert.Equal(t, "RAMDisk.size = 512\n", string(content))

	cfg := load(t, fs)
	assert.Equal(t, "512", cfg.Size)
}

func TestSetPropertyUpdatesInPlace(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, projectDir+"/gradle.properties",
		"# build settings\norg.gradle.jvmargs=-Xmx2g\nRAMDisk.Size=128\n")

	require.NoError(t, SetProperty(fs, projectDir+"/gradle.properties", types.RAMDiskSize, "1024"))
	require.NoError(t, SetProperty(fs, projectDir+"/gradle.properties", types.RAMDiskEnable, "true"))

	content, err := afero.ReadFile(fs, projectDir+"/gradle.properties")
	require.NoError(t, err)
	assert.Contains(t, string(content), "# build settings")
	assert.Contains(t, string(content), "RAMDisk.Size = 1024")
	assert.NotContains(t, string(content), "128")

	cfg := load(t, fs)
	assert.Equal(t, "1024", cfg.Size)
	assert.True(t, cfg.Enabled())
}
