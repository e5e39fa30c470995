package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePathsPackaged(t *testing.T) {
	p := resolvePaths("/opt/liquidclock/liquidclock", "/home/me", "/tmp")
	assert.Equal(t, "/opt/liquidclock", p.ConfigDir)
	assert.Equal(t, filepath.Join("/opt/liquidclock", "assets"), p.ResourceDir)
	assert.Equal(t, filepath.Join("/opt/liquidclock", FileName), p.ConfigFile())
}

func TestResolvePathsGoRun(t *testing.T) {
	p := resolvePaths("/tmp/go-build123456/b001/exe/liquidclock", "/home/me/src/clock", "/tmp")
	assert.Equal(t, "/home/me/src/clock", p.ConfigDir)
	assert.Equal(t, "/home/me/src/clock/assets", p.ResourceDir)
}

func TestIsGoRunBinary(t *testing.T) {
	assert.True(t, isGoRunBinary("/tmp/go-build1/b001/exe/main", "/tmp"))
	assert.False(t, isGoRunBinary("/tmp/other/main", "/tmp"))
	assert.False(t, isGoRunBinary("/usr/local/bin/main", "/tmp"))
}

func TestResolvePathsUsesRealExecutable(t *testing.T) {
	p, err := ResolvePaths()
	assert.NoError(t, err)
	assert.NotEmpty(t, p.ConfigDir)
}
