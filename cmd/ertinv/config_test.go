package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlayFile_EmptyPathKeepsDefaults(t *testing.T) {
	cfg, err := overlayFile(newtonConfig(), "")

	require.NoError(t, err)
	assert.Equal(t, newtonConfig(), cfg)
}

func TestOverlayFile_PartialFileOverridesOnlyItsKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lambda: 0.01\nelectrodes: 21\n"), 0o644))

	cfg, err := overlayFile(newtonConfig(), path)

	require.NoError(t, err)
	assert.Equal(t, 0.01, cfg.Lambda)
	assert.Equal(t, 21, cfg.Electrodes)
	// untouched keys keep their defaults
	assert.Equal(t, newtonConfig().Spacing, cfg.Spacing)
	assert.Equal(t, newtonConfig().MaxIterations, cfg.MaxIterations)
}

func TestOverlayFile_MissingFile(t *testing.T) {
	_, err := overlayFile(newtonConfig(), filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}

func TestOverlayFile_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lambda: [not a number"), 0o644))

	_, err := overlayFile(ensembleConfig(), path)

	assert.Error(t, err)
}

func TestEnsembleConfig_SamplerDefaults(t *testing.T) {
	cfg := ensembleConfig()

	assert.Equal(t, 32, cfg.Walkers)
	assert.Equal(t, 500, cfg.Steps)
	assert.Equal(t, 2.0, cfg.Lambda)
	assert.Equal(t, 250.0, cfg.PriorMax)
}
