package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/surfgeo/config"
)

func TestLoadConfig_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "surfgeo.yaml")
	cfg := config.DefaultConfig()
	cfg.Surface.Shape = config.ShapeGrid
	cfg.Query.Targets = []int{4, 5}
	cfg.ROI.Seeds = []int{0}
	require.NoError(t, config.SaveConfig(cfg, path))

	got, err := config.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestSaveLoad_DefaultsSurviveEmptyLists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "surfgeo.yaml")
	require.NoError(t, config.SaveConfig(config.DefaultConfig(), path))

	got, err := config.LoadConfig(path)
	require.NoError(t, err)
	require.Nil(t, got.ROI.Seeds)
	require.Equal(t, config.DefaultConfig(), got)

	require.NoError(t, os.WriteFile(path, []byte("query:\n  targets: []\nroi:\n  seeds: []\n"), 0o644))
	got, err = config.LoadConfig(path)
	require.NoError(t, err)
	require.Nil(t, got.Query.Targets)
	require.Nil(t, got.ROI.Seeds)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("surface:\n  shape: octahedron\nlog:\n  format: json\n"), 0o644))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, config.ShapeOctahedron, cfg.Surface.Shape)
	require.Equal(t, "json", cfg.Log.Format)
	require.Equal(t, config.DefaultConfig().Surface.Scale, cfg.Surface.Scale)
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("surface: [\n"), 0o644))
	_, err := config.LoadConfig(bad)
	require.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("surface:\n  shape: cube\n"), 0o644))
	_, err = config.LoadConfig(invalid)
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"shape", func(c *config.Config) { c.Surface.Shape = "torus" }},
		{"subdivisions", func(c *config.Config) { c.Surface.Subdivisions = -1 }},
		{"grid", func(c *config.Config) { c.Surface.Shape = config.ShapeGrid; c.Surface.Rows = 1 }},
		{"scale", func(c *config.Config) { c.Surface.Scale = 0 }},
		{"jitter", func(c *config.Config) { c.Surface.Jitter = -1 }},
		{"radius", func(c *config.Config) { c.Query.Radius = -1 }},
		{"matrix", func(c *config.Config) { c.Query.MaxMatrixBytes = -1 }},
		{"sigma", func(c *config.Config) { c.Kernel.Enabled = true; c.Kernel.Sigma = 0 }},
		{"workers", func(c *config.Config) { c.Kernel.Enabled = true; c.Kernel.Workers = 0 }},
		{"roi", func(c *config.Config) { c.ROI.Dilate = -2 }},
		{"level", func(c *config.Config) { c.Log.Level = "loud" }},
		{"format", func(c *config.Config) { c.Log.Format = "xml" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tc.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}

func TestSurfaceBuild(t *testing.T) {
	for shape, want := range map[string]int{
		config.ShapeIcosphere:   42,
		config.ShapeGrid:        12,
		config.ShapeTetrahedron: 4,
		config.ShapeOctahedron:  6,
		config.ShapeIcosahedron: 12,
	} {
		sc := config.SurfaceConfig{Shape: shape, Subdivisions: 1, Rows: 3, Cols: 4, Scale: 2, Seed: 1}
		s, err := sc.Build()
		require.NoError(t, err, shape)
		require.Equal(t, want, s.Count(), shape)
	}
	_, err := config.SurfaceConfig{Shape: "cube", Scale: 1}.Build()
	require.ErrorIs(t, err, config.ErrInvalid)
	_, err = config.SurfaceConfig{Shape: config.ShapeGrid, Rows: 3, Cols: 3}.Build()
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := config.LogConfig{Level: "warn", Format: "json"}.Logger(&buf)
	require.NoError(t, err)
	l.Info("hidden")
	l.Warn("shown", "k", 1)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = config.LogConfig{Level: "nope"}.Logger(&buf)
	require.ErrorIs(t, err, config.ErrInvalid)
}
