package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tabusearch/tabu"
)

func load(t *testing.T, args []string, configFile string) (Config, error) {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	v, err := NewViper(fs, configFile)
	require.NoError(t, err)

	return Load(v)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(t, nil, "")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	o := cfg.EngineOptions()
	require.Equal(t, tabu.DefaultTenure, o.Tenure)
	require.Equal(t, 30*time.Minute, o.TimeLimit)
	require.Equal(t, tabu.FirstImproving, o.Strategy)
}

func TestLoad_Presets(t *testing.T) {
	cases := []struct {
		method string
		check  func(t *testing.T, o tabu.Options)
	}{
		{MethodStd, func(t *testing.T, o tabu.Options) {
			require.Equal(t, 20, o.Tenure)
			require.False(t, o.Diversification || o.Intensification)
		}},
		{MethodStdT2, func(t *testing.T, o tabu.Options) { require.Equal(t, 5, o.Tenure) }},
		{MethodStdBest, func(t *testing.T, o tabu.Options) { require.Equal(t, tabu.BestImproving, o.Strategy) }},
		{MethodStdDiv, func(t *testing.T, o tabu.Options) { require.True(t, o.Diversification) }},
		{MethodStdInt, func(t *testing.T, o tabu.Options) { require.True(t, o.Intensification) }},
	}
	for _, tc := range cases {
		t.Run(tc.method, func(t *testing.T) {
			cfg, err := load(t, []string{"--method", tc.method}, "")
			require.NoError(t, err)
			require.Equal(t, tc.method, cfg.Method)
			tc.check(t, cfg.EngineOptions())
		})
	}

	_, err := load(t, []string{"-m", "grasp"}, "")
	require.ErrorIs(t, err, ErrInvalid)
}

func TestLoad_FlagOverridesPreset(t *testing.T) {
	cfg, err := load(t, []string{"-m", MethodStdT2, "--tenure", "9", "--strategy", "best"}, "")
	require.NoError(t, err)
	require.Equal(t, 9, cfg.Tenure)
	require.Equal(t, "best", cfg.Strategy)
}

func TestLoad_EnvAndFile(t *testing.T) {
	file := map[string]any{
		KeyMethod:        MethodStdDiv,
		KeyTimeLimit:     "90s",
		KeyMaxIterations: 1000,
		KeySeed:          42,
	}
	raw, err := yaml.Marshal(file)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "tabu.yaml")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	t.Setenv("TABU_TENURE", "7")
	t.Setenv("TABU_MAX_ITERATIONS", "250")

	cfg, err := load(t, nil, path)
	require.NoError(t, err)
	require.Equal(t, MethodStdDiv, cfg.Method)
	require.True(t, cfg.Diversification, "preset named in the file applies")
	require.Equal(t, 90*time.Second, cfg.TimeLimit)
	require.Equal(t, int64(42), cfg.Seed)
	require.Equal(t, 7, cfg.Tenure, "env over preset")
	require.Equal(t, 250, cfg.MaxIterations, "env over file")

	cfg, err = load(t, []string{"--max-iterations", "3"}, path)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.MaxIterations, "flag over env")
}

func TestNewViper_MissingFile(t *testing.T) {
	_, err := NewViper(nil, filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	c := Default()
	c.Tenure = 0
	c.TimeLimit = 0
	c.Strategy = "random"
	c.LogLevel = "loud"
	c.LogFormat = "xml"
	c.ReportFormat = "csv"

	err := c.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	require.ErrorIs(t, err, tabu.ErrBadStrategy)
	for _, key := range []string{KeyTenure, KeyTimeLimit, KeyLogFormat, KeyReportFormat, "loud"} {
		require.Contains(t, err.Error(), key)
	}
}

func TestPresetNames(t *testing.T) {
	require.Equal(t, []string{"std", "std+best", "std+div", "std+int", "std+t2"}, PresetNames())
}
