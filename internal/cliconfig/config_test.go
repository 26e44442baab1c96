package cliconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLIConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  CLIConfig
		wantErr []string
	}{
		{
			name:   "valid defaults",
			config: *NewDefault(),
		},
		{
			name:   "valid v2 length",
			config: CLIConfig{Version: VersionV2, Length: 32, Count: 5, LogLevel: "DEBUG", LogFormat: "json"},
		},
		{
			name:   "valid v2 slug",
			config: CLIConfig{Version: VersionV2, Slug: true, Count: 1, LogLevel: "info", LogFormat: "text"},
		},
		{
			name:    "unknown version",
			config:  CLIConfig{Version: "v3", Count: 1, LogLevel: "warn", LogFormat: "text"},
			wantErr: []string{`version "v3" must be v1 or v2`},
		},
		{
			name:    "length on v1",
			config:  CLIConfig{Version: VersionV1, Length: 10, Count: 1, LogLevel: "warn", LogFormat: "text"},
			wantErr: []string{"length 10 applies to v2 only"},
		},
		{
			name:    "length too short",
			config:  CLIConfig{Version: VersionV2, Length: 1, Count: 1, LogLevel: "warn", LogFormat: "text"},
			wantErr: []string{"length 1 is out of range (2-100)"},
		},
		{
			name:    "length too long",
			config:  CLIConfig{Version: VersionV2, Length: 101, Count: 1, LogLevel: "warn", LogFormat: "text"},
			wantErr: []string{"length 101 is out of range (2-100)"},
		},
		{
			name:    "slug with length",
			config:  CLIConfig{Version: VersionV2, Length: 12, Slug: true, Count: 1, LogLevel: "warn", LogFormat: "text"},
			wantErr: []string{"slug and length cannot be combined"},
		},
		{
			name:    "zero count",
			config:  CLIConfig{Version: VersionV1, LogLevel: "warn", LogFormat: "text"},
			wantErr: []string{"count 0 is out of range"},
		},
		{
			name:   "every field invalid",
			config: CLIConfig{Version: "x", Count: -1, LogLevel: "loud", LogFormat: "xml"},
			wantErr: []string{
				`version "x"`,
				"count -1",
				`logLevel "loud"`,
				`logFormat "xml"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var merr *multierror.Error
			require.ErrorAs(t, err, &merr)
			assert.Len(t, merr.Errors, len(tt.wantErr))
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestMergeConfig(t *testing.T) {
	target := NewDefault()
	MergeConfig(target, &CLIConfig{Version: VersionV2, Length: 16, JSON: true}, SourceFile)

	assert.Equal(t, VersionV2, target.Version)
	assert.Equal(t, 16, target.Length)
	assert.True(t, target.JSON)
	assert.Equal(t, DefaultCount, target.Count)
	assert.Equal(t, SourceFile, target.Source("version"))
	assert.Equal(t, SourceFile, target.Source("json"))
	assert.Equal(t, SourceDefault, target.Source("count"))

	MergeConfig(target, nil, SourceEnv)
	assert.Equal(t, VersionV2, target.Version)
}

func TestMergeConfig_VersionCase(t *testing.T) {
	target := NewDefault()
	MergeConfig(target, &CLIConfig{Version: "V2"}, SourceFile)
	assert.Equal(t, VersionV2, target.Version)
	assert.NoError(t, target.Validate())
}

func TestLoad_UppercaseVersionInFile(t *testing.T) {
	t.Chdir(t.TempDir())
	clearEnv(t)
	require.NoError(t, os.WriteFile(".cuidrc.yaml", []byte("version: V2\n"), 0o600))

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.True(t, cfg.IsV2())
	assert.NoError(t, cfg.Validate())
}

func TestMergeConfig_ExplicitFalse(t *testing.T) {
	target := NewDefault()
	target.Slug = true

	MergeConfig(target, &CLIConfig{SetFields: map[string]bool{"slug": true}}, SourceFile)
	assert.False(t, target.Slug)

	target.Slug = true
	MergeConfig(target, &CLIConfig{}, SourceFile)
	assert.True(t, target.Slug, "unset bool must not override")
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cuid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: v2\nlength: 32\nslug: false\nlogFormat: json\n"), 0o600))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, VersionV2, cfg.Version)
	assert.Equal(t, 32, cfg.Length)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.SetFields["slug"])
	assert.False(t, cfg.SetFields["json"])
}

func TestLoadConfigFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfigFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("length: many\n"), 0o600))
	_, err = LoadConfigFile(bad)
	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, bad, cerr.Path)
	assert.Contains(t, err.Error(), "line 1")

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	cfg, err := LoadConfigFile(empty)
	require.NoError(t, err)
	assert.Empty(t, cfg.Version)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	clearEnv(t)

	require.NoError(t, os.WriteFile(".cuidrc.yaml", []byte("version: v2\ncount: 3\nlogLevel: info\n"), 0o600))
	t.Setenv(EnvCount, "7")

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, VersionV2, cfg.Version)
	assert.Equal(t, SourceFile, cfg.Source("version"))
	assert.Equal(t, 7, cfg.Count)
	assert.Equal(t, SourceEnv, cfg.Source("count"))
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.Equal(t, SourceDefault, cfg.Source("logFormat"))
	assert.Equal(t, filepath.Join(dir, ".cuidrc.yaml"), cfg.ConfigFile)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "other.yml")
	require.NoError(t, os.WriteFile(path, []byte("slug: true\n"), 0o600))

	cfg, err := Load(LoadOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.True(t, cfg.Slug)
	assert.Equal(t, path, cfg.ConfigFile)

	t.Setenv(EnvConfig, path)
	cfg, err = Load(LoadOptions{})
	require.NoError(t, err)
	assert.True(t, cfg.Slug)

	_, err = Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}

func TestLoad_NoFiles(t *testing.T) {
	t.Chdir(t.TempDir())
	clearEnv(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, NewDefault().Version, cfg.Version)
	assert.Empty(t, cfg.ConfigFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvFile(t *testing.T) {
	t.Chdir(t.TempDir())
	clearEnv(t)

	envFile := filepath.Join(t.TempDir(), "cuid.env")
	require.NoError(t, os.WriteFile(envFile, []byte("CUID_VERSION=V2\nCUID_LENGTH=12\n"), 0o600))
	// godotenv never overrides variables that are already set.
	t.Setenv(EnvLength, "16")
	t.Cleanup(func() { os.Unsetenv(EnvVersion) })

	cfg, err := Load(LoadOptions{EnvFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, VersionV2, cfg.Version)
	assert.Equal(t, 16, cfg.Length)

	_, err = Load(LoadOptions{EnvFile: filepath.Join(t.TempDir(), "missing.env")})
	assert.ErrorContains(t, err, "failed to load env file")
}

func TestLoadEnvConfig_Errors(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLength, "long")
	t.Setenv(EnvCount, "2")
	t.Setenv(EnvSlug, "maybe")
	t.Setenv(EnvJSON, "yes")

	cfg := NewDefault()
	err := LoadEnvConfig(cfg)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)
	assert.Contains(t, err.Error(), EnvLength)
	assert.Contains(t, err.Error(), EnvSlug)
	assert.Equal(t, 2, cfg.Count)
	assert.True(t, cfg.JSON)
}

// clearEnv unsets every CUID_* variable for the duration of t.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvVersion, EnvLength, EnvSlug, EnvCount, EnvJSON, EnvLogLevel, EnvLogFormat, EnvConfig} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
