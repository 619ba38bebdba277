package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abdul-hamid-achik/apismoke/packages/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, domain.EnvDev, cfg.GetEnv())
	assert.Equal(t, DefaultTimeoutMs, cfg.Timeout)
	assert.True(t, cfg.GetFollowRedirects())
	assert.Equal(t, DefaultMaxRedirects, cfg.GetMaxRedirects())
	assert.True(t, cfg.GetValidateSSL())
	assert.False(t, cfg.GetVerbose())
	assert.False(t, cfg.GetNoColor())
	assert.Len(t, cfg.CasesOrDefault(), 4)

	host, err := cfg.Host()
	require.NoError(t, err)
	assert.Equal(t, domain.Dev, host)
}

func TestConfig_NilPointersUseDefaults(t *testing.T) {
	cfg := &Config{}

	assert.Equal(t, domain.DefaultEnv, cfg.GetEnv())
	assert.True(t, cfg.GetFollowRedirects())
	assert.Equal(t, DefaultMaxRedirects, cfg.GetMaxRedirects())
	assert.True(t, cfg.GetValidateSSL())
}

func TestConfig_HostUnknownEnv(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Env = IntPtr(5)

	_, err := cfg.Host()
	assert.Error(t, err)
}

func TestFindAndLoadConfig_NoFile(t *testing.T) {
	cfg, err := FindAndLoadConfig(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".apismoke.json")
	content := `{
  "env": 2,
  "hosts": {"local": "http://127.0.0.1:9000"},
  "timeout": 5000,
  "headers": {"X-Team": "qa"}
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := FindAndLoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, domain.EnvLocal, cfg.GetEnv())
	assert.Equal(t, 5000, cfg.Timeout)
	assert.Equal(t, "qa", cfg.Headers["X-Team"])
	assert.Equal(t, domain.Dev, cfg.Hosts.Dev)

	host, err := cfg.Host()
	require.NoError(t, err)
	assert.Equal(t, domain.Domain("http://127.0.0.1:9000"), host)
}

func TestLoadConfig_YAMLWithCases(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "apismoke.yaml")
	content := `env: 0
rate: 2.5
validateSSL: false
cases:
  - name: test_sync_del_member
    method: POST
    json:
      school_id: 1
      school_name: ""
    expectStatus: 400
  - name: health
    path: /healthz
    expectStatus: 200
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, domain.EnvPro, cfg.GetEnv())
	assert.Equal(t, 2.5, cfg.Rate)
	assert.False(t, cfg.GetValidateSSL())
	assert.True(t, cfg.GetFollowRedirects())

	cases := cfg.CasesOrDefault()
	require.Len(t, cases, 2)
	assert.Equal(t, "/sync/del/member/", cases[0].RoutePath())
	assert.Equal(t, 400, cases[0].ExpectStatus)
	assert.Equal(t, map[string]any{"school_id": 1, "school_name": ""}, cases[0].JSON)
	assert.Equal(t, "/healthz", cases[1].RoutePath())
}

func TestLoadConfig_ExpandsEnv(t *testing.T) {
	t.Setenv("SMOKE_HOST", "http://smoke.internal")
	t.Setenv("SMOKE_TOKEN", "abc")

	path := filepath.Join(t.TempDir(), "apismoke.yml")
	content := "hosts:\n  dev: ${SMOKE_HOST}\nheaders:\n  Authorization: Bearer ${SMOKE_TOKEN}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	host, err := cfg.Host()
	require.NoError(t, err)
	assert.Equal(t, domain.Domain("http://smoke.internal"), host)
	assert.Equal(t, "Bearer abc", cfg.Headers["Authorization"])
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apismoke.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestConfig_Merge(t *testing.T) {
	base := DefaultConfig()
	base.Headers = map[string]string{"A": "1"}

	merged := base.Merge(&Config{
		Env:         IntPtr(domain.EnvLocal),
		Timeout:      1000,
		MaxRedirects: 3,
		ValidateSSL:  BoolPtr(false),
		Headers:      map[string]string{"B": "2"},
		Hosts:        domain.Hosts{Local: "http://localhost:3000"},
	})

	assert.Equal(t, domain.EnvLocal, merged.GetEnv())
	assert.Equal(t, 1000, merged.Timeout)
	assert.Equal(t, 3, merged.GetMaxRedirects())
	assert.Equal(t, DefaultMaxRedirects, base.Merge(&Config{}).GetMaxRedirects())
	assert.False(t, merged.GetValidateSSL())
	assert.True(t, merged.GetFollowRedirects())
	assert.Equal(t, map[string]string{"A": "1", "B": "2"}, merged.Headers)
	assert.Equal(t, domain.Domain("http://localhost:3000"), merged.Hosts.Local)
	assert.Equal(t, domain.Pro, merged.Hosts.Pro)

	assert.Equal(t, map[string]string{"A": "1"}, base.Headers, "merge must not modify the receiver")
	assert.Same(t, base, base.Merge(nil))
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Env = IntPtr(domain.EnvLocal)

	for _, name := range []string{"out.json", "out.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, cfg.SaveConfig(path))

		loaded, err := LoadConfig(path)
		require.NoError(t, err, name)
		assert.Equal(t, domain.EnvLocal, loaded.GetEnv(), name)
	}
}
