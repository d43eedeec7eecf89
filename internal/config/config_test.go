package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mahjong "mahjong-go"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, "mahjong.score", cfg.NATS.Subject)
	assert.Equal(t, 2*time.Second, cfg.NATS.ReconnectWait)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr())
	assert.Equal(t, mahjong.DefaultRules(), cfg.Rules.ToRules())
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
app:
  name: scorer-test
  log_level: debug
redis:
  enabled: true
  host: cache.local
  ttl: 1h
rules:
  kiriage_mangan: true
  double_yakuman: true
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	t.Setenv("MAHJONG_NATS_WORKER_COUNT", "3")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "scorer-test", cfg.App.Name)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "cache.local:6379", cfg.Redis.Addr())
	assert.Equal(t, time.Hour, cfg.Redis.TTL)
	assert.Equal(t, 3, cfg.NATS.WorkerCount)

	rules := cfg.Rules.ToRules()
	assert.True(t, rules.KiriageMangan)
	assert.True(t, rules.DoubleYakuman)
	assert.True(t, rules.OpenTanyao)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
