package providers

import (
	"laleme/internal/structures"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
webServer:
  host: 127.0.0.1
  port: 18090
storage:
  path: ./data
backup:
  enabled: true
  path: ./data/backup.zst
  interval: 30m
logger:
  level: info
  mode: 0644
  dir: ./logs
journal:
  timezone: UTC
peers:
  - nickname: 顺畅小王子
    count: 42
    friendCode: FE3490
cache:
  enabled: true
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "laleme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNewConfigProvider_LoadsYAML(t *testing.T) {
	path := writeConfig(t, testYAML)

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path, DebugMode: true})
	require.NoError(t, err)

	assert.Equal(t, "LalemeJournal", conf.AppName)
	assert.True(t, conf.Debug)
	assert.Equal(t, path, conf.Path)
	assert.Equal(t, 18090, conf.WebServer.Port)
	assert.Equal(t, "file", conf.Storage.Driver)
	assert.Equal(t, 30*time.Minute, conf.Backup.Interval)
	assert.Equal(t, "zh", conf.Journal.DefaultLanguage)
	assert.Equal(t, 8, conf.Cache.Size)
	require.Len(t, conf.Peers, 1)
	assert.Equal(t, "FE3490", conf.Peers[0].FriendCode)
	assert.Equal(t, 42, conf.Peers[0].Count)
}

func TestNewConfigProvider_EnvOverrides(t *testing.T) {
	path := writeConfig(t, testYAML)
	t.Setenv("LALEME_STORAGE_DRIVER", "memory")
	t.Setenv("LALEME_TIMEZONE", "Asia/Shanghai")
	t.Setenv("LALEME_LOG_LEVEL", "debug")

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	require.NoError(t, err)

	assert.Equal(t, "memory", conf.Storage.Driver)
	assert.Equal(t, "Asia/Shanghai", conf.Journal.Timezone)
	assert.Equal(t, "debug", conf.Logger.Level)
}

func TestNewConfigProvider_MissingFile(t *testing.T) {
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")})
	assert.Error(t, err)
}

func TestNewConfigProvider_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "webServer:\n  host: 127.0.0.1\n  port: 0\n")

	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	assert.Error(t, err)
}

func TestNewConfigProvider_ShippedConfig(t *testing.T) {
	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: filepath.Join("..", "..", "config", "laleme.yaml")})
	require.NoError(t, err)

	assert.Equal(t, "./logs", conf.Logger.Dir)
	assert.Equal(t, uint32(0644), conf.Logger.Mode)
	assert.Equal(t, "file", conf.Storage.Driver)
	assert.Equal(t, time.Hour, conf.Backup.Interval)
	assert.Len(t, conf.Peers, 3)
}
