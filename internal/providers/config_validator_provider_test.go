package providers

import (
	"laleme/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "127.0.0.1",
			Port: 18090,
		},
		Storage: structures.StorageConfig{
			Driver: "file",
			Path:   "/tmp/laleme",
		},
		Backup: structures.BackupConfig{
			Enabled:  true,
			Path:     "/tmp/laleme/backup.zst",
			Interval: time.Hour,
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
		Journal: structures.JournalConfig{
			Timezone:        "UTC",
			DefaultLanguage: "zh",
		},
		Peers: []structures.PeerConfig{
			{Nickname: "a", Count: 3, FriendCode: "AN2211"},
		},
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_Rejects(t *testing.T) {
	cases := map[string]func(c *structures.Config){
		"empty host":           func(c *structures.Config) { c.WebServer.Host = "" },
		"zero port":            func(c *structures.Config) { c.WebServer.Port = 0 },
		"empty log level":      func(c *structures.Config) { c.Logger.Level = "" },
		"invalid log level":    func(c *structures.Config) { c.Logger.Level = "verbose" },
		"empty log dir":        func(c *structures.Config) { c.Logger.Dir = "" },
		"unknown driver":       func(c *structures.Config) { c.Storage.Driver = "floppy" },
		"file without path":    func(c *structures.Config) { c.Storage.Path = "" },
		"bad timezone":         func(c *structures.Config) { c.Journal.Timezone = "Mars/Base" },
		"bad language":         func(c *structures.Config) { c.Journal.DefaultLanguage = "fr" },
		"backup without path":  func(c *structures.Config) { c.Backup.Path = "" },
		"backup interval tiny": func(c *structures.Config) { c.Backup.Interval = time.Millisecond },
		"peer without code":    func(c *structures.Config) { c.Peers[0].FriendCode = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := validConfig()
			mutate(c)
			assert.Error(t, NewCnfValidator(c).Validate())
		})
	}
}

func TestConfigValidator_AcceptsRelativeLogDir(t *testing.T) {
	c := validConfig()
	c.Logger.Dir = "./logs"
	assert.NoError(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_MemoryNeedsNoPath(t *testing.T) {
	c := validConfig()
	c.Storage = structures.StorageConfig{Driver: "memory"}
	c.Backup.Enabled = false
	assert.NoError(t, NewCnfValidator(c).Validate())
}
