package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type StorageConfig struct {
	Driver   string `yaml:"driver" validate:"required|in:file,sqlite,memory"`
	Path     string `yaml:"path"`
	Compress bool   `yaml:"compress"`
}

type BackupConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Path     string        `yaml:"path"`
	Interval time.Duration `yaml:"interval"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required"`
}

type JournalConfig struct {
	Timezone        string `yaml:"timezone"`
	DefaultLanguage string `yaml:"defaultLanguage" validate:"in:zh,en"`
	DefaultNickname string `yaml:"defaultNickname"`
	DefaultAvatar   string `yaml:"defaultAvatar"`
}

// PeerConfig is one simulated leaderboard participant.
type PeerConfig struct {
	Nickname   string `yaml:"nickname"`
	Avatar     string `yaml:"avatar"`
	Count      int    `yaml:"count"`
	FriendCode string `yaml:"friendCode"`
}

type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
	Size    int  `yaml:"size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server        `yaml:"webServer"`
	Storage   StorageConfig `yaml:"storage"`
	Backup    BackupConfig  `yaml:"backup"`
	Logger    LoggerConfig  `yaml:"logger"`
	Journal   JournalConfig `yaml:"journal"`
	Peers     []PeerConfig  `yaml:"peers"`
	Cache     CacheConfig   `yaml:"cache"`
	Metrics   MetricsConfig `yaml:"metrics"`
}
