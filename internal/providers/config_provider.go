package providers

import (
	"fmt"
	"laleme/internal/structures"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.SetDefault("storage.driver", "file")
	v.SetDefault("journal.timezone", "Local")
	v.SetDefault("journal.defaultLanguage", "zh")
	v.SetDefault("cache.size", 8)

	_ = v.BindEnv("logger.level", "LALEME_LOG_LEVEL")
	_ = v.BindEnv("storage.driver", "LALEME_STORAGE_DRIVER")
	_ = v.BindEnv("storage.path", "LALEME_STORAGE_PATH")
	_ = v.BindEnv("journal.timezone", "LALEME_TIMEZONE")
	_ = v.BindEnv("cache.enabled", "LALEME_CACHE_ENABLED")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "LalemeJournal"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
