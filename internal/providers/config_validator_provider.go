package providers

import (
	"errors"
	"fmt"
	"laleme/internal/structures"
	"time"

	"github.com/gookit/validate"
)

type CnfValidatorInterface interface {
	Validate() error
}

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) CnfValidatorInterface {
	return &CnfValidator{conf: conf}
}

func (c *CnfValidator) Validate() error {
	v := validate.Struct(c.conf)
	if !v.Validate() {
		return v.Errors.OneError()
	}

	if c.conf.Storage.Driver != "memory" && c.conf.Storage.Path == "" {
		return fmt.Errorf("storage.path is required for driver %q", c.conf.Storage.Driver)
	}
	if c.conf.Journal.Timezone != "" {
		if _, err := time.LoadLocation(c.conf.Journal.Timezone); err != nil {
			return fmt.Errorf("journal.timezone: %w", err)
		}
	}
	if c.conf.Backup.Enabled {
		if c.conf.Backup.Path == "" {
			return errors.New("backup.path is required when backups are enabled")
		}
		if c.conf.Backup.Interval < time.Second {
			return errors.New("backup.interval must be at least 1s")
		}
	}
	for i, p := range c.conf.Peers {
		if p.FriendCode == "" {
			return fmt.Errorf("peers[%d]: friendCode is required", i)
		}
	}
	return nil
}
