package models

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/gookit/validate"
)

const DefaultPrimaryColor = "#A67C00"

var ErrInvalidSettings = errors.New("invalid settings")

var cssColorPattern = regexp.MustCompile(`^(#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})|[a-zA-Z]+|(rgb|rgba|hsl|hsla)\([^()]*\))$`)

type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

type Settings struct {
	PrimaryColor   string    `json:"primaryColor"`
	ThemeMode      ThemeMode `json:"themeMode"`
	IsGlobalShared bool      `json:"isGlobalShared"`
}

func DefaultSettings() Settings {
	return Settings{
		PrimaryColor:   DefaultPrimaryColor,
		ThemeMode:      ThemeSystem,
		IsGlobalShared: true,
	}
}

func (s Settings) Validate() error {
	v := validate.Map(map[string]any{
		"primaryColor": s.PrimaryColor,
		"themeMode":    string(s.ThemeMode),
	})
	v.StringRules(validate.MS{
		"primaryColor": "required",
		"themeMode":    "required|in:light,dark,system",
	})
	if !v.Validate() {
		return fmt.Errorf("%w: %s", ErrInvalidSettings, v.Errors.One())
	}
	if !cssColorPattern.MatchString(s.PrimaryColor) {
		return fmt.Errorf("%w: primaryColor %q is not a colour", ErrInvalidSettings, s.PrimaryColor)
	}
	return nil
}

// SettingsUpdate patches settings; nil means unchanged.
type SettingsUpdate struct {
	PrimaryColor   *string `json:"primaryColor"`
	ThemeMode      *string `json:"themeMode"`
	IsGlobalShared *bool   `json:"isGlobalShared"`
}

func (u *SettingsUpdate) Apply(s Settings) Settings {
	if u.PrimaryColor != nil {
		s.PrimaryColor = *u.PrimaryColor
	}
	if u.ThemeMode != nil {
		s.ThemeMode = ThemeMode(*u.ThemeMode)
	}
	if u.IsGlobalShared != nil {
		s.IsGlobalShared = *u.IsGlobalShared
	}
	return s
}
