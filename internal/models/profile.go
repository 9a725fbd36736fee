package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gookit/validate"
)

var ErrInvalidProfile = errors.New("invalid profile")

type Language string

const (
	LanguageZh Language = "zh"
	LanguageEn Language = "en"
)

func (l Language) Valid() bool {
	return l == LanguageZh || l == LanguageEn
}

type Profile struct {
	DisplayName string   `json:"nickname"`
	AvatarRef   string   `json:"avatar,omitempty"`
	Birthday    string   `json:"birthday,omitempty"`
	FriendCode  string   `json:"friendCode"`
	FriendList  []string `json:"friends"`
	Language    Language `json:"language"`
}

func (p *Profile) HasFriend(code string) bool {
	return slices.Contains(p.FriendList, code)
}

// Clone returns a copy that does not share the friend list.
func (p Profile) Clone() Profile {
	p.FriendList = slices.Clone(p.FriendList)
	if p.FriendList == nil {
		p.FriendList = []string{}
	}
	return p
}

// ProfileUpdate patches the user-editable fields; nil means unchanged.
type ProfileUpdate struct {
	DisplayName *string `json:"nickname"`
	AvatarRef   *string `json:"avatar"`
	Birthday    *string `json:"birthday"`
	Language    *string `json:"language"`
}

func (u *ProfileUpdate) Validate() error {
	data := map[string]any{}
	rules := validate.MS{}
	if u.DisplayName != nil {
		data["nickname"] = strings.TrimSpace(*u.DisplayName)
		rules["nickname"] = "required|maxLen:32"
	}
	if u.Birthday != nil && *u.Birthday != "" {
		data["birthday"] = *u.Birthday
		rules["birthday"] = "date"
	}
	if u.Language != nil {
		data["language"] = *u.Language
		rules["language"] = "required|in:zh,en"
	}
	if len(rules) == 0 {
		return nil
	}

	v := validate.Map(data)
	v.StringRules(rules)
	if !v.Validate() {
		return fmt.Errorf("%w: %s", ErrInvalidProfile, v.Errors.One())
	}
	return nil
}

func (u *ProfileUpdate) Apply(p Profile) Profile {
	if u.DisplayName != nil {
		p.DisplayName = strings.TrimSpace(*u.DisplayName)
	}
	if u.AvatarRef != nil {
		p.AvatarRef = *u.AvatarRef
	}
	if u.Birthday != nil {
		p.Birthday = *u.Birthday
	}
	if u.Language != nil {
		p.Language = Language(*u.Language)
	}
	return p
}
