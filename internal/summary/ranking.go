package summary

import (
	"cmp"
	"slices"
)

type Scope string

const (
	ScopeFriends Scope = "friends"
	ScopeGlobal  Scope = "global"
)

func (s Scope) Valid() bool {
	return s == ScopeFriends || s == ScopeGlobal
}

// Peer is a leaderboard participant other than the local user.
type Peer struct {
	Nickname   string `json:"nickname"`
	Avatar     string `json:"avatar"`
	Count      int    `json:"count"`
	FriendCode string `json:"friendCode"`
}

type Self struct {
	DisplayName string
	Avatar      string
	Count       int
	FriendCode  string
}

type RankItem struct {
	Position    int    `json:"position"`
	Identity    string `json:"id"`
	DisplayName string `json:"nickname"`
	Avatar      string `json:"avatar"`
	Count       int    `json:"count"`
	IsSelf      bool   `json:"isMe"`
	FriendCode  string `json:"friendCode"`
}

const selfIdentity = "me"

// Rank merges self with the peers visible in scope and orders them by count,
// highest first, ties by ascending friend code. In friends scope a peer is
// visible when its code is in friends; with no such peer the result is just
// self.
func Rank(self Self, peers []Peer, friends []string, scope Scope) []RankItem {
	items := make([]RankItem, 0, len(peers)+1)
	items = append(items, RankItem{
		Identity:    selfIdentity,
		DisplayName: self.DisplayName,
		Avatar:      self.Avatar,
		Count:       self.Count,
		IsSelf:      true,
		FriendCode:  self.FriendCode,
	})

	for _, p := range peers {
		if scope != ScopeGlobal && !slices.Contains(friends, p.FriendCode) {
			continue
		}
		items = append(items, RankItem{
			Identity:    p.FriendCode,
			DisplayName: p.Nickname,
			Avatar:      p.Avatar,
			Count:       p.Count,
			FriendCode:  p.FriendCode,
		})
	}

	slices.SortStableFunc(items, func(a, b RankItem) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.FriendCode, b.FriendCode)
	})
	for i := range items {
		items[i].Position = i + 1
	}
	return items
}
