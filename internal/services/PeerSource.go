package services

import (
	"context"
	"laleme/internal/structures"
	"laleme/internal/summary"
	"slices"
	"strings"
)

// PeerSourceInterface supplies the other leaderboard participants. There is
// no backend, so the stock implementation serves peers from configuration.
type PeerSourceInterface interface {
	Peers(ctx context.Context) ([]summary.Peer, error)
}

type StaticPeerSource struct {
	peers []summary.Peer
}

func NewPeerSource(conf *structures.Config) PeerSourceInterface {
	peers := make([]summary.Peer, 0, len(conf.Peers))
	for _, p := range conf.Peers {
		peers = append(peers, summary.Peer{
			Nickname:   p.Nickname,
			Avatar:     p.Avatar,
			Count:      p.Count,
			FriendCode: strings.ToUpper(strings.TrimSpace(p.FriendCode)),
		})
	}
	return &StaticPeerSource{peers: peers}
}

func (s *StaticPeerSource) Peers(ctx context.Context) ([]summary.Peer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(s.peers), nil
}
