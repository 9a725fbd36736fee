package services

import (
	"context"
	"laleme/internal/calendar"
	"laleme/internal/providers"
	"laleme/internal/structures"
	"laleme/internal/summary"
	"net/url"
	"time"
)

const avatarSeedURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="

type SummaryServiceInterface interface {
	Health() summary.HealthSummary
	Statistics() summary.Statistics
	Heatmap(today calendar.Day) []summary.HeatDay
	Calendar(view summary.View, anchor, today calendar.Day) summary.CalendarView
	Ranking(ctx context.Context, scope summary.Scope, period summary.Period) []summary.RankItem
	Today() calendar.Day
}

// SummaryService evaluates the pure derivations against the current journal
// state and the clock. Nothing is cached here.
type SummaryService struct {
	journal JournalServiceInterface
	peers   PeerSourceInterface
	logger  providers.Logger
	clock   Clock
	loc     *time.Location
}

func NewSummaryService(conf *structures.Config, journal JournalServiceInterface, peers PeerSourceInterface, logger providers.Logger, clock Clock) (SummaryServiceInterface, error) {
	loc, err := calendar.LoadLocation(conf.Journal.Timezone)
	if err != nil {
		return nil, err
	}
	return &SummaryService{
		journal: journal,
		peers:   peers,
		logger:  logger,
		clock:   clock,
		loc:     loc,
	}, nil
}

func (s *SummaryService) now() int64 {
	return s.clock().UnixMilli()
}

func (s *SummaryService) Today() calendar.Day {
	return calendar.DayOf(s.now(), s.loc)
}

func (s *SummaryService) Health() summary.HealthSummary {
	return summary.Health(s.journal.Records(), s.now(), s.journal.Profile().Language)
}

func (s *SummaryService) Statistics() summary.Statistics {
	return summary.Compute(s.journal.Records(), s.now(), s.loc)
}

// Heatmap ends at today as given by the caller, so a response cached under
// that day always matches it.
func (s *SummaryService) Heatmap(today calendar.Day) []summary.HeatDay {
	return summary.HeatmapSlice(s.journal.Records(), today.Start(s.loc).UnixMilli(), s.loc)
}

func (s *SummaryService) Calendar(view summary.View, anchor, today calendar.Day) summary.CalendarView {
	return summary.BuildView(view, s.journal.Records(), anchor, today.Start(s.loc).UnixMilli(), s.loc)
}

// Ranking never fails: when the peer source is unavailable the board holds
// only the local user.
func (s *SummaryService) Ranking(ctx context.Context, scope summary.Scope, period summary.Period) []summary.RankItem {
	profile := s.journal.Profile()

	peers, err := s.peers.Peers(ctx)
	if err != nil {
		s.logger.Warnf(providers.TypeApp, "Peer source unavailable: %s", err)
		peers = nil
	}

	self := summary.Self{
		DisplayName: profile.DisplayName,
		Avatar:      profile.AvatarRef,
		Count:       summary.CountInPeriod(s.journal.Records(), period, s.now()),
		FriendCode:  profile.FriendCode,
	}
	if self.DisplayName == "" {
		self.DisplayName = "Unknown"
	}
	if self.Avatar == "" {
		seed := profile.DisplayName
		if seed == "" {
			seed = "me"
		}
		self.Avatar = avatarSeedURL + url.QueryEscape(seed)
	}
	return summary.Rank(self, peers, profile.FriendList, scope)
}
