package dto

import (
	"time"

	"github.com/brawldash/club-sync/internal/store/schema"
)

// Member is the API representation of one club member snapshot.
type Member struct {
	Tag             string    `json:"tag"`
	Name            string    `json:"name"`
	Role            string    `json:"role"`
	Trophies        int       `json:"trophies"`
	HighestTrophies int       `json:"highest_trophies"`
	ExpLevel        int       `json:"exp_level"`
	CurrentRank     string    `json:"current_rank,omitempty"`
	HighestRank     string    `json:"highest_rank,omitempty"`
	WinRate         float64   `json:"win_rate"`
	BrawlerCount    int       `json:"brawler_count"`
	TrioVictories   int       `json:"trio_victories"`
	SoloVictories   int       `json:"solo_victories"`
	DuoVictories    int       `json:"duo_victories"`
	IsActive        bool      `json:"is_active"`
	LastUpdated     time.Time `json:"last_updated"`
}

// MemberHistory is the API representation of a member's join/leave record.
type MemberHistory struct {
	FirstSeenAt     time.Time  `json:"first_seen_at"`
	LastSeenAt      time.Time  `json:"last_seen_at"`
	LastLeftAt      *time.Time `json:"last_left_at,omitempty"`
	TimesJoined     int        `json:"times_joined"`
	TimesLeft       int        `json:"times_left"`
	IsCurrentMember bool       `json:"is_current_member"`
	RoleAtLeave     string     `json:"role_at_leave,omitempty"`
	TrophiesAtLeave int        `json:"trophies_at_leave"`
}

// PlayerTracking is the API representation of the brawler delta accumulators.
type PlayerTracking struct {
	PowerUps          int       `json:"power_ups"`
	Unlocks           int       `json:"unlocks"`
	TrackingStartedAt time.Time `json:"tracking_started_at"`
	LastUpdated       time.Time `json:"last_updated"`
}

// ActivityObservation is the API representation of the latest activity log row.
type ActivityObservation struct {
	Trophies     int       `json:"trophies"`
	TrophyDelta  int       `json:"trophy_delta"`
	ActivityType string    `json:"activity_type"`
	RecordedAt   time.Time `json:"recorded_at"`
}

// MemberDetail bundles the member snapshot with its history, tracking
// accumulators and most recent activity observation.
type MemberDetail struct {
	Member
	History      *MemberHistory       `json:"history,omitempty"`
	Tracking     *PlayerTracking      `json:"tracking,omitempty"`
	LastActivity *ActivityObservation `json:"last_activity,omitempty"`
}

// MemberFromSchema converts a storage member row to its API representation.
func MemberFromSchema(m *schema.Member) Member {
	return Member{
		Tag:             m.Tag.String(),
		Name:            m.Name,
		Role:            m.Role,
		Trophies:        m.Trophies,
		HighestTrophies: m.HighestTrophies,
		ExpLevel:        m.ExpLevel,
		CurrentRank:     m.CurrentRank,
		HighestRank:     m.HighestRank,
		WinRate:         m.WinRate,
		BrawlerCount:    m.BrawlerCount,
		TrioVictories:   m.TrioVictories,
		SoloVictories:   m.SoloVictories,
		DuoVictories:    m.DuoVictories,
		IsActive:        m.IsActive,
		LastUpdated:     m.LastUpdated,
	}
}

// MemberHistoryFromSchema converts a storage history row to its API
// representation.
func MemberHistoryFromSchema(h *schema.MemberHistory) *MemberHistory {
	if h == nil {
		return nil
	}
	return &MemberHistory{
		FirstSeenAt:     h.FirstSeenAt,
		LastSeenAt:      h.LastSeenAt,
		LastLeftAt:      h.LastLeftAt,
		TimesJoined:     h.TimesJoined,
		TimesLeft:       h.TimesLeft,
		IsCurrentMember: h.IsCurrentMember,
		RoleAtLeave:     h.RoleAtLeave,
		TrophiesAtLeave: h.TrophiesAtLeave,
	}
}

// PlayerTrackingFromSchema converts a storage tracking row to its API
// representation.
func PlayerTrackingFromSchema(t *schema.PlayerTracking) *PlayerTracking {
	if t == nil {
		return nil
	}
	return &PlayerTracking{
		PowerUps:          t.PowerUps,
		Unlocks:           t.Unlocks,
		TrackingStartedAt: t.TrackingStartedAt,
		LastUpdated:       t.LastUpdated,
	}
}

// ActivityObservationFromSchema converts a storage activity log row to its API
// representation.
func ActivityObservationFromSchema(e *schema.ActivityLogEntry) *ActivityObservation {
	if e == nil {
		return nil
	}
	return &ActivityObservation{
		Trophies:     e.Trophies,
		TrophyDelta:  e.TrophyDelta,
		ActivityType: string(e.ActivityType),
		RecordedAt:   e.RecordedAt,
	}
}
