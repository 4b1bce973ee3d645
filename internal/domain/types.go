package domain

import (
	"strings"
	"time"
)

// Tag is the canonical player/club identifier. Canonical form is uppercase
// with a single leading '#' (e.g. "#2QJ0VGRLC"). The upstream API mixes the
// literal form and the percent-escaped form ("%232QJ0VGRLC"); every ingress
// boundary must pass tags through NormalizeTag so internal comparisons are
// always on one form.
type Tag string

// NormalizeTag converts any upstream tag encoding to the canonical form.
// Accepts "#abc", "%23abc", "abc" and returns "#ABC". Empty input stays empty.
func NormalizeTag(raw string) Tag {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	s = strings.TrimPrefix(s, "%23")
	s = strings.TrimPrefix(s, "#")
	return Tag("#" + strings.ToUpper(s))
}

// String returns the canonical string form.
func (t Tag) String() string {
	return string(t)
}

// APIPath returns the percent-escaped form used in upstream URL paths.
func (t Tag) APIPath() string {
	return "%23" + strings.TrimPrefix(string(t), "#")
}

// Valid reports whether the tag is non-empty and in canonical form.
func (t Tag) Valid() bool {
	return len(t) > 1 && t[0] == '#'
}

// Role is a club role as reported by upstream. Roles form an ordered tier:
// member < senior < vicePresident < president.
type Role string

const (
	RoleMember        Role = "member"
	RoleSenior        Role = "senior"
	RoleVicePresident Role = "vicePresident"
	RolePresident     Role = "president"
)

// roleTiers maps the case/whitespace-normalized role string to its tier.
var roleTiers = map[string]int{
	"member":        0,
	"senior":        1,
	"vicepresident": 2,
	"president":     3,
}

// NormalizeRole canonicalizes an upstream role string for comparison.
func NormalizeRole(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// RoleTier returns the ordered tier for a role string, or -1 if unknown.
func RoleTier(raw string) int {
	tier, ok := roleTiers[NormalizeRole(raw)]
	if !ok {
		return -1
	}
	return tier
}

// RoleChange classifies a role transition between two upstream role strings.
type RoleChange int

const (
	RoleChangeNone RoleChange = iota
	RoleChangePromotion
	RoleChangeDemotion
	RoleChangeLateral
)

// ClassifyRoleChange compares two role strings on the ordered tier. Unknown
// roles compare as lateral changes when the normalized strings differ.
func ClassifyRoleChange(oldRole, newRole string) RoleChange {
	if NormalizeRole(oldRole) == NormalizeRole(newRole) {
		return RoleChangeNone
	}
	oldTier, newTier := RoleTier(oldRole), RoleTier(newRole)
	switch {
	case oldTier < 0 || newTier < 0:
		return RoleChangeLateral
	case newTier > oldTier:
		return RoleChangePromotion
	case newTier < oldTier:
		return RoleChangeDemotion
	default:
		return RoleChangeLateral
	}
}

// ActivityType classifies a member's activity from a trophy delta.
type ActivityType string

const (
	ActivityActive   ActivityType = "active"
	ActivityMinimal  ActivityType = "minimal"
	ActivityInactive ActivityType = "inactive"
)

// ActiveTrophyDelta is the absolute trophy delta at or above which a member
// counts as fully active for one observation.
const ActiveTrophyDelta = 20

// ClassifyActivity maps a trophy delta since the prior observation to an
// activity type. The sticky recent-activity window is applied by the
// reconciler on top of this, not here.
func ClassifyActivity(trophyDelta int) ActivityType {
	switch {
	case trophyDelta >= ActiveTrophyDelta || trophyDelta <= -ActiveTrophyDelta:
		return ActivityActive
	case trophyDelta != 0:
		return ActivityMinimal
	default:
		return ActivityInactive
	}
}

// BattleResult is the canonical outcome of one battle.
type BattleResult string

const (
	ResultVictory BattleResult = "victory"
	ResultDefeat  BattleResult = "defeat"
	ResultDraw    BattleResult = "draw"
	ResultUnknown BattleResult = "unknown"
)

// ShowdownWinRank is the highest placement that counts as a win in modes that
// report a rank instead of a victory/defeat flag.
const ShowdownWinRank = 4

// EventType is the type of a club membership event.
type EventType string

const (
	EventTypeJoin       EventType = "join"
	EventTypeLeave      EventType = "leave"
	EventTypePromotion  EventType = "promotion"
	EventTypeDemotion   EventType = "demotion"
	EventTypeRoleChange EventType = "role_change"
	EventTypeNameChange EventType = "name_change"
	EventTypeInactive   EventType = "inactive"
)

// RosterMember is one member entry from the upstream club roster.
type RosterMember struct {
	Tag      Tag    `json:"tag"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Trophies int    `json:"trophies"`
	Icon     int    `json:"icon"`
}

// ClubRoster is the upstream view of the club at one instant.
type ClubRoster struct {
	Tag              Tag            `json:"tag"`
	Name             string         `json:"name"`
	Trophies         int            `json:"trophies"`
	RequiredTrophies int            `json:"required_trophies"`
	Members          []RosterMember `json:"members"`
}

// MemberTags returns the canonical tags of all rostered members.
func (r *ClubRoster) MemberTags() []Tag {
	tags := make([]Tag, 0, len(r.Members))
	for _, m := range r.Members {
		tags = append(tags, m.Tag)
	}
	return tags
}

// PlayerBrawler is one brawler entry from the upstream player profile.
type PlayerBrawler struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Power           int    `json:"power"`
	Rank            int    `json:"rank"`
	Trophies        int    `json:"trophies"`
	HighestTrophies int    `json:"highestTrophies"`
	Gadgets         int    `json:"gadgets"`
	StarPowers      int    `json:"starPowers"`
	Gears           int    `json:"gears"`
}

// PlayerProfile is the upstream per-player profile.
type PlayerProfile struct {
	Tag             Tag             `json:"tag"`
	Name            string          `json:"name"`
	Trophies        int             `json:"trophies"`
	HighestTrophies int             `json:"highest_trophies"`
	ExpLevel        int             `json:"exp_level"`
	TrioVictories   int             `json:"trio_victories"`
	SoloVictories   int             `json:"solo_victories"`
	DuoVictories    int             `json:"duo_victories"`
	Brawlers        []PlayerBrawler `json:"brawlers"`
}

// RankedInfo carries the derived ranked labels for a player.
type RankedInfo struct {
	CurrentRank  string `json:"current_rank"`
	HighestRank  string `json:"highest_rank"`
	CurrentScore int    `json:"current_score"`
	HighestScore int    `json:"highest_score"`
}

// MembershipEvent is one reconciliation outcome to be recorded and announced.
type MembershipEvent struct {
	Type      EventType `json:"type"`
	Tag       Tag       `json:"tag"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ClubEventMessage is the wire format published to the CLUB_EVENTS stream.
// EventID is a ULID so consumers can order and deduplicate deliveries.
type ClubEventMessage struct {
	EventID   string    `json:"event_id"`
	Type      EventType `json:"type"`
	Tag       Tag       `json:"tag"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// SyncSettings is the per-run configuration loaded from the settings table.
type SyncSettings struct {
	ClubTag              Tag
	APIKey               string
	WebhookURL           string
	NotificationsEnabled bool
	InactivityThreshold  time.Duration
	RequiredTrophies     int
}
