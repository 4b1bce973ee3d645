package brawlstars

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"github.com/brawldash/club-sync/internal/adapter"
	"github.com/brawldash/club-sync/internal/domain"
)

// rate-limit retry schedule: 1s then 2s, no jitter
const (
	retryInitialInterval = time.Second
	maxRetries           = 2
)

// BattlePlayer is one participant entry inside a raw battle-log item
type BattlePlayer struct {
	Tag     string `json:"tag"`
	Name    string `json:"name"`
	Brawler struct {
		ID       int    `json:"id"`
		Name     string `json:"name"`
		Power    int    `json:"power"`
		Trophies int    `json:"trophies"`
	} `json:"brawler"`
}

// RawBattle is one battle-log item exactly as the upstream returns it.
// BattleTime is the positional (non-ISO) timestamp string; decode it with
// DecodeBattleTime before use.
type RawBattle struct {
	BattleTime string `json:"battleTime"`
	Event      struct {
		ID   int    `json:"id"`
		Mode string `json:"mode"`
		Map  string `json:"map"`
	} `json:"event"`
	Battle struct {
		Mode         string         `json:"mode"`
		Type         string         `json:"type"`
		Result       string         `json:"result"`
		Rank         int            `json:"rank"`
		TrophyChange int            `json:"trophyChange"`
		StarPlayer   *BattlePlayer  `json:"starPlayer"`
		Teams        [][]BattlePlayer `json:"teams"`
		Players      []BattlePlayer `json:"players"`
	} `json:"battle"`
}

type rawBattleList struct {
	Items []RawBattle `json:"items"`
}

type rawClubMember struct {
	Tag      string `json:"tag"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Trophies int    `json:"trophies"`
	Icon     struct {
		ID int `json:"id"`
	} `json:"icon"`
}

type rawClub struct {
	Tag              string          `json:"tag"`
	Name             string          `json:"name"`
	Trophies         int             `json:"trophies"`
	RequiredTrophies int             `json:"requiredTrophies"`
	Members          []rawClubMember `json:"members"`
}

type rawBrawler struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Power           int    `json:"power"`
	Rank            int    `json:"rank"`
	Trophies        int    `json:"trophies"`
	HighestTrophies int    `json:"highestTrophies"`
	Gadgets         []struct {
		ID int `json:"id"`
	} `json:"gadgets"`
	StarPowers []struct {
		ID int `json:"id"`
	} `json:"starPowers"`
	Gears []struct {
		ID int `json:"id"`
	} `json:"gears"`
}

type rawPlayer struct {
	Tag             string       `json:"tag"`
	Name            string       `json:"name"`
	Trophies        int          `json:"trophies"`
	HighestTrophies int          `json:"highestTrophies"`
	ExpLevel        int          `json:"expLevel"`
	TrioVictories   int          `json:"3vs3Victories"`
	SoloVictories   int          `json:"soloVictories"`
	DuoVictories    int          `json:"duoVictories"`
	Brawlers        []rawBrawler `json:"brawlers"`
}

type rawRankedStats struct {
	CurrentPoints int `json:"currentRankedPoints"`
	HighestPoints int `json:"highestRankedPoints"`
}

// Client defines the interface for upstream game API operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../../mocks/brawlstars_client.go -package=mocks -mock_names=Client=MockBrawlStarsClient
type Client interface {
	// FetchClub fetches the club roster
	FetchClub(ctx context.Context, tag domain.Tag) (*domain.ClubRoster, error)

	// FetchPlayer fetches one player's profile
	FetchPlayer(ctx context.Context, tag domain.Tag) (*domain.PlayerProfile, error)

	// FetchBattleLog fetches one player's recent battles. A private or brand
	// new account (upstream 404) returns an empty slice, not an error.
	FetchBattleLog(ctx context.Context, tag domain.Tag) ([]RawBattle, error)

	// FetchRankedInfo fetches one player's ranked points and derives the
	// current/highest tier labels
	FetchRankedInfo(ctx context.Context, tag domain.Tag) (*domain.RankedInfo, error)
}

// BSClient implements Client against the official HTTP API
type BSClient struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

// NewClient creates a new upstream API client. The API key is bound at
// construction so a rotated key takes effect on the next sync run.
func NewClient(httpClient adapter.HTTPClient, json adapter.JSON, baseURL string, apiKey string, requestsPerSecond float64) Client {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 10
	}
	return &BSClient{
		httpClient: httpClient,
		json:       json,
		baseURL:    baseURL,
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// get performs one authorized GET with bounded retry on rate limiting.
// 403 and 404 surface as domain.ErrForbidden / domain.ErrNotFound.
func (c *BSClient) get(ctx context.Context, path string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := c.baseURL + path
	headers := map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}

	var respBody []byte
	operation := func() error {
		body, err := c.httpClient.GetBytes(ctx, url, headers)
		if err != nil {
			var statusErr *adapter.HTTPStatusError
			if errors.As(err, &statusErr) {
				switch statusErr.StatusCode {
				case http.StatusTooManyRequests:
					return fmt.Errorf("%w: %s", domain.ErrRateLimited, url)
				case http.StatusForbidden:
					return backoff.Permanent(fmt.Errorf("%w: verify the API key is valid and this host's IP is allowlisted", domain.ErrForbidden))
				case http.StatusNotFound:
					return backoff.Permanent(fmt.Errorf("%w: %s", domain.ErrNotFound, url))
				}
				return backoff.Permanent(err)
			}
			// Network-level failures are retried on the same schedule.
			return err
		}
		respBody = body
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = retryInitialInterval
	b.Multiplier = 2
	b.RandomizationFactor = 0

	if err := backoff.Retry(operation, backoff.WithMaxRetries(backoff.WithContext(b, ctx), maxRetries)); err != nil {
		return nil, err
	}

	return respBody, nil
}

// FetchClub fetches the club roster
func (c *BSClient) FetchClub(ctx context.Context, tag domain.Tag) (*domain.ClubRoster, error) {
	respBody, err := c.get(ctx, "/clubs/"+tag.APIPath())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch club %s: %w", tag, err)
	}

	var raw rawClub
	if err := c.json.Unmarshal(respBody, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal club response: %w", err)
	}

	roster := &domain.ClubRoster{
		Tag:              domain.NormalizeTag(raw.Tag),
		Name:             raw.Name,
		Trophies:         raw.Trophies,
		RequiredTrophies: raw.RequiredTrophies,
		Members:          make([]domain.RosterMember, 0, len(raw.Members)),
	}
	for _, m := range raw.Members {
		roster.Members = append(roster.Members, domain.RosterMember{
			Tag:      domain.NormalizeTag(m.Tag),
			Name:     m.Name,
			Role:     m.Role,
			Trophies: m.Trophies,
			Icon:     m.Icon.ID,
		})
	}

	return roster, nil
}

// FetchPlayer fetches one player's profile
func (c *BSClient) FetchPlayer(ctx context.Context, tag domain.Tag) (*domain.PlayerProfile, error) {
	respBody, err := c.get(ctx, "/players/"+tag.APIPath())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch player %s: %w", tag, err)
	}

	var raw rawPlayer
	if err := c.json.Unmarshal(respBody, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player response: %w", err)
	}

	profile := &domain.PlayerProfile{
		Tag:             domain.NormalizeTag(raw.Tag),
		Name:            raw.Name,
		Trophies:        raw.Trophies,
		HighestTrophies: raw.HighestTrophies,
		ExpLevel:        raw.ExpLevel,
		TrioVictories:   raw.TrioVictories,
		SoloVictories:   raw.SoloVictories,
		DuoVictories:    raw.DuoVictories,
		Brawlers:        make([]domain.PlayerBrawler, 0, len(raw.Brawlers)),
	}
	for _, b := range raw.Brawlers {
		profile.Brawlers = append(profile.Brawlers, domain.PlayerBrawler{
			ID:              b.ID,
			Name:            b.Name,
			Power:           b.Power,
			Rank:            b.Rank,
			Trophies:        b.Trophies,
			HighestTrophies: b.HighestTrophies,
			Gadgets:         len(b.Gadgets),
			StarPowers:      len(b.StarPowers),
			Gears:           len(b.Gears),
		})
	}

	return profile, nil
}

// FetchBattleLog fetches one player's recent battles
func (c *BSClient) FetchBattleLog(ctx context.Context, tag domain.Tag) ([]RawBattle, error) {
	respBody, err := c.get(ctx, "/players/"+tag.APIPath()+"/battlelog")
	if err != nil {
		// Private or brand new accounts have no visible battle log.
		if errors.Is(err, domain.ErrNotFound) {
			return []RawBattle{}, nil
		}
		return nil, fmt.Errorf("failed to fetch battle log %s: %w", tag, err)
	}

	var raw rawBattleList
	if err := c.json.Unmarshal(respBody, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal battle log response: %w", err)
	}

	return raw.Items, nil
}

// FetchRankedInfo fetches one player's ranked points and derives tier labels
func (c *BSClient) FetchRankedInfo(ctx context.Context, tag domain.Tag) (*domain.RankedInfo, error) {
	respBody, err := c.get(ctx, "/players/"+tag.APIPath()+"/ranked")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ranked info %s: %w", tag, err)
	}

	var raw rawRankedStats
	if err := c.json.Unmarshal(respBody, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ranked response: %w", err)
	}

	return &domain.RankedInfo{
		CurrentRank:  domain.RankLabelForScore(raw.CurrentPoints),
		HighestRank:  domain.RankLabelForScore(raw.HighestPoints),
		CurrentScore: raw.CurrentPoints,
		HighestScore: raw.HighestPoints,
	}, nil
}
