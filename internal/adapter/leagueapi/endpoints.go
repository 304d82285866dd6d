package leagueapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/leaguebudget/internal/domain"
)

// Activity feed event types.
const (
	ActivityTransfer    = 15
	ActivityLoginBonus  = 22
	ActivityAchievement = 26
)

// FeedPageSize is the number of feed items requested per page.
const FeedPageSize = 100

type object = map[string]any

type feedItem struct {
	Type json.Number `json:"t"`
	Date string      `json:"dt"`
	Data object      `json:"data"`
}

type feedPage struct {
	Items []feedItem `json:"af"`
}

// FetchActivities pages through the activity feed back to since and splits it
// into transfers, login bonuses and achievement bonuses.
// GET /v4/leagues/{league}/activitiesFeed?start={n}&max={m}
func (c *Client) FetchActivities(ctx context.Context, leagueID string, since time.Time) (*domain.ActivityBatch, error) {
	batch := &domain.ActivityBatch{}

	for start := 0; ; start += FeedPageSize {
		query := url.Values{}
		query.Set("start", strconv.Itoa(start))
		query.Set("max", strconv.Itoa(FeedPageSize))

		var page feedPage
		if err := c.getJSON(ctx, "activities", leaguePath(leagueID, "activitiesFeed"), query, &page); err != nil {
			return nil, err
		}

		reachedSince := false
		for _, item := range page.Items {
			if at, ok := parseTime(item.Date); ok && !since.IsZero() && at.Before(since) {
				reachedSince = true
				continue
			}
			classify(batch, item)
		}

		if reachedSince || len(page.Items) < FeedPageSize {
			break
		}
	}

	c.logger.Debug().
		Str("league_id", leagueID).
		Int("transfers", len(batch.Activities)).
		Int("login_bonuses", len(batch.LoginBonuses)).
		Int("achievement_bonuses", len(batch.AchievementBonuses)).
		Msg("fetched activity feed")

	return batch, nil
}

func classify(batch *domain.ActivityBatch, item feedItem) {
	typ, err := item.Type.Int64()
	if err != nil {
		return
	}

	data := domain.NewRecord(item.Data)
	switch typ {
	case ActivityTransfer:
		if data.Fields == nil {
			data.Fields = object{}
		}
		batch.Activities = append(batch.Activities, data)
	case ActivityLoginBonus:
		ev := domain.BonusEvent{Kind: domain.BonusKindLogin}
		if bn, ok := data.Decimal("bn"); ok {
			ev = domain.LoginBonus(bn)
		}
		batch.LoginBonuses = append(batch.LoginBonuses, ev)
	case ActivityAchievement:
		typeID, _ := data.String("t")
		batch.AchievementBonuses = append(batch.AchievementBonuses, domain.AchievementBonus(typeID))
	}
}

func parseTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	return t, err == nil
}

// ResolveAchievementReward returns how often an achievement was reached and
// the reward paid per occurrence.
// GET /v4/leagues/{league}/user/achievements/{type}
func (c *Client) ResolveAchievementReward(ctx context.Context, leagueID, achievementType string) (decimal.Decimal, decimal.Decimal, error) {
	var body object
	path := leaguePath(leagueID, "user", "achievements", url.PathEscape(achievementType))
	if err := c.getJSON(ctx, "achievement", path, nil, &body); err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	rec := domain.NewRecord(body)
	amount, ok := rec.Decimal("ac")
	if !ok {
		return decimal.Zero, decimal.Zero, fmt.Errorf("achievement %s: missing amount", achievementType)
	}
	reward, ok := rec.Decimal("er")
	if !ok {
		return decimal.Zero, decimal.Zero, fmt.Errorf("achievement %s: missing reward", achievementType)
	}
	return amount, reward, nil
}

type rankingUser struct {
	ID     any         `json:"i"`
	Name   string      `json:"n"`
	Points json.Number `json:"sp"`
	Place  json.Number `json:"spl"`
}

type rankingResponse struct {
	Users []rankingUser `json:"us"`
}

func (c *Client) ranking(ctx context.Context, leagueID string) ([]rankingUser, error) {
	var body rankingResponse
	if err := c.getJSON(ctx, "ranking", leaguePath(leagueID, "ranking"), nil, &body); err != nil {
		return nil, err
	}

	users := body.Users
	sort.SliceStable(users, func(i, j int) bool {
		return placeLess(users[i].Place, users[j].Place)
	})
	return users, nil
}

// placeLess orders by place, putting users without a parsable place last in
// upstream order.
func placeLess(a, b json.Number) bool {
	pa, errA := a.Int64()
	pb, errB := b.Int64()
	switch {
	case errA != nil:
		return false
	case errB != nil:
		return true
	default:
		return pa < pb
	}
}

// FetchLeagueRanking returns the league ranking, best first.
// GET /v4/leagues/{league}/ranking
func (c *Client) FetchLeagueRanking(ctx context.Context, leagueID string) ([]domain.RankingEntry, error) {
	users, err := c.ranking(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.RankingEntry, 0, len(users))
	for _, u := range users {
		points, _ := domain.ToDecimal(u.Points)
		entries = append(entries, domain.RankingEntry{Name: u.Name, TotalPoints: points})
	}
	return entries, nil
}

// ListManagers returns the league members.
func (c *Client) ListManagers(ctx context.Context, leagueID string) ([]domain.Manager, error) {
	users, err := c.ranking(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	managers := make([]domain.Manager, 0, len(users))
	for _, u := range users {
		managers = append(managers, domain.Manager{Name: u.Name, ID: idString(u.ID)})
	}
	return managers, nil
}

// FetchManagerInfo returns the manager dashboard.
// GET /v4/leagues/{league}/managers/{manager}/dashboard
func (c *Client) FetchManagerInfo(ctx context.Context, leagueID, managerID string) (*domain.ManagerInfo, error) {
	var body object
	path := leaguePath(leagueID, "managers", url.PathEscape(managerID), "dashboard")
	if err := c.getJSON(ctx, "dashboard", path, nil, &body); err != nil {
		return nil, err
	}

	info := &domain.ManagerInfo{}
	if tv, ok := domain.NewRecord(body).Decimal("tv"); ok {
		info.TeamValue = decimal.NewNullDecimal(tv)
	}
	return info, nil
}

// FetchManagerPerformance returns the manager's points of the current season,
// which is the last entry of the season list.
// GET /v4/leagues/{league}/managers/{manager}/performance
func (c *Client) FetchManagerPerformance(ctx context.Context, leagueID, managerID, name string) (*domain.ManagerPerformance, error) {
	var body struct {
		Seasons []object `json:"it"`
		Points  any      `json:"tp"`
	}
	path := leaguePath(leagueID, "managers", url.PathEscape(managerID), "performance")
	if err := c.getJSON(ctx, "performance", path, nil, &body); err != nil {
		return nil, err
	}

	perf := &domain.ManagerPerformance{Name: name}
	if n := len(body.Seasons); n > 0 {
		if tp, ok := domain.NewRecord(body.Seasons[n-1]).Decimal("tp"); ok {
			perf.TotalPoints = decimal.NewNullDecimal(tp)
		}
	} else if tp, ok := domain.ToDecimal(body.Points); ok {
		perf.TotalPoints = decimal.NewNullDecimal(tp)
	}
	return perf, nil
}

// FetchOwnBudget returns the authenticated user's budget.
// GET /v4/leagues/{league}/me/budget
func (c *Client) FetchOwnBudget(ctx context.Context, leagueID string) (decimal.Decimal, error) {
	var body object
	if err := c.getJSON(ctx, "budget", leaguePath(leagueID, "me", "budget"), nil, &body); err != nil {
		return decimal.Zero, err
	}

	b, ok := domain.NewRecord(body).Decimal("b")
	if !ok {
		return decimal.Zero, fmt.Errorf("league api budget: missing budget")
	}
	return b, nil
}

// FetchOwnUsername returns the authenticated user's display name.
// GET /v4/user/settings
func (c *Client) FetchOwnUsername(ctx context.Context) (string, error) {
	var body struct {
		User object `json:"u"`
	}
	if err := c.getJSON(ctx, "settings", "/v4/user/settings", nil, &body); err != nil {
		return "", err
	}

	rec := domain.NewRecord(body.User)
	for _, field := range []string{"unm", "n"} {
		if name, ok := rec.String(field); ok {
			return name, nil
		}
	}
	return "", fmt.Errorf("league api settings: missing username")
}

// FetchSquad returns the players the user owns. A missing or empty envelope
// yields no players.
// GET /v4/leagues/{league}/squad
func (c *Client) FetchSquad(ctx context.Context, leagueID string) ([]domain.Listing, error) {
	var body struct {
		Items []object `json:"it"`
	}
	if err := c.getJSON(ctx, "squad", leaguePath(leagueID, "squad"), nil, &body); err != nil {
		return nil, err
	}
	return toListings(body.Items), nil
}

// FetchMarketListings returns the players currently on the transfer market,
// keyed by "id" with the seconds to expiry in "exp".
// GET /v4/leagues/{league}/market
func (c *Client) FetchMarketListings(ctx context.Context, leagueID string) ([]domain.Listing, error) {
	var body struct {
		Items []object `json:"it"`
	}
	if err := c.getJSON(ctx, "market", leaguePath(leagueID, "market"), nil, &body); err != nil {
		return nil, err
	}

	listings := toListings(body.Items)
	for _, l := range listings {
		if !l.Has("id") && l.Has("i") {
			l.Fields["id"] = l.Fields["i"]
		}
	}
	return listings, nil
}

func idString(v any) string {
	id, _ := domain.NewRecord(object{"i": v}).String("i")
	return id
}

func toListings(items []object) []domain.Listing {
	listings := make([]domain.Listing, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		listings = append(listings, domain.NewRecord(item))
	}
	return listings
}
