package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/leaguebudget/internal/domain"
)

// BudgetSources groups the upstream collaborators of a budget pass.
type BudgetSources struct {
	Activities ActivitySource
	Rewards    RewardResolver
	Managers   ManagerDirectory
	Account    AccountSource
	Ranking    RankingSource
}

// BudgetMetrics records the outcome of budget passes.
type BudgetMetrics interface {
	ObserveBudgetRun(outcome string, duration time.Duration)
	CountWarning(stage string)
}

// BudgetUseCase reconstructs every manager's budget from the activity ledger.
type BudgetUseCase struct {
	sources   BudgetSources
	profiles  LeagueProfiles
	allocator Allocator
	idGen     IDGenerator
	clock     Clock
	metrics   BudgetMetrics
	logger    zerolog.Logger
}

// NewBudgetUseCase creates a new BudgetUseCase.
func NewBudgetUseCase(
	sources BudgetSources,
	profiles LeagueProfiles,
	allocator Allocator,
	idGen IDGenerator,
	clock Clock,
	metrics BudgetMetrics,
	logger zerolog.Logger,
) *BudgetUseCase {
	if allocator == nil {
		allocator = AllocateByPoints
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &BudgetUseCase{
		sources:   sources,
		profiles:  profiles,
		allocator: allocator,
		idGen:     idGen,
		clock:     clock,
		metrics:   metrics,
		logger:    logger,
	}
}

// CalculateBudgetsInput represents input for a budget pass.
type CalculateBudgetsInput struct {
	LeagueID    string
	Since       time.Time
	StartBudget decimal.Decimal
}

// BudgetReport is the result of one budget pass.
type BudgetReport struct {
	RunID    string
	LeagueID string
	Rows     []domain.BudgetRow
	Warnings []domain.Warning
	// Anchor is the authenticated user the achievement bonus is scaled against.
	Anchor string
	// AnchorEstimate is the replayed budget of the anchor before it was
	// replaced by the authoritative value.
	AnchorEstimate decimal.NullDecimal
	Reconciled     bool
	GeneratedAt    time.Time
}

// CalculateForLeague runs a budget pass with the start budget and season
// start configured for the league.
func (uc *BudgetUseCase) CalculateForLeague(ctx context.Context, leagueID string) (*BudgetReport, error) {
	if leagueID == "" {
		return nil, domain.ErrInvalidLeagueID
	}

	profile, err := uc.profiles.Get(leagueID)
	if err != nil {
		return nil, err
	}

	return uc.CalculateBudgets(ctx, CalculateBudgetsInput{
		LeagueID:    leagueID,
		Since:       profile.SeasonStart,
		StartBudget: profile.StartBudget,
	})
}

// CalculateBudgets runs one budget pass for a league.
func (uc *BudgetUseCase) CalculateBudgets(ctx context.Context, input CalculateBudgetsInput) (*BudgetReport, error) {
	if input.LeagueID == "" {
		return nil, domain.ErrInvalidLeagueID
	}

	start := uc.clock.Now()
	report, err := uc.calculate(ctx, input)

	outcome := "success"
	switch {
	case domain.IsSchemaError(err):
		outcome = "schema_error"
	case err != nil:
		outcome = "error"
	case len(report.Warnings) > 0:
		outcome = "degraded"
	}
	if uc.metrics != nil {
		uc.metrics.ObserveBudgetRun(outcome, uc.clock.Now().Sub(start))
	}

	return report, err
}

func (uc *BudgetUseCase) calculate(ctx context.Context, input CalculateBudgetsInput) (*BudgetReport, error) {
	log := uc.logger.With().Str("league_id", input.LeagueID).Logger()

	batch, err := uc.sources.Activities.FetchActivities(ctx, input.LeagueID, input.Since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}
	if batch == nil {
		batch = &domain.ActivityBatch{}
	}

	schema, err := ResolveSchema(batch.Activities)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Strs("fields", domain.FieldNames(batch.Activities)).
		Str("buyer", schema.Buyer).
		Str("seller", schema.Seller).
		Str("price", schema.Price).
		Int("activities", len(batch.Activities)).
		Msg("resolved activity schema")

	report := &BudgetReport{
		RunID:    uc.idGen.Generate(),
		LeagueID: input.LeagueID,
	}

	loginBonus := SumLoginBonus(batch.LoginBonuses)
	achievementBonus, warnings := SumAchievementBonus(ctx, uc.sources.Rewards, input.LeagueID, batch.AchievementBonuses)
	report.Warnings = append(report.Warnings, warnings...)

	performance, warnings := JoinPerformance(ctx, uc.sources.Managers, input.LeagueID)
	report.Warnings = append(report.Warnings, warnings...)

	users := schema.Users(batch.Activities)
	budgets := Replay(schema, batch.Activities, users, input.StartBudget)

	rows := make([]domain.BudgetRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, domain.BudgetRow{
			User:      u,
			Budget:    budgets[u].Add(performance.PointBonus(u)).Add(loginBonus),
			TeamValue: performance.TeamValue(u),
		})
	}

	anchor, err := uc.sources.Account.FetchOwnUsername(ctx)
	if err != nil {
		anchor = ""
		report.Warnings = append(report.Warnings, domain.Warning{
			Stage:   domain.StageReconcile,
			Subject: "username",
			Reason:  err.Error(),
		})
	}
	report.Anchor = anchor

	ranking, err := uc.sources.Ranking.FetchLeagueRanking(ctx, input.LeagueID)
	if err != nil {
		ranking = nil
		report.Warnings = append(report.Warnings, domain.Warning{
			Stage:   domain.StageRanking,
			Subject: input.LeagueID,
			Reason:  err.Error(),
		})
	}

	for i := range rows {
		rows[i].Budget = rows[i].Budget.Add(uc.allocator(ranking, anchor, rows[i].User, achievementBonus))
	}

	if anchor != "" {
		if w := uc.reconcileOwnBudget(ctx, input.LeagueID, anchor, rows, report); w != nil {
			report.Warnings = append(report.Warnings, *w)
		}
	}

	for i := range rows {
		rows[i].ApplyAvailability()
	}
	domain.SortByAvailable(rows)

	report.Rows = rows
	report.GeneratedAt = uc.clock.Now().UTC()

	for _, w := range report.Warnings {
		log.Warn().Str("stage", w.Stage).Str("subject", w.Subject).Str("reason", w.Reason).Msg("budget pass degraded")
		if uc.metrics != nil {
			uc.metrics.CountWarning(w.Stage)
		}
	}
	log.Info().
		Str("run_id", report.RunID).
		Int("users", len(rows)).
		Str("login_bonus", loginBonus.String()).
		Str("achievement_bonus", achievementBonus.String()).
		Bool("reconciled", report.Reconciled).
		Msg("budget pass completed")

	return report, nil
}

// reconcileOwnBudget replaces the anchor's computed budget with the value the
// league reports. The replaced estimate is kept on the report.
func (uc *BudgetUseCase) reconcileOwnBudget(
	ctx context.Context,
	leagueID, anchor string,
	rows []domain.BudgetRow,
	report *BudgetReport,
) *domain.Warning {
	own, err := uc.sources.Account.FetchOwnBudget(ctx, leagueID)
	if err != nil {
		return &domain.Warning{Stage: domain.StageReconcile, Subject: anchor, Reason: err.Error()}
	}

	for i := range rows {
		if rows[i].User != anchor {
			continue
		}
		report.AnchorEstimate = decimal.NewNullDecimal(rows[i].Budget)
		rows[i].Budget = own
		report.Reconciled = true
	}
	return nil
}
