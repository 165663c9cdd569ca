package manager

import (
	"fmt"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"

	"github.com/trustmesh/reputation/model/market"
	"github.com/trustmesh/reputation/module"
	"github.com/trustmesh/reputation/module/metrics"
	"github.com/trustmesh/reputation/reputation"
	"github.com/trustmesh/reputation/reputation/internal"
)

// ReputationManager is the marketplace reputation engine. It owns the record
// store and drives the full update pipeline for every submitted event:
// authorize, load or lazily create the record, consume pending inactivity
// decay, apply the event delta and counter, evaluate the ban threshold,
// persist, and notify. Administrative ban and unban bypass the event pipeline
// but share the same record store and notification contract.
//
// Every mutating operation is atomic per account: concurrent readers never
// observe a record mid-update.
type ReputationManager struct {
	logger     zerolog.Logger
	metrics    module.ReputationMetrics
	cache      reputation.RecordCache
	authorizer reputation.Authorizer
	consumer   reputation.Consumer
	clock      clock.Clock
	params     reputation.Params
}

// ManagerConfig is the configuration of a ReputationManager.
type ManagerConfig struct {
	Logger zerolog.Logger
	// Metrics is the metrics instance for the reputation engine.
	Metrics module.ReputationMetrics
	// Authorizer is the external capability check consulted before any
	// mutating operation.
	Authorizer reputation.Authorizer
	// Consumer receives the engine's notifications, typically a distributor
	// fanning out to the host's subscribers.
	Consumer reputation.Consumer
	// Clock is the time source for decay anchors. Defaults to the wall clock;
	// tests inject a mock.
	Clock clock.Clock
	// Params is the read-only scoring configuration.
	Params reputation.Params
}

// NewReputationManager creates a new ReputationManager.
// It returns an error if the configuration is invalid: a missing authorizer,
// missing consumer, or unusable scoring parameters. Construction is the only
// place configuration is validated; operations never fail on configuration.
func NewReputationManager(cfg *ManagerConfig) (*ReputationManager, error) {
	var result *multierror.Error
	if cfg.Authorizer == nil {
		result = multierror.Append(result, fmt.Errorf("authorizer is required"))
	}
	if cfg.Consumer == nil {
		result = multierror.Append(result, fmt.Errorf("notification consumer is required"))
	}
	if err := cfg.Params.Validate(); err != nil {
		result = multierror.Append(result, fmt.Errorf("invalid scoring params: %w", err))
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("could not create reputation manager: %w", err)
	}

	collector := cfg.Metrics
	if collector == nil {
		collector = metrics.NewNoopCollector()
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	params := cfg.Params
	cache := internal.NewRecordCache(cfg.Logger, func(account market.Address) *market.ReputationRecord {
		return market.NewReputationRecord(account, params.InitialScore)
	})

	return &ReputationManager{
		logger:     cfg.Logger.With().Str("component", "reputation_manager").Logger(),
		metrics:    collector,
		cache:      cache,
		authorizer: cfg.Authorizer,
		consumer:   cfg.Consumer,
		clock:      clk,
		params:     params,
	}, nil
}

// Params returns the engine's read-only scoring configuration.
func (m *ReputationManager) Params() reputation.Params {
	return m.params
}

// SubmitEvent applies a reputation event to an account and returns the new
// stored score.
// Error returns:
//   - reputation.ErrInvalidAddress if the account is the zero address.
//   - reputation.ErrInvalidEvent if the event kind is unknown.
//   - reputation.UnauthorizedError if the caller may not submit events.
func (m *ReputationManager) SubmitEvent(caller, account market.Address, kind market.EventKind) (int64, error) {
	if account.IsEmpty() {
		return 0, reputation.ErrInvalidAddress
	}
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: %d", reputation.ErrInvalidEvent, kind)
	}
	if !m.authorizer.CanSubmitEvents(caller) {
		return 0, reputation.NewUnauthorizedErr(caller, "update")
	}

	now := m.clock.Now()

	var outcome reputation.UpdateOutcome
	record, err := m.cache.AdjustWithInit(account, func(rec *market.ReputationRecord) (*market.ReputationRecord, error) {
		outcome = reputation.ApplyEvent(rec, kind, now, m.params)
		if outcome.CrossedBanThreshold {
			rec.Banned = true
		}
		return rec, nil
	})
	if err != nil {
		// the adjust function never fails; any error here indicates a bug
		return 0, fmt.Errorf("could not apply reputation event: %w", err)
	}

	m.metrics.OnReputationEventProcessed(kind.String())
	if outcome.PeriodsDecayed > 0 {
		m.metrics.OnDecayPeriodsApplied(uint64(outcome.PeriodsDecayed))
	}

	m.logger.Debug().
		Str("account", account.String()).
		Str("event_type", kind.String()).
		Int64("delta", outcome.Delta).
		Int64("decay", outcome.DecayApplied).
		Int64("new_score", outcome.NewScore).
		Msg("reputation event applied")

	if outcome.CrossedBanThreshold {
		m.logger.Info().
			Str("account", account.String()).
			Int64("score", outcome.NewScore).
			Int64("threshold", m.params.BanThreshold).
			Msg("account auto-banned on threshold breach")
		m.metrics.OnAccountAutoBanned()
		m.consumer.OnUserBanned(market.UserBanned{
			ID:      uuid.New(),
			Account: account,
			Reason:  reputation.AutoBanReason,
			Actor:   market.EmptyAddress,
		})
	}

	m.consumer.OnReputationChanged(market.ReputationChanged{
		ID:       uuid.New(),
		Account:  account,
		Kind:     kind,
		Delta:    outcome.Delta,
		NewScore: record.Score,
	})

	return record.Score, nil
}

// BanUser administratively bans an account. The ban flips the ban flag only:
// score, counters and the decay anchor are untouched.
// Error returns:
//   - reputation.ErrInvalidAddress if the account is the zero address.
//   - reputation.ErrEmptyReason if no reason is supplied.
//   - reputation.UnauthorizedError if the caller is not an administrator.
//   - reputation.ErrAlreadyBanned if the account is already banned.
func (m *ReputationManager) BanUser(caller, account market.Address, reason string) error {
	if account.IsEmpty() {
		return reputation.ErrInvalidAddress
	}
	if reason == "" {
		return reputation.ErrEmptyReason
	}
	if !m.authorizer.IsAdmin(caller) {
		return reputation.NewUnauthorizedErr(caller, "admin")
	}

	_, err := m.cache.AdjustWithInit(account, func(rec *market.ReputationRecord) (*market.ReputationRecord, error) {
		if rec.Banned {
			return nil, reputation.ErrAlreadyBanned
		}
		rec.Banned = true
		return rec, nil
	})
	if err != nil {
		// wraps reputation.ErrAlreadyBanned when the guard rejected the ban
		return fmt.Errorf("could not ban account %s: %w", account, err)
	}

	m.logger.Info().
		Str("account", account.String()).
		Str("actor", caller.String()).
		Str("reason", reason).
		Msg("account banned by administrator")
	m.metrics.OnAccountAdminBanned()
	m.consumer.OnUserBanned(market.UserBanned{
		ID:      uuid.New(),
		Account: account,
		Reason:  reason,
		Actor:   caller,
	})

	return nil
}

// UnbanUser lifts an account's ban. Only the ban flag is cleared: score and
// counters are untouched, and the account is not re-banned automatically even
// if its score is still below the ban threshold.
// Error returns:
//   - reputation.ErrInvalidAddress if the account is the zero address.
//   - reputation.UnauthorizedError if the caller is not an administrator.
//   - reputation.ErrNotBanned if the account is not banned.
func (m *ReputationManager) UnbanUser(caller, account market.Address) error {
	if account.IsEmpty() {
		return reputation.ErrInvalidAddress
	}
	if !m.authorizer.IsAdmin(caller) {
		return reputation.NewUnauthorizedErr(caller, "admin")
	}

	_, err := m.cache.AdjustWithInit(account, func(rec *market.ReputationRecord) (*market.ReputationRecord, error) {
		if !rec.Banned {
			return nil, reputation.ErrNotBanned
		}
		rec.Banned = false
		return rec, nil
	})
	if err != nil {
		// wraps reputation.ErrNotBanned when the guard rejected the unban
		return fmt.Errorf("could not unban account %s: %w", account, err)
	}

	m.logger.Info().
		Str("account", account.String()).
		Str("actor", caller.String()).
		Msg("account ban lifted by administrator")
	m.metrics.OnAccountUnbanned()
	m.consumer.OnUserUnbanned(market.UserUnbanned{
		ID:      uuid.New(),
		Account: account,
		Actor:   caller,
	})

	return nil
}

// GetReputation returns a snapshot of the account's record with pending decay
// folded into the score. Reads never mutate state: a never-seen account
// yields the default record without creating one.
func (m *ReputationManager) GetReputation(account market.Address) (*market.ReputationRecord, error) {
	rec, err := m.snapshot(account)
	if err != nil {
		return nil, err
	}
	rec.Score = reputation.CurrentScore(rec, m.clock.Now(), m.params)
	return rec, nil
}

// GetReputationScore returns the account's decay-adjusted score as of now.
func (m *ReputationManager) GetReputationScore(account market.Address) (int64, error) {
	rec, err := m.snapshot(account)
	if err != nil {
		return 0, err
	}
	return reputation.CurrentScore(rec, m.clock.Now(), m.params), nil
}

// GetUserStats returns the account's raw counters, unmodified by decay.
func (m *ReputationManager) GetUserStats(account market.Address) (market.UserStats, error) {
	rec, err := m.snapshot(account)
	if err != nil {
		return market.UserStats{}, err
	}
	return rec.Stats(), nil
}

// GetSuccessRate returns the account's transaction success rate in basis
// points (0-10000). A never-transacted account is fully successful by
// convention.
func (m *ReputationManager) GetSuccessRate(account market.Address) (uint64, error) {
	rec, err := m.snapshot(account)
	if err != nil {
		return 0, err
	}
	return reputation.SuccessRate(rec), nil
}

// IsGoodStanding returns true if the account's decay-adjusted score meets the
// good-standing minimum and the account is not banned.
func (m *ReputationManager) IsGoodStanding(account market.Address) (bool, error) {
	rec, err := m.snapshot(account)
	if err != nil {
		return false, err
	}
	return reputation.IsGoodStanding(rec, m.clock.Now(), m.params), nil
}

// IsBanned returns true if the account is currently banned.
func (m *ReputationManager) IsBanned(account market.Address) (bool, error) {
	rec, err := m.snapshot(account)
	if err != nil {
		return false, err
	}
	return rec.Banned, nil
}

// snapshot returns a copy of the account's record, or the default record if
// the account has never been seen. It never inserts.
func (m *ReputationManager) snapshot(account market.Address) (*market.ReputationRecord, error) {
	if account.IsEmpty() {
		return nil, reputation.ErrInvalidAddress
	}
	rec, ok := m.cache.Get(account)
	if !ok {
		return market.NewReputationRecord(account, m.params.InitialScore), nil
	}
	return rec, nil
}
