package reputation

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/trustmesh/reputation/model/market"
)

// To give a summary with the default values:
//  1. A never-seen account starts at a score of 100 and is in good standing.
//  2. Marketplace events move the score by fixed point deltas; the score is
//     unbounded in both directions. Crossing the ban threshold of -100 during
//     an update bans the account as a side effect, it never clamps the score.
//  3. An inactive account loses 1 point per full 30 days of inactivity. Decay
//     is reconstructed lazily from the last-activity anchor; there is no
//     background job, and a partially elapsed period is never charged.
//  4. Five lost disputes from the initial score are enough to cross the ban
//     threshold, while fraud does it in exactly two detections.
const (
	// DefaultInitialScore is the score of an account that has never been seen.
	DefaultInitialScore = 100

	// DefaultBanThreshold is the score at or below which an account is
	// automatically banned during a mutating update. Crossing the threshold is
	// purely a side effect: the score itself keeps going down if further
	// penalizing events arrive.
	DefaultBanThreshold = -100

	// DefaultDecayPeriod is the length of one inactivity period. An account
	// must be inactive for the whole period before the period's decay is
	// charged; the fraction of a partially elapsed period is discarded when
	// the anchor resets.
	DefaultDecayPeriod = 30 * 24 * time.Hour

	// DefaultDecayPerPeriod is the (non-positive) score adjustment charged for
	// each full elapsed inactivity period.
	DefaultDecayPerPeriod = -1

	// DefaultGoodStandingScore is the minimum decay-adjusted score an account
	// needs to be in good standing. A banned account is never in good
	// standing, regardless of score.
	DefaultGoodStandingScore = 50

	// MaxSuccessRate is the success rate of an account in basis points when
	// every transaction succeeded. A never-transacted account is deemed fully
	// successful by convention.
	MaxSuccessRate = 10000
)

// Point deltas applied per event kind. Each delta also increments the
// matching counter, except fraud which adjusts the score only.
const (
	SuccessfulSaleDelta     = 10
	SuccessfulPurchaseDelta = 5
	VerifiedAssetDelta      = 20
	DisputeWonDelta         = 10
	DisputeLostDelta        = -50
	FraudDetectedDelta      = -100
)

// AutoBanReason is the fixed reason attached to bans triggered by the engine
// when a score crosses the ban threshold.
const AutoBanReason = "Score below threshold"

// EventDelta returns the point delta for the given event kind, or 0 for an
// unknown kind.
func EventDelta(kind market.EventKind) int64 {
	switch kind {
	case market.EventSuccessfulSale:
		return SuccessfulSaleDelta
	case market.EventSuccessfulPurchase:
		return SuccessfulPurchaseDelta
	case market.EventVerifiedAsset:
		return VerifiedAssetDelta
	case market.EventDisputeWon:
		return DisputeWonDelta
	case market.EventDisputeLost:
		return DisputeLostDelta
	case market.EventFraudDetected:
		return FraudDetectedDelta
	default:
		return 0
	}
}

// Params is the read-only scoring configuration of the engine. All tunables
// are fixed at construction time; DefaultParams returns the values above.
type Params struct {
	// InitialScore is the score assigned to a lazily created record.
	InitialScore int64
	// BanThreshold is the auto-ban trigger; see DefaultBanThreshold.
	BanThreshold int64
	// DecayPeriod is the length of one inactivity period.
	DecayPeriod time.Duration
	// DecayPerPeriod is the non-positive score adjustment per full period.
	DecayPerPeriod int64
	// GoodStandingScore is the minimum score for good standing.
	GoodStandingScore int64
}

// DefaultParams returns the production scoring parameters.
func DefaultParams() Params {
	return Params{
		InitialScore:      DefaultInitialScore,
		BanThreshold:      DefaultBanThreshold,
		DecayPeriod:       DefaultDecayPeriod,
		DecayPerPeriod:    DefaultDecayPerPeriod,
		GoodStandingScore: DefaultGoodStandingScore,
	}
}

// Validate returns an error describing every invalid parameter, or nil if the
// parameters are usable.
func (p Params) Validate() error {
	var result *multierror.Error

	if p.DecayPeriod <= 0 {
		result = multierror.Append(result, fmt.Errorf("decay period must be positive, got %s", p.DecayPeriod))
	}
	if p.DecayPerPeriod > 0 {
		result = multierror.Append(result, fmt.Errorf("decay per period must be non-positive, got %d", p.DecayPerPeriod))
	}
	if p.BanThreshold >= p.InitialScore {
		result = multierror.Append(result, fmt.Errorf("ban threshold (%d) must be below the initial score (%d)", p.BanThreshold, p.InitialScore))
	}

	return result.ErrorOrNil()
}
