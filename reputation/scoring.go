package reputation

import (
	"time"

	"github.com/trustmesh/reputation/model/market"
)

// This file holds the pure scoring arithmetic. Every function here is free of
// side effects so that the same computation backs both the mutating update
// pipeline and the read-only queries; the ban side effect is layered on top
// by the manager, which consumes UpdateOutcome.

// DecayPeriodsElapsed returns the number of whole decay periods elapsed
// between lastActivity and now. It returns 0 when the anchor is unset (zero
// time). Elapsed time below zero is treated as zero; the clock is expected to
// be monotone, but a decay must never turn into a reward.
func DecayPeriodsElapsed(lastActivity, now time.Time, period time.Duration) int64 {
	if lastActivity.IsZero() {
		return 0
	}
	elapsed := now.Sub(lastActivity)
	if elapsed < 0 {
		return 0
	}
	return int64(elapsed / period)
}

// DecayAdjustment returns the non-positive score adjustment accrued between
// lastActivity and now: floor(elapsed/period) * perPeriod.
func DecayAdjustment(lastActivity, now time.Time, period time.Duration, perPeriod int64) int64 {
	return DecayPeriodsElapsed(lastActivity, now, period) * perPeriod
}

// CurrentScore returns the record's score with pending decay folded in as of
// now, without mutating anything.
func CurrentScore(rec *market.ReputationRecord, now time.Time, p Params) int64 {
	return rec.Score + DecayAdjustment(rec.LastActivity, now, p.DecayPeriod, p.DecayPerPeriod)
}

// SuccessRate returns the record's transaction success rate in basis points
// (0-10000). An account with no completed transactions is deemed fully
// successful. Lost disputes count against completed transactions; won
// disputes and verified assets do not enter the ratio.
func SuccessRate(rec *market.ReputationRecord) uint64 {
	total := rec.TotalTransactions()
	if total == 0 {
		return MaxSuccessRate
	}
	if rec.DisputesLost >= total {
		return 0
	}
	return (total - rec.DisputesLost) * MaxSuccessRate / total
}

// IsGoodStanding returns true if the record's decay-adjusted score meets the
// good-standing minimum and the account is not banned.
func IsGoodStanding(rec *market.ReputationRecord, now time.Time, p Params) bool {
	return CurrentScore(rec, now, p) >= p.GoodStandingScore && !rec.Banned
}

// UpdateOutcome describes the effects of applying a single event to a record.
type UpdateOutcome struct {
	// PeriodsDecayed is the number of whole inactivity periods the update
	// consumed.
	PeriodsDecayed int64
	// DecayApplied is the (non-positive) decay folded into the stored score
	// before the event delta.
	DecayApplied int64
	// Delta is the event's point delta.
	Delta int64
	// NewScore is the stored score after decay and delta.
	NewScore int64
	// CrossedBanThreshold is true if the update moved a not-yet-banned record
	// to or below the ban threshold. The caller owns the ban side effect.
	CrossedBanThreshold bool
}

// ApplyEvent mutates rec in place with the full update arithmetic, in fixed
// order: consume pending decay, apply the event delta, bump the event's
// counter, advance the activity anchor to now. The fractional remainder of a
// partially elapsed decay period is discarded by the anchor reset.
//
// ApplyEvent does not flip the ban flag; it only reports the threshold
// crossing in the returned outcome.
func ApplyEvent(rec *market.ReputationRecord, kind market.EventKind, now time.Time, p Params) UpdateOutcome {
	periods := DecayPeriodsElapsed(rec.LastActivity, now, p.DecayPeriod)
	decay := periods * p.DecayPerPeriod
	delta := EventDelta(kind)

	rec.Score += decay + delta

	switch kind {
	case market.EventSuccessfulSale:
		rec.SuccessfulSales++
	case market.EventSuccessfulPurchase:
		rec.SuccessfulPurchases++
	case market.EventVerifiedAsset:
		rec.VerifiedAssets++
	case market.EventDisputeWon:
		rec.DisputesWon++
	case market.EventDisputeLost:
		rec.DisputesLost++
	case market.EventFraudDetected:
		// fraud adjusts the score only
	}

	rec.LastActivity = now

	return UpdateOutcome{
		PeriodsDecayed:      periods,
		DecayApplied:        decay,
		Delta:               delta,
		NewScore:            rec.Score,
		CrossedBanThreshold: rec.Score <= p.BanThreshold && !rec.Banned,
	}
}
