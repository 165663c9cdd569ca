package market

import "time"

// ReputationRecord is the reputation state of a single marketplace account.
// One record exists per account; it is created lazily on the account's first
// event and is never deleted.
type ReputationRecord struct {
	// Account is the address of the account this record belongs to.
	Account Address
	// Score is the current stored reputation score. It is unbounded in both
	// directions; the ban threshold triggers a side effect, not a clamp.
	// Pending inactivity decay is NOT folded into this field; it is
	// reconstructed from LastActivity on demand.
	Score int64
	// SuccessfulSales counts completed sales. Never decremented.
	SuccessfulSales uint64
	// SuccessfulPurchases counts completed purchases. Never decremented.
	SuccessfulPurchases uint64
	// DisputesWon counts disputes resolved in the account's favor. Never decremented.
	DisputesWon uint64
	// DisputesLost counts disputes resolved against the account. Never decremented.
	DisputesLost uint64
	// VerifiedAssets counts assets that passed verification. Never decremented.
	VerifiedAssets uint64
	// LastActivity is the time of the most recent mutating update and the
	// anchor for inactivity decay. Zero for an account never updated.
	// It only ever advances, and never on a pure read.
	LastActivity time.Time
	// Banned is true once the account has been banned (automatically or
	// administratively) and not since unbanned. It is independent of the
	// current score.
	Banned bool
}

// NewReputationRecord returns the default record for a never-seen account:
// the initial score, zero counters, unset decay anchor, not banned.
func NewReputationRecord(account Address, initialScore int64) *ReputationRecord {
	return &ReputationRecord{
		Account: account,
		Score:   initialScore,
	}
}

// Copy returns a deep copy of the record. The record store hands out copies
// so that callers can never mutate stored state.
func (r *ReputationRecord) Copy() *ReputationRecord {
	c := *r
	return &c
}

// TotalTransactions returns the number of completed transactions (sales and
// purchases) entering the success-rate ratio. Dispute and verification
// counters are deliberately excluded.
func (r *ReputationRecord) TotalTransactions() uint64 {
	return r.SuccessfulSales + r.SuccessfulPurchases
}

// UserStats is the raw counter snapshot of an account, unmodified by decay.
type UserStats struct {
	SuccessfulSales     uint64
	SuccessfulPurchases uint64
	DisputesWon         uint64
	DisputesLost        uint64
	VerifiedAssets      uint64
}

// Stats returns the record's raw counters.
func (r *ReputationRecord) Stats() UserStats {
	return UserStats{
		SuccessfulSales:     r.SuccessfulSales,
		SuccessfulPurchases: r.SuccessfulPurchases,
		DisputesWon:         r.DisputesWon,
		DisputesLost:        r.DisputesLost,
		VerifiedAssets:      r.VerifiedAssets,
	}
}
