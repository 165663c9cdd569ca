package unittest

import (
	crand "crypto/rand"

	"github.com/trustmesh/reputation/model/market"
)

// AddressFixture returns a random non-zero account address.
func AddressFixture() market.Address {
	var a market.Address
	for a.IsEmpty() {
		_, _ = crand.Read(a[:])
	}
	return a
}

// AddressFixtures returns n distinct random account addresses.
func AddressFixtures(n int) []market.Address {
	addresses := make([]market.Address, 0, n)
	seen := make(map[market.Address]struct{}, n)
	for len(addresses) < n {
		a := AddressFixture()
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		addresses = append(addresses, a)
	}
	return addresses
}

// RecordFixture returns a reputation record with the given options applied.
func RecordFixture(opts ...func(*market.ReputationRecord)) *market.ReputationRecord {
	record := market.NewReputationRecord(AddressFixture(), 100)
	for _, opt := range opts {
		opt(record)
	}
	return record
}

// WithScore sets the record's stored score.
func WithScore(score int64) func(*market.ReputationRecord) {
	return func(r *market.ReputationRecord) {
		r.Score = score
	}
}

// WithBanned marks the record as banned.
func WithBanned() func(*market.ReputationRecord) {
	return func(r *market.ReputationRecord) {
		r.Banned = true
	}
}
