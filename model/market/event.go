package market

// EventKind enumerates the discrete marketplace occurrences that adjust an
// account's reputation.
type EventKind int

const (
	// EventUnknown indicates that the event kind is not known.
	EventUnknown EventKind = iota
	// EventSuccessfulSale is emitted when an account completes a sale.
	EventSuccessfulSale
	// EventSuccessfulPurchase is emitted when an account completes a purchase.
	EventSuccessfulPurchase
	// EventVerifiedAsset is emitted when an asset listed by the account passes verification.
	EventVerifiedAsset
	// EventDisputeWon is emitted when the account prevails in a dispute.
	EventDisputeWon
	// EventDisputeLost is emitted when a dispute is resolved against the account.
	EventDisputeLost
	// EventFraudDetected is emitted when fraud is attributed to the account.
	EventFraudDetected
)

// String returns the string representation of an event kind.
func (e EventKind) String() string {
	if e < EventUnknown || e > EventFraudDetected {
		return "INVALID"
	}
	return [...]string{
		"UNKNOWN",
		"SUCCESSFUL_SALE",
		"SUCCESSFUL_PURCHASE",
		"VERIFIED_ASSET",
		"DISPUTE_WON",
		"DISPUTE_LOST",
		"FRAUD_DETECTED",
	}[e]
}

// Valid returns true if the event kind is one of the known marketplace events.
func (e EventKind) Valid() bool {
	return e > EventUnknown && e <= EventFraudDetected
}
