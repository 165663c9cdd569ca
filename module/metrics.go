package module

// ReputationMetrics encapsulates the metrics collectors for the marketplace
// reputation engine.
type ReputationMetrics interface {
	// OnReputationEventProcessed is called when a reputation event was applied
	// to an account.
	// Args:
	// - eventType: the type of the applied event
	OnReputationEventProcessed(eventType string)

	// OnAccountAutoBanned is called when the engine bans an account because its
	// score crossed the ban threshold during an update.
	OnAccountAutoBanned()

	// OnAccountAdminBanned is called when an administrator bans an account.
	OnAccountAdminBanned()

	// OnAccountUnbanned is called when an administrator lifts an account's ban.
	OnAccountUnbanned()

	// OnDecayPeriodsApplied is called when a mutating update consumes pending
	// inactivity decay.
	// Args:
	// - periods: the number of whole decay periods consumed
	OnDecayPeriodsApplied(periods uint64)
}
