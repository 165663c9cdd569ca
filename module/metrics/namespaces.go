package metrics

// Prometheus namespace and subsystems for the reputation engine.
const (
	namespaceReputation = "reputation"

	subsystemScoring = "scoring"
	subsystemBans    = "bans"
)
