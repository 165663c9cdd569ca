package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/trustmesh/reputation/module"
)

// ReputationCollector collects the prometheus metrics of the reputation engine.
type ReputationCollector struct {
	eventsProcessedCount *prometheus.CounterVec
	autoBanCount         prometheus.Counter
	adminBanCount        prometheus.Counter
	unbanCount           prometheus.Counter
	decayPeriodsApplied  prometheus.Counter
}

var _ module.ReputationMetrics = (*ReputationCollector)(nil)

func NewReputationCollector() *ReputationCollector {
	rc := &ReputationCollector{}

	rc.eventsProcessedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespaceReputation,
			Subsystem: subsystemScoring,
			Name:      "events_processed_total",
			Help:      "number of reputation events applied, by event type",
		}, []string{"event_type"},
	)

	rc.autoBanCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespaceReputation,
			Subsystem: subsystemBans,
			Name:      "auto_bans_total",
			Help:      "number of accounts banned automatically on a ban threshold breach",
		},
	)

	rc.adminBanCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespaceReputation,
			Subsystem: subsystemBans,
			Name:      "admin_bans_total",
			Help:      "number of accounts banned by an administrator",
		},
	)

	rc.unbanCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespaceReputation,
			Subsystem: subsystemBans,
			Name:      "unbans_total",
			Help:      "number of account bans lifted by an administrator",
		},
	)

	rc.decayPeriodsApplied = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespaceReputation,
			Subsystem: subsystemScoring,
			Name:      "decay_periods_applied_total",
			Help:      "number of whole inactivity decay periods consumed by mutating updates",
		},
	)

	return rc
}

// OnReputationEventProcessed is called when a reputation event was applied to an account.
func (rc *ReputationCollector) OnReputationEventProcessed(eventType string) {
	rc.eventsProcessedCount.WithLabelValues(eventType).Inc()
}

// OnAccountAutoBanned is called when the engine bans an account on a threshold breach.
func (rc *ReputationCollector) OnAccountAutoBanned() {
	rc.autoBanCount.Inc()
}

// OnAccountAdminBanned is called when an administrator bans an account.
func (rc *ReputationCollector) OnAccountAdminBanned() {
	rc.adminBanCount.Inc()
}

// OnAccountUnbanned is called when an administrator lifts an account's ban.
func (rc *ReputationCollector) OnAccountUnbanned() {
	rc.unbanCount.Inc()
}

// OnDecayPeriodsApplied is called when a mutating update consumes pending decay.
func (rc *ReputationCollector) OnDecayPeriodsApplied(periods uint64) {
	rc.decayPeriodsApplied.Add(float64(periods))
}
