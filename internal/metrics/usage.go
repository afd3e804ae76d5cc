package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTotalLogins              = "total_logins"
	NameTotalRegistrations       = "total_registrations"
	NameTotalProgressUpdates     = "total_progress_updates"
	NameTotalOpportunitySearches = "total_opportunity_searches"
)

var TotalLogins = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalLogins,
		Help:      "Total successful logins",
		Namespace: Namespace,
	},
)

var TotalRegistrations = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalRegistrations,
		Help:      "Total user registrations",
		Namespace: Namespace,
	},
)

var TotalProgressUpdates = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalProgressUpdates,
		Help:      "Total progress ledger writes",
		Namespace: Namespace,
	},
)

var TotalOpportunitySearches = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalOpportunitySearches,
		Help:      "Total upstream opportunity searches",
		Namespace: Namespace,
	},
)
