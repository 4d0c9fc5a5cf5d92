// Package metrics defines and registers all custom Prometheus metrics for
// the resume API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time and are exposed through the /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "resume_api"

// UsersRegisteredTotal counts successful signups.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ResumesCreatedTotal counts newly created resumes.
var ResumesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resumes_created_total",
		Help:      "Total number of resumes created.",
	},
)

// ResumesDeletedTotal counts deleted resumes.
var ResumesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resumes_deleted_total",
		Help:      "Total number of resumes deleted.",
	},
)

// ResumesExportedTotal counts rendered downloads.
var ResumesExportedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resumes_exported_total",
		Help:      "Total number of resumes rendered for download.",
	},
)
