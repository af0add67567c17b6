// Package metrics defines and registers all custom Prometheus metrics for
// the portfolio API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokensIssuedTotal counts signed tokens handed out by successful logins.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of tokens issued.",
	},
)

// GatekeeperDenialsTotal counts requests turned away before reaching their
// handler.
// Label:
//   - reason: "absent" (no token) or "invalid" (failed verification)
var GatekeeperDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gatekeeper_denials_total",
		Help:      "Total number of requests denied by the auth middleware.",
	},
	[]string{"reason"},
)

// PostViewsTotal counts public post reads across all posts. Per-post totals
// live in Redis; this is the aggregate rate signal.
var PostViewsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "post_views_total",
		Help:      "Total number of public post reads.",
	},
)

// ContactMessagesTotal counts contact-form submissions.
// Label:
//   - result: "accepted" or "duplicate"
var ContactMessagesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact-form submissions, by result.",
	},
	[]string{"result"},
)

// CommentsTotal counts comment lifecycle events.
// Label:
//   - state: "submitted", "approved" or "deleted"
var CommentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_total",
		Help:      "Total number of comment lifecycle events, by state.",
	},
	[]string{"state"},
)
