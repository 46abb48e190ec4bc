package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeRejected = "rejected"
	OutcomeEmailed  = "emailed"
	OutcomeFallback = "fallback"
	OutcomeFailed   = "failed"
)

var (
	Submissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "contact_submissions_total", Help: "Contact form submissions by outcome"},
		[]string{"outcome"},
	)
	EmailSendDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "contact_email_send_duration_seconds",
			Help:    "Time spent handing a contact email to the SMTP server",
			Buckets: prometheus.DefBuckets,
		},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "HTTP requests"},
		[]string{"method", "route", "status"},
	)
)

func Register(reg prometheus.Registerer) {
	reg.MustRegister(Submissions, EmailSendDuration, HTTPRequests)
}
