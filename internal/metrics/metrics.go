// Package metrics defines the custom Prometheus metrics of the CMS API. It is
// the single source of truth for metric names, labels, and help strings.
//
// Call Register once per registry before serving; HTTP request metrics are
// added separately by the echoprometheus middleware.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cms"

// Content sources reported by ContentServedTotal.
const (
	SourceStore   = "store"
	SourceDefault = "default"
)

// ContentServedTotal counts content reads.
// Labels:
//   - content: "home", "services", "case_studies", "testimonials", "org"
//   - source:  "store" when stored documents were returned, "default" for the fallback
var ContentServedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_served_total",
		Help:      "Total number of content reads, by content type and source.",
	},
	[]string{"content", "source"},
)

// DocumentsCreatedTotal counts successful inserts.
// Label:
//   - collection: target collection (e.g. "contactsubmission", "blogpost")
var DocumentsCreatedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "documents_created_total",
		Help:      "Total number of documents inserted, by collection.",
	},
	[]string{"collection"},
)

// StoreErrorsTotal counts failed store calls.
// Label:
//   - op: "get" or "create"
var StoreErrorsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_errors_total",
		Help:      "Total number of document store calls that returned an error.",
	},
	[]string{"op"},
)

// Register adds every custom collector to reg. Collectors already present in
// reg are left as they are.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		ContentServedTotal,
		DocumentsCreatedTotal,
		StoreErrorsTotal,
	} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	return nil
}
