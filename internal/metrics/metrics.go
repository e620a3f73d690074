// Package metrics collects Prometheus metrics for the travel logbook and
// exposes them for scraping.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records domain events and HTTP responses as Prometheus metrics.
type Collector struct {
	travelsCreated prometheus.Counter
	travelsUpdated prometheus.Counter
	travelsDeleted prometheus.Counter
	albumsCreated  prometheus.Counter
	httpResponses  *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		travelsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "travelbook_travels_created_total",
			Help: "Number of travels created.",
		}),
		travelsUpdated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "travelbook_travels_updated_total",
			Help: "Number of travels updated.",
		}),
		travelsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "travelbook_travels_deleted_total",
			Help: "Number of travels soft-deleted.",
		}),
		albumsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "travelbook_albums_created_total",
			Help: "Number of albums created.",
		}),
		httpResponses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "travelbook_http_responses_total",
			Help: "HTTP responses by method and status code.",
		}, []string{"method", "status_code"}),
	}

	reg.MustRegister(
		c.travelsCreated,
		c.travelsUpdated,
		c.travelsDeleted,
		c.albumsCreated,
		c.httpResponses,
	)
	return c
}

func (c *Collector) TravelCreated() { c.travelsCreated.Inc() }
func (c *Collector) TravelUpdated() { c.travelsUpdated.Inc() }
func (c *Collector) TravelDeleted() { c.travelsDeleted.Inc() }
func (c *Collector) AlbumCreated()  { c.albumsCreated.Inc() }

// RecordHTTPStatus counts one response.
func (c *Collector) RecordHTTPStatus(method string, status int) {
	c.httpResponses.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
