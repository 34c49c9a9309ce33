package api

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

// MetricsPrefix is shared by every metric this application registers.
const MetricsPrefix = "achievement_hunter_"

// FilteredGatherer wraps a gatherer to only return metrics matching a prefix
type FilteredGatherer struct {
	gatherer prometheus.Gatherer
	prefix   string
}

func NewFilteredGatherer(gatherer prometheus.Gatherer, prefix string) *FilteredGatherer {
	return &FilteredGatherer{
		gatherer: gatherer,
		prefix:   prefix,
	}
}

func (fg *FilteredGatherer) Gather() ([]*dto.MetricFamily, error) {
	all, err := fg.gatherer.Gather()
	if err != nil {
		return nil, err
	}

	filtered := make([]*dto.MetricFamily, 0, len(all))
	for _, mf := range all {
		if strings.HasPrefix(mf.GetName(), fg.prefix) {
			filtered = append(filtered, mf)
		}
	}

	return filtered, nil
}

// AppGatherer gathers this application's metrics from the default registry.
func AppGatherer() prometheus.Gatherer {
	return NewFilteredGatherer(prometheus.DefaultGatherer, MetricsPrefix)
}

// MetricsHandler serves AppGatherer in the Prometheus exposition format.
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(AppGatherer(), promhttp.HandlerOpts{})
}

// WriteMetricsFile dumps the application metrics in the node_exporter
// textfile format.
func WriteMetricsFile(path string) error {
	return prometheus.WriteToTextfile(path, AppGatherer())
}
