package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Subsystem for client metrics
const subsystem = "client"

// APIRecorder records API round trips. The HTTP client depends on this
// interface so metrics stay optional.
type APIRecorder interface {
	RecordAPIRequest(method, endpoint string, statusCode int, duration float64)
}

// CommandRecorder records application command/query executions
type CommandRecorder interface {
	RecordCommandExecution(commandName string, duration float64, success bool)
}

// Collectors bundles every collector registered on one registry
type Collectors struct {
	Registry *prometheus.Registry
	API      *APIMetricsCollector
	Commands *CommandMetricsCollector
}

// NewCollectors creates a private registry and registers all collectors on it.
// Each call yields an independent set, so tests never share state.
func NewCollectors(namespace string) (*Collectors, error) {
	registry := prometheus.NewRegistry()

	apiCollector := NewAPIMetricsCollector(namespace)
	if err := apiCollector.Register(registry); err != nil {
		return nil, err
	}

	commandCollector := NewCommandMetricsCollector(namespace)
	if err := commandCollector.Register(registry); err != nil {
		return nil, err
	}

	return &Collectors{
		Registry: registry,
		API:      apiCollector,
		Commands: commandCollector,
	}, nil
}

// registerAll registers each collector, stopping at the first failure
func registerAll(registerer prometheus.Registerer, collectors ...prometheus.Collector) error {
	for _, c := range collectors {
		if err := registerer.Register(c); err != nil {
			return err
		}
	}
	return nil
}
