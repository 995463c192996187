// Package observe provides toast.Observer implementations for Prometheus
// metrics and OpenTelemetry tracing.
//
// Both observers are passive: they record admission outcomes reported by
// the controller and never call back into it. Combine them with
// toast.Observers:
//
//	reg := prometheus.NewRegistry()
//	ctrl := toast.NewController(
//	    toast.WithObserver(toast.Observers(
//	        observe.NewMetrics(observe.WithRegistry(reg)),
//	        observe.NewTracing(),
//	    )),
//	)
package observe
