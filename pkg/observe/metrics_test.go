package observe

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/glazeui/glaze/pkg/toast"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	if m.Gauge == nil {
		t.Fatal("expected gauge metric to have Gauge field")
	}
	return m.GetGauge().GetValue()
}

func testRequest(t *testing.T, msg string, kind toast.Kind) toast.Request {
	t.Helper()
	req, ok := toast.NewRequest(msg, kind, toast.Options{})
	if !ok {
		t.Fatalf("NewRequest(%q) rejected", msg)
	}
	return req
}

func TestMetricsRecordsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))

	m.ToastAdmitted(testRequest(t, "a", toast.KindSuccess), 0)
	m.ToastQueued(testRequest(t, "b", toast.KindInfo), 1)
	m.ToastQueued(testRequest(t, "c", toast.KindInfo), 2)
	m.ToastDropped(testRequest(t, "d", toast.KindError), toast.DropQueueFull)
	m.ToastDismissed()

	if got := counterValue(t, m.requests.WithLabelValues("admitted", "success")); got != 1 {
		t.Errorf("requests_total(admitted,success) = %v, want 1", got)
	}
	if got := counterValue(t, m.requests.WithLabelValues("queued", "info")); got != 2 {
		t.Errorf("requests_total(queued,info) = %v, want 2", got)
	}
	if got := counterValue(t, m.requests.WithLabelValues("dropped", "error")); got != 1 {
		t.Errorf("requests_total(dropped,error) = %v, want 1", got)
	}
	if got := counterValue(t, m.dropped.WithLabelValues(string(toast.DropQueueFull))); got != 1 {
		t.Errorf("dropped_total(queue_full) = %v, want 1", got)
	}
	if got := gaugeValue(t, m.queueDepth); got != 2 {
		t.Errorf("queue_depth = %v, want 2", got)
	}
	if got := counterValue(t, m.dismissed); got != 1 {
		t.Errorf("dismissed_total = %v, want 1", got)
	}
}

func TestMetricsTrackQueueDrain(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))

	m.ToastQueued(testRequest(t, "a", toast.KindInfo), 2)
	// Draining admits with one entry left behind.
	m.ToastAdmitted(testRequest(t, "a", toast.KindInfo), 1)

	if got := gaugeValue(t, m.queueDepth); got != 1 {
		t.Errorf("queue_depth = %v, want 1", got)
	}
}

func TestMetricsObserverContract(t *testing.T) {
	reg := prometheus.NewRegistry()
	var _ toast.Observer = NewMetrics(WithRegistry(reg))
	var _ toast.Observer = NewTracing()
}
