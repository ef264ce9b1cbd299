package htmlgen

import "github.com/prometheus/client_golang/prometheus"

type PageKind string

const (
	PageKindIndex   PageKind = "index"
	PageKindGlobals PageKind = "globals"
	PageKindElement PageKind = "element"
)

type metrics struct {
	fetchDuration   *prometheus.SummaryVec
	fetchCounter    *prometheus.CounterVec
	elements        prometheus.Gauge
	deprecatedGauge prometheus.Gauge
}

func setupMetrics(registerer prometheus.Registerer) (m *metrics, err error) {
	const prometheusLabelKind = "kind"
	const prometheusLabelStatus = "status"

	m = &metrics{
		fetchDuration: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name:       "htmlgen_fetch_duration_seconds",
				Help:       "fetch duration including parsing of the document",
				Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			},
			[]string{prometheusLabelKind},
		),
		fetchCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "htmlgen_fetch_total",
				Help: "number of fetched pages",
			},
			[]string{prometheusLabelKind, prometheusLabelStatus},
		),
		elements: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "htmlgen_elements",
			Help: "elements scraped in the last run",
		}),
		deprecatedGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "htmlgen_deprecated_elements",
			Help: "deprecated elements scraped in the last run",
		}),
	}
	if registerer == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{
		m.fetchDuration,
		m.fetchCounter,
		m.elements,
		m.deprecatedGauge,
	} {
		if errRegister := registerer.Register(c); errRegister != nil {
			return nil, errRegister
		}
	}
	return m, nil
}
