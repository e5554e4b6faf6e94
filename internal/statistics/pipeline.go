package statistics

import (
	"github.com/markusressel/dim2go/internal/diagnostics"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	subsystemSensor   = "sensor"
	subsystemPipeline = "pipeline"
	subsystemLed      = "led"
)

// SnapshotSource provides the latest diagnostics of the control loop
type SnapshotSource interface {
	Latest() (diagnostics.Snapshot, bool)
}

type PipelineCollector struct {
	source   SnapshotSource
	sensorId string
	outputId string

	raw         *prometheus.Desc
	average     *prometheus.Desc
	clamped     *prometheus.Desc
	brightness  *prometheus.Desc
	duty        *prometheus.Desc
	cycles      *prometheus.Desc
	readErrors  *prometheus.Desc
	writeErrors *prometheus.Desc
}

func NewPipelineCollector(source SnapshotSource, sensorId string, outputId string) *PipelineCollector {
	return &PipelineCollector{
		source:   source,
		sensorId: sensorId,
		outputId: outputId,
		raw: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "raw"),
			"Latest raw value of the distance sensor",
			[]string{"id"}, nil,
		),
		average: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemPipeline, "average"),
			"Mean of the sample window",
			[]string{"id"}, nil,
		),
		clamped: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemPipeline, "clamped"),
			"Mean of the sample window, limited to the configured range",
			[]string{"id"}, nil,
		),
		brightness: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemPipeline, "brightness"),
			"Perceptual 8-bit brightness",
			[]string{"id"}, nil,
		),
		duty: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemLed, "duty"),
			"Gamma corrected 16-bit duty cycle of the led output",
			[]string{"id"}, nil,
		),
		cycles: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemPipeline, "cycles"),
			"Number of completed control loop cycles",
			[]string{"id"}, nil,
		),
		readErrors: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "read_errors"),
			"Number of failed sensor reads",
			[]string{"id"}, nil,
		),
		writeErrors: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemLed, "write_errors"),
			"Number of failed duty cycle writes",
			[]string{"id"}, nil,
		),
	}
}

func (collector *PipelineCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.raw
	ch <- collector.average
	ch <- collector.clamped
	ch <- collector.brightness
	ch <- collector.duty
	ch <- collector.cycles
	ch <- collector.readErrors
	ch <- collector.writeErrors
}

// Collect implements required collect function for all prometheus collectors
func (collector *PipelineCollector) Collect(ch chan<- prometheus.Metric) {
	snapshot, ok := collector.source.Latest()

	sensorId := collector.sensorId
	outputId := collector.outputId
	ch <- prometheus.MustNewConstMetric(collector.cycles, prometheus.CounterValue, float64(snapshot.Cycles), outputId)
	ch <- prometheus.MustNewConstMetric(collector.readErrors, prometheus.CounterValue, float64(snapshot.ReadErrors), sensorId)
	ch <- prometheus.MustNewConstMetric(collector.writeErrors, prometheus.CounterValue, float64(snapshot.WriteErrors), outputId)

	// no pipeline values before the first completed cycle
	if !ok {
		return
	}

	ch <- prometheus.MustNewConstMetric(collector.raw, prometheus.GaugeValue, float64(snapshot.Raw), sensorId)
	ch <- prometheus.MustNewConstMetric(collector.average, prometheus.GaugeValue, float64(snapshot.Average), sensorId)
	ch <- prometheus.MustNewConstMetric(collector.clamped, prometheus.GaugeValue, float64(snapshot.Clamped), sensorId)
	ch <- prometheus.MustNewConstMetric(collector.brightness, prometheus.GaugeValue, float64(snapshot.Brightness), outputId)
	ch <- prometheus.MustNewConstMetric(collector.duty, prometheus.GaugeValue, float64(snapshot.Duty), outputId)
}
