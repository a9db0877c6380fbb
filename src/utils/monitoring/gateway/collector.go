package monitor_gateway

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Collector struct {
	monitor *Monitor

	UpForSeconds        *prometheus.Desc
	PriceRequests       *prometheus.Desc
	TransactionRequests *prometheus.Desc
	StatusRequests      *prometheus.Desc
	Successes           *prometheus.Desc
	AverageRequests     *prometheus.Desc

	TransportErrors   *prometheus.Desc
	ProtocolErrors    *prometheus.Desc
	MalformedErrors   *prometheus.Desc
	RateLimitedErrors *prometheus.Desc
	BadRequestErrors  *prometheus.Desc
}

func NewCollector() *Collector {
	labels := prometheus.Labels{
		"app": "txinfo",
	}

	return &Collector{
		UpForSeconds:        prometheus.NewDesc("up_for_seconds", "", nil, labels),
		PriceRequests:       prometheus.NewDesc("price_requests", "", nil, labels),
		TransactionRequests: prometheus.NewDesc("transaction_requests", "", nil, labels),
		StatusRequests:      prometheus.NewDesc("status_requests", "", nil, labels),
		Successes:           prometheus.NewDesc("successful_requests", "", nil, labels),
		AverageRequests:     prometheus.NewDesc("average_requests_per_minute", "", nil, labels),

		TransportErrors:   prometheus.NewDesc("transport_errors", "", nil, labels),
		ProtocolErrors:    prometheus.NewDesc("protocol_errors", "", nil, labels),
		MalformedErrors:   prometheus.NewDesc("malformed_response_errors", "", nil, labels),
		RateLimitedErrors: prometheus.NewDesc("rate_limited_requests", "", nil, labels),
		BadRequestErrors:  prometheus.NewDesc("bad_requests", "", nil, labels),
	}
}

func (self *Collector) WithMonitor(m *Monitor) *Collector {
	self.monitor = m
	return self
}

func (self *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- self.UpForSeconds
	ch <- self.PriceRequests
	ch <- self.TransactionRequests
	ch <- self.StatusRequests
	ch <- self.Successes
	ch <- self.AverageRequests
	ch <- self.TransportErrors
	ch <- self.ProtocolErrors
	ch <- self.MalformedErrors
	ch <- self.RateLimitedErrors
	ch <- self.BadRequestErrors
}

// Collect implements required collect function for all promehteus collectors
func (self *Collector) Collect(ch chan<- prometheus.Metric) {
	run := &self.monitor.Report.Run.State
	state := &self.monitor.Report.Gateway.State
	errs := &self.monitor.Report.Gateway.Errors

	ch <- prometheus.MustNewConstMetric(self.UpForSeconds, prometheus.GaugeValue, float64(time.Now().Unix()-run.StartTimestamp.Load()))
	ch <- prometheus.MustNewConstMetric(self.PriceRequests, prometheus.CounterValue, float64(state.PriceRequests.Load()))
	ch <- prometheus.MustNewConstMetric(self.TransactionRequests, prometheus.CounterValue, float64(state.TransactionRequests.Load()))
	ch <- prometheus.MustNewConstMetric(self.StatusRequests, prometheus.CounterValue, float64(state.StatusRequests.Load()))
	ch <- prometheus.MustNewConstMetric(self.Successes, prometheus.CounterValue, float64(state.Successes.Load()))
	ch <- prometheus.MustNewConstMetric(self.AverageRequests, prometheus.GaugeValue, state.AverageRequestsPerMinute.Load())
	ch <- prometheus.MustNewConstMetric(self.TransportErrors, prometheus.CounterValue, float64(errs.Transport.Load()))
	ch <- prometheus.MustNewConstMetric(self.ProtocolErrors, prometheus.CounterValue, float64(errs.Protocol.Load()))
	ch <- prometheus.MustNewConstMetric(self.MalformedErrors, prometheus.CounterValue, float64(errs.Malformed.Load()))
	ch <- prometheus.MustNewConstMetric(self.RateLimitedErrors, prometheus.CounterValue, float64(errs.RateLimited.Load()))
	ch <- prometheus.MustNewConstMetric(self.BadRequestErrors, prometheus.CounterValue, float64(errs.BadRequest.Load()))
}
