package monitor_gateway

import (
	"math"
	"net/http"
	"time"

	"github.com/warp-contracts/txinfo/src/utils/config"
	"github.com/warp-contracts/txinfo/src/utils/monitoring/report"
	"github.com/warp-contracts/txinfo/src/utils/task"

	"github.com/gammazero/deque"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Stores and computes monitor counters
type Monitor struct {
	*task.Task

	Report report.Report

	collector *Collector

	historySize   int
	RequestCounts *deque.Deque[uint64]
}

func NewMonitor(config *config.Config) (self *Monitor) {
	self = new(Monitor)

	self.Report = report.Report{
		Run:     &report.RunReport{},
		Gateway: &report.GatewayReport{},
	}

	self.Report.Run.State.StartTimestamp.Store(time.Now().Unix())

	self.collector = NewCollector().WithMonitor(self)

	self.historySize = config.Gateway.MonitorHistorySize
	if self.historySize < 1 {
		self.historySize = 1
	}
	self.RequestCounts = deque.New[uint64](self.historySize)

	self.Task = task.NewTask(config, "monitor").
		WithPeriodicSubtaskFunc(time.Minute, self.monitorRequests)
	return
}

func (self *Monitor) GetReport() *report.Report {
	return &self.Report
}

func (self *Monitor) GetPrometheusCollector() (collector prometheus.Collector) {
	return self.collector
}

func round(f float64) float64 {
	return math.Round(f*100) / 100
}

// Measure request rate
func (self *Monitor) monitorRequests() (err error) {
	self.RequestCounts.PushBack(self.Report.Gateway.Requests())
	if self.RequestCounts.Len() > self.historySize {
		self.RequestCounts.PopFront()
	}

	// Samples are one minute apart
	intervals := max(self.RequestCounts.Len()-1, 1)
	value := float64(self.RequestCounts.Back()-self.RequestCounts.Front()) / float64(intervals)

	self.Report.Gateway.State.AverageRequestsPerMinute.Store(round(value))
	return
}

// Unhealthy when most requests fail to reach the Arweave gateway
func (self *Monitor) IsOK() bool {
	requests := self.Report.Gateway.Requests()
	if requests < 10 {
		return true
	}
	return self.Report.Gateway.Errors.Transport.Load()*2 < requests
}

func (self *Monitor) OnGetState(c *gin.Context) {
	self.Report.Run.State.UpForSeconds.Store(uint64(time.Now().Unix() - self.Report.Run.State.StartTimestamp.Load()))

	c.JSON(http.StatusOK, &self.Report)
}

func (self *Monitor) OnGetHealth(c *gin.Context) {
	if self.IsOK() {
		c.Status(http.StatusOK)
	} else {
		c.Status(http.StatusServiceUnavailable)
	}
}
