package gateway

import (
	"context"
	"net/http"
	"runtime"
	"strings"

	"github.com/warp-contracts/txinfo/src/utils/arweave"
	"github.com/warp-contracts/txinfo/src/utils/config"
	monitor_gateway "github.com/warp-contracts/txinfo/src/utils/monitoring/gateway"
	"github.com/warp-contracts/txinfo/src/utils/task"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// REST API exposing the Arweave transaction endpoints, plus monitoring
type Server struct {
	*task.Task

	httpServer *http.Server
	Router     *gin.Engine

	client  *arweave.Client
	monitor *monitor_gateway.Monitor

	// Protects the upstream gateway, shared by all API routes
	limiter *rate.Limiter
}

func NewServer(config *config.Config, client *arweave.Client, monitor *monitor_gateway.Monitor) (self *Server) {
	self = new(Server)
	self.client = client
	self.monitor = monitor
	self.limiter = rate.NewLimiter(rate.Every(config.Gateway.LimiterInterval), config.Gateway.LimiterBurstSize)

	self.Task = task.NewTask(config, "rest-server").
		WithSubtask(monitor.Task).
		WithOnBeforeStart(self.setupProfiler).
		WithSubtaskFunc(self.run).
		WithOnStop(self.stop)

	switch strings.ToLower(config.LogLevel) {
	case "debug", "trace":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	self.Router = gin.New()
	self.Router.Use(gin.Recovery(), self.onRequestId)

	registry := prometheus.NewRegistry()
	registry.MustRegister(self.monitor.GetPrometheusCollector())

	v1 := self.Router.Group("v1")
	{
		v1.GET("health", self.monitor.OnGetHealth)
		v1.GET("state", self.monitor.OnGetState)
		v1.GET("metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

		api := v1.Group("", self.onRateLimit)
		api.GET("price/:size", self.onGetPrice)
		api.GET("tx/:id", self.onGetTransaction)
		api.GET("tx/:id/status", self.onGetStatus)
	}

	if config.Profiler.Enabled {
		pprof.Register(self.Router)
	}

	self.httpServer = &http.Server{
		Addr:    config.Gateway.RESTListenAddress,
		Handler: self.Router,
	}

	return
}

func (self *Server) setupProfiler() error {
	if self.Config.Profiler.Enabled {
		runtime.SetBlockProfileRate(self.Config.Profiler.BlockProfileRate)
	}
	return nil
}

func (self *Server) run() (err error) {
	self.Log.WithField("address", self.httpServer.Addr).Info("Starting REST server")

	err = self.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		self.Log.WithError(err).Error("Failed to start REST server")

		// Monitor would keep the task alive otherwise
		go self.Stop()
		return
	}
	return nil
}

func (self *Server) stop() {
	ctx, cancel := context.WithTimeout(context.Background(), self.Config.StopTimeout)
	defer cancel()

	err := self.httpServer.Shutdown(ctx)
	if err != nil {
		self.Log.WithError(err).Error("Failed to gracefully shutdown REST server")
		return
	}
}
