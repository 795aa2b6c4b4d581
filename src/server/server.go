package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/mintforge/minter/src/mint"
	"github.com/mintforge/minter/src/utils/config"
	"github.com/mintforge/minter/src/utils/monitor"
	"github.com/mintforge/minter/src/utils/task"
)

// Rest API server, serves the issuance endpoints and monitor counters
type Server struct {
	*task.Task

	httpServer *http.Server
	Router     *gin.Engine

	monitor *monitor.Monitor
	service *mint.Service
	db      *gorm.DB
}

func NewServer(config *config.Config) (self *Server) {
	self = new(Server)

	self.Task = task.NewTask(config, "server").
		WithSubtaskFunc(self.run).
		WithOnStop(self.stop)

	self.Router = gin.New()

	self.httpServer = &http.Server{
		Addr:    self.Config.RESTListenAddress,
		Handler: self.Router,
	}

	return
}

func (self *Server) WithMonitor(monitor *monitor.Monitor) *Server {
	self.monitor = monitor
	return self
}

func (self *Server) WithMintService(service *mint.Service) *Server {
	self.service = service
	return self
}

func (self *Server) WithDB(db *gorm.DB) *Server {
	self.db = db
	return self
}

func (self *Server) setupRoutes() {
	// Reject bodies carrying fields outside the declared schema
	gin.EnableJsonDecoderDisallowUnknownFields()

	registry := prometheus.NewRegistry()
	registry.MustRegister(self.monitor.GetPrometheusCollector())

	self.Router.Use(self.onRequestTimeout)

	self.Router.POST("upload-image", self.onNetwork, self.onPublicKeyGuard, self.onUploadImage)
	self.Router.POST("create-token", self.onNetwork, self.onPublicKeyGuard, self.onCreateToken)
	self.Router.POST("create-nft", self.onNetwork, self.onPublicKeyGuard, self.onCreateNft)
	self.Router.GET("nft", self.onNetwork, self.onListNfts)

	v1 := self.Router.Group("v1")
	{
		v1.GET("health", self.monitor.OnGetHealth)
		v1.GET("state", self.monitor.OnGetState)
		v1.GET("metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}
}

func (self *Server) run() (err error) {
	if self.Config.IsDevelopment {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	self.setupRoutes()

	err = self.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		self.Log.WithError(err).Error("Failed to start REST server")
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
