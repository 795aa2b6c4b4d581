package monitor

import (
	"math"
	"net/http"
	"time"

	"github.com/gammazero/deque"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mintforge/minter/src/utils/task"
)

// Stores and computes monitor counters
type Monitor struct {
	*task.Task

	Report    Report
	collector *Collector

	historySize int

	// Assembly speed
	TokenCounts *deque.Deque[uint64]
	NftCounts   *deque.Deque[uint64]
}

func NewMonitor() (self *Monitor) {
	self = new(Monitor)

	self.historySize = 30

	self.collector = NewCollector().WithMonitor(self)

	self.Task = task.NewTask(nil, "monitor").
		WithPeriodicSubtaskFunc(time.Minute, self.monitorTokens).
		WithPeriodicSubtaskFunc(time.Minute, self.monitorNfts)
	return
}

func (self *Monitor) WithMaxHistorySize(maxHistorySize int) *Monitor {
	self.historySize = maxHistorySize

	self.TokenCounts = deque.New[uint64](self.historySize)
	self.NftCounts = deque.New[uint64](self.historySize)

	self.Report.StartTimestamp.Store(time.Now().Unix())
	return self
}

func (self *Monitor) GetPrometheusCollector() (collector prometheus.Collector) {
	return self.collector
}

func round(f float64) float64 {
	return math.Round(f*100) / 100
}

// Measure token assembly speed
func (self *Monitor) monitorTokens() (err error) {
	loaded := self.Report.TokensAssembled.Load()
	if loaded == 0 {
		// Neglect the first 0
		return
	}

	self.TokenCounts.PushBack(loaded)
	if self.TokenCounts.Len() > self.historySize {
		self.TokenCounts.PopFront()
	}
	value := float64(self.TokenCounts.Back()-self.TokenCounts.Front()) / float64(self.TokenCounts.Len())
	self.Report.AverageTokensAssembledPerMinute.Store(round(value))
	return
}

// Measure NFT assembly speed
func (self *Monitor) monitorNfts() (err error) {
	loaded := self.Report.NftsAssembled.Load()
	if loaded == 0 {
		// Neglect the first 0
		return
	}

	self.NftCounts.PushBack(loaded)
	if self.NftCounts.Len() > self.historySize {
		self.NftCounts.PopFront()
	}
	value := float64(self.NftCounts.Back()-self.NftCounts.Front()) / float64(self.NftCounts.Len())
	self.Report.AverageNftsAssembledPerMinute.Store(round(value))
	return
}

func (self *Monitor) IsOK() bool {
	return true
}

func (self *Monitor) OnGetState(c *gin.Context) {
	self.Report.Fill()
	c.JSON(http.StatusOK, &self.Report)
}

func (self *Monitor) OnGetHealth(c *gin.Context) {
	if self.IsOK() {
		c.Status(http.StatusOK)
	} else {
		c.Status(http.StatusServiceUnavailable)
	}
}
