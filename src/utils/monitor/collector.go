package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Collector struct {
	monitor *Monitor

	ImagesUploaded       *prometheus.Desc
	TokensAssembled      *prometheus.Desc
	NftsAssembled        *prometheus.Desc
	UploadedBytes        *prometheus.Desc
	ImageUploadErrors    *prometheus.Desc
	MetadataUploadErrors *prometheus.Desc
	PriceQuoteErrors     *prometheus.Desc
	RpcErrors            *prometheus.Desc
	SigningErrors        *prometheus.Desc
	DbNftInsert          *prometheus.Desc
}

func NewCollector() *Collector {
	labels := prometheus.Labels{
		"app": "minter",
	}

	return &Collector{
		ImagesUploaded:       prometheus.NewDesc("images_uploaded", "", nil, labels),
		TokensAssembled:      prometheus.NewDesc("tokens_assembled", "", nil, labels),
		NftsAssembled:        prometheus.NewDesc("nfts_assembled", "", nil, labels),
		UploadedBytes:        prometheus.NewDesc("uploaded_bytes", "", nil, labels),
		ImageUploadErrors:    prometheus.NewDesc("image_upload_errors", "", nil, labels),
		MetadataUploadErrors: prometheus.NewDesc("metadata_upload_errors", "", nil, labels),
		PriceQuoteErrors:     prometheus.NewDesc("price_quote_errors", "", nil, labels),
		RpcErrors:            prometheus.NewDesc("rpc_errors", "", nil, labels),
		SigningErrors:        prometheus.NewDesc("signing_errors", "", nil, labels),
		DbNftInsert:          prometheus.NewDesc("db_nft_insert_errors", "", nil, labels),
	}
}

func (self *Collector) WithMonitor(m *Monitor) *Collector {
	self.monitor = m
	return self
}

func (self *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- self.ImagesUploaded
	ch <- self.TokensAssembled
	ch <- self.NftsAssembled
	ch <- self.UploadedBytes

	// Errors
	ch <- self.ImageUploadErrors
	ch <- self.MetadataUploadErrors
	ch <- self.PriceQuoteErrors
	ch <- self.RpcErrors
	ch <- self.SigningErrors
	ch <- self.DbNftInsert
}

// Collect implements required collect function for all promehteus collectors
func (self *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(self.ImagesUploaded, prometheus.CounterValue, float64(self.monitor.Report.ImagesUploaded.Load()))
	ch <- prometheus.MustNewConstMetric(self.TokensAssembled, prometheus.CounterValue, float64(self.monitor.Report.TokensAssembled.Load()))
	ch <- prometheus.MustNewConstMetric(self.NftsAssembled, prometheus.CounterValue, float64(self.monitor.Report.NftsAssembled.Load()))
	ch <- prometheus.MustNewConstMetric(self.UploadedBytes, prometheus.CounterValue, float64(self.monitor.Report.UploadedBytes.Load()))
	ch <- prometheus.MustNewConstMetric(self.ImageUploadErrors, prometheus.CounterValue, float64(self.monitor.Report.Errors.ImageUploadErrors.Load()))
	ch <- prometheus.MustNewConstMetric(self.MetadataUploadErrors, prometheus.CounterValue, float64(self.monitor.Report.Errors.MetadataUploadErrors.Load()))
	ch <- prometheus.MustNewConstMetric(self.PriceQuoteErrors, prometheus.CounterValue, float64(self.monitor.Report.Errors.PriceQuoteErrors.Load()))
	ch <- prometheus.MustNewConstMetric(self.RpcErrors, prometheus.CounterValue, float64(self.monitor.Report.Errors.RpcErrors.Load()))
	ch <- prometheus.MustNewConstMetric(self.SigningErrors, prometheus.CounterValue, float64(self.monitor.Report.Errors.SigningErrors.Load()))
	ch <- prometheus.MustNewConstMetric(self.DbNftInsert, prometheus.CounterValue, float64(self.monitor.Report.Errors.DbNftInsert.Load()))
}
