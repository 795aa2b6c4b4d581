package irys

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/mintforge/minter/src/utils/config"
	"github.com/mintforge/minter/src/utils/logger"
)

// Response of the bundling node to a successful upload
type UploadResponse struct {
	Id                  string   `json:"id"`
	Timestamp           uint64   `json:"timestamp"`
	Version             string   `json:"version"`
	DeadlineHeight      uint64   `json:"deadlineHeight"`
	DataCaches          []string `json:"dataCaches"`
	FastFinalityIndexes []string `json:"fastFinalityIndexes"`
	Public              string   `json:"public"`
	Signature           string   `json:"signature"`
	Owner               string   `json:"owner"`
}

// Client for one Irys bundling node. Uploads are paid from the Solana
// wallet matching the signer, so the token in all endpoints is "solana".
type Client struct {
	client  *resty.Client
	config  *config.Irys
	log     *logrus.Entry
	limiter *rate.Limiter

	nodeURL string
}

func NewClient(config *config.Irys, nodeURL string) (self *Client) {
	self = new(Client)
	self.config = config
	self.log = logger.NewSublogger("irys-client")
	self.nodeURL = strings.TrimSuffix(nodeURL, "/")
	self.limiter = rate.NewLimiter(rate.Every(config.LimiterInterval), config.LimiterBurstSize)

	self.client =
		resty.New().
			SetBaseURL(self.nodeURL).
			SetTimeout(self.config.RequestTimeout).
			SetHeader("User-Agent", "mintforge/minter").
			SetRetryCount(1).
			SetTransport(self.createTransport()).
			AddRetryCondition(self.onRetryCondition).
			AddRetryAfterErrorCondition().
			OnBeforeRequest(self.onRateLimit).
			OnAfterResponse(self.onStatusToError)

	return
}

func (self *Client) createTransport() *http.Transport {
	dialer := &net.Dialer{
		Timeout:   self.config.DialerTimeout,
		KeepAlive: self.config.DialerKeepAlive,
		DualStack: true,
	}

	return &http.Transport{
		ForceAttemptHTTP2: true,

		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   self.config.TLSHandshakeTimeout,
		ExpectContinueTimeout: 1 * time.Second,

		IdleConnTimeout:     self.config.IdleConnTimeout,
		MaxIdleConns:        1,
		MaxIdleConnsPerHost: 1,
		MaxConnsPerHost:     1,
	}
}

func (self *Client) onStatusToError(c *resty.Client, resp *resty.Response) error {
	// Non-success status code turns into an error
	if resp.IsSuccess() {
		return nil
	}
	if resp.StatusCode() > 399 && resp.StatusCode() < 500 {
		self.log.WithField("status", resp.StatusCode()).
			WithField("resp", string(resp.Body())).
			WithField("url", resp.Request.URL).
			Debug("Bad request")
	}
	return fmt.Errorf("unexpected status: %s", resp.Status())
}

// Returns true if request should be retried
func (self *Client) onRetryCondition(resp *resty.Response, err error) bool {
	if err != nil {
		// There was an error
		return false
	}

	// No error
	if resp.IsSuccess() || !resp.IsError() {
		// OK response or redirect, skip retrying
		return false
	}

	if resp.StatusCode() == http.StatusTooManyRequests {
		return false
	}

	// Server side errors may be retried
	return resp.StatusCode() >= 500
}

func (self *Client) onRateLimit(c *resty.Client, req *resty.Request) (err error) {
	// Blocks till the request is possible
	// Or ctx gets canceled
	err = self.limiter.Wait(req.Context())
	if err != nil {
		self.log.WithField("url", req.URL).WithError(err).Error("Rate limiting failed")
	}
	return
}

// Upload signs the item if needed and submits it to the bundling node
func (self *Client) Upload(ctx context.Context, signer Signer, item *BundleItem) (out *UploadResponse, err error) {
	reader, err := item.Reader(signer)
	if err != nil {
		return
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return
	}

	resp, err := self.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&UploadResponse{}).
		ForceContentType("application/json").
		SetHeader("Content-Type", "application/octet-stream").
		Post("/tx/solana")

	if resp != nil {
		if resp.StatusCode() == http.StatusPaymentRequired {
			err = ErrPaymentRequired
			return
		}
	}

	if err != nil {
		return
	}

	out, ok := resp.Result().(*UploadResponse)
	if !ok {
		err = ErrFailedToParse
		return
	}

	return
}

// GetPrice returns the upload cost for the given payload size in lamports
func (self *Client) GetPrice(ctx context.Context, numBytes int) (out uint64, err error) {
	resp, err := self.client.R().
		SetContext(ctx).
		SetPathParam("bytes", strconv.Itoa(numBytes)).
		Get("/price/solana/{bytes}")
	if err != nil {
		return
	}

	out, err = strconv.ParseUint(strings.TrimSpace(string(resp.Body())), 10, 64)
	if err != nil {
		err = ErrFailedToParse
	}
	return
}

// URI returns the gateway address serving the uploaded item
func (self *Client) URI(id string) string {
	return strings.TrimSuffix(self.config.GatewayURL, "/") + "/" + id
}
