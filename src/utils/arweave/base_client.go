package arweave

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/warp-contracts/txinfo/src/utils/build_info"
	"github.com/warp-contracts/txinfo/src/utils/config"
	"github.com/warp-contracts/txinfo/src/utils/logger"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// Holds the resty client shared by all requests. Nothing here changes after construction.
type BaseClient struct {
	client *resty.Client
	config *config.Arweave
	log    *logrus.Entry
}

func newBaseClient(config *config.Arweave, httpClient *http.Client) (self *BaseClient, err error) {
	nodeUrl, err := url.Parse(config.NodeUrl)
	if err != nil ||
		nodeUrl.Host == "" ||
		(nodeUrl.Scheme != "http" && nodeUrl.Scheme != "https") {
		return nil, fmt.Errorf("%w: %q", ErrBadNodeUrl, config.NodeUrl)
	}

	self = new(BaseClient)
	self.config = config
	self.log = logger.NewSublogger("arweave-client")

	if httpClient == nil {
		self.client = resty.New().
			SetTimeout(self.config.RequestTimeout).
			SetTransport(self.createTransport())
	} else {
		// Timeouts and connection handling belong to the injected client
		self.client = resty.NewWithClient(httpClient)
	}

	self.client.
		SetBaseURL(strings.TrimSuffix(self.config.NodeUrl, "/")).
		SetHeader("User-Agent", self.config.UserAgent+"/"+build_info.Version).
		SetRetryCount(0).
		SetLogger(NewLogger()).
		OnAfterResponse(self.onBadRequest)

	return
}

func (self *BaseClient) createTransport() *http.Transport {
	dialer := &net.Dialer{
		Timeout:   self.config.DialerTimeout,
		KeepAlive: self.config.DialerKeepAlive,
	}

	return &http.Transport{
		// Some config options disable http2, try it anyway
		ForceAttemptHTTP2: true,

		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   self.config.TLSHandshakeTimeout,
		ExpectContinueTimeout: 1 * time.Second,

		// arweave.net may sometimes stop responding on idle connections
		IdleConnTimeout:     self.config.IdleConnTimeout,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     10,
	}
}

// Only logs, status codes are interpreted by the caller together with the body
func (self *BaseClient) onBadRequest(c *resty.Client, resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	entry := self.log.WithField("status", resp.StatusCode()).
		WithField("resp", string(resp.Body())).
		WithField("url", resp.Request.URL)
	if resp.StatusCode() > 399 && resp.StatusCode() < 500 {
		entry.Debug("Bad request")
	} else {
		entry.Warn("Unexpected status")
	}
	return nil
}

func (self *BaseClient) Request(ctx context.Context) *resty.Request {
	return self.client.R().SetContext(ctx)
}

// Non-success response that didn't carry an error envelope
func newStatusError(resp *resty.Response) error {
	return &TransportError{
		Message: fmt.Sprintf("unexpected status: %s", resp.Status()),
		Status:  resp.StatusCode(),
	}
}

// Request didn't complete at all
func newRequestError(err error) error {
	return &TransportError{
		Message: err.Error(),
		Err:     err,
	}
}
