package gateway

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/warp-contracts/txinfo/src/gateway/response"
	"github.com/warp-contracts/txinfo/src/utils/arweave"
	. "github.com/warp-contracts/txinfo/src/utils/logger"

	"github.com/gin-gonic/gin"
)

var ErrBadByteSize = errors.New("byte size needs to be a non-negative decimal integer")

func (self *Server) onGetPrice(c *gin.Context) {
	self.monitor.GetReport().Gateway.State.PriceRequests.Inc()

	size := c.Param("size")
	if !isDecimal(size) {
		self.monitor.GetReport().Gateway.Errors.BadRequest.Inc()
		LOGE(c, ErrBadByteSize, http.StatusBadRequest).Debug("Bad byte size")
		return
	}

	ctx, cancel := self.requestContext(c)
	defer cancel()

	price, err := self.client.GetPrice(ctx, size)
	if err != nil {
		self.onError(c, err)
		return
	}

	winston := strings.TrimSpace(price)
	ar, err := arweave.WinstonToAR(winston)
	if err != nil {
		self.onError(c, err)
		return
	}

	self.monitor.GetReport().Gateway.State.Successes.Inc()
	c.JSON(http.StatusOK, &response.Price{
		Winston: winston,
		AR:      ar.String(),
	})
}

func (self *Server) onGetTransaction(c *gin.Context) {
	self.monitor.GetReport().Gateway.State.TransactionRequests.Inc()

	ctx, cancel := self.requestContext(c)
	defer cancel()

	tx, err := self.client.GetTransaction(ctx, c.Param("id"))
	if err != nil {
		self.onError(c, err)
		return
	}

	self.monitor.GetReport().Gateway.State.Successes.Inc()
	c.JSON(http.StatusOK, tx)
}

func (self *Server) onGetStatus(c *gin.Context) {
	self.monitor.GetReport().Gateway.State.StatusRequests.Inc()

	ctx, cancel := self.requestContext(c)
	defer cancel()

	status, err := self.client.GetStatus(ctx, c.Param("id"))
	if err != nil {
		self.onError(c, err)
		return
	}

	self.monitor.GetReport().Gateway.State.Successes.Inc()
	c.JSON(http.StatusOK, status)
}

// Maps client errors to HTTP statuses
func (self *Server) onError(c *gin.Context, err error) {
	errs := &self.monitor.GetReport().Gateway.Errors

	var protocolErr *arweave.ProtocolError
	switch {
	case errors.As(err, &protocolErr):
		errs.Protocol.Inc()

		// Error envelope sent with 200 is still an upstream failure
		status := protocolErr.Payload.Status
		if status < http.StatusAccepted || status > 599 {
			status = http.StatusBadGateway
		}

		LOG(c).WithError(err).WithField("status", status).Debug("Arweave gateway reported an error")
		c.AbortWithStatusJSON(status, &response.Error{
			Error:  protocolErr.Payload.Message,
			Status: protocolErr.Payload.Status,
		})

	case errors.Is(err, arweave.ErrMalformed):
		errs.Malformed.Inc()
		LOGE(c, err, http.StatusBadGateway).Warn("Malformed response from Arweave gateway")

	case errors.Is(err, context.DeadlineExceeded):
		errs.Transport.Inc()
		LOGE(c, err, http.StatusGatewayTimeout).Warn("Arweave gateway timed out")

	default:
		errs.Transport.Inc()
		LOGE(c, err, http.StatusBadGateway).Warn("Failed to reach Arweave gateway")
	}
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
