package gateway

import (
	"context"
	"net/http"

	. "github.com/warp-contracts/txinfo/src/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/xid"
	"github.com/teivah/onecontext"
)

const HeaderRequestId = "X-Request-Id"

// Reuses the caller's request id or generates a new one
func (self *Server) onRequestId(c *gin.Context) {
	id := c.GetHeader(HeaderRequestId)
	if id == "" {
		id = xid.New().String()
	}
	c.Set(ContextRequestId, id)
	c.Header(HeaderRequestId, id)
	c.Next()
}

func (self *Server) onRateLimit(c *gin.Context) {
	if !self.limiter.Allow() {
		self.monitor.GetReport().Gateway.Errors.RateLimited.Inc()
		LOGE(c, nil, http.StatusTooManyRequests).Warn("Rate limit exceeded")
		return
	}
	c.Next()
}

// Cancelled when the client disconnects, the server stops or the request takes too long
func (self *Server) requestContext(c *gin.Context) (ctx context.Context, cancel context.CancelFunc) {
	merged, cancelMerged := onecontext.Merge(self.Ctx, c.Request.Context())
	ctx, cancelTimeout := context.WithTimeout(merged, self.Config.Gateway.ServerRequestTimeout)
	return ctx, func() {
		cancelTimeout()
		cancelMerged()
	}
}
