package logger

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Key under which the request id is stored in gin.Context
const ContextRequestId = "request-id"

// Logger for a single REST request
func LOG(c *gin.Context) *logrus.Entry {
	return logger.WithFields(logrus.Fields{
		"module":     "txinfo.rest",
		"request_id": c.GetString(ContextRequestId),
		"path":       c.Request.URL.Path,
	})
}

// Aborts the request with the given status and returns a logger with the error attached
func LOGE(c *gin.Context, err error, status int) *logrus.Entry {
	message := http.StatusText(status)
	if err != nil {
		message = err.Error()
	}
	c.AbortWithStatusJSON(status, gin.H{"error": message})

	return LOG(c).WithError(err).WithField("status", status)
}
