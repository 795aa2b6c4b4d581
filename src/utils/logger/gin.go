package logger

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// LOG returns a request scoped entry
func LOG(c *gin.Context) *logrus.Entry {
	return NewSublogger("server").
		WithField("method", c.Request.Method).
		WithField("path", c.Request.URL.Path)
}

// LOGE aborts the request with the given status and returns an entry for
// logging the cause. The error message is echoed to the client.
func LOGE(c *gin.Context, err error, status int) *logrus.Entry {
	entry := LOG(c).WithField("status", status)
	if err == nil {
		c.AbortWithStatus(status)
		return entry
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
	return entry.WithError(err)
}
