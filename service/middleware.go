package service

import (
	"encoding/json"
	"time"

	"addressbook/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDKey = "request_id"

func (s *Server) RequestID(c *gin.Context) {
	id := uuid.NewString()
	c.Set(requestIDKey, id)
	c.Header("X-Request-ID", id)
	c.Next()
}

func (s *Server) RequestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	s.logger.Info("request",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("latency", time.Since(start)),
		zap.String("request_id", c.GetString(requestIDKey)))
}

// CacheUserRequest records the request in the activity log of the user named
// by the "username" query parameter.
func (s *Server) CacheUserRequest(c *gin.Context) {
	username, ok := c.GetQuery("username")
	if !ok || username == "" {
		c.Next()
		return
	}

	userRequest := models.UserRequest{
		ID:     c.GetString(requestIDKey),
		Method: c.Request.Method,
		Route:  c.Request.URL.Path,
	}

	request, err := json.Marshal(userRequest)
	if err == nil {
		err = s.cacher.Write(username, request)
	}
	// Not failing a request if there's a problem caching it
	if err != nil {
		s.logger.Warn("failed to cache user request", zap.String("username", username), zap.Error(err))
	}

	c.Next()
}
