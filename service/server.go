package service

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"addressbook/cache"
	"addressbook/db"
	"addressbook/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server exposes a Directory over HTTP. The directory itself is not safe for
// concurrent use, so every call into it holds mu.
type Server struct {
	mu        sync.Mutex
	directory models.Directory

	cacher cache.RequestCacher
	index  db.ContactIndex
	logger *zap.Logger
}

func NewServer(directory models.Directory, cacher cache.RequestCacher, index db.ContactIndex, logger *zap.Logger) *Server {
	if index == nil {
		index = db.NopContactIndex{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		directory: directory,
		cacher:    cacher,
		index:     index,
		logger:    logger,
	}
}

func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrDuplicate):
		status = http.StatusConflict
	}
	c.AbortWithStatusJSON(status, gin.H{"message": err.Error()})
}

// mirror pushes a change to the search index. Failures are logged and never
// fail the request.
func (s *Server) mirror(c *gin.Context, op string, update func(ctx context.Context) error) {
	if err := update(c.Request.Context()); err != nil {
		s.logger.Warn("search mirror update failed",
			zap.String("op", op),
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err))
	}
}
