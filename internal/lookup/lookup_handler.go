package lookup

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	options Options
	logger  *zap.Logger
}

func NewHandler(options Options, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("lookup.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("lookup.handler")
	}
	return &Handler{options: options, logger: l}
}

func (h *Handler) GetOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.options})
}
