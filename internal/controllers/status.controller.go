package controllers

import (
	"net/http"

	"watchpost/internal/services"

	"github.com/gin-gonic/gin"
)

// StatusController serves the aggregated host snapshot.
type StatusController struct {
	collector *services.Collector
}

func NewStatusController(collector *services.Collector) *StatusController {
	return &StatusController{collector: collector}
}

// GetStatus builds one fresh snapshot per request. Probe failures are
// absorbed inside the pipeline, so this handler never returns an error
// status.
func (sc *StatusController) GetStatus(c *gin.Context) {
	snapshot := sc.collector.Snapshot(c.Request.Context())
	c.JSON(http.StatusOK, snapshot)
}
