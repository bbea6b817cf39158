package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/genc-murat/crystalmetrics/internal/core/models"
	util "github.com/genc-murat/crystalmetrics/pkg/utils"
)

const scrapeContentType = "text/plain; version=0.0.4; charset=utf-8"

func (s *Server) registerRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/info", s.handleInfo)

	m := s.router.Group("/metrics")
	m.GET("", s.handleScrape)
	m.GET("/json", s.handleJSON)
	m.GET("/csv", s.handleCSV)
	m.GET("/summary", s.handleSummary)
	m.GET("/snapshot", s.handleSnapshot)
	m.POST("/collect", s.handleCollect)

	m.GET("/alerts", s.handleAlerts)
	m.POST("/alerts", s.handleAddRule)
	m.DELETE("/alerts/:metric", s.handleRemoveRule)
	m.PUT("/alerts/:metric/enabled", s.handleSetRuleEnabled)

	m.POST("/series/:name", s.handleRecordValue)
	m.PUT("/extensions/:id", s.handleExtensionStatus)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "healthy",
		"collecting": s.endpoint.IsCollecting(),
	})
}

func (s *Server) handleInfo(c *gin.Context) {
	info := util.SummaryInfo(s.endpoint.Summary())
	c.String(http.StatusOK, util.FormatInfoResponse(info))
}

func (s *Server) handleScrape(c *gin.Context) {
	body, err := s.endpoint.ExportScrape()
	if errors.Is(err, models.ErrScrapeDisabled) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, scrapeContentType, []byte(body))
}

func (s *Server) handleJSON(c *gin.Context) {
	body, err := s.endpoint.ExportJSON()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (s *Server) handleCSV(c *gin.Context) {
	body, err := s.endpoint.ExportCSV()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="metrics.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
}

func (s *Server) handleSummary(c *gin.Context) {
	c.JSON(http.StatusOK, s.endpoint.Summary())
}

// handleSnapshot serves the composite view; ?last=N limits each series to
// its N newest samples.
func (s *Server) handleSnapshot(c *gin.Context) {
	lastN := -1
	if raw := c.Query("last"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "last must be a non-negative integer"})
			return
		}
		lastN = n
	}
	c.JSON(http.StatusOK, s.endpoint.Snapshot(lastN))
}

func (s *Server) handleCollect(c *gin.Context) {
	s.endpoint.CollectNow()
	c.JSON(http.StatusOK, s.endpoint.Summary())
}

func (s *Server) handleAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, s.endpoint.Alerts())
}

func (s *Server) handleAddRule(c *gin.Context) {
	var req struct {
		Metric      string  `json:"metric" binding:"required"`
		Warning     float64 `json:"warning"`
		Critical    float64 `json:"critical"`
		Enabled     *bool   `json:"enabled"`
		Description string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule := models.AlertRule{
		MetricName:  req.Metric,
		Warning:     req.Warning,
		Critical:    req.Critical,
		Enabled:     req.Enabled == nil || *req.Enabled,
		Description: req.Description,
	}
	s.endpoint.AddRule(rule)
	c.JSON(http.StatusCreated, rule)
}

func (s *Server) handleRemoveRule(c *gin.Context) {
	s.endpoint.RemoveRule(c.Param("metric"))
	c.Status(http.StatusNoContent)
}

func (s *Server) handleSetRuleEnabled(c *gin.Context) {
	var req struct {
		Enabled *bool `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.endpoint.SetRuleEnabled(c.Param("metric"), *req.Enabled); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleRecordValue(c *gin.Context) {
	var req struct {
		Value *float64 `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.endpoint.RecordValue(c.Param("name"), *req.Value); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleExtensionStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.endpoint.RecordExtensionStatus(c.Param("id"), req.Status)
	c.Status(http.StatusNoContent)
}

func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrUnknownMetric):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrInvalidValue):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
