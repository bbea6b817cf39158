package server

import (
	"time"

	"github.com/gin-gonic/gin"
)

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("Request handled")
	}
}

// latencyRecorder feeds each matched route's handling time into the
// endpoint's latency table. Unmatched paths are not recorded so probing
// clients cannot grow the table.
func (s *Server) latencyRecorder() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			return
		}
		ms := float64(time.Since(start).Microseconds()) / 1000
		if err := s.endpoint.RecordLatency(c.Request.Method+" "+route, ms); err != nil {
			s.log.Warn().Err(err).Str("route", route).Msg("Failed to record latency")
		}
	}
}
