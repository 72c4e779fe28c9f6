package server

import (
	"net/http"

	"github.com/SachinMhetre678/DevOpsESE-L3/internal/api"
	"github.com/SachinMhetre678/DevOpsESE-L3/load"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (s *Server) handleHome(c *gin.Context) {
	c.String(http.StatusOK, api.HomeMessage)
}

func (s *Server) handleData(c *gin.Context) {
	r := s.sensors.Read()
	c.JSON(http.StatusOK, api.SensorDataResponse{
		SensorID:    r.SensorID,
		Temperature: r.Temperature,
		Humidity:    r.Humidity,
		Timestamp:   api.FormatTimestamp(r.Timestamp),
	})
}

func (s *Server) handleCPULoad(c *gin.Context) {
	res := s.gen.Run()

	s.logger.Debug("cpu load completed",
		zap.Int64("elapsed_ms", res.ElapsedMillis()),
		zap.Float64("result", res.Accumulator),
	)

	c.JSON(http.StatusOK, api.CPULoadResponse{
		Message:         api.CPULoadMessage,
		CalculationTime: api.FormatMillis(res.ElapsedMillis()),
		CPUIntensity:    load.Intensity,
		Result:          res.Accumulator,
		Timestamp:       api.FormatTimestamp(s.now()),
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, api.HealthResponse{
		Status:    api.HealthStatusOK,
		Timestamp: api.FormatTimestamp(s.now()),
	})
}

func (s *Server) handleNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, api.ErrorResponse{Error: api.NotFoundMessage})
}

func (s *Server) recoverPanic(c *gin.Context, recovered any) {
	s.logger.Error("panic in handler",
		zap.Any("panic", recovered),
		zap.String("path", c.Request.URL.Path),
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Error: api.InternalErrorText})
}
