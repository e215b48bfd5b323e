package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"MarketAnalytic/internal/calculator"
	"MarketAnalytic/internal/catalog"
	"MarketAnalytic/internal/model"
	"MarketAnalytic/internal/synth"
)

type historyQuery struct {
	Window string `form:"window"`
}

func (s *Server) health(c *gin.Context) {
	products, err := catalog.All(s.svc.Catalog())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"products":  len(products),
	})
}

func (s *Server) platforms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"platforms": s.svc.Catalog().Platforms()})
}

func (s *Server) products(c *gin.Context) {
	platformID := c.Param("platform")
	products, err := s.svc.Catalog().Products(platformID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"platform": platformID, "products": products})
}

func (s *Server) history(c *gin.Context) {
	var q historyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if q.Window == "" {
		q.Window = string(model.WindowMonth)
	}
	w, err := model.ParseWindow(q.Window)
	if err != nil {
		s.writeError(c, err)
		return
	}
	view, err := s.svc.View(c.Request.Context(), c.Param("id"), w)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// writeError maps domain errors to HTTP statuses.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrUnknownWindow):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "windows": model.Windows})
	case errors.Is(err, catalog.ErrUnknownProduct), errors.Is(err, catalog.ErrUnknownPlatform):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, synth.ErrInvalidSeed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "state": "invalid_seed"})
	case errors.Is(err, calculator.ErrEmptySeries):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "state": "no_data"})
	default:
		s.log.Error("request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
