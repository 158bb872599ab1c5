package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListRatePlans(c *gin.Context) {
	resp, err := s.ratePlanSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetRatePlan(c *gin.Context) {
	resp, err := s.ratePlanSvc.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
