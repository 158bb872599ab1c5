package server

import (
	"net/http"

	driverdomain "github.com/ecoride/ecoride/internal/driver/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) CreateDriver(c *gin.Context) {
	var req driverdomain.CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.driverSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListDrivers(c *gin.Context) {
	resp, err := s.driverSvc.List(c.Request.Context(), driverdomain.ListDriverRequest{
		Status: c.Query("status"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetDriver(c *gin.Context) {
	resp, err := s.driverSvc.GetByID(c.Request.Context(), driverdomain.GetDriverRequest{
		ID: c.Param("id"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) SetDriverStatus(c *gin.Context) {
	var req driverdomain.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.ID = c.Param("id")

	resp, err := s.driverSvc.SetStatus(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
