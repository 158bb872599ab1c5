package server

import (
	"net/http"

	vehicledomain "github.com/ecoride/ecoride/internal/vehicle/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) CreateVehicle(c *gin.Context) {
	var req vehicledomain.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.vehicleSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListVehicles(c *gin.Context) {
	resp, err := s.vehicleSvc.List(c.Request.Context(), vehicledomain.ListVehicleRequest{
		Status: c.Query("status"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetVehicle(c *gin.Context) {
	resp, err := s.vehicleSvc.GetByID(c.Request.Context(), vehicledomain.GetVehicleRequest{
		ID: c.Param("id"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) SetVehicleStatus(c *gin.Context) {
	var req vehicledomain.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.ID = c.Param("id")

	resp, err := s.vehicleSvc.SetStatus(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}
