package server

import (
	"io"
	"net/http"

	bookingdomain "github.com/ecoride/ecoride/internal/booking/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) CreateBooking(c *gin.Context) {
	var req bookingdomain.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.bookingSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": resp})
}

func (s *Server) ListBookings(c *gin.Context) {
	resp, err := s.bookingSvc.List(c.Request.Context(), bookingdomain.ListBookingRequest{
		Status:     c.Query("status"),
		CustomerID: c.Query("customer_id"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetBooking(c *gin.Context) {
	resp, err := s.bookingSvc.GetByID(c.Request.Context(), bookingdomain.GetBookingRequest{
		ID: c.Param("id"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CompleteBooking(c *gin.Context) {
	var req bookingdomain.CompleteBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}
	req.ID = c.Param("id")

	resp, err := s.bookingSvc.Complete(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) CancelBooking(c *gin.Context) {
	resp, err := s.bookingSvc.Cancel(c.Request.Context(), bookingdomain.CancelBookingRequest{
		ID: c.Param("id"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetBookingPricing(c *gin.Context) {
	resp, err := s.bookingSvc.Reprice(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetBookingInvoice(c *gin.Context) {
	resp, err := s.invoiceSvc.GetByBookingID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetBookingInvoicePDF(c *gin.Context) {
	doc, err := s.invoiceSvc.RenderPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, doc)
}
