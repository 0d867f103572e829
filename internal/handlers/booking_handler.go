package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilhadomel/passeios/internal/middleware"
	"github.com/ilhadomel/passeios/internal/models"
	"github.com/ilhadomel/passeios/internal/services"
)

func CreateBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.BookingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		booking, err := bs.Create(c.Request.Context(), &input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(booking, "Booking created successfully"))
	}
}

// SearchBookings is the customer self-service lookup. The CPF travels in the
// request body so it never lands in access logs.
func SearchBookings(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			CPF string `json:"cpf" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		summaries, err := bs.SearchByCPF(c.Request.Context(), input.CPF)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(summaries, ""))
	}
}

// CancelBooking lets a customer cancel their own booking by proving
// ownership with the stored CPF.
func CancelBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			CPF string `json:"cpf" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		booking, err := bs.CancelByCustomer(c.Request.Context(), c.Param("id"), input.CPF)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(booking, "Booking cancelled"))
	}
}

func ListCompanyBookings(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.GetActor(c)
		status := models.BookingStatus(c.Query("status"))
		bookings, err := bs.ListForCompany(c.Request.Context(), actor.CompanyID, status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(bookings, ""))
	}
}

func SetBookingStatus(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.GetActor(c)
		var input struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		booking, err := bs.SetStatus(c.Request.Context(), c.Param("id"), models.BookingStatus(input.Status), actor)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(booking, "Booking status updated"))
	}
}
