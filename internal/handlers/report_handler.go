package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilhadomel/passeios/internal/middleware"
	"github.com/ilhadomel/passeios/internal/models"
	"github.com/ilhadomel/passeios/internal/services"
)

// PlatformReport is the master dashboard view: totals plus per-company and
// per-seller breakdowns.
func PlatformReport(rs *services.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := rs.Platform(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(report, ""))
	}
}

func CompanySellerReport(rs *services.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.GetActor(c)
		rows, err := rs.CompanySellers(c.Request.Context(), actor.CompanyID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(rows, ""))
	}
}

func SellerSalesReport(rs *services.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		row, err := rs.SellerSales(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(row, ""))
	}
}
