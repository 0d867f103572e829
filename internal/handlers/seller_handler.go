package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilhadomel/passeios/internal/models"
	"github.com/ilhadomel/passeios/internal/services"
)

func ListSellers(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sellers, err := cs.ListSellers(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(sellers, ""))
	}
}

func CreateSeller(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.SellerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		seller, err := cs.CreateSeller(c.Request.Context(), &input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(seller, "Seller created successfully"))
	}
}

func UpdateSeller(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.SellerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		seller, err := cs.UpdateSeller(c.Request.Context(), c.Param("id"), &input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(seller, "Seller updated successfully"))
	}
}

func DeleteSeller(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cs.DeleteSeller(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Seller deleted"))
	}
}

// ReferralLink returns the shareable link tagging sales to this seller for a
// chosen company.
func ReferralLink(rs *services.ReferralService) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID := c.Query("company_id")
		if companyID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("company_id query parameter is required"))
			return
		}
		link, err := rs.ReferralLink(c.Request.Context(), companyID, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"link": link}, ""))
	}
}

// ReferralQR serves the referral link as a PNG QR code.
func ReferralQR(rs *services.ReferralService) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID := c.Query("company_id")
		if companyID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("company_id query parameter is required"))
			return
		}
		png, err := rs.ReferralQR(c.Request.Context(), companyID, c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.Data(http.StatusOK, "image/png", png)
	}
}

func ListVouchers(rs *services.ReferralService) gin.HandlerFunc {
	return func(c *gin.Context) {
		vouchers, err := rs.ListVouchers(c.Request.Context(), c.Param("id"), c.Query("company_id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(vouchers, ""))
	}
}

func IssueVoucher(rs *services.ReferralService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			CompanyID string `json:"company_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		voucher, err := rs.IssueVoucher(c.Request.Context(), c.Param("id"), input.CompanyID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(voucher, "Voucher issued"))
	}
}

func DeleteVoucher(rs *services.ReferralService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := rs.DeleteVoucher(c.Request.Context(), c.Param("code")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Voucher deleted"))
	}
}

// VoucherSheet serves the printable PDF of a seller's vouchers for one
// company.
func VoucherSheet(rs *services.ReferralService) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID := c.Query("company_id")
		if companyID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("company_id query parameter is required"))
			return
		}
		pdf, err := rs.VoucherSheet(c.Request.Context(), c.Param("id"), companyID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="vouchers.pdf"`)
		c.Data(http.StatusOK, "application/pdf", pdf)
	}
}
