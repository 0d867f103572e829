package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilhadomel/passeios/internal/models"
	"github.com/ilhadomel/passeios/internal/services"
)

func ListCompanies(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		companies, err := cs.ListCompanies(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(companies, ""))
	}
}

// GetCompanyBySlug serves the public company page: the company plus its
// tours.
func GetCompanyBySlug(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		company, tours, err := cs.GetCompanyBySlug(c.Request.Context(), slug)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"company": company,
			"tours":   tours,
		}, ""))
	}
}

func CreateCompany(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CompanyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		company, err := cs.CreateCompany(c.Request.Context(), &input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(company, "Company created successfully"))
	}
}

func UpdateCompany(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.CompanyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		company, err := cs.UpdateCompany(c.Request.Context(), c.Param("id"), &input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(company, "Company updated successfully"))
	}
}

func DeleteCompany(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cs.DeleteCompany(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Company deleted"))
	}
}
