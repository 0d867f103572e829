package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ilhadomel/passeios/internal/middleware"
	"github.com/ilhadomel/passeios/internal/models"
	"github.com/ilhadomel/passeios/internal/services"
)

func GetTour(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tour, err := cs.GetTour(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(tour, ""))
	}
}

func ListCompanyTours(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.GetActor(c)
		tours, err := cs.ListTours(c.Request.Context(), actor.CompanyID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(tours, ""))
	}
}

func CreateTour(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.GetActor(c)
		var input models.TourInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		tour, err := cs.CreateTour(c.Request.Context(), actor.CompanyID, &input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(tour, "Tour created successfully"))
	}
}

func UpdateTour(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.GetActor(c)
		if err := requireTourOwnership(c, cs, actor); err != nil {
			respondError(c, err)
			return
		}
		var input models.TourInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		tour, err := cs.UpdateTour(c.Request.Context(), c.Param("id"), &input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(tour, "Tour updated successfully"))
	}
}

func DeleteTour(cs *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middleware.GetActor(c)
		if err := requireTourOwnership(c, cs, actor); err != nil {
			respondError(c, err)
			return
		}
		if err := cs.DeleteTour(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Tour deleted"))
	}
}

// requireTourOwnership stops company staff from editing another company's
// tour. The master admin passes through.
func requireTourOwnership(c *gin.Context, cs *services.CatalogService, actor models.Actor) error {
	if actor.Role == models.RoleMaster {
		return nil
	}
	tour, err := cs.GetTour(c.Request.Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if tour.CompanyID != actor.CompanyID {
		return models.UnauthorizedError{Msg: "tour belongs to another company"}
	}
	return nil
}
