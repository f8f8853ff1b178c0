package geolocation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dictionary-backend/internal/shared/response"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// GetAll handles GET /v1/geolocations.
func (h *Handler) GetAll(c *gin.Context) {
	locations, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	if locations == nil {
		locations = []GeoLocation{}
	}
	response.JSON(c, http.StatusOK, locations)
}
