package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ratehub/ratehub/internal/application"
	"github.com/ratehub/ratehub/internal/interface/middleware"
	"github.com/ratehub/ratehub/pkg/response"
)

// OwnerHandler serves the store-owner dashboard.
type OwnerHandler struct {
	Ratings *application.RatingService
	Logger  *logrus.Logger
}

func NewOwnerHandler(ratings *application.RatingService, logger *logrus.Logger) *OwnerHandler {
	return &OwnerHandler{Ratings: ratings, Logger: logger}
}

// Dashboard GET /api/owner/dashboard
// One entry per owned store with its average and the raters behind it. An
// owner with no stores gets an empty list.
func (h *OwnerHandler) Dashboard(c *gin.Context) {
	rollups, err := h.Ratings.OwnerRollup(middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, rollups, "owner dashboard", gin.H{"count": len(rollups)})
}
