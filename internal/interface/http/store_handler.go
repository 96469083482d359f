package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ratehub/ratehub/internal/application"
	repo "github.com/ratehub/ratehub/internal/domain/repository"
	"github.com/ratehub/ratehub/internal/interface/middleware"
	"github.com/ratehub/ratehub/pkg/response"
	"github.com/ratehub/ratehub/pkg/validation"
)

// StoreHandler serves the store browser available to every logged-in user.
type StoreHandler struct {
	Stores  *application.StoreService
	Ratings *application.RatingService
	Logger  *logrus.Logger
}

func NewStoreHandler(stores *application.StoreService, ratings *application.RatingService, logger *logrus.Logger) *StoreHandler {
	return &StoreHandler{Stores: stores, Ratings: ratings, Logger: logger}
}

type submitRatingRequest struct {
	Rating int `json:"rating" binding:"required,gte=1,lte=5"`
}

// List GET /api/stores?search=&address=&sortBy=
// Every row carries averageRating and, when present, the caller's myRating.
func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.Stores.List(repo.StoreFilter{
		Search:  c.Query("search"),
		Address: c.Query("address"),
		SortBy:  c.Query("sortBy"),
	}, middleware.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(stores))
	for _, s := range stores {
		out = append(out, ratedStoreJSON(s))
	}
	response.Success(c, http.StatusOK, out, "stores", gin.H{"count": len(out)})
}

// Rate POST /api/stores/:storeId/rate {rating}
// Resubmitting replaces the previous value; there is never more than one
// rating per user per store.
func (h *StoreHandler) Rate(c *gin.Context) {
	storeID, err := strconv.ParseInt(c.Param("storeId"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid store id", nil)
		return
	}
	var req submitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid rating", validation.ToDetails(err))
		return
	}
	r, err := h.Ratings.Submit(middleware.UserID(c), storeID, req.Rating)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"id":         r.ID,
		"storeId":    r.StoreID,
		"rating":     r.Value,
		"created_at": r.CreatedAt,
	}, "rating recorded", nil)
}
