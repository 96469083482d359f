package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ratehub/ratehub/internal/application"
	"github.com/ratehub/ratehub/internal/domain/entity"
	"github.com/ratehub/ratehub/pkg/response"
)

// identityJSON is the API shape of a user. The password hash never leaves
// the application layer.
func identityJSON(u *entity.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"address":    u.Address,
		"role":       u.Role,
		"created_at": u.CreatedAt,
	}
}

func storeJSON(s *entity.Store) gin.H {
	return gin.H{
		"id":         s.ID,
		"name":       s.Name,
		"email":      s.Email,
		"address":    s.Address,
		"owner_id":   s.OwnerID,
		"logo_url":   s.LogoURL,
		"created_at": s.CreatedAt,
	}
}

func ratedStoreJSON(s *entity.RatedStore) gin.H {
	out := storeJSON(&s.Store)
	out["averageRating"] = s.AverageRating
	if s.MyRating != nil {
		out["myRating"] = *s.MyRating
	}
	return out
}

// fail maps application errors onto HTTP statuses and writes the envelope.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, application.ErrEmailTaken):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrInvalidRating):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, application.ErrUserNotFound), errors.Is(err, application.ErrStoreNotFound):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	default:
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}
