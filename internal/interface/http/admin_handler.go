package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ratehub/ratehub/internal/application"
	"github.com/ratehub/ratehub/internal/domain/entity"
	repo "github.com/ratehub/ratehub/internal/domain/repository"
	"github.com/ratehub/ratehub/pkg/response"
	"github.com/ratehub/ratehub/pkg/validation"
)

// AdminHandler serves the admin surface: dashboard stats, user management
// and store management.
type AdminHandler struct {
	Auth    *application.AuthService
	Users   *application.UserService
	Stores  *application.StoreService
	Ratings *application.RatingService
	Logger  *logrus.Logger
}

func NewAdminHandler(auth *application.AuthService, users *application.UserService, stores *application.StoreService, ratings *application.RatingService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Auth: auth, Users: users, Stores: stores, Ratings: ratings, Logger: logger}
}

type createUserRequest struct {
	Name     string `json:"name" binding:"required,min=20,max=60"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Address  string `json:"address" binding:"omitempty,max=400"`
	Role     string `json:"role" binding:"omitempty,role"`
}

type createStoreRequest struct {
	Name    string `json:"name" binding:"required,min=20,max=60"`
	Email   string `json:"email" binding:"required,email"`
	Address string `json:"address" binding:"required,max=400"`
	OwnerID *int64 `json:"ownerId"`
}

// Dashboard GET /api/admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.Ratings.PlatformStats()
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats, "platform stats", nil)
}

// ListUsers GET /api/admin/users?search=&role=&sortBy=&order=
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Users.List(repo.UserFilter{
		Search: c.Query("search"),
		Role:   c.Query("role"),
		SortBy: c.Query("sortBy"),
		Order:  c.Query("order"),
	})
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, identityJSON(u))
	}
	response.Success(c, http.StatusOK, out, "users", gin.H{"count": len(out)})
}

// CreateUser POST /api/admin/users
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Auth.CreateUser(c.Request.Context(), application.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, identityJSON(u), "user created", nil)
}

// GetUser GET /api/admin/users/:id
func (h *AdminHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid user id", nil)
		return
	}
	u, err := h.Users.Get(id)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, identityJSON(u), "user", nil)
}

// ListStores GET /api/admin/stores?search=&address=&sortBy=
// Rows carry averageRating; no myRating on the admin view.
func (h *AdminHandler) ListStores(c *gin.Context) {
	stores, err := h.Stores.List(repo.StoreFilter{
		Search:  c.Query("search"),
		Address: c.Query("address"),
		SortBy:  c.Query("sortBy"),
	}, 0)
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

// CreateStore POST /api/admin/stores
func (h *AdminHandler) CreateStore(c *gin.Context) {
	var req createStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	s, err := h.Stores.Create(c.Request.Context(), application.CreateStoreInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		OwnerID: req.OwnerID,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, storeJSON(s), "store created", nil)
}

// SearchStores GET /api/admin/stores/search?q=&size=
// Full-text search over the Elasticsearch index.
func (h *AdminHandler) SearchStores(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Stores.Search(c.Request.Context(), q, size)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", gin.H{"count": len(hits)})
}

// UploadStoreLogo POST /api/admin/stores/:id/logo (multipart field "logo")
func (h *AdminHandler) UploadStoreLogo(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid store id", nil)
		return
	}
	fh, err := c.FormFile("logo")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing logo file", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		fail(c, err)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Stores.UploadLogo(c.Request.Context(), id, f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"logo_url": url}, "logo uploaded", nil)
}
