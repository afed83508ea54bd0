package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mjsmylie/NextObjective/api/http/presenter"
	"github.com/mjsmylie/NextObjective/pkg/user"
)

type UsersHandler struct {
	uc user.UseCase
}

func NewUsersHandler(uc user.UseCase) *UsersHandler { return &UsersHandler{uc: uc} }

type createUserRequest struct {
	Email string `json:"email"`
}

// Create registers a new user with an optional email.
// @Summary Create user
// @Tags    users
// @Accept  json
// @Produce json
// @Param   input body createUserRequest false "Optional email"
// @Success 200 {object} user.User
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /users [post]
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req createUserRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid JSON")
		}
	}
	u, err := h.uc.Register(c.Context(), req.Email)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to create user")
	}
	return presenter.JSON(c, http.StatusOK, u)
}

// Get fetches a registered user by id.
// @Summary Get user by id
// @Tags    users
// @Produce json
// @Param   user_id path string true "User id (UUID)"
// @Success 200 {object} user.User
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /users/{user_id} [get]
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "user_id must be a UUID")
	}
	u, err := h.uc.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "User not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to load user")
	}
	return presenter.JSON(c, http.StatusOK, u)
}
