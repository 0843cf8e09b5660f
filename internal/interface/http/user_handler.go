package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-expense-tracker/internal/application"
	"github.com/oksasatya/go-expense-tracker/pkg/apperror"
	"github.com/oksasatya/go-expense-tracker/pkg/response"
	"github.com/oksasatya/go-expense-tracker/pkg/validation"
)

type UserHandler struct {
	Users  *application.UserService
	Logger logrus.FieldLogger
}

func NewUserHandler(users *application.UserService, logger logrus.FieldLogger) *UserHandler {
	return &UserHandler{Users: users, Logger: logger}
}

// Register POST /api/register
func (h *UserHandler) Register(c *gin.Context) {
	var p validation.UserPayload
	if !bindJSON(c, &p) {
		return
	}
	ctx := c.Request.Context()

	errs, err := validation.ValidateUser(ctx, p, validation.Required, h.Users, "")
	if err != nil {
		fail(c, err)
		return
	}
	if err := errs.Err(); err != nil {
		fail(c, err)
		return
	}

	u, err := h.Users.Create(ctx, application.StoreUserDTO{
		Name:     p.Name.Value,
		Email:    p.Email.Value,
		Password: p.Password.Value,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, NewUserResource(u))
}

// Show GET /api/user
func (h *UserHandler) Show(c *gin.Context) {
	u, found, err := h.Users.Find(c.Request.Context(), actingUser(c))
	if err != nil {
		fail(c, err)
		return
	}
	if !found {
		fail(c, apperror.ErrResourceNotFound)
		return
	}
	response.Success(c, 0, NewUserResource(u))
}

// Update PATCH|PUT /api/user
func (h *UserHandler) Update(c *gin.Context) {
	var p validation.UserPayload
	if !bindJSON(c, &p) {
		return
	}
	ctx := c.Request.Context()
	uid := actingUser(c)
	mode, presence := updateMode(c)

	errs, err := validation.ValidateUser(ctx, p, presence, h.Users, uid)
	if err != nil {
		fail(c, err)
		return
	}
	if err := errs.Err(); err != nil {
		fail(c, err)
		return
	}

	u, err := h.Users.Update(ctx, application.UpdateUserDTO{
		ID:       uid,
		Name:     p.Name.Ptr(),
		Email:    p.Email.Ptr(),
		Password: p.Password.Ptr(),
		Mode:     mode,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, 0, NewUserResource(u))
}

// Destroy DELETE /api/user
func (h *UserHandler) Destroy(c *gin.Context) {
	if _, err := h.Users.Destroy(c.Request.Context(), actingUser(c)); err != nil {
		fail(c, err)
		return
	}
	response.NoContent(c)
}
