package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/fleet-manager/internal/dto"
	"github.com/BruksfildServices01/fleet-manager/internal/httperr"
	"github.com/BruksfildServices01/fleet-manager/internal/middleware"
	ucAccount "github.com/BruksfildServices01/fleet-manager/internal/usecase/account"
)

type AuthHandler struct {
	register *ucAccount.Register
	login    *ucAccount.Login
	profile  *ucAccount.Profile
	remove   *ucAccount.Delete
	log      *logrus.Logger
}

func NewAuthHandler(
	register *ucAccount.Register,
	login *ucAccount.Login,
	profile *ucAccount.Profile,
	remove *ucAccount.Delete,
	log *logrus.Logger,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		profile:  profile,
		remove:   remove,
		log:      log,
	}
}

// --------- Requests ---------

// Field presence is validated in the usecase so missing-field responses carry
// the exact messages, not binding errors.

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Write(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	out, err := h.register.Execute(c.Request.Context(), ucAccount.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    dto.NewUserDTO(out.User),
		"token":   out.Token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Write(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	out, err := h.login.Execute(c.Request.Context(), ucAccount.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    dto.NewUserDTO(out.User),
		"token":   out.Token,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	user, err := h.profile.Execute(c.Request.Context(), userID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.NewUserDTO(user)})
}

func (h *AuthHandler) DeleteMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if err := h.remove.Execute(c.Request.Context(), userID); err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}
