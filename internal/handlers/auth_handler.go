package handlers

import (
	"neoflix/internal/models"
	"neoflix/internal/services"
	"neoflix/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	service services.AuthService
	logger  *logrus.Logger
}

func NewAuthHandler(service services.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create an account and return the user with a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param user body models.RegisterRequest true "Account details"
// @Success 200 {object} models.User "Registered user"
// @Failure 400 {object} utils.ErrorBody "Invalid body or email already registered"
// @Failure 500 {object} utils.ErrorBody "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.service.Register(c.UserContext(), req.Email, req.Password, req.Name)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

// Login godoc
// @Summary Log in
// @Description Check credentials and return the user with a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Email and password"
// @Success 200 {object} models.User "Authenticated user"
// @Failure 400 {object} utils.ErrorBody "Invalid body"
// @Failure 401 {object} utils.ErrorBody "Incorrect email or password"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.service.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}
