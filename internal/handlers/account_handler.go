package handlers

import (
	"neoflix/internal/middleware"
	"neoflix/internal/models"
	"neoflix/internal/paging"
	"neoflix/internal/services"
	"neoflix/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// AccountHandler serves the authenticated user's favorites and ratings.
type AccountHandler struct {
	favorites services.FavoriteService
	ratings   services.RatingService
	logger    *logrus.Logger
}

func NewAccountHandler(favorites services.FavoriteService, ratings services.RatingService, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{
		favorites: favorites,
		ratings:   ratings,
		logger:    logger,
	}
}

// GetAccount godoc
// @Summary Current account
// @Tags account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.AccountResponse
// @Failure 401 {object} utils.ErrorBody "Unauthorized"
// @Router /account [get]
func (h *AccountHandler) GetAccount(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, models.AccountResponse{UserID: middleware.UserID(c)})
}

// GetFavorites godoc
// @Summary List favorite movies
// @Tags account
// @Produce json
// @Security BearerAuth
// @Param sort query string false "title, released, imdbRating or score" default(title)
// @Param order query string false "ASC or DESC" default(ASC)
// @Param limit query int false "Page size" default(6)
// @Param skip query int false "Offset" default(0)
// @Success 200 {array} object "Favorite movies"
// @Failure 401 {object} utils.ErrorBody "Unauthorized"
// @Router /account/favorites [get]
func (h *AccountHandler) GetFavorites(c *fiber.Ctx) error {
	movies, err := h.favorites.All(c.UserContext(), middleware.UserID(c), pageParams(c, paging.MovieSort))
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movies)
}

// AddFavorite godoc
// @Summary Add a movie to favorites
// @Tags account
// @Produce json
// @Security BearerAuth
// @Param id path string true "Movie tmdbId"
// @Success 200 {object} object "Movie with favorite set to true"
// @Failure 401 {object} utils.ErrorBody "Unauthorized"
// @Failure 404 {object} utils.ErrorBody "User or movie not found"
// @Router /account/favorites/{id} [post]
func (h *AccountHandler) AddFavorite(c *fiber.Ctx) error {
	movie, err := h.favorites.Add(c.UserContext(), middleware.UserID(c), c.Params("id"))
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

// RemoveFavorite godoc
// @Summary Remove a movie from favorites
// @Tags account
// @Produce json
// @Security BearerAuth
// @Param id path string true "Movie tmdbId"
// @Success 200 {object} object "Movie with favorite set to false"
// @Failure 401 {object} utils.ErrorBody "Unauthorized"
// @Failure 404 {object} utils.ErrorBody "Movie was not a favorite"
// @Router /account/favorites/{id} [delete]
func (h *AccountHandler) RemoveFavorite(c *fiber.Ctx) error {
	movie, err := h.favorites.Remove(c.UserContext(), middleware.UserID(c), c.Params("id"))
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

// AddRating godoc
// @Summary Rate a movie
// @Description Body is a rating from 1 to 5, either bare (5 or "5") or as {"rating": 5}. Also served on GET.
// @Tags account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Movie tmdbId"
// @Param rating body models.RatingRequest true "Rating"
// @Success 200 {object} object "Movie with the saved rating"
// @Failure 400 {object} utils.ErrorBody "Invalid rating"
// @Failure 401 {object} utils.ErrorBody "Unauthorized"
// @Failure 404 {object} utils.ErrorBody "User or movie not found"
// @Router /account/ratings/{id} [post]
func (h *AccountHandler) AddRating(c *fiber.Ctx) error {
	rating, err := parseRating(c.Body())
	if err != nil {
		return err
	}

	movie, err := h.ratings.Add(c.UserContext(), middleware.UserID(c), c.Params("id"), rating)
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}
