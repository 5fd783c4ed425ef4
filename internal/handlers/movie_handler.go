package handlers

import (
	"neoflix/internal/middleware"
	"neoflix/internal/paging"
	"neoflix/internal/services"
	"neoflix/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	movies  services.MovieService
	ratings services.RatingService
	logger  *logrus.Logger
}

func NewMovieHandler(movies services.MovieService, ratings services.RatingService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		movies:  movies,
		ratings: ratings,
		logger:  logger,
	}
}

// GetAllMovies godoc
// @Summary List movies
// @Description Paginated movies; each carries favorite for the current user
// @Tags movies
// @Produce json
// @Param sort query string false "title, released, imdbRating or score" default(title)
// @Param order query string false "ASC or DESC" default(ASC)
// @Param limit query int false "Page size" default(6)
// @Param skip query int false "Offset" default(0)
// @Success 200 {array} object "Movies"
// @Failure 500 {object} utils.ErrorBody "Internal server error"
// @Router /movies [get]
func (h *MovieHandler) GetAllMovies(c *fiber.Ctx) error {
	movies, err := h.movies.All(c.UserContext(), pageParams(c, paging.MovieSort), middleware.UserID(c))
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movies)
}

// GetMovieByID godoc
// @Summary Get movie by tmdbId
// @Description Movie with actors, directors, genres and ratingCount
// @Tags movies
// @Produce json
// @Param id path string true "Movie tmdbId"
// @Success 200 {object} object "Movie details"
// @Failure 404 {object} utils.ErrorBody "Movie not found"
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovieByID(c *fiber.Ctx) error {
	movie, err := h.movies.FindByID(c.UserContext(), c.Params("id"), middleware.UserID(c))
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movie)
}

// GetMovieRatings godoc
// @Summary List reviews of a movie
// @Tags movies
// @Produce json
// @Param id path string true "Movie tmdbId"
// @Param sort query string false "rating or timestamp" default(timestamp)
// @Param order query string false "ASC or DESC" default(ASC)
// @Param limit query int false "Page size" default(6)
// @Param skip query int false "Offset" default(0)
// @Success 200 {array} models.Review "Reviews"
// @Router /movies/{id}/ratings [get]
func (h *MovieHandler) GetMovieRatings(c *fiber.Ctx) error {
	reviews, err := h.ratings.ForMovie(c.UserContext(), c.Params("id"), pageParams(c, paging.RatingSort))
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, reviews)
}

// GetSimilarMovies godoc
// @Summary Similar movies
// @Description Movies sharing genres, actors or directors, ranked by score
// @Tags movies
// @Produce json
// @Param id path string true "Movie tmdbId"
// @Param limit query int false "Page size" default(6)
// @Param skip query int false "Offset" default(0)
// @Success 200 {array} object "Movies with score"
// @Router /movies/{id}/similar [get]
func (h *MovieHandler) GetSimilarMovies(c *fiber.Ctx) error {
	movies, err := h.movies.Similar(c.UserContext(), c.Params("id"), pageParams(c, paging.MovieSort), middleware.UserID(c))
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movies)
}
