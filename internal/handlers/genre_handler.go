package handlers

import (
	"neoflix/internal/middleware"
	"neoflix/internal/paging"
	"neoflix/internal/services"
	"neoflix/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GenreHandler struct {
	genres services.GenreService
	movies services.MovieService
	logger *logrus.Logger
}

func NewGenreHandler(genres services.GenreService, movies services.MovieService, logger *logrus.Logger) *GenreHandler {
	return &GenreHandler{
		genres: genres,
		movies: movies,
		logger: logger,
	}
}

// GetAllGenres godoc
// @Summary List genres
// @Tags genres
// @Produce json
// @Success 200 {array} models.Genre "Genres ordered by name"
// @Router /genres [get]
func (h *GenreHandler) GetAllGenres(c *fiber.Ctx) error {
	genres, err := h.genres.All(c.UserContext())
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, genres)
}

// GetGenre godoc
// @Summary Get genre by name
// @Tags genres
// @Produce json
// @Param name path string true "Genre name"
// @Success 200 {object} models.Genre
// @Failure 404 {object} utils.ErrorBody "Genre not found"
// @Router /genres/{name} [get]
func (h *GenreHandler) GetGenre(c *fiber.Ctx) error {
	genre, err := h.genres.Find(c.UserContext(), c.Params("name"))
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, genre)
}

// GetGenreMovies godoc
// @Summary List movies in a genre
// @Tags genres
// @Produce json
// @Param name path string true "Genre name"
// @Param sort query string false "title, released, imdbRating or score" default(title)
// @Param order query string false "ASC or DESC" default(ASC)
// @Param limit query int false "Page size" default(6)
// @Param skip query int false "Offset" default(0)
// @Success 200 {array} object "Movies"
// @Router /genres/{name}/movies [get]
func (h *GenreHandler) GetGenreMovies(c *fiber.Ctx) error {
	movies, err := h.movies.ByGenre(c.UserContext(), c.Params("name"), pageParams(c, paging.MovieSort), middleware.UserID(c))
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movies)
}
