package handlers

import (
	"neoflix/internal/middleware"
	"neoflix/internal/paging"
	"neoflix/internal/services"
	"neoflix/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PeopleHandler struct {
	people services.PeopleService
	movies services.MovieService
	logger *logrus.Logger
}

func NewPeopleHandler(people services.PeopleService, movies services.MovieService, logger *logrus.Logger) *PeopleHandler {
	return &PeopleHandler{
		people: people,
		movies: movies,
		logger: logger,
	}
}

// GetAllPeople godoc
// @Summary List people
// @Tags people
// @Produce json
// @Param q query string false "Case-sensitive name filter"
// @Param sort query string false "name, born or movieCount" default(name)
// @Param order query string false "ASC or DESC" default(ASC)
// @Param limit query int false "Page size" default(6)
// @Param skip query int false "Offset" default(0)
// @Success 200 {array} object "People"
// @Router /people [get]
func (h *PeopleHandler) GetAllPeople(c *fiber.Ctx) error {
	people, err := h.people.All(c.UserContext(), pageParams(c, paging.PeopleSort))
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, people)
}

// GetPerson godoc
// @Summary Get person by tmdbId
// @Tags people
// @Produce json
// @Param id path string true "Person tmdbId"
// @Success 200 {object} object "Person with actedCount and directedCount"
// @Failure 404 {object} utils.ErrorBody "Person not found"
// @Router /people/{id} [get]
func (h *PeopleHandler) GetPerson(c *fiber.Ctx) error {
	person, err := h.people.FindByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, person)
}

// GetSimilarPeople godoc
// @Summary People who worked on the same movies
// @Tags people
// @Produce json
// @Param id path string true "Person tmdbId"
// @Param limit query int false "Page size" default(6)
// @Param skip query int false "Offset" default(0)
// @Success 200 {array} object "People with inCommon"
// @Router /people/{id}/similar [get]
func (h *PeopleHandler) GetSimilarPeople(c *fiber.Ctx) error {
	people, err := h.people.Similar(c.UserContext(), c.Params("id"), pageParams(c, paging.NoSort))
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, people)
}

// GetActedIn godoc
// @Summary Movies a person acted in
// @Tags people
// @Produce json
// @Param id path string true "Person tmdbId"
// @Param sort query string false "title, released, imdbRating or score" default(title)
// @Param order query string false "ASC or DESC" default(ASC)
// @Param limit query int false "Page size" default(6)
// @Param skip query int false "Offset" default(0)
// @Success 200 {array} object "Movies"
// @Router /people/{id}/acted [get]
func (h *PeopleHandler) GetActedIn(c *fiber.Ctx) error {
	movies, err := h.movies.ForActor(c.UserContext(), c.Params("id"), pageParams(c, paging.MovieSort), middleware.UserID(c))
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movies)
}

// GetDirected godoc
// @Summary Movies a person directed
// @Tags people
// @Produce json
// @Param id path string true "Person tmdbId"
// @Param sort query string false "title, released, imdbRating or score" default(title)
// @Param order query string false "ASC or DESC" default(ASC)
// @Param limit query int false "Page size" default(6)
// @Param skip query int false "Offset" default(0)
// @Success 200 {array} object "Movies"
// @Router /people/{id}/directed [get]
func (h *PeopleHandler) GetDirected(c *fiber.Ctx) error {
	movies, err := h.movies.ForDirector(c.UserContext(), c.Params("id"), pageParams(c, paging.MovieSort), middleware.UserID(c))
	if err != nil {
		return err
	}
	return utils.SuccessResponse(c, fiber.StatusOK, movies)
}
