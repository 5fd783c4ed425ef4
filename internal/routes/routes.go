package routes

import (
	"neoflix/internal/handlers"
	"neoflix/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Auth    *handlers.AuthHandler
	Account *handlers.AccountHandler
	Movies  *handlers.MovieHandler
	Genres  *handlers.GenreHandler
	People  *handlers.PeopleHandler
}

// Setup mounts the API under /api. authenticate runs before every API route;
// /account routes additionally require a user.
func Setup(app *fiber.App, h Handlers, authenticate fiber.Handler) {
	api := app.Group("/api", authenticate)

	auth := api.Group("/auth")
	{
		auth.Post("/register", h.Auth.Register)
		auth.Post("/login", h.Auth.Login)
	}

	account := api.Group("/account", middleware.RequireUser())
	{
		account.Get("/", h.Account.GetAccount)
		account.Get("/favorites", h.Account.GetFavorites)
		account.Post("/favorites/:id", h.Account.AddFavorite)
		account.Delete("/favorites/:id", h.Account.RemoveFavorite)
		account.Get("/ratings/:id", h.Account.AddRating)
		account.Post("/ratings/:id", h.Account.AddRating)
	}

	movies := api.Group("/movies")
	{
		movies.Get("/", h.Movies.GetAllMovies)
		movies.Get("/:id", h.Movies.GetMovieByID)
		movies.Get("/:id/ratings", h.Movies.GetMovieRatings)
		movies.Get("/:id/similar", h.Movies.GetSimilarMovies)
	}

	genres := api.Group("/genres")
	{
		genres.Get("/", h.Genres.GetAllGenres)
		genres.Get("/:name", h.Genres.GetGenre)
		genres.Get("/:name/movies", h.Genres.GetGenreMovies)
	}

	people := api.Group("/people")
	{
		people.Get("/", h.People.GetAllPeople)
		people.Get("/:id", h.People.GetPerson)
		people.Get("/:id/similar", h.People.GetSimilarPeople)
		people.Get("/:id/acted", h.People.GetActedIn)
		people.Get("/:id/directed", h.People.GetDirected)
	}

	// unknown API paths must not fall through to the web client
	api.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
}
