package services

import (
	"context"
	"fmt"

	"neoflix/internal/apperr"
	"neoflix/internal/database"
	"neoflix/internal/models"

	"github.com/sirupsen/logrus"
)

type GenreService interface {
	All(ctx context.Context) ([]models.Genre, error)
	Find(ctx context.Context, name string) (*models.Genre, error)
}

type genreService struct {
	graph  database.Graph
	logger *logrus.Logger
}

func NewGenreService(graph database.Graph, logger *logrus.Logger) GenreService {
	return &genreService{
		graph:  graph,
		logger: logger,
	}
}

// The poster is taken from the highest rated movie in the genre that has one.
const genreProjection = `
	RETURN g {
		.name,
		link: '/genres/' + g.name,
		poster: head(COLLECT {
			MATCH (g)<-[:IN_GENRE]-(m:Movie)
			WHERE m.imdbRating IS NOT NULL AND m.poster IS NOT NULL
			RETURN m.poster
			ORDER BY m.imdbRating DESC
			LIMIT 1
		}),
		movies: count { (g)<-[:IN_GENRE]-(:Movie) }
	} AS genre`

func (s *genreService) All(ctx context.Context) ([]models.Genre, error) {
	genres, err := database.Read(ctx, s.graph, func(ctx context.Context, tx database.Tx) ([]models.Genre, error) {
		rows, err := tx.Run(ctx, `
			MATCH (g:Genre)
			WHERE g.name <> '(no genres listed)'
			`+genreProjection+`
			ORDER BY g.name ASC`, nil)
		if err != nil {
			return nil, err
		}
		return toGenres(column(rows, "genre")), nil
	})
	if err != nil {
		return nil, apperr.Internal("failed to list genres", err)
	}
	return genres, nil
}

func (s *genreService) Find(ctx context.Context, name string) (*models.Genre, error) {
	genre, err := database.Read(ctx, s.graph, func(ctx context.Context, tx database.Tx) (*models.Genre, error) {
		rows, err := tx.Run(ctx, `
			MATCH (g:Genre {name: $name})
			`+genreProjection, map[string]any{"name": name})
		if err != nil {
			return nil, err
		}
		value, ok := first(rows, "genre")
		if !ok {
			return nil, apperr.NotFound(fmt.Sprintf("Genre %s not found", name))
		}
		genre := toGenre(value)
		return &genre, nil
	})
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, err
		}
		return nil, apperr.Internal(fmt.Sprintf("failed to find genre %s", name), err)
	}
	return genre, nil
}

func toGenres(values []map[string]any) []models.Genre {
	genres := make([]models.Genre, 0, len(values))
	for _, value := range values {
		genres = append(genres, toGenre(value))
	}
	return genres
}

func toGenre(value map[string]any) models.Genre {
	name := stringOf(value["name"])
	link := stringOf(value["link"])
	if link == "" {
		link = models.GenreLink(name)
	}
	return models.Genre{
		Name:   name,
		Poster: stringOf(value["poster"]),
		Movies: int64Of(value["movies"]),
		Link:   link,
	}
}
