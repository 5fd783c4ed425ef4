package services

import (
	"context"
	"fmt"

	"neoflix/internal/apperr"
	"neoflix/internal/database"
	"neoflix/internal/models"
	"neoflix/internal/paging"

	"github.com/sirupsen/logrus"
)

const defaultMovieSort = "title"

type MovieService interface {
	All(ctx context.Context, params paging.Params, userID string) ([]models.Movie, error)
	ByGenre(ctx context.Context, name string, params paging.Params, userID string) ([]models.Movie, error)
	ForActor(ctx context.Context, personID string, params paging.Params, userID string) ([]models.Movie, error)
	ForDirector(ctx context.Context, personID string, params paging.Params, userID string) ([]models.Movie, error)
	FindByID(ctx context.Context, id string, userID string) (models.Movie, error)
	Similar(ctx context.Context, id string, params paging.Params, userID string) ([]models.Movie, error)
}

type movieService struct {
	graph  database.Graph
	logger *logrus.Logger
}

func NewMovieService(graph database.Graph, logger *logrus.Logger) MovieService {
	return &movieService{
		graph:  graph,
		logger: logger,
	}
}

// All returns a page of movies ordered by the requested sort key, each
// flagged with whether userID has favorited it.
func (s *movieService) All(ctx context.Context, params paging.Params, userID string) ([]models.Movie, error) {
	return s.list(ctx, "(m:Movie)", nil, params, userID)
}

func (s *movieService) ByGenre(ctx context.Context, name string, params paging.Params, userID string) ([]models.Movie, error) {
	return s.list(ctx, "(m:Movie)-[:IN_GENRE]->(:Genre {name: $name})",
		map[string]any{"name": name}, params, userID)
}

func (s *movieService) ForActor(ctx context.Context, personID string, params paging.Params, userID string) ([]models.Movie, error) {
	return s.list(ctx, "(:Person {tmdbId: $id})-[:ACTED_IN]->(m:Movie)",
		map[string]any{"id": personID}, params, userID)
}

func (s *movieService) ForDirector(ctx context.Context, personID string, params paging.Params, userID string) ([]models.Movie, error) {
	return s.list(ctx, "(:Person {tmdbId: $id})-[:DIRECTED]->(m:Movie)",
		map[string]any{"id": personID}, params, userID)
}

// list runs the shared movie list template. anchor is a constant pattern
// binding m; the sort key is whitelisted by paging.
func (s *movieService) list(ctx context.Context, anchor string, extra map[string]any, params paging.Params, userID string) ([]models.Movie, error) {
	sortKey := params.SortOr(defaultMovieSort)
	query := fmt.Sprintf(`
		MATCH %s
		WHERE m.`+"`%s`"+` IS NOT NULL
		RETURN m {
			.*,
			favorite: m.tmdbId IN $favorites
		} AS movie
		ORDER BY %s
		SKIP $skip
		LIMIT $limit`, anchor, sortKey, orderBy("m", sortKey, params.Order))

	movies, err := database.Read(ctx, s.graph, func(ctx context.Context, tx database.Tx) ([]models.Movie, error) {
		favorites, err := getUserFavorites(ctx, tx, userID)
		if err != nil {
			return nil, err
		}
		args := pageParams(params, extra)
		args["favorites"] = favorites

		rows, err := tx.Run(ctx, query, args)
		if err != nil {
			return nil, err
		}
		return column(rows, "movie"), nil
	})
	if err != nil {
		return nil, apperr.Internal("failed to list movies", err)
	}
	return movies, nil
}

// FindByID returns a movie with its actors, directors, genres and number of ratings.
func (s *movieService) FindByID(ctx context.Context, id string, userID string) (models.Movie, error) {
	movie, err := database.Read(ctx, s.graph, func(ctx context.Context, tx database.Tx) (models.Movie, error) {
		favorites, err := getUserFavorites(ctx, tx, userID)
		if err != nil {
			return nil, err
		}
		rows, err := tx.Run(ctx, `
			MATCH (m:Movie {tmdbId: $id})
			RETURN m {
				.*,
				actors: [ (a)-[r:ACTED_IN]->(m) | a { .*, role: r.role } ],
				directors: [ (d)-[:DIRECTED]->(m) | d { .* } ],
				genres: [ (m)-[:IN_GENRE]->(g) | g { .name } ],
				ratingCount: count { (m)<-[:RATED]-() },
				favorite: m.tmdbId IN $favorites
			} AS movie
			LIMIT 1`,
			map[string]any{"id": id, "favorites": favorites})
		if err != nil {
			return nil, err
		}
		movie, ok := first(rows, "movie")
		if !ok {
			return nil, apperr.NotFound(fmt.Sprintf("Movie with id %s not found", id))
		}
		return movie, nil
	})
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, err
		}
		return nil, apperr.Internal(fmt.Sprintf("failed to find movie %s", id), err)
	}
	return movie, nil
}

// Similar ranks movies sharing genres, actors or directors with the movie by
// imdbRating times the number of shared neighbours. The ranking ignores the
// sort and order parameters.
func (s *movieService) Similar(ctx context.Context, id string, params paging.Params, userID string) ([]models.Movie, error) {
	movies, err := database.Read(ctx, s.graph, func(ctx context.Context, tx database.Tx) ([]models.Movie, error) {
		favorites, err := getUserFavorites(ctx, tx, userID)
		if err != nil {
			return nil, err
		}
		args := pageParams(params, map[string]any{"id": id})
		args["favorites"] = favorites

		rows, err := tx.Run(ctx, `
			MATCH (current:Movie {tmdbId: $id})-[:IN_GENRE|ACTED_IN|DIRECTED]-()-[:IN_GENRE|ACTED_IN|DIRECTED]-(m:Movie)
			WHERE m <> current AND m.imdbRating IS NOT NULL
			WITH m, count(*) AS inCommon
			WITH m, inCommon, m.imdbRating * inCommon AS score
			ORDER BY score DESC
			SKIP $skip
			LIMIT $limit
			RETURN m {
				.*,
				score: score,
				favorite: m.tmdbId IN $favorites
			} AS movie`, args)
		if err != nil {
			return nil, err
		}
		return column(rows, "movie"), nil
	})
	if err != nil {
		return nil, apperr.Internal(fmt.Sprintf("failed to find similar movies for %s", id), err)
	}
	return movies, nil
}
