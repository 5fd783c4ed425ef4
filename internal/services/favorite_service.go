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

type FavoriteService interface {
	All(ctx context.Context, userID string, params paging.Params) ([]models.Movie, error)
	Add(ctx context.Context, userID, movieID string) (models.Movie, error)
	Remove(ctx context.Context, userID, movieID string) (models.Movie, error)
}

type favoriteService struct {
	graph  database.Graph
	logger *logrus.Logger
}

func NewFavoriteService(graph database.Graph, logger *logrus.Logger) FavoriteService {
	return &favoriteService{
		graph:  graph,
		logger: logger,
	}
}

func favoriteNotFound(userID, movieID string) error {
	return apperr.NotFound(fmt.Sprintf("Couldn't create a favorite relationship for User %s and Movie %s", userID, movieID))
}

func (s *favoriteService) All(ctx context.Context, userID string, params paging.Params) ([]models.Movie, error) {
	query := fmt.Sprintf(`
		MATCH (:User {userId: $userId})-[:HAS_FAVORITE]->(m:Movie)
		RETURN m {
			.*,
			favorite: true
		} AS movie
		ORDER BY %s
		SKIP $skip
		LIMIT $limit`, orderBy("m", params.SortOr(defaultMovieSort), params.Order))

	movies, err := database.Read(ctx, s.graph, func(ctx context.Context, tx database.Tx) ([]models.Movie, error) {
		rows, err := tx.Run(ctx, query, pageParams(params, map[string]any{"userId": userID}))
		if err != nil {
			return nil, err
		}
		return column(rows, "movie"), nil
	})
	if err != nil {
		return nil, apperr.Internal(fmt.Sprintf("failed to list favorites for user %s", userID), err)
	}
	return movies, nil
}

// Add links the user to the movie. Adding an existing favorite is a no-op.
func (s *favoriteService) Add(ctx context.Context, userID, movieID string) (models.Movie, error) {
	return s.write(ctx, userID, movieID, `
		MATCH (u:User {userId: $userId})
		MATCH (m:Movie {tmdbId: $movieId})
		MERGE (u)-[r:HAS_FAVORITE]->(m)
			ON CREATE SET r.createdAt = datetime()
		RETURN m {
			.*,
			favorite: true
		} AS movie`)
}

// Remove deletes the link; a missing link is a not-found error.
func (s *favoriteService) Remove(ctx context.Context, userID, movieID string) (models.Movie, error) {
	return s.write(ctx, userID, movieID, `
		MATCH (u:User {userId: $userId})-[r:HAS_FAVORITE]->(m:Movie {tmdbId: $movieId})
		DELETE r
		RETURN m {
			.*,
			favorite: false
		} AS movie`)
}

func (s *favoriteService) write(ctx context.Context, userID, movieID, query string) (models.Movie, error) {
	movie, err := database.Write(ctx, s.graph, func(ctx context.Context, tx database.Tx) (models.Movie, error) {
		rows, err := tx.Run(ctx, query, map[string]any{
			"userId":  userID,
			"movieId": movieID,
		})
		if err != nil {
			return nil, err
		}
		movie, ok := first(rows, "movie")
		if !ok {
			return nil, favoriteNotFound(userID, movieID)
		}
		return movie, nil
	})
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			s.logger.WithFields(logrus.Fields{"userId": userID, "movieId": movieID}).Debug("Favorite target not found")
			return nil, err
		}
		return nil, apperr.Internal("failed to update favorite", err)
	}
	return movie, nil
}
