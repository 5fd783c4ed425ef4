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

const (
	defaultRatingSort = "timestamp"
	MinRating         = 1
	MaxRating         = 5
)

type RatingService interface {
	ForMovie(ctx context.Context, movieID string, params paging.Params) ([]models.Review, error)
	Add(ctx context.Context, userID, movieID string, rating int) (models.Movie, error)
}

type ratingService struct {
	graph  database.Graph
	logger *logrus.Logger
}

func NewRatingService(graph database.Graph, logger *logrus.Logger) RatingService {
	return &ratingService{
		graph:  graph,
		logger: logger,
	}
}

// ForMovie returns a page of reviews for the movie, ordered by rating or
// timestamp (the default).
func (s *ratingService) ForMovie(ctx context.Context, movieID string, params paging.Params) ([]models.Review, error) {
	query := fmt.Sprintf(`
		MATCH (u:User)-[r:RATED]->(m:Movie {tmdbId: $id})
		RETURN r {
			.rating,
			.timestamp,
			user: u { id: u.userId, .name }
		} AS review
		ORDER BY %s
		SKIP $skip
		LIMIT $limit`, orderBy("r", params.SortOr(defaultRatingSort), params.Order))

	reviews, err := database.Read(ctx, s.graph, func(ctx context.Context, tx database.Tx) ([]models.Review, error) {
		rows, err := tx.Run(ctx, query, pageParams(params, map[string]any{"id": movieID}))
		if err != nil {
			return nil, err
		}
		values := column(rows, "review")
		reviews := make([]models.Review, 0, len(values))
		for _, value := range values {
			user, _ := value["user"].(map[string]any)
			reviews = append(reviews, models.Review{
				Rating:    int64Of(value["rating"]),
				Timestamp: int64Of(value["timestamp"]),
				User: models.ReviewUser{
					ID:   stringOf(user["id"]),
					Name: stringOf(user["name"]),
				},
			})
		}
		return reviews, nil
	})
	if err != nil {
		return nil, apperr.Internal(fmt.Sprintf("failed to list ratings for movie %s", movieID), err)
	}
	return reviews, nil
}

// Add creates or overwrites the user's RATED relationship to the movie and
// returns the movie with the stored rating.
func (s *ratingService) Add(ctx context.Context, userID, movieID string, rating int) (models.Movie, error) {
	if rating < MinRating || rating > MaxRating {
		return nil, apperr.Validation(fmt.Sprintf("Rating must be an integer between %d and %d", MinRating, MaxRating))
	}

	movie, err := database.Write(ctx, s.graph, func(ctx context.Context, tx database.Tx) (models.Movie, error) {
		rows, err := tx.Run(ctx, `
			MATCH (u:User {userId: $userId})
			MATCH (m:Movie {tmdbId: $movieId})
			MERGE (u)-[r:RATED]->(m)
			SET r.rating = $rating, r.timestamp = timestamp()
			RETURN m {
				.*,
				rating: r.rating
			} AS movie`,
			map[string]any{
				"userId":  userID,
				"movieId": movieID,
				"rating":  int64(rating),
			})
		if err != nil {
			return nil, err
		}
		movie, ok := first(rows, "movie")
		if !ok {
			return nil, apperr.NotFound(fmt.Sprintf("Couldn't create a rating relationship for User %s and Movie %s", userID, movieID))
		}
		return movie, nil
	})
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, err
		}
		return nil, apperr.Internal("failed to save rating", err)
	}

	s.logger.WithFields(logrus.Fields{
		"userId":  userID,
		"movieId": movieID,
		"rating":  rating,
	}).Debug("Rating saved")
	return movie, nil
}
