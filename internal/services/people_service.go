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

const defaultPeopleSort = "name"

type PeopleService interface {
	All(ctx context.Context, params paging.Params) ([]models.Person, error)
	FindByID(ctx context.Context, id string) (models.Person, error)
	Similar(ctx context.Context, id string, params paging.Params) ([]models.Person, error)
}

type peopleService struct {
	graph  database.Graph
	logger *logrus.Logger
}

func NewPeopleService(graph database.Graph, logger *logrus.Logger) PeopleService {
	return &peopleService{
		graph:  graph,
		logger: logger,
	}
}

// All returns a page of people, optionally filtered to names containing
// params.Query (case-sensitive).
func (s *peopleService) All(ctx context.Context, params paging.Params) ([]models.Person, error) {
	query := fmt.Sprintf(`
		MATCH (p:Person)
		WHERE $q IS NULL OR p.name CONTAINS $q
		RETURN p { .* } AS person
		ORDER BY %s
		SKIP $skip
		LIMIT $limit`, orderBy("p", params.SortOr(defaultPeopleSort), params.Order))

	people, err := database.Read(ctx, s.graph, func(ctx context.Context, tx database.Tx) ([]models.Person, error) {
		rows, err := tx.Run(ctx, query, pageParams(params, map[string]any{"q": params.QueryParam()}))
		if err != nil {
			return nil, err
		}
		return column(rows, "person"), nil
	})
	if err != nil {
		return nil, apperr.Internal("failed to list people", err)
	}
	return people, nil
}

func (s *peopleService) FindByID(ctx context.Context, id string) (models.Person, error) {
	person, err := database.Read(ctx, s.graph, func(ctx context.Context, tx database.Tx) (models.Person, error) {
		rows, err := tx.Run(ctx, `
			MATCH (p:Person {tmdbId: $id})
			RETURN p {
				.*,
				actedCount: count { (p)-[:ACTED_IN]->() },
				directedCount: count { (p)-[:DIRECTED]->() }
			} AS person`,
			map[string]any{"id": id})
		if err != nil {
			return nil, err
		}
		person, ok := first(rows, "person")
		if !ok {
			return nil, apperr.NotFound(fmt.Sprintf("Person with id %s not found", id))
		}
		return person, nil
	})
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, err
		}
		return nil, apperr.Internal(fmt.Sprintf("failed to find person %s", id), err)
	}
	return person, nil
}

// Similar returns people who acted in or directed the same movies, most
// movies in common first. Each carries inCommon: [{tmdbId, title, type}].
func (s *peopleService) Similar(ctx context.Context, id string, params paging.Params) ([]models.Person, error) {
	people, err := database.Read(ctx, s.graph, func(ctx context.Context, tx database.Tx) ([]models.Person, error) {
		rows, err := tx.Run(ctx, `
			MATCH (:Person {tmdbId: $id})-[:ACTED_IN|DIRECTED]->(m:Movie)<-[r:ACTED_IN|DIRECTED]-(p:Person)
			WITH p, collect(m { .tmdbId, .title, type: type(r) }) AS inCommon
			RETURN p {
				.*,
				actedCount: count { (p)-[:ACTED_IN]->() },
				directedCount: count { (p)-[:DIRECTED]->() },
				inCommon: inCommon
			} AS person
			ORDER BY size(inCommon) DESC
			SKIP $skip
			LIMIT $limit`,
			pageParams(params, map[string]any{"id": id}))
		if err != nil {
			return nil, err
		}
		return column(rows, "person"), nil
	})
	if err != nil {
		return nil, apperr.Internal(fmt.Sprintf("failed to find similar people for %s", id), err)
	}
	return people, nil
}
