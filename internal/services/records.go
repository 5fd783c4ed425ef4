package services

import (
	"context"
	"fmt"

	"neoflix/internal/database"
	"neoflix/internal/paging"
)

// orderBy renders "alias.`key` ORDER". key must come from a paging whitelist
// or a constant; it is never taken from the request directly.
func orderBy(alias, key string, order paging.Order) string {
	return fmt.Sprintf("%s.`%s` %s", alias, key, order)
}

func pageParams(params paging.Params, extra map[string]any) map[string]any {
	out := map[string]any{
		"skip":  params.Skip,
		"limit": params.Limit,
	}
	for key, value := range extra {
		out[key] = value
	}
	return out
}

// column extracts the map value of column from every row. The result is
// never nil so it serializes as [].
func column(rows []database.Row, name string) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		if value, ok := row[name].(map[string]any); ok {
			out = append(out, value)
		}
	}
	return out
}

func first(rows []database.Row, name string) (map[string]any, bool) {
	values := column(rows, name)
	if len(values) == 0 {
		return nil, false
	}
	return values[0], true
}

func stringOf(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func int64Of(value any) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

// getUserFavorites returns the tmdbIds of movies the user has favorited,
// read inside tx so the list agrees with the rest of the transaction. No
// user means no favorites.
func getUserFavorites(ctx context.Context, tx database.Tx, userID string) ([]string, error) {
	if userID == "" {
		return []string{}, nil
	}
	rows, err := tx.Run(ctx, `
		MATCH (:User {userId: $userId})-[:HAS_FAVORITE]->(m:Movie)
		RETURN m.tmdbId AS id`,
		map[string]any{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to read favorites: %w", err)
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		if id, ok := row["id"].(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
