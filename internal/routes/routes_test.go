package routes_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"neoflix/internal/auth"
	"neoflix/internal/config"
	"neoflix/internal/database"
	"neoflix/internal/database/databasetest"
	"neoflix/internal/handlers"
	"neoflix/internal/middleware"
	"neoflix/internal/routes"
	"neoflix/internal/services"
	"neoflix/internal/utils"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalog is a tiny in-memory graph answering the queries the services send.
type catalog struct {
	mu        sync.Mutex
	emails    map[string]bool
	favorites map[string]map[string]bool
	movies    map[string]map[string]any
}

func newCatalog() *catalog {
	return &catalog{
		emails:    map[string]bool{},
		favorites: map[string]map[string]bool{},
		movies: map[string]map[string]any{
			"862": {"tmdbId": "862", "title": "Toy Story", "imdbRating": 8.3},
			"769": {"tmdbId": "769", "title": "GoodFellas", "imdbRating": 8.7},
		},
	}
}

func (g *catalog) movie(id string, extra map[string]any) map[string]any {
	out := map[string]any{}
	for k, v := range g.movies[id] {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

func (g *catalog) handle(mode, query string, params map[string]any) ([]database.Row, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	userID, _ := params["userId"].(string)
	movieID, _ := params["movieId"].(string)
	_, movieExists := g.movies[movieID]
	// users in the fixture are anyone with a uuid-looking or test id, except "unknown"
	userExists := userID != "" && userID != "unknown"

	switch {
	case strings.Contains(query, "CREATE (u:User"):
		email := params["email"].(string)
		if g.emails[email] {
			return nil, &neo4j.Neo4jError{Code: "Neo.ClientError.Schema.ConstraintValidationFailed", Msg: "already exists"}
		}
		g.emails[email] = true
		return []database.Row{{"u": map[string]any{"userId": params["userId"], "email": email, "name": params["name"]}}}, nil

	case strings.Contains(query, "MATCH (g:Genre {name: $name})"):
		name, _ := params["name"].(string)
		if name != "Science Fiction" {
			return []database.Row{}, nil
		}
		return []database.Row{{"genre": map[string]any{"name": name, "movies": int64(1), "link": "/genres/" + name}}}, nil

	case strings.Contains(query, "RETURN m.tmdbId AS id"):
		rows := []database.Row{}
		for id := range g.favorites[userID] {
			rows = append(rows, database.Row{"id": id})
		}
		return rows, nil

	case strings.Contains(query, "MERGE (u)-[r:HAS_FAVORITE]->(m)"):
		if !userExists || !movieExists {
			return []database.Row{}, nil
		}
		if g.favorites[userID] == nil {
			g.favorites[userID] = map[string]bool{}
		}
		g.favorites[userID][movieID] = true
		return []database.Row{{"movie": g.movie(movieID, map[string]any{"favorite": true})}}, nil

	case strings.Contains(query, "DELETE r"):
		if !g.favorites[userID][movieID] {
			return []database.Row{}, nil
		}
		delete(g.favorites[userID], movieID)
		return []database.Row{{"movie": g.movie(movieID, map[string]any{"favorite": false})}}, nil

	case strings.Contains(query, "-[:HAS_FAVORITE]->(m:Movie)"):
		rows := []database.Row{}
		for id := range g.favorites[userID] {
			rows = append(rows, database.Row{"movie": g.movie(id, map[string]any{"favorite": true})})
		}
		return rows, nil

	case strings.Contains(query, "MERGE (u)-[r:RATED]->(m)"):
		if !userExists || !movieExists {
			return []database.Row{}, nil
		}
		return []database.Row{{"movie": g.movie(movieID, map[string]any{"rating": params["rating"]})}}, nil

	case strings.Contains(query, "favorite: m.tmdbId IN $favorites") && strings.Contains(query, "MATCH (m:Movie)"):
		favorites, _ := params["favorites"].([]string)
		isFavorite := map[string]bool{}
		for _, id := range favorites {
			isFavorite[id] = true
		}
		// ordered by imdbRating DESC
		rows := []database.Row{}
		for _, id := range []string{"769", "862"} {
			rows = append(rows, database.Row{"movie": g.movie(id, map[string]any{"favorite": isFavorite[id]})})
		}
		return rows, nil
	}
	return []database.Row{}, nil
}

type testServer struct {
	app    *fiber.App
	tokens *auth.TokenCodec
}

func newServer(t *testing.T) *testServer {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	graph := databasetest.New().Handle(newCatalog().handle)
	tokens, err := auth.NewTokenCodec(config.AuthConfig{JWTSecret: "routes-secret"})
	require.NoError(t, err)
	hasher := auth.NewPasswordHasher(4)

	movies := services.NewMovieService(graph, logger)
	ratings := services.NewRatingService(graph, logger)

	app := fiber.New(fiber.Config{
		UnescapePath: true,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: utils.ErrorHandler(logger),
	})
	routes.Setup(app, routes.Handlers{
		Auth:    handlers.NewAuthHandler(services.NewAuthService(graph, hasher, tokens, logger), logger),
		Account: handlers.NewAccountHandler(services.NewFavoriteService(graph, logger), ratings, logger),
		Movies:  handlers.NewMovieHandler(movies, ratings, logger),
		Genres:  handlers.NewGenreHandler(services.NewGenreService(graph, logger), movies, logger),
		People:  handlers.NewPeopleHandler(services.NewPeopleService(graph, logger), movies, logger),
	}, middleware.Authenticate(tokens, logger))

	return &testServer{app: app, tokens: tokens}
}

func (s *testServer) token(t *testing.T, userID string) string {
	t.Helper()
	token, err := s.tokens.Sign(userID, map[string]any{"userId": userID})
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, method, path, token, body string) (int, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := s.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func decode[T any](t *testing.T, body string) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal([]byte(body), &out), body)
	return out
}

func TestRegisterThenDuplicate(t *testing.T) {
	s := newServer(t)
	body := `{"email":"graphacademy@neo4j.com","password":"letmein","name":"Graph Academy"}`

	status, raw := s.do(t, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusOK, status, raw)
	user := decode[map[string]any](t, raw)
	assert.Equal(t, "graphacademy@neo4j.com", user["email"])
	assert.Equal(t, "Graph Academy", user["name"])
	assert.NotEmpty(t, user["userId"])
	assert.NotEmpty(t, user["token"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, raw, "letmein")

	status, raw = s.do(t, http.MethodPost, "/api/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "An account already exists with the email address", decode[map[string]any](t, raw)["message"])
}

func TestRegisterValidation(t *testing.T) {
	s := newServer(t)

	status, raw := s.do(t, http.MethodPost, "/api/auth/register", "", `{"email":"not-an-email","name":"x"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	msg := decode[map[string]any](t, raw)["message"].(string)
	assert.Contains(t, msg, "email must be a valid email address")
	assert.Contains(t, msg, "password is required")

	status, _ = s.do(t, http.MethodPost, "/api/auth/register", "", `{not json`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAccountRequiresUser(t *testing.T) {
	s := newServer(t)

	for _, tt := range []struct{ method, path string }{
		{http.MethodGet, "/api/account"},
		{http.MethodGet, "/api/account/favorites"},
		{http.MethodPost, "/api/account/favorites/862"},
		{http.MethodDelete, "/api/account/favorites/862"},
		{http.MethodPost, "/api/account/ratings/862"},
	} {
		status, raw := s.do(t, tt.method, tt.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, status, tt.path)
		assert.Equal(t, "Unauthorized", decode[map[string]any](t, raw)["message"], tt.path)
	}

	status, raw := s.do(t, http.MethodGet, "/api/account", s.token(t, "user-1"), "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]any{"userId": "user-1"}, decode[map[string]any](t, raw))
}

func TestFavoriteLifecycle(t *testing.T) {
	s := newServer(t)
	token := s.token(t, "1185150b-9e81-46a2-a1d3-eb649544b9c4")

	status, raw := s.do(t, http.MethodPost, "/api/account/favorites/862", token, "")
	require.Equal(t, http.StatusOK, status, raw)
	added := decode[map[string]any](t, raw)
	assert.Equal(t, "862", added["tmdbId"])
	assert.Equal(t, true, added["favorite"])

	status, raw = s.do(t, http.MethodGet, "/api/account/favorites", token, "")
	require.Equal(t, http.StatusOK, status)
	list := decode[[]map[string]any](t, raw)
	require.Len(t, list, 1)
	assert.Equal(t, "862", list[0]["tmdbId"])

	status, raw = s.do(t, http.MethodDelete, "/api/account/favorites/862", token, "")
	require.Equal(t, http.StatusOK, status)
	removed := decode[map[string]any](t, raw)
	assert.Equal(t, "862", removed["tmdbId"])
	assert.Equal(t, false, removed["favorite"])

	status, raw = s.do(t, http.MethodGet, "/api/account/favorites", token, "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, raw)
}

func TestFavoriteFlagOnMovieList(t *testing.T) {
	s := newServer(t)
	token := s.token(t, "user-1")

	status, _ := s.do(t, http.MethodPost, "/api/account/favorites/769", token, "")
	require.Equal(t, http.StatusOK, status)

	status, raw := s.do(t, http.MethodGet, "/api/movies?sort=imdbRating&order=DESC&limit=2", token, "")
	require.Equal(t, http.StatusOK, status)
	movies := decode[[]map[string]any](t, raw)
	require.Len(t, movies, 2)
	assert.Equal(t, true, movies[0]["favorite"])
	assert.Equal(t, false, movies[1]["favorite"])

	status, raw = s.do(t, http.MethodGet, "/api/movies?sort=imdbRating&order=DESC&limit=2", "", "")
	require.Equal(t, http.StatusOK, status)
	for _, movie := range decode[[]map[string]any](t, raw) {
		assert.Equal(t, false, movie["favorite"])
	}
}

func TestMissingFavoriteTarget(t *testing.T) {
	s := newServer(t)

	status, raw := s.do(t, http.MethodPost, "/api/account/favorites/x999", s.token(t, "unknown"), "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t,
		"Couldn't create a favorite relationship for User unknown and Movie x999",
		decode[map[string]any](t, raw)["message"])
}

func TestRateMovie(t *testing.T) {
	s := newServer(t)
	token := s.token(t, "1185150b-9e81-46a2-a1d3-eb649544b9c4")

	tests := []struct {
		name   string
		method string
		body   string
		status int
	}{
		{name: "bare integer on GET", method: http.MethodGet, body: `5`, status: http.StatusOK},
		{name: "quoted integer", method: http.MethodPost, body: `"4"`, status: http.StatusOK},
		{name: "object", method: http.MethodPost, body: `{"rating": 3}`, status: http.StatusOK},
		{name: "object with string", method: http.MethodPost, body: `{"rating": "2"}`, status: http.StatusOK},
		{name: "out of range", method: http.MethodPost, body: `6`, status: http.StatusBadRequest},
		{name: "zero", method: http.MethodPost, body: `{"rating": 0}`, status: http.StatusBadRequest},
		{name: "not a number", method: http.MethodPost, body: `"five"`, status: http.StatusBadRequest},
		{name: "empty", method: http.MethodPost, body: ``, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, raw := s.do(t, tt.method, "/api/account/ratings/769", token, tt.body)
			require.Equal(t, tt.status, status, raw)
			if tt.status == http.StatusOK {
				movie := decode[map[string]any](t, raw)
				assert.Equal(t, "769", movie["tmdbId"])
				assert.NotNil(t, movie["rating"])
			}
		})
	}

	status, raw := s.do(t, http.MethodGet, "/api/account/ratings/769", token, `5`)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 5, decode[map[string]any](t, raw)["rating"])
}

func TestNotFoundRoutes(t *testing.T) {
	s := newServer(t)

	status, raw := s.do(t, http.MethodGet, "/api/movies/0", "", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Movie with id 0 not found", decode[map[string]any](t, raw)["message"])

	status, _ = s.do(t, http.MethodGet, "/api/nothing-here", "", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestPathParamsAreUnescaped(t *testing.T) {
	s := newServer(t)

	status, raw := s.do(t, http.MethodGet, "/api/genres/Science%20Fiction", "", "")
	require.Equal(t, http.StatusOK, status, raw)
	assert.Equal(t, "Science Fiction", decode[map[string]any](t, raw)["name"])

	status, raw = s.do(t, http.MethodGet, "/api/movies/%C3%A9t%C3%A9", "", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Movie with id \u00e9t\u00e9 not found", decode[map[string]any](t, raw)["message"])
}

func TestEmptyListsSerializeAsArrays(t *testing.T) {
	s := newServer(t)

	for _, path := range []string{"/api/genres", "/api/people?q=zzz", "/api/movies/1/ratings", "/api/people/1/similar"} {
		status, raw := s.do(t, http.MethodGet, path, "", "")
		require.Equal(t, http.StatusOK, status, path)
		assert.JSONEq(t, `[]`, raw, path)
	}
}
