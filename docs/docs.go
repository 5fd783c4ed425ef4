// Package docs holds the OpenAPI document served under /swagger. It is kept by
// hand in the layout swag init emits and must track the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/register": {
            "post": {
                "description": "Create an account and return the user with a signed token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {
                        "description": "Account details",
                        "name": "user",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.RegisterRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Registered user", "schema": {"$ref": "#/definitions/models.User"}},
                    "400": {"description": "Invalid body or email already registered", "schema": {"$ref": "#/definitions/utils.ErrorBody"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "description": "Check credentials and return the user with a signed token",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {
                        "description": "Email and password",
                        "name": "credentials",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "Authenticated user", "schema": {"$ref": "#/definitions/models.User"}},
                    "400": {"description": "Invalid body", "schema": {"$ref": "#/definitions/utils.ErrorBody"}},
                    "401": {"description": "Incorrect email or password", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            }
        },
        "/account": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["account"],
                "summary": "Current account",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AccountResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            }
        },
        "/account/favorites": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["account"],
                "summary": "List favorite movies",
                "parameters": [
                    {"type": "string", "default": "title", "description": "title, released, imdbRating or score", "name": "sort", "in": "query"},
                    {"type": "string", "default": "ASC", "description": "ASC or DESC", "name": "order", "in": "query"},
                    {"type": "integer", "default": 6, "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Offset", "name": "skip", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Favorite movies", "schema": {"type": "array", "items": {"type": "object"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            }
        },
        "/account/favorites/{id}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["account"],
                "summary": "Add a movie to favorites",
                "parameters": [
                    {"type": "string", "description": "Movie tmdbId", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Movie with favorite set to true", "schema": {"type": "object"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorBody"}},
                    "404": {"description": "User or movie not found", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["account"],
                "summary": "Remove a movie from favorites",
                "parameters": [
                    {"type": "string", "description": "Movie tmdbId", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Movie with favorite set to false", "schema": {"type": "object"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorBody"}},
                    "404": {"description": "Movie was not a favorite", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            }
        },
        "/account/ratings/{id}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Body is a rating from 1 to 5, either bare (5 or \"5\") or as {\"rating\": 5}. Also served on GET.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["account"],
                "summary": "Rate a movie",
                "parameters": [
                    {"type": "string", "description": "Movie tmdbId", "name": "id", "in": "path", "required": true},
                    {"description": "Rating", "name": "rating", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.RatingRequest"}}
                ],
                "responses": {
                    "200": {"description": "Movie with the saved rating", "schema": {"type": "object"}},
                    "400": {"description": "Invalid rating", "schema": {"$ref": "#/definitions/utils.ErrorBody"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorBody"}},
                    "404": {"description": "User or movie not found", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            }
        },
        "/movies": {
            "get": {
                "description": "Paginated movies; each carries favorite for the current user",
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "List movies",
                "parameters": [
                    {"type": "string", "default": "title", "description": "title, released, imdbRating or score", "name": "sort", "in": "query"},
                    {"type": "string", "default": "ASC", "description": "ASC or DESC", "name": "order", "in": "query"},
                    {"type": "integer", "default": 6, "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Offset", "name": "skip", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Movies", "schema": {"type": "array", "items": {"type": "object"}}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            }
        },
        "/movies/{id}": {
            "get": {
                "description": "Movie with actors, directors, genres and ratingCount",
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Get movie by tmdbId",
                "parameters": [
                    {"type": "string", "description": "Movie tmdbId", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Movie details", "schema": {"type": "object"}},
                    "404": {"description": "Movie not found", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            }
        },
        "/movies/{id}/ratings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "List reviews of a movie",
                "parameters": [
                    {"type": "string", "description": "Movie tmdbId", "name": "id", "in": "path", "required": true},
                    {"type": "string", "default": "timestamp", "description": "rating or timestamp", "name": "sort", "in": "query"},
                    {"type": "string", "default": "ASC", "description": "ASC or DESC", "name": "order", "in": "query"},
                    {"type": "integer", "default": 6, "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Offset", "name": "skip", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Reviews", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Review"}}}
                }
            }
        },
        "/movies/{id}/similar": {
            "get": {
                "description": "Movies sharing genres, actors or directors, ranked by score",
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Similar movies",
                "parameters": [
                    {"type": "string", "description": "Movie tmdbId", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "default": 6, "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Offset", "name": "skip", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Movies with score", "schema": {"type": "array", "items": {"type": "object"}}}
                }
            }
        },
        "/genres": {
            "get": {
                "produces": ["application/json"],
                "tags": ["genres"],
                "summary": "List genres",
                "responses": {
                    "200": {"description": "Genres ordered by name", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Genre"}}}
                }
            }
        },
        "/genres/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["genres"],
                "summary": "Get genre by name",
                "parameters": [
                    {"type": "string", "description": "Genre name", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Genre"}},
                    "404": {"description": "Genre not found", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            }
        },
        "/genres/{name}/movies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["genres"],
                "summary": "List movies in a genre",
                "parameters": [
                    {"type": "string", "description": "Genre name", "name": "name", "in": "path", "required": true},
                    {"type": "string", "default": "title", "description": "title, released, imdbRating or score", "name": "sort", "in": "query"},
                    {"type": "string", "default": "ASC", "description": "ASC or DESC", "name": "order", "in": "query"},
                    {"type": "integer", "default": 6, "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Offset", "name": "skip", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Movies", "schema": {"type": "array", "items": {"type": "object"}}}
                }
            }
        },
        "/people": {
            "get": {
                "produces": ["application/json"],
                "tags": ["people"],
                "summary": "List people",
                "parameters": [
                    {"type": "string", "description": "Case-sensitive name filter", "name": "q", "in": "query"},
                    {"type": "string", "default": "name", "description": "name, born or movieCount", "name": "sort", "in": "query"},
                    {"type": "string", "default": "ASC", "description": "ASC or DESC", "name": "order", "in": "query"},
                    {"type": "integer", "default": 6, "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Offset", "name": "skip", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "People", "schema": {"type": "array", "items": {"type": "object"}}}
                }
            }
        },
        "/people/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["people"],
                "summary": "Get person by tmdbId",
                "parameters": [
                    {"type": "string", "description": "Person tmdbId", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Person with actedCount and directedCount", "schema": {"type": "object"}},
                    "404": {"description": "Person not found", "schema": {"$ref": "#/definitions/utils.ErrorBody"}}
                }
            }
        },
        "/people/{id}/similar": {
            "get": {
                "produces": ["application/json"],
                "tags": ["people"],
                "summary": "People who worked on the same movies",
                "parameters": [
                    {"type": "string", "description": "Person tmdbId", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "default": 6, "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Offset", "name": "skip", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "People with inCommon", "schema": {"type": "array", "items": {"type": "object"}}}
                }
            }
        },
        "/people/{id}/acted": {
            "get": {
                "produces": ["application/json"],
                "tags": ["people"],
                "summary": "Movies a person acted in",
                "parameters": [
                    {"type": "string", "description": "Person tmdbId", "name": "id", "in": "path", "required": true},
                    {"type": "string", "default": "title", "description": "title, released, imdbRating or score", "name": "sort", "in": "query"},
                    {"type": "string", "default": "ASC", "description": "ASC or DESC", "name": "order", "in": "query"},
                    {"type": "integer", "default": 6, "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Offset", "name": "skip", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Movies", "schema": {"type": "array", "items": {"type": "object"}}}
                }
            }
        },
        "/people/{id}/directed": {
            "get": {
                "produces": ["application/json"],
                "tags": ["people"],
                "summary": "Movies a person directed",
                "parameters": [
                    {"type": "string", "description": "Person tmdbId", "name": "id", "in": "path", "required": true},
                    {"type": "string", "default": "title", "description": "title, released, imdbRating or score", "name": "sort", "in": "query"},
                    {"type": "string", "default": "ASC", "description": "ASC or DESC", "name": "order", "in": "query"},
                    {"type": "integer", "default": 6, "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Offset", "name": "skip", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Movies", "schema": {"type": "array", "items": {"type": "object"}}}
                }
            }
        }
    },
    "definitions": {
        "models.AccountResponse": {
            "type": "object",
            "properties": {
                "userId": {"type": "string", "example": "1185150b-9e81-46a2-a1d3-eb649544b9c4"}
            }
        },
        "models.Genre": {
            "type": "object",
            "properties": {
                "link": {"type": "string", "example": "/genres/Action"},
                "movies": {"type": "integer", "example": 1545},
                "name": {"type": "string", "example": "Action"},
                "poster": {"type": "string", "example": "https://image.tmdb.org/t/p/w440_and_h660_face/qJ2tW6WMUDux911r6m7haRef0WH.jpg"}
            }
        },
        "models.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "graphacademy@neo4j.com"},
                "password": {"type": "string", "example": "letmein"}
            }
        },
        "models.RatingRequest": {
            "type": "object",
            "properties": {
                "rating": {"type": "integer", "example": 5}
            }
        },
        "models.RegisterRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "graphacademy@neo4j.com"},
                "name": {"type": "string", "example": "Graph Academy"},
                "password": {"type": "string", "example": "letmein"}
            }
        },
        "models.Review": {
            "type": "object",
            "properties": {
                "rating": {"type": "integer", "example": 5},
                "timestamp": {"type": "integer", "example": 1621413020000},
                "user": {"$ref": "#/definitions/models.ReviewUser"}
            }
        },
        "models.ReviewUser": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "graphacademy@neo4j.com"},
                "name": {"type": "string", "example": "Graph Academy"},
                "token": {"type": "string"},
                "userId": {"type": "string", "example": "1185150b-9e81-46a2-a1d3-eb649544b9c4"}
            }
        },
        "utils.ErrorBody": {
            "type": "object",
            "properties": {
                "code": {"type": "integer", "example": 404},
                "message": {"type": "string", "example": "Movie with id 0 not found"},
                "status": {"type": "string", "example": "error"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Neoflix API",
	Description:      "Movie catalog, favorites and ratings backed by Neo4j",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
