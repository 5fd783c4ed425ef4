package models

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email" example:"graphacademy@neo4j.com"`
	Password string `json:"password" validate:"required" example:"letmein"`
	Name     string `json:"name" validate:"required" example:"Graph Academy"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required" example:"graphacademy@neo4j.com"`
	Password string `json:"password" validate:"required" example:"letmein"`
}

// RatingRequest is the object form of a rating body. A bare number or
// quoted number is accepted as well.
type RatingRequest struct {
	Rating int `json:"rating" validate:"min=1,max=5" example:"5"`
}

type AccountResponse struct {
	UserID string `json:"userId" example:"1185150b-9e81-46a2-a1d3-eb649544b9c4"`
}
