package models

// User is the public view of a user. The password hash has no field here so
// it can never be serialized.
type User struct {
	UserID string `json:"userId" example:"1185150b-9e81-46a2-a1d3-eb649544b9c4"`
	Email  string `json:"email" example:"graphacademy@neo4j.com"`
	Name   string `json:"name" example:"Graph Academy"`
	Token  string `json:"token,omitempty"`
}

// Claims is the profile payload embedded in a user's token.
func (u User) Claims() map[string]any {
	return map[string]any{
		"sub":    u.UserID,
		"userId": u.UserID,
		"name":   u.Name,
	}
}
