package models

type Review struct {
	Rating    int64      `json:"rating" example:"5"`
	Timestamp int64      `json:"timestamp" example:"1621413020000"`
	User      ReviewUser `json:"user"`
}

type ReviewUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
