package models

type Genre struct {
	Name   string `json:"name" example:"Action"`
	Poster string `json:"poster" example:"https://image.tmdb.org/t/p/w440_and_h660_face/qJ2tW6WMUDux911r6m7haRef0WH.jpg"`
	Movies int64  `json:"movies" example:"1545"`
	Link   string `json:"link" example:"/genres/Action"`
}

func GenreLink(name string) string {
	return "/genres/" + name
}
