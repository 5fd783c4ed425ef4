package models

// Movie is a movie node's properties plus derived fields such as favorite,
// score, rating or, on the detail view, actors, directors, genres and
// ratingCount. Properties are free-form so they are kept as a map.
type Movie = map[string]any

// Person is a person node's properties plus derived counts or inCommon.
type Person = map[string]any
