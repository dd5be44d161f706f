package dto

import "time"

// Request DTOs

// SearchAdvocatesQuery carries the parsed query parameters. The usecase
// normalizes Page and Limit again, so zero still means "use the default".
type SearchAdvocatesQuery struct {
	Search string `validate:"max=200"`
	Page   int
	Limit  int
}

// Response DTOs

type AdvocateResponse struct {
	ID                int       `json:"id"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	City              string    `json:"city"`
	Degree            string    `json:"degree"`
	Specialties       []string  `json:"specialties"`
	YearsOfExperience int       `json:"yearsOfExperience"`
	PhoneNumber       int64     `json:"phoneNumber"`
	CreatedAt         time.Time `json:"createdAt"`
}

type AdvocateListResponse struct {
	Advocates  []AdvocateResponse
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}
