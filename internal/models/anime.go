package models

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Status is the user-assigned watch status of an entry.
type Status string

const (
	StatusWatching    Status = "Watching"
	StatusCompleted   Status = "Completed"
	StatusOnHold      Status = "On Hold"
	StatusDropped     Status = "Dropped"
	StatusPlanToWatch Status = "Plan to Watch"
)

// Statuses lists every watch status in display order.
var Statuses = []Status{StatusWatching, StatusCompleted, StatusOnHold, StatusDropped, StatusPlanToWatch}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// AgeRating is the age-rating classification of an entry. The values are
// display strings and are persisted verbatim.
type AgeRating string

const (
	AgeRatingG     AgeRating = "G - All Ages"
	AgeRatingPG    AgeRating = "PG - Children"
	AgeRatingPG13  AgeRating = "PG-13 - Teens 13 or older"
	AgeRatingR     AgeRating = "R - 17+ (violence & profanity)"
	AgeRatingRPlus AgeRating = "R+ - Mild Nudity"
)

// AgeRatings lists every age rating in display order.
var AgeRatings = []AgeRating{AgeRatingG, AgeRatingPG, AgeRatingPG13, AgeRatingR, AgeRatingRPlus}

func (r AgeRating) Valid() bool {
	for _, v := range AgeRatings {
		if r == v {
			return true
		}
	}
	return false
}

// Genres is the set of genre tags offered by the entry form.
var Genres = []string{
	"Action", "Adventure", "Comedy", "Drama", "Fantasy", "Horror",
	"Mecha", "Music", "Mystery", "Psychological", "Romance",
	"Sci-Fi", "Slice of Life", "Sports", "Supernatural", "Thriller",
}

// Images holds the two artwork references of an entry.
type Images struct {
	Landscape string `json:"landscape"`
	Portrait  string `json:"portrait"`
}

// StreamingLink points to one place an entry can be watched.
type StreamingLink struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	SeasonOrPart string `json:"seasonOrPart,omitempty"`
}

// Anime is one tracked title in a user's personal list.
type Anime struct {
	ID               string          `json:"id"`
	EnglishName      string          `json:"englishName" validate:"required"`
	AlternativeTitle string          `json:"alternativeTitle,omitempty"`
	Genres           []string        `json:"genres"`
	AgeRating        AgeRating       `json:"ageRating"`
	ReleaseYear      int             `json:"releaseYear" validate:"gte=1900,lte=2100"`
	Images           Images          `json:"images"`
	Description      string          `json:"description"`
	Status           Status          `json:"status"`
	Rating           int             `json:"rating" validate:"gte=0,lte=10"`
	DoneAiring       bool            `json:"doneAiring"`
	EstimatedEndDate string          `json:"estimatedEndDate,omitempty"`
	StreamingLinks   []StreamingLink `json:"streamingLinks"`
	FormatDetails    FormatDetails   `json:"formatDetails"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

var (
	ErrUnknownStatus        = errors.New("unknown watch status")
	ErrUnknownAgeRating     = errors.New("unknown age rating")
	ErrMissingFormatDetails = errors.New("missing format details")
)

// Validate checks an entry at the input boundary: required fields, numeric
// ranges and enum membership. The store never calls this; it stores whatever
// collection it is given.
func (a *Anime) Validate() error {
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("invalid entry: %w", err)
	}
	if !a.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, a.Status)
	}
	if !a.AgeRating.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownAgeRating, a.AgeRating)
	}
	if a.FormatDetails.Detail == nil {
		return ErrMissingFormatDetails
	}
	return nil
}
