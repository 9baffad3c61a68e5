package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func validEntry() Anime {
	return Anime{
		ID:          "anime-test",
		EnglishName: "Attack on Titan",
		Genres:      []string{"Action", "Drama"},
		AgeRating:   AgeRatingR,
		ReleaseYear: 2013,
		Images: Images{
			Landscape: "https://example.com/l.jpg",
			Portrait:  "https://example.com/p.jpg",
		},
		Description:    "Humanity versus titans.",
		Status:         StatusCompleted,
		Rating:         9,
		DoneAiring:     true,
		StreamingLinks: []StreamingLink{{ID: "sl1", Name: "Crunchyroll", URL: "#", SeasonOrPart: "Seasons 1-4"}},
		FormatDetails:  FormatDetails{Detail: TVDetails{TotalEpisodes: 87, Season: "Final Season"}},
	}
}

func TestAnimeValidate(t *testing.T) {
	a := validEntry()
	require.NoError(t, a.Validate())
}

func TestAnimeValidateFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Anime)
	}{
		{"empty name", func(a *Anime) { a.EnglishName = "" }},
		{"rating too high", func(a *Anime) { a.Rating = 11 }},
		{"rating negative", func(a *Anime) { a.Rating = -1 }},
		{"year out of range", func(a *Anime) { a.ReleaseYear = 1234 }},
		{"unknown status", func(a *Anime) { a.Status = "Binging" }},
		{"unknown age rating", func(a *Anime) { a.AgeRating = "NC-17" }},
		{"missing format details", func(a *Anime) { a.FormatDetails = FormatDetails{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validEntry()
			tt.mutate(&a)
			require.Error(t, a.Validate())
		})
	}
}

func TestAnimeJSONRoundTrip(t *testing.T) {
	a := validEntry()
	a.AlternativeTitle = "Shingeki no Kyojin"
	a.DoneAiring = false
	a.EstimatedEndDate = "2025-06-30"

	b, err := json.Marshal(a)
	require.NoError(t, err)

	var got Anime
	require.NoError(t, json.Unmarshal(b, &got))
	require.Equal(t, a, got)
}

func TestAnimeJSONOmitsEmptyOptionals(t *testing.T) {
	b, err := json.Marshal(validEntry())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	require.NotContains(t, raw, "alternativeTitle")
	require.NotContains(t, raw, "estimatedEndDate")
}

func TestRoleValid(t *testing.T) {
	require.True(t, RoleAdmin.Valid())
	require.True(t, RoleUser.Valid())
	require.False(t, Role("root").Valid())
}
