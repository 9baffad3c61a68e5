package store

import (
	"golang.org/x/crypto/bcrypt"

	"animegallery/internal/models"
)

const (
	seedAdminID       = "user-1"
	seedAdminUsername = "admin"
	seedAdminPassword = "password"
)

// freshDatabase builds the initial database: one admin account owning the
// bundled example catalog.
func freshDatabase() *models.Database {
	// bcrypt.GenerateFromPassword only fails on an invalid cost.
	hash, _ := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)

	admin := models.Account{
		ID:           seedAdminID,
		Username:     seedAdminUsername,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}

	return &models.Database{
		Users: []models.Account{admin},
		AnimeData: map[string][]models.Anime{
			admin.Username: SeedCatalog(),
		},
	}
}

// SeedCatalog returns the bundled example entries assigned to the admin
// account of a fresh database.
func SeedCatalog() []models.Anime {
	return []models.Anime{
		{
			ID:               "1",
			EnglishName:      "Attack on Titan",
			AlternativeTitle: "Shingeki no Kyojin",
			Genres:           []string{"Action", "Drama", "Fantasy", "Horror"},
			AgeRating:        models.AgeRatingR,
			ReleaseYear:      2013,
			Images: models.Images{
				Landscape: "https://picsum.photos/seed/aot-landscape/1280/720",
				Portrait:  "https://picsum.photos/seed/aot-portrait/500/750",
			},
			Description: "After his hometown is destroyed and his mother is killed, young Eren Jaeger vows to cleanse the earth of the giant humanoid Titans that have brought humanity to the brink of extinction.",
			Status:      models.StatusCompleted,
			Rating:      9,
			DoneAiring:  true,
			StreamingLinks: []models.StreamingLink{
				{ID: "sl1", Name: "Crunchyroll", URL: "#", SeasonOrPart: "Seasons 1-4"},
				{ID: "sl2", Name: "Hulu", URL: "#", SeasonOrPart: "Seasons 1-4"},
			},
			FormatDetails: models.FormatDetails{Detail: models.TVDetails{TotalEpisodes: 87, Season: "Final Season"}},
		},
		{
			ID:          "2",
			EnglishName: "Jujutsu Kaisen",
			Genres:      []string{"Action", "Supernatural", "Fantasy"},
			AgeRating:   models.AgeRatingR,
			ReleaseYear: 2020,
			Images: models.Images{
				Landscape: "https://picsum.photos/seed/jjk-landscape/1280/720",
				Portrait:  "https://picsum.photos/seed/jjk-portrait/500/750",
			},
			Description:      "A boy swallows a cursed talisman - the finger of a demon - and becomes cursed himself. He enters a shaman's school to be able to locate the demon's other body parts and thus exorcise himself.",
			Status:           models.StatusWatching,
			Rating:           10,
			DoneAiring:       false,
			EstimatedEndDate: "2025-06-30",
			StreamingLinks: []models.StreamingLink{
				{ID: "sl3", Name: "Crunchyroll", URL: "#", SeasonOrPart: "Season 1 & 2"},
			},
			FormatDetails: models.FormatDetails{Detail: models.TVDetails{TotalEpisodes: 47, Season: "2"}},
		},
		{
			ID:               "3",
			EnglishName:      "Your Name",
			AlternativeTitle: "Kimi no Na wa.",
			Genres:           []string{"Drama", "Romance", "Supernatural"},
			AgeRating:        models.AgeRatingPG13,
			ReleaseYear:      2016,
			Images: models.Images{
				Landscape: "https://picsum.photos/seed/yourname-landscape/1280/720",
				Portrait:  "https://picsum.photos/seed/yourname-portrait/500/750",
			},
			Description: "Two strangers find themselves linked in a bizarre way. When a connection forms, will distance be the only thing to keep them apart?",
			Status:      models.StatusCompleted,
			Rating:      10,
			DoneAiring:  true,
			StreamingLinks: []models.StreamingLink{
				{ID: "sl4", Name: "Netflix", URL: "#"},
			},
			FormatDetails: models.FormatDetails{Detail: models.MovieDetails{Duration: 107}},
		},
		{
			ID:          "4",
			EnglishName: "Spy x Family",
			Genres:      []string{"Action", "Comedy", "Slice of Life"},
			AgeRating:   models.AgeRatingPG13,
			ReleaseYear: 2022,
			Images: models.Images{
				Landscape: "https://picsum.photos/seed/spy-landscape/1280/720",
				Portrait:  "https://picsum.photos/seed/spy-portrait/500/750",
			},
			Description:      "A spy on an undercover mission gets married and adopts a child, not realizing that his wife and daughter have their own secrets.",
			Status:           models.StatusOnHold,
			Rating:           8,
			DoneAiring:       false,
			EstimatedEndDate: "2024-12-25",
			StreamingLinks: []models.StreamingLink{
				{ID: "sl5", Name: "Crunchyroll", URL: "#", SeasonOrPart: "Part 1 & 2"},
			},
			FormatDetails: models.FormatDetails{Detail: models.TVDetails{TotalEpisodes: 37, Season: "2"}},
		},
		{
			ID:          "5",
			EnglishName: "Cyberpunk: Edgerunners",
			Genres:      []string{"Action", "Sci-Fi", "Psychological"},
			AgeRating:   models.AgeRatingR,
			ReleaseYear: 2022,
			Images: models.Images{
				Landscape: "https://picsum.photos/seed/cyberpunk-landscape/1280/720",
				Portrait:  "https://picsum.photos/seed/cyberpunk-portrait/500/750",
			},
			Description: "A street kid trying to survive in a technology- and body-modification-obsessed city of the future. Having everything to lose, he chooses to stay alive by becoming an edgerunner.",
			Status:      models.StatusPlanToWatch,
			Rating:      0,
			DoneAiring:  true,
			StreamingLinks: []models.StreamingLink{
				{ID: "sl6", Name: "Netflix", URL: "#"},
			},
			FormatDetails: models.FormatDetails{Detail: models.OVADetails{EpisodeCount: 10, DurationPerEpisode: 24}},
		},
	}
}
