package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"animegallery/internal/models"
)

var errNotLoggedIn = errors.New("not logged in")

func (a *App) entries() ([]models.Anime, string, error) {
	cur := a.auth.Current()
	if cur == nil {
		return nil, "", errNotLoggedIn
	}
	return a.store.AnimeFor(cur.Username), cur.Username, nil
}

// entryAt resolves a 1-based list position from the first argument.
func entryAt(list []models.Anime, args []string) (int, error) {
	if len(args) == 0 {
		return 0, errors.New("an entry number is required (see 'list')")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(list) {
		return 0, fmt.Errorf("no entry %q (1-%d)", args[0], len(list))
	}
	return n - 1, nil
}

// List prints the user's collection, newest first.
func (a *App) List(ctx context.Context) error {
	list, _, err := a.entries()
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "Your list is empty. Use 'add' to track something.")
		return nil
	}

	for i, entry := range list {
		fmt.Fprintf(a.out, "%2d) %-35s %-13s %2d/10  %s\n",
			i+1, entry.EnglishName, entry.Status, entry.Rating, entry.FormatDetails.Summary())
	}
	return nil
}

// Show prints every detail of one entry.
func (a *App) Show(ctx context.Context, args []string) error {
	list, _, err := a.entries()
	if err != nil {
		return err
	}
	i, err := entryAt(list, args)
	if err != nil {
		return err
	}
	entry := list[i]

	fmt.Fprintln(a.out, entry.EnglishName)
	if entry.AlternativeTitle != "" {
		fmt.Fprintf(a.out, "  aka %s\n", entry.AlternativeTitle)
	}
	fmt.Fprintf(a.out, "  Year:    %d\n", entry.ReleaseYear)
	fmt.Fprintf(a.out, "  Genres:  %s\n", strings.Join(entry.Genres, ", "))
	fmt.Fprintf(a.out, "  Rated:   %s\n", entry.AgeRating)
	fmt.Fprintf(a.out, "  Status:  %s, %d/10\n", entry.Status, entry.Rating)
	fmt.Fprintf(a.out, "  Format:  %s\n", entry.FormatDetails.Summary())
	if entry.DoneAiring {
		fmt.Fprintln(a.out, "  Airing:  finished")
	} else if entry.EstimatedEndDate != "" {
		fmt.Fprintf(a.out, "  Airing:  ongoing, estimated end %s\n", entry.EstimatedEndDate)
	} else {
		fmt.Fprintln(a.out, "  Airing:  ongoing")
	}
	if entry.Description != "" {
		fmt.Fprintf(a.out, "  %s\n", entry.Description)
	}
	for _, link := range entry.StreamingLinks {
		if link.SeasonOrPart != "" {
			fmt.Fprintf(a.out, "  Watch on %s (%s): %s\n", link.Name, link.SeasonOrPart, link.URL)
		} else {
			fmt.Fprintf(a.out, "  Watch on %s: %s\n", link.Name, link.URL)
		}
	}
	return nil
}

// Add interactively builds a new entry, validates it and prepends it to the
// user's list (newest first).
func (a *App) Add(ctx context.Context) error {
	list, username, err := a.entries()
	if err != nil {
		return err
	}

	entry := models.Anime{ID: "anime-" + uuid.NewString()}

	if entry.EnglishName, err = getSimpleText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if entry.AlternativeTitle, err = getSimpleText(a.reader, "Alternative title (optional)", a.out); err != nil {
		return err
	}

	genres, err := getSimpleText(a.reader, "Genres, comma separated", a.out)
	if err != nil {
		return err
	}
	for _, g := range strings.Split(genres, ",") {
		if g = strings.TrimSpace(g); g != "" {
			entry.Genres = append(entry.Genres, g)
		}
	}

	if entry.ReleaseYear, err = a.promptInt("Release year"); err != nil {
		return err
	}

	rating, err := a.promptChoice("Age rating", len(models.AgeRatings), func(i int) string { return string(models.AgeRatings[i]) })
	if err != nil {
		return err
	}
	entry.AgeRating = models.AgeRatings[rating]

	status, err := a.promptChoice("Watch status", len(models.Statuses), func(i int) string { return string(models.Statuses[i]) })
	if err != nil {
		return err
	}
	entry.Status = models.Statuses[status]

	if entry.Rating, err = a.promptInt("Your rating (0-10)"); err != nil {
		return err
	}

	if entry.FormatDetails, err = a.promptFormat(); err != nil {
		return err
	}

	done, err := getSimpleText(a.reader, "Finished airing? (y/n)", a.out)
	if err != nil {
		return err
	}
	entry.DoneAiring = strings.EqualFold(done, "y") || strings.EqualFold(done, "yes")
	if !entry.DoneAiring {
		if entry.EstimatedEndDate, err = getSimpleText(a.reader, "Estimated end date (YYYY-MM-DD, optional)", a.out); err != nil {
			return err
		}
	}

	if entry.Description, err = getSimpleText(a.reader, "Description (optional)", a.out); err != nil {
		return err
	}

	if err := entry.Validate(); err != nil {
		return err
	}

	if err := a.store.SetAnimeFor(ctx, username, append([]models.Anime{entry}, list...)); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %q.\n", entry.EnglishName)
	return nil
}

// Rate updates the rating of one entry: rate <n> <0-10>.
func (a *App) Rate(ctx context.Context, args []string) error {
	list, username, err := a.entries()
	if err != nil {
		return err
	}
	i, err := entryAt(list, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return errors.New("usage: rate <n> <0-10>")
	}
	rating, err := strconv.Atoi(args[1])
	if err != nil || rating < 0 || rating > 10 {
		return fmt.Errorf("rating must be between 0 and 10, got %q", args[1])
	}

	list[i].Rating = rating
	return a.store.SetAnimeFor(ctx, username, list)
}

// SetStatus updates the watch status of one entry: status <n> <status>.
// Multi-word statuses like "On Hold" are accepted.
func (a *App) SetStatus(ctx context.Context, args []string) error {
	list, username, err := a.entries()
	if err != nil {
		return err
	}
	i, err := entryAt(list, args)
	if err != nil {
		return err
	}
	status := models.Status(strings.Join(args[1:], " "))
	if !status.Valid() {
		return fmt.Errorf("unknown status %q", string(status))
	}

	list[i].Status = status
	return a.store.SetAnimeFor(ctx, username, list)
}

// Remove deletes one entry: remove <n>.
func (a *App) Remove(ctx context.Context, args []string) error {
	list, username, err := a.entries()
	if err != nil {
		return err
	}
	i, err := entryAt(list, args)
	if err != nil {
		return err
	}

	name := list[i].EnglishName
	list = append(list[:i], list[i+1:]...)
	if err := a.store.SetAnimeFor(ctx, username, list); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Removed %q.\n", name)
	return nil
}

func (a *App) promptInt(prompt string) (int, error) {
	raw, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("expected a number, got %q", raw)
	}
	return n, nil
}

// promptChoice shows a numbered menu and returns the chosen index.
func (a *App) promptChoice(prompt string, n int, label func(int) string) (int, error) {
	for i := 0; i < n; i++ {
		fmt.Fprintf(a.out, "  %d) %s\n", i+1, label(i))
	}
	choice, err := a.promptInt(prompt)
	if err != nil {
		return 0, err
	}
	if choice < 1 || choice > n {
		return 0, fmt.Errorf("expected a choice between 1 and %d", n)
	}
	return choice - 1, nil
}

func (a *App) promptFormat() (models.FormatDetails, error) {
	choice, err := a.promptChoice("Format", len(models.Formats), func(i int) string { return string(models.Formats[i]) })
	if err != nil {
		return models.FormatDetails{}, err
	}

	switch models.Formats[choice] {
	case models.FormatTV:
		episodes, err := a.promptInt("Total episodes")
		if err != nil {
			return models.FormatDetails{}, err
		}
		season, err := getSimpleText(a.reader, "Season label", a.out)
		if err != nil {
			return models.FormatDetails{}, err
		}
		return models.FormatDetails{Detail: models.TVDetails{TotalEpisodes: episodes, Season: season}}, nil

	case models.FormatMovie:
		duration, err := a.promptInt("Duration (minutes)")
		if err != nil {
			return models.FormatDetails{}, err
		}
		return models.FormatDetails{Detail: models.MovieDetails{Duration: duration}}, nil

	default:
		count, err := a.promptInt("Episode count")
		if err != nil {
			return models.FormatDetails{}, err
		}
		perEpisode, err := a.promptInt("Minutes per episode")
		if err != nil {
			return models.FormatDetails{}, err
		}
		return models.FormatDetails{Detail: models.OVADetails{EpisodeCount: count, DurationPerEpisode: perEpisode}}, nil
	}
}
