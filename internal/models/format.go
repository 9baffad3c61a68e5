package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Format discriminates the shape of an entry's format details.
type Format string

const (
	FormatTV    Format = "TV"
	FormatMovie Format = "Movie"
	FormatOVA   Format = "OVA"
)

// Formats lists every format in display order.
var Formats = []Format{FormatTV, FormatMovie, FormatOVA}

var ErrUnknownFormat = errors.New("unknown format")

// FormatDetail is the format-specific portion of an entry. Exactly one
// concrete type exists per Format value, so a detail can never disagree
// with its own discriminant.
type FormatDetail interface {
	Kind() Format
}

// TVDetails describes a televised series.
type TVDetails struct {
	TotalEpisodes int    `json:"totalEpisodes"`
	Season        string `json:"season"`
}

func (TVDetails) Kind() Format { return FormatTV }

// MovieDetails describes a feature film; Duration is in minutes.
type MovieDetails struct {
	Duration int `json:"duration"`
}

func (MovieDetails) Kind() Format { return FormatMovie }

// OVADetails describes an original video animation; DurationPerEpisode is
// in minutes.
type OVADetails struct {
	EpisodeCount       int `json:"episodeCount"`
	DurationPerEpisode int `json:"durationPerEpisode"`
}

func (OVADetails) Kind() Format { return FormatOVA }

// FormatDetails wraps a FormatDetail for JSON (de)serialization. The wire
// shape is flat, with the discriminant inlined next to the variant fields:
//
//	{"format":"TV","totalEpisodes":87,"season":"Final Season"}
//
// Unmarshalling is strict: fields belonging to a different variant than the
// discriminant announces are rejected rather than silently dropped.
type FormatDetails struct {
	Detail FormatDetail
}

type formatTag struct {
	Format Format `json:"format"`
}

func (d FormatDetails) MarshalJSON() ([]byte, error) {
	switch v := d.Detail.(type) {
	case nil:
		return []byte("null"), nil
	case TVDetails:
		return json.Marshal(struct {
			formatTag
			TVDetails
		}{formatTag{FormatTV}, v})
	case MovieDetails:
		return json.Marshal(struct {
			formatTag
			MovieDetails
		}{formatTag{FormatMovie}, v})
	case OVADetails:
		return json.Marshal(struct {
			formatTag
			OVADetails
		}{formatTag{FormatOVA}, v})
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownFormat, d.Detail)
	}
}

func (d *FormatDetails) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		d.Detail = nil
		return nil
	}

	var tag formatTag
	if err := json.Unmarshal(data, &tag); err != nil {
		return err
	}

	switch tag.Format {
	case FormatTV:
		var v struct {
			formatTag
			TVDetails
		}
		if err := strictUnmarshal(data, &v); err != nil {
			return fmt.Errorf("format details do not match %q: %w", tag.Format, err)
		}
		d.Detail = v.TVDetails
	case FormatMovie:
		var v struct {
			formatTag
			MovieDetails
		}
		if err := strictUnmarshal(data, &v); err != nil {
			return fmt.Errorf("format details do not match %q: %w", tag.Format, err)
		}
		d.Detail = v.MovieDetails
	case FormatOVA:
		var v struct {
			formatTag
			OVADetails
		}
		if err := strictUnmarshal(data, &v); err != nil {
			return fmt.Errorf("format details do not match %q: %w", tag.Format, err)
		}
		d.Detail = v.OVADetails
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, tag.Format)
	}

	return nil
}

// strictUnmarshal decodes data into v, failing on any field the target does
// not declare. This is what rejects, say, TV-shaped details carrying a
// "Movie" discriminant.
func strictUnmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// Summary renders a short human-readable description of the details, e.g.
// "TV, 87 episodes (Final Season)".
func (d FormatDetails) Summary() string {
	switch v := d.Detail.(type) {
	case TVDetails:
		if v.Season != "" {
			return fmt.Sprintf("TV, %d episodes (%s)", v.TotalEpisodes, v.Season)
		}
		return fmt.Sprintf("TV, %d episodes", v.TotalEpisodes)
	case MovieDetails:
		return fmt.Sprintf("Movie, %d min", v.Duration)
	case OVADetails:
		return fmt.Sprintf("OVA, %d x %d min", v.EpisodeCount, v.DurationPerEpisode)
	default:
		return ""
	}
}
