package bestsellers

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// ErrUnexpectedShape is returned when a snapshot has no results.lists array.
var ErrUnexpectedShape = errors.New("unexpected NYT response shape: no results.lists found")

// Overview is the NYT overview snapshot: every list published for one date.
type Overview struct {
	Status  string `json:"status"`
	Results struct {
		PublishedDate string `json:"published_date"`
		Lists         []List `json:"lists"`
	} `json:"results"`
}

// List is one best-seller list of a snapshot.
type List struct {
	ID    string    `json:"list_name_encoded"`
	Name  string    `json:"list_name"`
	Books []RawBook `json:"books"`
}

// RawBook is one entry of a list as published.
type RawBook struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	Contributor   string `json:"contributor"`
	PrimaryISBN13 string `json:"primary_isbn13"`
	PrimaryISBN10 string `json:"primary_isbn10"`
	// Rank stays raw so that only integer literals count as a rank.
	Rank json.RawMessage `json:"rank"`
}

// Decode parses a snapshot, failing when the document does not carry results.lists.
func Decode(data []byte) (*Overview, error) {
	var envelope struct {
		Results *struct {
			Lists json.RawMessage `json:"lists"`
		} `json:"results"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	if envelope.Results == nil || !bytes.HasPrefix(bytes.TrimSpace(envelope.Results.Lists), []byte("[")) {
		return nil, ErrUnexpectedShape
	}

	var overview Overview
	if err := json.Unmarshal(data, &overview); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot lists: %w", err)
	}
	return &overview, nil
}

// Index returns the lists keyed by id. Lists without an id are left out;
// when an id repeats, the first list wins.
func (o *Overview) Index() map[string]List {
	index := make(map[string]List, len(o.Results.Lists))
	for _, l := range o.Results.Lists {
		if l.ID == "" {
			continue
		}
		if _, exists := index[l.ID]; exists {
			continue
		}
		index[l.ID] = l
	}
	return index
}
