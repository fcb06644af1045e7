package bestsellers

import "time"

// Config holds configuration for the best-seller source.
type Config struct {
	// Endpoint is the NYT overview endpoint.
	Endpoint string `mapstructure:"endpoint" default:"https://api.nytimes.com/svc/books/v3/lists/overview.json"`
	// APIKey is the NYT developer API key.
	APIKey string `mapstructure:"api_key" default:""`
	// PublishedDate selects the snapshot (YYYY-MM-DD). Empty means today.
	PublishedDate string `mapstructure:"published_date" default:""`
	// TimeoutSeconds bounds a single fetch.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// RequestsPerMinute caps calls to the API.
	RequestsPerMinute int `mapstructure:"requests_per_minute" default:"5"`
	// Retries is how many times a 429 or 5xx response is retried.
	Retries int `mapstructure:"retries" default:"2"`
}

// Date returns the published date to request, defaulting to now's calendar date.
func (c Config) Date(now time.Time) string {
	if c.PublishedDate != "" {
		return c.PublishedDate
	}
	return now.Format(time.DateOnly)
}

// TargetGroup is a named collection and the list ids whose records are unioned into it.
type TargetGroup struct {
	Name  string   `mapstructure:"name" json:"name"`
	Lists []string `mapstructure:"lists" json:"lists"`
}

// DefaultCollections returns the mapping used when none is configured:
// a single collection fed by every weekly and monthly list.
func DefaultCollections() []TargetGroup {
	return []TargetGroup{
		{
			Name: "NY Times Best Sellers",
			Lists: []string{
				"combined-print-and-e-book-fiction",
				"combined-print-and-e-book-nonfiction",
				"hardcover-fiction",
				"hardcover-nonfiction",
				"trade-fiction-paperback",
				"paperback-nonfiction",
				"advice-how-to-and-miscellaneous",
				"childrens-middle-grade-hardcover",
				"series-books",
				"young-adult-hardcover",
				"audio-fiction",
				"audio-nonfiction",
				"business-books",
				"mass-market-monthly",
				"middle-grade-paperback-monthly",
				"young-adult-paperback-monthly",
			},
		},
	}
}
