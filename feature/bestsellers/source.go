package bestsellers

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrArchiveDisabled is returned when reading from the archive without storage configured.
var ErrArchiveDisabled = errors.New("snapshot archive is not configured")

// Fetcher downloads a raw overview document.
type Fetcher interface {
	FetchOverview(ctx context.Context, publishedDate string) ([]byte, error)
}

// Source produces decoded snapshots, from the API or from the archive.
type Source struct {
	fetcher Fetcher
	archive *Archive
	logger  *zap.Logger
}

// NewSource creates a source. archive may be nil.
func NewSource(fetcher Fetcher, archive *Archive, logger *zap.Logger) *Source {
	return &Source{fetcher: fetcher, archive: archive, logger: logger}
}

// Snapshot returns the overview for date. A fetched snapshot is archived only once it decodes;
// archive failures are logged and do not fail the run.
func (s *Source) Snapshot(ctx context.Context, date string, fromArchive bool) (*Overview, error) {
	if fromArchive {
		if s.archive == nil {
			return nil, ErrArchiveDisabled
		}
		data, err := s.archive.Load(ctx, date)
		if err != nil {
			return nil, err
		}
		s.logger.Info("Loaded archived snapshot", zap.String("date", date))
		return Decode(data)
	}

	data, err := s.fetcher.FetchOverview(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch snapshot for %s: %w", date, err)
	}
	overview, err := Decode(data)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Fetched snapshot",
		zap.String("date", date),
		zap.String("published_date", overview.Results.PublishedDate),
		zap.Int("lists", len(overview.Results.Lists)))

	if s.archive != nil {
		key, err := s.archive.Save(ctx, date, data)
		if err != nil {
			s.logger.Warn("Failed to archive snapshot", zap.String("date", date), zap.Error(err))
		} else {
			s.logger.Debug("Archived snapshot", zap.String("key", key))
		}
	}
	return overview, nil
}
