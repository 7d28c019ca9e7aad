// Package settings holds the process-wide user preferences (date format,
// decimal places) persisted under a single storage key, plus the pure
// formatting functions driven by them.
package settings

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"kasirpos/internal/models"
	"kasirpos/internal/storage"
	"kasirpos/internal/store"
)

// Defaults applied on first run or when the key is absent.
func Defaults() models.AppSettings {
	return models.AppSettings{
		DateFormat:    models.DateFormatDMY,
		DecimalPlaces: 0,
	}
}

// Service loads settings once at startup and serves them from memory;
// updates persist and swap the in-memory copy.
type Service struct {
	medium storage.Medium
	key    string

	mu      sync.RWMutex
	current models.AppSettings
}

func NewService(medium storage.Medium, key string) *Service {
	return &Service{medium: medium, key: key, current: Defaults()}
}

// Load reads the persisted settings. An absent key keeps the defaults.
func (s *Service) Load(ctx context.Context) error {
	raw, err := s.medium.GetItem(ctx, s.key)
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}
	var loaded models.AppSettings
	if err := json.Unmarshal(raw, &loaded); err != nil {
		return errors.Wrapf(store.ErrParse, "key %q: %v", s.key, err)
	}
	s.mu.Lock()
	s.current = normalize(loaded)
	s.mu.Unlock()
	return nil
}

func (s *Service) Get() models.AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update validates, persists and applies new settings.
func (s *Service) Update(ctx context.Context, in models.AppSettings) (models.AppSettings, error) {
	next := normalize(in)
	buf, err := json.Marshal(next)
	if err != nil {
		return models.AppSettings{}, errors.Wrap(err, "encode settings")
	}
	if err := s.medium.SetItem(ctx, s.key, buf); err != nil {
		return models.AppSettings{}, err
	}
	s.mu.Lock()
	s.current = next
	s.mu.Unlock()
	return next, nil
}

// normalize clamps decimal places to [0,4] and falls back to the default
// date format for unknown values.
func normalize(in models.AppSettings) models.AppSettings {
	switch in.DateFormat {
	case models.DateFormatDMY, models.DateFormatMDY, models.DateFormatYMD:
	default:
		in.DateFormat = models.DateFormatDMY
	}
	if in.DecimalPlaces < 0 {
		in.DecimalPlaces = 0
	}
	if in.DecimalPlaces > 4 {
		in.DecimalPlaces = 4
	}
	return in
}
