package simulation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/handiism/gilded-rose/internal/config"
	"github.com/handiism/gilded-rose/internal/engine"
	"github.com/handiism/gilded-rose/internal/model"
	"github.com/handiism/gilded-rose/internal/report"
	"go.uber.org/zap"
)

var (
	// ErrNotInitialized is returned when a day is advanced before Initialize.
	ErrNotInitialized = errors.New("simulation has no inventory")

	// ErrTooManyDays is returned when Run is asked for more than Settings.MaxDays.
	ErrTooManyDays = errors.New("too many days")
)

// snapshotPrealloc caps the snapshot slice capacity reserved up front.
const snapshotPrealloc = 1024

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a simulation progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
	Day     int
}

// Simulator advances one inventory day by day.
type Simulator struct {
	settings *config.Settings
	updater  *engine.Updater
	logger   *zap.Logger
	runID    string

	seed  []*model.Item
	items []*model.Item
	day   int

	onProgress func(ProgressEvent)
	mu         sync.RWMutex
}

// New creates a new Simulator. A nil logger is replaced with a no-op logger.
func New(settings *config.Settings, logger *zap.Logger, onProgress func(ProgressEvent)) *Simulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	runID := uuid.NewString()

	return &Simulator{
		settings:   settings,
		updater:    engine.NewUpdater(settings.ToRules()),
		logger:     logger.With(zap.String("run_id", runID)),
		runID:      runID,
		onProgress: onProgress,
	}
}

// RunID returns the unique identifier of this simulator.
func (s *Simulator) RunID() string {
	return s.runID
}

// Initialize replaces the inventory and rewinds to day 0.
//
// The simulator keeps its own copies; later changes to items are not seen.
func (s *Simulator) Initialize(items []*model.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seed = model.CloneAll(items)
	s.items = model.CloneAll(items)
	s.day = 0

	s.logger.Info("Inventory initialized", zap.Int("items", len(items)))
	s.progress(ProgressEvent{Message: fmt.Sprintf("Loaded %d item(s)", len(items)), Level: LevelInfo})
}

// Reset rewinds the inventory to the seed given to Initialize.
func (s *Simulator) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = model.CloneAll(s.seed)
	s.day = 0

	s.logger.Info("Inventory reset")
	s.progress(ProgressEvent{Message: "Inventory reset to day 0", Level: LevelInfo})
}

// Day returns the number of days simulated since the last Initialize or Reset.
func (s *Simulator) Day() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.day
}

// Snapshot returns a copy of the current inventory.
func (s *Simulator) Snapshot() report.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return report.Take(s.day, s.items)
}

// Step advances the inventory by one day and returns the resulting snapshot.
func (s *Simulator) Step(ctx context.Context) (report.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.advance(ctx); err != nil {
		return report.Snapshot{}, err
	}
	return report.Take(s.day, s.items), nil
}

// Run advances the inventory by days and returns one snapshot per day,
// starting with the state before the first advance.
//
// If ctx is cancelled between days, the snapshots taken so far are returned
// together with the context error.
func (s *Simulator) Run(ctx context.Context, days int) ([]report.Snapshot, error) {
	if days < 0 {
		return nil, fmt.Errorf("days must not be negative, got %d", days)
	}
	if limit := s.settings.MaxDays; limit > 0 && days > limit {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrTooManyDays, days, limit)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.items == nil {
		return nil, ErrNotInitialized
	}

	snapshots := make([]report.Snapshot, 0, min(days, snapshotPrealloc)+1)
	snapshots = append(snapshots, report.Take(s.day, s.items))

	for i := 0; i < days; i++ {
		if err := ctx.Err(); err != nil {
			s.progress(ProgressEvent{Message: fmt.Sprintf("Cancelled after day %d", s.day), Level: LevelError, Day: s.day})
			return snapshots, err
		}
		if err := s.advance(ctx); err != nil {
			return snapshots, err
		}
		snapshots = append(snapshots, report.Take(s.day, s.items))
	}

	s.logger.Info("Run complete", zap.Int("days", days), zap.Int("day", s.day))
	s.progress(ProgressEvent{Message: fmt.Sprintf("Simulated %d day(s), now at day %d", days, s.day), Level: LevelSuccess, Day: s.day})
	return snapshots, nil
}

// advance runs one day. Callers must hold s.mu.
func (s *Simulator) advance(ctx context.Context) error {
	if s.items == nil {
		return ErrNotInitialized
	}

	// A day applies to every item or to none, so work on a copy.
	next := model.CloneAll(s.items)
	if limit := s.settings.MaxConcurrentUpdates; limit > 1 {
		if err := s.updater.AdvanceOneDayParallel(ctx, next, limit); err != nil {
			s.logger.Warn("Parallel advance interrupted", zap.Int("day", s.day+1), zap.Error(err))
			return err
		}
	} else {
		s.updater.AdvanceOneDay(next)
	}

	before := s.items
	s.items = next
	s.day++

	for i, item := range s.items {
		if before[i].Quality > model.MinQuality && item.Quality == model.MinQuality {
			s.logger.Debug("Item became worthless", zap.String("name", item.Name), zap.Int("day", s.day))
			s.progress(ProgressEvent{Message: fmt.Sprintf("%s is now worthless", item.Name), Level: LevelWarning, Day: s.day})
		}
	}

	s.logger.Debug("Day advanced", zap.Int("day", s.day), zap.Int("items", len(s.items)))
	s.progress(ProgressEvent{Message: fmt.Sprintf("Day %d complete", s.day), Level: LevelVerbose, Day: s.day})
	return nil
}

func (s *Simulator) progress(event ProgressEvent) {
	if s.onProgress != nil {
		s.onProgress(event)
	}
}
