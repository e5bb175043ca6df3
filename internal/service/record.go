package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type recordRepo interface {
	LoadAll(ctx context.Context) (map[string]entity.Record, error)
	Save(ctx context.Context, name string, wins, losses int) error
}

// RecordService is the process-wide cache of player records. Every change
// is written through to the repository.
type RecordService struct {
	logger     *slog.Logger
	recordRepo recordRepo
	seedPath   string

	mu      sync.Mutex
	records map[string]entity.Record
}

func NewRecordService(logger *slog.Logger, recordRepo recordRepo, seedPath string) *RecordService {
	return &RecordService{
		logger:     logger.With("component", "records"),
		recordRepo: recordRepo,
		seedPath:   seedPath,
		records:    make(map[string]entity.Record),
	}
}

// Load fills the cache from the repository, seeding an empty store from the
// configured JSON file. A load failure is logged and leaves the cache empty;
// the returned error wraps apperror.ErrDataLoad for callers that care.
func (that *RecordService) Load(ctx context.Context) error {
	log := that.logger.With("method", "Load")

	records, err := that.recordRepo.LoadAll(ctx)
	if err != nil {
		log.Error("could not load records, starting empty", "error", err)
		return fmt.Errorf("%w: %w", apperror.ErrDataLoad, err)
	}

	if len(records) == 0 && that.seedPath != "" {
		records, err = that.seed(ctx)
		if err != nil {
			log.Error("could not seed records, starting empty", "path", that.seedPath, "error", err)
			return fmt.Errorf("%w: %w", apperror.ErrDataLoad, err)
		}
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	for name, record := range records {
		record.Name = name
		that.records[name] = record
	}

	log.Info("records loaded", "players", len(that.records))

	return nil
}

func (that *RecordService) seed(ctx context.Context) (map[string]entity.Record, error) {
	data, err := os.ReadFile(that.seedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seeded map[string]entity.Record
	if err = json.Unmarshal(data, &seeded); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed file: %w", err)
	}

	for name, record := range seeded {
		if err = that.recordRepo.Save(ctx, name, record.Wins, record.Losses); err != nil {
			return nil, fmt.Errorf("failed to save seeded record: %w", err)
		}
	}

	return seeded, nil
}

// EnsurePlayer registers a new name with an empty record.
func (that *RecordService) EnsurePlayer(ctx context.Context, name string) (entity.Record, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if record, ok := that.records[name]; ok {
		return record, nil
	}

	record := entity.Record{Name: name}
	that.records[name] = record

	if err := that.recordRepo.Save(ctx, name, record.Wins, record.Losses); err != nil {
		return record, fmt.Errorf("failed to save new player: %w", err)
	}

	return record, nil
}

// RecordResult adds one win to winner and one loss to loser. The cache is
// updated even if persisting fails.
func (that *RecordService) RecordResult(ctx context.Context, winner, loser string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	won := that.lookup(winner)
	won.Wins++
	that.records[winner] = won

	lost := that.lookup(loser)
	lost.Losses++
	that.records[loser] = lost

	if err := that.recordRepo.Save(ctx, won.Name, won.Wins, won.Losses); err != nil {
		return fmt.Errorf("failed to save winner record: %w", err)
	}

	if err := that.recordRepo.Save(ctx, lost.Name, lost.Wins, lost.Losses); err != nil {
		return fmt.Errorf("failed to save loser record: %w", err)
	}

	return nil
}

// Get treats an unknown name as a player with no games.
func (that *RecordService) Get(name string) entity.Record {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.lookup(name)
}

// Leaderboard orders players by win rate, best first, then by name.
func (that *RecordService) Leaderboard() []entity.Record {
	that.mu.Lock()
	board := make([]entity.Record, 0, len(that.records))
	for _, record := range that.records {
		board = append(board, record)
	}
	that.mu.Unlock()

	sort.Slice(board, func(i, j int) bool {
		rateI, rateJ := board[i].WinRate(), board[j].WinRate()
		if rateI != rateJ {
			return rateI > rateJ
		}
		return board[i].Name < board[j].Name
	})

	return board
}

func (that *RecordService) lookup(name string) entity.Record {
	if record, ok := that.records[name]; ok {
		return record
	}
	return entity.Record{Name: name}
}
