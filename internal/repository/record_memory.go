package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type memoryRecord struct {
	mu      sync.Mutex
	records map[string]entity.Record
}

// NewMemoryRecordRepository keeps records for the life of the process. It is
// used when Redis is not reachable.
func NewMemoryRecordRepository() RecordRepository {
	return &memoryRecord{
		records: make(map[string]entity.Record),
	}
}

func (that *memoryRecord) LoadAll(_ context.Context) (map[string]entity.Record, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	records := make(map[string]entity.Record, len(that.records))
	for name, record := range that.records {
		records[name] = record
	}

	return records, nil
}

func (that *memoryRecord) Save(_ context.Context, name string, wins, losses int) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.records[name] = entity.Record{Name: name, Wins: wins, Losses: losses}

	return nil
}
