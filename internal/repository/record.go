package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const recordsKey = "gomoku:records"

type RecordRepository interface {
	LoadAll(ctx context.Context) (map[string]entity.Record, error)
	Save(ctx context.Context, name string, wins, losses int) error
}

type dbRecord struct {
	client *redis.Client
}

// storedRecord is the persisted value; the name is the hash field.
type storedRecord struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

func NewRecordRepository(client *redis.Client) RecordRepository {
	return &dbRecord{
		client: client,
	}
}

func (that *dbRecord) LoadAll(ctx context.Context) (map[string]entity.Record, error) {
	response, err := that.client.HGetAll(ctx, recordsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get records: %w", err)
	}

	records := make(map[string]entity.Record, len(response))
	for name, value := range response {
		var stored storedRecord
		if err = json.Unmarshal([]byte(value), &stored); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record %q: %w", name, err)
		}

		records[name] = entity.Record{Name: name, Wins: stored.Wins, Losses: stored.Losses}
	}

	return records, nil
}

func (that *dbRecord) Save(ctx context.Context, name string, wins, losses int) error {
	recordJSON, err := json.Marshal(storedRecord{Wins: wins, Losses: losses})
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if err = that.client.HSet(ctx, recordsKey, name, recordJSON).Err(); err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	return nil
}
