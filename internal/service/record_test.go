package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errRedisDown = errors.New("redis down")

type mockRecordRepo struct {
	mock.Mock
}

func (m *mockRecordRepo) LoadAll(ctx context.Context) (map[string]entity.Record, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).(map[string]entity.Record)
	return records, args.Error(1)
}

func (m *mockRecordRepo) Save(ctx context.Context, name string, wins, losses int) error {
	args := m.Called(ctx, name, wins, losses)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRecordService_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Loads existing records", func(t *testing.T) {
		// Given: a repository holding one record
		repo := &mockRecordRepo{}
		repo.On("LoadAll", mock.Anything).
			Return(map[string]entity.Record{"alice": {Wins: 2, Losses: 1}}, nil).
			Once()
		svc := NewRecordService(discardLogger(), repo, "")

		// When: loading
		err := svc.Load(ctx)

		// Then: the record is cached under its name
		require.NoError(t, err)
		assert.Equal(t, entity.Record{Name: "alice", Wins: 2, Losses: 1}, svc.Get("alice"))
		repo.AssertExpectations(t)
	})

	t.Run("Proceeds empty when the store is unavailable", func(t *testing.T) {
		// Given: a repository that fails
		repo := &mockRecordRepo{}
		repo.On("LoadAll", mock.Anything).Return(nil, errRedisDown).Once()
		svc := NewRecordService(discardLogger(), repo, "")

		// When: loading
		err := svc.Load(ctx)

		// Then: the error is a data load failure and the service still works
		require.ErrorIs(t, err, apperror.ErrDataLoad)
		require.ErrorIs(t, err, errRedisDown)
		assert.Empty(t, svc.Leaderboard())
		assert.Equal(t, entity.Record{Name: "nobody"}, svc.Get("nobody"))
	})

	t.Run("Seeds an empty store from file", func(t *testing.T) {
		// Given: an empty repository and a seed file
		path := filepath.Join(t.TempDir(), "players.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"alice":{"wins":3,"losses":1}}`), 0o600))

		repo := &mockRecordRepo{}
		repo.On("LoadAll", mock.Anything).Return(map[string]entity.Record{}, nil).Once()
		repo.On("Save", mock.Anything, "alice", 3, 1).Return(nil).Once()
		svc := NewRecordService(discardLogger(), repo, path)

		// When: loading
		err := svc.Load(ctx)

		// Then: the seeded record is saved and cached
		require.NoError(t, err)
		assert.Equal(t, entity.Record{Name: "alice", Wins: 3, Losses: 1}, svc.Get("alice"))
		repo.AssertExpectations(t)
	})

	t.Run("Does not seed a store that has records", func(t *testing.T) {
		repo := &mockRecordRepo{}
		repo.On("LoadAll", mock.Anything).
			Return(map[string]entity.Record{"bob": {Losses: 1}}, nil).
			Once()
		svc := NewRecordService(discardLogger(), repo, filepath.Join(t.TempDir(), "missing.json"))

		require.NoError(t, svc.Load(ctx))

		assert.Equal(t, 1, svc.Get("bob").Losses)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing seed file is a data load failure", func(t *testing.T) {
		repo := &mockRecordRepo{}
		repo.On("LoadAll", mock.Anything).Return(map[string]entity.Record{}, nil).Once()
		svc := NewRecordService(discardLogger(), repo, filepath.Join(t.TempDir(), "missing.json"))

		err := svc.Load(ctx)

		require.ErrorIs(t, err, apperror.ErrDataLoad)
		assert.Empty(t, svc.Leaderboard())
	})
}

func TestRecordService_EnsurePlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates and saves a new player once", func(t *testing.T) {
		// Given: an empty service
		repo := &mockRecordRepo{}
		repo.On("Save", mock.Anything, "alice", 0, 0).Return(nil).Once()
		svc := NewRecordService(discardLogger(), repo, "")

		// When: ensuring the same player twice
		first, err := svc.EnsurePlayer(ctx, "alice")
		require.NoError(t, err)
		second, err := svc.EnsurePlayer(ctx, "alice")
		require.NoError(t, err)

		// Then: the player is saved only once with an empty record
		assert.Equal(t, entity.Record{Name: "alice"}, first)
		assert.Equal(t, first, second)
		repo.AssertExpectations(t)
	})

	t.Run("Returns save errors", func(t *testing.T) {
		repo := &mockRecordRepo{}
		repo.On("Save", mock.Anything, "alice", 0, 0).Return(errRedisDown).Once()
		svc := NewRecordService(discardLogger(), repo, "")

		_, err := svc.EnsurePlayer(ctx, "alice")

		require.ErrorIs(t, err, errRedisDown)
	})
}

func TestRecordService_RecordResult(t *testing.T) {
	ctx := context.Background()

	// Given: two players with prior records
	repo := &mockRecordRepo{}
	repo.On("LoadAll", mock.Anything).
		Return(map[string]entity.Record{"alice": {Wins: 1}, "bob": {Losses: 2}}, nil).
		Once()
	repo.On("Save", mock.Anything, "alice", 2, 0).Return(nil).Once()
	repo.On("Save", mock.Anything, "bob", 0, 3).Return(nil).Once()
	svc := NewRecordService(discardLogger(), repo, "")
	require.NoError(t, svc.Load(ctx))

	// When: alice beats bob
	err := svc.RecordResult(ctx, "alice", "bob")

	// Then: one win and one loss are added and persisted
	require.NoError(t, err)
	assert.Equal(t, 2, svc.Get("alice").Wins)
	assert.Equal(t, 3, svc.Get("bob").Losses)
	repo.AssertExpectations(t)
}

func TestRecordService_Leaderboard(t *testing.T) {
	// Given: players with different win rates
	repo := &mockRecordRepo{}
	repo.On("LoadAll", mock.Anything).Return(map[string]entity.Record{
		"carol": {Wins: 1, Losses: 1},
		"alice": {Wins: 3, Losses: 1},
		"dave":  {},
		"bob":   {Wins: 2, Losses: 2},
	}, nil).Once()
	svc := NewRecordService(discardLogger(), repo, "")
	require.NoError(t, svc.Load(context.Background()))

	// When: building the leaderboard
	board := svc.Leaderboard()

	// Then: best rate first and ties broken by name
	names := make([]string, 0, len(board))
	for _, record := range board {
		names = append(names, record.Name)
	}
	assert.Equal(t, []string{"alice", "bob", "carol", "dave"}, names)
}
