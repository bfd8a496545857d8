package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webdevKhushi/expense-split-backend/internal/models"
	"github.com/webdevKhushi/expense-split-backend/internal/storage"
	"github.com/webdevKhushi/expense-split-backend/internal/storage/sqlite"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "expense-split-service-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestCreateRoom(t *testing.T) {
	svc := NewRoomService(newTestStore(t))
	ctx := context.Background()

	t.Run("empty name is a validation error", func(t *testing.T) {
		_, err := svc.CreateRoom(ctx, "alice", "   ")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("round trip: creator set, no auto-join", func(t *testing.T) {
		room, err := svc.CreateRoom(ctx, "alice", "Trip")
		require.NoError(t, err)
		assert.NotZero(t, room.ID)

		details, err := svc.Details(ctx, room.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice", details.CreatedBy)
		assert.Empty(t, details.Participants, "creator must not be auto-joined")
	})
}

func TestJoinRoom(t *testing.T) {
	store := newTestStore(t)
	svc := NewRoomService(store)
	ctx := context.Background()

	room, err := svc.CreateRoom(ctx, "alice", "Goa")
	require.NoError(t, err)

	t.Run("unknown room is not found", func(t *testing.T) {
		err := svc.JoinRoom(ctx, "bob", 9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("join twice yields one membership and one marker", func(t *testing.T) {
		require.NoError(t, svc.JoinRoom(ctx, "bob", room.ID))
		require.NoError(t, svc.JoinRoom(ctx, "bob", room.ID))

		members, err := svc.Participants(ctx, room.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"bob"}, members)

		history, err := svc.History(ctx, "bob", room.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, models.JoinMarkerDescription, history[0].Description)
		assert.Zero(t, history[0].Amount)
		assert.Equal(t, 1, history[0].People)
	})
}

func TestAddExpense(t *testing.T) {
	store := newTestStore(t)
	svc := NewRoomService(store)
	ctx := context.Background()

	room, err := svc.CreateRoom(ctx, "alice", "Goa")
	require.NoError(t, err)
	require.NoError(t, svc.JoinRoom(ctx, "bob", room.ID))

	t.Run("missing description is a validation error", func(t *testing.T) {
		_, err := svc.AddExpense(ctx, "alice", room.ID, "", 100)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("zero amount is treated as missing", func(t *testing.T) {
		_, err := svc.AddExpense(ctx, "alice", room.ID, "Hotel", 0)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown room is not found", func(t *testing.T) {
		_, err := svc.AddExpense(ctx, "alice", 9999, "Hotel", 100)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("only the creator may post, even against members", func(t *testing.T) {
		_, err := svc.AddExpense(ctx, "bob", room.ID, "Food", 500)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("creator match is trimmed and case-insensitive", func(t *testing.T) {
		people, err := svc.AddExpense(ctx, "  ALICE ", room.ID, "Hotel", 4000)
		require.NoError(t, err)
		assert.Equal(t, 1, people, "only bob is a member; alice never joined")
	})

	t.Run("snapshot is frozen for past entries", func(t *testing.T) {
		require.NoError(t, svc.JoinRoom(ctx, "carol", room.ID))

		people, err := svc.AddExpense(ctx, "alice", room.ID, "Taxi", 300)
		require.NoError(t, err)
		assert.Equal(t, 2, people)

		history, err := svc.History(ctx, "bob", room.ID)
		require.NoError(t, err)
		for _, e := range history {
			if e.Description == "Hotel" {
				assert.Equal(t, 1, e.People, "old snapshot must not change")
			}
		}
	})
}

func TestHistory(t *testing.T) {
	store := newTestStore(t)
	svc := NewRoomService(store)
	ctx := context.Background()

	room, err := svc.CreateRoom(ctx, "alice", "Goa")
	require.NoError(t, err)
	require.NoError(t, svc.JoinRoom(ctx, "bob", room.ID))

	t.Run("invalid room id is a validation error", func(t *testing.T) {
		_, err := svc.History(ctx, "bob", 0)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("non-members are forbidden, creator included", func(t *testing.T) {
		_, err := svc.History(ctx, "alice", room.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("members read the full ledger newest first", func(t *testing.T) {
		_, err := svc.AddExpense(ctx, "alice", room.ID, "Hotel", 4000)
		require.NoError(t, err)

		history, err := svc.History(ctx, "bob", room.ID)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, "Hotel", history[0].Description)
		assert.Equal(t, models.JoinMarkerDescription, history[1].Description)
	})
}

func TestDetails(t *testing.T) {
	svc := NewRoomService(newTestStore(t))
	ctx := context.Background()

	t.Run("missing room yields empty creator, not an error", func(t *testing.T) {
		details, err := svc.Details(ctx, 9999)
		require.NoError(t, err)
		assert.Empty(t, details.CreatedBy)
		assert.Empty(t, details.Participants)
	})
}
