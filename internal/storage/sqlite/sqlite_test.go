package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/webdevKhushi/expense-split-backend/internal/models"
	"github.com/webdevKhushi/expense-split-backend/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "expense-split-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateUser and GetUserByUsername", func(t *testing.T) {
		user := models.NewUser("alice", "hash", "alice@example.com")
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		got, err := store.GetUserByUsername(ctx, "alice")
		if err != nil {
			t.Fatalf("GetUserByUsername failed: %v", err)
		}
		if got == nil {
			t.Fatal("expected user, got nil")
		}
		if got.Username != "alice" {
			t.Errorf("username: got %s, want alice", got.Username)
		}
		if got.Verified {
			t.Error("expected new user to be unverified")
		}
	})

	t.Run("GetUserByUsername returns nil for unknown user", func(t *testing.T) {
		got, err := store.GetUserByUsername(ctx, "nobody")
		if err != nil {
			t.Fatalf("GetUserByUsername failed: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("CreateUser rejects duplicate username", func(t *testing.T) {
		if err := store.CreateUser(ctx, models.NewUser("bob", "h1", "")); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
		if err := store.CreateUser(ctx, models.NewUser("bob", "h2", "")); err == nil {
			t.Error("expected error for duplicate username, got nil")
		}
	})

	t.Run("MarkUserVerified", func(t *testing.T) {
		if err := store.CreateUser(ctx, models.NewUser("carol", "h", "carol@example.com")); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}
		if err := store.MarkUserVerified(ctx, "carol"); err != nil {
			t.Fatalf("MarkUserVerified failed: %v", err)
		}

		got, err := store.GetUserByUsername(ctx, "carol")
		if err != nil {
			t.Fatalf("GetUserByUsername failed: %v", err)
		}
		if !got.Verified {
			t.Error("expected user to be verified")
		}
	})

	t.Run("MarkUserVerified for unknown user returns ErrNotFound", func(t *testing.T) {
		err := store.MarkUserVerified(ctx, "nobody")
		if err != storage.ErrNotFound {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRooms(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateRoom assigns id", func(t *testing.T) {
		room := &models.Room{Name: "Goa", CreatedBy: "alice"}
		if err := store.CreateRoom(ctx, room); err != nil {
			t.Fatalf("CreateRoom failed: %v", err)
		}
		if room.ID == 0 {
			t.Error("expected room ID to be assigned")
		}
		if room.CreatedAt == 0 {
			t.Error("expected CreatedAt to be set")
		}
	})

	t.Run("GetRoom retrieves the room", func(t *testing.T) {
		room := &models.Room{Name: "Trip", CreatedBy: "bob"}
		if err := store.CreateRoom(ctx, room); err != nil {
			t.Fatalf("CreateRoom failed: %v", err)
		}

		got, err := store.GetRoom(ctx, room.ID)
		if err != nil {
			t.Fatalf("GetRoom failed: %v", err)
		}
		if got.Name != "Trip" || got.CreatedBy != "bob" {
			t.Errorf("got %+v, want name=Trip created_by=bob", got)
		}
	})

	t.Run("GetRoom returns ErrNotFound for unknown room", func(t *testing.T) {
		_, err := store.GetRoom(ctx, 9999)
		if err != storage.ErrNotFound {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Creator is not a member until joined", func(t *testing.T) {
		room := &models.Room{Name: "Solo", CreatedBy: "carol"}
		if err := store.CreateRoom(ctx, room); err != nil {
			t.Fatalf("CreateRoom failed: %v", err)
		}

		members, err := store.ListMembers(ctx, room.ID)
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		if len(members) != 0 {
			t.Errorf("expected no members, got %v", members)
		}
	})
}

func TestJoinRoom(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	room := &models.Room{Name: "Goa", CreatedBy: "alice"}
	if err := store.CreateRoom(ctx, room); err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}

	t.Run("first join creates membership and marker entry", func(t *testing.T) {
		joined, err := store.JoinRoom(ctx, room.ID, "bob")
		if err != nil {
			t.Fatalf("JoinRoom failed: %v", err)
		}
		if !joined {
			t.Error("expected newly_joined=true on first join")
		}

		member, err := store.IsMember(ctx, room.ID, "bob")
		if err != nil {
			t.Fatalf("IsMember failed: %v", err)
		}
		if !member {
			t.Error("expected bob to be a member")
		}

		expenses, err := store.ListRoomExpenses(ctx, room.ID)
		if err != nil {
			t.Fatalf("ListRoomExpenses failed: %v", err)
		}
		if len(expenses) != 1 {
			t.Fatalf("expected 1 marker entry, got %d", len(expenses))
		}
		marker := expenses[0]
		if marker.Description != models.JoinMarkerDescription {
			t.Errorf("description: got %q, want %q", marker.Description, models.JoinMarkerDescription)
		}
		if marker.Amount != 0 {
			t.Errorf("amount: got %v, want 0", marker.Amount)
		}
		if marker.People != 1 {
			t.Errorf("people: got %d, want 1", marker.People)
		}
	})

	t.Run("repeat join is a no-op", func(t *testing.T) {
		joined, err := store.JoinRoom(ctx, room.ID, "bob")
		if err != nil {
			t.Fatalf("JoinRoom failed: %v", err)
		}
		if joined {
			t.Error("expected newly_joined=false on repeat join")
		}

		members, err := store.ListMembers(ctx, room.ID)
		if err != nil {
			t.Fatalf("ListMembers failed: %v", err)
		}
		if len(members) != 1 {
			t.Errorf("expected exactly 1 membership row, got %d", len(members))
		}

		expenses, err := store.ListRoomExpenses(ctx, room.ID)
		if err != nil {
			t.Fatalf("ListRoomExpenses failed: %v", err)
		}
		if len(expenses) != 1 {
			t.Errorf("expected exactly 1 marker entry, got %d", len(expenses))
		}
	})
}

func TestRoomExpenses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	room := &models.Room{Name: "Goa", CreatedBy: "alice"}
	if err := store.CreateRoom(ctx, room); err != nil {
		t.Fatalf("CreateRoom failed: %v", err)
	}

	t.Run("people snapshots the member count at write time", func(t *testing.T) {
		if _, err := store.JoinRoom(ctx, room.ID, "bob"); err != nil {
			t.Fatalf("JoinRoom failed: %v", err)
		}

		people, err := store.AddRoomExpense(ctx, room.ID, "alice", "Hotel", 4000)
		if err != nil {
			t.Fatalf("AddRoomExpense failed: %v", err)
		}
		if people != 1 {
			t.Errorf("people: got %d, want 1", people)
		}

		// A later join must not mutate the stored snapshot.
		if _, err := store.JoinRoom(ctx, room.ID, "carol"); err != nil {
			t.Fatalf("JoinRoom failed: %v", err)
		}

		expenses, err := store.ListRoomExpenses(ctx, room.ID)
		if err != nil {
			t.Fatalf("ListRoomExpenses failed: %v", err)
		}
		for _, e := range expenses {
			if e.Description == "Hotel" && e.People != 1 {
				t.Errorf("snapshot mutated: got people=%d, want 1", e.People)
			}
		}

		people, err = store.AddRoomExpense(ctx, room.ID, "alice", "Food", 500)
		if err != nil {
			t.Fatalf("AddRoomExpense failed: %v", err)
		}
		if people != 2 {
			t.Errorf("people: got %d, want 2", people)
		}
	})

	t.Run("history is newest first", func(t *testing.T) {
		expenses, err := store.ListRoomExpenses(ctx, room.ID)
		if err != nil {
			t.Fatalf("ListRoomExpenses failed: %v", err)
		}
		if len(expenses) < 2 {
			t.Fatalf("expected at least 2 entries, got %d", len(expenses))
		}
		for i := 1; i < len(expenses); i++ {
			prev, cur := expenses[i-1], expenses[i]
			if prev.CreatedAt < cur.CreatedAt ||
				(prev.CreatedAt == cur.CreatedAt && prev.ID < cur.ID) {
				t.Errorf("entries out of order at %d: %+v before %+v", i, prev, cur)
			}
		}
		if expenses[0].Description != "Food" {
			t.Errorf("newest entry: got %q, want Food", expenses[0].Description)
		}
	})
}

func TestPersonalExpenses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("Add and list newest first", func(t *testing.T) {
		first := &models.PersonalExpense{Username: "alice", Description: "Coffee", Amount: 120, People: 2}
		if err := store.AddPersonalExpense(ctx, first); err != nil {
			t.Fatalf("AddPersonalExpense failed: %v", err)
		}
		if first.ID == 0 {
			t.Error("expected expense ID to be assigned")
		}

		second := &models.PersonalExpense{Username: "alice", Description: "Lunch", Amount: 350, People: 1}
		if err := store.AddPersonalExpense(ctx, second); err != nil {
			t.Fatalf("AddPersonalExpense failed: %v", err)
		}

		got, err := store.ListPersonalExpenses(ctx, "alice")
		if err != nil {
			t.Fatalf("ListPersonalExpenses failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(got))
		}
		if got[0].Description != "Lunch" {
			t.Errorf("newest entry: got %q, want Lunch", got[0].Description)
		}
		if got[0].RoomName != "" {
			t.Errorf("expected no room name, got %q", got[0].RoomName)
		}
	})

	t.Run("entries are scoped to the owner", func(t *testing.T) {
		got, err := store.ListPersonalExpenses(ctx, "bob")
		if err != nil {
			t.Fatalf("ListPersonalExpenses failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no entries for bob, got %d", len(got))
		}
	})
}
