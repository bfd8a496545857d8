package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/webdevKhushi/expense-split-backend/internal/models"
	"github.com/webdevKhushi/expense-split-backend/internal/storage"
)

// CreateRoom persists a new room and populates room.ID with the
// autoincrement id assigned by SQLite.
func (s *SQLiteStore) CreateRoom(ctx context.Context, room *models.Room) error {
	if room.CreatedAt == 0 {
		room.CreatedAt = time.Now().Unix()
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO rooms (name, created_by, created_at) VALUES (?, ?, ?)",
		room.Name, room.CreatedBy, room.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert room: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read room id: %w", err)
	}
	room.ID = id

	return nil
}

// GetRoom retrieves a room by id.
func (s *SQLiteStore) GetRoom(ctx context.Context, roomID int64) (*models.Room, error) {
	room := &models.Room{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, created_by, created_at FROM rooms WHERE id = ?",
		roomID,
	).Scan(&room.ID, &room.Name, &room.CreatedBy, &room.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	return room, nil
}

// JoinRoom records membership and, on first join, the zero-amount marker
// entry. INSERT OR IGNORE against the (room_id, username) primary key makes
// the whole operation idempotent: a concurrent duplicate join inserts
// nothing and therefore writes no second marker either.
func (s *SQLiteStore) JoinRoom(ctx context.Context, roomID int64, username string) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().Unix()

	res, err := tx.ExecContext(ctx,
		"INSERT OR IGNORE INTO room_members (room_id, username, joined_at) VALUES (?, ?, ?)",
		roomID, username, now,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert membership: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if inserted == 0 {
		// Already a member; nothing to write.
		return false, tx.Commit()
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO room_expenses (room_id, username, description, amount, people, created_at) VALUES (?, ?, ?, 0, 1, ?)",
		roomID, username, models.JoinMarkerDescription, now,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert join marker: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return true, nil
}

// IsMember reports whether the user holds a membership for the room.
func (s *SQLiteStore) IsMember(ctx context.Context, roomID int64, username string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		"SELECT 1 FROM room_members WHERE room_id = ? AND username = ?",
		roomID, username,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}

	return true, nil
}

// ListMembers returns the usernames currently holding membership.
func (s *SQLiteStore) ListMembers(ctx context.Context, roomID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT username FROM room_members WHERE room_id = ? ORDER BY username",
		roomID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}
