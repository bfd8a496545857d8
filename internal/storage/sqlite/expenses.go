package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/webdevKhushi/expense-split-backend/internal/models"
)

// AddRoomExpense appends a shared ledger entry. The member count and the
// insert run inside one transaction so the stored snapshot matches a
// consistent read; a join landing just after the count committed is fine
// (snapshot semantics), a torn read is not.
func (s *SQLiteStore) AddRoomExpense(ctx context.Context, roomID int64, username, description string, amount float64) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var people int
	err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM room_members WHERE room_id = ?",
		roomID,
	).Scan(&people)
	if err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO room_expenses (room_id, username, description, amount, people, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		roomID, username, description, amount, people, time.Now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert room expense: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return people, nil
}

// ListRoomExpenses returns the room's shared entries, newest first.
// The id tiebreak keeps entries written within the same second stable.
func (s *SQLiteStore) ListRoomExpenses(ctx context.Context, roomID int64) ([]models.RoomExpense, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, room_id, username, description, amount, people, created_at
		FROM room_expenses
		WHERE room_id = ?
		ORDER BY created_at DESC, id DESC`,
		roomID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get room expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.RoomExpense
	for rows.Next() {
		var e models.RoomExpense
		if err := rows.Scan(&e.ID, &e.RoomID, &e.Username, &e.Description, &e.Amount, &e.People, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan room expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate room expenses: %w", err)
	}

	return expenses, nil
}

// AddPersonalExpense appends a personal ledger entry and populates
// expense.ID and expense.CreatedAt.
func (s *SQLiteStore) AddPersonalExpense(ctx context.Context, expense *models.PersonalExpense) error {
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO expenses (username, description, amount, people, room_id, created_at) VALUES (?, ?, ?, ?, NULL, ?)",
		expense.Username, expense.Description, expense.Amount, expense.People, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert personal expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read expense id: %w", err)
	}
	expense.ID = id

	return nil
}

// ListPersonalExpenses returns the user's personal entries, newest first,
// joined with room names for rows that reference a room.
func (s *SQLiteStore) ListPersonalExpenses(ctx context.Context, username string) ([]models.PersonalExpense, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.id, e.username, e.description, e.amount, e.people, r.name, e.created_at
		FROM expenses e
		LEFT JOIN rooms r ON e.room_id = r.id
		WHERE e.username = ?
		ORDER BY e.created_at DESC, e.id DESC`,
		username,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get personal expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.PersonalExpense
	for rows.Next() {
		var e models.PersonalExpense
		var roomName sql.NullString
		if err := rows.Scan(&e.ID, &e.Username, &e.Description, &e.Amount, &e.People, &roomName, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan personal expense: %w", err)
		}
		e.RoomName = roomName.String
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate personal expenses: %w", err)
	}

	return expenses, nil
}
