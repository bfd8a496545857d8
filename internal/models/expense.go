package models

// JoinMarkerDescription is the description of the zero-amount audit entry
// written when a user first joins a room. It contributes a true zero to any
// sum over the room's ledger.
const JoinMarkerDescription = "joined the room"

// RoomExpense is a shared ledger entry. Rows are append-only and ordered
// newest-first when read back.
type RoomExpense struct {
	// ID is assigned by storage (autoincrement).
	ID int64

	// RoomID is the room this entry belongs to.
	RoomID int64

	// Username is the author of the entry.
	Username string

	// Description is the human-readable label (e.g., "Hotel").
	Description string

	// Amount is the expense amount. Non-negative; zero only for join markers.
	Amount float64

	// People is the number of room members at the moment this entry was
	// written. The cost-sharing denominator. Never recomputed.
	People int

	// CreatedAt is the Unix timestamp when the entry was recorded.
	CreatedAt int64
}

// PersonalExpense is a ledger entry not tied to any room.
type PersonalExpense struct {
	// ID is assigned by storage (autoincrement).
	ID int64

	// Username is the owner of the entry.
	Username string

	// Description is the human-readable label.
	Description string

	// Amount is the expense amount.
	Amount float64

	// People is the caller-supplied cost-sharing denominator.
	People int

	// RoomName is the name of the room the row references, when it
	// references one. The add operation never sets a room; the column
	// exists so history reads can join older rows that carry one.
	RoomName string

	// CreatedAt is the Unix timestamp when the entry was recorded.
	CreatedAt int64
}
