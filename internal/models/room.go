package models

// Room represents a shared-expense group.
type Room struct {
	// ID is assigned by storage (autoincrement).
	ID int64

	// Name is the display name of the room (e.g., "Goa Trip").
	Name string

	// CreatedBy is the username of the creator. Immutable once set.
	// Only the creator may add shared expenses to the room.
	CreatedBy string

	// CreatedAt is the Unix timestamp when the room was created.
	CreatedAt int64
}

// Membership records that a user has joined a room. The (RoomID, Username)
// pair is unique; there is no leave operation.
type Membership struct {
	RoomID   int64
	Username string

	// JoinedAt is the Unix timestamp of the first (only) join.
	JoinedAt int64
}

// RoomDetails is the read model for a room's participant view.
// For a missing room CreatedBy is empty and Participants is nil.
type RoomDetails struct {
	CreatedBy    string
	Participants []string
}
