// Package models defines the core domain models for the expense-split backend.
//
// # Models
//
//   - User: Registered account, identified everywhere by its unique username
//   - Room: A named shared-expense group with exactly one creator
//   - Membership: Records that a user has joined a room (at most once)
//   - RoomExpense: An expense attributed to a room, carrying a participant-count
//     snapshot taken when the expense was recorded
//   - PersonalExpense: An expense not attributed to any room
//
// # Design Principles
//
//  1. **Usernames as identity**: Rooms and ledger rows reference usernames,
//     not user IDs. Usernames are trimmed at signup so identity comparisons
//     agree everywhere.
//  2. **Append-only ledgers**: Expense rows are never updated or deleted.
//  3. **Snapshot semantics**: RoomExpense.People is the member count at the
//     moment the row was written. It is historical truth and is never
//     recomputed when membership changes later.
//  4. **Stateless credentials**: Bearer tokens are signed and self-contained.
//     There is no revocation store; an issued token stays valid until it
//     expires. Known limitation, acceptable at this scope.
package models
