package repo

import "errors"

var (
	// ErrDuplicateUsername is returned when a registration collides with an
	// existing username (unique constraint on users.username).
	ErrDuplicateUsername = errors.New("username is already registered")

	// ErrInvalidCredentials is returned for both an unknown username and a
	// wrong password, so a caller cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUnknownOwner is returned when a property references a user id that
	// does not exist (foreign key violation).
	ErrUnknownOwner = errors.New("owner user does not exist")

	// ErrNotFoundOrForbidden is returned when a delete matched no row. It does
	// not distinguish "no such property" from "owned by someone else".
	ErrNotFoundOrForbidden = errors.New("property not found or not owned by this user")
)

// Postgres error codes checked against *pq.Error.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)
