package superhero

import (
	"errors"
	"net/http"
)

// Sentinel errors for the superhero domain. Messages are user-facing:
// handlers write them verbatim into the {"error": ...} response body.
var (
	// ErrSuperheroNotFound - the id does not resolve to a record.
	ErrSuperheroNotFound = errors.New("Not found")

	// ErrImageNotFound - the public id does not match any image on the record.
	ErrImageNotFound = errors.New("Image not found")

	// ErrDuplicateNickname - nickname collides with an existing record
	// (unique index violation, case-sensitive).
	ErrDuplicateNickname = errors.New("Nickname already exists")

	// ErrInvalidID - the id is not a valid ObjectID hex string.
	ErrInvalidID = errors.New("Invalid superhero id")
)

// GetHTTPStatusCode maps a domain error to its HTTP status. Unrecognized
// errors are store or I/O failures and map to 500.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrSuperheroNotFound), errors.Is(err, ErrImageNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateNickname):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
