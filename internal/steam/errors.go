package steam

import "errors"

var (
	// ErrRequest covers transport failures and non-success API responses.
	ErrRequest = errors.New("steam API request failed")
	// ErrDecode means the response did not have the expected shape.
	ErrDecode = errors.New("unexpected steam API response")
	// ErrInvalidSteamID is returned before any request is made.
	ErrInvalidSteamID = errors.New("invalid steam ID")
)
