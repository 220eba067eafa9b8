package source

import "errors"

// Closed set of failure kinds for the list-fetch stage. Handlers map these
// to HTTP statuses with errors.Is; nothing else escapes this package.
var (
	// ErrNotFound means the remote profile does not exist or is private.
	ErrNotFound = errors.New("user not found")
	// ErrUpstream means a network failure or unusable HTTP status from
	// both channels.
	ErrUpstream = errors.New("list source unavailable")
	// ErrParse means a channel answered 200 but the body could not be
	// interpreted.
	ErrParse = errors.New("list source returned malformed data")
)

// preference order when both channels failed: not-found beats upstream
// beats parse.
func errRank(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return 3
	case errors.Is(err, ErrUpstream):
		return 2
	case err != nil:
		return 1
	}
	return 0
}

func preferError(errs ...error) error {
	var best error
	bestRank := 0
	for _, err := range errs {
		if r := errRank(err); r > bestRank {
			best, bestRank = err, r
		}
	}
	return best
}
