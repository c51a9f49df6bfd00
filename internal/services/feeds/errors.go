package feeds

import "errors"

// ErrInvalidFeed is returned for any fetch, network, timeout or parse failure,
// and for documents without a channel title
var ErrInvalidFeed = errors.New("invalid or unreachable feed")
