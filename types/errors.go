package types

import "errors"

// ErrAssetNotFound is returned by every quote source for an unknown symbol.
var ErrAssetNotFound = errors.New("not found in quote source")
