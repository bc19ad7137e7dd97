package models

import "errors"

// ErrLeadNotFound signals a lookup for a phone with no matching lead. It is
// an expected condition, not a failure; handlers map it to an empty-state
// response.
var ErrLeadNotFound = errors.New("lead not found")
