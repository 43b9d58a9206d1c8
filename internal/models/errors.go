package models

import "errors"

// ErrNotFound covers both a genuinely absent record and a record owned by
// another user. The two cases are deliberately indistinguishable to callers.
var ErrNotFound = errors.New("not found")

// ErrDuplicateName is returned when a per-user unique name is already taken.
var ErrDuplicateName = errors.New("name already exists")
