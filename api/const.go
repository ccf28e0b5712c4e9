package api

import "errors"

// ErrorItemPresent insert cannot succeed because an item equal,
// under the index's compare function, is already indexed.
var ErrorItemPresent = errors.New("itemPresent")

// ErrorKeyMissing operation cannot succeed because specified key is
// missing in the index.
var ErrorKeyMissing = errors.New("keyMissing")

// ErrorOutofMemory insert cannot succeed because the index has
// reached its configured capacity.
var ErrorOutofMemory = errors.New("outofmemory")
