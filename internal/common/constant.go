package common

// MaxPasswordBytes is the longest password accepted at the boundary.
// bcrypt refuses inputs above 72 bytes.
const MaxPasswordBytes = 72

// MaxEmailLength and MaxNameLength bound the stored identity columns.
const (
	MaxEmailLength = 254
	MaxNameLength  = 100
)
