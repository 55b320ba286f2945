package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// ResultID identifies one stored decision result
type ResultID ID

// BatteryID groups the results of one EvaluateAll run
type BatteryID ID

func NewResultID() ResultID   { return ResultID(NewID()) }
func NewBatteryID() BatteryID { return BatteryID(NewID()) }

func (id ResultID) String() string  { return ID(id).String() }
func (id BatteryID) String() string { return ID(id).String() }

// ParseResultID parses a string into ResultID. Only well-formed UUIDs are
// accepted so that malformed path parameters never reach the repository.
func ParseResultID(s string) (ResultID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("result ID cannot be empty")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid result ID %q: %w", s, err)
	}
	return ResultID(parsed.String()), nil
}
