package index

import "fmt"

// Status classifies a document at insertion time and never changes
// afterwards.
type Status int

const (
	StatusActive Status = iota
	StatusIrrelevant
	StatusBanned
	StatusRemoved
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusIrrelevant:
		return "irrelevant"
	case StatusBanned:
		return "banned"
	case StatusRemoved:
		return "removed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ParseStatus converts a status name as it appears in config or document
// files. The empty string maps to StatusActive.
func ParseStatus(name string) (Status, error) {
	switch name {
	case "", "active":
		return StatusActive, nil
	case "irrelevant":
		return StatusIrrelevant, nil
	case "banned":
		return StatusBanned, nil
	case "removed":
		return StatusRemoved, nil
	default:
		return 0, fmt.Errorf("unknown document status %q", name)
	}
}
