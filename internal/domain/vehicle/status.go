package vehicle

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// ParseStatus accepts exactly the two enumerated values, case-sensitively.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusActive, StatusInactive:
		return Status(s), true
	}
	return "", false
}

func DefaultStatus() Status {
	return StatusActive
}
