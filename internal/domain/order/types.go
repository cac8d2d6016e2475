package order

// Status is intentionally string-typed so new states (CANCELLED, SHIPPED)
// can be added without breaking the wire contract.
type Status string

const (
	StatusPlaced Status = "PLACED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPlaced:
		return true
	default:
		return false
	}
}
