package model

// Status selects the active screen.
type Status int

const (
	StatusInput Status = iota
	StatusGenerating
	StatusComplete
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusInput:
		return "INPUT"
	case StatusGenerating:
		return "GENERATING"
	case StatusComplete:
		return "COMPLETE"
	case StatusError:
		return "ERROR"
	}
	return "UNKNOWN"
}
