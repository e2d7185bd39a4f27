package babele

//go:generate go tool stringer -type=State -trimprefix=State -output=state_string.go

// State is the initialization state of a Babele.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)
