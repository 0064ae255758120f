package usecase

import "time"

// Logger is the diagnostic sink used by the bank usecase. The usecase layer
// depends on this interface, not on a concrete implementation; writes are
// fire-and-forget and their failures are not observable here.
//
//go:generate mockgen -destination=mocks/mock_collaborators.go -source=interface.go Logger,Clock
type Logger interface {
	Info(message string)
	Error(message string)
}

// Clock supplies the current wall-clock time. It is consulted only to
// decide whether a requested statement month is still in progress.
type Clock interface {
	Now() time.Time
}
