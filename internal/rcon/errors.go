package rcon

import "errors"

var (
	ErrAuthFailed    = errors.New("rcon: authentication failed")
	ErrNotReady      = errors.New("rcon: session not ready")
	ErrSessionClosed = errors.New("rcon: session closed")
	ErrSessionBroken = errors.New("rcon: session broken")
	ErrTimeout       = errors.New("rcon: request timed out")
	ErrUnexpectedID  = errors.New("rcon: response id does not match request")
)
