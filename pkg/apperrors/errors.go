// Package apperrors defines the sentinel errors shared across the engine.
// Protocol violations are recoverable rejections, never fatal: callers
// inspect them with errors.Is and carry on with the session.
package apperrors

import "errors"

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrAlreadyStarted     = errors.New("session already started")
	ErrNarrativeOutOfTurn = errors.New("narrative out of turn")
	ErrAnswerOutOfTurn    = errors.New("answer out of turn")
	ErrHistoryEmpty       = errors.New("history empty")
	ErrUnknownQuestion    = errors.New("unknown question")
)
