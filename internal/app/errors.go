// internal/app/errors.go
package app

import "errors"

// Ошибки отклонения команд. Любая из них означает ноль мутаций состояния.
var (
	ErrWrongPhase        = errors.New("app: command not legal in current phase")
	ErrInsufficientFunds = errors.New("app: insufficient funds")
	ErrWouldBlockPath    = errors.New("app: placement would disconnect entry from exit")
	ErrUnknownTower      = errors.New("app: unknown tower type")
)
