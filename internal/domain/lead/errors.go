package lead

import "errors"

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrUnknownStage      = errors.New("unknown stage")
	ErrTerminalStage     = errors.New("lead is in a terminal stage")
	ErrIllegalTransition = errors.New("illegal stage transition")
	ErrNotConfirmed      = errors.New("lead must be confirmed before conversion")
	ErrAlreadyConverted  = errors.New("lead already converted")
)
