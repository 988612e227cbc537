// Package logic provides business logic for the processor commands.
//
// Each Execute function validates its own fields, drives the codec and the
// relevant primitive, and returns the raw result bytes or a typed
// errorcodes.ProcError. Functions hold no state between calls.
package logic

import "github.com/rs/zerolog/log"

func logDebug(cmd, msg string) {
	log.Debug().Str("event", "command_debug").Str("command", cmd).Msg(msg)
}
