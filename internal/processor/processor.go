// Package processor routes parsed requests to their command handlers and
// shapes handler outcomes into response envelopes.
package processor

import (
	"github.com/andrei-cloud/cryptoproc/internal/codec"
	"github.com/andrei-cloud/cryptoproc/internal/errorcodes"
	"github.com/andrei-cloud/cryptoproc/internal/message"
	"github.com/andrei-cloud/cryptoproc/internal/processor/logic"
)

// Command names a supported request command.
type Command string

// Supported commands. Adding one means a new constant, a handler in
// package logic and an entry in registry.
const (
	CommandHash    Command = "hash"
	CommandEncrypt Command = "encrypt"
)

// ExecuteFunc runs one command and returns its raw result bytes.
type ExecuteFunc func(req *message.Request) ([]byte, error)

// CommandInfo stores metadata about a command and its handler.
type CommandInfo struct {
	Command     Command
	Description string
	Execute     ExecuteFunc
}

// registry is built once and never mutated.
var registry = map[Command]CommandInfo{
	CommandHash: {
		Command:     CommandHash,
		Description: "Digest hex data (algorithm: sha256)",
		Execute:     logic.ExecuteHash,
	},
	CommandEncrypt: {
		Command:     CommandEncrypt,
		Description: "AES-256-GCM encrypt hex data under a base64 32-byte key",
		Execute:     logic.ExecuteEncrypt,
	},
}

// Commands returns the supported commands in a stable order.
func Commands() []Command {
	return []Command{CommandHash, CommandEncrypt}
}

// Describe returns the metadata registered for cmd.
func Describe(cmd Command) (CommandInfo, bool) {
	info, ok := registry[cmd]
	return info, ok
}

// Lookup resolves a wire command name. Matching is exact and case-sensitive.
func Lookup(name string) (CommandInfo, bool) {
	return Describe(Command(name))
}

// Outcome is the result of handling one line: either Result or Err is set.
// It becomes a wire envelope only through Response.
type Outcome struct {
	Request *message.Request // nil when the line did not parse
	Result  []byte
	Err     error
}

// Response converts the outcome into the wire envelope.
func (o Outcome) Response() message.Response {
	if o.Err != nil {
		return message.Failure(o.Err)
	}
	if o.Result == nil {
		return message.Failure(errorcodes.ErrInternal)
	}

	return message.Success(codec.EncodeHex(o.Result))
}

// Code returns the error code of a failed outcome, or "" on success.
func (o Outcome) Code() string {
	if o.Err == nil && o.Result != nil {
		return ""
	}

	return errorcodes.CodeOf(o.Err)
}

// Dispatcher turns request lines into outcomes. It holds no per-request state.
type Dispatcher struct{}

// NewDispatcher returns a Dispatcher over the static command registry.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Process parses line and dispatches it. Every failure is carried in the
// returned outcome.
func (d *Dispatcher) Process(line []byte) Outcome {
	req, err := message.ParseRequest(line)
	if err != nil {
		return Outcome{Err: err}
	}

	return d.Dispatch(req)
}

// Dispatch routes req to its handler.
func (d *Dispatcher) Dispatch(req *message.Request) Outcome {
	info, ok := Lookup(req.Cmd)
	if !ok {
		return Outcome{Request: req, Err: errorcodes.ErrUnknownCommand.With(req.Cmd)}
	}

	result, err := info.Execute(req)
	if err != nil {
		return Outcome{Request: req, Err: err}
	}

	return Outcome{Request: req, Result: result}
}
