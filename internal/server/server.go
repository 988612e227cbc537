// Package server runs the line-oriented request loop over a reader/writer pair.
package server

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/andrei-cloud/cryptoproc/internal/processor"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	defaultBufferSize    = 64 * 1024
	defaultMaxReadErrors = 0 // no limit
)

var (
	// ErrServerStopped is returned by Serve once Stop has been called.
	ErrServerStopped = errors.New("server stopped")

	// errInvalidUTF8 reports a line that is not valid UTF-8 text.
	errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
)

// Server reads one request per line from in and writes one response per line to out.
type Server struct {
	in         *bufio.Reader
	out        *bufio.Writer
	dispatcher *processor.Dispatcher
	handled    uint64

	maxReadErrors int
	readErrors    int // consecutive

	// mu guards out and stopped; a response is written whole under it.
	mu      sync.Mutex
	stopped bool
}

// Option configures a Server.
type Option func(*serverOptions)

type serverOptions struct {
	bufferSize    int
	maxReadErrors int
}

// WithBufferSize sets the read and write buffer sizes. Lines longer than the
// buffer are still read whole.
func WithBufferSize(n int) Option {
	return func(o *serverOptions) {
		if n > 0 {
			o.bufferSize = n
		}
	}
}

// WithMaxReadErrors sets how many consecutive read failures are tolerated
// before Serve gives up on the input stream. Zero or less means no limit.
func WithMaxReadErrors(n int) Option {
	return func(o *serverOptions) {
		o.maxReadErrors = n
	}
}

// NewServer configures and returns a Server.
func NewServer(in io.Reader, out io.Writer, d *processor.Dispatcher, opts ...Option) *Server {
	o := serverOptions{bufferSize: defaultBufferSize, maxReadErrors: defaultMaxReadErrors}
	for _, opt := range opts {
		opt(&o)
	}

	return &Server{
		in:         bufio.NewReaderSize(in, o.bufferSize),
		out:        bufio.NewWriterSize(out, o.bufferSize),
		dispatcher: d,

		maxReadErrors: o.maxReadErrors,
	}
}

// Serve processes lines until end of input, ctx cancellation or a write failure.
// It returns nil at end of input. Per-line failures never stop the loop.
func (s *Server) Serve(ctx context.Context) error {
	log.Info().Str("event", "server_started").Msg("processing requests from input stream")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.isStopped() {
			return ErrServerStopped
		}

		line, readErr := s.readLine()
		if len(line) == 0 && errors.Is(readErr, io.EOF) {
			log.Info().
				Str("event", "input_closed").
				Uint64("handled", s.handled).
				Msg("end of input")

			return nil
		}

		if readErr != nil && !errors.Is(readErr, io.EOF) {
			if err := s.readFailed(readErr); err != nil {
				return err
			}
			continue
		}
		s.readErrors = 0

		if !utf8.Valid(line) {
			log.Error().Str("event", "read_error").Err(errInvalidUTF8).Msg("error reading input")
		} else if err := s.handle(line); err != nil {
			return err
		}

		// final line without terminator.
		if errors.Is(readErr, io.EOF) {
			log.Info().
				Str("event", "input_closed").
				Uint64("handled", s.handled).
				Msg("end of input")

			return nil
		}
	}
}

// Stop prevents any further response from being written. It waits for a
// response that is being written to be flushed, so after Stop returns the
// output holds only complete lines. Serve returns ErrServerStopped on its
// next write or loop iteration. Stop is safe to call more than once.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
}

func (s *Server) isStopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stopped
}

// readFailed logs a read error and reports whether the stream should be abandoned.
func (s *Server) readFailed(err error) error {
	s.readErrors++
	log.Error().
		Str("event", "read_error").
		Int("consecutive", s.readErrors).
		Err(err).
		Msg("error reading input")

	if s.maxReadErrors > 0 && s.readErrors >= s.maxReadErrors {
		return fmt.Errorf("input stream failed %d times in a row: %w", s.readErrors, err)
	}

	return nil
}

// readLine returns the next line without its "\n" or "\r\n" terminator.
func (s *Server) readLine() ([]byte, error) {
	line, err := s.in.ReadBytes('\n')
	if trimmed, ok := bytes.CutSuffix(line, []byte("\n")); ok {
		line, _ = bytes.CutSuffix(trimmed, []byte("\r"))
	}

	return line, err
}

// handle processes one line and writes its response.
func (s *Server) handle(line []byte) error {
	start := time.Now()
	reqID := uuid.NewString()
	s.handled++

	log.Info().
		Str("event", "request_received").
		Str("request_id", reqID).
		Int("line_bytes", len(line)).
		Msg("received request")

	outcome := s.dispatcher.Process(line)
	resp := outcome.Response()

	if req := outcome.Request; req != nil {
		log.Debug().Str("request_id", reqID).Msg(req.Trace())
	}

	out, err := resp.Marshal()
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}

	if err := s.writeLine(out); err != nil {
		return err
	}

	level := zerolog.InfoLevel
	code := outcome.Code()
	if code != "" {
		level = zerolog.WarnLevel
	}
	event := log.WithLevel(level).
		Str("event", "response_sent").
		Str("request_id", reqID)
	if req := outcome.Request; req != nil {
		event = event.Str("command", req.Cmd).Int("data_len", req.DataLen())
	}
	if code != "" {
		event = event.Str("error_code", code)
	}
	event.
		Bool("success", resp.IsSuccess()).
		Str("duration", time.Since(start).String()).
		Msg("sent response")

	return nil
}

// writeLine writes and flushes one response line, unless the server is stopped.
func (s *Server) writeLine(out []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return ErrServerStopped
	}

	if _, err := s.out.Write(out); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	if err := s.out.WriteByte('\n'); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	if err := s.out.Flush(); err != nil {
		return fmt.Errorf("flush response: %w", err)
	}

	return nil
}
