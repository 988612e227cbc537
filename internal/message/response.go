package message

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/andrei-cloud/cryptoproc/internal/errorcodes"
)

// Response is one response line. Exactly one of Result and Error is set;
// build it with Success or Failure only.
type Response struct {
	Result *string `json:"result"`
	Error  *string `json:"error"`
}

// Success returns a response carrying result.
func Success(result string) Response {
	return Response{Result: &result}
}

// Failure returns a response carrying err's message.
func Failure(err error) Response {
	if err == nil {
		err = errorcodes.ErrInternal
	}
	msg := err.Error()

	return Response{Error: &msg}
}

// IsSuccess reports whether the response carries a result.
func (r Response) IsSuccess() bool {
	return r.Result != nil && r.Error == nil
}

// Marshal serializes the response as a single line without terminator.
// Both keys are always present, the unused one as null.
func (r Response) Marshal() ([]byte, error) {
	if (r.Result == nil) == (r.Error == nil) {
		return nil, errors.New("response must carry exactly one of result or error")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		return nil, fmt.Errorf("marshal response: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
