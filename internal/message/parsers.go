package message

import (
	"encoding/json"
	"fmt"

	"github.com/andrei-cloud/cryptoproc/internal/errorcodes"
)

// Wire field names. Matching is exact and case-sensitive.
const (
	fieldCmd       = "cmd"
	fieldData      = "data"
	fieldAlgorithm = "algorithm"
	fieldKey       = "key"
)

// ParseRequest parses one line into a Request.
// Any failure is returned as errorcodes.ErrInvalidJSON carrying the parser message.
func ParseRequest(line []byte) (*Request, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(line, &fields); err != nil {
		return nil, errorcodes.ErrInvalidJSON.Wrap(err)
	}
	// a bare null decodes into a nil map without error.
	if fields == nil {
		return nil, errorcodes.ErrInvalidJSON.With("expected a JSON object")
	}

	cmd, err := stringField(fields, fieldCmd)
	if err != nil {
		return nil, err
	}
	if cmd == nil {
		return nil, errorcodes.ErrInvalidJSON.With("missing field `cmd`")
	}

	req := &Request{Cmd: *cmd}
	if req.Data, err = stringField(fields, fieldData); err != nil {
		return nil, err
	}
	if req.Algorithm, err = stringField(fields, fieldAlgorithm); err != nil {
		return nil, err
	}
	if req.Key, err = stringField(fields, fieldKey); err != nil {
		return nil, err
	}

	return req, nil
}

// stringField extracts an optional string field; absent and null both yield nil.
func stringField(fields map[string]json.RawMessage, name string) (*string, error) {
	raw, ok := fields[name]
	if !ok {
		return nil, nil
	}

	var v *string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, errorcodes.ErrInvalidJSON.With(
			fmt.Sprintf("invalid type for field `%s`: expected a string", name),
		)
	}

	return v, nil
}
