// Package message defines the request and response envelopes exchanged over stdio.
package message

import (
	"bytes"
	"fmt"
)

// Request is one parsed request line. Optional fields are nil when absent or null.
type Request struct {
	Cmd       string
	Data      *string // hex
	Algorithm *string
	Key       *string // base64
}

// DataLen returns the length of the data field as sent, or -1 when absent.
func (r *Request) DataLen() int {
	if r.Data == nil {
		return -1
	}

	return len(*r.Data)
}

// Trace renders the request for debug logs. The key is never included.
func (r *Request) Trace() string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("Command: %s\n", r.Cmd))
	if r.Data != nil {
		buf.WriteString(fmt.Sprintf("\t[data]=%d hex chars\n", len(*r.Data)))
	}
	if r.Algorithm != nil {
		buf.WriteString(fmt.Sprintf("\t[algorithm]=%s\n", *r.Algorithm))
	}
	if r.Key != nil {
		buf.WriteString("\t[key]=<redacted>\n")
	}

	return buf.String()
}
