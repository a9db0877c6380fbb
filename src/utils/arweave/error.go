package arweave

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrTransport      = errors.New("transport error")
	ErrProtocol       = errors.New("gateway reported an error")
	ErrMalformed      = errors.New("malformed response")
	ErrNotFound       = errors.New("data not found")
	ErrPending        = errors.New("tx is pending")
	ErrBadNodeUrl     = errors.New("node url needs to be an absolute http(s) url")
	ErrByteOutOfRange = errors.New("byte value out of range")
	ErrMissingField   = errors.New("required field is missing")
)

// The HTTP call itself failed or returned a non-success status without an error envelope
type TransportError struct {
	Message string

	// HTTP status, 0 if no response was received
	Status int

	Err error
}

func (self *TransportError) Error() string {
	return fmt.Sprintf("%s: %s", ErrTransport, self.Message)
}

func (self *TransportError) Unwrap() error {
	return self.Err
}

func (self *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// Gateway answered with its error-shaped envelope
type ProtocolError struct {
	Payload ServerError
}

func (self *ProtocolError) Error() string {
	if self.Payload.Status != 0 {
		return fmt.Sprintf("%s: %d %s", ErrProtocol, self.Payload.Status, self.Payload.Message)
	}
	return fmt.Sprintf("%s: %s", ErrProtocol, self.Payload.Message)
}

func (self *ProtocolError) Is(target error) bool {
	switch target {
	case ErrProtocol:
		return true
	case ErrNotFound:
		return self.Payload.Status == http.StatusNotFound
	case ErrPending:
		return self.Payload.Status == http.StatusAccepted
	}
	return false
}

// Response body matched neither the success nor the error schema
type MalformedResponse struct {
	Body []byte
}

func (self *MalformedResponse) Error() string {
	const maxLen = 128
	body := self.Body
	if len(body) > maxLen {
		body = body[:maxLen]
	}
	return fmt.Sprintf("%s: %q", ErrMalformed, body)
}

func (self *MalformedResponse) Is(target error) bool {
	return target == ErrMalformed
}
