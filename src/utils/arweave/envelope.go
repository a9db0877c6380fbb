package arweave

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type EnvelopeKind int

const (
	EnvelopeMalformed EnvelopeKind = iota
	EnvelopeSuccess
	EnvelopeServerError
)

func (self EnvelopeKind) String() string {
	switch self {
	case EnvelopeSuccess:
		return "success"
	case EnvelopeServerError:
		return "server_error"
	default:
		return "malformed"
	}
}

// Error payload a gateway may return instead of the success shape.
// Only the "error" key is mandatory, everything else is gateway specific and kept in Raw.
type ServerError struct {
	Status  int             `json:"status,omitempty"`
	Message string          `json:"error"`
	Raw     json.RawMessage `json:"-"`
}

// Result of decoding a dual-shaped response. Exactly one of Success/Error is set,
// none of them for a malformed body.
type Envelope[T any] struct {
	Kind    EnvelopeKind
	Success *T
	Error   *ServerError
	Body    []byte
}

type requiredFielder interface {
	requiredFields() []string
}

// Decodes body against the success schema of T, then against the server error schema.
// Never fails, an undecodable body yields EnvelopeMalformed.
func DecodeEnvelope[T any](body []byte) (out Envelope[T]) {
	out.Body = body

	var fields map[string]json.RawMessage
	err := json.Unmarshal(body, &fields)
	if err != nil || fields == nil {
		return
	}

	if isSuccessShape[T](fields) {
		var value T
		err = json.Unmarshal(body, &value)
		if err == nil {
			out.Kind = EnvelopeSuccess
			out.Success = &value
			return
		}
	}

	serverError, ok := decodeServerError(body, fields)
	if ok {
		out.Kind = EnvelopeServerError
		out.Error = serverError
	}

	return
}

func isSuccessShape[T any](fields map[string]json.RawMessage) bool {
	if _, ok := fields["error"]; ok {
		return false
	}

	r, ok := any(new(T)).(requiredFielder)
	if !ok {
		return true
	}

	for _, name := range r.requiredFields() {
		if isMissing(fields[name]) {
			return false
		}
	}
	return true
}

func decodeServerError(body []byte, fields map[string]json.RawMessage) (out *ServerError, ok bool) {
	raw := fields["error"]
	if isMissing(raw) {
		return
	}

	out = &ServerError{Raw: json.RawMessage(bytes.Clone(body))}

	// Error message is usually a string, but some gateways nest objects
	var message string
	if json.Unmarshal(raw, &message) == nil {
		out.Message = message
	} else {
		var compacted bytes.Buffer
		if json.Compact(&compacted, raw) == nil {
			out.Message = compacted.String()
		} else {
			out.Message = string(raw)
		}
	}

	// Status is optional and ignored when it isn't a number
	var status int
	if json.Unmarshal(fields["status"], &status) == nil {
		out.Status = status
	}

	return out, true
}

// Decodes a JSON object into out, failing if any of the keys is absent or null
func unmarshalRequired(data []byte, out any, keys ...string) (err error) {
	var fields map[string]json.RawMessage
	err = json.Unmarshal(data, &fields)
	if err != nil {
		return
	}
	if fields == nil {
		return ErrMissingField
	}

	for _, key := range keys {
		if isMissing(fields[key]) {
			return fmt.Errorf("%w: %s", ErrMissingField, key)
		}
	}

	return json.Unmarshal(data, out)
}

func isMissing(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
