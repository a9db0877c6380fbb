package arweave

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"
)

// Raw bytes carried on the wire as an unpadded base64url string.
type Base64String []byte

func (self *Base64String) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	// Null carries no bytes, same as an empty string
	if bytes.Equal(data, []byte("null")) {
		*self = Base64String{}
		return nil
	}

	// Some gateways (and older tooling) send the bytes as a plain array
	if len(data) > 0 && data[0] == '[' {
		var values []int
		err := json.Unmarshal(data, &values)
		if err != nil {
			return err
		}
		out := make([]byte, len(values))
		for i, v := range values {
			if v < 0 || v > 255 {
				return ErrByteOutOfRange
			}
			out[i] = byte(v)
		}
		*self = out
		return nil
	}

	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}

	// Decode base64
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return err
	}

	*self = b
	return nil
}

func (self Base64String) MarshalJSON() (out []byte, err error) {
	return json.Marshal(self.Base64())
}

func (self Base64String) Base64() string {
	return base64.RawURLEncoding.EncodeToString(self)
}

func (self Base64String) Bytes() []byte {
	return []byte(self)
}
