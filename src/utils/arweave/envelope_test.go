package arweave

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const transactionJSON = `{
	"format": 2,
	"id": "BNttzDav3jHVnNiV7nYbQv-GY0HQ-4XXsdkE5K9ylHQ",
	"last_tx": "jUcuEDZQy2fC6T3fHnGfYsw0D0Zl4NfuaXfwBOLiQtA",
	"owner": "posmE0-ehRXc2rP6kEkvdVk2nuP3Y-MpWANVBg2mh5nH3QYPT2-Nw",
	"tags": [
		{"name": "Q29udGVudC1UeXBl", "value": "dGV4dC9odG1s"},
		{"name": "QXBwLU5hbWU", "value": "U21hcnRXZWF2ZUFjdGlvbg"},
		{"name": "QXBwLU5hbWU", "value": "U21hcnRXZWF2ZUNvbnRyYWN0"}
	],
	"target": "",
	"quantity": "0",
	"data": "PGgxPkhlbGxvIEFyd2VhdmU8L2gxPg",
	"data_size": "22",
	"data_root": "0s8hXbCrqvTyC-Ry3OVPIgRjHhXMMvnAFOSZS6GvBDE",
	"reward": "6357660048",
	"signature": "GRPrfYkWnxyY7S5ZMwQq_-yMLO2BptqCgQUB9r8A"
}`

// Every key of TransactionData is required, checked one by one
func TestDecodeEnvelopeEveryKeyRequired(t *testing.T) {
	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(transactionJSON), &fields))
	require.Len(t, fields, 12)

	for key := range fields {
		t.Run(key, func(t *testing.T) {
			envelope := DecodeEnvelope[TransactionData]([]byte(withoutKey(transactionJSON, key)))
			require.Equal(t, EnvelopeMalformed, envelope.Kind)
			require.Nil(t, envelope.Success)
		})
	}
}

func TestDecodeEnvelopeKinds(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind EnvelopeKind
	}{
		{"success", transactionJSON, EnvelopeSuccess},
		{"error string", `{"error": "Not Found"}`, EnvelopeServerError},
		{"error with status", `{"status": 404, "error": "Not Found"}`, EnvelopeServerError},
		{"error object", `{"error": {"code": 1, "reason": "timeout"}}`, EnvelopeServerError},
		{"plain text", `Not Found`, EnvelopeMalformed},
		{"empty", ``, EnvelopeMalformed},
		{"null", `null`, EnvelopeMalformed},
		{"array", `[]`, EnvelopeMalformed},
		{"missing required", `{"format": 2}`, EnvelopeMalformed},
		{"null required", `{"format": 2, "id": null}`, EnvelopeMalformed},
		{"null error", `{"error": null}`, EnvelopeMalformed},
		{"wrong type", `{"format": "two", "id": "x"}`, EnvelopeMalformed},
		{"truncated", transactionJSON[:40], EnvelopeMalformed},
		{"partial", `{"id": "x", "format": 2}`, EnvelopeMalformed},
		{"missing owner", withoutKey(transactionJSON, "owner"), EnvelopeMalformed},
		{"missing tags", withoutKey(transactionJSON, "tags"), EnvelopeMalformed},
		{"missing data", withoutKey(transactionJSON, "data"), EnvelopeMalformed},
		{"missing data root", withoutKey(transactionJSON, "data_root"), EnvelopeMalformed},
		{"null signature", withKey(transactionJSON, "signature", `null`), EnvelopeMalformed},
		{"empty tag", withKey(transactionJSON, "tags", `[{}]`), EnvelopeMalformed},
		{"tag without value", withKey(transactionJSON, "tags", `[{"name": "a"}]`), EnvelopeMalformed},
		{"no tags", withKey(transactionJSON, "tags", `[]`), EnvelopeSuccess},
		{"empty target", withKey(transactionJSON, "target", `""`), EnvelopeSuccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				envelope := DecodeEnvelope[TransactionData]([]byte(tt.body))
				require.Equal(t, tt.kind, envelope.Kind, envelope.Kind.String())
				require.Equal(t, tt.kind == EnvelopeSuccess, envelope.Success != nil)
				require.Equal(t, tt.kind == EnvelopeServerError, envelope.Error != nil)
				require.Equal(t, []byte(tt.body), envelope.Body)
			})
		})
	}
}

func TestDecodeEnvelopeErrorPayload(t *testing.T) {
	envelope := DecodeEnvelope[TransactionStatusResponse]([]byte(`{"status": 404, "error": "Not Found"}`))
	require.Equal(t, EnvelopeServerError, envelope.Kind)
	require.Equal(t, 404, envelope.Error.Status)
	require.Equal(t, "Not Found", envelope.Error.Message)

	envelope = DecodeEnvelope[TransactionStatusResponse]([]byte(`{"status": "gone", "error": {"reason": "timeout"}}`))
	require.Equal(t, EnvelopeServerError, envelope.Kind)
	require.Zero(t, envelope.Error.Status)
	require.Equal(t, `{"reason":"timeout"}`, envelope.Error.Message)
}

func TestDecodeEnvelopeStatus(t *testing.T) {
	envelope := DecodeEnvelope[TransactionStatusResponse]([]byte(`{"status": 1, "confirmed": null}`))
	require.Equal(t, EnvelopeSuccess, envelope.Kind)
	require.Equal(t, 1, envelope.Success.Status)
	require.Nil(t, envelope.Success.Confirmed)

	envelope = DecodeEnvelope[TransactionStatusResponse]([]byte(`{"status": 202}`))
	require.Equal(t, EnvelopeSuccess, envelope.Kind)
	require.False(t, envelope.Success.IsConfirmed())

	envelope = DecodeEnvelope[TransactionStatusResponse]([]byte(`{"confirmed": null}`))
	require.Equal(t, EnvelopeMalformed, envelope.Kind)

	envelope = DecodeEnvelope[TransactionStatusResponse]([]byte(
		`{"status": 200, "confirmed": {"block_indep_hash": "h", "block_height": 1, "number_of_confirmations": 2}}`))
	require.Equal(t, EnvelopeSuccess, envelope.Kind)
	require.True(t, envelope.Success.IsConfirmed())
	require.Equal(t, int64(2), envelope.Success.Confirmed.NumberOfConfirmations)
}

func TestDecodeEnvelopePartialConfirmation(t *testing.T) {
	for _, body := range []string{
		`{"status": 200, "confirmed": {}}`,
		`{"status": 200, "confirmed": {"block_indep_hash": "h", "block_height": 1}}`,
		`{"status": 200, "confirmed": {"block_indep_hash": "h", "block_height": null, "number_of_confirmations": 2}}`,
	} {
		envelope := DecodeEnvelope[TransactionStatusResponse]([]byte(body))
		require.Equal(t, EnvelopeMalformed, envelope.Kind, body)
		require.Nil(t, envelope.Success, body)
	}

	// Error key still wins over a broken success body
	envelope := DecodeEnvelope[TransactionStatusResponse]([]byte(`{"status": 500, "confirmed": {}, "error": "boom"}`))
	require.Equal(t, EnvelopeServerError, envelope.Kind)
	require.Equal(t, "boom", envelope.Error.Message)
}

func TestTagRequiresNameAndValue(t *testing.T) {
	var tag Tag
	require.NoError(t, json.Unmarshal([]byte(`{"name": "", "value": "dg"}`), &tag))
	require.Equal(t, Tag{Name: "", Value: "dg"}, tag)

	require.ErrorIs(t, json.Unmarshal([]byte(`{"name": "bg"}`), &tag), ErrMissingField)
	require.ErrorIs(t, json.Unmarshal([]byte(`{"value": "dg"}`), &tag), ErrMissingField)
	require.ErrorIs(t, json.Unmarshal([]byte(`{}`), &tag), ErrMissingField)
	require.Error(t, json.Unmarshal([]byte(`"name"`), &tag))
}

func TestTransactionDataRoundTrip(t *testing.T) {
	var first TransactionData
	err := json.Unmarshal([]byte(transactionJSON), &first)
	require.NoError(t, err)
	require.Equal(t, "<h1>Hello Arweave</h1>", string(first.Data))
	require.Len(t, first.Tags, 3)
	require.Equal(t, "QXBwLU5hbWU", first.Tags[1].Name)
	require.Equal(t, "QXBwLU5hbWU", first.Tags[2].Name)

	encoded, err := json.Marshal(first)
	require.NoError(t, err)
	require.JSONEq(t, transactionJSON, string(encoded))

	var second TransactionData
	err = json.Unmarshal(encoded, &second)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestTransactionDataRoundTripNullData(t *testing.T) {
	var first TransactionData
	err := json.Unmarshal([]byte(withKey(transactionJSON, "data", `null`)), &first)
	require.NoError(t, err)
	require.NotNil(t, first.Data)
	require.Empty(t, first.Data)

	encoded, err := json.Marshal(first)
	require.NoError(t, err)
	require.JSONEq(t, withKey(transactionJSON, "data", `""`), string(encoded))

	var second TransactionData
	err = json.Unmarshal(encoded, &second)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestBase64StringForms(t *testing.T) {
	var out Base64String

	require.NoError(t, json.Unmarshal([]byte(`"AP9k"`), &out))
	require.Equal(t, []byte{0x00, 0xff, 0x64}, out.Bytes())

	// Padded input is accepted
	require.NoError(t, json.Unmarshal([]byte(`"AQ=="`), &out))
	require.Equal(t, []byte{0x01}, out.Bytes())

	require.NoError(t, json.Unmarshal([]byte(`[0, 255, 100]`), &out))
	require.Equal(t, []byte{0x00, 0xff, 0x64}, out.Bytes())

	require.ErrorIs(t, json.Unmarshal([]byte(`[256]`), &out), ErrByteOutOfRange)
	require.Error(t, json.Unmarshal([]byte(`"not base64!"`), &out))

	require.NoError(t, json.Unmarshal([]byte(`null`), &out))
	require.NotNil(t, out)
	require.Empty(t, out)

	encoded, err := json.Marshal(Base64String{0x00, 0xff, 0x64})
	require.NoError(t, err)
	require.Equal(t, `"AP9k"`, string(encoded))
}

// Returns body with the top level key removed
func withoutKey(body, key string) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		panic(err)
	}
	delete(fields, key)
	out, err := json.Marshal(fields)
	if err != nil {
		panic(err)
	}
	return string(out)
}

// Returns body with the top level key set to raw JSON value
func withKey(body, key, value string) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		panic(err)
	}
	fields[key] = json.RawMessage(value)
	out, err := json.Marshal(fields)
	if err != nil {
		panic(err)
	}
	return string(out)
}
