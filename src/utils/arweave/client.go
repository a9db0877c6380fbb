package arweave

import (
	"bytes"
	"context"
	"math/big"
	"net/http"
	"strings"

	"github.com/warp-contracts/txinfo/src/utils/config"

	"github.com/go-resty/resty/v2"
)

// Read-only client for the transaction endpoints of an Arweave gateway.
// Safe for concurrent use.
type Client struct {
	*BaseClient
}

// Pass nil httpClient to build a transport from the config
func NewClient(config *config.Arweave, httpClient *http.Client) (self *Client, err error) {
	base, err := newBaseClient(config, httpClient)
	if err != nil {
		return
	}
	self = &Client{BaseClient: base}
	return
}

// https://docs.arweave.org/developers/arweave-node-server/http-api#get-transaction-price
// Price in winston, returned verbatim. It may exceed any fixed width integer.
func (self *Client) GetPrice(ctx context.Context, byteSize string) (out string, err error) {
	resp, err := self.Request(ctx).
		SetPathParam("byteSize", byteSize).
		Get("/price/{byteSize}")
	if err != nil {
		err = newRequestError(err)
		return
	}

	if !resp.IsSuccess() {
		err = newStatusError(resp)
		return
	}

	out = string(resp.Body())
	return
}

// Same as GetPrice, parsed into an arbitrary precision integer
func (self *Client) GetPriceWinston(ctx context.Context, byteSize string) (out *big.Int, err error) {
	price, err := self.GetPrice(ctx, byteSize)
	if err != nil {
		return
	}

	// Some gateways end the body with a newline
	out, ok := new(big.Int).SetString(strings.TrimSpace(price), 10)
	if !ok {
		return nil, &MalformedResponse{Body: []byte(price)}
	}
	return
}

// https://docs.arweave.org/developers/arweave-node-server/http-api#get-transaction-by-id
func (self *Client) GetTransaction(ctx context.Context, id string) (out *TransactionData, err error) {
	resp, err := self.Request(ctx).
		SetPathParam("id", id).
		Get("/tx/{id}")
	if err != nil {
		err = newRequestError(err)
		return
	}

	return decodeResponse[TransactionData](resp)
}

// https://docs.arweave.org/developers/arweave-node-server/http-api#get-transaction-status
func (self *Client) GetStatus(ctx context.Context, id string) (out *TransactionStatusResponse, err error) {
	resp, err := self.Request(ctx).
		SetPathParam("id", id).
		Get("/tx/{id}/status")
	if err != nil {
		err = newRequestError(err)
		return
	}

	return decodeResponse[TransactionStatusResponse](resp)
}

// Maps HTTP status and envelope kind to the result or one of the domain errors
func decodeResponse[T any](resp *resty.Response) (out *T, err error) {
	envelope := DecodeEnvelope[T](resp.Body())

	switch envelope.Kind {
	case EnvelopeSuccess:
		if !resp.IsSuccess() {
			return nil, newStatusError(resp)
		}
		return envelope.Success, nil

	case EnvelopeServerError:
		payload := *envelope.Error
		if payload.Status == 0 {
			payload.Status = resp.StatusCode()
		}
		return nil, &ProtocolError{Payload: payload}
	}

	// Gateways answer 202 with a plain text body while the tx waits for mining
	if resp.StatusCode() == http.StatusAccepted {
		message := string(bytes.TrimSpace(resp.Body()))
		if message == "" {
			message = "Pending"
		}
		return nil, &ProtocolError{Payload: ServerError{
			Status:  http.StatusAccepted,
			Message: message,
		}}
	}

	if !resp.IsSuccess() {
		return nil, newStatusError(resp)
	}

	return nil, &MalformedResponse{Body: envelope.Body}
}
