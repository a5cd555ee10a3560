package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hance08/bills/internal/transport"
)

// ErrUnsuccessful is returned for responses that arrived intact but carry
// "success": false.
var ErrUnsuccessful = errors.New("request was not successful")

// Envelope is the uniform shape of every backend response.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error,omitempty"`
}

// Callback receives the transport error, if any, and the decoded envelope.
type Callback[T any] func(err error, resp *Envelope[T])

// Empty is the payload of responses that carry no data.
type Empty struct{}

// Check turns a delivered envelope into an error: the transport error as
// is, or ErrUnsuccessful for success:false.
func Check[T any](err error, resp *Envelope[T]) error {
	if err != nil {
		return err
	}
	if resp == nil {
		return fmt.Errorf("%w: empty response", ErrUnsuccessful)
	}
	if !resp.Success {
		if resp.Error != "" {
			return fmt.Errorf("%w: %s", ErrUnsuccessful, resp.Error)
		}
		return ErrUnsuccessful
	}
	return nil
}

func decodeInto[T any](cb Callback[T]) transport.Callback {
	return func(err error, resp *transport.Response) {
		if cb == nil {
			return
		}
		if err != nil {
			cb(err, nil)
			return
		}

		env := &Envelope[T]{}
		if err := json.Unmarshal(resp.Body, env); err != nil {
			cb(fmt.Errorf("%w: decoding response: %v", transport.ErrTransport, err), nil)
			return
		}
		cb(nil, env)
	}
}
