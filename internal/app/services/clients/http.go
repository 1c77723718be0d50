package clients

import (
	"context"
	"errors"
	"io"
	"medflow-service/internal/pkg/exceptions"
	"net"

	"github.com/goccy/go-json"
)

// isTimeoutError reports whether a downstream call failed because the
// caller's deadline ran out rather than because the peer misbehaved.
func isTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}

// decodeEnvelope unwraps the platform response envelope and unmarshals the
// data payload into out.
func decodeEnvelope(body io.Reader, serviceName string, out interface{}) error {
	envelope := struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}{}

	err := json.NewDecoder(body).Decode(&envelope)
	if err != nil {
		return exceptions.ErrDecodeResponse(err, serviceName)
	}

	err = json.Unmarshal(envelope.Data, out)
	if err != nil {
		return exceptions.ErrDecodeResponse(err, serviceName)
	}
	return nil
}
