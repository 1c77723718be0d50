package utils

import (
	"context"
	"medflow-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLogOperation(t *testing.T) {
	t.Run("Successful Operation Returns Nil", func(t *testing.T) {
		ran := false

		err := LogOperation(zap.NewNop(), "create_consultation", "req-1", func() error {
			ran = true
			return nil
		})

		assert.NoError(t, err)
		assert.True(t, ran, "the wrapped operation must run")
	})

	t.Run("Failed Operation Returns The Error", func(t *testing.T) {
		err := LogOperation(zap.NewNop(), "create_consultation", "req-1", func() error {
			return assert.AnError
		})

		assert.ErrorIs(t, err, assert.AnError, "the operation error must pass through unchanged")
	})
}

func TestGetRequestID(t *testing.T) {
	t.Run("Returns The ID Stored In The Context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "MDFLW_SVC_abc")

		assert.Equal(t, "MDFLW_SVC_abc", GetRequestID(ctx))
	})

	t.Run("Returns Empty When The Context Has None", func(t *testing.T) {
		assert.Equal(t, "", GetRequestID(context.Background()))
	})
}
