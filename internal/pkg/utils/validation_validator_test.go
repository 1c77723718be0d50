package utils

import (
	"medflow-service/internal/pkg/dto/requests"
	"medflow-service/internal/pkg/exceptions"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	t.Run("Valid Registration Passes", func(t *testing.T) {
		request := &requests.RegisterUser{
			Email:    "jane@example.com",
			Password: "Str0ng!Pass",
			FullName: "Jane Tester",
			Role:     "patient",
		}

		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("Weak Passwords Are Rejected", func(t *testing.T) {
		weak := []string{
			"short!A",        // under 8 characters
			"alllowercase!",  // no uppercase
			"NoSpecialChar1", // no special character
		}
		for _, password := range weak {
			request := &requests.RegisterUser{
				Email:    "jane@example.com",
				Password: password,
				FullName: "Jane Tester",
				Role:     "patient",
			}

			err := ValidateStruct(request)

			require.Error(t, err, "password %q should be rejected", password)
			message := exceptions.FormatFirstValidationError(err)
			assert.True(t, strings.HasPrefix(message, "password "), "message should name the field: %s", message)
		}
	})

	t.Run("Unknown Role Is Rejected", func(t *testing.T) {
		request := &requests.RegisterUser{
			Email:    "jane@example.com",
			Password: "Str0ng!Pass",
			FullName: "Jane Tester",
			Role:     "wizard",
		}

		err := ValidateStruct(request)

		require.Error(t, err)
		assert.Equal(t,
			"role must be one of [patient physician nurse specialist admin]",
			exceptions.FormatFirstValidationError(err),
		)
	})

	t.Run("Unknown Image Type Is Rejected", func(t *testing.T) {
		request := &requests.UploadImage{
			ImageType: "hologram",
			UserID:    "user-1",
			Filename:  "scan.png",
		}

		err := ValidateStruct(request)

		require.Error(t, err)
		assert.Equal(t,
			"imagetype must be one of [xray skin fundus ct mri]",
			exceptions.FormatFirstValidationError(err),
		)
	})

	t.Run("Parameterized Tags Substitute Their Limit", func(t *testing.T) {
		request := &requests.RegisterUser{
			Email:    "jane@example.com",
			Password: "Str0ng!Pass",
			FullName: "J",
			Role:     "patient",
		}

		err := ValidateStruct(request)

		require.Error(t, err)
		assert.Equal(t, "fullname must be at least 2 characters long", exceptions.FormatFirstValidationError(err))
	})

	t.Run("All Errors Are Joined For Logging", func(t *testing.T) {
		request := &requests.RegisterUser{
			Email:    "not-an-email",
			Password: "Str0ng!Pass",
			FullName: "J",
			Role:     "patient",
		}

		err := ValidateStruct(request)
		require.Error(t, err)

		message := exceptions.FormatAllValidationErrors(err)
		assert.Contains(t, message, "email must be a valid email")
		assert.Contains(t, message, "fullname must be at least 2 characters long")
	})
}
