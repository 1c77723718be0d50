package utils

import (
	"medflow-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterUserRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.RegisterUser{
			Email:    "  TEST@EXAMPLE.COM  ",
			FullName: "Jane Tester",
			Role:     "patient",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "test@example.com", request.Email, "email should be lowercase and trimmed")
	})

	t.Run("Role Sanitization", func(t *testing.T) {
		request := &requests.RegisterUser{
			Email:    "test@example.com",
			FullName: "Jane Tester",
			Role:     "  Physician  ",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "physician", request.Role, "role should be lowercase and trimmed")
	})

	t.Run("Full Name Keeps Inner Spacing", func(t *testing.T) {
		request := &requests.RegisterUser{
			Email:    "test@example.com",
			FullName: "  Jane  Tester  ",
			Role:     "nurse",
		}

		SanitizeRegisterUserRequest(request)

		assert.Equal(t, "Jane  Tester", request.FullName, "only outer whitespace should be removed")
	})
}

func TestSanitizeLoginUserRequest(t *testing.T) {
	request := &requests.LoginUser{
		Email:    "  USER@DOMAIN.ORG  ",
		Password: "Sup3r$ecret",
	}

	SanitizeLoginUserRequest(request)

	assert.Equal(t, "user@domain.org", request.Email, "email should be lowercase and trimmed")
	assert.Equal(t, "Sup3r$ecret", request.Password, "password must never be altered")
}

func TestSanitizeCreateConsultationRequest(t *testing.T) {
	request := &requests.CreateConsultation{
		ChiefComplaint: "  Chest pain  ",
		Symptoms:       " chest pain, fever ",
	}

	SanitizeCreateConsultationRequest(request)

	assert.Equal(t, "Chest pain", request.ChiefComplaint)
	assert.Equal(t, "chest pain, fever", request.Symptoms, "inner separators stay untouched")
}
