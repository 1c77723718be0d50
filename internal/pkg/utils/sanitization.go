package utils

import (
	"medflow-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	input.FullName = strings.TrimSpace(input.FullName)
	input.Role = strings.TrimSpace(strings.ToLower(input.Role))
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
}

func SanitizeCreatePatientProfileRequest(input *requests.CreatePatientProfile) {
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Gender = strings.TrimSpace(input.Gender)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Address = strings.TrimSpace(input.Address)
	input.EmergencyContact = strings.TrimSpace(input.EmergencyContact)
	input.MedicalHistory = strings.TrimSpace(input.MedicalHistory)
	input.Allergies = strings.TrimSpace(input.Allergies)
	input.Medications = strings.TrimSpace(input.Medications)
}

func SanitizeCreateConsultationRequest(input *requests.CreateConsultation) {
	input.ChiefComplaint = strings.TrimSpace(input.ChiefComplaint)
	input.Symptoms = strings.TrimSpace(input.Symptoms)
}
