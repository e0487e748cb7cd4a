package validator_test

import (
	"strings"
	"testing"

	"roombook/shared/validator"
)

type bookingForm struct {
	CustomerName string `validate:"required"       json:"customerName"`
	Date         string `validate:"required"       json:"date"`
	RoomID       int    `validate:"required,gt=0"  json:"roomId"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *bookingForm
		expectError bool
	}{
		{
			name: "valid struct",
			data: &bookingForm{
				CustomerName: "Benazir",
				Date:         "2023-09-14",
				RoomID:       1,
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &bookingForm{
				Date:   "2023-09-14",
				RoomID: 1,
			},
			expectError: true,
		},
		{
			name: "room id not positive",
			data: &bookingForm{
				CustomerName: "Benazir",
				Date:         "2023-09-14",
				RoomID:       -1,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid number in range",
			field:       25,
			tag:         "gte=0,lte=100",
			expectError: false,
		},
		{
			name:        "number out of range",
			field:       150,
			tag:         "gte=0,lte=100",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"customerName":"Benazir","date":"2023-09-14","roomId":1}`,
			expectError: false,
		},
		{
			name:        "failing validation",
			jsonBody:    `{"customerName":"Benazir","date":"2023-09-14","roomId":0}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"customerName":"Benazir","date":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data bookingForm
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	data := &bookingForm{}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()

	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}
