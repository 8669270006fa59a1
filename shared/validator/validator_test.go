package validator_test

import (
	"queueup/shared/validator"
	"strings"
	"testing"
)

type updateStatusRequest struct {
	Status string `validate:"required,oneof=confirmed in_progress completed cancelled" json:"status"`
}

type rateRequest struct {
	Rating int    `validate:"required,min=1,max=5" json:"rating"`
	Review string `validate:"omitempty,max=10" json:"review"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        any
		expectError bool
	}{
		{
			name:        "valid status",
			data:        &updateStatusRequest{Status: "confirmed"},
			expectError: false,
		},
		{
			name:        "missing status",
			data:        &updateStatusRequest{},
			expectError: true,
		},
		{
			name:        "status outside the allowed set",
			data:        &updateStatusRequest{Status: "archived"},
			expectError: true,
		},
		{
			name:        "valid rating",
			data:        &rateRequest{Rating: 5, Review: "great"},
			expectError: false,
		},
		{
			name:        "rating below minimum",
			data:        &rateRequest{Rating: 0},
			expectError: true,
		},
		{
			name:        "rating above maximum",
			data:        &rateRequest{Rating: 6},
			expectError: true,
		},
		{
			name:        "review too long",
			data:        &rateRequest{Rating: 3, Review: strings.Repeat("a", 11)},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error

			switch data := tt.data.(type) {
			case *updateStatusRequest:
				err = validator.ValidateStruct(data)
			case *rateRequest:
				err = validator.ValidateStruct(data)
			}

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidate_FromReader(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name:        "valid JSON body",
			body:        `{"status": "cancelled"}`,
			expectError: false,
		},
		{
			name:        "malformed JSON",
			body:        `{"status": `,
			expectError: true,
		},
		{
			name:        "valid JSON failing validation",
			body:        `{"status": "unknown"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := updateStatusRequest{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("55555555-5555-5555-5555-555555555555", "uuid"); err != nil {
		t.Errorf("expected valid uuid, got %v", err)
	}

	if err := validator.ValidateVar("not-a-uuid", "uuid"); err == nil {
		t.Error("expected uuid validation to fail")
	}
}
