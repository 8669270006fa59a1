package shared_test

import (
	"queueup/shared"
	"queueup/shared/constant"
	"strings"
	"testing"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "valid true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "valid false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "valid 1 string",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "valid 0 string",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "valid TRUE string",
			input:    "TRUE",
			expected: boolPtr(true),
		},
		{
			name:     "invalid string returns nil",
			input:    "invalid",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "negative limit returns 1",
			total:    100,
			limit:    -5,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestRoundToTenth(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{
			name:     "whole number unchanged",
			input:    4.0,
			expected: 4.0,
		},
		{
			name:     "rounds down",
			input:    3.44,
			expected: 3.4,
		},
		{
			name:     "rounds up",
			input:    3.46,
			expected: 3.5,
		},
		{
			name:     "half rounds away from zero",
			input:    3.45,
			expected: 3.5,
		},
		{
			name:     "mean of four ratings",
			input:    14.0 / 4.0,
			expected: 3.5,
		},
		{
			name:     "repeating decimal",
			input:    11.0 / 3.0,
			expected: 3.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.RoundToTenth(tt.input)
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	key := shared.BuildCacheKey("reservation:get", "some-id")
	if key != "reservation:get:some-id" {
		t.Errorf("expected reservation:get:some-id, got %s", key)
	}

	if !strings.HasPrefix(key, "reservation:get") {
		t.Errorf("expected key to keep its prefix, got %s", key)
	}
}

func TestTransformFields(t *testing.T) {
	type testStruct struct {
		Location string `db:"location"`
		Details  string `db:"details"`
		Internal string
	}

	fields := shared.TransformFields(testStruct{Location: "Counter 3", Internal: "skipped"}, "user-1")

	if fields["location"] != "Counter 3" {
		t.Errorf("expected location to be transformed, got %v", fields["location"])
	}

	if _, ok := fields["details"]; ok {
		t.Error("expected zero-valued field to be skipped")
	}

	if fields[constant.FieldModifiedBy] != "user-1" {
		t.Errorf("expected modified_by to be set, got %v", fields[constant.FieldModifiedBy])
	}

	if _, ok := fields[constant.FieldModifiedAt]; !ok {
		t.Error("expected modified_at to be set")
	}
}

func boolPtr(b bool) *bool {
	return &b
}
