package validation

import (
	"strings"
	"testing"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {
			"type": "string"
		},
		"age": {
			"type": "integer",
			"minimum": 0
		}
	},
	"required": ["name"]
}`

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	validator := NewSchemaValidator()
	if err := validator.Register("person", []byte(personSchema)); err != nil {
		t.Fatalf("Failed to register schema: %v", err)
	}

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name:      "valid data",
			data:      `{"name": "John", "age": 30}`,
			wantError: false,
		},
		{
			name:      "valid data without optional field",
			data:      `{"name": "Jane"}`,
			wantError: false,
		},
		{
			name:      "missing required field",
			data:      `{"age": 30}`,
			wantError: true,
			errorMsg:  "required",
		},
		{
			name:      "negative age",
			data:      `{"name": "Bob", "age": -1}`,
			wantError: true,
			errorMsg:  "minimum",
		},
		{
			name:      "not JSON",
			data:      `{name`,
			wantError: true,
			errorMsg:  "failed to parse JSON data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateBytes([]byte(tt.data), "person")
			if tt.wantError {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				if tt.errorMsg != "" && !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("Expected error containing %q, got %q", tt.errorMsg, err.Error())
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	validator := NewSchemaValidator()
	err := validator.ValidateBytes([]byte(`{}`), "missing")
	if err == nil || !strings.Contains(err.Error(), ErrSchemaNotRegistered.Error()) {
		t.Errorf("Expected schema not registered error, got %v", err)
	}
}

func TestSchemaValidator_RegisterInvalidSchema(t *testing.T) {
	validator := NewSchemaValidator()
	if err := validator.Register("broken", []byte(`{not json`)); err == nil {
		t.Error("Expected error for malformed schema")
	}
}
