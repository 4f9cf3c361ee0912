package buildkit

import (
	"strings"
	"testing"
)

func TestValidateNotBlank(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", "users", false},
		{"empty", "", true},
		{"whitespace only", " \t\n", true},
		{"surrounding spaces kept", "  users  ", false},
		{"long value", strings.Repeat("a", 5000), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNotBlank("field", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateNotBlank(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !IsInvalidArgument(err) {
				t.Errorf("error should be an invalid argument, got %T", err)
			}
		})
	}
}

func TestValidateEach(t *testing.T) {
	if err := ValidateEach("fields", []string{"id", "name"}); err != nil {
		t.Errorf("ValidateEach() = %v, want nil", err)
	}
	if err := ValidateEach("fields", nil); err != nil {
		t.Errorf("ValidateEach(nil) = %v, want nil", err)
	}

	err := ValidateEach("fields", []string{"id", "", "name"})
	vErr, ok := AsValidationError(err)
	if !ok {
		t.Fatalf("ValidateEach() = %v, want ValidationError", err)
	}
	if vErr.Field != "fields[1]" {
		t.Errorf("Field = %q, want fields[1]", vErr.Field)
	}
}

func TestValidatePositive(t *testing.T) {
	tests := []struct {
		value   int
		wantErr bool
	}{
		{1, false},
		{100, false},
		{0, true},
		{-5, true},
	}
	for _, tt := range tests {
		if err := ValidatePositive("limit", tt.value); (err != nil) != tt.wantErr {
			t.Errorf("ValidatePositive(%d) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}
}

func TestValidateOneOf(t *testing.T) {
	if err := ValidateOneOf("dir", "ASC", "ASC", "DESC"); err != nil {
		t.Errorf("ValidateOneOf(ASC) = %v", err)
	}
	err := ValidateOneOf("dir", "UP", "ASC", "DESC")
	if err == nil {
		t.Fatal("ValidateOneOf(UP) should fail")
	}
	if !strings.Contains(err.Error(), "ASC, DESC") {
		t.Errorf("error should list allowed values: %v", err)
	}
}
