package apperror

import (
	"errors"
	"testing"
)

func TestErrorsIs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
	}{
		{"Validation wraps ErrValidation", Validation("quantity_grams", "must be positive"), ErrValidation, true},
		{"NotFound wraps ErrNotFound", NotFound("food", 42), ErrNotFound, true},
		{"Conflict wraps ErrConflict", Conflict("user", "email taken"), ErrConflict, true},
		{"Consistency wraps ErrConsistency", Consistency("after insert", errors.New("db down")), ErrConsistency, true},
		{"Validation is not NotFound", Validation("meal_type", "unknown"), ErrNotFound, false},
		{"Consistency is not Validation", Consistency("after delete", errors.New("x")), ErrValidation, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.wantMatch {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.wantMatch)
			}
		})
	}
}

func TestMessages(t *testing.T) {
	err := NotFound("food", 42)
	if err.Error() != "food not found with id 42" {
		t.Errorf("unexpected message %q", err.Error())
	}

	v := Validation("quantity_grams", "quantity must be greater than zero")
	if v.Field != "quantity_grams" {
		t.Errorf("field not carried: %q", v.Field)
	}
}
