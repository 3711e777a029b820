package core

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type testForm struct {
	Name  string `json:"name" validate:"notblank"`
	Count int    `json:"count" validate:"min=2"`
}

func TestTranslateValidationErrors(t *testing.T) {
	translator := NewTranslator()
	validate := validator.New()
	InitValidators(validate, translator)

	tests := []struct {
		name string
		form testForm
		want []FieldError
	}{
		{
			name: "all invalid",
			form: testForm{Name: "  "},
			want: []FieldError{
				{Field: "name", Error: "this field cannot be blank"},
				{Field: "count", Error: "count must be 2 or greater"},
			},
		},
		{
			name: "min",
			form: testForm{Name: "x", Count: 1},
			want: []FieldError{{Field: "count", Error: "count must be 2 or greater"}},
		},
		{name: "valid", form: testForm{Name: "x", Count: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TranslateValidationErrors(validate.Struct(tt.form), translator)
			if tt.want == nil {
				if err != nil {
					t.Errorf("TranslateValidationErrors() unexpected error = %v", err)
				}
				return
			}
			vErr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("TranslateValidationErrors() error = %v, want *ValidationError", err)
			}
			assert.ElementsMatch(t, tt.want, vErr.Fields)
		})
	}
}

func TestCleanString(t *testing.T) {
	assert.Equal(t, "b", CleanString("  b \n"))
	assert.Equal(t, "B", CleanString(" b ", true))
	assert.Equal(t, "", CleanString("   "))
}
