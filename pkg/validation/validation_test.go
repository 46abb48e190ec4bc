package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email,omitempty" validate:"required"`
	Phone    string `validate:"required"`
}

func TestMissingFields(t *testing.T) {
	v := New()

	err := v.Struct(sample{Phone: "555"})
	assert.Equal(t, []string{"fullName", "email"}, MissingFields(err))

	assert.Nil(t, MissingFields(v.Struct(sample{FullName: "a", Email: "b", Phone: "c"})))
	assert.Nil(t, MissingFields(errors.New("other")))
	assert.Equal(t, []string{"Phone"}, MissingFields(v.Struct(sample{FullName: "a", Email: "b"})))
}
