package validator

import (
	"testing"

	domainerrors "cbx/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleQuestion struct {
	Label string `json:"label" validate:"required"`
}

type sampleRequest struct {
	Email     string           `json:"email" validate:"omitempty,email"`
	Phone     string           `json:"phone" validate:"omitempty,phone"`
	Password  string           `json:"password" validate:"required,min=6"`
	Quantity  int              `json:"quantity" validate:"gte=0"`
	Status    string           `json:"status" validate:"omitempty,oneof='In Stock' 'To Buy'"`
	Questions []sampleQuestion `json:"questions" validate:"dive"`
}

func TestCustomValidator_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{Email: "a@example.com", Password: "secret1", Status: "To Buy"})
	assert.NoError(t, err)
}

func TestCustomValidator_FieldErrors(t *testing.T) {
	v := New()

	err := v.Validate(&sampleRequest{
		Email:     "not-an-email",
		Phone:     "victim@example.com",
		Password:  "abc",
		Quantity:  -1,
		Status:    "Lost",
		Questions: []sampleQuestion{{Label: ""}},
	})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr *domainerrors.BaseError
	require.True(t, errors.As(err, &appErr))

	details, ok := appErr.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "email must be a valid email address", details["email"])
	assert.Equal(t, "phone must be digits with an optional leading +", details["phone"])
	assert.Equal(t, "password must be at least 6", details["password"])
	assert.Equal(t, "quantity must be greater than or equal to 0", details["quantity"])
	assert.Equal(t, "status must be one of In Stock To Buy", details["status"])
	assert.Equal(t, "label is required", details["questions[0].label"])
}

type optionalIdentifiers struct {
	Email *string `json:"email" validate:"omitzero,email"`
	Phone *string `json:"phone" validate:"omitzero,phone"`
}

func TestCustomValidator_PhoneRule(t *testing.T) {
	v := New()
	str := func(s string) *string { return &s }

	tests := []struct {
		name    string
		input   optionalIdentifiers
		wantErr bool
	}{
		{name: "absent", input: optionalIdentifiers{}},
		{name: "cleared", input: optionalIdentifiers{Email: str(""), Phone: str("")}},
		{name: "local number", input: optionalIdentifiers{Phone: str("0912345678")}},
		{name: "international", input: optionalIdentifiers{Phone: str("+886912345678")}},
		{name: "email-shaped phone", input: optionalIdentifiers{Phone: str("victim@example.com")}, wantErr: true},
		{name: "phone-shaped email", input: optionalIdentifiers{Email: str("0912345678")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
