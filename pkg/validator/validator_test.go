package validator

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type signup struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Confirm  string  `json:"confirm_password" binding:"required,eqfield=Password"`
	Foot     *string `json:"preferred_foot" binding:"omitempty,len=0|oneof=RIGHT LEFT BOTH"`
	Website  *string `json:"website_url" binding:"omitempty,len=0|url"`
	Goals    *int    `json:"goals" binding:"omitempty,gte=0"`
}

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func init() {
	UseJSONNames()
}

func TestParseError_FieldMessages(t *testing.T) {
	err := binding.Validator.ValidateStruct(&signup{
		Email:    "nope",
		Password: "abc",
		Confirm:  "abcd",
		Foot:     strPtr("SIDEWAYS"),
		Website:  strPtr("not a url"),
		Goals:    intPtr(-2),
	})

	fields := ParseError(err)
	assert.Equal(t, map[string]string{
		"email":            "Must be a valid email",
		"password":         "Must be at least 6 characters",
		"confirm_password": "Values do not match",
		"preferred_foot":   "Must be one of: RIGHT LEFT BOTH",
		"website_url":      "Must be a valid URL",
		"goals":            "Must be greater than or equal to 0",
	}, fields)
}

func TestParseError_BlankClearsOptionalFields(t *testing.T) {
	err := binding.Validator.ValidateStruct(&signup{
		Email:    "ana@example.com",
		Password: "secreto",
		Confirm:  "secreto",
		Foot:     strPtr(""),
		Website:  strPtr(""),
	})
	assert.NoError(t, err)
}

func TestParseError_NonValidationError(t *testing.T) {
	fields := ParseError(errors.New("unexpected EOF"))
	assert.Equal(t, map[string]string{"body": "unexpected EOF"}, fields)
	assert.Empty(t, ParseError(nil))
}
