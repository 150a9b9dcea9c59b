package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply_PassesValidBody(t *testing.T) {
	errs := Apply(
		map[string]string{"text": "hello"},
		Required("text", "Text is required"),
	)
	assert.Nil(t, errs)
}

func TestApply_RequiredRejectsBlank(t *testing.T) {
	for _, v := range []string{"", "   ", "\n\t"} {
		errs := Apply(
			map[string]string{"text": v},
			Required("text", "Text is required"),
		)
		assert.Equal(t, []FieldError{{Msg: "Text is required", Param: "text"}}, errs)
	}
}

func TestApply_FailuresKeepRuleOrder(t *testing.T) {
	errs := Apply(
		map[string]string{"name": "", "email": "not-an-email", "password": "123"},
		Required("name", "Name is required"),
		Email("email", "Please include a valid email"),
		MinLength("password", 6, "Please enter a password with 6 or more characters"),
	)
	assert.Len(t, errs, 3)
	assert.Equal(t, "name", errs[0].Param)
	assert.Equal(t, "email", errs[1].Param)
	assert.Equal(t, "password", errs[2].Param)
}

func TestEmail(t *testing.T) {
	ok := Email("email", "bad").Ok
	assert.True(t, ok("john@gmail.com"))
	assert.False(t, ok("john"))
	assert.False(t, ok(""))
}
