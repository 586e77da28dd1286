package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signInForm struct {
	Token string `json:"token" binding:"required"`
}

func TestRegisterTranslations(t *testing.T) {
	v := NewCustomValidator()
	uni, err := RegisterTranslations(v.Engine().(*validator.Validate))
	require.NoError(t, err)

	verr := v.ValidateStruct(&signInForm{})
	var errs validator.ValidationErrors
	require.True(t, errors.As(verr, &errs))
	require.Len(t, errs, 1)

	enTrans, found := uni.GetTranslator("en")
	require.True(t, found)
	assert.Equal(t, "token is a required field", errs[0].Translate(enTrans))

	zhTrans, found := uni.GetTranslator("zh")
	require.True(t, found)
	assert.Equal(t, "token为必填字段", errs[0].Translate(zhTrans))
}
