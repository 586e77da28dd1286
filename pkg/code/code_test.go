package code

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDataDoesNotMutateRegisteredCode(t *testing.T) {
	withData := Success.WithData([]string{"a"})

	assert.True(t, withData.HaveData())
	assert.False(t, Success.HaveData())
	assert.Nil(t, Success.Data())
	assert.Equal(t, Success.Code(), withData.Code())
}

func TestWithDetailsKeepsData(t *testing.T) {
	c := ErrorInvalidParams.WithData(map[string]string{"name": "required"}).WithDetails("name is required")

	assert.True(t, c.HaveData())
	assert.True(t, c.HaveDetails())
	assert.Equal(t, []string{"name is required"}, c.Details())
	assert.False(t, ErrorInvalidParams.HaveDetails())
}

func TestCodeIs(t *testing.T) {
	decorated := ErrorNoteNotFound.WithDetails("abc")

	assert.True(t, errors.Is(decorated, ErrorNoteNotFound))
	assert.False(t, errors.Is(decorated, ErrorNoteDeleteFailed))
}

func TestGetMessageIn(t *testing.T) {
	tests := []struct {
		name     string
		language string
		want     string
	}{
		{"english", "en", "Note not found"},
		{"chinese", "zh_cn", "笔记不存在"},
		{"browser style", "zh-CN", "笔记不存在"},
		{"unknown falls back", "fr", "Note not found"},
		{"empty falls back", "", "Note not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorNoteNotFound.Lang.GetMessageIn(tt.language))
		})
	}
}

func TestSetGlobalDefaultLang(t *testing.T) {
	defer func() { _ = SetGlobalDefaultLang(FALLBACK_LNG) }()

	assert.NoError(t, SetGlobalDefaultLang("zh_cn"))
	assert.Equal(t, "成功", Success.Msg())

	assert.Error(t, SetGlobalDefaultLang("xx"))
	assert.Equal(t, FALLBACK_LNG, GetGlobalDefaultLang())
}
