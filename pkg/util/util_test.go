package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"7d", 7 * 24 * time.Hour, false},
		{"24h", 24 * time.Hour, false},
		{"30m", 30 * time.Minute, false},
		{"15", 15 * time.Second, false},
		{" 1d ", 24 * time.Hour, false},
		{"xd", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDuration(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDurationOr(t *testing.T) {
	assert.Equal(t, time.Minute, ParseDurationOr("", time.Minute))
	assert.Equal(t, time.Minute, ParseDurationOr("bogus", time.Minute))
	assert.Equal(t, time.Minute, ParseDurationOr("-5s", time.Minute))
	assert.Equal(t, 2*time.Hour, ParseDurationOr("2h", time.Minute))
}

func TestGetRandomString(t *testing.T) {
	a := GetRandomString(32)
	b := GetRandomString(32)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestGetMachineIDStable(t *testing.T) {
	assert.Equal(t, GetMachineID(), GetMachineID())
}
