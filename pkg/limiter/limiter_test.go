package limiter

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethodLimiter_KeyStripsQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/signin?next=%2F", nil)

	assert.Equal(t, "/signin", NewMethodLimiter().Key(c))
}

func TestMethodLimiter_BucketDrains(t *testing.T) {
	l := NewMethodLimiter().AddBuckets(BucketRule{
		Key:          "/signin",
		FillInterval: time.Hour,
		Capacity:     2,
		Quantum:      1,
	})

	bucket, ok := l.GetBucket("/signin")
	require.True(t, ok)
	assert.Equal(t, int64(1), bucket.TakeAvailable(1))
	assert.Equal(t, int64(1), bucket.TakeAvailable(1))
	assert.Equal(t, int64(0), bucket.TakeAvailable(1))

	_, ok = l.GetBucket("/notes")
	assert.False(t, ok)
}
