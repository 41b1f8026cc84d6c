package storage

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostKey(t *testing.T) {
	before := time.Now().UnixMilli()
	key := PostKey("party.jpg")
	after := time.Now().UnixMilli()

	require.True(t, strings.HasPrefix(key, "posts/"))
	require.True(t, strings.HasSuffix(key, "-party.jpg"))

	millis := strings.TrimSuffix(strings.TrimPrefix(key, "posts/"), "-party.jpg")
	stamp, err := strconv.ParseInt(millis, 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, stamp, before)
	assert.LessOrEqual(t, stamp, after)
}

func TestKeyFromURL(t *testing.T) {
	assert.Equal(t, "posts/1712345678901-party.jpg",
		KeyFromURL("https://vibes.s3.us-east-1.amazonaws.com/posts/1712345678901-party.jpg"))
	assert.Equal(t, "posts/bare.jpg", KeyFromURL("bare.jpg"))
}
