package cache

import (
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRateLimitFirstRequestOpensWindow(t *testing.T) {
	client, mock := redismock.NewClientMock()
	RedisClient = client
	defer func() { RedisClient = nil }()

	mock.ExpectIncr("ratelimit:1.2.3.4").SetVal(1)
	mock.ExpectExpireNX("ratelimit:1.2.3.4", time.Minute).SetVal(true)

	allowed, remaining, err := CheckRateLimit("1.2.3.4", 5, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 4, remaining)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckRateLimitKeepsExistingWindow(t *testing.T) {
	client, mock := redismock.NewClientMock()
	RedisClient = client
	defer func() { RedisClient = nil }()

	mock.ExpectIncr("ratelimit:1.2.3.4").SetVal(3)
	mock.ExpectExpireNX("ratelimit:1.2.3.4", time.Minute).SetVal(false)

	allowed, remaining, err := CheckRateLimit("1.2.3.4", 5, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 2, remaining)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckRateLimitBlocksOverBudget(t *testing.T) {
	client, mock := redismock.NewClientMock()
	RedisClient = client
	defer func() { RedisClient = nil }()

	mock.ExpectIncr("ratelimit:1.2.3.4").SetVal(6)
	mock.ExpectExpireNX("ratelimit:1.2.3.4", time.Minute).SetVal(false)

	allowed, remaining, err := CheckRateLimit("1.2.3.4", 5, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
	assert.NoError(t, mock.ExpectationsWereMet())
}
