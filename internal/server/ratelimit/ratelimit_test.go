package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  600,
		DefaultWindow: time.Minute,
		Endpoints:     DefaultEndpointConfigs(),
	}
}

func TestAllowWithinBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("10.0.0.1", "/auth/register", "POST")
		assert.True(t, allowed, "request %d", i)
		assert.Equal(t, 10, info.Limit)
	}
}

func TestBurstExhaustion(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	// /auth/register allows a burst of 3.
	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/auth/register", "POST")
		require.True(t, allowed, "request %d", i)
	}

	allowed, info := l.Allow("10.0.0.1", "/auth/register", "POST")
	assert.False(t, allowed)
	assert.False(t, info.Allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestBucketsAreIsolatedPerClient(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		l.Allow("10.0.0.1", "/auth/register", "POST")
	}
	allowed, _ := l.Allow("10.0.0.1", "/auth/register", "POST")
	require.False(t, allowed)

	allowed, _ = l.Allow("10.0.0.2", "/auth/register", "POST")
	assert.True(t, allowed)
}

func TestBucketsAreIsolatedPerEndpoint(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		l.Allow("10.0.0.1", "/auth/register", "POST")
	}
	allowed, _ := l.Allow("10.0.0.1", "/auth/register", "POST")
	require.False(t, allowed)

	allowed, _ = l.Allow("10.0.0.1", "/auth/login", "POST")
	assert.True(t, allowed)
}

func TestDisabledLimiterAllowsEverything(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/auth/register", "POST")
		require.True(t, allowed)
	}
}

func TestExemptClientBypassesLimits(t *testing.T) {
	cfg := testConfig()
	cfg.Exempt = map[string]bool{"10.0.0.99": true}
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("10.0.0.99", "/auth/register", "POST")
		require.True(t, allowed)
	}
}

func TestHealthCheckUnlimited(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 1000; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestUnmatchedPathUsesDefaultLimit(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	allowed, info := l.Allow("10.0.0.1", "/dashboard", "GET")

	assert.True(t, allowed)
	assert.Equal(t, 600, info.Limit)
}

func TestBucketRefills(t *testing.T) {
	cfg := testConfig()
	cfg.Endpoints = []EndpointConfig{
		{Path: "/fast", Method: "GET", Limit: 600, Window: time.Minute, Burst: 1},
	}
	l := NewLimiter(cfg)
	defer l.Stop()

	allowed, _ := l.Allow("10.0.0.1", "/fast", "GET")
	require.True(t, allowed)
	allowed, _ = l.Allow("10.0.0.1", "/fast", "GET")
	require.False(t, allowed)

	// 600/min refills a token in 100ms.
	time.Sleep(150 * time.Millisecond)
	allowed, _ = l.Allow("10.0.0.1", "/fast", "GET")
	assert.True(t, allowed)
}

func TestNilConfigGetsDefaults(t *testing.T) {
	l := NewLimiter(nil)
	defer l.Stop()

	allowed, info := l.Allow("10.0.0.1", "/anything", "GET")

	assert.True(t, allowed)
	assert.Equal(t, 600, info.Limit)
}

func TestEvictIdleDropsStaleBuckets(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	l.Allow("10.0.0.1", "/auth/login", "POST")

	l.mu.Lock()
	for key := range l.lastAccess {
		l.lastAccess[key] = time.Now().Add(-2 * time.Hour)
	}
	l.mu.Unlock()

	l.evictIdle()

	l.mu.RLock()
	defer l.mu.RUnlock()
	assert.Empty(t, l.buckets)
	assert.Empty(t, l.lastAccess)
}

func TestMatchEndpointExactWinsOverPrefix(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/ai/", Method: "POST", Limit: 20},
		{Path: "/ai/critique", Method: "POST", Limit: 5},
	}

	rule := MatchEndpoint("/ai/critique", "POST", configs)

	require.NotNil(t, rule)
	assert.Equal(t, 5, rule.Limit)
}

func TestMatchEndpointPrefix(t *testing.T) {
	configs := DefaultEndpointConfigs()

	rule := MatchEndpoint("/ai/essay", "POST", configs)

	require.NotNil(t, rule)
	assert.Equal(t, 20, rule.Limit)
	assert.Equal(t, 5, rule.Burst)
}

func TestMatchEndpointMethodMustMatch(t *testing.T) {
	rule := MatchEndpoint("/ai/essay", "GET", DefaultEndpointConfigs())
	assert.Nil(t, rule)
}

func TestMatchEndpointActivityTiers(t *testing.T) {
	configs := DefaultEndpointConfigs()

	put := MatchEndpoint("/activities/3", "PUT", configs)
	require.NotNil(t, put)
	assert.Equal(t, 120, put.Limit)

	del := MatchEndpoint("/activities/3", "DELETE", configs)
	require.NotNil(t, del)
	assert.Equal(t, 60, del.Limit)
}

func TestLoadConfigDisabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "50")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "30s")
	t.Setenv("RATE_LIMIT_EXEMPT", "10.0.0.5, 10.0.0.6")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 50, cfg.DefaultLimit)
	assert.Equal(t, 30*time.Second, cfg.DefaultWindow)
	assert.True(t, cfg.Exempt["10.0.0.5"])
	assert.True(t, cfg.Exempt["10.0.0.6"])
}

func TestConcurrentAllowSafe(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			client := fmt.Sprintf("10.0.1.%d", n)
			for j := 0; j < 50; j++ {
				l.Allow(client, "/dashboard", "GET")
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
