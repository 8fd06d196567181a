package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(rules []Rule) *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{},
		Blacklist:     map[string]bool{},
		Rules:         rules,
	}
}

func TestLimiterAllowsWithinBurst(t *testing.T) {
	l := NewLimiter(testConfig([]Rule{
		{Path: "/api/quiz", Method: "POST", Limit: 30, Window: time.Minute, Burst: 3},
	}))
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/api/quiz", "POST")
		require.True(t, allowed, "request %d denied within burst", i+1)
	}

	allowed, info := l.Allow("1.2.3.4", "/api/quiz", "POST")
	assert.False(t, allowed, "request beyond burst was allowed")
	assert.Equal(t, 30, info.Limit)
	assert.Greater(t, info.RetryAfter, time.Duration(0), "expected positive RetryAfter when denied")
}

func TestLimiterIsolatesClients(t *testing.T) {
	l := NewLimiter(testConfig([]Rule{
		{Path: "/api/quiz", Method: "POST", Limit: 30, Window: time.Minute, Burst: 1},
	}))
	defer l.Stop()

	allowed, _ := l.Allow("1.1.1.1", "/api/quiz", "POST")
	require.True(t, allowed, "first client's first request denied")

	allowed, _ = l.Allow("1.1.1.1", "/api/quiz", "POST")
	require.False(t, allowed, "first client's second request allowed")

	allowed, _ = l.Allow("2.2.2.2", "/api/quiz", "POST")
	assert.True(t, allowed, "second client affected by first client's bucket")
}

func TestLimiterHealthUnlimited(t *testing.T) {
	l := NewLimiter(testConfig(nil))
	defer l.Stop()

	for i := 0; i < 500; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed, "health check denied on request %d", i+1)
	}
}

func TestLimiterDisabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/api/quiz", "POST")
		require.True(t, allowed, "disabled limiter denied a request")
	}
}

func TestLimiterWhitelistAndBlacklist(t *testing.T) {
	cfg := testConfig([]Rule{
		{Path: "/api/quiz", Method: "POST", Limit: 30, Window: time.Minute, Burst: 1},
	})
	cfg.Whitelist["10.0.0.1"] = true
	cfg.Blacklist["10.0.0.2"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/api/quiz", "POST")
		require.True(t, allowed, "whitelisted client denied")
	}
	allowed, _ := l.Allow("10.0.0.2", "/api/quiz", "POST")
	assert.False(t, allowed, "blacklisted client allowed")
}

func TestConfigMatch(t *testing.T) {
	cfg := testConfig([]Rule{
		{Path: "/api/quiz", Method: "POST", Limit: 30, Window: time.Minute},
		{Path: "/api/", Method: "GET", Limit: 60, Window: time.Minute},
	})

	tests := []struct {
		path, method string
		wantLimit    int
	}{
		{"/api/quiz", "POST", 30},        // exact
		{"/api/generations", "GET", 60},  // prefix
		{"/api/quiz", "DELETE", 100},     // default
		{"/health", "GET", 0},            // unlimited
		{"/somewhere/else", "POST", 100}, // default
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s", tt.method, tt.path), func(t *testing.T) {
			rule := cfg.match(tt.path, tt.method)
			assert.Equal(t, tt.wantLimit, rule.Limit)
		})
	}
}
