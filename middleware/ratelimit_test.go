package middleware

import (
	"testing"
	"time"
)

func TestIPRateLimiter(t *testing.T) {
	rl := NewIPRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("request over the limit should be denied")
	}

	// Other IPs are counted separately
	if !rl.Allow("10.0.0.2") {
		t.Fatal("different IP should not share the window")
	}
}

func TestIPRateLimiterWindowExpiry(t *testing.T) {
	rl := NewIPRateLimiter(1, 10*time.Millisecond)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first request should be allowed")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatal("second request inside the window should be denied")
	}

	time.Sleep(20 * time.Millisecond)
	if !rl.Allow("10.0.0.1") {
		t.Fatal("request after the window should be allowed again")
	}
}
