package middleware

import (
	"net/http/httptest"
	"testing"
)

func TestRateLimiter(t *testing.T) {
	t.Run("Allows Within Limit", func(t *testing.T) {
		rl := newRateLimiter(600) // burst of 60

		for i := 0; i < 10; i++ {
			if err := rl.Allow("10.0.0.1"); err != nil {
				t.Fatalf("request %d rejected: %v", i, err)
			}
		}
	})

	t.Run("Rejects Burst Overflow", func(t *testing.T) {
		rl := newRateLimiter(10) // burst of 1

		if err := rl.Allow("10.0.0.2"); err != nil {
			t.Fatalf("first request rejected: %v", err)
		}
		if err := rl.Allow("10.0.0.2"); err == nil {
			t.Fatal("burst overflow should be rejected")
		}
	})

	t.Run("Keys Are Independent", func(t *testing.T) {
		rl := newRateLimiter(10)

		if err := rl.Allow("10.0.0.3"); err != nil {
			t.Fatalf("first client rejected: %v", err)
		}
		if err := rl.Allow("10.0.0.4"); err != nil {
			t.Fatalf("second client must have its own bucket: %v", err)
		}
	})
}

func TestExtractIP(t *testing.T) {
	cases := []struct {
		name string
		xff  string
		xri  string
		addr string
		want string
	}{
		{name: "Forwarded For Wins", xff: "203.0.113.7, 10.0.0.1", xri: "10.0.0.2", addr: "10.0.0.3:1234", want: "203.0.113.7"},
		{name: "Real IP Second", xri: "10.0.0.2", addr: "10.0.0.3:1234", want: "10.0.0.2"},
		{name: "Remote Addr Fallback", addr: "10.0.0.3:1234", want: "10.0.0.3"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tc.addr
			if tc.xff != "" {
				r.Header.Set("X-Forwarded-For", tc.xff)
			}
			if tc.xri != "" {
				r.Header.Set("X-Real-IP", tc.xri)
			}
			if got := extractIP(r); got != tc.want {
				t.Errorf("extractIP = %q, want %q", got, tc.want)
			}
		})
	}
}
