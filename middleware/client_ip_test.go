package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func requestContext(remoteAddr string, headers map[string]string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	c.Request = req
	return c
}

func TestGetClientIP(t *testing.T) {
	cases := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "forwarded chain uses first hop",
			remoteAddr: "10.0.0.1:4000",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"},
			want:       "203.0.113.7",
		},
		{
			name:       "real ip header",
			remoteAddr: "10.0.0.1:4000",
			headers:    map[string]string{"X-Real-IP": " 203.0.113.9 "},
			want:       "203.0.113.9",
		},
		{
			name:       "remote addr strips port",
			remoteAddr: "192.0.2.5:51234",
			want:       "192.0.2.5",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "192.0.2.5",
			want:       "192.0.2.5",
		},
	}

	for _, tc := range cases {
		c := requestContext(tc.remoteAddr, tc.headers)
		if got := getClientIP(c); got != tc.want {
			t.Fatalf("%s: getClientIP = %q, want %q", tc.name, got, tc.want)
		}
	}
}
