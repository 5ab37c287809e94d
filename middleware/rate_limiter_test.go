package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{
			name:       "forwarded-for takes the first entry",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"},
			remoteAddr: "10.0.0.2:4711",
			want:       "203.0.113.7",
		},
		{
			name:       "real-ip used when forwarded-for absent",
			headers:    map[string]string{"X-Real-IP": " 203.0.113.9 "},
			remoteAddr: "10.0.0.2:4711",
			want:       "203.0.113.9",
		},
		{
			name:       "remote address stripped of port",
			remoteAddr: "192.0.2.4:58231",
			want:       "192.0.2.4",
		},
		{
			name:       "portless remote address kept as is",
			remoteAddr: "192.0.2.4",
			want:       "192.0.2.4",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				c.Request.Header.Set(k, v)
			}
			if got := clientIP(c); got != tc.want {
				t.Fatalf("clientIP = %q, want %q", got, tc.want)
			}
		})
	}
}
