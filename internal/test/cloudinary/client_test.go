package cloudinary_test

import (
	"crypto/sha1"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"studio-admin-backend/internal/cloudinary"
)

func TestClient_Destroy_SignsRequest(t *testing.T) {
	const secret = "test-secret"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/demo/image/destroy", r.URL.Path)
		assert.NoError(t, r.ParseForm())

		publicID := r.PostFormValue("public_id")
		timestamp := r.PostFormValue("timestamp")
		assert.Equal(t, "services/photo-1", publicID)
		assert.NotEmpty(t, timestamp)
		assert.Equal(t, "test-key", r.PostFormValue("api_key"))

		sum := sha1.Sum([]byte("public_id=" + publicID + "&timestamp=" + timestamp + secret))
		assert.Equal(t, hex.EncodeToString(sum[:]), r.PostFormValue("signature"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":"ok"}`))
	}))
	defer server.Close()

	client := cloudinary.NewClient(server.URL, "demo", "test-key", secret, zap.NewNop())
	assert.True(t, client.Destroy("services/photo-1"))
}

func TestClient_Destroy_NotFoundCountsAsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":"not found"}`))
	}))
	defer server.Close()

	client := cloudinary.NewClient(server.URL, "demo", "key", "secret", zap.NewNop())
	assert.True(t, client.Destroy("already/gone"))
}

func TestClient_Destroy_FailuresReturnFalse(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "client error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
		},
		{
			name: "destroy not applied",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"result":"error"}`))
			},
		},
		{
			name: "malformed response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := cloudinary.NewClient(server.URL, "demo", "key", "secret", zap.NewNop())
			assert.False(t, client.Destroy("some/asset"))
		})
	}
}

func TestClient_Destroy_UnreachableHost(t *testing.T) {
	client := cloudinary.NewClient("http://127.0.0.1:1", "demo", "key", "secret", zap.NewNop())
	assert.False(t, client.Destroy("some/asset"))
}

func TestClient_Destroy_EmptyPublicID(t *testing.T) {
	client := cloudinary.NewClient("http://unused", "demo", "key", "secret", zap.NewNop())
	assert.False(t, client.Destroy(""))
}

func TestClient_DestroyAll_CountsOnlySuccesses(t *testing.T) {
	var requests int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		assert.NoError(t, r.ParseForm())

		// one asset is rejected, the rest succeed independently
		if r.PostFormValue("public_id") == "bad/asset" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"result":"ok"}`))
	}))
	defer server.Close()

	client := cloudinary.NewClient(server.URL, "demo", "key", "secret", zap.NewNop())

	count := client.DestroyAll([]string{"a/1", "bad/asset", "a/2", "a/3"})

	assert.Equal(t, 3, count)
	assert.Equal(t, int64(4), atomic.LoadInt64(&requests))
}

func TestClient_DestroyAll_Empty(t *testing.T) {
	client := cloudinary.NewClient("http://unused", "demo", "key", "secret", zap.NewNop())
	assert.Equal(t, 0, client.DestroyAll(nil))
}
