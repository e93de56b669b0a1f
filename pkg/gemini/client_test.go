package gemini_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishadfb/email-creation/pkg/gemini"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *gemini.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := gemini.New(gemini.Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Timeout: 10 * time.Second,
	})
	require.NoError(t, err)
	return client
}

func contentResponse(text string) string {
	resp := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires api key", func(t *testing.T) {
		t.Parallel()

		client, err := gemini.New(gemini.Config{})
		assert.Nil(t, client)
		assert.ErrorIs(t, err, gemini.ErrAPIKeyRequired)
	})

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		client, err := gemini.New(gemini.Config{APIKey: "k"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestClient_GenerateContent(t *testing.T) {
	t.Parallel()

	t.Run("successful generation", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			payload, _ := json.Marshal(req)
			assert.Contains(t, string(payload), "write me an email")
			assert.Contains(t, string(payload), "application/json")

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(contentResponse(`{"subject":"Hi"}`)))
		})

		text, err := client.GenerateContent(context.Background(), "write me an email")
		require.NoError(t, err)
		assert.Equal(t, `{"subject":"Hi"}`, text)
	})

	t.Run("joins multiple parts", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			resp := map[string]any{
				"candidates": []map[string]any{
					{"content": map[string]any{"parts": []map[string]string{
						{"text": `{"a":`}, {"text": `1}`},
					}}},
				},
			}
			_ = json.NewEncoder(w).Encode(resp)
		})

		text, err := client.GenerateContent(context.Background(), "p")
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, text)
	})

	t.Run("empty candidates", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"candidates":[]}`))
		})

		_, err := client.GenerateContent(context.Background(), "p")
		assert.ErrorIs(t, err, gemini.ErrEmptyResponse)
	})

	t.Run("client error is not retried", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":400,"message":"invalid argument","status":"INVALID_ARGUMENT"}}`))
		})

		_, err := client.GenerateContent(context.Background(), "p")
		assert.ErrorIs(t, err, gemini.ErrAPIError)
		assert.Contains(t, err.Error(), "invalid argument")
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("rate limit is retried until success", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
				return
			}
			_, _ = w.Write([]byte(contentResponse("ok")))
		})

		text, err := client.GenerateContent(context.Background(), "p")
		require.NoError(t, err)
		assert.Equal(t, "ok", text)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("persistent server errors exhaust retries", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"code":500,"message":"backend error","status":"INTERNAL"}}`))
		})

		_, err := client.GenerateContent(context.Background(), "p")
		assert.ErrorIs(t, err, gemini.ErrAPIError)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("unparseable success body", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		})

		_, err := client.GenerateContent(context.Background(), "p")
		assert.ErrorIs(t, err, gemini.ErrInvalidResponse)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			// Drain the body so the server starts its background read and
			// can observe the client disconnect; otherwise the request
			// context is never cancelled and srv.Close deadlocks.
			_, _ = io.Copy(io.Discard, r.Body)
			<-r.Context().Done()
		})

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := client.GenerateContent(ctx, "p")
		assert.Error(t, err)
	})
}

func TestClient_GenerateImage(t *testing.T) {
	t.Parallel()

	imageBytes := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}

	t.Run("successful generation", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1beta/models/imagen-3.0-generate-002:predict", r.URL.Path)

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			payload, _ := json.Marshal(req)
			assert.Contains(t, string(payload), "sampleCount")
			assert.Contains(t, string(payload), "a calm office")

			resp := map[string]any{
				"predictions": []map[string]string{{
					"bytesBase64Encoded": base64.StdEncoding.EncodeToString(imageBytes),
					"mimeType":           "image/png",
				}},
			}
			_ = json.NewEncoder(w).Encode(resp)
		})

		data, mimeType, err := client.GenerateImage(context.Background(), "a calm office")
		require.NoError(t, err)
		assert.Equal(t, imageBytes, data)
		assert.Equal(t, "image/png", mimeType)
	})

	t.Run("defaults mime type to png", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			resp := map[string]any{
				"predictions": []map[string]string{{
					"bytesBase64Encoded": base64.StdEncoding.EncodeToString(imageBytes),
				}},
			}
			_ = json.NewEncoder(w).Encode(resp)
		})

		_, mimeType, err := client.GenerateImage(context.Background(), "p")
		require.NoError(t, err)
		assert.Equal(t, "image/png", mimeType)
	})

	t.Run("no predictions", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"predictions":[]}`))
		})

		_, _, err := client.GenerateImage(context.Background(), "p")
		assert.ErrorIs(t, err, gemini.ErrEmptyResponse)
	})

	t.Run("invalid base64 payload", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"predictions":[{"bytesBase64Encoded":"!!!not-base64!!!"}]}`))
		})

		_, _, err := client.GenerateImage(context.Background(), "p")
		assert.ErrorIs(t, err, gemini.ErrInvalidResponse)
	})
}
