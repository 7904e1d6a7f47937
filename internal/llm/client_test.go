package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) LLMConfig {
	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.Endpoint = endpoint
	return cfg
}

func newTestClient(t *testing.T, cfg LLMConfig, obs Observer) LLMClient {
	t.Helper()
	client, err := NewGeminiClient(cfg, obs)
	require.NoError(t, err)
	return client
}

func TestGeminiClient_Generate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var req generateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gemini-2.5-flash", req.Model)
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "user", req.Contents[0].Role)
		assert.Equal(t, "write it", req.Contents[0].Parts[0].Text)
		assert.Nil(t, req.GenerationConfig)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Subject: Hi"}]}}]}`))
	}))
	defer srv.Close()

	obs := &RecordingObserver{}
	client := newTestClient(t, testConfig(srv.URL), obs)
	resp, err := client.Generate(context.Background(), GenerateRequest{Task: TaskReferral, Prompt: "write it"})

	require.NoError(t, err)
	assert.Equal(t, "Subject: Hi", resp.Text)
	assert.Equal(t, "gemini-2.5-flash", resp.Model)
	require.Len(t, obs.Events, 1)
	assert.True(t, obs.Events[0].Success)
	assert.Equal(t, TaskReferral, obs.Events[0].Task)
}

func TestGeminiClient_Generate_PartsConcatenated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Sub"},{"text":"ject: X"}]}}]}`))
	}))
	defer srv.Close()

	resp, err := newTestClient(t, testConfig(srv.URL), nil).
		Generate(context.Background(), GenerateRequest{Task: TaskReferral, Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, "Subject: X", resp.Text)
}

func TestGeminiClient_Generate_TaskParametersSent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.GenerationConfig)
		assert.InDelta(t, 0.4, req.GenerationConfig.Temperature, 1e-9)
		assert.Equal(t, 2048, req.GenerationConfig.MaxOutputTokens)
		_, _ = w.Write([]byte(`{"text":"ok"}`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Tasks[TaskCoverLetter] = TaskConfig{Temperature: 0.4, MaxOutputTokens: 2048}
	_, err := newTestClient(t, cfg, nil).Generate(context.Background(), GenerateRequest{Task: TaskCoverLetter, Prompt: "p"})
	require.NoError(t, err)
}

func TestGeminiClient_Generate_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Tasks[TaskReferral] = TaskConfig{TimeoutMs: 50}

	obs := &RecordingObserver{}
	_, err := newTestClient(t, cfg, obs).Generate(context.Background(), GenerateRequest{Task: TaskReferral, Prompt: "p"})

	assert.ErrorIs(t, err, ErrTimeout)
	require.Len(t, obs.Events, 1)
	assert.Equal(t, "TIMEOUT", obs.Events[0].ErrorCode)
}

func TestGeminiClient_Generate_Unavailable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1") // nothing listening

	_, err := newTestClient(t, cfg, nil).Generate(context.Background(), GenerateRequest{Task: TaskReferral, Prompt: "p"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGeminiClient_Generate_APIError(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, testConfig(srv.URL), nil).Generate(context.Background(), GenerateRequest{Task: TaskReferral, Prompt: "p"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "INVALID_ARGUMENT", apiErr.Status)
	assert.Equal(t, "API key not valid", apiErr.Message)
	assert.ErrorIs(t, err, ErrAPI)
	assert.Equal(t, 1, calls, "no retries")
}

func TestGeminiClient_Generate_MalformedLogsPayload(t *testing.T) {
	payload := `{"candidates":[{"finishReason":"SAFETY"}]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	var logBuf bytes.Buffer
	_, err := newTestClient(t, testConfig(srv.URL), NewLogObserver(&logBuf)).
		Generate(context.Background(), GenerateRequest{Task: TaskReferral, Prompt: "p"})

	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.NotContains(t, err.Error(), "SAFETY", "payload stays out of the message")
	assert.Contains(t, logBuf.String(), "status=err:MALFORMED")
	assert.Contains(t, logBuf.String(), "SAFETY")
}

func TestGeminiClient_Generate_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"text":"  \n "}`))
	}))
	defer srv.Close()

	_, err := newTestClient(t, testConfig(srv.URL), nil).Generate(context.Background(), GenerateRequest{Task: TaskReferral, Prompt: "p"})

	var empty *EmptyResponseError
	require.ErrorAs(t, err, &empty)
	assert.Equal(t, "gemini-2.5-flash", empty.Model)
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestNewGeminiClient_MissingKey(t *testing.T) {
	_, err := NewGeminiClient(DefaultConfig(), nil)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLogObserver_Format(t *testing.T) {
	var buf bytes.Buffer
	NewLogObserver(&buf).OnCallComplete(LLMCallEvent{
		Task: TaskCoverLetter, Model: "m", LatencyMs: 12, Success: true,
	})
	line := buf.String()
	assert.True(t, strings.HasSuffix(line, "llm_call task=cover_letter model=m latency_ms=12 status=ok\n"))
	assert.NotContains(t, line, "detail=")
}
