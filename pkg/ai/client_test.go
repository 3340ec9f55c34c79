package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	c := NewClient(url, 5*time.Second)
	c.BaseBackoff = time.Millisecond
	return c
}

func TestClientGenerate(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(chatResponse{Agent: "auto", Output: "- Shipped **X**\n"})
	}))
	defer srv.Close()

	out, err := newTestClient(srv.URL).Generate(context.Background(), Request{Section: "experience", Context: "Dev at Acme"})
	require.NoError(t, err)
	assert.Equal(t, "- Shipped **X**", out)
	assert.Equal(t, "auto", got.Agent)
	assert.Contains(t, got.Input, "Dev at Acme")
}

func TestClientRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(chatResponse{Output: `{"text":"Summary here"}`})
	}))
	defer srv.Close()

	out, err := newTestClient(srv.URL).Generate(context.Background(), Request{Section: "summary"})
	require.NoError(t, err)
	assert.Equal(t, "Summary here", out)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClientErrors(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
		section string
		wantErr error
	}{
		{
			name:    "unsupported section",
			handler: func(w http.ResponseWriter, r *http.Request) {},
			section: "education",
			wantErr: ErrUnsupportedSection,
		},
		{
			name:    "client error is not retried",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadRequest) },
			section: "summary",
			wantErr: ErrProvider,
		},
		{
			name:    "server keeps failing",
			handler: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			section: "summary",
			wantErr: ErrProvider,
		},
		{
			name: "empty output",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(chatResponse{Output: "  "})
			},
			section: "skills",
			wantErr: ErrEmptyOutput,
		},
		{
			name:    "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("not json")) },
			section: "skills",
			wantErr: ErrProvider,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()
			_, err := newTestClient(srv.URL).Generate(context.Background(), Request{Section: tc.section})
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestUnwrapOutput(t *testing.T) {
	assert.Equal(t, "plain", unwrapOutput(" plain "))
	assert.Equal(t, "x", unwrapOutput(`{"content":"x"}`))
	assert.Equal(t, `{"other":1}`, unwrapOutput(`{"other":1}`))
	assert.Equal(t, "uses {braces} inline", unwrapOutput("uses {braces} inline"))
}

func TestOpenAIClientGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "gpt-test", body["model"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1,
			"model": "gpt-test",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "- Led **migration**"}}]
		}`))
	}))
	defer srv.Close()

	c := NewOpenAIClient(srv.URL+"/", "test-key", "gpt-test", 5*time.Second)
	out, err := c.Generate(context.Background(), Request{Section: "projects", Context: "CLI tool"})
	require.NoError(t, err)
	assert.Equal(t, "- Led **migration**", out)

	_, err = c.Generate(context.Background(), Request{Section: "unknown"})
	assert.ErrorIs(t, err, ErrUnsupportedSection)
}
