package helpers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/andrescamacho/traikoa-go/internal/adapters/api"
	"github.com/andrescamacho/traikoa-go/internal/infrastructure/config"
)

// RecordedRequest is one request received by FakeTraikoaServer
type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Query    url.Values
	Header   http.Header
	Body     []byte
}

type fakeResponse struct {
	status int
	body   []byte
	delay  time.Duration
}

// FakeTraikoaServer is an httptest server answering canned responses by method and path.
// Unknown routes answer 404.
type FakeTraikoaServer struct {
	*httptest.Server

	mu        sync.Mutex
	responses map[string]fakeResponse
	requests  []RecordedRequest
}

// NewFakeTraikoaServer starts a server that is closed when the test ends
func NewFakeTraikoaServer(t *testing.T) *FakeTraikoaServer {
	t.Helper()

	s := &FakeTraikoaServer{
		responses: make(map[string]fakeResponse),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)

	return s
}

// Respond registers a raw body for method and path, e.g. ("GET", "/v1/systems/1")
func (s *FakeTraikoaServer) Respond(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[method+" "+path] = fakeResponse{status: status, body: []byte(body)}
}

// RespondJSON registers v encoded as JSON for method and path
func (s *FakeTraikoaServer) RespondJSON(t *testing.T, method, path string, status int, v any) {
	t.Helper()

	body, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal fake response: %v", err)
	}
	s.Respond(method, path, status, string(body))
}

// RespondAfter registers a response that is written only after delay
func (s *FakeTraikoaServer) RespondAfter(method, path string, delay time.Duration, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[method+" "+path] = fakeResponse{status: status, body: []byte(body), delay: delay}
}

// Requests returns every request received so far
func (s *FakeTraikoaServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// LastRequest returns the latest request, failing the test if there is none
func (s *FakeTraikoaServer) LastRequest(t *testing.T) RecordedRequest {
	t.Helper()

	requests := s.Requests()
	if len(requests) == 0 {
		t.Fatal("fake Traikoa server received no requests")
	}
	return requests[len(requests)-1]
}

// APIConfig returns an API configuration pointing at the server
func (s *FakeTraikoaServer) APIConfig() config.APIConfig {
	return config.APIConfig{
		BaseURL: s.URL,
		Version: config.APIVersion,
		Timeout: 5 * time.Second,
	}
}

// NewClient creates a TraikoaClient pointing at the server
func (s *FakeTraikoaServer) NewClient(opts ...api.Option) *api.TraikoaClient {
	return api.NewTraikoaClient(s.APIConfig(), opts...)
}

func (s *FakeTraikoaServer) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Query:    r.URL.Query(),
		Header:   r.Header.Clone(),
		Body:     body,
	})
	resp, ok := s.responses[r.Method+" "+r.URL.Path]
	s.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found"}`))
		return
	}

	if resp.delay > 0 {
		select {
		case <-time.After(resp.delay):
		case <-r.Context().Done():
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = w.Write(resp.body)
}
