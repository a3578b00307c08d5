package transcript

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultAPIBind {
		t.Fatalf("host = %q, want %q", u.Host, defaultAPIBind)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_FetchTranscript(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/transcript" {
			http.NotFound(w, r)
			return
		}
		gotQuery = r.URL.Query()
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Transcript{
			Sentences:   [][]string{{"one"}, {"two", "three"}, {"four"}},
			BlinkCursor: true,
		})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 2)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	got, err := c.FetchTranscript(ctx)
	if err != nil {
		t.Fatalf("FetchTranscript returned error: %v", err)
	}
	want := [][]string{{"two", "three"}, {"four"}}
	if !reflect.DeepEqual(got.Sentences, want) {
		t.Fatalf("Sentences = %#v, want %#v", got.Sentences, want)
	}
	if !got.BlinkCursor {
		t.Fatalf("BlinkCursor = false, want true")
	}
	if gotQuery.Get("tail") != "2" {
		t.Fatalf("query = %v, want tail=2", gotQuery)
	}
	if !strings.HasPrefix(gotUserAgent, "subline/") {
		t.Fatalf("User-Agent = %q, want subline/*", gotUserAgent)
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	var fail atomic.Bool
	fail.Store(true)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			http.Error(w, "nope", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not-json"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchTranscript(context.Background())
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("FetchTranscript error = %v, want status 500 error", err)
	}

	fail.Store(false)
	_, err = c.FetchTranscript(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchTranscript error = %v, want decode response error", err)
	}
}

func TestClient_NilReceiver(t *testing.T) {
	var c *Client
	if _, err := c.FetchTranscript(context.Background()); err == nil {
		t.Fatalf("FetchTranscript on nil client returned nil error")
	}
}

func TestTranscript_CloneIsIndependent(t *testing.T) {
	orig := Transcript{Sentences: [][]string{{"a", "b"}}}
	dup := orig.Clone()
	dup.Sentences[0][0] = "z"
	if orig.Sentences[0][0] != "a" {
		t.Fatalf("Clone shares backing array")
	}
	if orig.LineCount() != 2 {
		t.Fatalf("LineCount = %d, want 2", orig.LineCount())
	}
	if got := (Transcript{}).Clone(); got.Sentences != nil {
		t.Fatalf("Clone of empty = %#v, want nil sentences", got.Sentences)
	}
}
