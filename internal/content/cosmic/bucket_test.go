package cosmic

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
)

func newTestBucket(t *testing.T, handler http.HandlerFunc) *Bucket {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	bucket, err := NewBucket(Config{
		BaseURL:    server.URL + "/v3/",
		BucketSlug: "portfolio",
		ReadKey:    "read-key",
		WriteKey:   "write-key",
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("NewBucket() error = %v", err)
	}
	return bucket
}

func TestNewBucketRequiresKeys(t *testing.T) {
	t.Parallel()

	tests := []Config{
		{ReadKey: "r", WriteKey: "w"},
		{BucketSlug: "b", WriteKey: "w"},
		{BucketSlug: "b", ReadKey: "r"},
	}
	for _, cfg := range tests {
		if _, err := NewBucket(cfg); err == nil {
			t.Fatalf("NewBucket(%+v) error = nil, want error", cfg)
		}
	}
}

func TestFindSendsQueryAndDecodesBrotli(t *testing.T) {
	t.Parallel()

	bucket := newTestBucket(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/v3/buckets/portfolio/objects" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if got := q.Get("query"); got != `{"type":"projects"}` {
			t.Errorf("query = %q", got)
		}
		if got := q.Get("props"); got != ReadProps {
			t.Errorf("props = %q", got)
		}
		if got := q.Get("depth"); got != "1" {
			t.Errorf("depth = %q", got)
		}
		if got := q.Get("read_key"); got != "read-key" {
			t.Errorf("read_key = %q", got)
		}
		if r.Header.Get("Authorization") != "" {
			t.Errorf("reads must not send the write key")
		}
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "br") {
			t.Errorf("Accept-Encoding = %q, want br", r.Header.Get("Accept-Encoding"))
		}

		var buf bytes.Buffer
		bw := brotli.NewWriter(&buf)
		_, _ = io.WriteString(bw, `{"objects":[{"id":"p1","slug":"atlas","title":"Atlas"},{"id":"p2","slug":"zen","title":"Zen"}],"total":2}`)
		_ = bw.Close()
		w.Header().Set("Content-Encoding", "br")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(buf.Bytes())
	})

	raws, err := bucket.Find(context.Background(), content.KindProject)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if len(raws) != 2 {
		t.Fatalf("len(raws) = %d, want 2", len(raws))
	}
	obj, err := content.DecodeObject(raws[1])
	if err != nil {
		t.Fatalf("DecodeObject() error = %v", err)
	}
	if obj.Slug != "zen" {
		t.Fatalf("slug = %q, want zen", obj.Slug)
	}
}

func TestFindNotFound(t *testing.T) {
	t.Parallel()

	bucket := newTestBucket(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"status":404,"message":"No objects found for your query"}`)
	})

	_, err := bucket.Find(context.Background(), content.KindTestimonial)
	if !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("Find() error = %v, want ErrNotFound", err)
	}
}

func TestFindServerErrorCarriesMessage(t *testing.T) {
	t.Parallel()

	bucket := newTestBucket(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"status":401,"message":"Invalid read key"}`)
	})

	_, err := bucket.Find(context.Background(), content.KindSkill)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Find() error = %v, want APIError", err)
	}
	if apiErr.Status != http.StatusUnauthorized || apiErr.Message != "Invalid read key" {
		t.Fatalf("api error = %+v", apiErr)
	}
	if errors.Is(err, content.ErrNotFound) {
		t.Fatal("401 must not match ErrNotFound")
	}
}

func TestInsertOneSendsWriteKeyAndPayload(t *testing.T) {
	t.Parallel()

	bucket := newTestBucket(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer write-key" {
			t.Errorf("Authorization = %q", got)
		}
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		if payload["type"] != "skills" || payload["title"] != "Go" {
			t.Errorf("payload = %v", payload)
		}
		if _, ok := payload["slug"]; ok {
			t.Errorf("empty slug must be omitted")
		}
		metadata, _ := payload["metadata"].(map[string]any)
		if metadata["proficiency"] != "expert" {
			t.Errorf("metadata = %v", metadata)
		}
		_, _ = io.WriteString(w, `{"object":{"id":"s9","slug":"go","title":"Go"}}`)
	})

	raw, err := bucket.InsertOne(context.Background(), content.ObjectInput{
		Type:     content.KindSkill,
		Title:    "Go",
		Metadata: map[string]any{"proficiency": "expert"},
	})
	if err != nil {
		t.Fatalf("InsertOne() error = %v", err)
	}
	obj, err := content.DecodeObject(raw)
	if err != nil || obj.ID != "s9" {
		t.Fatalf("DecodeObject() = %+v, %v", obj, err)
	}
}

func TestUpdateAndDeleteAddressObjectByID(t *testing.T) {
	t.Parallel()

	var seen []string
	bucket := newTestBucket(t, func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusOK)
			_, _ = io.WriteString(w, `{"message":"deleted"}`)
			return
		}
		_, _ = io.WriteString(w, `{"object":{"id":"p1","slug":"atlas","title":"Atlas v2"}}`)
	})

	if _, err := bucket.UpdateOne(context.Background(), "p1", content.ObjectInput{Title: "Atlas v2"}); err != nil {
		t.Fatalf("UpdateOne() error = %v", err)
	}
	if err := bucket.DeleteOne(context.Background(), "p1"); err != nil {
		t.Fatalf("DeleteOne() error = %v", err)
	}
	want := []string{
		"PATCH /v3/buckets/portfolio/objects/p1",
		"DELETE /v3/buckets/portfolio/objects/p1",
	}
	if strings.Join(seen, "|") != strings.Join(want, "|") {
		t.Fatalf("requests = %v, want %v", seen, want)
	}
}

func TestInsertOneRejectsResponseWithoutObject(t *testing.T) {
	t.Parallel()

	bucket := newTestBucket(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"ok":true}`)
	})
	if _, err := bucket.InsertOne(context.Background(), content.ObjectInput{Type: content.KindProject, Title: "x"}); err == nil {
		t.Fatal("InsertOne() error = nil, want error")
	}
}

func gzipped(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := io.WriteString(gw, body); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buf.Bytes()
}

func TestFindDecodesGzip(t *testing.T) {
	t.Parallel()

	payload := gzipped(t, `{"objects":[{"id":"t1","slug":"ana","title":"Ana"}],"total":1}`)
	bucket := newTestBucket(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(payload)
	})

	raws, err := bucket.Find(context.Background(), content.KindTestimonial)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if len(raws) != 1 {
		t.Fatalf("len(raws) = %d, want 1", len(raws))
	}
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestDecodedBodyOwnsOnlyTheDecoder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		encoding string
		body     []byte
	}{
		{name: "gzip", encoding: "gzip", body: gzipped(t, `{"ok":true}`)},
		{name: "identity", encoding: "", body: []byte(`{"ok":true}`)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			raw := &closeTracker{Reader: bytes.NewReader(tc.body)}
			resp := &http.Response{Header: http.Header{}, Body: raw}
			if tc.encoding != "" {
				resp.Header.Set("Content-Encoding", tc.encoding)
			}
			reader, err := decodedBody(resp)
			if err != nil {
				t.Fatalf("decodedBody() error = %v", err)
			}
			if tc.encoding == "gzip" {
				if _, ok := reader.(*gzip.Reader); !ok {
					t.Fatalf("decodedBody() = %T, want *gzip.Reader", reader)
				}
			}
			got, err := io.ReadAll(reader)
			if err != nil {
				t.Fatalf("read decoded body: %v", err)
			}
			if string(got) != `{"ok":true}` {
				t.Fatalf("decoded body = %q", got)
			}
			if err := reader.Close(); err != nil {
				t.Fatalf("Close() error = %v", err)
			}
			if raw.closed {
				t.Fatalf("closing the decoder closed the response body")
			}
		})
	}
}
