// Package cosmic implements content.Backend over the Cosmic REST API (v3).
package cosmic

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
	"github.com/louisbranch/portfolio-dashboard/internal/platform/timeouts"
)

// DefaultBaseURL is the public Cosmic API endpoint.
const DefaultBaseURL = "https://api.cosmicjs.com/v3"

// ReadProps are the object properties requested on every read.
const ReadProps = "id,title,slug,metadata,created_at,modified_at"

const (
	tracerName     = "github.com/louisbranch/portfolio-dashboard/internal/content/cosmic"
	maxErrorBody   = 64 << 10
	maxSuccessBody = 32 << 20
)

// Config identifies one bucket and its keys.
type Config struct {
	BaseURL    string
	BucketSlug string
	ReadKey    string
	WriteKey   string
	HTTPClient *http.Client
}

// Bucket is a content.Backend bound to one Cosmic bucket.
type Bucket struct {
	objectsURL *url.URL
	readKey    string
	writeKey   string
	http       *http.Client
	tracer     trace.Tracer
}

var _ content.Backend = (*Bucket)(nil)

// NewBucket validates cfg and builds a bucket handle.
func NewBucket(cfg Config) (*Bucket, error) {
	slug := strings.TrimSpace(cfg.BucketSlug)
	if slug == "" {
		return nil, errors.New("cosmic bucket slug is required")
	}
	readKey := strings.TrimSpace(cfg.ReadKey)
	if readKey == "" {
		return nil, errors.New("cosmic read key is required")
	}
	writeKey := strings.TrimSpace(cfg.WriteKey)
	if writeKey == "" {
		return nil, errors.New("cosmic write key is required")
	}
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	objectsURL, err := url.Parse(base + "/buckets/" + url.PathEscape(slug) + "/objects")
	if err != nil {
		return nil, fmt.Errorf("parse cosmic base url: %w", err)
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: timeouts.HTTPClient}
	}
	return &Bucket{
		objectsURL: objectsURL,
		readKey:    readKey,
		writeKey:   writeKey,
		http:       client,
		tracer:     otel.Tracer(tracerName),
	}, nil
}

// Find returns every object of kind with references resolved one level.
func (b *Bucket) Find(ctx context.Context, kind content.Kind) ([]json.RawMessage, error) {
	ctx, span := b.tracer.Start(ctx, "cosmic.find", trace.WithAttributes(attribute.String("cosmic.kind", string(kind))))
	defer span.End()

	query, err := json.Marshal(map[string]string{"type": string(kind)})
	if err != nil {
		return nil, endSpan(span, err)
	}
	endpoint := *b.objectsURL
	params := url.Values{}
	params.Set("query", string(query))
	params.Set("props", ReadProps)
	params.Set("depth", "1")
	params.Set("read_key", b.readKey)
	endpoint.RawQuery = params.Encode()

	body, err := b.do(ctx, span, http.MethodGet, endpoint.String(), nil, false)
	if err != nil {
		return nil, endSpan(span, err)
	}
	if !gjson.ValidBytes(body) {
		return nil, endSpan(span, errors.New("cosmic response is not valid json"))
	}
	objects := gjson.GetBytes(body, "objects")
	if !objects.Exists() || objects.Type == gjson.Null {
		return nil, endSpan(span, content.ErrNotFound)
	}
	if !objects.IsArray() {
		return nil, endSpan(span, errors.New("cosmic response objects is not a list"))
	}
	items := objects.Array()
	raws := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		raws = append(raws, json.RawMessage(item.Raw))
	}
	span.SetAttributes(attribute.Int("cosmic.objects", len(raws)))
	return raws, nil
}

// InsertOne creates an object and returns the stored object.
func (b *Bucket) InsertOne(ctx context.Context, input content.ObjectInput) (json.RawMessage, error) {
	ctx, span := b.tracer.Start(ctx, "cosmic.insert_one", trace.WithAttributes(attribute.String("cosmic.kind", string(input.Type))))
	defer span.End()

	payload := map[string]any{
		"type":  string(input.Type),
		"title": input.Title,
	}
	if input.Slug != "" {
		payload["slug"] = input.Slug
	}
	if len(input.Metadata) > 0 {
		payload["metadata"] = input.Metadata
	}
	body, err := b.do(ctx, span, http.MethodPost, b.objectsURL.String(), payload, true)
	if err != nil {
		return nil, endSpan(span, err)
	}
	raw, err := objectField(body)
	return raw, endSpan(span, err)
}

// UpdateOne patches the title, slug and metadata of an object. Empty title
// and slug are left unchanged; metadata keys are merged by the API.
func (b *Bucket) UpdateOne(ctx context.Context, id string, input content.ObjectInput) (json.RawMessage, error) {
	ctx, span := b.tracer.Start(ctx, "cosmic.update_one", trace.WithAttributes(
		attribute.String("cosmic.kind", string(input.Type)),
		attribute.String("cosmic.object_id", id),
	))
	defer span.End()

	payload := map[string]any{}
	if input.Title != "" {
		payload["title"] = input.Title
	}
	if input.Slug != "" {
		payload["slug"] = input.Slug
	}
	if len(input.Metadata) > 0 {
		payload["metadata"] = input.Metadata
	}
	body, err := b.do(ctx, span, http.MethodPatch, b.objectURL(id), payload, true)
	if err != nil {
		return nil, endSpan(span, err)
	}
	raw, err := objectField(body)
	return raw, endSpan(span, err)
}

// DeleteOne removes an object.
func (b *Bucket) DeleteOne(ctx context.Context, id string) error {
	ctx, span := b.tracer.Start(ctx, "cosmic.delete_one", trace.WithAttributes(attribute.String("cosmic.object_id", id)))
	defer span.End()

	_, err := b.do(ctx, span, http.MethodDelete, b.objectURL(id), nil, true)
	return endSpan(span, err)
}

func (b *Bucket) objectURL(id string) string {
	return b.objectsURL.JoinPath(id).String()
}

func (b *Bucket) do(ctx context.Context, span trace.Span, method, endpoint string, payload any, write bool) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "br, gzip")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if write {
		req.Header.Set("Authorization", "Bearer "+b.writeKey)
	}

	resp, err := b.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	reader, err := decodedBody(resp)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(reader, maxErrorBody))
		return nil, newAPIError(resp.StatusCode, body)
	}
	body, err := io.ReadAll(io.LimitReader(reader, maxSuccessBody))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

// decodedBody unwraps the response encoding. Closing the result releases the
// decoder only; resp.Body stays with the caller.
func decodedBody(resp *http.Response) (io.ReadCloser, error) {
	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "br":
		return io.NopCloser(brotli.NewReader(resp.Body)), nil
	case "gzip":
		reader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("open gzip response: %w", err)
		}
		return reader, nil
	default:
		return io.NopCloser(resp.Body), nil
	}
}

func objectField(body []byte) (json.RawMessage, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("cosmic response is not valid json")
	}
	object := gjson.GetBytes(body, "object")
	if !object.IsObject() {
		return nil, errors.New("cosmic response has no object")
	}
	return json.RawMessage(object.Raw), nil
}

func endSpan(span trace.Span, err error) error {
	if err != nil && !errors.Is(err, content.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
