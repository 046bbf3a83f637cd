package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

// Backend is the raw object store behind the dashboard.
type Backend interface {
	// Find returns every object of kind with embedded references resolved one
	// level deep. It returns ErrNotFound when the collection is empty.
	Find(ctx context.Context, kind Kind) ([]json.RawMessage, error)
	InsertOne(ctx context.Context, input ObjectInput) (json.RawMessage, error)
	UpdateOne(ctx context.Context, id string, input ObjectInput) (json.RawMessage, error)
	DeleteOne(ctx context.Context, id string) error
}

// Client reads and writes typed content through a Backend.
type Client struct {
	backend Backend
	logger  *log.Logger
}

// NewClient builds a content client. A nil logger uses the process default.
func NewClient(backend Backend, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Default()
	}
	return &Client{backend: backend, logger: logger}
}

// ListProjects returns every project.
func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	return list(ctx, c, KindProject, DecodeProject)
}

// ListSkills returns every skill.
func (c *Client) ListSkills(ctx context.Context) ([]Skill, error) {
	return list(ctx, c, KindSkill, DecodeSkill)
}

// ListWorkExperience returns every work experience entry.
func (c *Client) ListWorkExperience(ctx context.Context) ([]WorkExperience, error) {
	return list(ctx, c, KindWorkExperience, DecodeWorkExperience)
}

// ListTestimonials returns every testimonial.
func (c *Client) ListTestimonials(ctx context.Context) ([]Testimonial, error) {
	return list(ctx, c, KindTestimonial, DecodeTestimonial)
}

func list[T any](ctx context.Context, c *Client, kind Kind, decode func(json.RawMessage) (T, error)) ([]T, error) {
	if c == nil || c.backend == nil {
		return nil, &FetchFailure{Kind: kind, Err: errors.New("content backend is not configured")}
	}
	raws, err := c.backend.Find(ctx, kind)
	if errors.Is(err, ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, &FetchFailure{Kind: kind, Err: err}
	}
	items := make([]T, 0, len(raws))
	for i, raw := range raws {
		item, err := decode(raw)
		if err != nil {
			return nil, &FetchFailure{Kind: kind, Err: fmt.Errorf("decode object %d: %w", i, err)}
		}
		items = append(items, item)
	}
	return items, nil
}

// CreateObject creates one object and returns its base shape.
func (c *Client) CreateObject(ctx context.Context, input ObjectInput) (Object, error) {
	input = input.normalized()
	if !input.Type.Valid() {
		return Object{}, c.mutationFailure(OpCreate, input.Type, "", ErrKindRequired)
	}
	if input.Title == "" {
		return Object{}, c.mutationFailure(OpCreate, input.Type, "", ErrTitleRequired)
	}
	raw, err := c.backend.InsertOne(ctx, input)
	if err != nil {
		return Object{}, c.mutationFailure(OpCreate, input.Type, "", err)
	}
	obj, err := DecodeObject(raw)
	if err != nil {
		return Object{}, c.mutationFailure(OpCreate, input.Type, "", fmt.Errorf("decode created object: %w", err))
	}
	return obj, nil
}

// UpdateObject patches one object by id.
func (c *Client) UpdateObject(ctx context.Context, id string, input ObjectInput) (Object, error) {
	input = input.normalized()
	if id == "" {
		return Object{}, c.mutationFailure(OpUpdate, input.Type, "", ErrIDRequired)
	}
	raw, err := c.backend.UpdateOne(ctx, id, input)
	if err != nil {
		return Object{}, c.mutationFailure(OpUpdate, input.Type, id, err)
	}
	obj, err := DecodeObject(raw)
	if err != nil {
		return Object{}, c.mutationFailure(OpUpdate, input.Type, id, fmt.Errorf("decode updated object: %w", err))
	}
	return obj, nil
}

// DeleteObject removes one object by id.
func (c *Client) DeleteObject(ctx context.Context, id string) error {
	if id == "" {
		return c.mutationFailure(OpDelete, "", "", ErrIDRequired)
	}
	if err := c.backend.DeleteOne(ctx, id); err != nil {
		return c.mutationFailure(OpDelete, "", id, err)
	}
	return nil
}

func (c *Client) mutationFailure(op Operation, kind Kind, id string, err error) error {
	c.logger.Printf("content mutation failed op=%s kind=%s id=%s err=%v", op, kind, id, err)
	return &MutationFailure{Op: op, Kind: kind, ID: id, Err: err}
}
