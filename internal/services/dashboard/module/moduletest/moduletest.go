// Package moduletest provides in-memory doubles for dashboard module tests.
package moduletest

import (
	"context"
	"io"
	"log"
	"sync"
	"time"

	"github.com/louisbranch/portfolio-dashboard/internal/content"
	"github.com/louisbranch/portfolio-dashboard/internal/platform/i18n/catalog"
	module "github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/module"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/storage"
	"github.com/louisbranch/portfolio-dashboard/internal/services/dashboard/templates"
)

// Now is the fixed clock used by Dependencies.
var Now = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

// Content is a scripted content client. Zero value lists are empty.
type Content struct {
	mu sync.Mutex

	Projects     []content.Project
	Skills       []content.Skill
	Experience   []content.WorkExperience
	Testimonials []content.Testimonial

	// ListErr fails the list call of the keyed kind.
	ListErr map[content.Kind]error
	// MutateErr fails every create, update and delete.
	MutateErr error
	// Created is the object CreateObject and UpdateObject answer with.
	Created content.Object

	Creates []content.ObjectInput
	Updates map[string]content.ObjectInput
	Deletes []string
	Lists   []content.Kind
}

var _ module.ContentClient = (*Content)(nil)

func (c *Content) list(kind content.Kind) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Lists = append(c.Lists, kind)
	if err := c.ListErr[kind]; err != nil {
		return &content.FetchFailure{Kind: kind, Err: err}
	}
	return nil
}

func (c *Content) ListProjects(context.Context) ([]content.Project, error) {
	if err := c.list(content.KindProject); err != nil {
		return nil, err
	}
	return c.Projects, nil
}

func (c *Content) ListSkills(context.Context) ([]content.Skill, error) {
	if err := c.list(content.KindSkill); err != nil {
		return nil, err
	}
	return c.Skills, nil
}

func (c *Content) ListWorkExperience(context.Context) ([]content.WorkExperience, error) {
	if err := c.list(content.KindWorkExperience); err != nil {
		return nil, err
	}
	return c.Experience, nil
}

func (c *Content) ListTestimonials(context.Context) ([]content.Testimonial, error) {
	if err := c.list(content.KindTestimonial); err != nil {
		return nil, err
	}
	return c.Testimonials, nil
}

func (c *Content) CreateObject(_ context.Context, input content.ObjectInput) (content.Object, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Creates = append(c.Creates, input)
	if c.MutateErr != nil {
		return content.Object{}, &content.MutationFailure{Op: content.OpCreate, Kind: input.Type, Err: c.MutateErr}
	}
	return c.answer(input), nil
}

func (c *Content) UpdateObject(_ context.Context, id string, input content.ObjectInput) (content.Object, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Updates == nil {
		c.Updates = map[string]content.ObjectInput{}
	}
	c.Updates[id] = input
	if c.MutateErr != nil {
		return content.Object{}, &content.MutationFailure{Op: content.OpUpdate, Kind: input.Type, ID: id, Err: c.MutateErr}
	}
	obj := c.answer(input)
	obj.ID = id
	return obj, nil
}

func (c *Content) DeleteObject(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Deletes = append(c.Deletes, id)
	if c.MutateErr != nil {
		return &content.MutationFailure{Op: content.OpDelete, ID: id, Err: c.MutateErr}
	}
	return nil
}

func (c *Content) answer(input content.ObjectInput) content.Object {
	obj := c.Created
	if obj.ID == "" {
		obj.ID = "new-id"
	}
	if obj.Title == "" {
		obj.Title = input.Title
	}
	if obj.Slug == "" {
		obj.Slug = input.Slug
	}
	obj.Type = input.Type
	return obj
}

// Journal is an in-memory activity store.
type Journal struct {
	mu      sync.Mutex
	Entries []storage.Activity
	Err     error
}

var _ storage.ActivityStore = (*Journal)(nil)

func (j *Journal) RecordActivity(_ context.Context, activity storage.Activity) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.Err != nil {
		return j.Err
	}
	j.Entries = append(j.Entries, activity)
	return nil
}

func (j *Journal) RecentActivity(_ context.Context, limit int) ([]storage.Activity, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.Err != nil {
		return nil, j.Err
	}
	out := make([]storage.Activity, 0, len(j.Entries))
	for i := len(j.Entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, j.Entries[i])
	}
	return out, nil
}

// Dependencies builds module dependencies over the real templates and
// catalog with a silent logger.
func Dependencies(client *Content, journal *Journal) module.Dependencies {
	bundle := catalog.Default()
	deps := module.Dependencies{
		Renderer:       templates.MustNew(bundle),
		Copy:           bundle,
		Logger:         log.New(io.Discard, "", 0),
		ContentTimeout: time.Second,
		Now:            func() time.Time { return Now },
	}
	if client != nil {
		deps.Content = client
	}
	if journal != nil {
		deps.Activity = journal
	}
	return deps
}
