package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/newmo-oss/ctxtime"
)

type Category struct {
	id          uuid.UUID
	name        string
	slug        Slug
	description string
	imageKey    string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCategory(ctx context.Context, name string, slug Slug, description string) (*Category, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	now := ctxtime.Now(ctx)
	return &Category{
		id:          uuid.New(),
		name:        name,
		slug:        slug,
		description: description,
		isActive:    true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructCategory(
	id uuid.UUID,
	name string,
	slug Slug,
	description string,
	imageKey string,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Category, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Category{
		id:          id,
		name:        name,
		slug:        slug,
		description: description,
		imageKey:    imageKey,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (c *Category) Rename(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyName
	}
	c.name = name
	c.updatedAt = ctxtime.Now(ctx)
	return nil
}

func (c *Category) ChangeDescription(ctx context.Context, description string) {
	c.description = description
	c.updatedAt = ctxtime.Now(ctx)
}

func (c *Category) AttachImage(ctx context.Context, imageKey string) {
	c.imageKey = imageKey
	c.updatedAt = ctxtime.Now(ctx)
}

func (c *Category) SetActive(ctx context.Context, active bool) {
	c.isActive = active
	c.updatedAt = ctxtime.Now(ctx)
}

func (c *Category) ID() uuid.UUID {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) Slug() Slug {
	return c.slug
}

func (c *Category) Description() string {
	return c.description
}

func (c *Category) ImageKey() string {
	return c.imageKey
}

func (c *Category) IsActive() bool {
	return c.isActive
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) UpdatedAt() time.Time {
	return c.updatedAt
}
