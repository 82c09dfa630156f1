package domain

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/newmo-oss/ctxtime"
)

type Product struct {
	id            uuid.UUID
	name          string
	slug          Slug
	description   string
	price         Price
	discountPrice Price
	imageKey      string
	categoryID    uuid.UUID
	isBestSeller  bool
	isActive      bool
	createdAt     time.Time
	updatedAt     time.Time
}

func NewProduct(
	ctx context.Context,
	name string,
	slug Slug,
	description string,
	price Price,
	discountPrice Price,
	categoryID uuid.UUID,
	isBestSeller bool,
) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if !discountPrice.IsZero() && discountPrice.Int64() >= price.Int64() {
		return nil, ErrInvalidPrice
	}
	now := ctxtime.Now(ctx)
	return &Product{
		id:            uuid.New(),
		name:          name,
		slug:          slug,
		description:   description,
		price:         price,
		discountPrice: discountPrice,
		categoryID:    categoryID,
		isBestSeller:  isBestSeller,
		isActive:      true,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructProduct(
	id uuid.UUID,
	name string,
	slug Slug,
	description string,
	price Price,
	discountPrice Price,
	imageKey string,
	categoryID uuid.UUID,
	isBestSeller bool,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Product{
		id:            id,
		name:          name,
		slug:          slug,
		description:   description,
		price:         price,
		discountPrice: discountPrice,
		imageKey:      imageKey,
		categoryID:    categoryID,
		isBestSeller:  isBestSeller,
		isActive:      isActive,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (p *Product) Rename(ctx context.Context, name string) error {
	if name == "" {
		return ErrEmptyName
	}
	p.name = name
	p.updatedAt = ctxtime.Now(ctx)
	return nil
}

func (p *Product) ChangePrice(ctx context.Context, price, discountPrice Price) error {
	if !discountPrice.IsZero() && discountPrice.Int64() >= price.Int64() {
		return ErrInvalidPrice
	}
	p.price = price
	p.discountPrice = discountPrice
	p.updatedAt = ctxtime.Now(ctx)
	return nil
}

func (p *Product) ChangeDescription(ctx context.Context, description string) {
	p.description = description
	p.updatedAt = ctxtime.Now(ctx)
}

func (p *Product) AttachImage(ctx context.Context, imageKey string) {
	p.imageKey = imageKey
	p.updatedAt = ctxtime.Now(ctx)
}

func (p *Product) MarkBestSeller(ctx context.Context, isBestSeller bool) {
	p.isBestSeller = isBestSeller
	p.updatedAt = ctxtime.Now(ctx)
}

func (p *Product) SetActive(ctx context.Context, active bool) {
	p.isActive = active
	p.updatedAt = ctxtime.Now(ctx)
}

// DiscountPercent は割引率(%)を返します。割引が設定されていない場合は0を返します。
func (p *Product) DiscountPercent() int {
	if p.discountPrice.IsZero() || p.price.IsZero() {
		return 0
	}
	ratio := float64(p.price.Int64()-p.discountPrice.Int64()) / float64(p.price.Int64())
	return int(math.Round(ratio * 100))
}

func (p *Product) ID() uuid.UUID {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Slug() Slug {
	return p.slug
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Price() Price {
	return p.price
}

func (p *Product) DiscountPrice() Price {
	return p.discountPrice
}

func (p *Product) ImageKey() string {
	return p.imageKey
}

func (p *Product) CategoryID() uuid.UUID {
	return p.categoryID
}

func (p *Product) IsBestSeller() bool {
	return p.isBestSeller
}

func (p *Product) IsActive() bool {
	return p.isActive
}

func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) UpdatedAt() time.Time {
	return p.updatedAt
}
