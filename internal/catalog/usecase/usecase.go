package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/shandysiswandi/goexception/internal/catalog/entity"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goexception/internal/pkg/pkguid"
)

const maxNameLength = 120

type Store interface {
	Create(ctx context.Context, p entity.Product) error
	Get(ctx context.Context, id int64) (entity.Product, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]entity.Product, error)
}

type Clock interface {
	Now() time.Time
}

type Dependency struct {
	Store Store
	Clock Clock
	ID    pkguid.NumberID
}

type Usecase struct {
	store Store
	clock Clock
	id    pkguid.NumberID
}

func New(dep Dependency) *Usecase {
	clock := dep.Clock
	if clock == nil {
		clock = realClock{}
	}

	return &Usecase{
		store: dep.Store,
		clock: clock,
		id:    dep.ID,
	}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (entity.Product, error) {
	if u.store == nil || u.id == nil {
		return entity.Product{}, pkgerror.NewServer(errors.New("missing dependency"))
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entity.Product{}, pkgerror.NewInvalidInput(errors.New("name is required"))
	}
	if len(name) > maxNameLength {
		return entity.Product{}, pkgerror.NewInvalidInput(errors.New("name is too long"))
	}
	if in.Price < 0 {
		return entity.Product{}, pkgerror.NewInvalidInput(errors.New("price must not be negative"))
	}

	p := entity.Product{
		ID:        u.id.Generate(),
		Name:      name,
		Price:     in.Price,
		Locked:    in.Locked,
		CreatedAt: u.clock.Now().Unix(),
	}
	if err := u.store.Create(ctx, p); err != nil {
		return entity.Product{}, normalizeErr(err)
	}

	slog.InfoContext(ctx, "product created", "product_id", p.ID)

	return p, nil
}

func (u *Usecase) Get(ctx context.Context, id int64) (entity.Product, error) {
	p, err := u.store.Get(ctx, id)
	if err != nil {
		return entity.Product{}, mapStoreErr(err)
	}
	return p, nil
}

func (u *Usecase) List(ctx context.Context) ([]entity.Product, error) {
	products, err := u.store.List(ctx)
	if err != nil {
		return nil, normalizeErr(err)
	}
	return products, nil
}

func (u *Usecase) Delete(ctx context.Context, id int64) error {
	p, err := u.store.Get(ctx, id)
	if err != nil {
		return mapStoreErr(err)
	}
	if p.Locked {
		return pkgerror.NewForbidden("product is locked")
	}

	if err := u.store.Delete(ctx, id); err != nil {
		return mapStoreErr(err)
	}

	slog.InfoContext(ctx, "product deleted", "product_id", id)

	return nil
}

func mapStoreErr(err error) error {
	if errors.Is(err, pkgerror.ErrNotFound) {
		return pkgerror.NewNotFound("product not found")
	}
	return normalizeErr(err)
}

func normalizeErr(err error) error {
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	return pkgerror.NewServer(err)
}
