package inbound

import (
	"context"

	"github.com/shandysiswandi/goexception/internal/catalog/entity"
	"github.com/shandysiswandi/goexception/internal/catalog/usecase"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgrouter"
)

type uc interface {
	Create(ctx context.Context, in usecase.CreateInput) (entity.Product, error)
	Get(ctx context.Context, id int64) (entity.Product, error)
	List(ctx context.Context) ([]entity.Product, error)
	Delete(ctx context.Context, id int64) error
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/products", end.List)
	r.POST("/products", end.Create)
	r.GET("/products/:id", end.Get)
	r.DELETE("/products/:id", end.Delete)
}
