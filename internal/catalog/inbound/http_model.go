package inbound

import (
	"net/http"
	"strconv"

	"github.com/shandysiswandi/goexception/internal/catalog/entity"
)

type CreateRequest struct {
	Name   string `json:"name"`
	Price  int64  `json:"price"`
	Locked bool   `json:"locked"`
}

type Product struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Locked    bool   `json:"locked"`
	CreatedAt int64  `json:"created_at"`
}

type CreateResponse struct {
	Product
}

func (CreateResponse) StatusCode() int {
	return http.StatusCreated
}

func (CreateResponse) Message() string {
	return "product created"
}

type ListResponse struct {
	Products []Product `json:"products"`
}

// IDs are strings so JavaScript clients keep full snowflake precision.
func toHTTPProduct(p entity.Product) Product {
	return Product{
		ID:        strconv.FormatInt(p.ID, 10),
		Name:      p.Name,
		Price:     p.Price,
		Locked:    p.Locked,
		CreatedAt: p.CreatedAt,
	}
}
