package inbound

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/shandysiswandi/goexception/internal/catalog/usecase"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgrouter"
)

const maxBodyBytes = 1 << 20

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) List(ctx context.Context, r *http.Request) (any, error) {
	products, err := h.uc.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, toHTTPProduct(p))
	}

	return ListResponse{Products: out}, nil
}

func (h *HTTPEndpoint) Create(ctx context.Context, r *http.Request) (any, error) {
	var req CreateRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return nil, pkgerror.NewBadRequest("invalid request body")
	}

	p, err := h.uc.Create(ctx, usecase.CreateInput{
		Name:   req.Name,
		Price:  req.Price,
		Locked: req.Locked,
	})
	if err != nil {
		return nil, err
	}

	return CreateResponse{Product: toHTTPProduct(p)}, nil
}

func (h *HTTPEndpoint) Get(ctx context.Context, r *http.Request) (any, error) {
	id, err := pkgrouter.GetParamID(ctx, "id")
	if err != nil {
		return nil, err
	}

	p, err := h.uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return toHTTPProduct(p), nil
}

func (h *HTTPEndpoint) Delete(ctx context.Context, r *http.Request) (any, error) {
	id, err := pkgrouter.GetParamID(ctx, "id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		return nil, err
	}

	return nil, nil
}
