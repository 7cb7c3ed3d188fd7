package pkgrouter

import (
	"context"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgerror"
)

// GetParam reads a path parameter from the request context (as stored by httprouter).
func GetParam(ctx context.Context, key string) string {
	return httprouter.ParamsFromContext(ctx).ByName(key)
}

// GetParamID reads a positive integer path parameter. A missing or malformed
// value fails with a BadRequest-marked error so it maps to 400.
func GetParamID(ctx context.Context, key string) (int64, error) {
	raw := GetParam(ctx, key)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerror.NewBadRequest("invalid " + key)
	}
	return id, nil
}
