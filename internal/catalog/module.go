package catalog

import (
	"errors"
	"fmt"

	"github.com/shandysiswandi/goexception/internal/catalog/inbound"
	"github.com/shandysiswandi/goexception/internal/catalog/store"
	"github.com/shandysiswandi/goexception/internal/catalog/usecase"
	"github.com/shandysiswandi/goexception/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goexception/internal/pkg/pkguid"
)

type Dependency struct {
	Router *pkgrouter.Router
	ID     pkguid.NumberID
}

func New(dep Dependency) error {
	if dep.Router == nil {
		return errors.New("catalog: router is required")
	}

	if dep.ID == nil {
		sf, err := pkguid.NewSnowflake()
		if err != nil {
			return fmt.Errorf("catalog: id generator: %w", err)
		}
		dep.ID = sf
	}

	uc := usecase.New(usecase.Dependency{
		Store: store.NewInMemoryStore(),
		ID:    dep.ID,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
