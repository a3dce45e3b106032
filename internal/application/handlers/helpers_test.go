package handlers

import (
	"github.com/ersonp/buildcalc/internal/domain/services"
	"github.com/ersonp/buildcalc/internal/domain/tables"
)

func newTestConverter() *services.ConversionService {
	return services.NewConversionService(tables.Default())
}
