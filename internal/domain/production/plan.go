package production

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Padaria-api/internal/domain/entity"
)

// PlannedProduct unidades a producir de un producto y su meta por estación.
type PlannedProduct struct {
	ProductID string
	Units     decimal.Decimal
	Stations  []StationQuantity
}

// Plan agrupa los pedidos por producto (sumando ToUnits de cada Quantidade) y calcula la
// meta de cada estación. Pedidos de productos sin factores entran solo con sus unidades.
// El resultado viene ordenado por ProductID.
func Plan(orders []*entity.Order, products map[string]*entity.Product) []PlannedProduct {
	units := make(map[string]decimal.Decimal)
	for _, o := range orders {
		var conv Conversion
		if p, ok := products[o.ProductID]; ok {
			conv = ConversionOf(p)
		}
		units[o.ProductID] = units[o.ProductID].Add(ToUnits(o.Quantity, conv))
	}

	out := make([]PlannedProduct, 0, len(units))
	for productID, u := range units {
		var conv Conversion
		if p, ok := products[productID]; ok {
			conv = ConversionOf(p)
		}
		pp := PlannedProduct{ProductID: productID, Units: u}
		for _, st := range Stages {
			pp.Stations = append(pp.Stations, QuantityByStation(u, conv, st))
		}
		out = append(out, pp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}
