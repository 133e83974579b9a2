package entity

import "github.com/shopspring/decimal"

// Quantity (Quantidade) agrupa cuatro buckets de unidad independientes: cajas, paquetes,
// unidades y kg. Se suman o comparan bucket a bucket; nunca se convierten entre sí de forma
// implícita (la conversión explícita vive en domain/production.ToUnits).
type Quantity struct {
	Boxes    decimal.Decimal `json:"caixas"`
	Packages decimal.Decimal `json:"pacotes"`
	Units    decimal.Decimal `json:"unidades"`
	Kg       decimal.Decimal `json:"kg"`
}

// Add suma bucket a bucket.
func (q Quantity) Add(o Quantity) Quantity {
	return Quantity{
		Boxes:    q.Boxes.Add(o.Boxes),
		Packages: q.Packages.Add(o.Packages),
		Units:    q.Units.Add(o.Units),
		Kg:       q.Kg.Add(o.Kg),
	}
}

// Sub resta bucket a bucket.
func (q Quantity) Sub(o Quantity) Quantity {
	return q.Add(o.Neg())
}

// Neg invierte el signo de cada bucket.
func (q Quantity) Neg() Quantity {
	return Quantity{
		Boxes:    q.Boxes.Neg(),
		Packages: q.Packages.Neg(),
		Units:    q.Units.Neg(),
		Kg:       q.Kg.Neg(),
	}
}

// IsZero es true cuando los cuatro buckets son cero.
func (q Quantity) IsZero() bool {
	return q.Boxes.IsZero() && q.Packages.IsZero() && q.Units.IsZero() && q.Kg.IsZero()
}

// HasNegative es true si algún bucket es negativo.
func (q Quantity) HasNegative() bool {
	return q.Boxes.IsNegative() || q.Packages.IsNegative() || q.Units.IsNegative() || q.Kg.IsNegative()
}

// Equal compara bucket a bucket (2 y 2.00 son iguales).
func (q Quantity) Equal(o Quantity) bool {
	return q.Boxes.Equal(o.Boxes) && q.Packages.Equal(o.Packages) &&
		q.Units.Equal(o.Units) && q.Kg.Equal(o.Kg)
}

// Covers es true si cada bucket de q es mayor o igual al de meta.
func (q Quantity) Covers(meta Quantity) bool {
	return q.Boxes.GreaterThanOrEqual(meta.Boxes) &&
		q.Packages.GreaterThanOrEqual(meta.Packages) &&
		q.Units.GreaterThanOrEqual(meta.Units) &&
		q.Kg.GreaterThanOrEqual(meta.Kg)
}
