package production

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Padaria-api/internal/domain/entity"
)

// Conversion factores de un producto. Cero = la estación no convierte.
type Conversion struct {
	UnitsPerBatch   decimal.Decimal
	UnitsPerTray    decimal.Decimal
	UnitsPerBox     decimal.Decimal
	UnitsPerPackage decimal.Decimal
	KgPerUnit       decimal.Decimal
}

// ConversionOf extrae los factores de un producto.
func ConversionOf(p *entity.Product) Conversion {
	return Conversion{
		UnitsPerBatch:   p.UnitsPerBatch,
		UnitsPerTray:    p.UnitsPerTray,
		UnitsPerBox:     p.UnitsPerBox,
		UnitsPerPackage: p.UnitsPerPackage,
		KgPerUnit:       p.KgPerUnit,
	}
}

// StationQuantity cantidad planeada expresada en la unidad de una estación.
type StationQuantity struct {
	Stage Stage
	Value decimal.Decimal
	Unit  string
	Kg    decimal.Decimal // peso de masa; solo para massa con KgPerUnit
}

// QuantityByStation convierte unidades planeadas a la unidad de la estación:
//
//	massa                         ceil(planned / UnitsPerBatch) bateladas (+ kg de masa)
//	fermentacao/forno/resfriamento ceil(planned / UnitsPerTray) assadeiras
//	embalagem                     ceil(planned / UnitsPerBox) caixas
//
// Sin factor la cantidad queda en unidades. Cantidades negativas cuentan como cero.
func QuantityByStation(planned decimal.Decimal, conv Conversion, stage Stage) StationQuantity {
	if planned.IsNegative() {
		planned = decimal.Zero
	}
	out := StationQuantity{Stage: stage, Value: planned, Unit: UnitUnits}

	var factor decimal.Decimal
	var unit string
	switch stage {
	case StageDough:
		factor, unit = conv.UnitsPerBatch, UnitBatches
		if conv.KgPerUnit.IsPositive() {
			out.Kg = planned.Mul(conv.KgPerUnit).Round(2)
		}
	case StageFermentation, StageOven, StageCooling:
		factor, unit = conv.UnitsPerTray, UnitTrays
	case StagePackaging:
		factor, unit = conv.UnitsPerBox, UnitBoxes
	}
	if !factor.IsPositive() {
		return out
	}
	out.Value = planned.Div(factor).Ceil()
	out.Unit = unit
	return out
}

// ToUnits convierte una Quantidade a unidades sueltas usando los factores del producto:
// caixas×UnitsPerBox + pacotes×UnitsPerPackage + unidades + floor(kg / KgPerUnit).
// Un bucket cuyo factor es cero no aporta. Es la única conversión entre buckets permitida.
func ToUnits(q entity.Quantity, conv Conversion) decimal.Decimal {
	total := q.Units
	if conv.UnitsPerBox.IsPositive() {
		total = total.Add(q.Boxes.Mul(conv.UnitsPerBox))
	}
	if conv.UnitsPerPackage.IsPositive() {
		total = total.Add(q.Packages.Mul(conv.UnitsPerPackage))
	}
	if conv.KgPerUnit.IsPositive() {
		total = total.Add(q.Kg.Div(conv.KgPerUnit).Floor())
	}
	return total
}
