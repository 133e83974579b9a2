// Package production contiene las reglas puras de producción: estaciones, conversión de
// cantidades planeadas a unidades de cada estación y clasificación de avance.
package production

import "github.com/jhoicas/Padaria-api/internal/domain"

// Stage es una estación de producción.
type Stage string

const (
	StageDough        Stage = "massa"
	StageFermentation Stage = "fermentacao"
	StageOven         Stage = "forno"
	StageCooling      Stage = "resfriamento"
	StagePackaging    Stage = "embalagem"
)

// Unidades de estación.
const (
	UnitBatches = "bateladas"
	UnitTrays   = "assadeiras"
	UnitBoxes   = "caixas"
	UnitUnits   = "unidades"
)

// Stages en el orden del flujo de producción.
var Stages = []Stage{StageDough, StageFermentation, StageOven, StageCooling, StagePackaging}

// ParseStage valida el nombre de una estación (tal como llega en la URL).
func ParseStage(s string) (Stage, error) {
	for _, st := range Stages {
		if string(st) == s {
			return st, nil
		}
	}
	return "", domain.ErrInvalidStage
}

// Label nombre legible de la estación.
func (s Stage) Label() string {
	switch s {
	case StageDough:
		return "Massa"
	case StageFermentation:
		return "Fermentação"
	case StageOven:
		return "Forno"
	case StageCooling:
		return "Resfriamento"
	case StagePackaging:
		return "Embalagem"
	}
	return string(s)
}
