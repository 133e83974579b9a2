package dto

// LabelRequest body para POST /api/etiquetas.
type LabelRequest struct {
	ProductID      string `json:"produto_id"`
	ProductionDate string `json:"data_producao"` // YYYY-MM-DD; vacío = hoy
	Lot            string `json:"lote"`
	Copies         int    `json:"copias"`
}
