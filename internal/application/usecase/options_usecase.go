package usecase

import (
	"context"
	"sort"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
	"github.com/jhoicas/Padaria-api/internal/domain/production"
	"github.com/jhoicas/Padaria-api/internal/domain/repository"
	"github.com/jhoicas/Padaria-api/pkg/textnorm"
)

// optionsLimit tope de registros leídos para alimentar un select.
const optionsLimit = 1000

// OptionsUseCase alimenta los selects del frontend (/api/options/*).
type OptionsUseCase struct {
	clients  repository.ClientRepository
	products repository.ProductRepository
}

// NewOptionsUseCase construye el caso de uso.
func NewOptionsUseCase(clients repository.ClientRepository, products repository.ProductRepository) *OptionsUseCase {
	return &OptionsUseCase{clients: clients, products: products}
}

// Clients clientes activos ordenados por nombre; q filtra por substring normalizado.
func (uc *OptionsUseCase) Clients(ctx context.Context, q string) ([]dto.OptionDTO, error) {
	list, err := uc.clients.List(ctx, true, optionsLimit, 0)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OptionDTO, 0, len(list))
	for _, c := range list {
		if q == "" || textnorm.Contains(c.Name, q) {
			out = append(out, dto.OptionDTO{Value: c.ID, Label: c.Name})
		}
	}
	sortOptions(out)
	return out, nil
}

// Products productos activos ordenados por nombre; q busca en nombre y SKU.
func (uc *OptionsUseCase) Products(ctx context.Context, q string) ([]dto.OptionDTO, error) {
	list, err := uc.products.List(ctx, true, optionsLimit, 0)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OptionDTO, 0, len(list))
	for _, p := range list {
		if q == "" || textnorm.Contains(p.Name, q) || textnorm.Contains(p.SKU, q) {
			out = append(out, dto.OptionDTO{Value: p.ID, Label: p.Name})
		}
	}
	sortOptions(out)
	return out, nil
}

// Stages estaciones en el orden del flujo.
func (uc *OptionsUseCase) Stages() []dto.OptionDTO {
	out := make([]dto.OptionDTO, 0, len(production.Stages))
	for _, st := range production.Stages {
		out = append(out, dto.OptionDTO{Value: string(st), Label: st.Label()})
	}
	return out
}

// Units buckets de Quantidade.
func (uc *OptionsUseCase) Units() []dto.OptionDTO {
	return []dto.OptionDTO{
		{Value: "caixas", Label: "Caixas"},
		{Value: "pacotes", Label: "Pacotes"},
		{Value: "unidades", Label: "Unidades"},
		{Value: "kg", Label: "Kg"},
	}
}

func sortOptions(opts []dto.OptionDTO) {
	sort.SliceStable(opts, func(i, j int) bool {
		return textnorm.Key(opts[i].Label) < textnorm.Key(opts[j].Label)
	})
}
