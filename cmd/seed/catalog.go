package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
	"github.com/jhoicas/Padaria-api/internal/application/usecase"
	"github.com/jhoicas/Padaria-api/internal/domain"
	"github.com/jhoicas/Padaria-api/pkg/textnorm"
)

// seedFile formato del YAML de carga:
//
//	produtos:
//	  - sku: PAO-FR
//	    nome: Pão francês
//	    unidades_por_assadeira: 20
//	clientes:
//	  - nome: Mercado Central
//	usuarios:
//	  - email: forno@padaria.com
//	    password: trocar123
//	    role: producao
type seedFile struct {
	Products []dto.CreateProductRequest `yaml:"produtos"`
	Clients  []dto.CreateClientRequest  `yaml:"clientes"`
	Users    []dto.CreateUserRequest    `yaml:"usuarios"`
}

type seedResult struct {
	ProductsCreated int
	ProductsUpdated int
	ClientsCreated  int
	ClientsUpdated  int
	UsersCreated    int
	UsersSkipped    int
}

// decodeSeed lee el YAML. Planillas exportadas en Windows suelen venir en ISO-8859-1.
func decodeSeed(r io.Reader, encoding string) (*seedFile, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8":
	case "iso-8859-1", "iso8859-1", "latin1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	default:
		return nil, fmt.Errorf("codificación no soportada: %s", encoding)
	}
	var seed seedFile
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decodificar YAML: %w", err)
	}
	return &seed, nil
}

// applySeed crea o actualiza produtos por SKU y clientes por nombre normalizado.
// Usuarios existentes no se tocan.
func applySeed(
	ctx context.Context,
	products *usecase.ProductUseCase,
	clients *usecase.ClientUseCase,
	users *usecase.UserUseCase,
	seed *seedFile,
) (*seedResult, error) {
	res := &seedResult{}

	for _, p := range seed.Products {
		existing, err := products.GetBySKU(ctx, p.SKU)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			if _, err := products.Create(ctx, p); err != nil {
				return res, fmt.Errorf("produto %s: %w", p.SKU, err)
			}
			res.ProductsCreated++
		case err != nil:
			return res, err
		default:
			p := p
			active := true
			if _, err := products.Update(ctx, existing.ID, dto.UpdateProductRequest{
				Name:            &p.Name,
				UnitsPerBatch:   &p.UnitsPerBatch,
				UnitsPerTray:    &p.UnitsPerTray,
				UnitsPerBox:     &p.UnitsPerBox,
				UnitsPerPackage: &p.UnitsPerPackage,
				KgPerUnit:       &p.KgPerUnit,
				ShelfLifeDays:   &p.ShelfLifeDays,
				Active:          &active,
			}); err != nil {
				return res, fmt.Errorf("produto %s: %w", p.SKU, err)
			}
			res.ProductsUpdated++
		}
	}

	byName, err := clientsByKey(ctx, clients)
	if err != nil {
		return res, err
	}
	for _, c := range seed.Clients {
		key := textnorm.Key(c.Name)
		if id, ok := byName[key]; ok {
			c := c
			if _, err := clients.Update(ctx, id, dto.UpdateClientRequest{Name: &c.Name, Document: &c.Document}); err != nil {
				return res, fmt.Errorf("cliente %s: %w", c.Name, err)
			}
			res.ClientsUpdated++
			continue
		}
		out, err := clients.Create(ctx, c)
		if err != nil {
			return res, fmt.Errorf("cliente %s: %w", c.Name, err)
		}
		byName[key] = out.ID
		res.ClientsCreated++
	}

	for _, u := range seed.Users {
		_, err := users.Create(ctx, u)
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			res.UsersSkipped++
		case err != nil:
			return res, fmt.Errorf("usuario %s: %w", u.Email, err)
		default:
			res.UsersCreated++
		}
	}
	return res, nil
}

func clientsByKey(ctx context.Context, clients *usecase.ClientUseCase) (map[string]string, error) {
	const pageSize = 100
	out := make(map[string]string)
	for offset := 0; ; offset += pageSize {
		page, err := clients.List(ctx, false, pageSize, offset)
		if err != nil {
			return nil, err
		}
		for _, c := range page.Items {
			out[textnorm.Key(c.Name)] = c.ID
		}
		if len(page.Items) < pageSize {
			return out, nil
		}
	}
}
