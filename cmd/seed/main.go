// seed carga el catálogo (produtos y clientes) y usuarios en la base, e imprime el esquema SQL.
//
// Uso:
//
//	go run ./cmd/seed schema | psql "$DATABASE_URL"
//	go run ./cmd/seed catalogo -f seed.yaml
//	go run ./cmd/seed usuario --email admin@padaria.com --nome Admin --role admin --password ...
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Padaria-api/internal/application/dto"
	"github.com/jhoicas/Padaria-api/internal/application/usecase"
	"github.com/jhoicas/Padaria-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Padaria-api/pkg/config"
	"github.com/jhoicas/Padaria-api/pkg/logger"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "seed",
		Short:        "Carga inicial de la base de Padaria API",
		SilenceUsage: true,
	}
	root.AddCommand(newSchemaCmd(), newCatalogCmd(), newUserCmd())
	return root
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Imprime el SQL del esquema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), postgres.Schema())
			return err
		},
	}
}

func newCatalogCmd() *cobra.Command {
	var file, encoding string
	cmd := &cobra.Command{
		Use:   "catalogo",
		Short: "Crea o actualiza produtos (por SKU), clientes (por nombre) y usuarios desde un YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("abrir %s: %w", file, err)
			}
			defer f.Close()
			seed, err := decodeSeed(f, encoding)
			if err != nil {
				return err
			}
			return withDeps(cmd.Context(), func(d deps) error {
				res, err := applySeed(cmd.Context(), d.products, d.clients, d.users, seed)
				if err != nil {
					return err
				}
				d.log.Info().
					Int("produtos_criados", res.ProductsCreated).
					Int("produtos_atualizados", res.ProductsUpdated).
					Int("clientes_criados", res.ClientsCreated).
					Int("clientes_atualizados", res.ClientsUpdated).
					Int("usuarios_criados", res.UsersCreated).
					Msg("catálogo carregado")
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "seed.yaml", "archivo YAML con produtos, clientes y usuarios")
	cmd.Flags().StringVar(&encoding, "encoding", "utf-8", "codificación del archivo (utf-8 | iso-8859-1)")
	return cmd
}

func newUserCmd() *cobra.Command {
	var in dto.CreateUserRequest
	cmd := &cobra.Command{
		Use:   "usuario",
		Short: "Crea un usuario con password bcrypt",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDeps(cmd.Context(), func(d deps) error {
				out, err := d.users.Create(cmd.Context(), in)
				if err != nil {
					return fmt.Errorf("crear usuario %s: %w", in.Email, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "usuario %s (%s) creado: %s\n", out.Email, out.Role, out.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&in.Email, "email", "", "email (requerido)")
	cmd.Flags().StringVar(&in.Name, "nome", "", "nombre")
	cmd.Flags().StringVar(&in.Role, "role", "producao", "admin | producao | expedicao")
	cmd.Flags().StringVar(&in.Password, "password", "", "password (mínimo 8 caracteres)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

type deps struct {
	log      *logger.Logger
	products *usecase.ProductUseCase
	clients  *usecase.ClientUseCase
	users    *usecase.UserUseCase
}

// withDeps abre el pool con la configuración del entorno y arma los casos de uso.
func withDeps(ctx context.Context, fn func(deps) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	defer pool.Close()

	return fn(deps{
		log:      log,
		products: usecase.NewProductUseCase(postgres.NewProductRepository(pool), log),
		clients:  usecase.NewClientUseCase(postgres.NewClientRepository(pool), log),
		users:    usecase.NewUserUseCase(postgres.NewUserRepository(pool), log),
	})
}
