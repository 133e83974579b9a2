package postgres

import (
	"context"
	"fmt"
	"net"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Padaria-api/pkg/config"
)

// NewPool abre el pool hacia PostgreSQL (DATABASE_URL o los campos DB_*) y registra en cada
// conexión el codec NUMERIC <-> decimal.Decimal de las cantidades.
// Con cfg.ForceIPv4 el host se resuelve solo a IPv4 y se conecta por tcp4; el nombre original
// se conserva para la verificación TLS.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	if cfg.ForceIPv4 {
		lookup := newIPv4Lookup(cfg.Resolver)
		poolConfig.ConnConfig.LookupFunc = lookup.LookupHost
		poolConfig.ConnConfig.DialFunc = dialTCP4
	}

	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = int32(cfg.MinConns)
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

func dialTCP4(ctx context.Context, network, addr string) (net.Conn, error) {
	if network == "tcp" {
		network = "tcp4"
	}
	d := net.Dialer{KeepAlive: 5 * time.Minute}
	return d.DialContext(ctx, network, addr)
}

// ipv4Lookup resuelve hosts solo a IPv4. fallback, si no es nil, se consulta cuando el
// resolver del sistema no devuelve ninguna IPv4.
type ipv4Lookup struct {
	fallback *net.Resolver
}

func newIPv4Lookup(server string) *ipv4Lookup {
	l := &ipv4Lookup{}
	if server != "" {
		l.fallback = &net.Resolver{
			PreferGo: true,
			Dial: func(ctx context.Context, _, _ string) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, "udp", server)
			},
		}
	}
	return l
}

// LookupHost cumple pgconn.LookupFunc.
func (l *ipv4Lookup) LookupHost(ctx context.Context, host string) ([]string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() == nil {
			return nil, fmt.Errorf("%s no es IPv4", host)
		}
		return []string{host}, nil
	}
	addrs, err := ipv4Addrs(ctx, net.DefaultResolver, host)
	if err == nil || l.fallback == nil {
		return addrs, err
	}
	return ipv4Addrs(ctx, l.fallback, host)
}

func ipv4Addrs(ctx context.Context, r *net.Resolver, host string) ([]string, error) {
	ips, err := r.LookupIP(ctx, "ip4", host)
	if err != nil {
		return nil, fmt.Errorf("resolver %s: %w", host, err)
	}
	out := make([]string, 0, len(ips))
	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			out = append(out, v4.String())
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s sin IPv4", host)
	}
	return out, nil
}
