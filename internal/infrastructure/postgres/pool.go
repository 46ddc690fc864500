package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/konceptsolutions/crystal-trading-frontend-sub006/pkg/config"
)

const (
	poolMaxConns        = 20
	poolMinConns        = 2
	poolMaxConnLifetime = time.Hour
	poolMaxConnIdleTime = 30 * time.Minute
)

// NewPool crea el pool de conexiones PostgreSQL y verifica la conexión con un ping.
// DATABASE_URL tiene prioridad sobre DB_HOST/DB_PORT/...
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	// Docker suele no tener IPv6 y algunos proveedores resuelven solo AAAA.
	poolConfig.ConnConfig.DialFunc = dialPreferIPv4

	poolConfig.MaxConns = poolMaxConns
	poolConfig.MinConns = poolMinConns
	poolConfig.MaxConnLifetime = poolMaxConnLifetime
	poolConfig.MaxConnIdleTime = poolMaxConnIdleTime
	poolConfig.HealthCheckPeriod = time.Minute

	// NUMERIC <-> shopspring/decimal en todas las conexiones del pool.
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

// dialPreferIPv4 conecta por IPv4 si el host tiene registro A; si no, dial normal.
func dialPreferIPv4(ctx context.Context, network, addr string) (net.Conn, error) {
	var d net.Dialer
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	ip, err := lookupIPv4(ctx, host)
	if err != nil {
		return d.DialContext(ctx, network, addr)
	}
	return d.DialContext(ctx, "tcp4", net.JoinHostPort(ip, port))
}

func lookupIPv4(ctx context.Context, host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() != nil {
			return host, nil
		}
		return "", errors.New("dirección IPv6 literal")
	}
	ips, err := net.DefaultResolver.LookupIP(ctx, "ip4", host)
	if err != nil {
		return "", err
	}
	if len(ips) == 0 {
		return "", fmt.Errorf("sin registro A para %s", host)
	}
	return ips[0].String(), nil
}
