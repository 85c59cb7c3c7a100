// Package cache guarda en Redis los informes de auditoría ya calculados.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Auditoria-RCF/internal/application/audit"
	"github.com/jhoicas/Auditoria-RCF/pkg/config"
)

var _ audit.ReportCache = (*ReportCache)(nil)

const defaultPrefix = "rcf:informes:"

// ReportCache caché de informes en Redis. Las claves incluyen una versión de datos que
// Invalidate incrementa, de modo que los informes anteriores a una importación dejan
// de ser visibles y expiran por TTL.
type ReportCache struct {
	client *redis.Client
	prefix string
}

// Connect abre el cliente y comprueba la conexión.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("conectar a Redis: %w", err)
	}
	return rdb, nil
}

// NewReportCache construye la caché. prefix vacío usa "rcf:informes:".
func NewReportCache(client *redis.Client, prefix string) *ReportCache {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &ReportCache{client: client, prefix: prefix}
}

// Get carga en dst el informe guardado bajo key, si existe.
func (c *ReportCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	k, err := c.clave(ctx, key)
	if err != nil {
		return false, err
	}
	raw, err := c.client.Get(ctx, k).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", k, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", k, err)
	}
	return true, nil
}

// Set guarda value (JSON) con el TTL indicado; ttl 0 = sin expiración.
func (c *ReportCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	k, err := c.clave(ctx, key)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", k, err)
	}
	if err := c.client.Set(ctx, k, raw, ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", k, err)
	}
	return nil
}

// Invalidate incrementa la versión de datos.
func (c *ReportCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, c.versionKey()).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

func (c *ReportCache) versionKey() string { return c.prefix + "version" }

func (c *ReportCache) clave(ctx context.Context, key string) (string, error) {
	v, err := c.client.Get(ctx, c.versionKey()).Int64()
	if errors.Is(err, redis.Nil) {
		v = 0
	} else if err != nil {
		return "", fmt.Errorf("cache version: %w", err)
	}
	return Clave(c.prefix, v, key), nil
}

// Clave compone la clave Redis de un informe.
func Clave(prefix string, version int64, key string) string {
	return fmt.Sprintf("%sv%d:%s", prefix, version, key)
}
