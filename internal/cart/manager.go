package cart

import (
	"context"
	"fmt"

	"github.com/sweetlayers/sweetlayers-backend/pkg/config"
	"github.com/sweetlayers/sweetlayers-backend/pkg/logger"
	pkgredis "github.com/sweetlayers/sweetlayers-backend/pkg/redis"
)

// Manager hands out session carts. Each Store it builds is an explicit
// per-session instance; there is no shared global cart.
type Manager struct {
	client *pkgredis.Client
	cfg    config.CartConfig
	logg   *logger.Logger
}

// NewManager wires cart construction to the Redis collaborator.
func NewManager(client *pkgredis.Client, cfg config.CartConfig, logg *logger.Logger) (*Manager, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &Manager{client: client, cfg: cfg, logg: logg}, nil
}

// Store builds and rehydrates the cart owned by the given session.
func (m *Manager) Store(ctx context.Context, sessionID string) (*Store, error) {
	persistence := NewRedisPersistence(m.client, m.cfg.Namespace, sessionID, m.cfg.TTL)
	return NewStore(ctx, persistence, m.logg)
}
