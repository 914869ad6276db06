package cart

import (
	"context"
	"errors"
	"time"

	pkgredis "github.com/sweetlayers/sweetlayers-backend/pkg/redis"
)

// Persistence is the session-scoped key-value collaborator the store writes
// through. Payloads are opaque serialized line-item sequences; an absent key
// loads as the empty string.
type Persistence interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, payload string) error
}

type redisPersistence struct {
	client    *pkgredis.Client
	namespace string
	sessionID string
	ttl       time.Duration
}

// NewRedisPersistence binds cart persistence to a Redis key scoped by the
// configured namespace and the shopper's session.
func NewRedisPersistence(client *pkgredis.Client, namespace, sessionID string, ttl time.Duration) Persistence {
	return &redisPersistence{
		client:    client,
		namespace: namespace,
		sessionID: sessionID,
		ttl:       ttl,
	}
}

func (p *redisPersistence) key() string {
	return p.client.CartKey(p.namespace, p.sessionID)
}

func (p *redisPersistence) Load(ctx context.Context) (string, error) {
	payload, err := p.client.Get(ctx, p.key())
	if err != nil {
		if errors.Is(err, pkgredis.Nil) {
			return "", nil
		}
		return "", err
	}
	return payload, nil
}

func (p *redisPersistence) Save(ctx context.Context, payload string) error {
	return p.client.Set(ctx, p.key(), payload, p.ttl)
}
