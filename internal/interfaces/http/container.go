package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/corycamp/support-ticket-backend/internal/application"
	"github.com/corycamp/support-ticket-backend/internal/infrastructure/auth"
	"github.com/corycamp/support-ticket-backend/internal/infrastructure/config"
	"github.com/corycamp/support-ticket-backend/internal/infrastructure/email"
	"github.com/corycamp/support-ticket-backend/internal/infrastructure/markdown"
	"github.com/corycamp/support-ticket-backend/internal/infrastructure/permission"
	"github.com/corycamp/support-ticket-backend/internal/infrastructure/ratelimit"
	"github.com/corycamp/support-ticket-backend/internal/infrastructure/storage"
	"github.com/corycamp/support-ticket-backend/internal/shared/logger"
)

// Container holds the infrastructure components and services the router is
// built from. It owns the storage backend and the redis client and releases
// them in Shutdown.
type Container struct {
	cfg     *config.Config
	log     logger.Interface
	backend *storage.Backend
	redis   *redis.Client

	services      *application.Services
	renderer      *markdown.Renderer
	authenticator *auth.Authenticator
	enforcer      *permission.Enforcer
	limiter       ratelimit.RateLimiter
}

// NewContainer wires everything on top of an opened storage backend.
func NewContainer(cfg *config.Config, backend *storage.Backend, log logger.Interface) (*Container, error) {
	c := &Container{
		cfg:      cfg,
		log:      log,
		backend:  backend,
		renderer: markdown.NewRenderer(),
		limiter:  ratelimit.Nop{},
	}

	c.initServices()

	if err := c.initRateLimiter(); err != nil {
		return nil, err
	}

	if cfg.Auth.Enabled {
		if err := c.initAuth(); err != nil {
			c.closeRedis()
			return nil, err
		}
	}

	return c, nil
}

func (c *Container) initServices() {
	opts := application.Options{Renderer: c.renderer}
	// A nil *TicketNotifier must not become a non-nil interface.
	if notifier := email.NewTicketNotifier(c.cfg.Email, c.cfg.Server.AppName, c.renderer, c.log.Named("email")); notifier != nil {
		opts.Notifier = notifier
		c.log.Infow("ticket notifications enabled")
	}

	c.services = application.NewServices(application.Stores{
		Tickets:  c.backend.Tickets,
		Comments: c.backend.Comments,
		Users:    c.backend.Users,
	}, c.log, opts)
}

func (c *Container) initRateLimiter() error {
	if !c.cfg.Redis.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.GetAddr(),
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	c.log.Infow("Redis connection established successfully")

	c.redis = client
	c.limiter = ratelimit.NewRedisRateLimiter(client, c.cfg.RateLimit.RequestsPerMinute, time.Minute)
	return nil
}

func (c *Container) initAuth() error {
	hasher := auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	tokens := auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)

	authenticator, err := auth.NewAuthenticator(c.cfg.Auth, hasher, tokens)
	if err != nil {
		return fmt.Errorf("invalid auth accounts: %w", err)
	}

	// Policies live next to the data when there is a database.
	enforcer, err := permission.NewEnforcer(c.backend.DB, c.log.Named("permission"))
	if err != nil {
		return fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}

	c.authenticator = authenticator
	c.enforcer = enforcer
	return nil
}

// Services exposes the application services, mainly for tests.
func (c *Container) Services() *application.Services {
	return c.services
}

func (c *Container) closeRedis() {
	if c.redis == nil {
		return
	}
	if err := c.redis.Close(); err != nil {
		c.log.Warnw("failed to close redis client", "error", err)
	}
}

// Shutdown releases the redis client and the storage backend.
func (c *Container) Shutdown() {
	c.closeRedis()
	if err := c.backend.Close(); err != nil {
		c.log.Warnw("failed to close storage backend", "error", err)
	}
}
