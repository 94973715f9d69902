package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/permission"
	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/logger"
)

// Container wires infrastructure, repositories, use cases and handlers.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	enforcer *permission.Enforcer
	jwtSvc   *auth.JWTService

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
}

// NewContainer builds every component. The enforcer loads its rules from the
// database, so policies must be seeded first.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	enforcer, err := permission.NewEnforcer(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	c.enforcer = enforcer
	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	c.redis = initRedis(cfg, log)

	c.repos = newRepositories(db)
	c.ucs = newUseCases(c.repos, c.enforcer, c.jwtSvc, auth.NewPasswordHasher(cfg.Auth.Password), db, log)

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	c.hdlrs = newHandlers(c.ucs, sqlDB, log)

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)
	c.rateLimiter = middleware.NewRateLimiter(c.loginLimiter(), log)

	return c, nil
}

// initRedis returns nil when Redis is disabled or unreachable; login rate
// limiting is then skipped.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	if !cfg.Redis.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnw("redis unavailable, login rate limiting disabled", "error", err)
		_ = client.Close()
		return nil
	}

	log.Infow("Redis connection established successfully")
	return client
}

func (c *Container) loginLimiter() ratelimit.Limiter {
	if c.redis == nil {
		return nil
	}
	return ratelimit.NewRedisRateLimiter(c.redis, "login", ratelimit.Config{
		Limit:  c.cfg.RateLimit.Login.Limit,
		Window: time.Duration(c.cfg.RateLimit.Login.WindowSeconds) * time.Second,
	})
}

// Close releases connections owned by the container.
func (c *Container) Close() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
