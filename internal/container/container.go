package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/soraho/account-api/config"
	"github.com/soraho/account-api/internal/infrastructure/crypto"
	"github.com/soraho/account-api/internal/infrastructure/token"
)

// app-level container to share constructed components across packages.
// Router modules are auto-wired from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client

	hasher      *crypto.PBKDF2Hasher
	tokenIssuer *token.Issuer
)

func SetConfig(c *config.Config)       { cfg = c }
func GetConfig() *config.Config        { return cfg }
func SetLogger(l *logrus.Logger)       { logger = l }
func GetLogger() *logrus.Logger        { return logger }
func SetPGPool(p *pgxpool.Pool)        { pgPool = p }
func GetPGPool() *pgxpool.Pool         { return pgPool }
func SetRedis(r *redis.Client)         { redisClient = r }
func GetRedis() *redis.Client          { return redisClient }
func SetHasher(h *crypto.PBKDF2Hasher) { hasher = h }
func GetHasher() *crypto.PBKDF2Hasher  { return hasher }
func SetTokenIssuer(i *token.Issuer)   { tokenIssuer = i }
func GetTokenIssuer() *token.Issuer    { return tokenIssuer }
