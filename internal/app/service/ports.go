package service

import (
	"context"

	"github.com/jose-valero/statsdash/internal/domain"
)

// Lo implementa internal/adapters/statsapi.Client
type StatsAPI interface {
	Games(ctx context.Context) ([]domain.Game, error)
	Players(ctx context.Context, offset, limit int) (domain.Page[domain.Player], error)
	PlayerSummary(ctx context.Context, playerID int64) (*domain.PlayerSummary, error)
	Battles(ctx context.Context, f domain.BattleFilter) (domain.Page[domain.Battle], error)
	Battle(ctx context.Context, battleID int64) (*domain.BattleDetails, error)
	PlayerStatsSummary(ctx context.Context, playerID int64, rankedOnly bool) (*domain.PlayerStatsSummary, error)
	PlayerMapStats(ctx context.Context, playerID int64, rankedOnly bool) ([]domain.MapStat, error)
	PlayerWeaponStats(ctx context.Context, playerID int64, rankedOnly bool) ([]domain.WeaponStat, error)
}

// Lo implementa internal/adapters/statsapi.Client
type AuthAPI interface {
	Register(ctx context.Context, username, password string) error
	Login(ctx context.Context, username, password string) (string, error)
	Me(ctx context.Context) *domain.User
}

// Lo implementa internal/infra/storage.KVRepo (y un fake en memoria en
// los tests).
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// TokenSink es la parte de la sesión que necesita el AuthController.
type TokenSink interface {
	SetToken(ctx context.Context, token string) error
}
