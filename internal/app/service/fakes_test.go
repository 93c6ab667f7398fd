package service

import (
	"context"
	"sync"

	"github.com/jose-valero/statsdash/internal/domain"
)

// memKV: backend de sesión en memoria para tests.
type memKV struct {
	mu sync.Mutex
	m  map[string]string
}

func newMemKV() *memKV { return &memKV{m: map[string]string{}} }

func (k *memKV) Get(_ context.Context, key string) (string, bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	v, ok := k.m[key]
	return v, ok, nil
}

func (k *memKV) Put(_ context.Context, key, value string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.m[key] = value
	return nil
}

func (k *memKV) Delete(_ context.Context, key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.m, key)
	return nil
}

// fakeAPI implementa StatsAPI y AuthAPI con comportamientos
// inyectables por campo; los campos nil devuelven cero. Cuenta
// llamadas para poder afirmar "cero requests".
type fakeAPI struct {
	mu    sync.Mutex
	calls map[string]int

	gamesFn    func(ctx context.Context) ([]domain.Game, error)
	playersFn  func(ctx context.Context, offset, limit int) (domain.Page[domain.Player], error)
	battlesFn  func(ctx context.Context, f domain.BattleFilter) (domain.Page[domain.Battle], error)
	registerFn func(ctx context.Context, username, password string) error
	loginFn    func(ctx context.Context, username, password string) (string, error)
	summaryFn  func(ctx context.Context, playerID int64, rankedOnly bool) (*domain.PlayerStatsSummary, error)
	mapsFn     func(ctx context.Context, playerID int64, rankedOnly bool) ([]domain.MapStat, error)
	weaponsFn  func(ctx context.Context, playerID int64, rankedOnly bool) ([]domain.WeaponStat, error)
}

func newFakeAPI() *fakeAPI { return &fakeAPI{calls: map[string]int{}} }

func (f *fakeAPI) count(name string) {
	f.mu.Lock()
	f.calls[name]++
	f.mu.Unlock()
}

func (f *fakeAPI) callCount(names ...string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(names) == 0 {
		total := 0
		for _, n := range f.calls {
			total += n
		}
		return total
	}
	total := 0
	for _, name := range names {
		total += f.calls[name]
	}
	return total
}

func (f *fakeAPI) Games(ctx context.Context) ([]domain.Game, error) {
	f.count("games")
	if f.gamesFn != nil {
		return f.gamesFn(ctx)
	}
	return nil, nil
}

func (f *fakeAPI) Players(ctx context.Context, offset, limit int) (domain.Page[domain.Player], error) {
	f.count("players")
	if f.playersFn != nil {
		return f.playersFn(ctx, offset, limit)
	}
	return domain.Page[domain.Player]{}, nil
}

func (f *fakeAPI) PlayerSummary(ctx context.Context, playerID int64) (*domain.PlayerSummary, error) {
	f.count("playerSummary")
	return &domain.PlayerSummary{}, nil
}

func (f *fakeAPI) Battles(ctx context.Context, bf domain.BattleFilter) (domain.Page[domain.Battle], error) {
	f.count("battles")
	if f.battlesFn != nil {
		return f.battlesFn(ctx, bf)
	}
	return domain.Page[domain.Battle]{}, nil
}

func (f *fakeAPI) Battle(ctx context.Context, battleID int64) (*domain.BattleDetails, error) {
	f.count("battle")
	return &domain.BattleDetails{}, nil
}

func (f *fakeAPI) PlayerStatsSummary(ctx context.Context, playerID int64, rankedOnly bool) (*domain.PlayerStatsSummary, error) {
	f.count("statsSummary")
	if f.summaryFn != nil {
		return f.summaryFn(ctx, playerID, rankedOnly)
	}
	return &domain.PlayerStatsSummary{PlayerID: playerID}, nil
}

func (f *fakeAPI) PlayerMapStats(ctx context.Context, playerID int64, rankedOnly bool) ([]domain.MapStat, error) {
	f.count("mapStats")
	if f.mapsFn != nil {
		return f.mapsFn(ctx, playerID, rankedOnly)
	}
	return nil, nil
}

func (f *fakeAPI) PlayerWeaponStats(ctx context.Context, playerID int64, rankedOnly bool) ([]domain.WeaponStat, error) {
	f.count("weaponStats")
	if f.weaponsFn != nil {
		return f.weaponsFn(ctx, playerID, rankedOnly)
	}
	return nil, nil
}

func (f *fakeAPI) Register(ctx context.Context, username, password string) error {
	f.count("register")
	if f.registerFn != nil {
		return f.registerFn(ctx, username, password)
	}
	return nil
}

func (f *fakeAPI) Login(ctx context.Context, username, password string) (string, error) {
	f.count("login")
	if f.loginFn != nil {
		return f.loginFn(ctx, username, password)
	}
	return "token", nil
}

func (f *fakeAPI) Me(ctx context.Context) *domain.User {
	f.count("me")
	return nil
}
