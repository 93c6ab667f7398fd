package service

import (
	"context"
	"strings"
	"sync"

	"github.com/jose-valero/statsdash/internal/domain"
)

// PlayersView: lista de jugadores con búsqueda por nickname del lado
// del cliente (substring, case-insensitive).
type PlayersView struct {
	*ListController[domain.Player]
}

func NewPlayersView(api StatsAPI, limit int) *PlayersView {
	fetch := func(ctx context.Context, offset, limit int) (domain.Page[domain.Player], error) {
		return api.Players(ctx, offset, limit)
	}
	return &PlayersView{ListController: NewListController(fetch, limit)}
}

// SetSearch filtra los items ya traídos; vacío quita el filtro. Sin
// llamadas de red.
func (v *PlayersView) SetSearch(substr string) {
	needle := strings.ToLower(strings.TrimSpace(substr))
	if needle == "" {
		v.SetFilter(nil)
		return
	}
	v.SetFilter(func(p domain.Player) bool {
		return strings.Contains(strings.ToLower(p.Nickname), needle)
	})
}

// BattlesView: lista de combates con filtros server-side (jugador y
// ranked). Cambiar un filtro resetea el offset a 0 antes de recargar,
// porque los límites del resultado cambian.
type BattlesView struct {
	*ListController[domain.Battle]

	mu       sync.Mutex
	playerID *int64
	ranked   *bool
}

func NewBattlesView(api StatsAPI, limit int) *BattlesView {
	v := &BattlesView{}
	fetch := func(ctx context.Context, offset, limit int) (domain.Page[domain.Battle], error) {
		v.mu.Lock()
		f := domain.BattleFilter{
			PlayerID: v.playerID,
			Ranked:   v.ranked,
			Offset:   offset,
			Limit:    limit,
		}
		v.mu.Unlock()
		return api.Battles(ctx, f)
	}
	v.ListController = NewListController(fetch, limit)
	return v
}

// SetPlayerID fija el filtro por jugador (nil lo quita) y recarga
// desde el principio.
func (v *BattlesView) SetPlayerID(ctx context.Context, id *int64) error {
	v.mu.Lock()
	v.playerID = id
	v.mu.Unlock()
	v.Reset()
	return v.Load(ctx)
}

// SetRanked fija el filtro ranked en tres estados: nil = sin filtro,
// true/false = explícito. Recarga desde el principio.
func (v *BattlesView) SetRanked(ctx context.Context, ranked *bool) error {
	v.mu.Lock()
	v.ranked = ranked
	v.mu.Unlock()
	v.Reset()
	return v.Load(ctx)
}

func (v *BattlesView) PlayerID() *int64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.playerID
}

func (v *BattlesView) Ranked() *bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ranked
}
