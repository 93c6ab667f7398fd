package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jose-valero/statsdash/internal/domain"
)

// PlayerStats es el agregado de la vista de estadísticas: resumen,
// desglose por mapa y por arma de un mismo jugador.
type PlayerStats struct {
	Summary *domain.PlayerStatsSummary
	Maps    []domain.MapStat
	Weapons []domain.WeaponStat
}

type StatsService struct {
	api StatsAPI
}

func NewStatsService(api StatsAPI) *StatsService {
	return &StatsService{api: api}
}

// LoadAll dispara las tres llamadas en paralelo y espera a que las
// tres terminen. Todo o nada: si una falla, el agregado entero falla y
// los parciales que sí llegaron se descartan. No cancelamos a las
// hermanas; sus resultados se tiran igual.
func (s *StatsService) LoadAll(ctx context.Context, playerID int64, rankedOnly bool) (*PlayerStats, error) {
	if playerID <= 0 {
		return nil, ErrInvalidPlayerID
	}

	var out PlayerStats
	var g errgroup.Group

	g.Go(func() error {
		sum, err := s.api.PlayerStatsSummary(ctx, playerID, rankedOnly)
		if err != nil {
			return err
		}
		out.Summary = sum
		return nil
	})
	g.Go(func() error {
		maps, err := s.api.PlayerMapStats(ctx, playerID, rankedOnly)
		if err != nil {
			return err
		}
		out.Maps = maps
		return nil
	})
	g.Go(func() error {
		weapons, err := s.api.PlayerWeaponStats(ctx, playerID, rankedOnly)
		if err != nil {
			return err
		}
		out.Weapons = weapons
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
