package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/jose-valero/statsdash/internal/domain"
)

// GameSink es la parte de la sesión que escribe el selector de juego.
type GameSink interface {
	SelectedGameID() (int64, bool)
	SetSelectedGameID(ctx context.Context, id int64) error
	ClearSelectedGame(ctx context.Context) error
}

// Games mantiene el catálogo de juegos: una sola carga por proceso,
// cacheada en memoria, y resuelve el nombre para el badge del juego
// seleccionado. Es el único escritor de la selección en la sesión.
type Games struct {
	api     StatsAPI
	session GameSink

	mu     sync.Mutex
	cache  []domain.Game
	loaded bool
}

func NewGames(api StatsAPI, session GameSink) *Games {
	return &Games{api: api, session: session}
}

// All devuelve el catálogo, yendo a la red solo la primera vez. Un
// fallo no marca el cache como cargado: el próximo All reintenta.
func (g *Games) All(ctx context.Context) ([]domain.Game, error) {
	g.mu.Lock()
	if g.loaded {
		out := g.cache
		g.mu.Unlock()
		return out, nil
	}
	g.mu.Unlock()

	games, err := g.api.Games(ctx)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	g.cache, g.loaded = games, true
	g.mu.Unlock()
	return games, nil
}

// Name resuelve la etiqueta de un juego desde el cache; si todavía no
// está cargado (o el id no aparece) cae a "Game <id>".
func (g *Games) Name(id int64) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, game := range g.cache {
		if game.ID == id {
			return game.Name
		}
	}
	return fmt.Sprintf("Game %d", id)
}

// Select persiste la selección. No valida contra el cache: el id puede
// venir de una sesión anterior a que cargara el catálogo.
func (g *Games) Select(ctx context.Context, id int64) error {
	return g.session.SetSelectedGameID(ctx, id)
}

func (g *Games) Clear(ctx context.Context) error {
	return g.session.ClearSelectedGame(ctx)
}

// Badge devuelve "Game: <name>" o "" si no hay selección.
func (g *Games) Badge() string {
	id, ok := g.session.SelectedGameID()
	if !ok {
		return ""
	}
	return "Game: " + g.Name(id)
}
