package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"
)

// Session es el único dueño del estado de sesión: token y juego
// seleccionado. Se carga una vez desde el KV persistente y los setters
// escriben write-through. Nadie más escribe esas claves.
type Session struct {
	kv       KV
	tokenKey string
	gameKey  string

	mu      sync.RWMutex
	token   string
	gameID  int64
	hasGame bool
}

func NewSession(ctx context.Context, kv KV, tokenKey, gameKey string) (*Session, error) {
	s := &Session{kv: kv, tokenKey: tokenKey, gameKey: gameKey}

	tok, _, err := kv.Get(ctx, tokenKey)
	if err != nil {
		return nil, fmt.Errorf("session load token: %w", err)
	}
	s.token = tok

	raw, ok, err := kv.Get(ctx, gameKey)
	if err != nil {
		return nil, fmt.Errorf("session load game id: %w", err)
	}
	if ok {
		// valor guardado no numérico ⇒ como si no hubiera selección,
		// nunca un 0 fantasma
		if id, perr := strconv.ParseInt(raw, 10, 64); perr == nil {
			s.gameID, s.hasGame = id, true
		}
	}
	return s, nil
}

// Token devuelve "" si no hay sesión autenticada.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken persiste el token; vacío borra la clave (logout).
func (s *Session) SetToken(ctx context.Context, token string) error {
	var err error
	if token == "" {
		err = s.kv.Delete(ctx, s.tokenKey)
	} else {
		err = s.kv.Put(ctx, s.tokenKey, token)
	}
	if err != nil {
		return fmt.Errorf("session persist token: %w", err)
	}
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

// SelectedGameID devuelve (0, false) si no hay juego seleccionado.
func (s *Session) SelectedGameID() (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gameID, s.hasGame
}

func (s *Session) SetSelectedGameID(ctx context.Context, id int64) error {
	if err := s.kv.Put(ctx, s.gameKey, strconv.FormatInt(id, 10)); err != nil {
		return fmt.Errorf("session persist game id: %w", err)
	}
	s.mu.Lock()
	s.gameID, s.hasGame = id, true
	s.mu.Unlock()
	return nil
}

func (s *Session) ClearSelectedGame(ctx context.Context) error {
	if err := s.kv.Delete(ctx, s.gameKey); err != nil {
		return fmt.Errorf("session clear game id: %w", err)
	}
	s.mu.Lock()
	s.gameID, s.hasGame = 0, false
	s.mu.Unlock()
	return nil
}
