package statsapi

import (
	"strconv"
	"strings"
)

// placeholder de los path templates game-scoped, ej.
// "/games/{gameId}/players".
const gameIDPlaceholder = "{gameId}"

// GameSelection la implementa service.Session.
type GameSelection interface {
	SelectedGameID() (int64, bool)
}

// Scope resuelve templates contra el juego seleccionado.
type Scope struct {
	games GameSelection
}

func NewScope(games GameSelection) *Scope {
	return &Scope{games: games}
}

// Resolve reemplaza el placeholder exactamente una vez con el id
// decimal del juego seleccionado. Sin juego seleccionado devuelve
// ErrGameNotSelected: el caller debe cortar ahí, nunca mandar el
// template crudo al servidor.
func (s *Scope) Resolve(pathTemplate string) (string, error) {
	id, ok := s.games.SelectedGameID()
	if !ok {
		return "", ErrGameNotSelected
	}
	return strings.Replace(pathTemplate, gameIDPlaceholder, strconv.FormatInt(id, 10), 1), nil
}
