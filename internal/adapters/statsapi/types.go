package statsapi

import (
	"encoding/json"

	"github.com/jose-valero/statsdash/internal/domain"
)

type registerDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// gamesEnvelope tolera /games como array o como {items: [...]}.
type gamesEnvelope struct {
	games []domain.Game
}

func (e *gamesEnvelope) UnmarshalJSON(data []byte) error {
	var list []domain.Game
	if err := json.Unmarshal(data, &list); err == nil {
		e.games = list
		return nil
	}
	var env struct {
		Items []domain.Game `json:"items"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	e.games = env.Items
	return nil
}
