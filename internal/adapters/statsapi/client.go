package statsapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jose-valero/statsdash/internal/domain"
)

// --- Auth ---

func (c *Client) Register(ctx context.Context, username, password string) error {
	payload := registerDTO{Username: username, Password: password}
	return c.doJSON(ctx, http.MethodPost, "/auth/register", nil, payload, nil)
}

// Login postea el form al endpoint de token. Un 2xx sin access_token
// cuenta como fallo: contrato defensivo contra respuestas malformadas.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var tok tokenDTO
	if err := c.doJSON(ctx, http.MethodPost, "/auth/token", nil, form, &tok); err != nil {
		return "", err
	}
	if tok.AccessToken == "" {
		return "", ErrNoAccessToken
	}
	return tok.AccessToken, nil
}

// Me devuelve nil ante cualquier fallo (sin token, status, red). El
// badge de usuario es best-effort: nunca rompe la página.
func (c *Client) Me(ctx context.Context) *domain.User {
	if c.tokens.Token() == "" {
		return nil
	}
	var u domain.User
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, nil, &u); err != nil {
		return nil
	}
	return &u
}

// --- Games ---

// Games acepta las dos formas que devuelve el backend: array pelado o
// envelope {items: [...]}.
func (c *Client) Games(ctx context.Context) ([]domain.Game, error) {
	var raw gamesEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/games", nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw.games, nil
}

// --- Players ---

func (c *Client) Players(ctx context.Context, offset, limit int) (domain.Page[domain.Player], error) {
	var page domain.Page[domain.Player]
	base, err := c.scope.Resolve("/games/{gameId}/players")
	if err != nil {
		return page, err
	}
	q := url.Values{}
	q.Set("offset", strconv.Itoa(offset))
	q.Set("limit", strconv.Itoa(limit))
	if err := c.doJSON(ctx, http.MethodGet, base, q, nil, &page); err != nil {
		return domain.Page[domain.Player]{}, err
	}
	return page, nil
}

func (c *Client) PlayerSummary(ctx context.Context, playerID int64) (*domain.PlayerSummary, error) {
	base, err := c.scope.Resolve("/games/{gameId}/players")
	if err != nil {
		return nil, err
	}
	var sum domain.PlayerSummary
	path := fmt.Sprintf("%s/%d/summary", base, playerID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &sum); err != nil {
		return nil, err
	}
	return &sum, nil
}

// --- Battles ---

func (c *Client) Battles(ctx context.Context, f domain.BattleFilter) (domain.Page[domain.Battle], error) {
	var page domain.Page[domain.Battle]
	base, err := c.scope.Resolve("/games/{gameId}/battles")
	if err != nil {
		return page, err
	}
	q := url.Values{}
	if f.PlayerID != nil {
		q.Set("player_id", strconv.FormatInt(*f.PlayerID, 10))
	}
	if f.Ranked != nil {
		q.Set("is_ranked", strconv.FormatBool(*f.Ranked))
	}
	q.Set("offset", strconv.Itoa(f.Offset))
	q.Set("limit", strconv.Itoa(f.Limit))
	if err := c.doJSON(ctx, http.MethodGet, base, q, nil, &page); err != nil {
		return domain.Page[domain.Battle]{}, err
	}
	return page, nil
}

func (c *Client) Battle(ctx context.Context, battleID int64) (*domain.BattleDetails, error) {
	base, err := c.scope.Resolve("/games/{gameId}/battles")
	if err != nil {
		return nil, err
	}
	var det domain.BattleDetails
	path := fmt.Sprintf("%s/%d", base, battleID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &det); err != nil {
		return nil, err
	}
	return &det, nil
}

// --- Stats ---

func (c *Client) PlayerStatsSummary(ctx context.Context, playerID int64, rankedOnly bool) (*domain.PlayerStatsSummary, error) {
	var sum domain.PlayerStatsSummary
	if err := c.playerStats(ctx, playerID, "", rankedOnly, &sum); err != nil {
		return nil, err
	}
	return &sum, nil
}

func (c *Client) PlayerMapStats(ctx context.Context, playerID int64, rankedOnly bool) ([]domain.MapStat, error) {
	var maps []domain.MapStat
	if err := c.playerStats(ctx, playerID, "/maps", rankedOnly, &maps); err != nil {
		return nil, err
	}
	return maps, nil
}

func (c *Client) PlayerWeaponStats(ctx context.Context, playerID int64, rankedOnly bool) ([]domain.WeaponStat, error) {
	var weapons []domain.WeaponStat
	if err := c.playerStats(ctx, playerID, "/weapons", rankedOnly, &weapons); err != nil {
		return nil, err
	}
	return weapons, nil
}

func (c *Client) playerStats(ctx context.Context, playerID int64, suffix string, rankedOnly bool, out any) error {
	base, err := c.scope.Resolve("/games/{gameId}/stats/players")
	if err != nil {
		return err
	}
	q := url.Values{}
	q.Set("ranked_only", strconv.FormatBool(rankedOnly))
	path := fmt.Sprintf("%s/%d%s", base, playerID, suffix)
	return c.doJSON(ctx, http.MethodGet, path, q, nil, out)
}
