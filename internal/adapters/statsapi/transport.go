package statsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxBodyBytes = 4 << 20

// TokenSource la implementa service.Session; se consulta en cada
// request para que el bearer siga al token vigente.
type TokenSource interface {
	Token() string
}

// SessionSource es lo que el cliente necesita de la sesión: token y
// juego seleccionado.
type SessionSource interface {
	TokenSource
	GameSelection
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	scope   *Scope
}

func New(baseURL string, session SessionSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
		tokens:  session,
		scope:   NewScope(session),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// newRequest arma la request con los headers comunes: Accept JSON
// siempre, bearer si hay token, y no-store para que ninguna capa
// intermedia nos cachee la respuesta.
func (c *Client) newRequest(ctx context.Context, method, path string, q url.Values, body io.Reader, contentType string) (*http.Request, error) {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")
	if t := c.tokens.Token(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}
	if body != nil && contentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

// doJSON: ejecuta la llamada y deserializa en out. El orden importa:
// primero leemos el cuerpo completo, recién después clasificamos el
// status. Así un 500 con página HTML sigue mostrando algo útil en vez
// de morir en el parseo.
//
// body admite url.Values (form-encoded, para /auth/token) o cualquier
// valor serializable a JSON. 204 o cuerpo vacío ⇒ out queda intacto.
func (c *Client) doJSON(ctx context.Context, method, path string, q url.Values, body, out any) error {
	var (
		rdr         io.Reader
		contentType string
	)
	if body != nil {
		switch b := body.(type) {
		case url.Values:
			rdr = strings.NewReader(b.Encode())
			contentType = "application/x-www-form-urlencoded"
		default:
			buf, err := json.Marshal(body)
			if err != nil {
				return fmt.Errorf("statsapi encode: %w", err)
			}
			rdr = bytes.NewReader(buf)
			contentType = "application/json"
		}
	}

	req, err := c.newRequest(ctx, method, path, q, rdr, contentType)
	if err != nil {
		return err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("statsapi http: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("statsapi read body: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return newAPIError(res.StatusCode, raw)
	}
	if res.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("statsapi decode %s: %w", path, err)
	}
	return nil
}
