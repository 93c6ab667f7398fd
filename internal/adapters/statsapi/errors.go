package statsapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrGameNotSelected: toda llamada game-scoped corta acá antes de tocar
// la red, así no generamos 404 ambiguos del lado del servidor.
var ErrGameNotSelected = errors.New("game is not selected")

// ErrNoAccessToken: el login respondió 2xx pero sin access_token.
var ErrNoAccessToken = errors.New("no access_token in response")

const maxDetailRunes = 300

// APIError es cualquier respuesta con status fuera de 2xx.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("request failed (%d)", e.Status)
	}
	return fmt.Sprintf("request failed (%d): %s", e.Status, e.Detail)
}

// newAPIError arma el error a partir del cuerpo ya leído: si es JSON
// usamos detail/message, si no mostramos el texto crudo (páginas HTML
// de error incluidas), siempre truncado.
func newAPIError(status int, raw []byte) *APIError {
	detail := strings.TrimSpace(string(raw))

	var body struct {
		Detail  any `json:"detail"`
		Message any `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if s := detailString(body.Detail); s != "" {
			detail = s
		} else if s := detailString(body.Message); s != "" {
			detail = s
		}
	}
	return &APIError{Status: status, Detail: truncate(detail, maxDetailRunes)}
}

// detail puede no ser string (FastAPI manda arrays en errores de
// validación); en ese caso lo re-serializamos.
func detailString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
