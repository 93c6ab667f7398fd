package service

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// Errores de validación local: se reportan sin tocar la red.
var (
	ErrEmptyCredentials = errors.New("username and password are required")
	ErrInvalidPlayerID  = errors.New("invalid player id")
)

type AuthMode int

const (
	ModeLogin AuthMode = iota
	ModeRegister
)

func (m AuthMode) String() string {
	if m == ModeRegister {
		return "register"
	}
	return "login"
}

type AuthPhase int

const (
	AuthClosed AuthPhase = iota
	AuthOpen
	AuthSubmitting
	AuthFailed
)

// AuthState es el estado observable del modal. La vista solo se
// suscribe; nunca muta nada acá.
type AuthState struct {
	Phase AuthPhase
	Mode  AuthMode
	Err   string
}

// AuthController maneja el ciclo login/register como máquina de
// estados pura, sin saber nada de la capa de presentación.
type AuthController struct {
	api     AuthAPI
	session TokenSink

	mu    sync.Mutex
	state AuthState
	subs  []func(AuthState)
}

func NewAuthController(api AuthAPI, session TokenSink) *AuthController {
	return &AuthController{api: api, session: session}
}

func (c *AuthController) State() AuthState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registra un observador de transiciones. Se invoca en la
// misma goroutine que dispara la transición.
func (c *AuthController) Subscribe(fn func(AuthState)) {
	c.mu.Lock()
	c.subs = append(c.subs, fn)
	c.mu.Unlock()
}

func (c *AuthController) set(st AuthState) {
	c.mu.Lock()
	c.state = st
	subs := c.subs
	c.mu.Unlock()
	for _, fn := range subs {
		fn(st)
	}
}

// Open abre el modal en el modo pedido y limpia errores viejos.
func (c *AuthController) Open(mode AuthMode) {
	c.set(AuthState{Phase: AuthOpen, Mode: mode})
}

// Dismiss cierra el modal (Escape / click en el fondo) sin tocar la
// sesión. Ignorado mientras hay un submit en vuelo.
func (c *AuthController) Dismiss() {
	c.mu.Lock()
	phase := c.state.Phase
	c.mu.Unlock()
	if phase != AuthOpen && phase != AuthFailed {
		return
	}
	c.set(AuthState{Phase: AuthClosed})
}

// Submit valida credenciales y dispara el flujo de red. En register
// primero registra y después intenta login con las mismas credenciales
// aunque el registro haya dicho "ya existe": si la cuenta estaba
// creada, el login decide. Éxito ⇒ token persistido y modal cerrado;
// fallo ⇒ el modal queda abierto con el mensaje y se puede reintentar.
func (c *AuthController) Submit(ctx context.Context, username, password string) error {
	c.mu.Lock()
	st := c.state
	c.mu.Unlock()
	if st.Phase != AuthOpen && st.Phase != AuthFailed {
		return nil
	}

	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		c.set(AuthState{Phase: AuthOpen, Mode: st.Mode, Err: ErrEmptyCredentials.Error()})
		return ErrEmptyCredentials
	}

	c.set(AuthState{Phase: AuthSubmitting, Mode: st.Mode})

	if st.Mode == ModeRegister {
		// best-effort: el login de abajo es quien valida de verdad
		_ = c.api.Register(ctx, username, password)
	}

	token, err := c.api.Login(ctx, username, password)
	if err != nil {
		c.set(AuthState{Phase: AuthFailed, Mode: st.Mode, Err: err.Error()})
		return err
	}
	if err := c.session.SetToken(ctx, token); err != nil {
		c.set(AuthState{Phase: AuthFailed, Mode: st.Mode, Err: err.Error()})
		return err
	}

	c.set(AuthState{Phase: AuthClosed})
	return nil
}
