package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/jose-valero/statsdash/internal/domain"
)

// FetchPage trae una ventana [offset, offset+limit) del servidor.
type FetchPage[T any] func(ctx context.Context, offset, limit int) (domain.Page[T], error)

// ListController maneja el estado de paginación de una vista de lista:
// offset/limit/total más un filtro opcional del lado del cliente que
// solo esconde items ya traídos (nunca refetchea).
//
// Cargas solapadas: cada Load lleva un número de secuencia creciente y
// una respuesta que ya no es la última emitida se descarta, así una
// respuesta lenta vieja no pisa estado más nuevo.
type ListController[T any] struct {
	fetch FetchPage[T]
	limit int

	mu     sync.Mutex
	seq    uint64
	offset int
	total  int
	items  []T
	filter func(T) bool
}

func NewListController[T any](fetch FetchPage[T], limit int) *ListController[T] {
	if limit <= 0 {
		limit = 20
	}
	return &ListController[T]{fetch: fetch, limit: limit}
}

// Load trae la página actual. Si falla, el estado previo queda intacto.
func (l *ListController[T]) Load(ctx context.Context) error {
	l.mu.Lock()
	l.seq++
	seq, offset, limit := l.seq, l.offset, l.limit
	l.mu.Unlock()

	page, err := l.fetch(ctx, offset, limit)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if seq != l.seq {
		// respuesta vieja, ya salió otra carga
		return nil
	}
	l.total = page.Total
	l.items = page.Items
	return nil
}

func (l *ListController[T]) CanPrev() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.offset > 0
}

func (l *ListController[T]) CanNext() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.offset+l.limit < l.total
}

// Prev retrocede una página. No-op en la primera.
func (l *ListController[T]) Prev(ctx context.Context) error {
	l.mu.Lock()
	if l.offset <= 0 {
		l.mu.Unlock()
		return nil
	}
	l.offset -= l.limit
	if l.offset < 0 {
		l.offset = 0
	}
	l.mu.Unlock()
	return l.Load(ctx)
}

// Next avanza una página. No-op si ya estamos en la última.
func (l *ListController[T]) Next(ctx context.Context) error {
	l.mu.Lock()
	if l.offset+l.limit >= l.total {
		l.mu.Unlock()
		return nil
	}
	l.offset += l.limit
	l.mu.Unlock()
	return l.Load(ctx)
}

// Reset vuelve al principio; se usa cuando cambia un filtro server-side
// y los límites del resultado ya no son los mismos.
func (l *ListController[T]) Reset() {
	l.mu.Lock()
	l.offset = 0
	l.mu.Unlock()
}

// SetFilter define el predicado client-side; nil lo quita. No dispara
// ninguna llamada de red.
func (l *ListController[T]) SetFilter(fn func(T) bool) {
	l.mu.Lock()
	l.filter = fn
	l.mu.Unlock()
}

// Visible devuelve los items de la página actual que pasan el filtro.
func (l *ListController[T]) Visible() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.filter == nil {
		out := make([]T, len(l.items))
		copy(out, l.items)
		return out
	}
	var out []T
	for _, it := range l.items {
		if l.filter(it) {
			out = append(out, it)
		}
	}
	return out
}

func (l *ListController[T]) Offset() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.offset
}

func (l *ListController[T]) Total() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.total
}

func (l *ListController[T]) Limit() int { return l.limit }

// PageLabel: "Page N of M", con M mínimo 1 aunque no haya resultados.
func (l *ListController[T]) PageLabel() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	page := l.offset/l.limit + 1
	pages := 1
	if l.total > 0 {
		pages = (l.total + l.limit - 1) / l.limit
	}
	return fmt.Sprintf("Page %d of %d", page, pages)
}
