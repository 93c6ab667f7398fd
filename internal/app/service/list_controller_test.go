package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/jose-valero/statsdash/internal/domain"
)

// página sintética: total fijo, items = offsets
func pageFetcher(total int, calls *int32) FetchPage[int] {
	return func(ctx context.Context, offset, limit int) (domain.Page[int], error) {
		if calls != nil {
			atomic.AddInt32(calls, 1)
		}
		n := limit
		if offset+n > total {
			n = total - offset
		}
		items := make([]int, 0, n)
		for i := 0; i < n; i++ {
			items = append(items, offset+i)
		}
		return domain.Page[int]{Total: total, Items: items}, nil
	}
}

func TestPaginationWalk(t *testing.T) {
	ctx := context.Background()
	var calls int32
	l := NewListController(pageFetcher(45, &calls), 20)

	if err := l.Load(ctx); err != nil {
		t.Fatal(err)
	}
	if l.Offset() != 0 || l.Total() != 45 {
		t.Fatalf("offset=%d total=%d", l.Offset(), l.Total())
	}
	if got := l.PageLabel(); got != "Page 1 of 3" {
		t.Errorf("label = %q", got)
	}

	if err := l.Next(ctx); err != nil {
		t.Fatal(err)
	}
	if l.Offset() != 20 {
		t.Fatalf("offset = %d after first next", l.Offset())
	}

	if err := l.Next(ctx); err != nil {
		t.Fatal(err)
	}
	if l.Offset() != 40 {
		t.Fatalf("offset = %d after second next", l.Offset())
	}
	if got := l.PageLabel(); got != "Page 3 of 3" {
		t.Errorf("label = %q", got)
	}
	if l.CanNext() {
		t.Error("CanNext on last page")
	}

	// 40+20 >= 45: no-op, sin fetch
	before := atomic.LoadInt32(&calls)
	if err := l.Next(ctx); err != nil {
		t.Fatal(err)
	}
	if l.Offset() != 40 {
		t.Fatalf("offset = %d, third next must be a no-op", l.Offset())
	}
	if atomic.LoadInt32(&calls) != before {
		t.Error("no-op next still fetched")
	}

	if err := l.Prev(ctx); err != nil {
		t.Fatal(err)
	}
	if l.Offset() != 20 {
		t.Fatalf("offset = %d after prev", l.Offset())
	}
}

func TestEmptyListLabelAndBounds(t *testing.T) {
	ctx := context.Background()
	l := NewListController(pageFetcher(0, nil), 20)
	if err := l.Load(ctx); err != nil {
		t.Fatal(err)
	}
	if got := l.PageLabel(); got != "Page 1 of 1" {
		t.Errorf("label = %q", got)
	}
	if l.CanNext() || l.CanPrev() {
		t.Error("empty list must disable both directions")
	}
}

func TestLoadFailureLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	fail := false
	inner := pageFetcher(45, nil)
	l := NewListController(func(ctx context.Context, offset, limit int) (domain.Page[int], error) {
		if fail {
			return domain.Page[int]{}, errors.New("request failed (500)")
		}
		return inner(ctx, offset, limit)
	}, 20)

	if err := l.Load(ctx); err != nil {
		t.Fatal(err)
	}
	fail = true
	if err := l.Load(ctx); err == nil {
		t.Fatal("want error")
	}
	if l.Total() != 45 || len(l.Visible()) != 20 {
		t.Errorf("state clobbered by failed load: total=%d items=%d", l.Total(), len(l.Visible()))
	}
}

func TestClientSideFilterNeverFetches(t *testing.T) {
	ctx := context.Background()
	var calls int32
	players := func(ctx context.Context, offset, limit int) (domain.Page[domain.Player], error) {
		atomic.AddInt32(&calls, 1)
		return domain.Page[domain.Player]{Total: 3, Items: []domain.Player{
			{ID: 1, Nickname: "xXabcXx"},
			{ID: 2, Nickname: "ABCdef"},
			{ID: 3, Nickname: "nope"},
		}}, nil
	}
	api := newFakeAPI()
	api.playersFn = players
	v := NewPlayersView(api, 20)

	if err := v.Load(ctx); err != nil {
		t.Fatal(err)
	}
	before := atomic.LoadInt32(&calls)

	v.SetSearch("abc")
	got := v.Visible()
	if len(got) != 2 {
		t.Fatalf("visible = %d, want 2 (case-insensitive substring)", len(got))
	}
	for _, p := range got {
		if p.ID == 3 {
			t.Error("non-matching nickname not hidden")
		}
	}
	if atomic.LoadInt32(&calls) != before {
		t.Error("filter change triggered a fetch")
	}

	v.SetSearch("")
	if len(v.Visible()) != 3 {
		t.Error("clearing filter must show everything again")
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	ctx := context.Background()
	var calls int32
	entered := make(chan struct{})
	release := make(chan struct{})

	l := NewListController(func(ctx context.Context, offset, limit int) (domain.Page[int], error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(entered)
			<-release // respuesta lenta
			return domain.Page[int]{Total: 111, Items: []int{1}}, nil
		}
		return domain.Page[int]{Total: 222, Items: []int{2, 2}}, nil
	}, 20)

	done := make(chan error, 1)
	go func() { done <- l.Load(ctx) }()
	<-entered

	// segunda carga sale (y vuelve) mientras la primera sigue en vuelo
	if err := l.Load(ctx); err != nil {
		t.Fatal(err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatal(err)
	}

	if l.Total() != 222 {
		t.Fatalf("total = %d, stale response overwrote newer state", l.Total())
	}
	if len(l.Visible()) != 2 {
		t.Fatalf("items = %v", l.Visible())
	}
}

func TestBattlesFilterChangeResetsOffset(t *testing.T) {
	ctx := context.Background()
	var lastFilter domain.BattleFilter
	api := newFakeAPI()
	api.battlesFn = func(ctx context.Context, f domain.BattleFilter) (domain.Page[domain.Battle], error) {
		lastFilter = f
		items := make([]domain.Battle, 20)
		return domain.Page[domain.Battle]{Total: 60, Items: items}, nil
	}
	v := NewBattlesView(api, 20)

	if err := v.Load(ctx); err != nil {
		t.Fatal(err)
	}
	if err := v.Next(ctx); err != nil {
		t.Fatal(err)
	}
	if v.Offset() != 20 {
		t.Fatalf("offset = %d", v.Offset())
	}

	ranked := true
	if err := v.SetRanked(ctx, &ranked); err != nil {
		t.Fatal(err)
	}
	if v.Offset() != 0 {
		t.Errorf("offset = %d, filter change must reset to 0", v.Offset())
	}
	if lastFilter.Offset != 0 {
		t.Errorf("fetched offset = %d", lastFilter.Offset)
	}
	if lastFilter.Ranked == nil || !*lastFilter.Ranked {
		t.Errorf("ranked filter not forwarded: %+v", lastFilter.Ranked)
	}

	id := int64(7)
	_ = v.Next(ctx)
	if err := v.SetPlayerID(ctx, &id); err != nil {
		t.Fatal(err)
	}
	if lastFilter.Offset != 0 || lastFilter.PlayerID == nil || *lastFilter.PlayerID != 7 {
		t.Errorf("filter = %+v", lastFilter)
	}
}
