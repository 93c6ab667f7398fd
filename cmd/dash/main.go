package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/jose-valero/statsdash/internal/adapters/statsapi"
	"github.com/jose-valero/statsdash/internal/app/service"
	"github.com/jose-valero/statsdash/internal/infra/config"
	"github.com/jose-valero/statsdash/internal/infra/storage"
)

type app struct {
	api     *statsapi.Client
	session *service.Session
	auth    *service.AuthController
	games   *service.Games
	players *service.PlayersView
	battles *service.BattlesView
	stats   *service.StatsService

	in  *bufio.Scanner
	out *os.File

	// última lista cargada; next/prev operan sobre ella
	active string
}

func main() {
	_ = godotenv.Load()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()
	ctx := context.Background()

	db, err := storage.Open(ctx, cfg.SessionDBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := storage.Migrate(db); err != nil {
		log.Fatal("migrate:", err)
	}

	sess, err := service.NewSession(ctx, storage.NewKVRepo(db), cfg.TokenKey, cfg.GameIDKey)
	if err != nil {
		log.Fatal(err)
	}

	api := statsapi.New(cfg.APIBase, sess,
		statsapi.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
	)

	a := &app{
		api:     api,
		session: sess,
		auth:    service.NewAuthController(api, sess),
		games:   service.NewGames(api, sess),
		players: service.NewPlayersView(api, cfg.PageLimit),
		battles: service.NewBattlesView(api, cfg.PageLimit),
		stats:   service.NewStatsService(api),
		in:      bufio.NewScanner(os.Stdin),
		out:     os.Stdout,
	}

	a.banner(ctx)
	a.repl(ctx)
}

func (a *app) banner(ctx context.Context) {
	fmt.Fprintln(a.out, "statsdash — game statistics dashboard")
	if u := a.api.Me(ctx); u != nil {
		if u.Role != "" {
			fmt.Fprintf(a.out, "Logged in as %s (%s)\n", u.Username, u.Role)
		} else {
			fmt.Fprintf(a.out, "Logged in as %s\n", u.Username)
		}
	}
	if badge := a.games.Badge(); badge != "" {
		fmt.Fprintln(a.out, badge)
	} else {
		fmt.Fprintln(a.out, "Game is not selected — run `games` and `use <id>`")
	}
	fmt.Fprintln(a.out, "Type `help` for commands.")
}

func (a *app) repl(ctx context.Context) {
	for {
		fmt.Fprint(a.out, "> ")
		if !a.in.Scan() {
			return
		}
		line := strings.TrimSpace(a.in.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		if cmd == "quit" || cmd == "exit" {
			return
		}
		if err := a.dispatch(ctx, cmd, args); err != nil {
			// los fallos de carga se muestran y la vista queda como
			// estaba; nada acá tumba el proceso
			fmt.Fprintln(a.out, "error:", err)
		}
	}
}

func (a *app) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "help":
		a.printHelp()
	case "login":
		return a.doAuth(ctx, service.ModeLogin)
	case "register":
		return a.doAuth(ctx, service.ModeRegister)
	case "logout":
		if err := a.session.SetToken(ctx, ""); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Logged out")
	case "whoami":
		u := a.api.Me(ctx)
		if u == nil {
			fmt.Fprintln(a.out, "not logged in")
			return nil
		}
		fmt.Fprintf(a.out, "%s (%s)\n", u.Username, u.Role)
	case "games":
		return a.listGames(ctx)
	case "use":
		return a.useGame(ctx, args)
	case "players":
		a.active = "players"
		if err := a.players.Load(ctx); err != nil {
			return err
		}
		a.renderPlayers()
	case "battles":
		a.active = "battles"
		if err := a.battles.Load(ctx); err != nil {
			return err
		}
		a.renderBattles()
	case "next", "prev":
		return a.page(ctx, cmd)
	case "filter":
		a.players.SetSearch(strings.Join(args, " "))
		a.renderPlayers()
	case "player":
		return a.filterBattlesByPlayer(ctx, args)
	case "ranked":
		return a.setRanked(ctx, args)
	case "summary":
		return a.showSummary(ctx, args)
	case "battle":
		return a.showBattle(ctx, args)
	case "stats":
		return a.showStats(ctx, args)
	default:
		fmt.Fprintf(a.out, "unknown command %q — try `help`\n", cmd)
	}
	return nil
}

// doAuth recorre la máquina de estados del modal desde la terminal:
// Open → Submit → Closed|Failed. Enter vacío en username cancela
// (Dismiss), igual que Escape sobre el modal.
func (a *app) doAuth(ctx context.Context, mode service.AuthMode) error {
	a.auth.Open(mode)

	fmt.Fprintf(a.out, "[%s] username (empty cancels): ", mode)
	if !a.in.Scan() {
		a.auth.Dismiss()
		return nil
	}
	username := strings.TrimSpace(a.in.Text())
	if username == "" {
		a.auth.Dismiss()
		fmt.Fprintln(a.out, "cancelled")
		return nil
	}

	fmt.Fprint(a.out, "password: ")
	if !a.in.Scan() {
		a.auth.Dismiss()
		return nil
	}
	password := a.in.Text()

	if err := a.auth.Submit(ctx, username, password); err != nil {
		st := a.auth.State()
		fmt.Fprintln(a.out, "auth failed:", st.Err)
		return nil
	}

	fmt.Fprintln(a.out, "Logged in")
	if u := a.api.Me(ctx); u != nil && u.Role != "" {
		fmt.Fprintf(a.out, "%s (%s)\n", u.Username, u.Role)
	}
	return nil
}

func (a *app) listGames(ctx context.Context) error {
	games, err := a.games.All(ctx)
	if err != nil {
		return err
	}
	if len(games) == 0 {
		fmt.Fprintln(a.out, "(No games available)")
		return nil
	}
	selected, hasSel := a.session.SelectedGameID()
	for _, g := range games {
		mark := "  "
		if hasSel && g.ID == selected {
			mark = "* "
		}
		fmt.Fprintf(a.out, "%s%d\t%s\n", mark, g.ID, g.Name)
	}
	return nil
}

func (a *app) useGame(ctx context.Context, args []string) error {
	if len(args) == 0 {
		if err := a.games.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Game selection cleared")
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid game id %q", args[0])
	}
	if err := a.games.Select(ctx, id); err != nil {
		return err
	}
	// cambiar de juego equivale al reload de página: las vistas
	// arrancan de cero
	a.players.Reset()
	a.battles.Reset()
	fmt.Fprintln(a.out, a.games.Badge())
	return nil
}

func (a *app) page(ctx context.Context, dir string) error {
	switch a.active {
	case "players":
		var err error
		if dir == "next" {
			err = a.players.Next(ctx)
		} else {
			err = a.players.Prev(ctx)
		}
		if err != nil {
			return err
		}
		a.renderPlayers()
	case "battles":
		var err error
		if dir == "next" {
			err = a.battles.Next(ctx)
		} else {
			err = a.battles.Prev(ctx)
		}
		if err != nil {
			return err
		}
		a.renderBattles()
	default:
		fmt.Fprintln(a.out, "load `players` or `battles` first")
	}
	return nil
}

func (a *app) filterBattlesByPlayer(ctx context.Context, args []string) error {
	a.active = "battles"
	if len(args) == 0 || args[0] == "any" {
		if err := a.battles.SetPlayerID(ctx, nil); err != nil {
			return err
		}
		a.renderBattles()
		return nil
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid player id %q", args[0])
	}
	if err := a.battles.SetPlayerID(ctx, &id); err != nil {
		return err
	}
	a.renderBattles()
	return nil
}

func (a *app) setRanked(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: ranked on|off|any")
	}
	a.active = "battles"
	var ranked *bool
	switch args[0] {
	case "on":
		t := true
		ranked = &t
	case "off":
		f := false
		ranked = &f
	case "any":
		// sin filtro
	default:
		return fmt.Errorf("usage: ranked on|off|any")
	}
	if err := a.battles.SetRanked(ctx, ranked); err != nil {
		return err
	}
	a.renderBattles()
	return nil
}

func (a *app) showSummary(ctx context.Context, args []string) error {
	id, err := parseID(args, "player")
	if err != nil {
		return err
	}
	sum, err := a.api.PlayerSummary(ctx, id)
	if err != nil {
		return err
	}
	a.renderPlayerSummary(sum)
	return nil
}

func (a *app) showBattle(ctx context.Context, args []string) error {
	id, err := parseID(args, "battle")
	if err != nil {
		return err
	}
	det, err := a.api.Battle(ctx, id)
	if err != nil {
		return err
	}
	a.renderBattleDetails(det)
	return nil
}

func (a *app) showStats(ctx context.Context, args []string) error {
	id, err := parseID(args, "player")
	if err != nil {
		return err
	}
	rankedOnly := false
	if r := a.battles.Ranked(); r != nil && *r {
		rankedOnly = true
	}
	if len(args) > 1 && args[1] == "ranked" {
		rankedOnly = true
	}
	st, err := a.stats.LoadAll(ctx, id, rankedOnly)
	if err != nil {
		return err
	}
	a.renderStats(st, rankedOnly)
	return nil
}

func parseID(args []string, what string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing %s id", what)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, args[0])
	}
	return id, nil
}

func (a *app) printHelp() {
	fmt.Fprint(a.out, `commands:
  login | register | logout | whoami
  games                 list games
  use <id>              select game (empty clears)
  players               list players of selected game
  filter <substr>       client-side nickname filter
  battles               list battles of selected game
  player <id>|any       battles: filter by player
  ranked on|off|any     battles: ranked filter
  next | prev           page through active list
  summary <playerId>    player summary
  battle <battleId>     battle details
  stats <playerId> [ranked]   summary + maps + weapons
  quit
`)
}
