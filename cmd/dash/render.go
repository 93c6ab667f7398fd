package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/jose-valero/statsdash/internal/app/service"
	"github.com/jose-valero/statsdash/internal/domain"
)

// El formateo de rates y promedios vive acá, en presentación; los
// valores viajan tal cual los mandó el servidor.

func (a *app) renderPlayers() {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNICKNAME\tCREATED\tUSER")
	for _, p := range a.players.Visible() {
		user := ""
		if p.UserID != nil {
			user = fmt.Sprintf("%d", *p.UserID)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Nickname, p.CreatedAt, user)
	}
	w.Flush()
	fmt.Fprintln(a.out, a.players.PageLabel())
}

func (a *app) renderBattles() {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMAP\tMODE\tRANKED\tSTARTED\tENDED")
	for _, b := range a.battles.Visible() {
		ranked := "No"
		if b.IsRanked {
			ranked = "Yes"
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%s\t%s\n", b.ID, b.MapID, b.ModeID, ranked, b.StartedAt, b.EndedAt)
	}
	w.Flush()
	fmt.Fprintln(a.out, a.battles.PageLabel())
}

func (a *app) renderPlayerSummary(sum *domain.PlayerSummary) {
	fmt.Fprintf(a.out, "%s (id %d)\n", sum.Player.Nickname, sum.Player.ID)
	s := sum.Stats
	fmt.Fprintf(a.out, "  battles %d | W %d / L %d / D %d | win rate %.1f%%\n",
		s.TotalBattles, s.Wins, s.Losses, s.Draws, s.WinRate*100)
	fmt.Fprintf(a.out, "  K %d / D %d / A %d | K/D %.2f | avg score %.1f\n",
		s.TotalKills, s.TotalDeaths, s.TotalAssists, s.AvgKDRatio, s.AvgScore)
	fmt.Fprintf(a.out, "  damage dealt %d / taken %d\n", s.TotalDamageDealt, s.TotalDamageTaken)
}

func (a *app) renderBattleDetails(det *domain.BattleDetails) {
	ranked := "casual"
	if det.IsRanked {
		ranked = "ranked"
	}
	fmt.Fprintf(a.out, "Battle %d — map %d, mode %d, %s\n", det.ID, det.MapID, det.ModeID, ranked)
	if det.StartedAt != "" || det.EndedAt != "" {
		fmt.Fprintf(a.out, "  %s → %s\n", det.StartedAt, det.EndedAt)
	}
	for _, t := range det.Teams {
		winner := ""
		if t.IsWinner {
			winner = " (winner)"
		}
		fmt.Fprintf(a.out, "  Team %d: %s%s\n", t.TeamIndex, t.Name, winner)
	}
	if len(det.PlayersStats) == 0 {
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  PLAYER\tK\tD\tA\tHS\tSCORE\tDMG+\tDMG-")
	for _, ps := range det.PlayersStats {
		fmt.Fprintf(w, "  %d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			ps.PlayerID, ps.Kills, ps.Deaths, ps.Assists, ps.Headshots,
			ps.Score, ps.DamageDealt, ps.DamageTaken)
	}
	w.Flush()
}

func (a *app) renderStats(st *service.PlayerStats, rankedOnly bool) {
	scope := "all battles"
	if rankedOnly {
		scope = "ranked only"
	}
	s := st.Summary
	fmt.Fprintf(a.out, "Player %d (%s)\n", s.PlayerID, scope)
	fmt.Fprintf(a.out, "  battles %d | W %d / L %d / D %d | win rate %.1f%%\n",
		s.TotalBattles, s.Wins, s.Losses, s.Draws, s.WinRate*100)
	fmt.Fprintf(a.out, "  K %d / D %d / A %d | K/D %.2f | avg score %.1f\n",
		s.TotalKills, s.TotalDeaths, s.TotalAssists, s.AvgKDRatio, s.AvgScore)

	if len(st.Maps) > 0 {
		fmt.Fprintln(a.out, "Maps:")
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "  MAP\tBATTLES\tW\tL\tD\tWIN%\tAVG K\tAVG D\tAVG SCORE")
		for _, m := range st.Maps {
			name := m.MapName
			if name == "" {
				name = fmt.Sprintf("%d", m.MapID)
			}
			fmt.Fprintf(w, "  %s\t%d\t%d\t%d\t%d\t%.1f%%\t%.2f\t%.2f\t%.1f\n",
				name, m.Battles, m.Wins, m.Losses, m.Draws,
				m.WinRate*100, m.AvgKills, m.AvgDeaths, m.AvgScore)
		}
		w.Flush()
	}

	if len(st.Weapons) > 0 {
		fmt.Fprintln(a.out, "Weapons:")
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "  WEAPON\tKILLS\tHS\tACCURACY\tUSES")
		for _, wp := range st.Weapons {
			name := wp.WeaponName
			if name == "" {
				name = fmt.Sprintf("%d", wp.WeaponID)
			}
			fmt.Fprintf(w, "  %s\t%d\t%d\t%.1f%%\t%d\n",
				name, wp.Kills, wp.Headshots, wp.Accuracy*100, wp.UsageCount)
		}
		w.Flush()
	}
}
