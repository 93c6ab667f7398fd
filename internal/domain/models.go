package domain

// Modelos que devuelve la API de estadísticas. Son snapshots de solo
// lectura: el cliente nunca recalcula agregados, solo los muestra.
// Las fechas quedan como string porque el backend emite datetimes ISO
// sin zona horaria y time.Time no los acepta.

type Game struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Player struct {
	ID        int64  `json:"id"`
	GameID    int64  `json:"game_id"`
	Nickname  string `json:"nickname"`
	UserID    *int64 `json:"user_id,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

type Battle struct {
	ID        int64  `json:"id"`
	MapID     int64  `json:"map_id"`
	ModeID    int64  `json:"mode_id"`
	IsRanked  bool   `json:"is_ranked"`
	StartedAt string `json:"started_at,omitempty"`
	EndedAt   string `json:"ended_at,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

type BattleTeam struct {
	ID        int64  `json:"id"`
	BattleID  int64  `json:"battle_id"`
	TeamIndex int    `json:"team_index"`
	Name      string `json:"name"`
	IsWinner  bool   `json:"is_winner"`
}

type WeaponLine struct {
	WeaponID   int64 `json:"weapon_id"`
	ShotsFired int   `json:"shots_fired"`
	Hits       int   `json:"hits"`
	Kills      int   `json:"kills"`
	Headshots  int   `json:"headshots"`
}

type BattlePlayerStats struct {
	ID          int64        `json:"id"`
	BattleID    int64        `json:"battle_id"`
	PlayerID    int64        `json:"player_id"`
	TeamID      int64        `json:"team_id"`
	Kills       int          `json:"kills"`
	Deaths      int          `json:"deaths"`
	Assists     int          `json:"assists"`
	DamageDealt int          `json:"damage_dealt"`
	DamageTaken int          `json:"damage_taken"`
	Score       int          `json:"score"`
	Headshots   int          `json:"headshots"`
	Result      int          `json:"result"` // -1 derrota, 0 empate, 1 victoria
	WeaponStats []WeaponLine `json:"weapon_stats"`
}

// BattleDetails es el detalle completo de un combate, con equipos y
// estadísticas por jugador.
type BattleDetails struct {
	Battle
	ExternalMatchID string              `json:"external_match_id,omitempty"`
	Teams           []BattleTeam        `json:"teams"`
	PlayersStats    []BattlePlayerStats `json:"players_stats"`
}

type PlayerStatsSummary struct {
	PlayerID         int64   `json:"player_id"`
	TotalBattles     int     `json:"total_battles"`
	Wins             int     `json:"wins"`
	Losses           int     `json:"losses"`
	Draws            int     `json:"draws"`
	WinRate          float64 `json:"win_rate"`
	TotalKills       int     `json:"total_kills"`
	TotalDeaths      int     `json:"total_deaths"`
	TotalAssists     int     `json:"total_assists"`
	AvgKDRatio       float64 `json:"avg_kd_ratio"`
	TotalDamageDealt int     `json:"total_damage_dealt"`
	TotalDamageTaken int     `json:"total_damage_taken"`
	AvgScore         float64 `json:"avg_score"`
}

// PlayerSummary agrupa ficha + agregados, tal como lo devuelve
// /players/{id}/summary.
type PlayerSummary struct {
	Player Player             `json:"player"`
	Stats  PlayerStatsSummary `json:"stats"`
}

type MapStat struct {
	MapID     int64   `json:"map_id"`
	MapName   string  `json:"map_name,omitempty"`
	Battles   int     `json:"battles"`
	Wins      int     `json:"wins"`
	Losses    int     `json:"losses"`
	Draws     int     `json:"draws"` // ausente en el JSON ⇒ 0
	WinRate   float64 `json:"win_rate"`
	AvgKills  float64 `json:"avg_kills"`
	AvgDeaths float64 `json:"avg_deaths"`
	AvgScore  float64 `json:"avg_score"`
}

type WeaponStat struct {
	WeaponID   int64   `json:"weapon_id"`
	WeaponName string  `json:"weapon_name,omitempty"`
	Kills      int     `json:"kills"`
	Headshots  int     `json:"headshots"`
	Accuracy   float64 `json:"accuracy"` // hits / shots_fired
	UsageCount int     `json:"usage_count"`
}

// Page es una ventana contigua [offset, offset+len(Items)) de la
// colección total ordenada por el servidor.
type Page[T any] struct {
	Total int `json:"total"`
	Items []T `json:"items"`
}

// BattleFilter son los filtros server-side del listado de combates.
// Los punteros distinguen "sin filtro" de "filtrar por false/0".
type BattleFilter struct {
	PlayerID *int64
	Ranked   *bool
	Offset   int
	Limit    int
}
