// Package store records finished matches and serves the read side of the
// statistics dashboard.
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/guardsofatlantis/companion-backend/internal/engine"
)

type Match struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Date        time.Time     `gorm:"index" json:"date"`
	WinningTeam string        `json:"winningTeam"`
	GameLength  string        `json:"gameLength"`
	DoubleLanes bool          `json:"doubleLanes"`
	Players     []MatchPlayer `gorm:"constraint:OnDelete:CASCADE" json:"players"`
}

type MatchPlayer struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	MatchID  uint   `gorm:"index" json:"-"`
	PlayerID int    `json:"playerId"`
	Name     string `json:"name"`
	Team     string `json:"team"`
	HeroID   string `json:"heroId"`
	HeroName string `json:"heroName"`
	// Roles are stored comma-joined; the dashboard splits them back out.
	HeroRoles string `json:"heroRoles"`
	Won       bool   `gorm:"index" json:"won"`
}

type HeroSummary struct {
	HeroID   string  `json:"heroId"`
	HeroName string  `json:"heroName"`
	Games    int     `json:"games"`
	Wins     int     `json:"wins"`
	WinRate  float64 `json:"winRate"`
}

type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

// Open connects to postgres and migrates the match tables.
func Open(dsn string, log *zap.Logger) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&Match{}, &MatchPlayer{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// RecordMatch persists one finished match. Failures are recoverable: the
// caller keeps its in-memory session and may retry.
func (s *Store) RecordMatch(ctx context.Context, m *Match) error {
	if m.Date.IsZero() {
		m.Date = time.Now()
	}
	for i := range m.Players {
		m.Players[i].Won = m.Players[i].Team == m.WinningTeam
	}
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		s.log.Warn("record match failed", zap.Error(err))
		return fmt.Errorf("record match: %w", err)
	}
	s.log.Info("match recorded",
		zap.Uint("id", m.ID),
		zap.String("winner", m.WinningTeam),
		zap.Int("players", len(m.Players)))
	return nil
}

// RecentMatches returns up to limit matches, newest first, with players.
func (s *Store) RecentMatches(ctx context.Context, limit int) ([]Match, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var matches []Match
	err := s.db.WithContext(ctx).
		Preload("Players").
		Order("date DESC").
		Limit(limit).
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return matches, nil
}

// HeroSummary aggregates per-hero games and wins across all recorded
// matches, most played first.
func (s *Store) HeroSummary(ctx context.Context) ([]HeroSummary, error) {
	var rows []HeroSummary
	err := s.db.WithContext(ctx).
		Model(&MatchPlayer{}).
		Select("hero_id, hero_name, COUNT(*) AS games, COUNT(*) FILTER (WHERE won) AS wins").
		Group("hero_id, hero_name").
		Order("games DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("hero summary: %w", err)
	}
	for i := range rows {
		if rows[i].Games > 0 {
			rows[i].WinRate = float64(rows[i].Wins) / float64(rows[i].Games)
		}
	}
	return rows, nil
}

// BuildMatch shapes the record the persistence contract expects from the
// terminal game and roster state.
func BuildMatch(roster []engine.Player, winner engine.Team, length engine.GameLength, doubleLanes bool) *Match {
	m := &Match{
		Date:        time.Now(),
		WinningTeam: string(winner),
		GameLength:  string(length),
		DoubleLanes: doubleLanes,
	}
	for _, p := range roster {
		mp := MatchPlayer{
			PlayerID: p.ID,
			Name:     p.Name,
			Team:     string(p.Team),
		}
		if p.Hero != nil {
			mp.HeroID = p.Hero.ID
			mp.HeroName = p.Hero.Name
			mp.HeroRoles = strings.Join(p.Hero.Roles, ",")
		}
		m.Players = append(m.Players, mp)
	}
	return m
}
