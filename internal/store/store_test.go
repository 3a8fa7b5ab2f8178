package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/guardsofatlantis/companion-backend/internal/engine"
)

// Integration tests run only against a real database:
//
//	TEST_DATABASE_URL=postgres://... go test ./internal/store
func testStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	s, err := Open(dsn, zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestRecordAndListMatches(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	m := &Match{
		Date:        time.Now(),
		WinningTeam: string(engine.TeamTitans),
		GameLength:  string(engine.LengthQuick),
		Players: []MatchPlayer{
			{PlayerID: 1, Name: "ann", Team: string(engine.TeamTitans), HeroID: "arien", HeroName: "Arien"},
			{PlayerID: 2, Name: "ben", Team: string(engine.TeamAtlanteans), HeroID: "brogan", HeroName: "Brogan"},
		},
	}
	require.NoError(t, s.RecordMatch(ctx, m))
	assert.NotZero(t, m.ID)

	matches, err := s.RecentMatches(ctx, 5)
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	assert.Len(t, matches[0].Players, 2)

	// Won is derived at record time.
	for _, p := range matches[0].Players {
		assert.Equal(t, p.Team == matches[0].WinningTeam, p.Won)
	}
}

func TestHeroSummary(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	rows, err := s.HeroSummary(ctx)
	require.NoError(t, err)
	for _, row := range rows {
		assert.LessOrEqual(t, row.Wins, row.Games)
		assert.InDelta(t, float64(row.Wins)/float64(row.Games), row.WinRate, 1e-9)
	}
}

func TestBuildMatchShapesRecord(t *testing.T) {
	hero := &engine.Hero{ID: "wasp", Name: "Wasp", Roles: []string{"Melee", "Tempo"}}
	roster := []engine.Player{
		{ID: 1, Name: "ann", Team: engine.TeamTitans, Hero: hero},
		{ID: 2, Name: "ben", Team: engine.TeamAtlanteans},
	}

	m := BuildMatch(roster, engine.TeamAtlanteans, engine.LengthLong, true)
	assert.Equal(t, string(engine.TeamAtlanteans), m.WinningTeam)
	assert.Equal(t, string(engine.LengthLong), m.GameLength)
	assert.True(t, m.DoubleLanes)
	require.Len(t, m.Players, 2)
	assert.Equal(t, "wasp", m.Players[0].HeroID)
	assert.Equal(t, "Melee,Tempo", m.Players[0].HeroRoles)
	assert.Empty(t, m.Players[1].HeroID)
}
