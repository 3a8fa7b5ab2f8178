package engine

import "testing"

func playingState(t *testing.T, length GameLength, players int) GameState {
	t.Helper()
	s := NewGameState(length, players, TeamTitans)
	_, s, err := ApplyClock(s, ClockCommand{Type: CmdStartStrategy})
	if err != nil {
		t.Fatalf("start strategy: %v", err)
	}
	return s
}

func mustClock(t *testing.T, s GameState, cmd ClockCommand) ([]Event, GameState) {
	t.Helper()
	events, ns, err := ApplyClock(s, cmd)
	if err != nil {
		t.Fatalf("%s: %v", cmd.Type, err)
	}
	return events, ns
}

func TestNewGameStateInitialPosition(t *testing.T) {
	s := NewGameState(LengthLong, 8, TeamAtlanteans)
	if s.Round != 1 || s.Turn != 1 {
		t.Fatalf("want round 1 turn 1, got %d/%d", s.Round, s.Turn)
	}
	if s.Phase != PhaseSetup || s.ActiveHero != -1 {
		t.Fatalf("unexpected initial phase state: %+v", s)
	}
	if s.Lives[TeamTitans] != 6 || s.Lives[TeamAtlanteans] != 6 {
		t.Fatalf("long 8-player game starts at 6 lives, got %+v", s.Lives)
	}
	if !s.MultiLane {
		t.Fatalf("8 players should play double lanes")
	}
}

func TestTurnRollover(t *testing.T) {
	s := playingState(t, LengthQuick, 4)
	for i := 0; i < TurnsPerRound-1; i++ {
		_, s = mustClock(t, s, ClockCommand{Type: CmdStartNextTurn})
		if s.Round != 1 {
			t.Fatalf("round advanced early at turn %d", s.Turn)
		}
	}
	events, s := mustClock(t, s, ClockCommand{Type: CmdStartNextTurn})
	if s.Round != 2 || s.Turn != 1 {
		t.Fatalf("after four turn advances: want round 2 turn 1, got %d/%d", s.Round, s.Turn)
	}
	if !ContainsEvent(events, EvtRoundAdvanced) {
		t.Fatalf("expected EvtRoundAdvanced")
	}
	if s.Phase != PhaseStrategy || len(s.Completed) != 0 || s.AllMoved {
		t.Fatalf("next turn must reset phase state: %+v", s)
	}
}

func TestLifeFloorsAtZero(t *testing.T) {
	s := playingState(t, LengthQuick, 4) // 4 lives each
	_, s = mustClock(t, s, ClockCommand{Type: CmdAdjustTeamLife, Team: TeamTitans, Delta: -3})
	if s.Lives[TeamTitans] != 1 {
		t.Fatalf("want 1 life, got %d", s.Lives[TeamTitans])
	}
	_, s = mustClock(t, s, ClockCommand{Type: CmdAdjustTeamLife, Team: TeamTitans, Delta: -5})
	if s.Lives[TeamTitans] != 0 {
		t.Fatalf("lives must floor at 0, got %d", s.Lives[TeamTitans])
	}
	// No ceiling.
	_, s = mustClock(t, s, ClockCommand{Type: CmdAdjustTeamLife, Team: TeamTitans, Delta: 10})
	if s.Lives[TeamTitans] != 10 {
		t.Fatalf("want 10 lives, got %d", s.Lives[TeamTitans])
	}
}

func TestWaveSaturatesAndChecksLayout(t *testing.T) {
	s := playingState(t, LengthQuick, 4) // single lane, 3 waves

	if _, _, err := ApplyClock(s, ClockCommand{Type: CmdIncrementWave, Lane: LaneTop}); err != ErrUnknownLane {
		t.Fatalf("top lane in single layout: want ErrUnknownLane, got %v", err)
	}

	for i := 0; i < 2; i++ {
		_, s = mustClock(t, s, ClockCommand{Type: CmdIncrementWave, Lane: LaneSingle})
	}
	if s.Waves[LaneSingle].Current != 3 {
		t.Fatalf("want wave 3, got %d", s.Waves[LaneSingle].Current)
	}

	// Saturated increments absorb silently with no events.
	events, ns, err := ApplyClock(s, ClockCommand{Type: CmdIncrementWave, Lane: LaneSingle})
	if err != nil || len(events) != 0 {
		t.Fatalf("saturated increment: events=%v err=%v", events, err)
	}
	if ns.Waves[LaneSingle].Current != 3 {
		t.Fatalf("wave moved past total: %d", ns.Waves[LaneSingle].Current)
	}
}

func TestCompletedSetTurnFlow(t *testing.T) {
	s := playingState(t, LengthQuick, 4)
	_, s = mustClock(t, s, ClockCommand{Type: CmdEndStrategy})
	if s.Phase != PhaseMove {
		t.Fatalf("want move phase, got %s", s.Phase)
	}

	// Players may act in any order.
	for i, player := range []int{2, 0, 3} {
		_, s = mustClock(t, s, ClockCommand{Type: CmdSelectPlayer, Player: player})
		if s.ActiveHero != player {
			t.Fatalf("want active %d, got %d", player, s.ActiveHero)
		}
		_, s = mustClock(t, s, ClockCommand{Type: CmdMarkPlayerComplete, Player: player})
		if s.ActiveHero != -1 {
			t.Fatalf("completion must clear the active player")
		}
		if s.Phase != PhaseMove {
			t.Fatalf("turn ended after %d completions", i+1)
		}
	}

	events, s := mustClock(t, s, ClockCommand{Type: CmdMarkPlayerComplete, Player: 1})
	if s.Phase != PhaseTurnEnd || !s.AllMoved {
		t.Fatalf("covering the roster must end the turn: %+v", s)
	}
	if !ContainsEvent(events, EvtAllPlayersMoved) {
		t.Fatalf("expected EvtAllPlayersMoved")
	}
}

func TestSelectPlayerGuards(t *testing.T) {
	s := playingState(t, LengthQuick, 4)
	_, s = mustClock(t, s, ClockCommand{Type: CmdEndStrategy})
	_, s = mustClock(t, s, ClockCommand{Type: CmdSelectPlayer, Player: 1})

	if _, _, err := ApplyClock(s, ClockCommand{Type: CmdSelectPlayer, Player: 2}); err != ErrWrongTurn {
		t.Fatalf("second select while one is active: want ErrWrongTurn, got %v", err)
	}
	if _, _, err := ApplyClock(s, ClockCommand{Type: CmdSelectPlayer, Player: 7}); err != ErrUnknownPlayer {
		t.Fatalf("out of range: want ErrUnknownPlayer, got %v", err)
	}

	_, s = mustClock(t, s, ClockCommand{Type: CmdMarkPlayerComplete, Player: 1})
	if _, _, err := ApplyClock(s, ClockCommand{Type: CmdSelectPlayer, Player: 1}); err != ErrWrongTurn {
		t.Fatalf("selecting a completed player: want ErrWrongTurn, got %v", err)
	}
	if _, _, err := ApplyClock(s, ClockCommand{Type: CmdMarkPlayerComplete, Player: 1}); err != ErrWrongTurn {
		t.Fatalf("double completion: want ErrWrongTurn, got %v", err)
	}
}

func TestEndStrategyRequiresStrategyPhase(t *testing.T) {
	s := NewGameState(LengthQuick, 4, TeamTitans) // setup phase
	if _, _, err := ApplyClock(s, ClockCommand{Type: CmdEndStrategy}); err != ErrWrongPhase {
		t.Fatalf("want ErrWrongPhase, got %v", err)
	}
}

func TestFlipCoinToggles(t *testing.T) {
	s := playingState(t, LengthQuick, 4)
	_, s = mustClock(t, s, ClockCommand{Type: CmdFlipCoin})
	if s.CoinSide != TeamAtlanteans {
		t.Fatalf("want atlanteans, got %s", s.CoinSide)
	}
	_, s = mustClock(t, s, ClockCommand{Type: CmdFlipCoin})
	if s.CoinSide != TeamTitans {
		t.Fatalf("want titans, got %s", s.CoinSide)
	}
}

func TestApplyClockDoesNotAliasMaps(t *testing.T) {
	s := playingState(t, LengthQuick, 4)
	_, ns := mustClock(t, s, ClockCommand{Type: CmdAdjustTeamLife, Team: TeamTitans, Delta: -1})
	if s.Lives[TeamTitans] != 4 {
		t.Fatalf("previous state mutated: %d", s.Lives[TeamTitans])
	}
	if ns.Lives[TeamTitans] != 3 {
		t.Fatalf("new state wrong: %d", ns.Lives[TeamTitans])
	}
}
