package ws

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/coder/websocket"

	"github.com/guardsofatlantis/companion-backend/internal/engine"
	"github.com/guardsofatlantis/companion-backend/internal/hub"
	"github.com/guardsofatlantis/companion-backend/internal/lobby"
	"github.com/guardsofatlantis/companion-backend/internal/types"
)

func Handler(h *hub.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			return
		}

		reply := make(chan *lobby.Lobby, 1)
		h.Inbox() <- hub.GetSession{Code: code, Reply: reply}
		lb := <-reply
		if lb == nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		out := make(chan lobby.Snapshot, 8)
		clientID := randID(6)

		lb.Inbox() <- lobby.Join{ClientID: clientID, Outbox: out}
		defer func() { lb.Inbox() <- lobby.Leave{ClientID: clientID} }()

		// Writer goroutine
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for snap := range out {
				msg := types.ServerMessage{Type: "StateSnapshot", Version: snap.Version, State: &snap.State}
				payload, _ := json.Marshal(msg)
				ctx, cancel := context.WithTimeout(writeCtx, 3*time.Second)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
			}
		}()

		// Reader loop. Reads stay open for as long as the session does; the
		// game clock can sit idle well past any sane read deadline.
		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				_ = conn.Write(r.Context(), websocket.MessageText,
					[]byte(`{"type":"Error","error":"bad json"}`))
				continue
			}

			cmd, ok := toCommand(cm)
			if !ok {
				_ = conn.Write(r.Context(), websocket.MessageText,
					[]byte(`{"type":"Error","error":"unknown type"}`))
				continue
			}

			lb.Inbox() <- lobby.FromClient{Cmd: cmd}
		}
	}
}

// toCommand translates a wire message into a lobby command. Unknown command
// types are reported to the sender; malformed enum values pass through and
// are rejected inside the session, which keeps validation in one place.
func toCommand(m types.ClientMessage) (lobby.Command, bool) {
	switch m.Type {
	case lobby.CmdAddPlayer, lobby.CmdRemovePlayer, lobby.CmdRenamePlayer,
		lobby.CmdSetLength, lobby.CmdSetExpansions, lobby.CmdFlipCoin,
		lobby.CmdStartDraft, lobby.CmdPickHero, lobby.CmdBanHero,
		lobby.CmdStartGame, lobby.CmdStartStrategy, lobby.CmdEndStrategy,
		lobby.CmdSelectPlayer, lobby.CmdMarkPlayerComplete, lobby.CmdStartNextTurn,
		lobby.CmdAdjustTeamLife, lobby.CmdIncrementWave,
		lobby.CmdPauseTimer, lobby.CmdResumeTimer, lobby.CmdRecordMatch:
	default:
		return lobby.Command{}, false
	}

	return lobby.Command{
		Type:       m.Type,
		Name:       m.Name,
		PlayerID:   m.PlayerID,
		HeroID:     m.HeroID,
		Mode:       engine.DraftMode(m.Mode),
		Length:     engine.GameLength(m.Length),
		Expansions: m.Expansions,
		Team:       engine.Team(m.Team),
		Delta:      m.Delta,
		Lane:       engine.Lane(m.Lane),
		Player:     m.Player,
		Timer:      m.Timer,
		Winner:     engine.Team(m.Winner),
	}, true
}

func randID(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[rand.Intn(len(charset))]
	}
	return string(b)
}
