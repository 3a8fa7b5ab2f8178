// Package hub keeps the registry of live sessions by join code.
package hub

import (
	"context"

	"github.com/guardsofatlantis/companion-backend/internal/lobby"
)

type HubMsg interface{ isHubMsg() }

type CreateSession struct {
	Code  string
	Reply chan *lobby.Lobby
}

type GetSession struct {
	Code  string
	Reply chan *lobby.Lobby
}

type EnsureSession struct {
	Code  string
	Reply chan *lobby.Lobby
}

type RemoveSession struct {
	Code string
}

type ShutdownHub struct{}

func (CreateSession) isHubMsg() {}
func (GetSession) isHubMsg()    {}
func (EnsureSession) isHubMsg() {}
func (RemoveSession) isHubMsg() {}
func (ShutdownHub) isHubMsg()   {}

// Factory builds a fresh session; the hub stays ignorant of lobby wiring.
type Factory func(ctx context.Context) *lobby.Lobby

type Hub struct {
	inbox    chan HubMsg
	sessions map[string]*lobby.Lobby
	factory  Factory
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewHub(parent context.Context, factory Factory) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:    make(chan HubMsg, 64),
		sessions: make(map[string]*lobby.Lobby),
		factory:  factory,
		ctx:      ctx,
		cancel:   cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case CreateSession:
				if lb := h.sessions[msg.Code]; lb != nil {
					msg.Reply <- lb
					break
				}
				lb := h.factory(h.ctx)
				h.sessions[msg.Code] = lb
				msg.Reply <- lb

			case GetSession:
				msg.Reply <- h.sessions[msg.Code] // May be nil

			case EnsureSession:
				if lb := h.sessions[msg.Code]; lb != nil {
					msg.Reply <- lb
					break
				}
				lb := h.factory(h.ctx)
				h.sessions[msg.Code] = lb
				msg.Reply <- lb

			case RemoveSession:
				delete(h.sessions, msg.Code)

			case ShutdownHub:
				for _, lb := range h.sessions {
					lb.Inbox() <- lobby.Shutdown{}
				}
				clear(h.sessions)
				h.cancel()
			}
		}
	}
}
