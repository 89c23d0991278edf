// internal/server/hub.go
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"dead-end/internal/app"
	"dead-end/internal/config"
	"dead-end/pkg/grid"
)

const writeWait = 10 * time.Second

// Command — дискретная команда от внешнего слоя ввода/UI. Клавиши и клики
// транслируются в эти команды на стороне клиента.
type Command struct {
	Type  string `json:"type"` // start_game | place_tower | remove_tower | start_wave | pause | resume
	Row   int    `json:"row,omitempty"`
	Col   int    `json:"col,omitempty"`
	Tower string `json:"tower,omitempty"`
	Seq   uint64 `json:"seq,omitempty"` // Эхо для сопоставления подтверждений
}

// commandAck — синхронное подтверждение команды: успех или код отказа.
// Отказ — видимый ответ, не молчаливый no-op.
type commandAck struct {
	Type  string `json:"type"` // "ack"
	Seq   uint64 `json:"seq,omitempty"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// stateMessage — снапшот состояния, рассылаемый подписчикам каждый тик.
type stateMessage struct {
	Type     string       `json:"type"` // "state"
	Snapshot app.Snapshot `json:"snapshot"`
}

type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *subscriber) send(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(v)
}

type pendingCommand struct {
	cmd Command
	sub *subscriber
}

// Hub владеет матчем и всеми подписчиками. Команды из сокетов копятся в
// очереди и применяются на границе тика — мутации никогда не пересекаются
// с продвижением симуляции.
type Hub struct {
	mu          sync.Mutex
	game        *app.Game
	subscribers map[*subscriber]struct{}
	pending     []pendingCommand
	log         zerolog.Logger

	upgrader websocket.Upgrader
}

func NewHub(game *app.Game, log zerolog.Logger) *Hub {
	return &Hub{
		game:        game,
		subscribers: make(map[*subscriber]struct{}),
		log:         log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Run крутит цикл симуляции с фиксированным шагом до отмены контекста.
func (h *Hub) Run(ctx context.Context) {
	dt := 1.0 / float64(config.TickRate)
	ticker := time.NewTicker(time.Second / time.Duration(config.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.tick(dt)
		}
	}
}

func (h *Hub) tick(dt float64) {
	h.mu.Lock()
	drained := h.pending
	h.pending = nil

	acks := make([]struct {
		sub *subscriber
		ack commandAck
	}, 0, len(drained))
	for _, p := range drained {
		err := h.apply(p.cmd)
		ack := commandAck{Type: "ack", Seq: p.cmd.Seq, OK: err == nil}
		if err != nil {
			ack.Error = errorCode(err)
		}
		acks = append(acks, struct {
			sub *subscriber
			ack commandAck
		}{p.sub, ack})
	}

	h.game.Update(dt)
	snap := h.game.Snapshot()
	h.mu.Unlock()

	for _, a := range acks {
		if a.sub == nil {
			continue
		}
		if err := a.sub.send(a.ack); err != nil {
			h.dropSubscriber(a.sub)
		}
	}
	h.broadcast(stateMessage{Type: "state", Snapshot: snap})
}

// apply выполняет одну команду над матчем. Вызывается под мьютексом.
func (h *Hub) apply(cmd Command) error {
	switch cmd.Type {
	case "start_game":
		return h.game.StartGame()
	case "place_tower":
		return h.game.PlaceTower(grid.Cell{Row: cmd.Row, Col: cmd.Col}, cmd.Tower)
	case "remove_tower":
		return h.game.RemoveTower(grid.Cell{Row: cmd.Row, Col: cmd.Col})
	case "start_wave":
		return h.game.StartWave()
	case "pause":
		h.game.Pause()
		return nil
	case "resume":
		h.game.Resume()
		return nil
	default:
		return errUnknownCommand
	}
}

var errUnknownCommand = errors.New("server: unknown command type")

// errorCode переводит ошибку отклонения в стабильный код протокола.
func errorCode(err error) string {
	switch {
	case errors.Is(err, grid.ErrOccupied):
		return "OCCUPIED"
	case errors.Is(err, grid.ErrOutOfBounds):
		return "OUT_OF_BOUNDS"
	case errors.Is(err, grid.ErrEntryOrExit):
		return "IS_ENTRY_OR_EXIT"
	case errors.Is(err, grid.ErrEmpty):
		return "EMPTY"
	case errors.Is(err, app.ErrInsufficientFunds):
		return "INSUFFICIENT_FUNDS"
	case errors.Is(err, app.ErrWouldBlockPath):
		return "WOULD_BLOCK_PATH"
	case errors.Is(err, app.ErrWrongPhase):
		return "WRONG_PHASE"
	case errors.Is(err, app.ErrUnknownTower):
		return "UNKNOWN_TOWER"
	case errors.Is(err, errUnknownCommand):
		return "UNKNOWN_COMMAND"
	default:
		return "INTERNAL"
	}
}

// HandleWS подключает подписчика: апгрейд соединения, начальный снапшот,
// затем чтение команд до разрыва.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	sub := &subscriber{conn: conn}

	h.mu.Lock()
	h.subscribers[sub] = struct{}{}
	snap := h.game.Snapshot()
	h.mu.Unlock()

	if err := sub.send(stateMessage{Type: "state", Snapshot: snap}); err != nil {
		h.dropSubscriber(sub)
		return
	}

	go h.readLoop(sub)
}

func (h *Hub) readLoop(sub *subscriber) {
	defer h.dropSubscriber(sub)
	for {
		var cmd Command
		if err := sub.conn.ReadJSON(&cmd); err != nil {
			return
		}
		h.mu.Lock()
		h.pending = append(h.pending, pendingCommand{cmd: cmd, sub: sub})
		h.mu.Unlock()
	}
}

func (h *Hub) dropSubscriber(sub *subscriber) {
	h.mu.Lock()
	_, ok := h.subscribers[sub]
	delete(h.subscribers, sub)
	h.mu.Unlock()
	if ok {
		sub.conn.Close()
	}
}

func (h *Hub) broadcast(msg stateMessage) {
	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.subscribers))
	for sub := range h.subscribers {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		if err := sub.send(msg); err != nil {
			h.dropSubscriber(sub)
		}
	}
}

// Snapshot — срез состояния для HTTP-ручки внешнего debug-инструмента.
func (h *Hub) Snapshot() app.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.game.Snapshot()
}
