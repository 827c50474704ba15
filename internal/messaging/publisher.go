package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pixil98/go-gamescript/internal/game"
)

const DefaultClockSubject = "gamescript.clock"

// ClockEvent is published once per driver tick.
type ClockEvent struct {
	GameTime uint32 `json:"game_time"`
	Hour     uint32 `json:"hour"`
}

// ClockPublisher broadcasts the game clock. It is a driver manager.
type ClockPublisher struct {
	server  *NatsServer
	game    *game.Game
	subject string
}

func NewClockPublisher(server *NatsServer, g *game.Game, subject string) *ClockPublisher {
	if subject == "" {
		subject = DefaultClockSubject
	}
	return &ClockPublisher{server: server, game: g, subject: subject}
}

// Tick publishes the current game time. Ticks before the server is up are
// skipped.
func (p *ClockPublisher) Tick(ctx context.Context) error {
	var ev ClockEvent
	p.game.Do(func() {
		ev.GameTime = p.game.GameTime()
	})
	ev.Hour = (ev.GameTime / game.TicksPerHour) % 24

	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encoding clock event: %w", err)
	}
	err = p.server.Publish(p.subject, data)
	if errors.Is(err, ErrNotStarted) {
		return nil
	}
	return err
}
