package command

import (
	"fmt"

	"github.com/pixil98/go-gamescript/internal/driver"
	"github.com/pixil98/go-gamescript/internal/luascript"
	"github.com/pixil98/go-gamescript/internal/messaging"
	"github.com/pixil98/go-gamescript/internal/script"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Load the world
	g, err := cfg.Storage.BuildGame(cfg.Rules.gameOpts()...)
	if err != nil {
		return nil, err
	}
	resolver := script.NewResolver(g, nil)

	// Setup messaging
	server, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}
	resolveService := cfg.Query.buildResolveService(server, resolver)

	// Load trigger scripts
	runner := luascript.NewRunner(resolver)
	if cfg.Scripts.Path != "" {
		if err := runner.LoadDir(cfg.Scripts.Path); err != nil {
			runner.Close()
			return nil, fmt.Errorf("loading scripts: %w", err)
		}
	}

	// Setup the game driver
	gameDriver := driver.NewGameDriver([]driver.Manager{
		g,
		runner,
		messaging.NewClockPublisher(server, g, cfg.Query.ClockSubject),
	}, driver.WithTickLength(cfg.tickInterval()))

	// Create a worker list
	return service.WorkerList{
		"driver":  gameDriver,
		"nats":    server,
		"resolve": resolveService,
	}, nil
}
