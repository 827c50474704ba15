package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-gamescript/internal/display"
	"github.com/pixil98/go-gamescript/internal/messaging"
	"github.com/pixil98/go-gamescript/internal/script"
)

type QueryConfig struct {
	Subject        string `json:"subject"`
	ClockSubject   string `json:"clock_subject"`
	ResultTemplate string `json:"result_template"`
}

func (c *QueryConfig) validate() error {
	el := errors.NewErrorList()

	if c.ResultTemplate != "" {
		if err := display.ValidateTemplate(c.ResultTemplate); err != nil {
			el.Add(fmt.Errorf("result_template: %w", err))
		}
	}

	return el.Err()
}

func (c *QueryConfig) buildResolveService(server *messaging.NatsServer, res *script.Resolver) *messaging.ResolveService {
	var opts []messaging.ResolveServiceOpt
	if c.Subject != "" {
		opts = append(opts, messaging.WithSubject(c.Subject))
	}
	if c.ResultTemplate != "" {
		opts = append(opts, messaging.WithResultTemplate(c.ResultTemplate))
	}
	return messaging.NewResolveService(server, res, opts...)
}

type ScriptsConfig struct {
	// Path is a directory of Lua trigger scripts. Optional.
	Path string `json:"path"`
}

func (c *ScriptsConfig) validate() error {
	if c.Path == "" {
		return nil
	}
	info, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("scripts: invalid path %q: %w", c.Path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("scripts: path %q is not a directory", c.Path)
	}
	return nil
}
