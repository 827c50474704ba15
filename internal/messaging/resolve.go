package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/pixil98/go-gamescript/internal/display"
	"github.com/pixil98/go-gamescript/internal/game"
	"github.com/pixil98/go-gamescript/internal/script"
)

const (
	DefaultResolveSubject = "gamescript.resolve"
	resolveQueue          = "resolvers"
)

// ResolveRequest asks for an object expression to be resolved on behalf of
// the named sender.
type ResolveRequest struct {
	Sender string `json:"sender"`
	// Area narrows the sender lookup to one area.
	Area   string         `json:"area,omitempty"`
	Object *script.Object `json:"object,omitempty"`
	Flags  []string       `json:"flags,omitempty"`
	Anyone bool           `json:"anyone,omitempty"`
	// Single picks one scriptable the way an action picks its target.
	Single bool `json:"single,omitempty"`
	// Stored goes through the sender's stored action target.
	Stored bool `json:"stored,omitempty"`
}

type ResolvedTarget struct {
	Name     string        `json:"name"`
	Type     string        `json:"type"`
	GlobalID game.GlobalID `json:"global_id"`
	// InstanceId is set for actors only.
	InstanceId string `json:"instance_id,omitempty"`
	Distance   int    `json:"distance"`
}

type ResolveResponse struct {
	RequestId string           `json:"request_id"`
	Object    string           `json:"object"`
	Targets   []ResolvedTarget `json:"targets"`
	Summary   string           `json:"summary,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// ResolveService answers ResolveRequests over NATS request/reply.
type ResolveService struct {
	server   *NatsServer
	resolver *script.Resolver
	subject  string
	template string
}

type ResolveServiceOpt func(*ResolveService)

// WithSubject sets the subject requests arrive on.
func WithSubject(subject string) ResolveServiceOpt {
	return func(s *ResolveService) {
		s.subject = subject
	}
}

// WithResultTemplate sets the template used for response summaries.
func WithResultTemplate(tmpl string) ResolveServiceOpt {
	return func(s *ResolveService) {
		s.template = tmpl
	}
}

func NewResolveService(server *NatsServer, resolver *script.Resolver, opts ...ResolveServiceOpt) *ResolveService {
	s := &ResolveService{
		server:   server,
		resolver: resolver,
		subject:  DefaultResolveSubject,
		template: display.DefaultResultTemplate,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ResolveService) Start(ctx context.Context) error {
	if err := s.server.WaitReady(ctx); err != nil {
		return nil
	}

	unsubscribe, err := s.server.Reply(s.subject, resolveQueue, s.handle)
	if err != nil {
		return fmt.Errorf("subscribing to %s: %w", s.subject, err)
	}
	slog.InfoContext(ctx, "resolve service listening", "subject", s.subject)

	<-ctx.Done()
	unsubscribe()
	return nil
}

func (s *ResolveService) handle(data []byte) []byte {
	var req ResolveRequest
	var resp ResolveResponse
	if err := json.Unmarshal(data, &req); err != nil {
		resp = ResolveResponse{
			RequestId: uuid.NewString(),
			Targets:   []ResolvedTarget{},
			Error:     fmt.Sprintf("decoding request: %v", err),
		}
	} else {
		resp = s.Resolve(req)
	}

	out, err := json.Marshal(resp)
	if err != nil {
		slog.Error("encoding resolve response", "request_id", resp.RequestId, "error", err)
		return []byte(`{"error":"encoding response"}`)
	}
	return out
}

// Resolve runs req against the game while holding the game lock.
func (s *ResolveService) Resolve(req ResolveRequest) ResolveResponse {
	resp := ResolveResponse{
		RequestId: uuid.NewString(),
		Object:    "[ANYONE]",
		Targets:   []ResolvedTarget{},
	}
	if req.Object != nil {
		resp.Object = req.Object.String()
	}

	flags, unknown := game.ParseGAFlags(req.Flags)
	if len(unknown) > 0 {
		resp.Error = fmt.Sprintf("unknown flags: %s", strings.Join(unknown, ", "))
		return resp
	}

	g := s.resolver.Game()
	g.Do(func() {
		sender, err := script.FindSender(g, req.Area, req.Sender)
		if err != nil {
			resp.Error = err.Error()
			return
		}

		var tgts *script.Targets
		switch {
		case req.Stored:
			tgts = singleResult(sender, s.resolver.GetStoredActorFromObject(sender, req.Object, flags, req.Anyone))
		case req.Single:
			tgts = singleResult(sender, s.resolver.GetScriptableFromObject(sender, req.Object, flags, req.Anyone))
		default:
			tgts = s.resolver.Resolve(sender, req.Object, flags, req.Anyone)
		}

		if tgts != nil {
			for _, t := range tgts.All() {
				rt := ResolvedTarget{
					Name:     t.Scriptable.ScriptName(),
					Type:     t.Scriptable.Type().String(),
					GlobalID: t.Scriptable.GlobalID(),
					Distance: t.Distance,
				}
				if a, ok := game.AsActor(t.Scriptable); ok {
					rt.InstanceId = a.InstanceId
				}
				resp.Targets = append(resp.Targets, rt)
			}
		}

		summary, err := display.Summarize(s.template, display.NewResultSummary(sender, req.Object, tgts))
		if err != nil {
			resp.Error = fmt.Sprintf("rendering summary: %v", err)
			return
		}
		resp.Summary = summary
	})

	slog.Debug("resolved object", "request_id", resp.RequestId, "sender", req.Sender, "object", resp.Object, "targets", len(resp.Targets))
	return resp
}

func singleResult(sender, s game.Scriptable) *script.Targets {
	tgts := script.NewTargets()
	if s != nil {
		tgts.AddTarget(s, game.Distance(sender.Position(), s.Position()), 0)
	}
	return tgts
}
