package display

import (
	"github.com/pixil98/go-gamescript/internal/game"
	"github.com/pixil98/go-gamescript/internal/script"
)

// DefaultResultTemplate renders a resolution as one sentence.
const DefaultResultTemplate = `{{ capitalize .Sender }} resolves {{ .Object }} to ` +
	`{{ if .Targets }}{{ range $i, $t := .Targets }}{{ if $i }}, {{ end }}{{ $t.Name }} ({{ $t.Type }}` +
	`{{ if $t.Actor }}, {{ $t.Group }}{{ end }}){{ end }}{{ else }}nothing{{ end }}.`

// TargetSummary is the template view of one target set entry.
type TargetSummary struct {
	Name     string
	Type     string
	GlobalID game.GlobalID
	X        int
	Y        int
	Distance int

	Actor bool
	Group string
	Level int
	HP    int
	MaxHP int
}

// ResultSummary is the template view of a resolved object expression.
type ResultSummary struct {
	Sender  string
	Object  string
	Targets []TargetSummary
}

func (r ResultSummary) Count() int {
	return len(r.Targets)
}

// NewResultSummary captures tgts in order. A nil obj is shown as [ANYONE].
func NewResultSummary(sender game.Scriptable, obj *script.Object, tgts *script.Targets) ResultSummary {
	r := ResultSummary{Object: "[ANYONE]"}
	if sender != nil {
		r.Sender = sender.ScriptName()
	}
	if obj != nil {
		r.Object = obj.String()
	}
	if tgts == nil {
		return r
	}

	for _, t := range tgts.All() {
		s := t.Scriptable
		ts := TargetSummary{
			Name:     s.ScriptName(),
			Type:     s.Type().String(),
			GlobalID: s.GlobalID(),
			X:        s.Position().X,
			Y:        s.Position().Y,
			Distance: t.Distance,
		}
		if a, ok := game.AsActor(s); ok {
			ts.Actor = true
			ts.Group = a.Group().String()
			ts.Level = a.GetXPLevel()
			ts.HP = a.CurrentHP
			ts.MaxHP = a.MaxHP
		}
		r.Targets = append(r.Targets, ts)
	}
	return r
}

// Summarize renders r with tmplStr, or DefaultResultTemplate when empty, and
// wraps the result.
func Summarize(tmplStr string, r ResultSummary) (string, error) {
	if tmplStr == "" {
		tmplStr = DefaultResultTemplate
	}
	s, err := ExpandTemplate(tmplStr, r)
	if err != nil {
		return "", err
	}
	return Wrap(s), nil
}
