package script

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pixil98/go-gamescript/internal/game"
)

const (
	// ObjectIDSCount is the number of IDS fields in an object expression.
	ObjectIDSCount = 7
	// MaxObjectNesting is the number of filter slots in an object expression.
	MaxObjectNesting = 5
	// GlobalIDSentinel in field 0 makes field 1 a literal global id.
	GlobalIDSentinel = -1
)

// IDSField indexes the IDS fields of an object expression.
type IDSField int

const (
	FieldEA IDSField = iota
	FieldGeneral
	FieldRace
	FieldClass
	FieldSpecific
	FieldGender
	FieldAlignment
)

var idsFieldNames = [ObjectIDSCount]string{"ea", "general", "race", "class", "specific", "gender", "alignment"}

func (f IDSField) String() string {
	if f < 0 || int(f) >= ObjectIDSCount {
		return fmt.Sprintf("ids(%d)", int(f))
	}
	return idsFieldNames[f]
}

// Object is a parsed object expression such as NearestEnemyOf(Myself) or
// [ENEMY.0.0.MAGE_ALL]. Filters run in slot order: the innermost filter of
// the written form comes first.
type Object struct {
	Name    string
	Rect    game.Rect
	Fields  [ObjectIDSCount]int
	Filters [MaxObjectNesting]FilterID
}

// NewGlobalIDObject builds an expression that resolves to exactly the
// scriptable with the given global id.
func NewGlobalIDObject(id game.GlobalID) *Object {
	o := &Object{}
	o.Fields[0] = GlobalIDSentinel
	o.Fields[1] = int(id)
	return o
}

// NewFilterObject builds an expression made only of filters, innermost first.
func NewFilterObject(filters ...FilterID) *Object {
	o := &Object{}
	copy(o.Filters[:], filters)
	return o
}

// HasFilters reports whether the first filter slot is in use.
func (o *Object) HasFilters() bool {
	return o.Filters[0] != 0
}

// GlobalID returns the literal global id carried by the expression.
func (o *Object) GlobalID() (game.GlobalID, bool) {
	if o.Fields[0] != GlobalIDSentinel {
		return 0, false
	}
	return game.GlobalID(o.Fields[1]), true
}

// String renders the expression in script notation.
func (o *Object) String() string {
	var inner string
	switch {
	case o.Name != "":
		inner = fmt.Sprintf("%q", o.Name)
	case o.Fields[0] == GlobalIDSentinel:
		inner = fmt.Sprintf("[global:%d]", o.Fields[1])
	default:
		var parts []string
		last := -1
		for i, v := range o.Fields {
			if v != 0 {
				last = i
			}
		}
		for i := 0; i <= last; i++ {
			parts = append(parts, fmt.Sprint(o.Fields[i]))
		}
		if len(parts) > 0 {
			inner = "[" + strings.Join(parts, ".") + "]"
		}
	}

	for _, f := range o.Filters {
		if f == 0 {
			break
		}
		if f < 0 {
			continue
		}
		inner = f.String() + "(" + inner + ")"
	}
	if inner == "" {
		return "[ANYONE]"
	}
	return inner
}

type objectJSON struct {
	Name      string     `json:"name,omitempty"`
	Rect      *game.Rect `json:"rect,omitempty"`
	GlobalID  uint32     `json:"global_id,omitempty"`
	EA        int        `json:"ea,omitempty"`
	General   int        `json:"general,omitempty"`
	Race      int        `json:"race,omitempty"`
	Class     int        `json:"class,omitempty"`
	Specific  int        `json:"specific,omitempty"`
	Gender    int        `json:"gender,omitempty"`
	Alignment int        `json:"alignment,omitempty"`
	Filters   []string   `json:"filters,omitempty"`
}

func (o Object) MarshalJSON() ([]byte, error) {
	j := objectJSON{
		Name:      o.Name,
		General:   o.Fields[FieldGeneral],
		Race:      o.Fields[FieldRace],
		Class:     o.Fields[FieldClass],
		Specific:  o.Fields[FieldSpecific],
		Gender:    o.Fields[FieldGender],
		Alignment: o.Fields[FieldAlignment],
	}
	if o.Rect.Valid() {
		r := o.Rect
		j.Rect = &r
	}
	if id, ok := o.GlobalID(); ok {
		j.GlobalID = uint32(id)
		j.General = 0
	} else {
		j.EA = o.Fields[FieldEA]
	}
	for _, f := range o.Filters {
		if f == 0 {
			break
		}
		if f < 0 {
			continue
		}
		j.Filters = append(j.Filters, f.String())
	}
	return json.Marshal(j)
}

func (o *Object) UnmarshalJSON(b []byte) error {
	var j objectJSON
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	if len(j.Filters) > MaxObjectNesting {
		return fmt.Errorf("at most %d filters are allowed, got %d", MaxObjectNesting, len(j.Filters))
	}

	obj := Object{Name: j.Name}
	if j.Rect != nil {
		obj.Rect = *j.Rect
	}
	obj.Fields = [ObjectIDSCount]int{j.EA, j.General, j.Race, j.Class, j.Specific, j.Gender, j.Alignment}
	if j.GlobalID != 0 {
		obj.Fields[FieldEA] = GlobalIDSentinel
		obj.Fields[FieldGeneral] = int(j.GlobalID)
	}
	for i, name := range j.Filters {
		id, ok := ParseFilterID(name)
		if !ok {
			return fmt.Errorf("unknown object filter %q", name)
		}
		obj.Filters[i] = id
	}

	*o = obj
	return nil
}
