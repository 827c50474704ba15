package game

import "errors"

var (
	ErrAreaNotFound   = errors.New("area not found")
	ErrAreaExists     = errors.New("area already exists")
	ErrActorNotFound  = errors.New("actor not found")
	ErrActorExists    = errors.New("actor already in area")
	ErrPartySlotTaken = errors.New("party slot already taken")
	ErrInvalidSlot    = errors.New("party slot must be between 1 and 6")
)
