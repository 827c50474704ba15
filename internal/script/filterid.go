package script

import (
	"fmt"
	"strings"
)

// FilterID identifies an object filter. Zero terminates a filter chain and
// negative ids are placeholders that are skipped.
type FilterID int

const (
	FilterMyself FilterID = iota + 1
	FilterNothing
	FilterProtagonist
	FilterPlayer1
	FilterPlayer2
	FilterPlayer3
	FilterPlayer4
	FilterPlayer5
	FilterPlayer6
	FilterLastAttackerOf
	FilterLastTargetedBy
	FilterMyTarget
	FilterLastSeenBy
	FilterLastHeardBy
	FilterLastTalkedToBy
	FilterLastSummonerOf
	FilterFarthest
	FilterFarthestEnemyOf
	FilterClosestEnemySummoned
	FilterStrongestOf
	FilterWeakestOf
	FilterMostDamagedOf
	FilterLeastDamagedOf
)

// Ranked filters occupy RankCount consecutive ids starting at their base:
// FilterNearest+1 is SecondNearest.
const (
	FilterNearest              FilterID = 100
	FilterNearestEnemyOf       FilterID = 110
	FilterNearestEnemyOfType   FilterID = 120
	FilterNearestMyGroupOfType FilterID = 130
	FilterNearestDoor          FilterID = 140
)

const RankCount = 10

var ordinals = [RankCount]string{"", "Second", "Third", "Fourth", "Fifth", "Sixth", "Seventh", "Eighth", "Ninth", "Tenth"}

var rankedBases = map[FilterID]string{
	FilterNearest:              "Nearest",
	FilterNearestEnemyOf:       "NearestEnemyOf",
	FilterNearestEnemyOfType:   "NearestEnemyOfType",
	FilterNearestMyGroupOfType: "NearestMyGroupOfType",
	FilterNearestDoor:          "NearestDoor",
}

var filterNames = buildFilterNames()

var filterIDs = func() map[string]FilterID {
	m := make(map[string]FilterID, len(filterNames))
	for id, name := range filterNames {
		m[strings.ToLower(name)] = id
	}
	return m
}()

func buildFilterNames() map[FilterID]string {
	names := map[FilterID]string{
		FilterMyself:               "Myself",
		FilterNothing:              "Nothing",
		FilterProtagonist:          "Protagonist",
		FilterPlayer1:              "Player1",
		FilterPlayer2:              "Player2",
		FilterPlayer3:              "Player3",
		FilterPlayer4:              "Player4",
		FilterPlayer5:              "Player5",
		FilterPlayer6:              "Player6",
		FilterLastAttackerOf:       "LastAttackerOf",
		FilterLastTargetedBy:       "LastTargetedBy",
		FilterMyTarget:             "MyTarget",
		FilterLastSeenBy:           "LastSeenBy",
		FilterLastHeardBy:          "LastHeardBy",
		FilterLastTalkedToBy:       "LastTalkedToBy",
		FilterLastSummonerOf:       "LastSummonerOf",
		FilterFarthest:             "Farthest",
		FilterFarthestEnemyOf:      "FarthestEnemyOf",
		FilterClosestEnemySummoned: "ClosestEnemySummoned",
		FilterStrongestOf:          "StrongestOf",
		FilterWeakestOf:            "WeakestOf",
		FilterMostDamagedOf:        "MostDamagedOf",
		FilterLeastDamagedOf:       "LeastDamagedOf",
	}
	for base, name := range rankedBases {
		for i, ord := range ordinals {
			names[base+FilterID(i)] = ord + name
		}
	}
	return names
}

// Ranked splits a ranked filter id into its base and zero based rank.
func (f FilterID) Ranked() (FilterID, int, bool) {
	for base := range rankedBases {
		if f >= base && f < base+RankCount {
			return base, int(f - base), true
		}
	}
	return 0, 0, false
}

func (f FilterID) String() string {
	if name, ok := filterNames[f]; ok {
		return name
	}
	return fmt.Sprintf("filter(%d)", int(f))
}

// ParseFilterID looks a filter up by its script name, ignoring case.
func ParseFilterID(name string) (FilterID, bool) {
	id, ok := filterIDs[strings.ToLower(name)]
	return id, ok
}
