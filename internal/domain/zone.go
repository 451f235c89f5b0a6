package domain

import "strings"

// Zone is a coarse geographic bucket used to price shipping distance
// without computing real road distance.
type Zone string

const (
	ZoneNorth     Zone = "north"
	ZoneWest      Zone = "west"
	ZoneSouth     Zone = "south"
	ZoneEast      Zone = "east"
	ZoneCentral   Zone = "central"
	ZoneNortheast Zone = "northeast"
)

// Zones lists every zone in a fixed, deterministic order.
var Zones = []Zone{ZoneNorth, ZoneWest, ZoneSouth, ZoneEast, ZoneCentral, ZoneNortheast}

// stateZones maps lowercase state/UT names to their shipping zone.
// Every supported state appears exactly once; anything missing falls
// back to central.
var stateZones = map[string]Zone{
	"delhi":             ZoneNorth,
	"punjab":            ZoneNorth,
	"haryana":           ZoneNorth,
	"himachal pradesh":  ZoneNorth,
	"jammu and kashmir": ZoneNorth,
	"ladakh":            ZoneNorth,
	"uttarakhand":       ZoneNorth,
	"uttar pradesh":     ZoneNorth,
	"chandigarh":        ZoneNorth,

	"maharashtra":            ZoneWest,
	"gujarat":                ZoneWest,
	"goa":                    ZoneWest,
	"rajasthan":              ZoneWest,
	"dadra and nagar haveli": ZoneWest,
	"daman and diu":          ZoneWest,

	"karnataka":      ZoneSouth,
	"tamil nadu":     ZoneSouth,
	"kerala":         ZoneSouth,
	"andhra pradesh": ZoneSouth,
	"telangana":      ZoneSouth,
	"puducherry":     ZoneSouth,
	"lakshadweep":    ZoneSouth,

	"west bengal":                 ZoneEast,
	"bihar":                       ZoneEast,
	"jharkhand":                   ZoneEast,
	"odisha":                      ZoneEast,
	"andaman and nicobar islands": ZoneEast,

	"madhya pradesh": ZoneCentral,
	"chhattisgarh":   ZoneCentral,

	"assam":             ZoneNortheast,
	"meghalaya":         ZoneNortheast,
	"manipur":           ZoneNortheast,
	"mizoram":           ZoneNortheast,
	"nagaland":          ZoneNortheast,
	"tripura":           ZoneNortheast,
	"arunachal pradesh": ZoneNortheast,
	"sikkim":            ZoneNortheast,
}

// zonePairs defines the distance between distinct zones once per pair.
// The full matrix is mirrored at init so lookups are symmetric by
// construction rather than by convention.
var zonePairs = []struct {
	a, b Zone
	d    int
}{
	{ZoneNorth, ZoneWest, 2},
	{ZoneNorth, ZoneSouth, 4},
	{ZoneNorth, ZoneEast, 3},
	{ZoneNorth, ZoneCentral, 2},
	{ZoneNorth, ZoneNortheast, 4},
	{ZoneWest, ZoneSouth, 3},
	{ZoneWest, ZoneEast, 4},
	{ZoneWest, ZoneCentral, 2},
	{ZoneWest, ZoneNortheast, 5},
	{ZoneSouth, ZoneEast, 3},
	{ZoneSouth, ZoneCentral, 2},
	{ZoneSouth, ZoneNortheast, 5},
	{ZoneEast, ZoneCentral, 2},
	{ZoneEast, ZoneNortheast, 2},
	{ZoneCentral, ZoneNortheast, 3},
}

var zoneDistances = buildZoneDistances()

func buildZoneDistances() map[Zone]map[Zone]int {
	m := make(map[Zone]map[Zone]int, len(Zones))
	for _, z := range Zones {
		m[z] = map[Zone]int{z: 1}
	}
	for _, p := range zonePairs {
		m[p.a][p.b] = p.d
		m[p.b][p.a] = p.d
	}
	return m
}

// ZoneForState resolves a state name to its shipping zone.
// Lookup is case-insensitive; unmapped states default to central.
func ZoneForState(state string) Zone {
	z, ok := stateZones[strings.ToLower(strings.TrimSpace(state))]
	if !ok {
		return ZoneCentral
	}
	return z
}

// ZoneDistance returns the distance tier between two zones.
// Same zone is 1; distinct zones range 2..5 (northeast is the most
// distant). Unknown zones fall back to the mid tier.
func ZoneDistance(a, b Zone) int {
	row, ok := zoneDistances[a]
	if !ok {
		return 3
	}
	d, ok := row[b]
	if !ok {
		return 3
	}
	return d
}
