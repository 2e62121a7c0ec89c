// =============================================================================
// Encore Royalty Core - CWR Code Tables
// =============================================================================
//
// Role-code and territory lookups for the CWR encoder. Unknown roles fall
// back to the format's generic defaults (A for writers, E for publishers)
// rather than erroring: the encoder is a pass-through renderer.
//
// =============================================================================

package cwr

import "strings"

// writerRoleCodes maps internal writer roles to CWR two-letter role codes.
var writerRoleCodes = map[string]string{
	"composer":   "CA",
	"lyricist":   "A",
	"author":     "A",
	"arranger":   "AR",
	"translator": "TR",
	"adapter":    "AD",
}

// WriterRoleCode returns the CWR role code for a writer role, defaulting
// to "A".
func WriterRoleCode(role string) string {
	if code, ok := writerRoleCodes[strings.ToLower(strings.TrimSpace(role))]; ok {
		return code
	}
	return "A"
}

// publisherRoleCodes maps internal publisher roles to CWR role codes.
var publisherRoleCodes = map[string]string{
	"original_publisher": "E",
	"sub_publisher":      "ES",
	"administrator":      "PA",
	"co_publisher":       "SE",
}

// PublisherRoleCode returns the CWR role code for a publisher role,
// defaulting to "E".
func PublisherRoleCode(role string) string {
	if code, ok := publisherRoleCodes[strings.ToLower(strings.TrimSpace(role))]; ok {
		return code
	}
	return "E"
}

// worldwideTerritory is the TIS code for "World". GenerateCWRFile always
// registers worldwide; see TerritoryCode below.
const worldwideTerritory = "2136"

// territoryCodes maps common territory names to TIS numeric codes.
var territoryCodes = map[string]string{
	"world":          worldwideTerritory,
	"worldwide":      worldwideTerritory,
	"europe":         "2120",
	"north america":  "2130",
	"united states":  "0840",
	"usa":            "0840",
	"canada":         "0124",
	"united kingdom": "0826",
	"germany":        "0276",
	"france":         "0250",
	"japan":          "0392",
	"australia":      "0036",
}

// TerritoryCode returns the TIS code for a territory name, defaulting to
// worldwide. GenerateCWRFile does not currently consult per-work territory
// data; it always emits the worldwide code. This helper stays for the
// eventual per-territory registration support.
func TerritoryCode(name string) string {
	if code, ok := territoryCodes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return code
	}
	return worldwideTerritory
}
