// =============================================================================
// Encore Royalty Core - CWR Encoder
// =============================================================================
//
// This module renders a sequence of works into a single CWR 2.1
// transmission as fixed-width text. The output structure is:
//
//   HDR                          transmission header
//   per work:
//     NWR                        new work registration
//     SWR (one per writer)
//     PWR (one per publisher)
//     TER                        territory (always worldwide)
//     REC (one per recording, only when any exist)
//   GRT                          group trailer
//   TRL                          transmission trailer
//
// SEQUENCE/COUNTER INVARIANT (the core correctness property):
//   A single running sequence number starts at 1 and is consumed by every
//   physical record in emission order, the HDR included. One transaction
//   is counted per work regardless of its child-record count. The GRT
//   record count is the running sequence at GRT time minus 2 (everything
//   except the HDR and the GRT line itself); the TRL record count is the
//   running sequence at TRL time minus 1 (everything except the TRL line
//   itself). These relationships hold exactly for any input.
//
// =============================================================================

package cwr

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// =============================================================================
// HEADER CONFIGURATION
// =============================================================================

// cwrVersion is the transmission format version emitted in the HDR.
const cwrVersion = "02.10"

// HeaderConfig carries the sender identity written into the HDR record.
type HeaderConfig struct {
	// SenderID is the sender's CISAC interested-party number.
	SenderID string

	// SenderType is the two-letter sender classification ("PB" publisher).
	SenderType string

	// SenderName is the sender's registered name.
	SenderName string

	// EDIStandard identifies the EDI standard version.
	EDIStandard string

	// CharacterSet and CharacterSetVersion describe the payload encoding.
	CharacterSet        string
	CharacterSetVersion string

	// CreationTime stamps the transmission; the zero value means "now".
	CreationTime time.Time
}

// DefaultHeaderConfig returns the header used when the caller supplies
// none.
func DefaultHeaderConfig() HeaderConfig {
	return HeaderConfig{
		SenderID:     "000000000",
		SenderType:   "PB",
		SenderName:   "ENCORE MUSIC TECH",
		EDIStandard:  "01.10",
		CharacterSet: "ASCII",
	}
}

// =============================================================================
// ENCODER
// =============================================================================

// encoder accumulates the transmission lines and the two counters.
type encoder struct {
	lines []string

	// seq is the running record sequence number, consumed by the next
	// record to be appended.
	seq int

	// transactions counts one per work processed.
	transactions int
}

// append renders one record, stamping it with the current sequence number,
// and advances the counter.
func (e *encoder) append(layout Layout, values map[string]string) {
	values["record_type"] = layout.Record
	values["sequence"] = fmt.Sprintf("%d", e.seq)
	e.lines = append(e.lines, layout.Render(values))
	e.seq++
}

// GenerateCWRFile renders works into a complete CWR transmission and
// returns it as CRLF-joined fixed-width lines. An empty works slice is
// replaced by the hard-coded sample work so the output is always
// structurally valid.
func GenerateCWRFile(works []Work, header HeaderConfig) string {
	if len(works) == 0 {
		works = []Work{placeholderWork()}
	}
	if header == (HeaderConfig{}) {
		header = DefaultHeaderConfig()
	}
	creation := header.CreationTime
	if creation.IsZero() {
		creation = time.Now()
	}

	e := &encoder{seq: 1}

	e.append(LayoutHDR, map[string]string{
		"version":               cwrVersion,
		"sender_id":             digitsOnly(header.SenderID),
		"sender_type":           header.SenderType,
		"creation_date":         creation.Format("20060102"),
		"creation_time":         creation.Format("150405"),
		"sender_name":           header.SenderName,
		"edi_standard":          header.EDIStandard,
		"character_set":         header.CharacterSet,
		"character_set_version": header.CharacterSetVersion,
	})

	for i, work := range works {
		e.transactions++
		e.appendWork(work, i)
	}

	// Group trailer: one group, its transaction and record totals must
	// reconcile exactly with the running counters.
	e.append(LayoutGRT, map[string]string{
		"group_id":          "0001",
		"transaction_count": fmt.Sprintf("%d", e.transactions),
		"record_count":      fmt.Sprintf("%d", e.seq-2),
	})

	// Transmission trailer: everything except the TRL line itself.
	e.append(LayoutTRL, map[string]string{
		"group_count":       "0001",
		"transaction_count": fmt.Sprintf("%d", e.transactions),
		"record_count":      fmt.Sprintf("%d", e.seq-1),
	})

	return strings.Join(e.lines, "\r\n")
}

// appendWork emits the NWR record and all child records for one work.
func (e *encoder) appendWork(work Work, index int) {
	recorded := "N"
	if len(work.Recordings) > 0 {
		recorded = "Y"
	}

	e.append(LayoutNWR, map[string]string{
		"work_title":            work.Title,
		"iswc":                  stripDashes(work.ISWC),
		"language_code":         "EN",
		"submitter_work_number": fmt.Sprintf("ENC%011d", index+1),
		"work_type":             "ORI",
		"distribution_category": "U",
		"recorded_indicator":    recorded,
	})

	for _, writer := range work.Writers {
		first, last := splitName(writer.Name)
		controlled := "N"
		if writer.ControlledStatus == "C" {
			controlled = "Y"
		}
		e.append(LayoutSWR, map[string]string{
			"controlled_indicator": controlled,
			"first_name":           first,
			"last_name":            last,
			"ipi":                  digitsOnly(writer.IPI),
			"role_code":            WriterRoleCode(writer.Role),
			"share":                shareCode(writer.OwnershipPercentage),
		})
	}

	for _, publisher := range work.Publishers {
		e.append(LayoutPWR, map[string]string{
			"publisher_name": publisher.Name,
			"ipi":            digitsOnly(publisher.IPI),
			"role_code":      PublisherRoleCode(publisher.Role),
			"share":          shareCode(publisher.OwnershipPercentage),
		})
	}

	// Territory is hard-coded worldwide for every registration.
	e.append(LayoutTER, map[string]string{
		"inclusion_flag": "I",
		"territory_code": worldwideTerritory,
	})

	for _, recording := range work.Recordings {
		e.append(LayoutREC, map[string]string{
			"isrc":         stripDashes(recording.ISRC),
			"artist_name":  recording.ArtistName,
			"duration":     fmt.Sprintf("%d", recording.DurationSeconds),
			"release_date": stripDashes(recording.ReleaseDate),
		})
	}
}

// =============================================================================
// FIELD ENCODING HELPERS
// =============================================================================

// shareCode encodes an ownership percentage as integer hundredths,
// zero-padded to five digits: 33.33% -> "03333".
func shareCode(percentage float64) string {
	return fmt.Sprintf("%05d", int(math.Round(percentage*100)))
}

// splitName splits a writer name on the first space: the first token is
// the first name, the remainder the last name.
func splitName(name string) (first, last string) {
	name = strings.TrimSpace(name)
	if i := strings.IndexByte(name, ' '); i >= 0 {
		return name[:i], strings.TrimSpace(name[i+1:])
	}
	return name, ""
}

// digitsOnly strips everything but digits. Malformed IPIs and sender IDs
// are coerced, never rejected.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stripDashes removes dashes from ISWC/ISRC identifiers and dates.
func stripDashes(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "-", "")
}
