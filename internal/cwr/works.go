// =============================================================================
// Encore Royalty Core - CWR Work Model
// =============================================================================
//
// The work/writer/publisher/recording snapshot consumed by the CWR
// encoder. Works are read-only snapshots assembled immediately before
// encoding; the encoder never mutates them and holds no state between
// calls.
//
// The encoder deliberately performs no validation of ownership totals,
// IPI formats, or duplicate ISRCs: it is a best-effort renderer, and
// completeness checks belong to the copyright data layer that assembles
// the snapshot.
//
// =============================================================================

package cwr

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// WORK TYPES
// =============================================================================

// Work is one musical work to register.
type Work struct {
	Title      string      `yaml:"title"`
	ISWC       string      `yaml:"iswc,omitempty"`
	Writers    []Writer    `yaml:"writers"`
	Publishers []Publisher `yaml:"publishers"`
	Recordings []Recording `yaml:"recordings,omitempty"`
}

// Writer is one interested writer on a work.
type Writer struct {
	Name string `yaml:"name"`
	IPI  string `yaml:"ipi,omitempty"`

	// OwnershipPercentage is the writer's share of the work, 0-100.
	OwnershipPercentage float64 `yaml:"ownership_percentage"`

	// Role is one of composer, lyricist, author, arranger, translator,
	// adapter. Unknown roles encode as the generic "A".
	Role string `yaml:"role"`

	// ControlledStatus is "C" for controlled writers; anything else
	// encodes as uncontrolled.
	ControlledStatus string `yaml:"controlled_status"`
}

// Publisher is one interested publisher on a work.
type Publisher struct {
	Name                string  `yaml:"name"`
	IPI                 string  `yaml:"ipi,omitempty"`
	OwnershipPercentage float64 `yaml:"ownership_percentage"`

	// Role is one of original_publisher, sub_publisher, administrator,
	// co_publisher. Unknown roles encode as "E".
	Role string `yaml:"role"`
}

// Recording is one released recording of a work.
type Recording struct {
	ISRC       string `yaml:"isrc,omitempty"`
	ArtistName string `yaml:"artist_name,omitempty"`

	// DurationSeconds is the running time in whole seconds.
	DurationSeconds int `yaml:"duration_seconds,omitempty"`

	// ReleaseDate is an ISO date (YYYY-MM-DD).
	ReleaseDate string `yaml:"release_date,omitempty"`
}

// =============================================================================
// WORKS FILE LOADING
// =============================================================================

// worksFile is the YAML document shape for `encore export --works`.
type worksFile struct {
	Works []Work `yaml:"works"`
}

// LoadWorks reads a works YAML file assembled from the copyright data
// layer.
func LoadWorks(path string) ([]Work, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read works file: %w", err)
	}

	var doc worksFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse works file: %w", err)
	}

	return doc.Works, nil
}

// placeholderWork is substituted when GenerateCWRFile receives no works,
// so the output is always structurally valid.
func placeholderWork() Work {
	return Work{
		Title: "Sample Musical Work",
		Writers: []Writer{{
			Name:                "John Doe",
			OwnershipPercentage: 100,
			Role:                "composer",
			ControlledStatus:    "C",
		}},
		Publishers: []Publisher{{
			Name:                "Sample Music Publishing",
			OwnershipPercentage: 100,
			Role:                "original_publisher",
		}},
	}
}
