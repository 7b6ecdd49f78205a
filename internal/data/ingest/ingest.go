package ingest

import (
	"sort"
	"time"

	"github.com/tokenbar/tokenbar/internal/core/model"
	"github.com/tokenbar/tokenbar/internal/data/parser"
	"github.com/tokenbar/tokenbar/internal/data/scanner"
	"github.com/tokenbar/tokenbar/internal/util"
)

// Ingestor turns the set of discovered log files into one deduplicated,
// time-ordered sequence of usage events. The whole pass runs from scratch
// every polling cycle; the dedup set lives only for the duration of a pass.
type Ingestor struct {
	discovery *scanner.SourceDiscovery
	parser    *parser.Parser
}

// NewIngestor creates an Ingestor over the given directory override (empty
// for platform defaults) with the given decode concurrency.
func NewIngestor(dirOverride string, concurrency int) *Ingestor {
	return &Ingestor{
		discovery: scanner.NewSourceDiscovery(dirOverride),
		parser:    parser.NewParser(concurrency),
	}
}

// Roots exposes the resolved log directories, for callers that want to
// watch them for changes.
func (in *Ingestor) Roots() []string {
	return in.discovery.Roots()
}

// Ingest runs one full pass: discover, decode in parallel, dedupe globally,
// sort ascending by timestamp. A file that fails to read contributes
// nothing; ingestion never aborts because of one bad input.
func (in *Ingestor) Ingest(now time.Time) []model.UsageEvent {
	files := in.discovery.Scan(now)
	if len(files) == 0 {
		return nil
	}

	// The dedup set is owned exclusively by this goroutine; workers hand
	// their per-file lists over the channel and never touch it.
	seen := make(map[string]struct{})
	var events []model.UsageEvent
	duplicates := 0

	for result := range in.parser.ParseFiles(files) {
		if result.Error != nil {
			continue
		}
		for _, e := range result.Events {
			if e.HasIdentity() {
				key := e.IdentityKey()
				if _, dup := seen[key]; dup {
					duplicates++
					continue
				}
				seen[key] = struct{}{}
			}
			events = append(events, e)
		}
	}

	// Equal timestamps get a stable tie-break so that repeated passes over
	// identical inputs produce identical sequences regardless of which
	// worker finished first.
	sort.Slice(events, func(i, j int) bool {
		if !events[i].Timestamp.Equal(events[j].Timestamp) {
			return events[i].Timestamp.Before(events[j].Timestamp)
		}
		if events[i].MessageId != events[j].MessageId {
			return events[i].MessageId < events[j].MessageId
		}
		return events[i].RequestId < events[j].RequestId
	})

	util.LogDebugf("Ingested %d events from %d files (%d duplicates removed)",
		len(events), len(files), duplicates)
	return events
}
