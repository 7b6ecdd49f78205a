package session

import (
	"fmt"
	"time"

	"github.com/tokenbar/tokenbar/internal/core/constants"
	"github.com/tokenbar/tokenbar/internal/core/model"
	"github.com/tokenbar/tokenbar/internal/util"
)

// Segmenter partitions a time-ordered event sequence into session blocks.
type Segmenter struct {
	windowDuration time.Duration
}

func NewSegmenter() *Segmenter {
	return &Segmenter{windowDuration: constants.SessionDuration}
}

// Segment folds the ordered events into non-overlapping session blocks,
// inserting a gap block wherever two consecutive events are separated by at
// least one window length of idle time. Events must be sorted ascending by
// timestamp. The returned blocks are final; nothing mutates them afterwards.
func (s *Segmenter) Segment(events []model.UsageEvent) []*SessionBlock {
	if len(events) == 0 {
		return nil
	}

	blocks := make([]*SessionBlock, 0, 4)
	var current *SessionBlock

	for _, e := range events {
		if current == nil {
			current = s.openBlock(e.Timestamp)
		} else if s.startsNewWindow(current, e) {
			blocks = append(blocks, current)
			if gap := e.Timestamp.Sub(current.LastEvent); gap >= s.windowDuration {
				blocks = append(blocks, s.gapBlock(current.LastEvent, e.Timestamp))
			}
			current = s.openBlock(e.Timestamp)
		}
		s.fold(current, e)
	}
	blocks = append(blocks, current)

	util.LogDebugf("Segmented %d events into %d blocks", len(events), len(blocks))
	return blocks
}

// startsNewWindow reports whether an event closes the current block: it
// either falls at or past the window end, or arrives after a full window
// length of idle time. Timestamp equality with the last event never closes
// a block.
func (s *Segmenter) startsNewWindow(current *SessionBlock, e model.UsageEvent) bool {
	return !e.Timestamp.Before(current.EndTime) ||
		e.Timestamp.Sub(current.LastEvent) >= s.windowDuration
}

func (s *Segmenter) openBlock(ts time.Time) *SessionBlock {
	start := util.TruncateToHour(ts)
	return &SessionBlock{
		Id:        start.Format(time.RFC3339),
		StartTime: start,
		EndTime:   start.Add(s.windowDuration),
		Models:    make(map[string]*ModelAccumulator),
	}
}

func (s *Segmenter) gapBlock(start, end time.Time) *SessionBlock {
	return &SessionBlock{
		Id:        fmt.Sprintf("gap-%d", start.Unix()),
		StartTime: start,
		EndTime:   end,
		IsGap:     true,
		Models:    make(map[string]*ModelAccumulator),
	}
}

func (s *Segmenter) fold(b *SessionBlock, e model.UsageEvent) {
	if b.FirstEvent.IsZero() || e.Timestamp.Before(b.FirstEvent) {
		b.FirstEvent = e.Timestamp
	}
	if e.Timestamp.After(b.LastEvent) {
		b.LastEvent = e.Timestamp
	}

	acc, ok := b.Models[e.Model]
	if !ok {
		acc = &ModelAccumulator{}
		b.Models[e.Model] = acc
	}
	acc.add(e)
}
