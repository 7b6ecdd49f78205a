package parser

import (
	"bytes"
	"os"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/tokenbar/tokenbar/internal/core/model"
	"github.com/tokenbar/tokenbar/internal/util"
)

// Parser decodes usage-event log files into UsageEvent values.
type Parser struct {
	concurrency int
}

// ParseResult represents the result of parsing a single file.
type ParseResult struct {
	File   string
	Events []model.UsageEvent
	Error  error
}

// NewParser creates a new Parser instance.
func NewParser(concurrency int) *Parser {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Parser{concurrency: concurrency}
}

// ParseFile decodes one log file. The content is split on line-feed
// boundaries directly over the raw bytes; each non-empty line is decoded as
// one JSON record. Malformed lines and non-billable records are skipped
// silently, never reported as errors.
func (p *Parser) ParseFile(path string) ([]model.UsageEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		util.LogDebugf("Failed to read file: %s - %v", path, err)
		return nil, err
	}

	events := make([]model.UsageEvent, 0, 64)
	lineCount := 0
	for start := 0; start < len(data); {
		var line []byte
		if idx := bytes.IndexByte(data[start:], '\n'); idx >= 0 {
			line = data[start : start+idx]
			start += idx + 1
		} else {
			line = data[start:]
			start = len(data)
		}
		lineCount++

		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if event, ok := decodeLine(line); ok {
			events = append(events, event)
		}
	}

	util.LogDebugf("Parsed %s: %d lines, %d billable events", path, lineCount, len(events))
	return events, nil
}

// decodeLine maps one record into a UsageEvent. A record is dropped when it
// fails to parse, carries the synthetic model sentinel, or lacks a usable
// timestamp.
func decodeLine(line []byte) (model.UsageEvent, bool) {
	var rec model.UsageRecord
	if err := sonic.Unmarshal(line, &rec); err != nil {
		return model.UsageEvent{}, false
	}

	modelName := rec.ResolveModel()
	if modelName == model.ModelSynthetic {
		return model.UsageEvent{}, false
	}
	if rec.Timestamp == "" {
		return model.UsageEvent{}, false
	}
	ts, err := util.ParseEventTimestamp(rec.Timestamp)
	if err != nil {
		return model.UsageEvent{}, false
	}

	usage := rec.ResolveUsage()
	return model.UsageEvent{
		Timestamp:           ts,
		InputTokens:         usage.InputTokens,
		OutputTokens:        usage.OutputTokens,
		CacheCreationTokens: usage.CacheCreationInputTokens,
		CacheReadTokens:     usage.CacheReadInputTokens,
		Model:               modelName,
		MessageId:           rec.ResolveMessageId(),
		RequestId:           rec.ResolveRequestId(),
	}, true
}

// ParseFiles parses multiple files concurrently and returns a channel of
// ParseResult. Each worker owns its own result list until it hands it to
// the channel; no state is shared in the decode path.
func (p *Parser) ParseFiles(files []string) <-chan ParseResult {
	start := time.Now()
	results := make(chan ParseResult, len(files))
	var wg sync.WaitGroup

	semaphore := make(chan struct{}, p.concurrency)

	for _, file := range files {
		wg.Add(1)
		go func(f string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			events, err := p.ParseFile(f)
			results <- ParseResult{
				File:   f,
				Events: events,
				Error:  err,
			}
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)
		util.LogDebugf("Concurrent parsing of %d files finished in %v", len(files), time.Since(start))
	}()

	return results
}
