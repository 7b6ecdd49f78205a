package model

import "time"

// RawUsage mirrors the usage object of one log record. Absent fields decode
// to zero.
type RawUsage struct {
	InputTokens              int `json:"input_tokens"`
	OutputTokens             int `json:"output_tokens"`
	CacheCreationInputTokens int `json:"cache_creation_input_tokens"`
	CacheReadInputTokens     int `json:"cache_read_input_tokens"`
}

// RawMessage is the nested message object carried by newer log records.
type RawMessage struct {
	Id    string    `json:"id,omitempty"`
	Model string    `json:"model,omitempty"`
	Usage *RawUsage `json:"usage,omitempty"`
}

// UsageRecord is one line of the JSONL log as written by the CLI. The schema
// varied across CLI versions: usage, model and identity fields appear either
// at the top level or nested under message. Resolve* methods pick whichever
// is present, top level first.
type UsageRecord struct {
	Timestamp       string     `json:"timestamp"`
	Model           string     `json:"model,omitempty"`
	MessageId       string     `json:"message_id,omitempty"`
	RequestId       string     `json:"request_id,omitempty"`
	LegacyRequestId string     `json:"requestId,omitempty"`
	Usage           *RawUsage  `json:"usage,omitempty"`
	Message         RawMessage `json:"message,omitempty"`
}

// ResolveModel returns the model name from the top level or the nested message.
func (r *UsageRecord) ResolveModel() string {
	if r.Model != "" {
		return r.Model
	}
	return r.Message.Model
}

// ResolveUsage returns the usage counts, preferring the top-level object.
func (r *UsageRecord) ResolveUsage() RawUsage {
	if r.Usage != nil {
		return *r.Usage
	}
	if r.Message.Usage != nil {
		return *r.Message.Usage
	}
	return RawUsage{}
}

// ResolveMessageId returns message_id or message.id.
func (r *UsageRecord) ResolveMessageId() string {
	if r.MessageId != "" {
		return r.MessageId
	}
	return r.Message.Id
}

// ResolveRequestId returns request_id or the legacy camelCase requestId.
func (r *UsageRecord) ResolveRequestId() string {
	if r.RequestId != "" {
		return r.RequestId
	}
	return r.LegacyRequestId
}

// UsageEvent is one billable API call, immutable once constructed.
type UsageEvent struct {
	Timestamp           time.Time
	InputTokens         int
	OutputTokens        int
	CacheCreationTokens int
	CacheReadTokens     int
	Model               string
	MessageId           string
	RequestId           string
}

// BillableTokens returns the unweighted token count that accrues toward the
// session total. Cache tokens are tracked but never billed.
func (e UsageEvent) BillableTokens() int {
	return e.InputTokens + e.OutputTokens
}

// HasIdentity reports whether the event carries both identifiers needed for
// deduplication. Events lacking either are never considered duplicates.
func (e UsageEvent) HasIdentity() bool {
	return e.MessageId != "" && e.RequestId != ""
}

// IdentityKey returns the dedup key. Only meaningful when HasIdentity is true.
func (e UsageEvent) IdentityKey() string {
	return e.MessageId + ":" + e.RequestId
}
