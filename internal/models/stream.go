package models

import "encoding/json"

// IntentEnvelope is a request read from a stream client
type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// PatchEnvelope is an event pushed to stream clients
type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

// StreamError tells a single client its intent was rejected
type StreamError struct {
	Error string `json:"error"`
}
