package protocol

import (
	"encoding/json"
	"fmt"
)

// Envelope is the frame for every websocket message
type Envelope struct {
	Type EventType       `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// NewEnvelope encodes data under the given event type
func NewEnvelope(eventType EventType, data any) (*Envelope, error) {
	env := &Envelope{Type: eventType}
	if data == nil {
		return env, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s payload: %w", eventType, err)
	}
	env.Data = raw
	return env, nil
}

// Decode unmarshals the payload into v. A missing payload decodes as an
// empty object.
func (e *Envelope) Decode(v any) error {
	if len(e.Data) == 0 || string(e.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(e.Data, v); err != nil {
		return fmt.Errorf("%w: %s payload: %v", ErrMalformed, e.Type, err)
	}
	return nil
}

// Parse reads one envelope off the wire
func Parse(raw []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if env.Type == "" {
		return nil, ErrMissingType
	}
	return &env, nil
}

// Event is an outbound envelope before encoding. Keeping the payload typed
// until the transport writes it lets tests inspect what was sent.
type Event struct {
	Type EventType
	Data any
}

// Encode renders the event as a wire frame
func (e Event) Encode() ([]byte, error) {
	env, err := NewEnvelope(e.Type, e.Data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}
