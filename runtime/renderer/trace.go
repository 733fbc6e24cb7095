package renderer

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"
)

// Trace is the ordered list of renderer calls of one interpretation
type Trace struct {
	Events []Event `cbor:"1,keyasint" yaml:"events"`
}

// Len returns the number of recorded events
func (t Trace) Len() int { return len(t.Events) }

// Count returns the number of events of kind
func (t Trace) Count(kind EventKind) int {
	n := 0
	for _, e := range t.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// MarshalCBOR produces the deterministic CBOR encoding of the trace. Equal
// traces always encode to equal bytes.
func (t Trace) MarshalCBOR() ([]byte, error) {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("failed to create CBOR encoder: %w", err)
	}

	// alias type so the encoder does not call MarshalCBOR again
	type traceAlias Trace
	data, err := encMode.Marshal(traceAlias(t))
	if err != nil {
		return nil, fmt.Errorf("CBOR encoding failed: %w", err)
	}
	return data, nil
}

// UnmarshalCBOR decodes a trace produced by MarshalCBOR
func (t *Trace) UnmarshalCBOR(data []byte) error {
	type traceAlias Trace
	var alias traceAlias
	if err := cbor.Unmarshal(data, &alias); err != nil {
		return fmt.Errorf("CBOR decoding failed: %w", err)
	}
	*t = Trace(alias)
	return nil
}

// Digest returns the BLAKE2b-256 hash of the canonical encoding
func (t Trace) Digest() ([32]byte, error) {
	data, err := t.MarshalCBOR()
	if err != nil {
		return [32]byte{}, err
	}
	return blake2b.Sum256(data), nil
}

// DigestString returns the digest in the "blake2b:<hex>" form printed by
// the CLI
func (t Trace) DigestString() (string, error) {
	d, err := t.Digest()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("blake2b:%x", d), nil
}

// YAML renders the trace as a YAML document
func (t Trace) YAML() ([]byte, error) {
	data, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("YAML encoding failed: %w", err)
	}
	return data, nil
}
