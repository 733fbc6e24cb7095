package renderer_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/lindenmaker/runtime/renderer"
)

const plant = `F[+(25)F[-F]F]F[-(25)F~("Leaf")]_F`

func TestTraceCanonicalBytes(t *testing.T) {
	first, err := record(t, plant).MarshalCBOR()
	require.NoError(t, err)
	second, err := record(t, plant).MarshalCBOR()
	require.NoError(t, err)

	assert.Equal(t, first, second, "same input must encode to identical bytes")
}

func TestTraceDigest(t *testing.T) {
	a, err := record(t, plant).Digest()
	require.NoError(t, err)
	b, err := record(t, plant).Digest()
	require.NoError(t, err)
	c, err := record(t, plant+"F").Digest()
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	s, err := record(t, plant).DigestString()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, "blake2b:"))
	assert.Len(t, s, len("blake2b:")+64)
}

func TestTraceDecodesToSameEvents(t *testing.T) {
	trace := record(t, plant)
	data, err := trace.MarshalCBOR()
	require.NoError(t, err)

	var decoded renderer.Trace
	require.NoError(t, decoded.UnmarshalCBOR(data))
	if diff := cmp.Diff(trace, decoded); diff != "" {
		t.Errorf("decoded trace mismatch (-want +got):\n%s", diff)
	}
}

func TestTraceYAML(t *testing.T) {
	data, err := record(t, `F~("Leaf")`).YAML()
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "events:")
	assert.Contains(t, out, "kind: internode")
	assert.Contains(t, out, "kind: object")
	assert.Contains(t, out, "name: Leaf")
	assert.Contains(t, out, "length: 2")
	assert.Contains(t, out, "position: [2, 0, 0]")
}

func TestEmptyTrace(t *testing.T) {
	trace := record(t, "f+XY")
	assert.Equal(t, 0, trace.Len())

	_, err := trace.Digest()
	require.NoError(t, err)
}
