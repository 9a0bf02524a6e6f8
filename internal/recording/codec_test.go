package recording

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecording() *Recording {
	return &Recording{
		ID: "f0b4724e-9f0c-4d87-8e0e-5b4f0c7d1a22",
		Events: []PointerEvent{
			{TimestampMs: 0, X: 0.1, Y: 0.1, Kind: KindMove, GlyphID: "arrow"},
			{TimestampMs: 120, X: 0.2, Y: 0.25, Kind: KindMove},
			{TimestampMs: 130, X: 0.2, Y: 0.25, Kind: KindLeftClick, Pressed: true},
			{TimestampMs: 190, X: 0.2, Y: 0.25, Kind: KindLeftClick, Pressed: false},
			{TimestampMs: 400, X: 0.6, Y: 0.8, Kind: KindMove, GlyphID: "hand"},
		},
		Glyphs: map[string]string{
			"arrow": "cursors/arrow.png",
			"hand":  "cursors/hand.png",
		},
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	original := sampleRecording()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, original))

	decoded, err := Decode(&buf)
	require.NoError(t, err)

	if diff := cmp.Diff(original, decoded); diff != "" {
		t.Errorf("recording changed across encode/decode (-want +got):\n%s", diff)
	}
}

func TestDecode_AssignsIDToLegacyRecordings(t *testing.T) {
	payload := `{"events":[{"timestampMs":0,"x":0.5,"y":0.5,"kind":"move"}]}`

	rec, err := Decode(strings.NewReader(payload))
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)

	// Each decode of an id-less payload is a distinct recording.
	other, err := Decode(strings.NewReader(payload))
	require.NoError(t, err)
	assert.NotEqual(t, rec.ID, other.ID)
}

func TestDecode_RejectsMalformedJSON(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"events": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode recording")
}

func TestLoad_ReadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleRecording()))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	rec, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, rec.Events, 5)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSplit_PartitionsByKind(t *testing.T) {
	moves, clicks := sampleRecording().Split()

	assert.Len(t, moves, 3)
	assert.Len(t, clicks, 2)
	for _, ev := range moves {
		assert.Equal(t, KindMove, ev.Kind)
	}
	for _, ev := range clicks {
		assert.True(t, ev.Kind.IsClick())
	}
}

func TestDurationMs(t *testing.T) {
	assert.Equal(t, 400.0, sampleRecording().DurationMs())
	assert.Zero(t, (&Recording{}).DurationMs())
}
