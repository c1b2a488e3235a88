package replay

import (
	"bytes"
	"errors"
	"testing"

	"github.com/foss-games/blockfall/internal/engine"
	"github.com/foss-games/blockfall/internal/keys"
	"github.com/foss-games/blockfall/internal/replayerr"
	"github.com/foss-games/blockfall/internal/rotation"
)

func TestWriteReadRoundTrip(t *testing.T) {
	opts := engine.DefaultOptions()
	opts.Goal = 10
	opts.RotationSystem = rotation.Dtet

	inputs := []Input{
		{Tick: 786, Keys: keys.Set(0x30000198)},
	}

	var buf bytes.Buffer
	if err := Write(&buf, opts, "", inputs); err != nil {
		t.Fatalf("Write: %v", err)
	}

	gotOpts, runID, gotInputs, err := Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if runID != "" {
		t.Fatalf("expected empty run id, got %q", runID)
	}
	if gotOpts != opts {
		t.Fatalf("options mismatch:\n got  %+v\n want %+v", gotOpts, opts)
	}
	if len(gotInputs) != len(inputs) || gotInputs[0] != inputs[0] {
		t.Fatalf("inputs mismatch: got %+v, want %+v", gotInputs, inputs)
	}
}

func TestWriteReadRoundTripWithRunID(t *testing.T) {
	opts := engine.DefaultOptions()
	inputs := []Input{{Tick: 0, Keys: keys.Left}}

	var buf bytes.Buffer
	if err := Write(&buf, opts, "3fb1c9a0-0000-4000-8000-000000000000", inputs); err != nil {
		t.Fatalf("Write: %v", err)
	}

	_, runID, _, err := Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if runID != "3fb1c9a0-0000-4000-8000-000000000000" {
		t.Fatalf("unexpected run id %q", runID)
	}
}

func TestReadRejectsBadHeader(t *testing.T) {
	_, _, _, err := Read(bytes.NewReader([]byte("nope")))
	if !errors.Is(err, replayerr.ErrInvalidReplayHeader) {
		t.Fatalf("expected ErrInvalidReplayHeader, got %v", err)
	}
}

func TestReadRejectsTruncatedInputStream(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, engine.DefaultOptions(), "", []Input{{Tick: 1, Keys: keys.Up}}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	truncated := buf.Bytes()[:len(buf.Bytes())-1]

	_, _, _, err := Read(bytes.NewReader(truncated))
	if !errors.Is(err, replayerr.ErrInvalidInputLength) {
		t.Fatalf("expected ErrInvalidInputLength, got %v", err)
	}
}

func TestReadRejectsEmptyInputStream(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, engine.DefaultOptions(), "", nil); err != nil {
		t.Fatalf("Write: %v", err)
	}

	_, _, _, err := Read(bytes.NewReader(buf.Bytes()))
	if !errors.Is(err, replayerr.ErrNoInputsFound) {
		t.Fatalf("expected ErrNoInputsFound, got %v", err)
	}
}

func TestMalformedLineReportsLineContext(t *testing.T) {
	var text bytes.Buffer
	text.WriteString(header)
	text.WriteString("[game]\nnotakeyvalue\n")
	text.Write(sentinel)
	text.Write([]byte{0, 0, 0, 0, 0, 0, 0, 0})

	_, _, _, err := Read(bytes.NewReader(text.Bytes()))
	if !errors.Is(err, replayerr.ErrMalformedLine) {
		t.Fatalf("expected ErrMalformedLine, got %v", err)
	}
	var lineErr *replayerr.LineError
	if !errors.As(err, &lineErr) {
		t.Fatalf("expected *replayerr.LineError, got %T", err)
	}
	if lineErr.Line != 2 {
		t.Fatalf("expected line 2, got %d", lineErr.Line)
	}
}
