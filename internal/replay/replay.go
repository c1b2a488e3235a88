// Package replay implements the bit-exact replay codec: a text options
// header followed by a sentinel and a little-endian binary stream of input
// edges. Re-feeding the recorded options and input edges into a fresh
// engine reproduces the original run tick-for-tick.
package replay

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/foss-games/blockfall/internal/engine"
	"github.com/foss-games/blockfall/internal/keys"
	"github.com/foss-games/blockfall/internal/randomizer"
	"github.com/foss-games/blockfall/internal/replayerr"
	"github.com/foss-games/blockfall/internal/rotation"
)

const header = "ZS1\n"

var sentinel = bytes.Repeat([]byte{0xFF}, 8)

// Input is one recorded input edge: the tick it was observed on, and the
// virtual key bitset that was held from that tick onward.
type Input struct {
	Tick uint32
	Keys keys.Set
}

// Write serializes options, an optional run correlation id, and a sequence
// of input edges into the on-disk replay format.
func Write(w io.Writer, opts engine.Options, runID string, inputs []Input) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(header); err != nil {
		return fmt.Errorf("replay: write header: %w", err)
	}

	if err := writeOptions(bw, opts); err != nil {
		return fmt.Errorf("replay: write options: %w", err)
	}

	if runID != "" {
		if _, err := bw.WriteString("\n[meta]\nrun_id = " + runID + "\n"); err != nil {
			return fmt.Errorf("replay: write meta: %w", err)
		}
	}

	if _, err := bw.Write(sentinel); err != nil {
		return fmt.Errorf("replay: write sentinel: %w", err)
	}

	for _, in := range inputs {
		var rec [8]byte
		putU32(rec[0:4], in.Tick)
		putU32(rec[4:8], uint32(in.Keys))
		if _, err := bw.Write(rec[:]); err != nil {
			return fmt.Errorf("replay: write input: %w", err)
		}
	}

	return bw.Flush()
}

// Read parses the on-disk replay format back into options, the run
// correlation id (empty if the file had no [meta] block), and the recorded
// input edges.
func Read(r io.Reader) (engine.Options, string, []Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return engine.Options{}, "", nil, fmt.Errorf("replay: read: %w", err)
	}

	if !bytes.HasPrefix(data, []byte(header)) {
		return engine.Options{}, "", nil, fmt.Errorf("replay: %w", replayerr.ErrInvalidReplayHeader)
	}
	rest := data[len(header):]

	idx := bytes.Index(rest, sentinel)
	if idx < 0 {
		return engine.Options{}, "", nil, fmt.Errorf("replay: %w", replayerr.ErrInvalidReplayHeader)
	}
	optionsText := rest[:idx]
	inputBytes := rest[idx+len(sentinel):]

	opts, runID, err := parseOptions(optionsText)
	if err != nil {
		return engine.Options{}, "", nil, err
	}

	if len(inputBytes)%8 != 0 {
		return engine.Options{}, "", nil, fmt.Errorf("replay: %w", replayerr.ErrInvalidInputLength)
	}
	if len(inputBytes) == 0 {
		return engine.Options{}, "", nil, fmt.Errorf("replay: %w", replayerr.ErrNoInputsFound)
	}

	inputs := make([]Input, 0, len(inputBytes)/8)
	for i := 0; i < len(inputBytes); i += 8 {
		rec := inputBytes[i : i+8]
		inputs = append(inputs, Input{
			Tick: getU32(rec[0:4]),
			Keys: keys.Set(getU32(rec[4:8])),
		})
	}

	return opts, runID, inputs, nil
}

func putU32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func getU32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func writeOptions(w io.Writer, o engine.Options) error {
	lines := []string{
		"[game]",
		fmt.Sprintf("seed = %d", o.Seed),
		fmt.Sprintf("well_width = %d", o.WellWidth),
		fmt.Sprintf("well_height = %d", o.WellHeight),
		fmt.Sprintf("well_hidden = %d", o.WellHidden),
		fmt.Sprintf("das_speed_ms = %d", o.DasSpeedMs),
		fmt.Sprintf("das_delay_ms = %d", o.DasDelayMs),
		fmt.Sprintf("are_delay_ms = %d", o.AreDelayMs),
		fmt.Sprintf("are_cancellable = %t", o.AreCancellable),
		fmt.Sprintf("warn_on_bad_finesse = %t", o.WarnOnBadFinesse),
		fmt.Sprintf("lock_style = %s", o.LockStyle),
		fmt.Sprintf("lock_delay_ms = %d", o.LockDelayMs),
		fmt.Sprintf("floorkick_limit = %d", o.FloorkickLimit),
		fmt.Sprintf("one_shot_soft_drop = %t", o.OneShotSoftDrop),
		fmt.Sprintf("rotation_system = %s", o.RotationSystem),
		fmt.Sprintf("initial_action_style = %s", o.InitialActionStyle),
		fmt.Sprintf("gravity_ms_per_cell = %d", o.GravityMsPerCell),
		fmt.Sprintf("soft_drop_gravity_ms_per_cell = %d", o.SoftDropGravityMsPerCell),
		fmt.Sprintf("randomizer = %s", o.Randomizer),
		fmt.Sprintf("ready_phase_length_ms = %d", o.ReadyPhaseLengthMs),
		fmt.Sprintf("go_phase_length_ms = %d", o.GoPhaseLengthMs),
		fmt.Sprintf("infinite_ready_go_hold = %t", o.InfiniteReadyGoHold),
		fmt.Sprintf("preview_piece_count = %d", o.PreviewPieceCount),
		fmt.Sprintf("goal = %d", o.Goal),
		fmt.Sprintf("show_ghost = %t", o.ShowGhost),
		fmt.Sprintf("ms_per_tick = %d", o.MsPerTick),
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func parseOptions(text []byte) (engine.Options, string, error) {
	var o engine.Options
	var runID string
	group := ""

	scanner := bufio.NewScanner(bytes.NewReader(text))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, ";") || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			group = strings.ToLower(strings.TrimSpace(line[1 : len(line)-1]))
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return o, "", &replayerr.LineError{Err: replayerr.ErrMalformedLine, Line: lineNo, Text: raw}
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		if group == "meta" {
			if key == "run_id" {
				runID = value
			}
			continue
		}
		if group != "" && group != "game" {
			continue
		}

		if err := setOption(&o, key, value, lineNo, raw); err != nil {
			return o, "", err
		}
	}
	if err := scanner.Err(); err != nil {
		return o, "", fmt.Errorf("replay: scan options: %w", err)
	}

	return o, runID, nil
}

func setOption(o *engine.Options, key, value string, lineNo int, raw string) error {
	if strings.EqualFold(value, "null") {
		return nil
	}

	malformed := func() error {
		return &replayerr.LineError{Err: replayerr.ErrMalformedLine, Line: lineNo, Text: raw}
	}
	unknownEnum := func() error {
		return &replayerr.LineError{Err: replayerr.ErrUnknownEnum, Line: lineNo, Text: raw}
	}

	parseUint := func() (uint64, error) {
		v, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return 0, malformed()
		}
		return v, nil
	}
	parseInt := func() (int64, error) {
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, malformed()
		}
		return v, nil
	}
	parseBool := func() (bool, error) {
		switch strings.ToLower(value) {
		case "true", "yes", "1":
			return true, nil
		case "false", "no", "0":
			return false, nil
		default:
			return false, &replayerr.LineError{Err: replayerr.ErrUnknownBool, Line: lineNo, Text: raw}
		}
	}

	switch key {
	case "seed":
		v, err := parseUint()
		if err != nil {
			return err
		}
		o.Seed = uint32(v)
	case "well_width":
		v, err := parseInt()
		if err != nil {
			return err
		}
		o.WellWidth = int(v)
	case "well_height":
		v, err := parseInt()
		if err != nil {
			return err
		}
		o.WellHeight = int(v)
	case "well_hidden":
		v, err := parseInt()
		if err != nil {
			return err
		}
		o.WellHidden = int(v)
	case "das_speed_ms":
		v, err := parseInt()
		if err != nil {
			return err
		}
		o.DasSpeedMs = int32(v)
	case "das_delay_ms":
		v, err := parseInt()
		if err != nil {
			return err
		}
		o.DasDelayMs = int32(v)
	case "are_delay_ms":
		v, err := parseUint()
		if err != nil {
			return err
		}
		o.AreDelayMs = uint32(v)
	case "are_cancellable":
		v, err := parseBool()
		if err != nil {
			return err
		}
		o.AreCancellable = v
	case "warn_on_bad_finesse":
		v, err := parseBool()
		if err != nil {
			return err
		}
		o.WarnOnBadFinesse = v
	case "lock_style":
		v, ok := parseLockStyle(value)
		if !ok {
			return unknownEnum()
		}
		o.LockStyle = v
	case "lock_delay_ms":
		v, err := parseUint()
		if err != nil {
			return err
		}
		o.LockDelayMs = uint32(v)
	case "floorkick_limit":
		v, err := parseUint()
		if err != nil {
			return err
		}
		o.FloorkickLimit = uint32(v)
	case "one_shot_soft_drop":
		v, err := parseBool()
		if err != nil {
			return err
		}
		o.OneShotSoftDrop = v
	case "rotation_system":
		v, ok := parseRotationKind(value)
		if !ok {
			return unknownEnum()
		}
		o.RotationSystem = v
	case "initial_action_style":
		v, ok := parseInitialActionStyle(value)
		if !ok {
			return unknownEnum()
		}
		o.InitialActionStyle = v
	case "gravity_ms_per_cell":
		v, err := parseUint()
		if err != nil {
			return err
		}
		o.GravityMsPerCell = uint32(v)
	case "soft_drop_gravity_ms_per_cell":
		v, err := parseUint()
		if err != nil {
			return err
		}
		o.SoftDropGravityMsPerCell = uint32(v)
	case "randomizer":
		v, ok := parseRandomizerKind(value)
		if !ok {
			return unknownEnum()
		}
		o.Randomizer = v
	case "ready_phase_length_ms":
		v, err := parseUint()
		if err != nil {
			return err
		}
		o.ReadyPhaseLengthMs = uint32(v)
	case "go_phase_length_ms":
		v, err := parseUint()
		if err != nil {
			return err
		}
		o.GoPhaseLengthMs = uint32(v)
	case "infinite_ready_go_hold":
		v, err := parseBool()
		if err != nil {
			return err
		}
		o.InfiniteReadyGoHold = v
	case "preview_piece_count":
		v, err := parseInt()
		if err != nil {
			return err
		}
		o.PreviewPieceCount = int(v)
	case "goal":
		v, err := parseInt()
		if err != nil {
			return err
		}
		o.Goal = int(v)
	case "show_ghost":
		v, err := parseBool()
		if err != nil {
			return err
		}
		o.ShowGhost = v
	case "ms_per_tick":
		v, err := parseUint()
		if err != nil {
			return err
		}
		o.MsPerTick = uint32(v)
	default:
		// Unrecognized keys are tolerated for forward compatibility, the
		// same way an unrecognized [group] is skipped.
	}
	return nil
}

func parseLockStyle(v string) (engine.LockStyle, bool) {
	switch strings.ToLower(v) {
	case "entry":
		return engine.LockEntry, true
	case "step":
		return engine.LockStep, true
	case "move":
		return engine.LockMove, true
	default:
		return 0, false
	}
}

func parseInitialActionStyle(v string) (engine.InitialActionStyle, bool) {
	switch strings.ToLower(v) {
	case "none":
		return engine.InitialActionNone, true
	case "persistent":
		return engine.InitialActionPersistent, true
	case "trigger":
		return engine.InitialActionTrigger, true
	default:
		return 0, false
	}
}

func parseRotationKind(v string) (rotation.Kind, bool) {
	switch strings.ToLower(v) {
	case "srs":
		return rotation.Srs, true
	case "sega":
		return rotation.Sega, true
	case "dtet":
		return rotation.Dtet, true
	case "nes":
		return rotation.Nes, true
	case "arika-srs", "arikasrs":
		return rotation.ArikaSrs, true
	case "tgm":
		return rotation.Tgm, true
	case "tgm3":
		return rotation.Tgm3, true
	default:
		return 0, false
	}
}

func parseRandomizerKind(v string) (randomizer.Kind, bool) {
	switch strings.ToLower(v) {
	case "memoryless":
		return randomizer.Memoryless, true
	case "nes":
		return randomizer.Nes, true
	case "bag7":
		return randomizer.Bag7, true
	case "bag7-seam-check", "bag7seamcheck":
		return randomizer.Bag7SeamCheck, true
	case "multi-bag-2", "multibag2":
		return randomizer.MultiBag2, true
	case "multi-bag-4", "multibag4":
		return randomizer.MultiBag4, true
	case "multi-bag-9", "multibag9":
		return randomizer.MultiBag9, true
	case "tgm1":
		return randomizer.Tgm1, true
	case "tgm2":
		return randomizer.Tgm2, true
	case "tgm3":
		return randomizer.Tgm3, true
	default:
		return 0, false
	}
}
