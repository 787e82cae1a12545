package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/natac13/top-down-cartoon-game/internal/application/system"
	"github.com/natac13/top-down-cartoon-game/internal/domain/entity"
)

// Replayer handles input playback from recorded data.
// It implements system.InputSource; past the last frame it reports no input.
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Next returns the input for the current frame and advances
func (r *Replayer) Next() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return ToInputState(fi), true
}

// GetInput implements system.InputSource
func (r *Replayer) GetInput() system.InputState {
	in, _ := r.Next()
	return in
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Map returns the map the replay was recorded on
func (r *Replayer) Map() string {
	return r.data.Map
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// ToInputState converts a recorded frame to live input
func ToInputState(fi FrameInput) system.InputState {
	return system.InputState{
		Up:      fi.U,
		Down:    fi.D,
		Left:    fi.L,
		Right:   fi.R,
		Pressed: entity.ParseDirection(fi.P),
		Attack:  fi.A,
		Confirm: fi.C,
	}
}

// FromInputState converts live input to a recorded frame
func FromInputState(frame int, in system.InputState) FrameInput {
	fi := FrameInput{
		F: frame,
		U: in.Up,
		D: in.Down,
		L: in.Left,
		R: in.Right,
		A: in.Attack,
		C: in.Confirm,
	}
	if in.Pressed != entity.DirNone {
		fi.P = in.Pressed.String()
	}
	return fi
}
