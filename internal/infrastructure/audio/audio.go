// Package audio plays the named clips of the audio catalog.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/natac13/top-down-cartoon-game/internal/infrastructure/config"
)

// SampleRate of the shared audio context
const SampleRate = 44100

type clip struct {
	player *audio.Player
	loop   bool
}

// Player owns one ebiten audio player per catalog clip
type Player struct {
	clips  map[string]*clip
	logger *slog.Logger
}

// Load decodes every clip in specs from fsys under dir. A clip whose file is
// missing or undecodable is skipped with a warning; playing it later does
// nothing. Without dir the game runs silent.
func Load(ctx *audio.Context, fsys fs.FS, dir string, specs []config.AudioSpec, master float64, logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Player{clips: make(map[string]*clip, len(specs)), logger: logger}

	root := dir
	if root == "" {
		root = "."
	}
	if _, err := fs.Stat(fsys, root); err != nil {
		logger.Debug("no audio to load", "dir", dir, "err", err)
		return p
	}

	for _, spec := range specs {
		ap, err := newPlayer(ctx, fsys, path.Join(dir, spec.File), spec.Loop)
		if err != nil {
			logger.Warn("audio clip skipped", "clip", spec.ID, "file", spec.File, "err", err)
			continue
		}
		ap.SetVolume(spec.Volume * master)
		p.clips[spec.ID] = &clip{player: ap, loop: spec.Loop}
	}
	logger.Debug("audio loaded", "clips", len(p.clips), "catalog", len(specs))
	return p
}

func newPlayer(ctx *audio.Context, fsys fs.FS, name string, loop bool) (*audio.Player, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, err
	}

	stream, length, err := decode(ctx.SampleRate(), name, data)
	if err != nil {
		return nil, err
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, length)
	}
	return ctx.NewPlayer(src)
}

func decode(sampleRate int, name string, data []byte) (io.ReadSeeker, int64, error) {
	r := bytes.NewReader(data)
	switch format(name) {
	case "wav":
		s, err := wav.DecodeWithSampleRate(sampleRate, r)
		if err != nil {
			return nil, 0, fmt.Errorf("decode wav %q: %w", name, err)
		}
		return s, s.Length(), nil
	case "mp3":
		s, err := mp3.DecodeWithSampleRate(sampleRate, r)
		if err != nil {
			return nil, 0, fmt.Errorf("decode mp3 %q: %w", name, err)
		}
		return s, s.Length(), nil
	default:
		return nil, 0, fmt.Errorf("unsupported audio format %q", name)
	}
}

func format(name string) string {
	return strings.TrimPrefix(strings.ToLower(path.Ext(name)), ".")
}

// Play starts a clip from the beginning. A looping clip that is already
// playing keeps going.
func (p *Player) Play(id string) {
	c, ok := p.clips[id]
	if !ok {
		return
	}
	if c.loop && c.player.IsPlaying() {
		return
	}
	if err := c.player.Rewind(); err != nil {
		p.logger.Warn("audio rewind failed", "clip", id, "err", err)
		return
	}
	c.player.Play()
}

// Stop pauses a clip and rewinds it
func (p *Player) Stop(id string) {
	c, ok := p.clips[id]
	if !ok {
		return
	}
	c.player.Pause()
	if err := c.player.Rewind(); err != nil {
		p.logger.Warn("audio rewind failed", "clip", id, "err", err)
	}
}

// Loaded reports whether id was decoded
func (p *Player) Loaded(id string) bool {
	_, ok := p.clips[id]
	return ok
}

// Silent discards every request and remembers what was asked, for -mute
// and for tests
type Silent struct {
	Played  []string
	Stopped []string
}

func (s *Silent) Play(id string) { s.Played = append(s.Played, id) }
func (s *Silent) Stop(id string) { s.Stopped = append(s.Stopped, id) }
