// Package chime plays notification sounds for toast levels.
package chime

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"github.com/crouton-dev/crouton/pkg/toast"
)

// Player handles sound playback for toasts. Sounds are decoded once
// and cached; the speaker is initialized lazily on first play.
type Player struct {
	mu     sync.Mutex
	logger *slog.Logger

	enabled bool
	volume  float64

	initialized bool
	sampleRate  beep.SampleRate

	sounds map[toast.Level]string

	cache   map[string]*cachedSound
	cacheMu sync.RWMutex
}

// cachedSound holds a decoded sound ready for playback.
type cachedSound struct {
	buffer *beep.Buffer
	path   string
}

// NewPlayer creates an audio player.
func NewPlayer(logger *slog.Logger) *Player {
	if logger == nil {
		logger = slog.Default()
	}

	return &Player{
		logger:     logger,
		enabled:    true,
		volume:     1.0,
		sampleRate: beep.SampleRate(44100),
		sounds:     make(map[toast.Level]string),
		cache:      make(map[string]*cachedSound),
	}
}

// SetEnabled turns playback on or off without clearing the sound map.
func (p *Player) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = enabled
}

// Enabled returns whether playback is on.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// SetVolume sets the playback volume (0.0 to 1.0).
func (p *Player) SetVolume(volume float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	p.volume = volume
	p.logger.Debug("volume set", "volume", volume)
}

// Volume returns the current volume.
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}

// SetSound registers the sound file played for a level. An empty path
// silences the level.
func (p *Player) SetSound(level toast.Level, path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if path == "" {
		delete(p.sounds, level)
		return
	}
	p.sounds[level] = path
}

// PlayFor plays the sound registered for a level. Levels without a
// sound are silent.
func (p *Player) PlayFor(level toast.Level) error {
	p.mu.Lock()
	path := p.sounds[level]
	p.mu.Unlock()

	if path == "" {
		return nil
	}
	return p.Play(path)
}

// Play plays a sound file. Supports WAV, OGG and MP3 formats.
func (p *Player) Play(path string) error {
	if path == "" || !p.Enabled() {
		return nil
	}
	path = expandPath(path)

	p.cacheMu.RLock()
	cached, ok := p.cache[path]
	p.cacheMu.RUnlock()

	if ok {
		return p.playBuffer(cached.buffer)
	}

	buffer, err := p.loadSound(path)
	if err != nil {
		p.logger.Warn("failed to load sound", "path", path, "error", err)
		return err
	}

	p.cacheMu.Lock()
	p.cache[path] = &cachedSound{buffer: buffer, path: path}
	p.cacheMu.Unlock()

	return p.playBuffer(buffer)
}

// Preload loads a sound file into the cache for faster playback.
func (p *Player) Preload(path string) error {
	if path == "" {
		return nil
	}
	path = expandPath(path)

	p.cacheMu.RLock()
	_, ok := p.cache[path]
	p.cacheMu.RUnlock()

	if ok {
		return nil
	}

	buffer, err := p.loadSound(path)
	if err != nil {
		return err
	}

	p.cacheMu.Lock()
	p.cache[path] = &cachedSound{buffer: buffer, path: path}
	p.cacheMu.Unlock()

	p.logger.Debug("preloaded sound", "path", path)
	return nil
}

// loadSound loads and decodes a sound file into a buffer.
func (p *Player) loadSound(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound file: %w", err)
	}
	defer func() { _ = f.Close() }()

	ext := strings.ToLower(filepath.Ext(path))

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg", ".oga":
		streamer, format, err = vorbis.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to decode sound: %w", err)
	}
	defer func() { _ = streamer.Close() }()

	if err := p.ensureInitialized(format.SampleRate); err != nil {
		return nil, err
	}

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return buffer, nil
}

// ensureInitialized initializes the speaker if not already done.
func (p *Player) ensureInitialized(sampleRate beep.SampleRate) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	bufferSize := sampleRate.N(time.Millisecond * 100)
	if err := speaker.Init(sampleRate, bufferSize); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	p.sampleRate = sampleRate
	p.initialized = true
	p.logger.Debug("speaker initialized", "sample_rate", sampleRate)
	return nil
}

// playBuffer plays a buffered sound.
func (p *Player) playBuffer(buffer *beep.Buffer) error {
	if buffer == nil {
		return nil
	}

	p.mu.Lock()
	volume := p.volume
	sampleRate := p.sampleRate
	p.mu.Unlock()

	var streamer beep.Streamer = buffer.Streamer(0, buffer.Len())

	if buffer.Format().SampleRate != sampleRate {
		streamer = beep.Resample(4, buffer.Format().SampleRate, sampleRate, streamer)
	}

	if volume < 1.0 {
		streamer = &effects.Volume{
			Streamer: streamer,
			Base:     2,
			Volume:   volumeToDecibels(volume),
			Silent:   volume == 0,
		}
	}

	speaker.Play(streamer)
	return nil
}

// ClearCache clears the sound cache.
func (p *Player) ClearCache() {
	p.cacheMu.Lock()
	defer p.cacheMu.Unlock()
	p.cache = make(map[string]*cachedSound)
	p.logger.Debug("sound cache cleared")
}

// InvalidateCache removes a specific path from the cache.
func (p *Player) InvalidateCache(path string) {
	p.cacheMu.Lock()
	defer p.cacheMu.Unlock()
	delete(p.cache, expandPath(path))
}

// Close stops all playback and releases resources.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		speaker.Close()
		p.initialized = false
	}

	p.ClearCache()
	p.logger.Debug("audio player closed")
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// volumeToDecibels converts a linear volume (0-1) to decibels.
func volumeToDecibels(volume float64) float64 {
	if volume <= 0 {
		return -100 // effectively silent
	}
	return 20 * math.Log10(volume)
}
