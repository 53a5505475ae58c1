package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ErrNoAudioContext is returned by the audio loaders when the manager was
// created without an audio context (headless runs and tests).
var ErrNoAudioContext = errors.New("audio context not available")

// ResourceManager loads images and sounds from a file system and caches
// them by path, so every asset is decoded once.
//
// Paths are slash separated and relative to the root of the file system,
// e.g. "assets/graphics/soil/o.png". The manager is not safe for concurrent
// use; the game loads everything from the main goroutine.
type ResourceManager struct {
	fsys         fs.FS
	audioContext *audio.Context

	imageCache  map[string]*ebiten.Image
	folderCache map[string][]*ebiten.Image
	audioCache  map[string]*audio.Player

	// sound ID -> file path
	audioPaths map[string]string
}

// NewResourceManager creates a manager reading straight from the operating
// system, relative to the working directory. Absolute paths are accepted,
// which is what TMX tileset references resolve to.
// audioContext may be nil, in which case every audio load fails with
// ErrNoAudioContext.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return NewResourceManagerFS(osFS{}, audioContext)
}

// osFS opens OS paths as they are. Unlike os.DirFS it is not rooted.
type osFS struct{}

func (osFS) Open(name string) (fs.File, error) {
	return os.Open(filepath.FromSlash(name))
}

// NewResourceManagerFS creates a manager reading from fsys.
func NewResourceManagerFS(fsys fs.FS, audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		fsys:         fsys,
		audioContext: audioContext,
		imageCache:   make(map[string]*ebiten.Image),
		folderCache:  make(map[string][]*ebiten.Image),
		audioCache:   make(map[string]*audio.Player),
		audioPaths:   make(map[string]string),
	}
}

// clean converts an OS or slash path into the form fs.FS expects.
func clean(p string) string {
	p = path.Clean(filepath.ToSlash(p))
	return strings.TrimPrefix(p, "./")
}

// LoadImage decodes the image at p, returning the cached copy on later calls.
func (rm *ResourceManager) LoadImage(p string) (*ebiten.Image, error) {
	p = clean(p)
	if img, ok := rm.imageCache[p]; ok {
		return img, nil
	}

	file, err := rm.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", p, err)
	}
	defer file.Close()

	decoded, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}

	img := ebiten.NewImageFromImage(decoded)
	rm.imageCache[p] = img
	return img, nil
}

// GetImage returns a cached image or nil.
func (rm *ResourceManager) GetImage(p string) *ebiten.Image {
	return rm.imageCache[clean(p)]
}

// LoadFolder loads every image in directory dir as an animation.
//
// Frames are ordered by their numeric file name when all names are numbers
// (0.png, 1.png, ... 10.png), otherwise lexically. An empty directory is an
// error so callers can fall back to placeholder art.
func (rm *ResourceManager) LoadFolder(dir string) ([]*ebiten.Image, error) {
	dir = clean(dir)
	if frames, ok := rm.folderCache[dir]; ok {
		return frames, nil
	}

	entries, err := fs.ReadDir(rm.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(path.Ext(e.Name())) {
		case ".png", ".jpg", ".jpeg":
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("folder %s contains no images", dir)
	}
	sortFrameNames(names)

	frames := make([]*ebiten.Image, 0, len(names))
	for _, name := range names {
		img, err := rm.LoadImage(path.Join(dir, name))
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}

	rm.folderCache[dir] = frames
	return frames, nil
}

func sortFrameNames(names []string) {
	numbers := make(map[string]int, len(names))
	for _, name := range names {
		n, err := strconv.Atoi(strings.TrimSuffix(name, path.Ext(name)))
		if err != nil {
			sort.Strings(names)
			return
		}
		numbers[name] = n
	}
	sort.Slice(names, func(i, j int) bool {
		return numbers[names[i]] < numbers[names[j]]
	})
}

// RegisterAudio associates a sound ID with a file path.
func (rm *ResourceManager) RegisterAudio(id, p string) {
	rm.audioPaths[id] = clean(p)
}

// AudioPath returns the path registered for a sound ID.
func (rm *ResourceManager) AudioPath(id string) (string, bool) {
	p, ok := rm.audioPaths[id]
	return p, ok
}

// LoadAudio loads a looping player, for background music.
func (rm *ResourceManager) LoadAudio(p string) (*audio.Player, error) {
	return rm.loadPlayer(p, true)
}

// LoadSoundEffect loads a one-shot player.
func (rm *ResourceManager) LoadSoundEffect(p string) (*audio.Player, error) {
	return rm.loadPlayer(p, false)
}

// GetAudioPlayer returns a cached player or nil.
func (rm *ResourceManager) GetAudioPlayer(p string) *audio.Player {
	return rm.audioCache[clean(p)]
}

func (rm *ResourceManager) loadPlayer(p string, loop bool) (*audio.Player, error) {
	p = clean(p)
	if player, ok := rm.audioCache[p]; ok {
		return player, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("failed to load audio %s: %w", p, ErrNoAudioContext)
	}

	data, err := fs.ReadFile(rm.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", p, err)
	}

	stream, err := decodeAudio(p, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}

	player, err := rm.audioContext.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", p, err)
	}

	rm.audioCache[p] = player
	return player, nil
}

type audioStream interface {
	io.ReadSeeker
	Length() int64
}

func decodeAudio(p string, r io.ReadSeeker) (audioStream, error) {
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".mp3":
		s, err := mp3.DecodeWithoutResampling(r)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", p, err)
		}
		return s, nil
	case ".ogg":
		s, err := vorbis.DecodeWithoutResampling(r)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", p, err)
		}
		return s, nil
	case ".wav":
		s, err := wav.DecodeWithoutResampling(r)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", p, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav)", ext)
	}
}
