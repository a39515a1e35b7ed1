// Package iconset writes the Android and iOS launcher icon sets.
package iconset

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/rs/zerolog"

	"neonicons/internal/palette"
	"neonicons/internal/render"
)

// Generator renders icons and writes them to disk
type Generator struct {
	renderer *render.Renderer
	recorder Recorder
	logger   zerolog.Logger
}

// Option configures a Generator
type Option func(*Generator)

// WithRenderer overrides the default neon renderer
func WithRenderer(r *render.Renderer) Option {
	return func(g *Generator) {
		g.renderer = r
	}
}

// WithRecorder registers a recorder notified of every written file
func WithRecorder(r Recorder) Option {
	return func(g *Generator) {
		g.recorder = r
	}
}

// NewGenerator creates a generator that reports progress to logger
func NewGenerator(logger zerolog.Logger, opts ...Option) *Generator {
	g := &Generator{
		renderer: render.New(palette.Neon),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Android writes ic_launcher, ic_launcher_background and
// ic_launcher_foreground into mipmap-<density> under resDir, creating the
// directories as needed. It returns the number of files written.
func (g *Generator) Android(resDir string) (int, error) {
	written := 0
	for _, d := range androidDensities {
		dir := filepath.Join(resDir, d.MipmapDir())
		if err := ensureDir(dir); err != nil {
			return written, err
		}

		launcher, err := g.render(dir, d.Size)
		if err != nil {
			return written, err
		}
		if err := g.savePNG(filepath.Join(dir, LauncherFile), d.slot(LauncherFile), d.Size, launcher); err != nil {
			return written, err
		}
		written++

		bg := g.renderer.Background(d.Size)
		if err := g.savePNG(filepath.Join(dir, BackgroundFile), d.slot(BackgroundFile), d.Size, bg); err != nil {
			return written, err
		}
		written++

		// The foreground is rendered again rather than reusing launcher.
		fg, err := g.render(dir, d.Size)
		if err != nil {
			return written, err
		}
		if err := g.savePNG(filepath.Join(dir, ForegroundFile), d.slot(ForegroundFile), d.Size, fg); err != nil {
			return written, err
		}
		written++

		g.logger.Info().
			Str("density", d.Name).
			Int("size", d.Size).
			Msgf("Generated Android %s icons (%dx%d)", d.Name, d.Size, d.Size)
	}
	return written, nil
}

// IOS writes every appiconset slot into dir. The directory is expected to
// exist already.
func (g *Generator) IOS(dir string) (int, error) {
	written := 0
	for _, s := range iosSlots {
		path := filepath.Join(dir, s.Filename)
		img, err := g.render(path, s.Size)
		if err != nil {
			return written, err
		}
		if err := g.savePNG(path, s.Filename, s.Size, img); err != nil {
			return written, err
		}
		written++

		g.logger.Info().
			Str("file", s.Filename).
			Int("size", s.Size).
			Msgf("Generated iOS icon %s (%dx%d)", s.Filename, s.Size, s.Size)
	}
	return written, nil
}

// ICO writes a single ICOSize Windows icon to path, creating its directory
func (g *Generator) ICO(path string) error {
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return err
	}
	img, err := g.render(path, ICOSize)
	if err != nil {
		return err
	}
	data, err := encodeICO(path, img)
	if err != nil {
		return err
	}
	if err := g.save(File{Path: path, Slot: filepath.Base(path), Size: ICOSize, Data: data}); err != nil {
		return err
	}

	g.logger.Info().
		Str("file", path).
		Int("size", ICOSize).
		Msgf("Generated Windows icon %s (%dx%d)", filepath.Base(path), ICOSize, ICOSize)
	return nil
}

func (g *Generator) render(path string, size int) (*image.NRGBA, error) {
	img, err := g.renderer.RenderIcon(size)
	if err != nil {
		return nil, &Error{Kind: RenderFailure, Path: path, Err: err}
	}
	return img, nil
}

func (g *Generator) savePNG(path, slot string, size int, img image.Image) error {
	data, err := encodePNG(path, img)
	if err != nil {
		return err
	}
	return g.save(File{Path: path, Slot: slot, Size: size, Data: data})
}

func (g *Generator) save(f File) error {
	if err := writeFile(f.Path, f.Data); err != nil {
		return err
	}
	if g.recorder == nil {
		return nil
	}
	if err := g.recorder.Record(f); err != nil {
		return &Error{Kind: IOFailure, Path: f.Path, Err: fmt.Errorf("record: %w", err)}
	}
	return nil
}
