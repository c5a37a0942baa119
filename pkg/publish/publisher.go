package publish

import (
	"path/filepath"
	"time"

	"github.com/arthur-debert/volt/pkg/artifact"
	"github.com/arthur-debert/volt/pkg/errors"
	"github.com/arthur-debert/volt/pkg/filesystem"
	"github.com/arthur-debert/volt/pkg/logging"
	"github.com/arthur-debert/volt/pkg/plan"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// DefaultStagingPrefix is the name prefix of staging directories.
const DefaultStagingPrefix = "volt-build-"

// Options configures a Publisher.
type Options struct {
	// FS is the filesystem to write to. Defaults to the OS filesystem.
	FS afero.Fs

	// StagingRoot is the parent of staging directories. Empty means the
	// system temp directory.
	StagingRoot string

	// StagingPrefix defaults to DefaultStagingPrefix.
	StagingPrefix string

	// RelaxPermissions makes the promoted tree world writable.
	RelaxPermissions bool

	Logger zerolog.Logger
}

// Publisher writes plans to an output directory.
type Publisher struct {
	fs            afero.Fs
	stagingRoot   string
	stagingPrefix string
	relax         bool
	logger        zerolog.Logger
}

// Result describes a finished build.
type Result struct {
	// OutputDir is the absolute public output directory.
	OutputDir string `json:"outputDir" yaml:"outputDir"`
	Clean     bool   `json:"clean" yaml:"clean"`

	// Dirs is the number of leaf directories created in staging.
	Dirs  int `json:"dirs" yaml:"dirs"`
	Files int `json:"files" yaml:"files"`

	// Written and Unchanged split Files by what the artifact write did.
	Written   int `json:"written" yaml:"written"`
	Unchanged int `json:"unchanged" yaml:"unchanged"`

	// Promoted counts files copied into the output directory by a merge
	// promotion, PromoteSkipped the ones already identical there. A clean
	// promotion moves the whole tree and sets Promoted to Files.
	Promoted       int `json:"promoted" yaml:"promoted"`
	PromoteSkipped int `json:"promoteSkipped" yaml:"promoteSkipped"`

	Duration time.Duration `json:"duration" yaml:"duration"`
}

// New creates a Publisher.
func New(opts Options) *Publisher {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("publish")
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	prefix := opts.StagingPrefix
	if prefix == "" {
		prefix = DefaultStagingPrefix
	}

	return &Publisher{
		fs:            fs,
		stagingRoot:   opts.StagingRoot,
		stagingPrefix: prefix,
		relax:         opts.RelaxPermissions,
		logger:        logger,
	}
}

// Build stages p and promotes it to outputDir. With clean the output
// directory is replaced, otherwise the staged tree is merged into it.
//
// The staging directory is removed on every path out of Build.
func (pub *Publisher) Build(p *plan.Plan, outputDir string, clean bool) (*Result, error) {
	start := time.Now()

	out, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid output directory %q", outputDir)
	}

	res := &Result{OutputDir: out, Clean: clean}
	logger := pub.logger.With().Str("output", out).Bool("clean", clean).Logger()

	staging, err := afero.TempDir(pub.fs, pub.stagingRoot, pub.stagingPrefix)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrStaging, "could not create staging directory").
			WithDetail("root", pub.stagingRoot)
	}
	defer func() {
		if err := pub.fs.RemoveAll(staging); err != nil {
			logger.Warn().Err(err).Str("staging", staging).Msg("Could not remove staging directory")
		}
	}()
	logger.Debug().Str("staging", staging).Msg("Staging build")

	if err := pub.stage(p, staging, res); err != nil {
		return nil, err
	}

	if err := pub.promote(staging, out, clean, res); err != nil {
		logger.Error().Err(err).
			Str("staging", staging).
			Msg("Promoting the build failed, the output directory may need manual inspection")
		return nil, err
	}

	res.Duration = time.Since(start)
	logger.Info().
		Int("files", res.Files).
		Int("promoted", res.Promoted).
		Int("skipped", res.PromoteSkipped).
		Dur("duration", res.Duration).
		Msg("Build published")
	return res, nil
}

func (pub *Publisher) stage(p *plan.Plan, staging string, res *Result) error {
	for n := range p.DirNodes() {
		dir := filepath.Join(staging, filepath.FromSlash(n.Path()))
		if err := pub.fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "could not create directory %q", n.Path()).
				WithDetail("path", n.Path())
		}
		res.Dirs++
	}

	for n := range p.FileNodes() {
		a := n.Artifact()
		outcome, err := a.Write(pub.fs, staging)
		if err != nil {
			return err
		}
		res.Files++
		if outcome == artifact.OutcomeUnchanged {
			res.Unchanged++
		} else {
			res.Written++
		}
		pub.logger.Trace().Str("url", a.URL()).Stringer("outcome", outcome).Msg("Staged")
	}
	return nil
}
