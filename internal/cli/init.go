package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/volt/internal/commands"
	"github.com/arthur-debert/volt/pkg/config"
	"github.com/arthur-debert/volt/pkg/errors"
	"github.com/arthur-debert/volt/pkg/filesystem"
	"github.com/arthur-debert/volt/pkg/paths"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// initOptions are the inputs of volt init.
type initOptions struct {
	Dir     string
	Starter config.Starter
	Force   bool
}

// initResult lists what volt init created, relative to the project.
type initResult struct {
	ProjectDir string
	ConfigFile string
	Dirs       []string
}

func newInitCmd(g *globalFlags) *cobra.Command {
	var (
		opts   initOptions
		format string
	)

	cmd := &cobra.Command{
		Use:     "init [dir]",
		Short:   commands.MsgInitShort,
		Long:    commands.MsgInitLong,
		Example: commands.MsgInitExample,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := g.renderer(cmd, format)
			if err != nil {
				return err
			}

			opts.Dir = "."
			if len(args) == 1 {
				opts.Dir = args[0]
			} else if g.projectDir != "" {
				opts.Dir = g.projectDir
			}

			res, err := initProject(filesystem.NewOS(), opts)
			if err != nil {
				return err
			}

			if err := r.RenderMessage(fmt.Sprintf(commands.MsgProjectCreated, res.ProjectDir)); err != nil {
				return err
			}
			if err := r.RenderMessage(fmt.Sprintf(commands.MsgFileCreated, res.ConfigFile)); err != nil {
				return err
			}
			for _, dir := range res.Dirs {
				if err := r.RenderMessage(fmt.Sprintf(commands.MsgDirCreated, dir)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Starter.Name, "name", "", commands.MsgFlagName)
	cmd.Flags().StringVar(&opts.Starter.URL, "url", "", commands.MsgFlagURL)
	cmd.Flags().StringVar(&opts.Starter.Theme, "theme", "", commands.MsgFlagTheme)
	cmd.Flags().BoolVar(&opts.Force, "force", false, commands.MsgFlagForce)
	cmd.Flags().StringVarP(&format, "format", "f", "auto", commands.MsgFlagFormat)

	return cmd
}

// initProject writes a starter project file and the default content
// directories under opts.Dir.
func initProject(fsys afero.Fs, opts initOptions) (*initResult, error) {
	dir, err := filepath.Abs(paths.ExpandHome(opts.Dir))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid directory %q", opts.Dir)
	}

	if !opts.Force {
		for _, name := range config.FileNames {
			path := filepath.Join(dir, name)
			exists, err := filesystem.Exists(fsys, path)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrInternal, "could not check %s", path)
			}
			if exists {
				return nil, errors.Newf(errors.ErrAlreadyExists, commands.MsgErrProjectFound, path).
					WithDetail("path", path)
			}
		}
	}

	content, err := config.Generate(opts.Starter)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Default(dir)
	if err != nil {
		return nil, err
	}
	cfg.Theme.Name = opts.Starter.Theme

	res := &initResult{ProjectDir: dir, ConfigFile: config.FileName}
	dirs := []string{cfg.ContentsDir(), cfg.StaticDir()}
	if themeDir := cfg.ThemeTemplatesDir(); themeDir != "" {
		dirs = append(dirs, themeDir)
	}
	for _, d := range dirs {
		if err := fsys.MkdirAll(d, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "could not create %s", d).
				WithDetail("path", d)
		}
		rel, err := filepath.Rel(dir, d)
		if err != nil {
			rel = d
		}
		res.Dirs = append(res.Dirs, filepath.ToSlash(rel))
	}

	path := filepath.Join(dir, config.FileName)
	if err := afero.WriteFile(fsys, path, []byte(content), os.FileMode(0644)); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "could not write %s", path).
			WithDetail("path", path)
	}
	return res, nil
}
