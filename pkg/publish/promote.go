package publish

import (
	"path/filepath"

	"github.com/arthur-debert/volt/pkg/errors"
	"github.com/arthur-debert/volt/pkg/filesystem"
)

func (pub *Publisher) promote(staging, out string, clean bool, res *Result) error {
	var err error
	if clean {
		err = pub.replace(staging, out, res)
	} else {
		err = pub.merge(staging, out, res)
	}
	if err != nil {
		return err
	}

	if pub.relax {
		if err := filesystem.RelaxPermissions(pub.fs, out); err != nil {
			return errors.Wrap(err, errors.ErrPromote, "could not relax output permissions").
				WithDetail("destination", out)
		}
	}
	return nil
}

// replace swaps the output directory for the staged tree.
func (pub *Publisher) replace(staging, out string, res *Result) error {
	if err := pub.fs.RemoveAll(out); err != nil {
		return errors.Wrapf(err, errors.ErrPromote, "could not remove output directory %q", out).
			WithDetail("destination", out)
	}
	if err := pub.fs.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrPromote, "could not create parent of %q", out).
			WithDetail("destination", out)
	}

	if err := pub.fs.Rename(staging, out); err != nil {
		// Rename fails across devices; fall back to a copy.
		pub.logger.Debug().Err(err).Msg("Rename failed, copying staged tree instead")
		stats, err := filesystem.CopyTree(pub.fs, staging, out, pub.logger)
		if err != nil {
			return errors.Wrapf(err, errors.ErrPromote, "could not copy build to %q", out).
				WithDetail("destination", out)
		}
		res.Promoted = stats.Copied
		res.PromoteSkipped = stats.Unchanged
		return nil
	}

	// Temp directories are private.
	if err := pub.fs.Chmod(out, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrPromote, "could not set permissions on %q", out).
			WithDetail("destination", out)
	}
	res.Promoted = res.Files
	return nil
}

// merge overlays the staged tree on the output directory, copying only
// files that are missing or different.
func (pub *Publisher) merge(staging, out string, res *Result) error {
	stats, err := filesystem.CopyTree(pub.fs, staging, out, pub.logger)
	if err != nil {
		return errors.Wrapf(err, errors.ErrPromote, "could not merge build into %q", out).
			WithDetail("destination", out)
	}
	res.Promoted = stats.Copied
	res.PromoteSkipped = stats.Unchanged
	return nil
}
