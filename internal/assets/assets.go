package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// File is a static asset discovered under the source directory.
type File struct {
	Path        string // Absolute path on disk.
	RelPath     string // Slash-separated path relative to the source root.
	Size        int64
	ContentHash string // SHA-256 hex digest of the file content.
}

// Options selects which files Walk returns.
type Options struct {
	RootDir string
	Include []string
	Exclude []string
}

// Walk returns every regular file under RootDir that matches Include and
// does not match Exclude. A missing RootDir yields no files.
func Walk(opts Options) ([]File, error) {
	if err := multierr.Combine(ValidatePatterns(opts.Include), ValidatePatterns(opts.Exclude)); err != nil {
		return nil, err
	}

	root, err := filepath.Abs(opts.RootDir)
	if err != nil {
		return nil, fmt.Errorf("assets: resolve root: %w", err)
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var files []File
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.Type().IsRegular() {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if !MatchesInclude(relPath, opts.Include) || MatchesExclude(relPath, opts.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		hash, err := hashFile(path)
		if err != nil {
			return err
		}

		files = append(files, File{
			Path:        path,
			RelPath:     filepath.ToSlash(relPath),
			Size:        info.Size(),
			ContentHash: hash,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assets: traversal: %w", err)
	}
	return files, nil
}

// CopyResult counts what Copy did.
type CopyResult struct {
	Copied    int
	Unchanged int
}

// Copy writes files below destDir, keeping their relative paths. Files whose
// destination already has the same content are left alone. Every failed file
// is reported; one failure does not stop the others.
func Copy(files []File, destDir string, logger *zap.Logger) (CopyResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		res  CopyResult
		errs error
	)
	for _, f := range files {
		dest := filepath.Join(destDir, filepath.FromSlash(f.RelPath))
		if hash, err := hashFile(dest); err == nil && hash == f.ContentHash {
			res.Unchanged++
			continue
		}
		if err := copyFile(f.Path, dest); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("copy %s: %w", f.RelPath, err))
			continue
		}
		logger.Debug("copied asset", zap.String("path", f.RelPath), zap.Int64("size", f.Size))
		res.Copied++
	}
	return res, errs
}

func copyFile(src, dest string) (err error) {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, out.Close()) }()

	_, err = io.Copy(out, in)
	return err
}

// hashFile computes the SHA-256 digest of the given file.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
