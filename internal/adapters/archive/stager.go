// Package archive unpacks verified bottle archives into staging directories.
package archive

import (
	"archive/tar"
	"bufio"
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"go.trai.ch/samogon/internal/core/domain"
	"go.trai.ch/samogon/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Stager = (*Stager)(nil)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Stager extracts archives into uniquely named directories below a base directory.
type Stager struct {
	baseDir string
	seq     atomic.Uint64
}

// NewStager creates a Stager rooted at baseDir. An empty baseDir means os.TempDir().
func NewStager(baseDir string) *Stager {
	if baseDir == "" {
		baseDir = os.TempDir()
	}
	return &Stager{baseDir: baseDir}
}

// Stage extracts the archive at path and returns the staging directory.
// On failure nothing is left behind; the archive itself is never modified.
func (s *Stager) Stage(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the artifact cache
	if err != nil {
		return "", archiveError(err, "failed to open archive", path)
	}
	defer func() { _ = f.Close() }()

	stream, err := decompress(bufio.NewReader(f))
	if err != nil {
		return "", zerr.With(err, "path", path)
	}
	defer func() { _ = stream.Close() }()

	staging := filepath.Join(s.baseDir, domain.StagingDirPrefix+s.uniqueSuffix(path))
	if err := os.Mkdir(staging, domain.DirPerm); err != nil {
		return "", archiveError(err, "failed to create staging directory", staging)
	}

	if err := unpack(ctx, staging, stream); err != nil {
		_ = os.RemoveAll(staging)
		return "", zerr.With(err, "path", path)
	}
	return staging, nil
}

func unpack(ctx context.Context, staging string, stream io.Reader) error {
	root, err := os.OpenRoot(staging)
	if err != nil {
		return archiveError(err, "failed to open staging directory", staging)
	}
	defer func() { _ = root.Close() }()

	return extract(ctx, root, tar.NewReader(stream))
}

// uniqueSuffix hashes the archive path with the current time and a sequence number
// so concurrent tasks never collide.
func (s *Stager) uniqueSuffix(path string) string {
	h := xxhash.New()
	_, _ = h.WriteString(path)
	_, _ = h.WriteString(strconv.FormatInt(time.Now().UnixNano(), 10))
	_, _ = h.WriteString(strconv.FormatUint(s.seq.Add(1), 10))
	return hex.EncodeToString(h.Sum(nil))
}

// decompress picks a decoder from the stream's magic number.
func decompress(r *bufio.Reader) (io.ReadCloser, error) {
	magic, err := r.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(errors.Join(domain.ErrArchive, err), "failed to read archive header")
	}

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, zerr.Wrap(errors.Join(domain.ErrArchive, err), "invalid gzip stream")
		}
		return gz, nil
	case bytes.Equal(magic, zstdMagic):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, zerr.Wrap(errors.Join(domain.ErrArchive, err), "invalid zstd stream")
		}
		return zr.IOReadCloser(), nil
	case bytes.Equal(magic, lz4Magic):
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrArchive, "unrecognized compression format"), "magic", hex.EncodeToString(magic))
	}
}

func extract(ctx context.Context, root *os.Root, tr *tar.Reader) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return zerr.Wrap(errors.Join(domain.ErrArchive, err), "failed to read tar entry")
		}

		name := filepath.Clean(filepath.FromSlash(hdr.Name))
		if name == "." {
			continue
		}
		if !filepath.IsLocal(name) {
			return zerr.With(zerr.Wrap(domain.ErrArchive, "entry escapes staging directory"), "entry", hdr.Name)
		}

		if err := extractEntry(root, hdr, name, tr); err != nil {
			return zerr.With(err, "entry", hdr.Name)
		}
	}
}

func extractEntry(root *os.Root, hdr *tar.Header, name string, r io.Reader) error {
	switch hdr.Typeflag {
	case tar.TypeDir:
		return entryError(root.MkdirAll(name, domain.DirPerm), "failed to create directory")

	case tar.TypeReg:
		if err := ensureParent(root, name); err != nil {
			return err
		}
		out, err := root.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, hdr.FileInfo().Mode().Perm())
		if err != nil {
			return entryError(err, "failed to create file")
		}
		_, copyErr := io.Copy(out, r)
		closeErr := out.Close()
		return entryError(errors.Join(copyErr, closeErr), "failed to write file")

	case tar.TypeSymlink:
		// Link targets are kept verbatim; bottles point into the prefix with
		// relative links. The root refuses to resolve them outside the staging dir.
		if err := ensureParent(root, name); err != nil {
			return err
		}
		return entryError(root.Symlink(filepath.FromSlash(hdr.Linkname), name), "failed to create symlink")

	case tar.TypeLink:
		target := filepath.Clean(filepath.FromSlash(hdr.Linkname))
		if !filepath.IsLocal(target) {
			return zerr.With(zerr.Wrap(domain.ErrArchive, "hard link escapes staging directory"), "target", hdr.Linkname)
		}
		if err := ensureParent(root, name); err != nil {
			return err
		}
		return entryError(root.Link(target, name), "failed to create hard link")

	default:
		// Device nodes, fifos and extended headers carry nothing a bottle needs.
		return nil
	}
}

func ensureParent(root *os.Root, name string) error {
	parent := filepath.Dir(name)
	if parent == "." {
		return nil
	}
	return entryError(root.MkdirAll(parent, domain.DirPerm), "failed to create directory")
}

func entryError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return zerr.Wrap(errors.Join(domain.ErrArchive, err), msg)
}

func archiveError(err error, msg, path string) error {
	return zerr.With(zerr.Wrap(errors.Join(domain.ErrArchive, err), msg), "path", path)
}
