// Package bottle implements the fetch task: cache lookup, resumable download,
// verification and promotion of a single bottle archive.
package bottle

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"net/http"
	"os"
	"strings"

	"go.trai.ch/samogon/internal/core/domain"
	"go.trai.ch/samogon/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BottleFetcher = (*Fetcher)(nil)

// Fetcher downloads bottles into the artifact cache.
type Fetcher struct {
	client   *http.Client
	cache    ports.ArtifactCache
	sink     ports.ProgressSink
	logger   ports.Logger
	platform domain.Platform
	token    string
	retries  int
}

// NewFetcher creates a Fetcher for the platform, token and retry budget in cfg.
func NewFetcher(
	client *http.Client,
	cache ports.ArtifactCache,
	sink ports.ProgressSink,
	logger ports.Logger,
	cfg domain.Config,
) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{
		client:   client,
		cache:    cache,
		sink:     sink,
		logger:   logger,
		platform: cfg.Platform,
		token:    cfg.AuthToken,
		retries:  cfg.FetchRetries,
	}
}

// Fetch returns the path of a verified archive for formula.
// A verified cache entry is returned without touching the network.
func (f *Fetcher) Fetch(ctx context.Context, formula domain.Formula) (domain.FetchOutcome, error) {
	bottle, err := formula.BottleFor(f.platform)
	if err != nil {
		return domain.FetchOutcome{}, err
	}

	entry := f.cache.Entry(domain.CacheKey(bottle.URL, &formula, f.platform))
	outcome := domain.FetchOutcome{Name: formula.Name, ArchivePath: entry.Path}

	f.sink.OnPhase(formula.Name, domain.PhaseSearchingCache)
	hit, err := f.cache.Lookup(entry, bottle.SHA256)
	if err != nil {
		return domain.FetchOutcome{}, zerr.Wrap(err, "failed to check cache")
	}
	if hit {
		outcome.Cached = true
		return outcome, nil
	}

	var lastErr error
	for attempt := 0; attempt <= f.retries; attempt++ {
		if err := ctx.Err(); err != nil {
			lastErr = err
			break
		}
		if attempt > 0 {
			f.sink.OnRetry(formula.Name, attempt+1, lastErr)
			f.logger.Warn(fmt.Sprintf("retrying %s (attempt %d of %d): %v", formula.Name, attempt+1, f.retries+1, lastErr))
		}

		lastErr = f.download(ctx, formula.Name, bottle, entry, attempt == 0)
		if lastErr == nil {
			if err := f.cache.Promote(entry); err != nil {
				return domain.FetchOutcome{}, zerr.Wrap(err, "failed to fetch bottle")
			}
			return outcome, nil
		}
	}

	return domain.FetchOutcome{}, zerr.Wrap(lastErr, "failed to fetch bottle")
}

// download performs one attempt. With resume set, existing partial bytes are kept
// and only the remainder is requested.
func (f *Fetcher) download(
	ctx context.Context,
	name string,
	bottle domain.Bottle,
	entry domain.CacheEntry,
	resume bool,
) (err error) {
	file, offset, err := f.cache.OpenIncomplete(entry, resume)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = cacheIOError(closeErr, "failed to close partial download", entry.IncompletePath)
		}
	}()

	sum := sha256.New()
	if offset > 0 {
		f.sink.OnPhase(name, domain.PhaseResuming)
		if _, err := io.Copy(sum, io.NewSectionReader(file, 0, offset)); err != nil {
			return cacheIOError(err, "failed to read partial download", entry.IncompletePath)
		}
	}

	resp, err := f.request(ctx, bottle.URL, offset)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusPartialContent && offset > 0:
	case resp.StatusCode == http.StatusOK:
		if offset > 0 {
			// The server ignored the range; start over.
			offset = 0
			sum.Reset()
		}
	default:
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrNetwork, "unexpected response status"),
			"status", resp.StatusCode), "url", bottle.URL)
	}

	if resp.ContentLength < 0 {
		return zerr.With(zerr.Wrap(domain.ErrContentLengthMissing, "response has no content length"), "url", bottle.URL)
	}
	total := offset + resp.ContentLength

	if err := file.Truncate(total); err != nil {
		return cacheIOError(err, "failed to allocate partial download", entry.IncompletePath)
	}
	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return cacheIOError(err, "failed to seek partial download", entry.IncompletePath)
	}

	f.sink.OnPhase(name, domain.PhaseDownloading)
	f.sink.OnBytes(name, offset, total)
	written, err := f.stream(file, sum, resp.Body, name, offset, total)
	if err != nil || offset+written != total {
		// Keep only the bytes that actually arrived so a resume starts at the right offset.
		_ = file.Truncate(offset + written)
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrNetwork, err), "download interrupted"), "url", bottle.URL)
	}

	f.sink.OnPhase(name, domain.PhaseVerifying)
	actual := hex.EncodeToString(sum.Sum(nil))
	if !strings.EqualFold(actual, bottle.SHA256) {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrDownloadCorrupted, "checksum mismatch"),
			"expected", bottle.SHA256), "actual", actual)
	}

	return nil
}

func (f *Fetcher) request(ctx context.Context, url string, offset int64) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrNetwork, err), "failed to create request"), "url", url)
	}
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}
	// Transparent decompression would hide the content length.
	req.Header.Set("Accept-Encoding", "identity")
	if offset > 0 {
		req.Header.Set("Range", fmt.Sprintf("bytes=%d-", offset))
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrNetwork, err), "request failed"), "url", url)
	}
	return resp, nil
}

// stream copies body into file and sum, reporting progress as bytes arrive.
func (f *Fetcher) stream(file *os.File, sum hash.Hash, body io.Reader, name string, offset, total int64) (int64, error) {
	pw := &progressWriter{sink: f.sink, name: name, transferred: offset, total: total}
	return io.Copy(io.MultiWriter(file, sum, pw), body)
}

type progressWriter struct {
	sink        ports.ProgressSink
	name        string
	transferred int64
	total       int64
}

func (w *progressWriter) Write(p []byte) (int, error) {
	w.transferred += int64(len(p))
	w.sink.OnBytes(w.name, w.transferred, w.total)
	return len(p), nil
}

func cacheIOError(err error, msg, path string) error {
	return zerr.With(zerr.Wrap(errors.Join(domain.ErrCacheIO, err), msg), "path", path)
}
