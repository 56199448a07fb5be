package manifest

import (
	"context"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/iamNilotpal/integrity/internal/adapters/checksum"
	"github.com/iamNilotpal/integrity/internal/adapters/compression"
	"github.com/iamNilotpal/integrity/internal/core/domain"
	"github.com/iamNilotpal/integrity/internal/core/ports"
	"github.com/iamNilotpal/integrity/internal/serialize"
	"github.com/iamNilotpal/integrity/pkg/errors"
	"github.com/iamNilotpal/integrity/pkg/pool"
	"github.com/iamNilotpal/integrity/pkg/system"
)

// Service builds and verifies manifests of a directory tree. A build
// checksums every regular file under the root and writes the result
// atomically; a verify recomputes the checksums and reports every file
// that changed, appeared corrupt, or went missing.
type Service struct {
	// Core components and configuration
	options     *domain.ManifestOptions // Configuration controlling manifest behavior
	fs          ports.FileSystem        // File listing and IO
	checksummer ports.Checksummer       // Algorithm entries are hashed with
	compressor  ports.Compressor        // Manifest and input (de)compression
	buffers     *pool.BufferPool        // Reusable read buffers for hashing
	logger      *zap.SugaredLogger      // Structured run logging

	// Lifecycle and concurrency control
	ctx    context.Context    // Controls the service's operational lifecycle
	cancel context.CancelFunc // Triggers graceful shutdown of in-flight runs
}

func New(opts *domain.ManifestOptions, fileSystem ports.FileSystem, logger *zap.SugaredLogger) (*Service, error) {
	if opts == nil {
		opts = &domain.ManifestOptions{}
	}
	opts = prepareDefaults(opts)

	if err := Validate(opts); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	checksummer, err := checksum.New(opts.ChecksumOptions)
	if err != nil {
		return nil, errors.NewIntegrityError(errors.ErrorChecksum, "create-checksummer", err)
	}

	compressor, err := compression.NewZstdCompression(compression.Options{
		Level:              opts.CompressionOptions.Level,
		EncoderConcurrency: opts.CompressionOptions.EncoderConcurrency,
		DecoderConcurrency: opts.CompressionOptions.DecoderConcurrency,
	})
	if err != nil {
		return nil, errors.NewIntegrityError(errors.ErrorCompression, "create-compressor", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	service := Service{
		fs:          fileSystem,
		options:     opts,
		checksummer: checksummer,
		compressor:  compressor,
		buffers:     pool.NewBufferPool(DefaultReadBufferSize),
		logger:      logger,
		ctx:         ctx,
		cancel:      cancel,
	}

	return &service, nil
}

// Build scans the root, checksums every regular file and writes the
// manifest atomically. The manifest file itself is never included in
// its own entries. Returns the manifest that was written.
func (s *Service) Build(ctx context.Context) (*domain.Manifest, error) {
	started := time.Now()

	// Fail before hashing the whole tree if the manifest can't be
	// written afterwards.
	if err := probeWritable(filepath.Dir(s.options.ManifestPath)); err != nil {
		return nil, errors.NewIntegrityError(errors.ErrorStorage, "probe-manifest-dir", err)
	}

	paths, err := s.fs.ListFiles(s.options.RootDir, s.options.ExcludeDirs)
	if err != nil {
		return nil, errors.NewIntegrityError(errors.ErrorStorage, "list-files", err)
	}

	type result struct {
		entry domain.ManifestEntry
		err   error
	}

	pathCh := make(chan string)
	results := make(chan result, len(paths))
	relManifest := s.relativeManifestPath()

	var wg sync.WaitGroup
	for i := 0; i < int(s.options.Workers); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rel := range pathCh {
				entry, err := s.checksumFile(rel)
				results <- result{entry: entry, err: err}
			}
		}()
	}

feed:
	for _, rel := range paths {
		if rel == relManifest {
			continue
		}
		select {
		case pathCh <- rel:
		case <-ctx.Done():
			break feed
		case <-s.ctx.Done():
			break feed
		}
	}
	close(pathCh)
	wg.Wait()
	close(results)

	var errs error
	entries := make([]domain.ManifestEntry, 0, len(paths))
	for res := range results {
		if res.err != nil {
			errs = multierr.Append(errs, res.err)
			continue
		}
		entries = append(entries, res.entry)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ctx.Err(); err != nil {
		return nil, err
	}
	if errs != nil {
		return nil, errs
	}

	slices.SortFunc(entries, func(a, b domain.ManifestEntry) int {
		return strings.Compare(a.Path, b.Path)
	})

	manifest := domain.Manifest{
		RunID:       uuid.NewString(),
		CreatedUnix: time.Now().Unix(),
		Algorithm:   s.checksummer.Name(),
		Entries:     entries,
	}

	payload := serialize.MarshalManifest(&manifest)
	if s.options.CompressionOptions.Enable {
		payload, err = s.compressor.Compress(payload)
		if err != nil {
			return nil, errors.NewIntegrityError(errors.ErrorCompression, "compress-manifest", err)
		}
	}

	if err := s.fs.CreateDir(filepath.Dir(s.options.ManifestPath), 0o755); err != nil {
		return nil, errors.NewIntegrityError(errors.ErrorStorage, "create-manifest-dir", err)
	}
	if err := s.fs.WriteFileAtomic(s.options.ManifestPath, 0o644, payload); err != nil {
		return nil, errors.NewIntegrityError(errors.ErrorManifest, "write-manifest", err)
	}

	s.logger.Infow(
		"manifest built",
		"runId", manifest.RunID,
		"algorithm", manifest.Algorithm,
		"files", len(manifest.Entries),
		"manifestBytes", len(payload),
		"elapsed", time.Since(started),
	)

	return &manifest, nil
}

// Verify reads the manifest, recomputes every entry's checksum and
// reports the files that changed or disappeared. Entries are checked
// with the algorithm recorded in the manifest, so a manifest built
// under a different configuration still verifies correctly.
func (s *Service) Verify(ctx context.Context) (*domain.VerifyReport, error) {
	started := time.Now()

	raw, err := s.fs.ReadFile(s.options.ManifestPath)
	if err != nil {
		return nil, errors.NewIntegrityError(errors.ErrorManifest, "read-manifest", err)
	}

	if compression.IsZstd(raw) {
		if raw, err = s.compressor.Decompress(raw); err != nil {
			return nil, errors.NewIntegrityError(errors.ErrorCompression, "decompress-manifest", err)
		}
	}

	manifest, err := serialize.UnMarshalManifest(raw)
	if err != nil {
		return nil, errors.NewIntegrityError(errors.ErrorManifest, "decode-manifest", err)
	}

	checksummer := s.checksummer
	if manifest.Algorithm != checksummer.Name() {
		if checksummer, err = checksum.New(&domain.ChecksumOptions{
			Algorithm: domain.ChecksumAlgorithm(manifest.Algorithm),
		}); err != nil {
			return nil, errors.NewIntegrityError(errors.ErrorVerification, "select-algorithm", err)
		}
	}

	type verdict struct {
		mismatch *domain.Mismatch
		err      error
	}

	entryCh := make(chan *domain.ManifestEntry)
	verdicts := make(chan verdict, len(manifest.Entries))

	var wg sync.WaitGroup
	for i := 0; i < int(s.options.Workers); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for entry := range entryCh {
				mismatch, err := s.verifyEntry(checksummer, entry)
				verdicts <- verdict{mismatch: mismatch, err: err}
			}
		}()
	}

feed:
	for i := range manifest.Entries {
		select {
		case entryCh <- &manifest.Entries[i]:
		case <-ctx.Done():
			break feed
		case <-s.ctx.Done():
			break feed
		}
	}
	close(entryCh)
	wg.Wait()
	close(verdicts)

	var errs error
	report := domain.VerifyReport{RunID: manifest.RunID, Algorithm: manifest.Algorithm}
	for v := range verdicts {
		if v.err != nil {
			errs = multierr.Append(errs, v.err)
			continue
		}
		report.Checked++
		if v.mismatch != nil {
			report.Mismatches = append(report.Mismatches, *v.mismatch)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ctx.Err(); err != nil {
		return nil, err
	}
	if errs != nil {
		return nil, errs
	}

	slices.SortFunc(report.Mismatches, func(a, b domain.Mismatch) int {
		return strings.Compare(a.Path, b.Path)
	})

	for _, m := range report.Mismatches {
		if m.Missing {
			s.logger.Warnw("file missing", "path", m.Path)
			continue
		}
		s.logger.Warnw("checksum mismatch", "path", m.Path, "want", m.Want, "got", m.Got)
	}

	s.logger.Infow(
		"verification finished",
		"runId", report.RunID,
		"algorithm", report.Algorithm,
		"checked", report.Checked,
		"mismatches", len(report.Mismatches),
		"elapsed", time.Since(started),
	)

	return &report, nil
}

// checksumFile reads one file into a pooled buffer and builds its
// manifest entry. Compressed inputs are expanded first when configured,
// so the recorded size and checksum describe the uncompressed contents.
func (s *Service) checksumFile(rel string) (domain.ManifestEntry, error) {
	buf := s.buffers.Get()
	defer s.buffers.Put(buf)

	full := filepath.Join(s.options.RootDir, filepath.FromSlash(rel))
	size, err := s.fs.ReadInto(full, buf)
	if err != nil {
		return domain.ManifestEntry{}, errors.NewIntegrityError(errors.ErrorStorage, "read-file", err)
	}

	data := buf.Bytes()
	if s.options.CompressionOptions.DecompressInputs && compression.IsZstd(data) {
		if data, err = s.compressor.Decompress(data); err != nil {
			return domain.ManifestEntry{}, errors.NewIntegrityError(errors.ErrorCompression, "decompress-input", err)
		}
		size = uint64(len(data))
	}

	return domain.ManifestEntry{
		Path:     rel,
		Size:     size,
		Checksum: s.checksummer.Calculate(data),
	}, nil
}

func (s *Service) verifyEntry(checksummer ports.Checksummer, entry *domain.ManifestEntry) (*domain.Mismatch, error) {
	full := filepath.Join(s.options.RootDir, filepath.FromSlash(entry.Path))

	exists, err := s.fs.Exists(full)
	if err != nil {
		return nil, errors.NewIntegrityError(errors.ErrorVerification, "stat-file", err)
	}
	if !exists {
		return &domain.Mismatch{Path: entry.Path, Want: entry.Checksum, Missing: true}, nil
	}

	buf := s.buffers.Get()
	defer s.buffers.Put(buf)

	size, err := s.fs.ReadInto(full, buf)
	if err != nil {
		return nil, errors.NewIntegrityError(errors.ErrorVerification, "read-file", err)
	}

	data := buf.Bytes()
	if s.options.CompressionOptions.DecompressInputs && compression.IsZstd(data) {
		if data, err = s.compressor.Decompress(data); err != nil {
			return nil, errors.NewIntegrityError(errors.ErrorCompression, "decompress-input", err)
		}
		size = uint64(len(data))
	}

	got := checksummer.Calculate(data)
	if got != entry.Checksum || size != entry.Size {
		return &domain.Mismatch{Path: entry.Path, Want: entry.Checksum, Got: got}, nil
	}

	return nil, nil
}

// relativeManifestPath returns the manifest location relative to the
// root with forward slashes, or "" when it lives outside the root.
func (s *Service) relativeManifestPath() string {
	rel, err := filepath.Rel(s.options.RootDir, s.options.ManifestPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return ""
	}
	return filepath.ToSlash(rel)
}

// Close stops in-flight runs and releases the service's resources. The
// context bounds how long shutdown may take.
func (s *Service) Close(ctx context.Context) error {
	s.cancel()

	return system.RunWithContext(ctx, func(context.Context) error {
		return s.compressor.Close()
	})
}
