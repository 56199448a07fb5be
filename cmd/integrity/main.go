// Command integrity builds and verifies checksum manifests for
// directory trees, and exposes the checksum algorithms directly for
// single files.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/iamNilotpal/integrity/config"
	"github.com/iamNilotpal/integrity/internal/adapters/checksum"
	"github.com/iamNilotpal/integrity/internal/adapters/compression"
	"github.com/iamNilotpal/integrity/internal/core/domain"
	"github.com/iamNilotpal/integrity/internal/core/services/manifest"
	"github.com/iamNilotpal/integrity/internal/serialize"
	"github.com/iamNilotpal/integrity/pkg/errors"
	"github.com/iamNilotpal/integrity/pkg/fs"
	"github.com/iamNilotpal/integrity/pkg/logger"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "sum":
		handleSum(os.Args[2:])
	case "build":
		handleBuild(os.Args[2:])
	case "verify":
		handleVerify(os.Args[2:])
	case "show":
		handleShow(os.Args[2:])
	case "algorithms":
		handleAlgorithms()
	case "version":
		fmt.Printf("integrity version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Integrity CLI - Checksum Manifests for Directory Trees")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  integrity <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  sum [-algo name] [file...]     Print the checksum of each file (stdin if none)")
	fmt.Println("  build [options]                Build a manifest for a directory tree")
	fmt.Println("  verify [options]               Verify a directory tree against its manifest")
	fmt.Println("  show [-manifest path]          Decode a manifest and print it as JSON")
	fmt.Println("  algorithms                     List supported checksum algorithms")
	fmt.Println("  version                        Show version information")
	fmt.Println("  help                           Show this help message")
	fmt.Println()
	fmt.Println("Options for build and verify:")
	fmt.Println("  -config path         YAML config file")
	fmt.Println("  -root dir            Directory tree to scan (default \".\")")
	fmt.Println("  -manifest path       Manifest location (default \"<root>/.integrity.manifest\")")
	fmt.Println("  -algo name           Checksum algorithm for entries (default \"crc32\")")
	fmt.Println("  -exclude a,b         Directory names to skip at any depth")
	fmt.Println("  -workers n           Concurrent checksum workers (default: CPU count)")
	fmt.Println("  -compress            Compress the written manifest with zstd")
	fmt.Println("  -decompress-inputs   Checksum zstd inputs by their uncompressed contents")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  integrity sum -algo crc16-ccitt firmware.bin")
	fmt.Println("  integrity build -root ./artifacts -exclude .git,tmp")
	fmt.Println("  integrity verify -root ./artifacts -json")
	fmt.Println("  integrity show -manifest ./artifacts/.integrity.manifest")
}

// runFlags carries the flags shared by the build and verify commands.
type runFlags struct {
	fl               *flag.FlagSet
	cfgPath          *string
	root             *string
	manifestPath     *string
	algo             *string
	exclude          *string
	workers          *uint
	compress         *bool
	decompressInputs *bool
}

func newRunFlags(name string) *runFlags {
	fl := flag.NewFlagSet(name, flag.ExitOnError)
	return &runFlags{
		fl:               fl,
		cfgPath:          fl.String("config", "", "YAML config file"),
		root:             fl.String("root", "", "directory tree to scan"),
		manifestPath:     fl.String("manifest", "", "manifest location"),
		algo:             fl.String("algo", "", "checksum algorithm for entries"),
		exclude:          fl.String("exclude", "", "comma separated directory names to skip"),
		workers:          fl.Uint("workers", 0, "concurrent checksum workers"),
		compress:         fl.Bool("compress", false, "compress the written manifest"),
		decompressInputs: fl.Bool("decompress-inputs", false, "checksum compressed inputs by their contents"),
	}
}

// parse resolves the effective configuration: the config file (or the
// defaults) first, with explicitly set flags overriding it.
func (r *runFlags) parse(args []string) *config.Config {
	r.fl.Parse(args)

	cfg := config.DefaultConfig()
	if *r.cfgPath != "" {
		loaded, err := config.LoadConfig(*r.cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	r.fl.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "root":
			cfg.RootDir = *r.root
		case "manifest":
			cfg.ManifestPath = *r.manifestPath
		case "algo":
			cfg.Algorithm = *r.algo
		case "exclude":
			cfg.ExcludeDirs = strings.Split(*r.exclude, ",")
		case "workers":
			cfg.Workers = uint8(*r.workers)
		case "compress":
			cfg.Compression.Enable = *r.compress
		case "decompress-inputs":
			cfg.Compression.DecompressInputs = *r.decompressInputs
		}
	})

	return cfg
}

func newService(cfg *config.Config, log *zap.SugaredLogger) (*manifest.Service, error) {
	opts := domain.ManifestOptions{
		RootDir:      cfg.RootDir,
		ManifestPath: cfg.ManifestPath,
		ExcludeDirs:  cfg.ExcludeDirs,
		Workers:      cfg.Workers,
		ChecksumOptions: &domain.ChecksumOptions{
			Algorithm: domain.ChecksumAlgorithm(cfg.Algorithm),
		},
		CompressionOptions: &domain.CompressionOptions{
			Enable:           cfg.Compression.Enable,
			DecompressInputs: cfg.Compression.DecompressInputs,
			Level:            cfg.Compression.Level,
		},
	}
	return manifest.New(&opts, fs.NewLocalFileSystem(), log)
}

func exitOnError(log *zap.SugaredLogger, msg string, err error) {
	if errors.IsValidationError(err) {
		validationErr := errors.AsValidationError(err)
		log.Errorw(msg, "field", validationErr.Field, "value", validationErr.Value, "error", validationErr.Err)
	} else {
		log.Errorw(msg, "error", err)
	}

	log.Sync()
	os.Exit(1)
}

func handleBuild(args []string) {
	cfg := newRunFlags("build").parse(args)

	log := logger.New("integrity")
	defer log.Sync()

	service, err := newService(cfg, log)
	if err != nil {
		exitOnError(log, "create service error", err)
	}
	defer service.Close(context.Background())

	built, err := service.Build(context.Background())
	if err != nil {
		exitOnError(log, "build error", err)
	}

	fmt.Printf("wrote manifest for %d files (run %s)\n", len(built.Entries), built.RunID)
}

func handleVerify(args []string) {
	r := newRunFlags("verify")
	jsonOut := r.fl.Bool("json", false, "print the report as JSON")
	reportPath := r.fl.String("report", "", "also write the JSON report to this file")
	cfg := r.parse(args)

	log := logger.New("integrity")
	defer log.Sync()

	service, err := newService(cfg, log)
	if err != nil {
		exitOnError(log, "create service error", err)
	}
	defer service.Close(context.Background())

	report, err := service.Verify(context.Background())
	if err != nil {
		exitOnError(log, "verify error", err)
	}

	if *reportPath != "" {
		data, err := serialize.MarshalJSON(report)
		if err != nil {
			exitOnError(log, "encode report error", err)
		}
		if err := fs.AtomicWriteFile(*reportPath, 0o644, data); err != nil {
			exitOnError(log, "write report error", err)
		}
	}

	if *jsonOut {
		data, err := serialize.MarshalJSONIndent(report)
		if err != nil {
			exitOnError(log, "encode report error", err)
		}
		fmt.Println(string(data))
	} else {
		for _, m := range report.Mismatches {
			if m.Missing {
				fmt.Printf("missing  %s\n", m.Path)
				continue
			}
			fmt.Printf("corrupt  %s  want %#x, got %#x\n", m.Path, m.Want, m.Got)
		}
		fmt.Printf("checked %d files, %d mismatches\n", report.Checked, len(report.Mismatches))
	}

	if !report.OK() {
		service.Close(context.Background())
		log.Sync()
		os.Exit(1)
	}
}

func handleShow(args []string) {
	fl := flag.NewFlagSet("show", flag.ExitOnError)
	manifestPath := fl.String("manifest", "", "manifest file to inspect")
	fl.Parse(args)

	path := *manifestPath
	if path == "" && fl.NArg() > 0 {
		path = fl.Arg(0)
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: manifest path required")
		fmt.Fprintln(os.Stderr, "Usage: integrity show [-manifest path]")
		os.Exit(1)
	}

	raw, err := fs.NewLocalFileSystem().ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading manifest: %v\n", err)
		os.Exit(1)
	}

	if compression.IsZstd(raw) {
		compressor, err := compression.NewZstdCompression(compression.Options{
			Level:              compression.DefaultLevel,
			EncoderConcurrency: 1,
			DecoderConcurrency: 1,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer compressor.Close()

		if raw, err = compressor.Decompress(raw); err != nil {
			fmt.Fprintf(os.Stderr, "Error decompressing manifest: %v\n", err)
			os.Exit(1)
		}
	}

	decoded, err := serialize.UnMarshalManifest(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding manifest: %v\n", err)
		os.Exit(1)
	}

	data, err := serialize.MarshalJSONIndent(decoded)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}

func handleSum(args []string) {
	fl := flag.NewFlagSet("sum", flag.ExitOnError)
	algo := fl.String("algo", "crc32", "checksum algorithm")
	fl.Parse(args)

	checksummer, err := checksum.New(&domain.ChecksumOptions{
		Algorithm: domain.ChecksumAlgorithm(*algo),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// With no files, checksum stdin like the traditional sum tools do.
	paths := fl.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	localFS := fs.NewLocalFileSystem()
	failed := false
	for _, path := range paths {
		var data []byte
		var err error
		if path == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = localFS.ReadFile(path)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
			failed = true
			continue
		}
		fmt.Printf("%0*x  %d  %s\n", int(checksummer.Size())*2, checksummer.Calculate(data), len(data), path)
	}
	if failed {
		os.Exit(1)
	}
}

func handleAlgorithms() {
	names := checksum.Algorithms()
	slices.SortFunc(names, func(a, b domain.ChecksumAlgorithm) int {
		return strings.Compare(string(a), string(b))
	})
	for _, name := range names {
		fmt.Println(name)
	}
}
