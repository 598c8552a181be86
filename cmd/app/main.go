package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"quill/internal/models"
	"quill/internal/sim"
	"quill/internal/store"
	"quill/internal/util"
)

var (
	// Version is stamped by the linker at build time.
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"

	help    bool
	version bool
	list    bool
	// simulation config
	model      string
	seed       int64
	maxSteps   int
	maxRuns    int
	invariants string
	configPath string
	// archive config
	archiveDriver string
	archiveDSN    string
	// log config
	logLevel string
	logFile  string
)

func init() {
	flag.BoolVar(&help, "help", false, "Display help information and exit")
	flag.BoolVar(&help, "h", false, "Display help information and exit")
	flag.BoolVar(&version, "version", false, "Display version information and exit")
	flag.BoolVar(&version, "v", false, "Display version information and exit")
	flag.BoolVar(&list, "list", false, "List the built-in models and exit")
	// simulation config
	flag.StringVar(&model, "model", "counter", "Name of the built-in model to simulate")
	flag.Int64Var(&seed, "seed", 0, "Root seed for the random choice source")
	flag.IntVar(&maxSteps, "max-steps", 20, "Maximum steps per run")
	flag.IntVar(&maxRuns, "max-runs", 100, "Maximum number of runs")
	flag.StringVar(&invariants, "invariants", "", "Comma-separated invariant names to check (default: all)")
	flag.StringVar(&configPath, "config", "", "Path to a TOML configuration file")
	// archive config
	flag.StringVar(&archiveDriver, "archive-driver", "", "Archive database driver: sqlite3 or mysql")
	flag.StringVar(&archiveDSN, "archive", "", "Archive database DSN; enables archiving the decisive run")
	// log config
	flag.StringVar(&logLevel, "log-level", "error", "Log level: debug, info, warn, error")
	flag.StringVar(&logFile, "log-file", "", "Log file path (if not set, logs to stderr)")
}

func main() {

	flag.Parse()

	loggerOptions := &slog.HandlerOptions{
		AddSource: false,
		Level:     logLevelFromString(logLevel),
	}
	logWriter := configureLogWriter()
	defaultLogger := slog.New(slog.NewJSONHandler(logWriter, loggerOptions))
	slog.SetDefault(defaultLogger)

	if version {
		printVersion()
		return
	}

	if help {
		printHelp()
		return
	}

	if list {
		for _, name := range models.Names() {
			fmt.Println(name)
		}
		return
	}

	config := buildConfiguration()

	m, ok := models.ByName(config.Model)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown model %q; available: %s\n",
			config.Model, strings.Join(models.Names(), ", "))
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := sim.Run(ctx, m, sim.Config{
		MaxSteps:   config.MaxSteps,
		MaxRuns:    config.MaxRuns,
		Seed:       config.Seed,
		Invariants: config.Invariants,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode result: %v\n", err)
		os.Exit(2)
	}
	fmt.Println(string(out))

	if config.ArchiveDSN != "" && result.Run != nil {
		archiveRun(ctx, config, result)
	}

	switch result.Status {
	case sim.StatusViolation:
		os.Exit(1)
	case sim.StatusError:
		os.Exit(2)
	}
}

// buildConfiguration layers defaults, the optional TOML file, and explicit
// flags, later sources winning.
func buildConfiguration() util.Configuration {
	config := util.DefaultConfiguration()
	config.Version = Version
	config.BuildDate = BuildDate
	config.Commit = Commit

	if configPath != "" {
		if err := util.LoadConfiguration(configPath, &config); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(2)
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "model":
			config.Model = model
		case "seed":
			config.Seed = seed
		case "max-steps":
			config.MaxSteps = maxSteps
		case "max-runs":
			config.MaxRuns = maxRuns
		case "invariants":
			config.Invariants = splitInvariants(invariants)
		case "archive-driver":
			config.ArchiveDriver = archiveDriver
		case "archive":
			config.ArchiveDSN = archiveDSN
		}
	})
	if config.ArchiveDriver == "" {
		config.ArchiveDriver = "sqlite3"
	}
	return config
}

func archiveRun(ctx context.Context, config util.Configuration, result *sim.Result) {
	archive, err := store.Open(ctx, config.ArchiveDriver, config.ArchiveDSN)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return
	}
	defer archive.Close()
	id, err := archive.SaveRun(ctx, config.Model, result.Run)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return
	}
	slog.Info("decisive run archived", slog.Int64("id", id))
}

func splitInvariants(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}

func configureLogWriter() *os.File {
	var logWriter *os.File
	var err error
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create log directory for '%s': %v; falling back to stderr\n", logFile, err)
			return os.Stderr
		}
		logWriter, err = os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file '%s': %v; falling back to stderr\n", logFile, err)
			logWriter = os.Stderr
		}
	} else {
		logWriter = os.Stderr
	}
	return logWriter
}

func printVersion() {

	fmt.Printf("quill version 'v%s' %s %s\n", Version, BuildDate, Commit)
}

func printHelp() {
	fmt.Printf(`Usage: quill [options]

Options:
  -model <name>          Built-in model to simulate. Default is 'counter'.
  -seed <n>              Root seed for the random choice source. Default is 0.
  -max-steps <n>         Maximum steps per run. Default is 20.
  -max-runs <n>          Maximum number of runs. Default is 100.
  -invariants <a,b>      Check only the named invariants. Default is all.
  -config <path>         Load settings from a TOML file.
  -archive <dsn>         Archive the decisive run to this database.
  -archive-driver <name> Archive driver: sqlite3 or mysql. Default is sqlite3.
  -list                  List the built-in models and exit.
  -help                  Display this help information and exit.
  -version               Display version information and exit.
  -log-level <level>     Set the log level: debug, info, warn, error. Default is 'error'.
  -log-file <path>       Specify a log file to write logs. Default is stderr.

Details:
Quill runs seeded random simulations of transition-system models and reports
the first invariant violation, deadlock, or runtime error it finds, together
with the full trace that led there. The same seed always reproduces the same
result.

Examples:
  quill -model tictactoe -seed 42            Simulate with a fixed seed
  quill -model bank -max-runs 1000           Spend a larger run budget
  quill -model counter -invariants Bounded   Check one invariant only
  quill -model bank -archive traces.db       Keep the decisive trace

Version Information:
  Version:    %s
  Build Date: %s
  Commit:     %s
`, Version, BuildDate, Commit)
}

func logLevelFromString(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelError
	}
}
