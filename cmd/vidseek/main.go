// Package main provides the CLI entry point for vidseek.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/vidseek/pkg/adapters/ffmpeggrabber"
	"github.com/user/vidseek/pkg/adapters/ffprobemeta"
	"github.com/user/vidseek/pkg/adapters/framesink"
	"github.com/user/vidseek/pkg/adapters/fyneviewer"
	"github.com/user/vidseek/pkg/adapters/ggrenderer"
	"github.com/user/vidseek/pkg/adapters/logger"
	"github.com/user/vidseek/pkg/adapters/metacache"
	"github.com/user/vidseek/pkg/adapters/nullsink"
	"github.com/user/vidseek/pkg/adapters/osfilesystem"
	"github.com/user/vidseek/pkg/adapters/smartmeta"
	"github.com/user/vidseek/pkg/config"
	"github.com/user/vidseek/pkg/listing"
	"github.com/user/vidseek/pkg/orchestrator"
	"github.com/user/vidseek/pkg/pipeline"
	"github.com/user/vidseek/pkg/ports"
	"github.com/user/vidseek/pkg/stages/grab"
	"github.com/user/vidseek/pkg/stages/normalize"
	"github.com/user/vidseek/pkg/stages/resolve"
	"github.com/user/vidseek/pkg/stages/scan"
)

// targetLayout is the accepted form of the --at flag.
const targetLayout = "2006-01-02 15:04:05"

// CLI defines the command-line interface with subcommands.
type CLI struct {
	List    ListCmd    `cmd:"" help:"List the videos in a directory with their timing metadata."`
	Seek    SeekCmd    `cmd:"" help:"Locate the frame recorded at a wall-clock instant."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// commonFlags are shared by the list and seek subcommands.
type commonFlags struct {
	Dir    string   `arg:"" type:"existingdir" help:"Directory containing video files."`
	Adjust bool     `short:"A" help:"Treat metadata timestamps as end-of-recording and subtract the duration."`
	Ext    []string `help:"Recognized video extensions (default: .mp4 .avi .mov .mkv .flv .wmv)."`

	TieBreak string `enum:",latest-start,earliest-start" default:"" help:"Which recording wins when several contain the target instant."`

	Cache  bool `help:"Cache scanned metadata in a JSON file and reuse it on later runs."`
	Rescan bool `help:"Ignore and rewrite the metadata cache."`

	Config   string `help:"YAML configuration file path."`
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// ListCmd defines the metadata display mode.
type ListCmd struct {
	commonFlags
}

// SeekCmd defines the search-and-process mode.
type SeekCmd struct {
	commonFlags

	At      string `short:"T" required:"" help:"Target datetime (format: YYYY-MM-DD HH:MM:SS, local time)."`
	Offset  int64  `short:"o" help:"Frame offset applied after resolution; may be negative."`
	Save    string `short:"S" help:"Save the found frame as PNG to this path."`
	Show    bool   `short:"D" help:"Display the found frame in a window."`
	Caption bool   `help:"Burn the target instant and frame index into the output frame."`
	Timings bool   `short:"t" help:"Show execution times for each step."`
	OutDir  string `help:"Also write catalog/resolution artifacts to this directory."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("vidseek"),
		kong.Description("Find the video frame recorded at a given wall-clock instant."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the list command.
func (cmd *ListCmd) Run() error {
	cfg, log, err := cmd.setup()
	if err != nil {
		return err
	}

	orch, orchConfig := buildOrchestrator(cmd.commonFlags, cfg, log, nullsink.New())

	ctx, cancel := signalContext(log)
	defer cancel()

	out, err := orch.List(ctx, orchConfig)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

// Run executes the seek command.
func (cmd *SeekCmd) Run() error {
	cfg, log, err := cmd.setup()
	if err != nil {
		return err
	}

	target, err := time.ParseInLocation(targetLayout, cmd.At, time.Local)
	if err != nil {
		return fmt.Errorf("invalid target datetime %q, want YYYY-MM-DD HH:MM:SS: %w", cmd.At, err)
	}

	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	outDir := artifactDir(cmd.OutDir, cfg)
	var sink ports.ArtifactSink = nullsink.New()
	if outDir != "" {
		if err := fs.MkdirAll(outDir); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		sink = framesink.New(outDir, fs, renderer)
	}

	orch, orchConfig := buildOrchestrator(cmd.commonFlags, cfg, log, sink)
	orchConfig.Target = target
	orchConfig.FrameOffset = cmd.Offset
	orchConfig.SavePath = cmd.Save
	orchConfig.ShowWindow = cmd.Show
	orchConfig.Caption = cmd.Caption
	orchConfig.CaptionFont = cfg.CaptionFont
	orchConfig.ShowTimings = cmd.Timings

	ctx, cancel := signalContext(log)
	defer cancel()

	log.Info(l10n.F("Searching %s for the frame recorded at %s...", cmd.Dir, cmd.At))

	result, err := orch.Seek(ctx, orchConfig)
	if err != nil {
		if orchestrator.IsNoEligibleVideos(err) {
			log.Error(l10n.F("No videos with usable metadata in %s", cmd.Dir))
		}
		return err
	}

	log.Info(l10n.F("Resolved to frame %d of %s (%s match)", result.FrameIndex, result.Record.Path, result.Match))
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("vidseek version %s", version))
	return nil
}

// setup loads the config file and creates the logger.
func (f *commonFlags) setup() (config.Config, ports.Logger, error) {
	cfg, err := config.Load(f.Config, osfilesystem.New())
	if err != nil {
		return config.Config{}, nil, err
	}

	var log ports.Logger
	if f.Quiet {
		log = logger.NewNoop()
	} else {
		level := f.LogLevel
		if level == "" {
			level = cfg.LogLevel
		}
		log = logger.NewConsole(ports.ParseLogLevel(level))
	}
	return cfg, log, nil
}

// buildOrchestrator wires the adapters and stages for one invocation.
func buildOrchestrator(flags commonFlags, cfg config.Config, log ports.Logger, sink ports.ArtifactSink) (*orchestrator.Orchestrator, orchestrator.Config) {
	fs := osfilesystem.New()
	renderer := ggrenderer.New()
	probe := ffprobemeta.NewWithBinary(cfg.FFprobePath)
	meta := smartmeta.New(probe, log)
	grabber := ffmpeggrabber.NewWithBinaries(cfg.FFmpegPath, cfg.FFprobePath)

	// Always constructed; the orchestrator consults it only when caching is
	// enabled, whether by flag or by the config file.
	var cache orchestrator.Cache = metacache.New(cfg.CachePath, fs)

	orch := orchestrator.New(
		scan.New(fs, meta, grabber, log),
		normalize.New(),
		resolve.New(log),
		grab.New(grabber, log),
		cache,
		fs,
		sink,
		fyneviewer.New(),
		renderer,
		listing.Text(),
		log,
	)

	extensions := flags.Ext
	if len(extensions) == 0 {
		extensions = cfg.Extensions
	}

	tieBreak := cfg.TieBreakPolicy()
	if flags.TieBreak != "" {
		tieBreak = pipeline.ParseTieBreak(flags.TieBreak)
	}

	orchConfig := orchestrator.Config{
		Dir:               flags.Dir,
		Extensions:        extensions,
		AdjustForDuration: flags.Adjust || cfg.AdjustForDuration,
		TieBreak:          tieBreak,
		CacheEnabled:      flags.Cache || cfg.CacheEnabled,
		Rescan:            flags.Rescan,
	}
	return orch, orchConfig
}

// artifactDir returns the directory for seek artifacts: the flag when given,
// otherwise the config file's out_dir. Empty means no artifacts.
func artifactDir(flagDir string, cfg config.Config) string {
	if flagDir != "" {
		return flagDir
	}
	return cfg.OutDir
}

// signalContext returns a context cancelled by SIGINT/SIGTERM.
func signalContext(log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	return ctx, cancel
}
