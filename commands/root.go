package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tokenbar/tokenbar/internal/app"
	"github.com/tokenbar/tokenbar/internal/util"
)

var (
	debug    bool
	dirs     string
	plan     string
	interval time.Duration
	watch    bool
	timezone string
	once     bool

	rootCmd = &cobra.Command{
		Use:   "tokenbar [flags]",
		Short: "Claude Code usage monitor",
		Long: `tokenbar reconstructs rolling 5-hour usage sessions from Claude Code's
JSONL logs and reports live consumption analytics: weighted token usage,
burn rate, time until exhaustion and the detected plan tier.

Examples:
  tokenbar                                  # Monitor with default settings
  tokenbar --dirs /path/a:/path/b           # Scan specific log directories
  tokenbar --plan max5                      # Pin the plan instead of detecting it
  tokenbar --interval 5s --watch            # Slower polling, refresh on file changes
  tokenbar --once                           # Print one snapshot and exit`,
		RunE: runMonitor,
	}
)

const defaultLogFile = "~/.tokenbar/logs/app.log"

func init() {
	rootCmd.Flags().StringVar(&dirs, "dirs", "",
		"Log directory override (single path or colon-separated list)")
	rootCmd.Flags().StringVar(&plan, "plan", "",
		"Plan override (pro, max5, max20); empty = detect from usage")
	rootCmd.Flags().DurationVar(&interval, "interval", 3*time.Second,
		"Polling interval")
	rootCmd.Flags().BoolVar(&watch, "watch", false,
		"Also refresh immediately when a log file changes")
	rootCmd.Flags().StringVar(&timezone, "timezone", "Local",
		"Timezone for displayed times (e.g. UTC, Europe/Berlin)")
	rootCmd.Flags().BoolVar(&once, "once", false,
		"Run a single cycle and print the snapshot")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

func runMonitor(cmd *cobra.Command, args []string) error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	logFile := util.ExpandPath(defaultLogFile)
	if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	util.InitLogger(logLevel, logFile, debug)

	if err := util.InitializeTimeProvider(timezone); err != nil {
		return err
	}

	monitor := app.NewMonitor(app.Config{
		DirOverride:  dirs,
		PlanOverride: plan,
		Interval:     interval,
		Concurrency:  runtime.NumCPU(),
		Watch:        watch,
	})

	renderer := newStatusRenderer(os.Stdout)
	monitor.OnUpdate(renderer.Render)

	if once {
		monitor.Refresh(time.Now())
		renderer.Finish()
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := monitor.Run(ctx)
	renderer.Finish()
	return err
}

func Execute() error {
	return rootCmd.Execute()
}
