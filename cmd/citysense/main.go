package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/citysense/internal/audio"
	"github.com/san-kum/citysense/internal/config"
	"github.com/san-kum/citysense/internal/gauges"
	"github.com/san-kum/citysense/internal/logging"
	"github.com/san-kum/citysense/internal/snapshot"
	"github.com/san-kum/citysense/internal/storage"
	"github.com/san-kum/citysense/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	source     string
	dataDir    string
	frameRate  int
	themeName  string
	noSound    bool
	debug      bool
)

// main registers commands and flags and executes the root command, which
// launches the dashboard TUI when no subcommand is given. It exits with
// status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "citysense",
		Short: "ambient city dashboard for the terminal",
		RunE:  runDashboard,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&source, "source", "", "snapshot source (url or file)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory")
	rootCmd.Flags().IntVar(&frameRate, "fps", 0, "frame rate")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "color theme")
	rootCmd.Flags().BoolVar(&noSound, "no-sound", false, "disable geiger clicks")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "debug logging")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "fetch and print the current snapshot",
		RunE:  printSnapshot,
	}

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "list cached snapshots",
		RunE:  listHistory,
	}

	rootCmd.AddCommand(snapshotCmd, historyCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the effective config: file (if given), then flag
// overrides on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if source != "" {
		cfg.Source = source
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if cmd.Flags().Changed("fps") && frameRate > 0 {
		cfg.FrameRate = frameRate
	}
	if themeName != "" {
		cfg.Theme = themeName
	}
	if noSound {
		cfg.Sound = false
	}
	if debug {
		cfg.Debug = true
	}
	return cfg, nil
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logging.Init(cfg.DataDir, cfg.Debug)
	defer logging.Sync()

	snap, live := snapshot.NewLoader(cfg.Source).Load()
	if live {
		st := storage.New(cfg.DataDir)
		if err := st.Init(); err != nil {
			logging.Warnw("snapshot cache unavailable", "error", err)
		} else if err := st.Save(snap, time.Now()); err != nil {
			logging.Warnw("snapshot cache write failed", "error", err)
		}
	}

	var sound gauges.Sound
	if cfg.Sound {
		click, err := audio.NewClick()
		if err != nil {
			logging.Warnw("audio unavailable, running silent", "error", err)
		}
		defer click.Close()
		sound = click
	}

	p := tea.NewProgram(viz.NewDashboard(snap, cfg, sound), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func printSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logging.Init(cfg.DataDir, cfg.Debug)
	defer logging.Sync()

	snap, _ := snapshot.NewLoader(cfg.Source).Load()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

func listHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	entries, err := storage.New(cfg.DataDir).History()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no cached snapshots")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFETCHED\tAQI\tTEMP\tCONDITION\tSPEED\tMETRO\tSENTIMENT\tFLIGHTS")

	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.1f\t%s\t%.1f\t%s\t%.2f\t%d\n",
			e.ID,
			e.Fetched.Format("2006-01-02 15:04:05"),
			e.Snapshot.AQI,
			e.Snapshot.Weather.Temp,
			e.Snapshot.Weather.Condition,
			e.Snapshot.Traffic.SpeedKMH,
			e.Snapshot.MetroDensity,
			e.Snapshot.NewsSentiment,
			e.Snapshot.FlightCount,
		)
	}

	return w.Flush()
}
