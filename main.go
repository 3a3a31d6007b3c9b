package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"shape-studio/app"
	"shape-studio/config"
	"shape-studio/headless"
	"shape-studio/log"
	"shape-studio/services/scene"
	"shape-studio/services/types"
	"shape-studio/ui"

	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	seedFlag      int64
	maxShapesFlag int
	countFlag     int
	colsFlag      int
	intervalFlag  time.Duration

	rootCmd = &cobra.Command{
		Use:   "shape-studio",
		Short: "Shape Studio - Spawn random squares and circles onto a canvas you control.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize(false)
			defer log.Close()

			deps, err := app.InitializeDependencies(seedFlag)
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}
			defer deps.Cleanup()

			return app.RunStudio(ctx, deps)
		},
	}

	galleryCmd = &cobra.Command{
		Use:   "gallery",
		Short: "Fill a fixed canvas with shapes until the cap is reached",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize(false)
			defer log.Close()

			deps, err := app.InitializeDependencies(seedFlag)
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}
			defer deps.Cleanup()

			return app.RunGallery(ctx, deps, maxShapesFlag)
		},
	}

	renderCmd = &cobra.Command{
		Use:   "render",
		Short: "Spawn shapes without a TUI and print the canvas once",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log.Initialize(true)
			defer log.Close()

			deps, err := app.InitializeDependencies(seedFlag)
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}
			defer deps.Cleanup()

			count := countFlag
			if count <= 0 {
				count = deps.Config.GalleryMaxShapes
			}

			model := scene.NewGallery(deps.Generator.Seed(), count)
			runner := headless.NewRunner(deps.Generator, model, intervalFlag)

			final, err := runner.Run(ctx)
			if err != nil {
				return fmt.Errorf("headless run failed: %w", err)
			}
			deps.State.TotalSpawned += len(final.Shapes)

			printCanvas(final)
			printSummary(final)
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Printf("State: %s\n", filepath.Join(configDir, config.StateFileName))
			if p := log.Path(); p != "" {
				fmt.Printf("Log: %s\n", p)
			}

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of shape-studio",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("shape-studio version %s\n", version)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0,
		"Random seed for shape generation (0 derives one from the clock)")

	galleryCmd.Flags().IntVar(&maxShapesFlag, "max-shapes", 0,
		"Shape cap for the gallery (0 uses the configured default)")

	renderCmd.Flags().IntVar(&countFlag, "count", 0,
		"Number of shapes to spawn (0 uses the configured gallery cap)")
	renderCmd.Flags().IntVar(&colsFlag, "cols", 64,
		"Raster width of the printed canvas, in cells")
	renderCmd.Flags().DurationVar(&intervalFlag, "interval", 0,
		"Delay between spawns (0 runs them back to back)")

	rootCmd.AddCommand(galleryCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
}

// printCanvas rasterizes the final model at the requested width and
// prints it, deriving the row count from the canvas aspect ratio.
func printCanvas(model scene.Gallery) {
	cols := colsFlag
	if cols <= 0 {
		cols = 64
	}
	rows := int(float64(cols) * model.Canvas.Height / model.Canvas.Width)
	if rows < 1 {
		rows = 1
	}

	pane := ui.NewCanvasPane()
	pane.SetSize(cols*2, rows)
	fmt.Println(pane.Render(model.Canvas, model.Shapes))
}

// printSummary prints shape counts per geometry and colour.
func printSummary(model scene.Gallery) {
	type bucket struct {
		geometry types.Geometry
		colour   types.Colour
	}
	counts := lo.CountValuesBy(model.Shapes, func(s types.Shape) bucket {
		return bucket{geometry: s.Geometry, colour: s.Colour}
	})

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Geometry", "Colour", "Count"})
	for _, g := range []types.Geometry{types.Square, types.Circle} {
		for _, c := range types.Colours() {
			n := counts[bucket{geometry: g, colour: c}]
			if n == 0 {
				continue
			}
			table.Append([]string{g.String(), c.String(), strconv.Itoa(n)})
		}
	}
	table.SetFooter([]string{"", "total", strconv.Itoa(len(model.Shapes))})
	table.Render()
}

func main() {
	// A local .env can override config the same way the environment does.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
	}
}
