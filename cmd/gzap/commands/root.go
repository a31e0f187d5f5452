// Package commands implements the CLI commands for the gzap deep cleaner.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/gzap/internal/app"
	"go.trai.ch/gzap/internal/build"
	"go.trai.ch/gzap/internal/core/domain"
)

// CLI represents the command line interface for gzap.
type CLI struct {
	components *app.Components
	rootCmd    *cobra.Command
}

// New creates a new CLI instance with the given components.
func New(c *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:   "gzap",
		Short: "Deep clean (panic button) for Gradle/Kotlin projects",
		Long: "Deep clean a Gradle/Kotlin project when Gradle gets confused.\n" +
			"Stops daemons, clears the build cache, removes project build/ and .gradle/\n" +
			"directories, and prunes user caches. Optional aggressive mode also wipes\n" +
			"dependency caches and wrapper dists.",
		Example: "  gzap --dry-run\n" +
			"  gzap                          # normal deep clean\n" +
			"  gzap --aggressive             # re-download all deps\n" +
			"  gzap --include-kotlin-native  # also delete ~/.konan\n" +
			"  gzap --gradlew ./gradlew",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// Register verbose before the default version flag so "-v" stays bound
	// to --verbose; cobra only gives --version the shorthand if "v" is free.
	rootCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().String("gradlew", domain.DefaultWrapperPath, "Path to the Gradle wrapper")
	rootCmd.Flags().String("gradle-user-home", "", "Gradle user home (default $GRADLE_USER_HOME or ~/.gradle)")
	rootCmd.Flags().String("xdg-cache-home", "", "XDG cache home (default $XDG_CACHE_HOME or ~/.cache)")
	rootCmd.Flags().Bool("dry-run", false, "Preview actions without making changes")
	rootCmd.Flags().Bool("aggressive", false, "Also remove dependency caches and wrapper dists")
	rootCmd.Flags().Bool("include-kotlin-native", false, "Also remove ~/.konan (Kotlin/Native)")

	c2 := &CLI{
		components: c,
		rootCmd:    rootCmd,
	}

	rootCmd.RunE = c2.runZap
	rootCmd.AddCommand(c2.newVersionCmd())
	rootCmd.AddCommand(c2.newUsageCmd())

	return c2
}

// runZap assembles the run configuration and executes the cleanup sequence.
// Once flag parsing has succeeded the run always exits zero: tier failures
// are warnings by design, not errors.
func (c *CLI) runZap(cmd *cobra.Command, _ []string) error {
	fl := cmd.Flags()

	flags := domain.Flags{}
	flags.Gradlew, _ = fl.GetString("gradlew")
	flags.GradlewSet = fl.Changed("gradlew")
	flags.GradleUserHome, _ = fl.GetString("gradle-user-home")
	flags.GradleUserHomeSet = fl.Changed("gradle-user-home")
	flags.XDGCacheHome, _ = fl.GetString("xdg-cache-home")
	flags.XDGCacheHomeSet = fl.Changed("xdg-cache-home")
	flags.DryRun, _ = fl.GetBool("dry-run")
	flags.Aggressive, _ = fl.GetBool("aggressive")
	flags.IncludeKonan, _ = fl.GetBool("include-kotlin-native")
	flags.Verbose, _ = fl.GetBool("verbose")

	cfg, err := c.components.Loader.Load(flags)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		c.components.Logger.SetVerbose(true)
	}

	c.components.App.Zap(cmd.Context(), cfg)
	return nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
