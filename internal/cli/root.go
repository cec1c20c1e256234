package cli

import (
	"github.com/spf13/cobra"
)

var (
	// Operation flags - exactly one is required
	createFlag bool
	deleteFlag bool
	findFlag   bool

	// Global flags
	yesFlag       bool
	jsonOutput    bool
	templatesFlag bool
	registryFlag  string
)

// rootCmd is the root command for pkgctl.
var rootCmd = &cobra.Command{
	Use:     "pkgctl <pkg_name>",
	Version: "dev",
	Short:   "Scaffold and register DDS packages in the robot monorepo",
	Long: `pkgctl creates and deletes RTI DDS package directories and keeps the
node registry (node_registry.json at the repository root) consistent with
the filesystem.

To create or delete a package, run pkgctl from the directory the package
lives in.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		name := args[0]
		switch {
		case createFlag:
			return runCreate(eng, name)
		case deleteFlag:
			return runDelete(eng, name)
		case findFlag:
			return runFind(eng, name)
		}
		return nil
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.Flags().BoolVarP(&createFlag, "create", "c", false, "Create the specified package")
	rootCmd.Flags().BoolVarP(&deleteFlag, "delete", "d", false, "Delete the specified package")
	rootCmd.Flags().BoolVarP(&findFlag, "find", "f", false, "Look up the specified package in the registry")
	rootCmd.MarkFlagsOneRequired("create", "delete", "find")
	rootCmd.MarkFlagsMutuallyExclusive("create", "delete", "find")

	rootCmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Skip the delete confirmation prompt")
	rootCmd.Flags().BoolVar(&templatesFlag, "templates", false, "Populate README and CMakelists with starter content")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&registryFlag, "registry", "", "Path to the registry file (overrides discovery)")
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
