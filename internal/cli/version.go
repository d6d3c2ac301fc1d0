package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lacquerai/pricenews/internal/style"
)

// Build-time variables (set by goreleaser or build scripts)
var (
	Version   = "dev"
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = runtime.Version()
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Example: `
  pricenews version
  pricenews version --output json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showVersion(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// VersionInfo represents version information
type VersionInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Date      string `json:"date" yaml:"date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
	// Release is false for development and pre-release builds.
	Release bool `json:"release" yaml:"release"`
}

func currentVersion() VersionInfo {
	return VersionInfo{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: GoVersion,
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		Release:   isRelease(Version),
	}
}

func isRelease(version string) bool {
	v, err := semver.NewVersion(version)
	return err == nil && v.Prerelease() == ""
}

func showVersion(w io.Writer) error {
	info := currentVersion()

	switch viper.GetString("output") {
	case "json":
		return style.PrintJSON(w, info)
	case "yaml":
		return style.PrintYAML(w, info)
	}

	if info.Release {
		fmt.Fprintf(w, "pricenews %s\n", info.Version)
	} else {
		fmt.Fprintf(w, "pricenews %s (development build)\n", info.Version)
	}
	if viper.GetBool("verbose") {
		fmt.Fprintf(w, "  commit:   %s\n  built:    %s\n  go:       %s\n  platform: %s\n",
			info.Commit, info.Date, info.GoVersion, info.Platform)
	}
	return nil
}

// getVersion returns the version string shown by --version
func getVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s, go: %s)", Version, Commit, Date, GoVersion)
}
