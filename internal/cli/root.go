// Package cli assembles the hbctl command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mahesh-Koilapu/hbctl/internal/cli/admincmd"
	"github.com/Mahesh-Koilapu/hbctl/internal/cli/authcmd"
	"github.com/Mahesh-Koilapu/hbctl/internal/cli/doctorcmd"
	"github.com/Mahesh-Koilapu/hbctl/internal/cli/patientcmd"
	"github.com/Mahesh-Koilapu/hbctl/internal/config"
	"github.com/Mahesh-Koilapu/hbctl/internal/hbclient"
	"github.com/Mahesh-Koilapu/hbctl/internal/logx"
)

var (
	serverURL      string
	nonInteractive bool
	verbose        bool
	logLevel       string
	cacheDir       string
)

var rootCmd = &cobra.Command{
	Use:   "hbctl",
	Short: "Heart Beat CLI - healthcare appointment client",
	Long: `hbctl is the command-line client for the Heart Beat healthcare system.
Patients book and manage appointments, doctors run their schedule, and
administrators oversee the clinic. Sign in with 'hbctl auth login'; each
command group opens the screen your role has access to.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		env, err := config.LoadEnv(cmd.Context())
		if err != nil {
			return err
		}

		// Flags win over environment; environment wins over defaults.
		if !cmd.Flags().Changed("server") && env.ServerURL != "" {
			serverURL = env.ServerURL
		}
		if !cmd.Flags().Changed("log-level") && env.LogLevel != "" {
			logLevel = env.LogLevel
		}
		if !cmd.Flags().Changed("cache-dir") && env.CacheDir != "" {
			cacheDir = env.CacheDir
		}
		if env.NonInteractive {
			nonInteractive = true
		}

		logger := logx.New(logLevel, verbose)
		cfg := &config.GlobalConfig{
			ServerURL:      serverURL,
			NonInteractive: nonInteractive,
			CacheDir:       cacheDir,
			Logger:         logger,
			Provider:       hbclient.NewProvider(serverURL, cacheDir, logger),
		}
		cmd.SetContext(config.InjectConfig(cmd.Context(), cfg))
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Child hooks must not shadow the root hook that injects the config.
	cobra.EnableTraverseRunHooks = true

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:5000/api", "Heart Beat API server URL (also HB_SERVER_URL)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts (also HB_NON_INTERACTIVE=1)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose console logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", "", "Session cache directory (default ~/.hbctl)")

	rootCmd.AddCommand(authcmd.AuthCmd)
	rootCmd.AddCommand(admincmd.AdminCmd)
	rootCmd.AddCommand(doctorcmd.DoctorCmd)
	rootCmd.AddCommand(patientcmd.PatientCmd)
}
