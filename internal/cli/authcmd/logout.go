package authcmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Mahesh-Koilapu/hbctl/internal/config"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out of Heart Beat",
	Long: `Ends the server session and removes the cached identity. The local session
is cleared even when the server cannot be reached.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		store, err := cfg.Provider.Session()
		if err != nil {
			return err
		}

		store.Logout(cmd.Context())
		pterm.Success.Println("Signed out.")
		return nil
	},
}
