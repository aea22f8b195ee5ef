package authcmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Mahesh-Koilapu/hbctl/internal/config"
	"github.com/Mahesh-Koilapu/hbctl/internal/hbclient"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in identity",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		store, err := cfg.Provider.Session()
		if err != nil {
			return err
		}

		state := store.Resolve(cmd.Context())
		if state.Identity == nil {
			return fmt.Errorf("not signed in; run `hbctl auth login` first")
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Name:\t%s\n", state.Identity.Name)
		fmt.Fprintf(w, "Email:\t%s\n", state.Identity.Email)
		fmt.Fprintf(w, "Role:\t%s\n", state.Identity.Role)
		if home, ok := state.Identity.Role.Home(); ok {
			fmt.Fprintf(w, "Home:\t%s\n", hbclient.ScreenCommand(home))
		}
		return w.Flush()
	},
}
