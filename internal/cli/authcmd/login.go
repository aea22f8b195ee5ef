package authcmd

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Mahesh-Koilapu/hbctl/internal/config"
	"github.com/Mahesh-Koilapu/hbctl/internal/hbclient"
	"github.com/Mahesh-Koilapu/hbctl/internal/session"
	"github.com/Mahesh-Koilapu/hbctl/pkg/sdk"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to Heart Beat",
	Long: `Signs in with your email and password. Without flags, the command prompts
for both. On success the session is cached locally and reused by every
other command until it expires or you log out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		email, password := loginEmail, loginPassword
		if email == "" || password == "" {
			if cfg.NonInteractive {
				return errors.New("email and password are required in non-interactive mode; use --email and --password")
			}
			var err error
			if email == "" {
				email, err = pterm.DefaultInteractiveTextInput.Show("Email")
				if err != nil {
					return err
				}
			}
			if password == "" {
				password, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
				if err != nil {
					return err
				}
			}
		}

		store, err := cfg.Provider.Session()
		if err != nil {
			return err
		}

		identity, err := store.Login(cmd.Context(), sdk.LoginInput{Email: email, Password: password})
		if err != nil {
			return errors.New(sdk.ErrorMessage(err, "Unable to login. Please try again."))
		}

		pterm.Success.Printf("Signed in as %s (%s)\n", identity.Name, identity.Role)
		printNextScreen(cfg, identity)
		return nil
	},
}

// printNextScreen tells the user where to go after signing in: the screen
// that originally bounced them to login when one was recorded, otherwise
// their role's home screen.
func printNextScreen(cfg *config.GlobalConfig, identity *sdk.Identity) {
	target, _ := identity.Role.Home()

	if dir, err := cfg.Provider.CacheDir(); err == nil {
		if ret, err := session.ReadReturnTo(dir); err == nil && ret != nil {
			target = ret.Screen
			if err := session.ClearReturnTo(dir); err != nil {
				cfg.Logger.Debug().Err(err).Msg("failed to clear return-to screen")
			}
		}
	}

	if target != "" {
		fmt.Printf("Continue with `%s`.\n", hbclient.ScreenCommand(target))
	}
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
}
