// Package admincmd holds the administrator screens: clinic overview, doctor
// and patient rosters, and appointment dispatch.
package admincmd

import (
	"github.com/spf13/cobra"

	"github.com/Mahesh-Koilapu/hbctl/internal/config"
	"github.com/Mahesh-Koilapu/hbctl/pkg/sdk"
)

// AdminCmd is the parent command for administrator operations.
var AdminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administer the clinic (admin role)",
	Long:  `Administrator screens: manage doctors, review patients, and dispatch appointments.`,
	RunE:  overviewRun,
}

func init() {
	AdminCmd.AddCommand(overviewCmd)
	AdminCmd.AddCommand(doctorsCmd)
	AdminCmd.AddCommand(patientsCmd)
	AdminCmd.AddCommand(appointmentsCmd)
}

// gate resolves the session and admits only administrators, recording the
// screen for the post-login return path.
func gate(cmd *cobra.Command, screen string) (*sdk.Client, error) {
	cfg := config.MustFromContext(cmd.Context())
	return cfg.Provider.Gate(cmd.Context(), screen, sdk.RoleAdmin)
}
