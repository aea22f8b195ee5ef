// Package patientcmd holds the patient screens: dashboard, doctor browsing,
// booking, appointment management, medical profile, and the two assistants.
package patientcmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mahesh-Koilapu/hbctl/internal/config"
	"github.com/Mahesh-Koilapu/hbctl/internal/format"
	"github.com/Mahesh-Koilapu/hbctl/pkg/sdk"
)

// PatientCmd is the parent command for patient operations.
var PatientCmd = &cobra.Command{
	Use:   "patient",
	Short: "Manage your care (patient role)",
	Long:  `Patient screens: book appointments, browse doctors, and keep your medical profile current.`,
	RunE:  overviewRun,
}

func init() {
	PatientCmd.AddCommand(overviewCmd)
	PatientCmd.AddCommand(doctorsCmd)
	PatientCmd.AddCommand(bookCmd)
	PatientCmd.AddCommand(appointmentsCmd)
	PatientCmd.AddCommand(profileCmd)
	PatientCmd.AddCommand(chatCmd)
	PatientCmd.AddCommand(assistantCmd)
}

// gate resolves the session and admits patients, including accounts still on
// the legacy user role.
func gate(cmd *cobra.Command, screen string) (*sdk.Client, error) {
	cfg := config.MustFromContext(cmd.Context())
	return cfg.Provider.Gate(cmd.Context(), screen, sdk.RolePatient, sdk.RoleUser)
}

// resolveAppointment accepts a full or shortened appointment id.
func resolveAppointment(ctx context.Context, client *sdk.Client, ref string) (string, error) {
	appointments, err := client.PatientAppointments(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to look up appointment: %w", err)
	}
	short := format.ShortenID(ref, 8)
	for _, apt := range appointments {
		if apt.ID == ref || format.ShortenID(apt.ID, 8) == short {
			return apt.ID, nil
		}
	}
	return "", fmt.Errorf("no appointment matches %q; run `hbctl patient appointments list`", ref)
}
