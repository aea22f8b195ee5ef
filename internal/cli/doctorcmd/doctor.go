// Package doctorcmd holds the doctor screens: schedule overview, appointment
// management, patient roster, availability calendar, and practice profile.
package doctorcmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Mahesh-Koilapu/hbctl/internal/config"
	"github.com/Mahesh-Koilapu/hbctl/internal/format"
	"github.com/Mahesh-Koilapu/hbctl/pkg/sdk"
)

// DoctorCmd is the parent command for doctor operations.
var DoctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run your practice (doctor role)",
	Long:  `Doctor screens: review your schedule, update appointments, and manage availability.`,
	RunE:  overviewRun,
}

func init() {
	DoctorCmd.AddCommand(overviewCmd)
	DoctorCmd.AddCommand(appointmentsCmd)
	DoctorCmd.AddCommand(patientsCmd)
	DoctorCmd.AddCommand(availabilityCmd)
	DoctorCmd.AddCommand(profileCmd)
}

// gate resolves the session and admits only doctors.
func gate(cmd *cobra.Command, screen string) (*sdk.Client, error) {
	cfg := config.MustFromContext(cmd.Context())
	return cfg.Provider.Gate(cmd.Context(), screen, sdk.RoleDoctor)
}

// resolveAppointment accepts a full or shortened appointment id.
func resolveAppointment(ctx context.Context, client *sdk.Client, ref string) (string, error) {
	appointments, err := client.DoctorAppointments(ctx, "")
	if err != nil {
		return "", fmt.Errorf("failed to look up appointment: %w", err)
	}
	short := format.ShortenID(ref, 8)
	for _, apt := range appointments {
		if apt.ID == ref || format.ShortenID(apt.ID, 8) == short {
			return apt.ID, nil
		}
	}
	return "", fmt.Errorf("no appointment matches %q; run `hbctl doctor appointments list`", ref)
}
