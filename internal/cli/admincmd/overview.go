package admincmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Mahesh-Koilapu/hbctl/internal/format"
	"github.com/Mahesh-Koilapu/hbctl/pkg/sdk"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show the clinic at a glance",
	Long:  `Summarizes doctors, patients, and appointments, and lists requests waiting for a doctor.`,
	RunE:  overviewRun,
}

func overviewRun(cmd *cobra.Command, args []string) error {
	client, err := gate(cmd, "/admin")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()

	doctors, err := client.AdminDoctors(ctx)
	if err != nil {
		return fmt.Errorf("failed to load doctors: %w", err)
	}
	patients, err := client.AdminPatients(ctx)
	if err != nil {
		return fmt.Errorf("failed to load patients: %w", err)
	}
	appointments, err := client.AdminAppointments(ctx, sdk.AppointmentFilter{})
	if err != nil {
		return fmt.Errorf("failed to load appointments: %w", err)
	}

	active := 0
	for _, d := range doctors {
		if d.IsActive {
			active++
		}
	}
	var pending []sdk.Appointment
	for _, apt := range appointments {
		if apt.Status == sdk.StatusPending {
			pending = append(pending, apt)
		}
	}

	pterm.DefaultSection.Println("Clinic Overview")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Doctors:\t%d (%d active)\n", len(doctors), active)
	fmt.Fprintf(w, "Patients:\t%d\n", len(patients))
	fmt.Fprintf(w, "Appointments:\t%d (%d pending)\n", len(appointments), len(pending))
	w.Flush()

	if len(pending) == 0 {
		pterm.Info.Println("No appointments waiting for assignment.")
		return nil
	}

	pterm.DefaultSection.Println("Waiting for Assignment")
	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPATIENT\tCATEGORY\tPREFERRED")
	for _, apt := range pending {
		patient := "-"
		if apt.Patient != nil {
			patient = apt.Patient.Name
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s %s\n",
			format.ShortenID(apt.ID, 8), patient, apt.DiseaseCategory,
			format.DateTimePtr(apt.PreferredDate), format.TimeRange(apt.PreferredStart, apt.PreferredEnd))
	}
	return w.Flush()
}
