package patientcmd

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
	Short: "Show your care at a glance",
	RunE:  overviewRun,
}

func overviewRun(cmd *cobra.Command, args []string) error {
	client, err := gate(cmd, "/patient")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	dashboard, err := client.PatientDashboard(ctx)
	if err != nil {
		return fmt.Errorf("failed to load dashboard: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Appointments:\t%d\n", dashboard.Stats.Total)
	fmt.Fprintf(w, "Pending:\t%d\n", dashboard.Stats.Pending)
	fmt.Fprintf(w, "Confirmed:\t%d\n", dashboard.Stats.Confirmed)
	fmt.Fprintf(w, "Completed:\t%d\n", dashboard.Stats.Completed)
	w.Flush()

	if len(dashboard.Upcoming) == 0 {
		pterm.Info.Println("No upcoming appointments. Book one with `hbctl patient book`.")
		return nil
	}

	pterm.DefaultSection.Println("Upcoming")
	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDOCTOR\tWHEN\tSTATUS")
	for _, apt := range dashboard.Upcoming {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			format.ShortenID(apt.ID, 8), doctorLabel(apt), appointmentWhen(apt), apt.Status)
	}
	return w.Flush()
}

func doctorLabel(apt sdk.Appointment) string {
	if apt.Doctor == nil {
		return "to be assigned"
	}
	return "Dr. " + apt.Doctor.Name
}

// appointmentWhen prefers the clinic-confirmed slot over the patient's
// requested one.
func appointmentWhen(apt sdk.Appointment) string {
	if apt.ScheduledDate != nil {
		return format.DateTimePtr(apt.ScheduledDate) + " " + format.TimeRange(apt.ScheduledStart, apt.ScheduledEnd)
	}
	return "prefers " + format.DateTimePtr(apt.PreferredDate) + " " + format.TimeRange(apt.PreferredStart, apt.PreferredEnd)
}
