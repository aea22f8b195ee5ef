package doctorcmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Mahesh-Koilapu/hbctl/internal/format"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Show your schedule at a glance",
	RunE:  overviewRun,
}

func overviewRun(cmd *cobra.Command, args []string) error {
	client, err := gate(cmd, "/doctor")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	dashboard, err := client.DoctorDashboard(ctx)
	if err != nil {
		return fmt.Errorf("failed to load dashboard: %w", err)
	}

	if dashboard.User != nil {
		title := "Dr. " + dashboard.User.Name
		if dashboard.Profile != nil && dashboard.Profile.Specialization != "" {
			title += " - " + dashboard.Profile.Specialization
		}
		pterm.DefaultSection.Println(title)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Total appointments:\t%d\n", dashboard.Stats.TotalAppointments)
	fmt.Fprintf(w, "Pending:\t%d\n", dashboard.Stats.Pending)
	fmt.Fprintf(w, "Confirmed:\t%d\n", dashboard.Stats.Confirmed)
	fmt.Fprintf(w, "Completed:\t%d\n", dashboard.Stats.Completed)
	w.Flush()

	if len(dashboard.UpcomingAppointments) == 0 {
		pterm.Info.Println("No upcoming appointments.")
		return nil
	}

	pterm.DefaultSection.Println("Upcoming")
	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPATIENT\tWHEN\tSTATUS")
	for _, apt := range dashboard.UpcomingAppointments {
		patient := "-"
		if apt.Patient != nil {
			patient = apt.Patient.Name
		}
		when := format.DateTimePtr(apt.ScheduledDate)
		if apt.ScheduledDate == nil {
			when = format.DateTimePtr(apt.PreferredDate)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", format.ShortenID(apt.ID, 8), patient, when, apt.Status)
	}
	return w.Flush()
}
