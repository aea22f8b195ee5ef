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
	"github.com/Mahesh-Koilapu/hbctl/pkg/sdk"
)

var appointmentsCmd = &cobra.Command{
	Use:   "appointments",
	Short: "Manage your appointments",
	RunE:  appointmentsListRun,
}

var listStatus string

var appointmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your appointments",
	RunE:  appointmentsListRun,
}

func appointmentsListRun(cmd *cobra.Command, args []string) error {
	client, err := gate(cmd, "/doctor/appointments")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	appointments, err := client.DoctorAppointments(ctx, sdk.AppointmentStatus(listStatus))
	if err != nil {
		return fmt.Errorf("failed to list appointments: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPATIENT\tCATEGORY\tWHEN\tSTATUS\tNOTES")
	for _, apt := range appointments {
		patient := "-"
		if apt.Patient != nil {
			patient = apt.Patient.Name
		}
		when := format.DateTimePtr(apt.ScheduledDate)
		if apt.ScheduledDate == nil {
			when = "prefers " + format.DateTimePtr(apt.PreferredDate)
		}
		notes := apt.Notes
		if notes == "" {
			notes = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			format.ShortenID(apt.ID, 8), patient, apt.DiseaseCategory, when, apt.Status, notes)
	}
	return w.Flush()
}

var appointmentsStatusCmd = &cobra.Command{
	Use:   "set-status <appointment-id> <status>",
	Short: "Move an appointment to a new status",
	Long:  `Statuses: pending, confirmed, rescheduled, completed, cancelled.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		status := sdk.AppointmentStatus(args[1])
		valid := false
		for _, s := range sdk.DoctorStatuses {
			if s == status {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown status %q; valid statuses are %v", args[1], sdk.DoctorStatuses)
		}

		client, err := gate(cmd, "/doctor/appointments")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		appointmentID, err := resolveAppointment(ctx, client, args[0])
		if err != nil {
			return err
		}

		if err := client.UpdateDoctorAppointment(ctx, appointmentID, sdk.UpdateAppointmentInput{Status: status}); err != nil {
			return fmt.Errorf("failed to update appointment: %w", err)
		}
		pterm.Success.Printf("Appointment marked %s.\n", status)
		return nil
	},
}

var appointmentsNoteCmd = &cobra.Command{
	Use:   "note <appointment-id> <note>",
	Short: "Attach a note to an appointment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := gate(cmd, "/doctor/appointments")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		appointmentID, err := resolveAppointment(ctx, client, args[0])
		if err != nil {
			return err
		}

		if err := client.UpdateDoctorAppointment(ctx, appointmentID, sdk.UpdateAppointmentInput{Notes: args[1]}); err != nil {
			return fmt.Errorf("failed to save note: %w", err)
		}
		pterm.Success.Println("Note saved.")
		return nil
	},
}

func init() {
	appointmentsListCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status")

	appointmentsCmd.AddCommand(appointmentsListCmd)
	appointmentsCmd.AddCommand(appointmentsStatusCmd)
	appointmentsCmd.AddCommand(appointmentsNoteCmd)
}
