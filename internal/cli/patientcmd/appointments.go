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

var appointmentsCmd = &cobra.Command{
	Use:   "appointments",
	Short: "Track and change your appointments",
	RunE:  appointmentsListRun,
}

var appointmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your appointments",
	RunE:  appointmentsListRun,
}

func appointmentsListRun(cmd *cobra.Command, args []string) error {
	client, err := gate(cmd, "/patient/appointments")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	appointments, err := client.PatientAppointments(ctx)
	if err != nil {
		return fmt.Errorf("failed to list appointments: %w", err)
	}

	if len(appointments) == 0 {
		pterm.Info.Println("No appointments yet. Book one with `hbctl patient book`.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDOCTOR\tCATEGORY\tWHEN\tSTATUS\tNOTES")
	for _, apt := range appointments {
		notes := apt.Notes
		if notes == "" {
			notes = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			format.ShortenID(apt.ID, 8), doctorLabel(apt), apt.DiseaseCategory,
			appointmentWhen(apt), apt.Status, notes)
	}
	return w.Flush()
}

var cancelReason string

var appointmentsCancelCmd = &cobra.Command{
	Use:   "cancel <appointment-id>",
	Short: "Cancel an appointment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := gate(cmd, "/patient/appointments")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		appointmentID, err := resolveAppointment(ctx, client, args[0])
		if err != nil {
			return err
		}

		if err := client.CancelAppointment(ctx, appointmentID, sdk.CancelInput{Reason: cancelReason}); err != nil {
			return fmt.Errorf("failed to cancel appointment: %s", sdk.ErrorMessage(err, err.Error()))
		}
		pterm.Success.Println("Appointment cancelled.")
		return nil
	},
}

var (
	rescheduleDate   string
	rescheduleStart  string
	rescheduleEnd    string
	rescheduleReason string
)

var appointmentsRescheduleCmd = &cobra.Command{
	Use:   "reschedule <appointment-id>",
	Short: "Ask for a new slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := gate(cmd, "/patient/appointments")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		appointmentID, err := resolveAppointment(ctx, client, args[0])
		if err != nil {
			return err
		}

		input := sdk.RescheduleInput{
			NewDate:  rescheduleDate,
			NewStart: rescheduleStart,
			NewEnd:   rescheduleEnd,
			Reason:   rescheduleReason,
		}
		if err := client.RescheduleAppointment(ctx, appointmentID, input); err != nil {
			return fmt.Errorf("failed to reschedule appointment: %s", sdk.ErrorMessage(err, err.Error()))
		}
		pterm.Success.Println("Reschedule requested. The clinic team will confirm the new slot.")
		return nil
	},
}

func init() {
	appointmentsCancelCmd.Flags().StringVar(&cancelReason, "reason", "", "Why you're cancelling")
	appointmentsCancelCmd.MarkFlagRequired("reason")

	appointmentsRescheduleCmd.Flags().StringVar(&rescheduleDate, "date", "", "New date (YYYY-MM-DD)")
	appointmentsRescheduleCmd.Flags().StringVar(&rescheduleStart, "start", "", "New start time (e.g. 10:00 AM)")
	appointmentsRescheduleCmd.Flags().StringVar(&rescheduleEnd, "end", "", "New end time (e.g. 10:30 AM)")
	appointmentsRescheduleCmd.Flags().StringVar(&rescheduleReason, "reason", "", "Why you're rescheduling")
	appointmentsRescheduleCmd.MarkFlagRequired("date")

	appointmentsCmd.AddCommand(appointmentsListCmd)
	appointmentsCmd.AddCommand(appointmentsCancelCmd)
	appointmentsCmd.AddCommand(appointmentsRescheduleCmd)
}
