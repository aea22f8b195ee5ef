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

var appointmentsCmd = &cobra.Command{
	Use:   "appointments",
	Short: "Dispatch and track appointments",
	RunE:  appointmentsListRun,
}

var (
	listDate   string
	listDoctor string
	listStatus string
)

var appointmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List appointments",
	Long:  `Lists every appointment, optionally narrowed by date, doctor, or status.`,
	RunE:  appointmentsListRun,
}

func appointmentsListRun(cmd *cobra.Command, args []string) error {
	client, err := gate(cmd, "/admin/appointments")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	appointments, err := client.AdminAppointments(ctx, sdk.AppointmentFilter{
		Date:   listDate,
		Doctor: listDoctor,
		Status: sdk.AppointmentStatus(listStatus),
	})
	if err != nil {
		return fmt.Errorf("failed to list appointments: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPATIENT\tDOCTOR\tCATEGORY\tSCHEDULED\tSTATUS")
	for _, apt := range appointments {
		patient, doctor := "-", "unassigned"
		if apt.Patient != nil {
			patient = apt.Patient.Name
		}
		if apt.Doctor != nil {
			doctor = "Dr. " + apt.Doctor.Name
		}
		scheduled := format.DateTimePtr(apt.ScheduledDate)
		if apt.ScheduledDate == nil {
			scheduled = "prefers " + format.DateTimePtr(apt.PreferredDate)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			format.ShortenID(apt.ID, 8), patient, doctor, apt.DiseaseCategory, scheduled, apt.Status)
	}
	return w.Flush()
}

var (
	assignDoctor string
	assignDate   string
	assignStart  string
	assignEnd    string
)

var appointmentsAssignCmd = &cobra.Command{
	Use:   "assign <appointment-id>",
	Short: "Assign an appointment to a doctor",
	Long: `Hands a pending appointment to a doctor, optionally fixing the scheduled
slot. The server warns when the slot falls outside the doctor's availability.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := gate(cmd, "/admin/appointments")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		doctors, err := client.AdminDoctors(ctx)
		if err != nil {
			return fmt.Errorf("failed to look up doctor: %w", err)
		}
		doctor, err := findDoctor(doctors, assignDoctor)
		if err != nil {
			return err
		}

		appointmentID, err := resolveAppointment(ctx, client, args[0])
		if err != nil {
			return err
		}

		result, err := client.AssignAppointment(ctx, appointmentID, sdk.AssignAppointmentInput{
			DoctorID:       doctor.ID,
			ScheduledDate:  assignDate,
			ScheduledStart: assignStart,
			ScheduledEnd:   assignEnd,
		})
		if err != nil {
			return fmt.Errorf("failed to assign appointment: %s", sdk.ErrorMessage(err, err.Error()))
		}

		if result.AvailabilityWarning {
			pterm.Warning.Println("The chosen slot is outside the doctor's availability.")
		}
		pterm.Success.Printf("Assigned to Dr. %s.\n", doctor.Name)
		return nil
	},
}

var appointmentsStatusCmd = &cobra.Command{
	Use:   "set-status <appointment-id> <status>",
	Short: "Move an appointment to a new status",
	Long:  `Statuses: pending, confirmed, rescheduled, completed, cancelled, declined.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		status := sdk.AppointmentStatus(args[1])
		valid := false
		for _, s := range sdk.AdminStatuses {
			if s == status {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown status %q; valid statuses are %v", args[1], sdk.AdminStatuses)
		}

		client, err := gate(cmd, "/admin/appointments")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		appointmentID, err := resolveAppointment(ctx, client, args[0])
		if err != nil {
			return err
		}

		if err := client.SetAppointmentStatus(ctx, appointmentID, status); err != nil {
			return fmt.Errorf("failed to update appointment: %w", err)
		}
		pterm.Success.Printf("Appointment marked %s.\n", status)
		return nil
	},
}

// resolveAppointment accepts a full or shortened appointment id.
func resolveAppointment(ctx context.Context, client *sdk.Client, ref string) (string, error) {
	appointments, err := client.AdminAppointments(ctx, sdk.AppointmentFilter{})
	if err != nil {
		return "", fmt.Errorf("failed to look up appointment: %w", err)
	}
	short := format.ShortenID(ref, 8)
	for _, apt := range appointments {
		if apt.ID == ref || format.ShortenID(apt.ID, 8) == short {
			return apt.ID, nil
		}
	}
	return "", fmt.Errorf("no appointment matches %q; run `hbctl admin appointments list`", ref)
}

func init() {
	appointmentsListCmd.Flags().StringVar(&listDate, "date", "", "Filter by date (YYYY-MM-DD)")
	appointmentsListCmd.Flags().StringVar(&listDoctor, "doctor", "", "Filter by doctor id")
	appointmentsListCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status")

	appointmentsAssignCmd.Flags().StringVar(&assignDoctor, "doctor", "", "Doctor to assign (id or DR- code)")
	appointmentsAssignCmd.Flags().StringVar(&assignDate, "date", "", "Scheduled date (YYYY-MM-DD)")
	appointmentsAssignCmd.Flags().StringVar(&assignStart, "start", "", "Scheduled start time (e.g. 10:00 AM)")
	appointmentsAssignCmd.Flags().StringVar(&assignEnd, "end", "", "Scheduled end time (e.g. 10:30 AM)")
	appointmentsAssignCmd.MarkFlagRequired("doctor")

	appointmentsCmd.AddCommand(appointmentsListCmd)
	appointmentsCmd.AddCommand(appointmentsAssignCmd)
	appointmentsCmd.AddCommand(appointmentsStatusCmd)
}
