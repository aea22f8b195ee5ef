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

var availabilityCmd = &cobra.Command{
	Use:   "availability",
	Short: "Manage your availability calendar",
	Long: `Your availability is the set of bookable windows patients and the clinic
team see. Emergency holidays block whole days regardless of windows.`,
	RunE: availabilityShowRun,
}

var availabilityShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your availability windows",
	RunE:  availabilityShowRun,
}

func availabilityShowRun(cmd *cobra.Command, args []string) error {
	client, err := gate(cmd, "/doctor/availability")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	profile, err := currentProfile(ctx, client)
	if err != nil {
		return err
	}

	if len(profile.Availability) == 0 {
		pterm.Info.Println("No availability windows yet. Add one with `hbctl doctor availability add`.")
	} else {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tWINDOW\tMAX PATIENTS\tOPEN")
		for _, slot := range profile.Availability {
			open := "yes"
			if slot.IsClosed {
				open = "no"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
				format.Date(slot.Date), format.TimeRange(slot.StartTime, slot.EndTime), slot.MaxPatients, open)
		}
		w.Flush()
	}

	if len(profile.EmergencyHolidays) > 0 {
		pterm.DefaultSection.Println("Emergency Holidays")
		for _, day := range profile.EmergencyHolidays {
			fmt.Println("  " + day)
		}
	}
	return nil
}

var (
	addDate        string
	addStart       string
	addEnd         string
	addMaxPatients int
)

var availabilityAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an availability window",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := time.Parse("2006-01-02", addDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q; expected YYYY-MM-DD", addDate)
		}

		client, err := gate(cmd, "/doctor/availability")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		profile, err := currentProfile(ctx, client)
		if err != nil {
			return err
		}

		slots := append(profile.Availability, sdk.AvailabilitySlot{
			Date:        date,
			StartTime:   addStart,
			EndTime:     addEnd,
			MaxPatients: addMaxPatients,
		})
		if err := client.UpdateAvailability(ctx, sdk.AvailabilityInput{
			Availability:      slots,
			EmergencyHolidays: profile.EmergencyHolidays,
		}); err != nil {
			return fmt.Errorf("failed to save availability: %w", err)
		}

		pterm.Success.Printf("Window added: %s %s.\n", format.Date(date), format.TimeRange(addStart, addEnd))
		return nil
	},
}

var availabilityRemoveCmd = &cobra.Command{
	Use:   "remove <date>",
	Short: "Remove all availability windows on a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := time.Parse("2006-01-02", args[0])
		if err != nil {
			return fmt.Errorf("invalid date %q; expected YYYY-MM-DD", args[0])
		}

		client, err := gate(cmd, "/doctor/availability")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		profile, err := currentProfile(ctx, client)
		if err != nil {
			return err
		}

		day := date.Format("2006-01-02")
		kept := profile.Availability[:0]
		removed := 0
		for _, slot := range profile.Availability {
			if slot.Date.Format("2006-01-02") == day {
				removed++
				continue
			}
			kept = append(kept, slot)
		}
		if removed == 0 {
			pterm.Info.Printf("No windows on %s.\n", day)
			return nil
		}

		if err := client.UpdateAvailability(ctx, sdk.AvailabilityInput{
			Availability:      kept,
			EmergencyHolidays: profile.EmergencyHolidays,
		}); err != nil {
			return fmt.Errorf("failed to save availability: %w", err)
		}
		pterm.Success.Printf("Removed %d window(s) on %s.\n", removed, day)
		return nil
	},
}

var holidayRemove bool

var availabilityHolidayCmd = &cobra.Command{
	Use:   "holiday <date>",
	Short: "Mark or clear an emergency holiday",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := time.Parse("2006-01-02", args[0]); err != nil {
			return fmt.Errorf("invalid date %q; expected YYYY-MM-DD", args[0])
		}

		client, err := gate(cmd, "/doctor/availability")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		profile, err := currentProfile(ctx, client)
		if err != nil {
			return err
		}

		holidays := profile.EmergencyHolidays
		if holidayRemove {
			kept := holidays[:0]
			for _, day := range holidays {
				if day != args[0] {
					kept = append(kept, day)
				}
			}
			holidays = kept
		} else {
			exists := false
			for _, day := range holidays {
				if day == args[0] {
					exists = true
					break
				}
			}
			if !exists {
				holidays = append(holidays, args[0])
			}
		}

		if err := client.UpdateAvailability(ctx, sdk.AvailabilityInput{
			Availability:      profile.Availability,
			EmergencyHolidays: holidays,
		}); err != nil {
			return fmt.Errorf("failed to save availability: %w", err)
		}

		if holidayRemove {
			pterm.Success.Printf("Holiday cleared: %s.\n", args[0])
		} else {
			pterm.Success.Printf("Holiday marked: %s.\n", args[0])
		}
		return nil
	},
}

// currentProfile fetches the caller's profile off the dashboard; availability
// updates replace the calendar wholesale, so every mutation starts from it.
func currentProfile(ctx context.Context, client *sdk.Client) (*sdk.DoctorProfile, error) {
	dashboard, err := client.DoctorDashboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if dashboard.Profile == nil {
		return &sdk.DoctorProfile{}, nil
	}
	return dashboard.Profile, nil
}

func init() {
	availabilityAddCmd.Flags().StringVar(&addDate, "date", "", "Date (YYYY-MM-DD)")
	availabilityAddCmd.Flags().StringVar(&addStart, "start", "", "Window start (e.g. 9:00 AM)")
	availabilityAddCmd.Flags().StringVar(&addEnd, "end", "", "Window end (e.g. 1:00 PM)")
	availabilityAddCmd.Flags().IntVar(&addMaxPatients, "max-patients", 10, "Bookings accepted in this window")
	availabilityAddCmd.MarkFlagRequired("date")
	availabilityAddCmd.MarkFlagRequired("start")
	availabilityAddCmd.MarkFlagRequired("end")

	availabilityHolidayCmd.Flags().BoolVar(&holidayRemove, "remove", false, "Clear the holiday instead of marking it")

	availabilityCmd.AddCommand(availabilityShowCmd)
	availabilityCmd.AddCommand(availabilityAddCmd)
	availabilityCmd.AddCommand(availabilityRemoveCmd)
	availabilityCmd.AddCommand(availabilityHolidayCmd)
}
