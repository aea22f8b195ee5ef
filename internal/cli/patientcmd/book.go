package patientcmd

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Mahesh-Koilapu/hbctl/internal/config"
	"github.com/Mahesh-Koilapu/hbctl/pkg/sdk"
)

var (
	bookCategory string
	bookSymptoms string
	bookDetails  string
	bookDate     string
	bookStart    string
	bookEnd      string
	bookDoctor   string
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Request an appointment",
	Long: `Requests an appointment with your preferred slot. The clinic team assigns
a doctor and confirms the final schedule; choose a doctor up front with
--doctor if you already know who you want to see.

Without flags, the command walks you through the booking form.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		client, err := gate(cmd, "/patient/book")
		if err != nil {
			return err
		}

		input := sdk.BookingInput{
			DiseaseCategory: bookCategory,
			Symptoms:        bookSymptoms,
			Details:         bookDetails,
			PreferredDate:   bookDate,
			PreferredStart:  bookStart,
			PreferredEnd:    bookEnd,
			DoctorID:        bookDoctor,
		}

		if input.DiseaseCategory == "" || input.Symptoms == "" || input.PreferredDate == "" {
			if cfg.NonInteractive {
				return fmt.Errorf("category, symptoms, and date are required in non-interactive mode")
			}
			if err := promptBooking(&input); err != nil {
				return err
			}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := client.BookAppointment(ctx, input); err != nil {
			return fmt.Errorf("failed to book appointment: %s", sdk.ErrorMessage(err, err.Error()))
		}

		pterm.Success.Println("Appointment requested. The clinic team will confirm your slot shortly.")
		pterm.Info.Println("Track it with `hbctl patient appointments`.")
		return nil
	},
}

func promptBooking(input *sdk.BookingInput) error {
	var err error
	if input.DiseaseCategory == "" {
		input.DiseaseCategory, err = pterm.DefaultInteractiveSelect.
			WithOptions(sdk.DiseaseCategories).
			Show("What brings you in?")
		if err != nil {
			return err
		}
	}
	if input.Symptoms == "" {
		input.Symptoms, err = pterm.DefaultInteractiveTextInput.Show("Describe your symptoms")
		if err != nil {
			return err
		}
	}
	if input.PreferredDate == "" {
		input.PreferredDate, err = pterm.DefaultInteractiveTextInput.Show("Preferred date (YYYY-MM-DD)")
		if err != nil {
			return err
		}
	}
	if input.PreferredStart == "" {
		input.PreferredStart, err = pterm.DefaultInteractiveTextInput.Show("Preferred start time (optional, e.g. 10:00 AM)")
		if err != nil {
			return err
		}
	}
	if input.PreferredStart != "" && input.PreferredEnd == "" {
		input.PreferredEnd, err = pterm.DefaultInteractiveTextInput.Show("Preferred end time (e.g. 10:30 AM)")
		if err != nil {
			return err
		}
	}
	return nil
}

func init() {
	bookCmd.Flags().StringVar(&bookCategory, "category", "", "Disease category (e.g. Cardiology, General)")
	bookCmd.Flags().StringVar(&bookSymptoms, "symptoms", "", "Symptom description")
	bookCmd.Flags().StringVar(&bookDetails, "details", "", "Anything else the doctor should know")
	bookCmd.Flags().StringVar(&bookDate, "date", "", "Preferred date (YYYY-MM-DD)")
	bookCmd.Flags().StringVar(&bookStart, "start", "", "Preferred start time (e.g. 10:00 AM)")
	bookCmd.Flags().StringVar(&bookEnd, "end", "", "Preferred end time (e.g. 10:30 AM)")
	bookCmd.Flags().StringVar(&bookDoctor, "doctor", "", "Doctor id to request directly (optional)")
}
