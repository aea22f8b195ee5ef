package doctorcmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Mahesh-Koilapu/hbctl/pkg/sdk"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View and update your practice details",
	RunE:  profileShowRun,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your practice details",
	RunE:  profileShowRun,
}

func profileShowRun(cmd *cobra.Command, args []string) error {
	client, err := gate(cmd, "/doctor/profile")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	dashboard, err := client.DoctorDashboard(ctx)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if dashboard.User != nil {
		fmt.Fprintf(w, "Name:\tDr. %s\n", dashboard.User.Name)
		fmt.Fprintf(w, "Email:\t%s\n", dashboard.User.Email)
	}
	if p := dashboard.Profile; p != nil {
		fmt.Fprintf(w, "Specialization:\t%s\n", orDash(p.Specialization))
		fmt.Fprintf(w, "Experience:\t%d yrs\n", p.Experience)
		fmt.Fprintf(w, "Education:\t%s\n", orDash(p.Education))
		fmt.Fprintf(w, "Consultation fee:\t$%.2f\n", p.ConsultationFee)
		fmt.Fprintf(w, "Location:\t%s\n", orDash(p.Location))
		fmt.Fprintf(w, "About:\t%s\n", orDash(p.Description))
	}
	return w.Flush()
}

var (
	updateName           string
	updateSpecialization string
	updateExperience     int
	updateEducation      string
	updateDescription    string
	updateFee            float64
	updateLocation       string
)

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your practice details",
	Long:  `Only the flags you pass change; everything else keeps its current value.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().NFlag() == 0 {
			return fmt.Errorf("nothing to update; pass at least one flag")
		}

		client, err := gate(cmd, "/doctor/profile")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		input := sdk.DoctorProfileInput{
			Name:            updateName,
			Specialization:  updateSpecialization,
			Experience:      updateExperience,
			Education:       updateEducation,
			Description:     updateDescription,
			ConsultationFee: updateFee,
			Location:        updateLocation,
		}
		if err := client.UpdateDoctorProfile(ctx, input); err != nil {
			return fmt.Errorf("failed to update profile: %s", sdk.ErrorMessage(err, err.Error()))
		}
		pterm.Success.Println("Profile updated.")
		return nil
	},
}

func init() {
	profileUpdateCmd.Flags().StringVar(&updateName, "name", "", "Display name")
	profileUpdateCmd.Flags().StringVar(&updateSpecialization, "specialization", "", "Medical specialization")
	profileUpdateCmd.Flags().IntVar(&updateExperience, "experience", 0, "Years of experience")
	profileUpdateCmd.Flags().StringVar(&updateEducation, "education", "", "Education and qualifications")
	profileUpdateCmd.Flags().StringVar(&updateDescription, "description", "", "Short professional description")
	profileUpdateCmd.Flags().Float64Var(&updateFee, "fee", 0, "Consultation fee")
	profileUpdateCmd.Flags().StringVar(&updateLocation, "location", "", "Practice location")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
}
