package patientcmd

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
	Short: "View and update your medical profile",
	RunE:  profileShowRun,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your medical profile",
	RunE:  profileShowRun,
}

func profileShowRun(cmd *cobra.Command, args []string) error {
	client, err := gate(cmd, "/patient/profile")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	data, err := client.PatientProfile(ctx)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if data.User != nil {
		fmt.Fprintf(w, "Name:\t%s\n", data.User.Name)
		fmt.Fprintf(w, "Email:\t%s\n", data.User.Email)
	}
	if p := data.Profile; p != nil {
		age := "-"
		if p.Age > 0 {
			age = fmt.Sprintf("%d", p.Age)
		}
		fmt.Fprintf(w, "Age:\t%s\n", age)
		fmt.Fprintf(w, "Gender:\t%s\n", orDash(p.Gender))
		fmt.Fprintf(w, "Condition:\t%s\n", orDash(p.DiseaseType))
		fmt.Fprintf(w, "Symptoms:\t%s\n", orDash(p.Symptoms))
		fmt.Fprintf(w, "Medical history:\t%s\n", orDash(p.MedicalHistory))
		if c := p.EmergencyContact; c != nil {
			fmt.Fprintf(w, "Emergency contact:\t%s (%s), %s\n", c.Name, c.Relation, c.Phone)
		}
	}
	return w.Flush()
}

var (
	profileName      string
	profileAge       int
	profileGender    string
	profileCondition string
	profileSymptoms  string
	profileHistory   string
	contactName      string
	contactPhone     string
	contactRelation  string
)

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your medical profile",
	Long:  `Only the flags you pass change; everything else keeps its current value.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().NFlag() == 0 {
			return fmt.Errorf("nothing to update; pass at least one flag")
		}

		client, err := gate(cmd, "/patient/profile")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		input := sdk.PatientProfileInput{
			Name:           profileName,
			Age:            profileAge,
			Gender:         profileGender,
			DiseaseType:    profileCondition,
			Symptoms:       profileSymptoms,
			MedicalHistory: profileHistory,
		}
		if contactName != "" || contactPhone != "" {
			input.EmergencyContact = &sdk.EmergencyContact{
				Name:     contactName,
				Phone:    contactPhone,
				Relation: contactRelation,
			}
		}

		if err := client.UpdatePatientProfile(ctx, input); err != nil {
			return fmt.Errorf("failed to update profile: %s", sdk.ErrorMessage(err, err.Error()))
		}
		pterm.Success.Println("Profile updated.")
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	profileUpdateCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileUpdateCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileUpdateCmd.Flags().StringVar(&profileGender, "gender", "", "Gender")
	profileUpdateCmd.Flags().StringVar(&profileCondition, "condition", "", "Primary condition")
	profileUpdateCmd.Flags().StringVar(&profileSymptoms, "symptoms", "", "Current symptoms")
	profileUpdateCmd.Flags().StringVar(&profileHistory, "history", "", "Medical history")
	profileUpdateCmd.Flags().StringVar(&contactName, "contact-name", "", "Emergency contact name")
	profileUpdateCmd.Flags().StringVar(&contactPhone, "contact-phone", "", "Emergency contact phone")
	profileUpdateCmd.Flags().StringVar(&contactRelation, "contact-relation", "", "Emergency contact relation")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
}
