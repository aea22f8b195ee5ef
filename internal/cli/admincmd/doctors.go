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

var doctorsCmd = &cobra.Command{
	Use:   "doctors",
	Short: "Manage doctor accounts",
	RunE:  doctorsListRun,
}

var doctorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List doctor accounts",
	RunE:  doctorsListRun,
}

func doctorsListRun(cmd *cobra.Command, args []string) error {
	client, err := gate(cmd, "/admin/doctors")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	doctors, err := client.AdminDoctors(ctx)
	if err != nil {
		return fmt.Errorf("failed to list doctors: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCODE\tNAME\tSPECIALIZATION\tEXPERIENCE\tSTATUS")
	for _, d := range doctors {
		status := "inactive"
		if d.IsActive {
			status = "active"
		}
		fmt.Fprintf(w, "%s\t%s\tDr. %s\t%s\t%d yrs\t%s\n",
			format.ShortenID(d.ID, 8), format.DoctorID(d.ID), d.Name,
			d.Profile.Specialization, d.Profile.Experience, status)
	}
	return w.Flush()
}

var (
	addDoctorName           string
	addDoctorEmail          string
	addDoctorPassword       string
	addDoctorSpecialization string
	addDoctorExperience     int
	addDoctorEducation      string
	addDoctorDescription    string
)

var doctorsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new doctor account",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := gate(cmd, "/admin/doctors")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		doctor, err := client.CreateDoctor(ctx, sdk.CreateDoctorInput{
			Name:           addDoctorName,
			Email:          addDoctorEmail,
			Password:       addDoctorPassword,
			Specialization: addDoctorSpecialization,
			Experience:     addDoctorExperience,
			Education:      addDoctorEducation,
			Description:    addDoctorDescription,
		})
		if err != nil {
			return fmt.Errorf("failed to add doctor: %s", sdk.ErrorMessage(err, err.Error()))
		}

		pterm.Success.Printf("Dr. %s added (%s).\n", doctor.Name, format.DoctorID(doctor.ID))
		return nil
	},
}

var doctorsToggleCmd = &cobra.Command{
	Use:   "toggle <doctor-id>",
	Short: "Activate or deactivate a doctor account",
	Long: `Flips a doctor between active and inactive. Inactive doctors no longer
appear on the patient booking screens.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := gate(cmd, "/admin/doctors")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		doctors, err := client.AdminDoctors(ctx)
		if err != nil {
			return fmt.Errorf("failed to look up doctor: %w", err)
		}
		doctor, err := findDoctor(doctors, args[0])
		if err != nil {
			return err
		}

		if err := client.SetDoctorStatus(ctx, doctor.ID, !doctor.IsActive); err != nil {
			return fmt.Errorf("failed to update doctor status: %w", err)
		}

		if doctor.IsActive {
			pterm.Success.Printf("Dr. %s deactivated.\n", doctor.Name)
		} else {
			pterm.Success.Printf("Dr. %s activated.\n", doctor.Name)
		}
		return nil
	},
}

var removeYes bool

var doctorsRemoveCmd = &cobra.Command{
	Use:   "remove <doctor-id>",
	Short: "Remove a doctor account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := gate(cmd, "/admin/doctors")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		doctors, err := client.AdminDoctors(ctx)
		if err != nil {
			return fmt.Errorf("failed to look up doctor: %w", err)
		}
		doctor, err := findDoctor(doctors, args[0])
		if err != nil {
			return err
		}

		if !removeYes {
			confirmed, err := pterm.DefaultInteractiveConfirm.Show(
				fmt.Sprintf("Remove Dr. %s? This cannot be undone.", doctor.Name))
			if err != nil {
				return err
			}
			if !confirmed {
				pterm.Info.Println("Aborted.")
				return nil
			}
		}

		if err := client.DeleteDoctor(ctx, doctor.ID); err != nil {
			return fmt.Errorf("failed to remove doctor: %w", err)
		}
		pterm.Success.Printf("Dr. %s removed.\n", doctor.Name)
		return nil
	},
}

// findDoctor accepts a full identifier, a shortened id, or a DR- code.
func findDoctor(doctors []sdk.Doctor, ref string) (*sdk.Doctor, error) {
	for i := range doctors {
		d := &doctors[i]
		if d.ID == ref || format.ShortenID(d.ID, 8) == format.ShortenID(ref, 8) || format.DoctorID(d.ID) == ref {
			return d, nil
		}
	}
	return nil, fmt.Errorf("no doctor matches %q; run `hbctl admin doctors list`", ref)
}

func init() {
	doctorsAddCmd.Flags().StringVar(&addDoctorName, "name", "", "Doctor's full name")
	doctorsAddCmd.Flags().StringVar(&addDoctorEmail, "email", "", "Account email")
	doctorsAddCmd.Flags().StringVar(&addDoctorPassword, "password", "", "Initial password (min 8 characters)")
	doctorsAddCmd.Flags().StringVar(&addDoctorSpecialization, "specialization", "", "Medical specialization")
	doctorsAddCmd.Flags().IntVar(&addDoctorExperience, "experience", 0, "Years of experience")
	doctorsAddCmd.Flags().StringVar(&addDoctorEducation, "education", "", "Education and qualifications")
	doctorsAddCmd.Flags().StringVar(&addDoctorDescription, "description", "", "Short professional description")
	doctorsAddCmd.MarkFlagRequired("name")
	doctorsAddCmd.MarkFlagRequired("email")
	doctorsAddCmd.MarkFlagRequired("password")
	doctorsAddCmd.MarkFlagRequired("specialization")

	doctorsRemoveCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "Skip the confirmation prompt")

	doctorsCmd.AddCommand(doctorsListCmd)
	doctorsCmd.AddCommand(doctorsAddCmd)
	doctorsCmd.AddCommand(doctorsToggleCmd)
	doctorsCmd.AddCommand(doctorsRemoveCmd)
}
