package authcmd

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Mahesh-Koilapu/hbctl/internal/config"
	"github.com/Mahesh-Koilapu/hbctl/pkg/sdk"
)

var (
	registerName           string
	registerEmail          string
	registerPassword       string
	registerRole           string
	registerSpecialization string
	registerExperience     int
	registerEducation      string
	registerDescription    string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a Heart Beat account",
	Long: `Creates an account and signs you in. Accounts default to the patient role;
doctors register with --role doctor plus their specialization and
credentials.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		input := sdk.RegisterInput{
			Name:           registerName,
			Email:          registerEmail,
			Password:       registerPassword,
			Role:           sdk.Role(registerRole),
			Specialization: registerSpecialization,
			Experience:     registerExperience,
			Education:      registerEducation,
			Description:    registerDescription,
		}

		if input.Name == "" || input.Email == "" || input.Password == "" {
			if cfg.NonInteractive {
				return errors.New("name, email, and password are required in non-interactive mode")
			}
			var err error
			if input.Name, err = promptIfEmpty(input.Name, "Full name", false); err != nil {
				return err
			}
			if input.Email, err = promptIfEmpty(input.Email, "Email", false); err != nil {
				return err
			}
			if input.Password, err = promptIfEmpty(input.Password, "Password (min 8 characters)", true); err != nil {
				return err
			}
		}
		if input.Role == sdk.RoleDoctor && input.Specialization == "" && !cfg.NonInteractive {
			var err error
			if input.Specialization, err = promptIfEmpty(input.Specialization, "Specialization", false); err != nil {
				return err
			}
		}

		store, err := cfg.Provider.Session()
		if err != nil {
			return err
		}

		identity, err := store.Register(cmd.Context(), input)
		if err != nil {
			return errors.New(sdk.ErrorMessage(err, "Unable to register. Please try again."))
		}

		pterm.Success.Printf("Welcome, %s! Your %s account is ready.\n", identity.Name, identity.Role)
		printNextScreen(cfg, identity)
		return nil
	},
}

func promptIfEmpty(value, label string, masked bool) (string, error) {
	if value != "" {
		return value, nil
	}
	input := pterm.DefaultInteractiveTextInput
	if masked {
		input = *input.WithMask("*")
	}
	return input.Show(label)
}

func init() {
	registerCmd.Flags().StringVar(&registerName, "name", "", "Full name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password (min 8 characters)")
	registerCmd.Flags().StringVar(&registerRole, "role", "patient", "Account role: patient or doctor")
	registerCmd.Flags().StringVar(&registerSpecialization, "specialization", "", "Medical specialization (doctors)")
	registerCmd.Flags().IntVar(&registerExperience, "experience", 0, "Years of experience (doctors)")
	registerCmd.Flags().StringVar(&registerEducation, "education", "", "Education and qualifications (doctors)")
	registerCmd.Flags().StringVar(&registerDescription, "description", "", "Short professional description (doctors)")
}
