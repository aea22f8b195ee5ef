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

var doctorsCategory string

var doctorsCmd = &cobra.Command{
	Use:   "doctors",
	Short: "Browse doctors available to book",
	Long:  `Lists active doctors, optionally narrowed to the specialty family serving a disease category.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := gate(cmd, "/patient/doctors")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		doctors, err := client.PatientDoctors(ctx)
		if err != nil {
			return fmt.Errorf("failed to list doctors: %w", err)
		}

		if doctorsCategory != "" {
			filtered := doctors[:0]
			for _, d := range doctors {
				if sdk.MatchesCategory(d, doctorsCategory) {
					filtered = append(filtered, d)
				}
			}
			doctors = filtered
		}

		if len(doctors) == 0 {
			pterm.Info.Println("No doctors match. Categories: " + fmt.Sprint(sdk.DiseaseCategories))
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tNAME\tSPECIALIZATION\tEXPERIENCE\tFEE\tLOCATION")
		for _, d := range doctors {
			fee := "-"
			if d.Profile.ConsultationFee > 0 {
				fee = fmt.Sprintf("$%.0f", d.Profile.ConsultationFee)
			}
			location := d.Profile.Location
			if location == "" {
				location = d.Profile.Clinic
			}
			if location == "" {
				location = "-"
			}
			fmt.Fprintf(w, "%s\tDr. %s\t%s\t%d yrs\t%s\t%s\n",
				format.DoctorID(d.ID), d.Name, d.Profile.Specialization, d.Profile.Experience, fee, location)
		}
		return w.Flush()
	},
}

func init() {
	doctorsCmd.Flags().StringVar(&doctorsCategory, "category", "", "Disease category (e.g. Cardiology, General)")
}
