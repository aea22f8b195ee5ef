package doctorcmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mahesh-Koilapu/hbctl/internal/format"
)

var patientsCmd = &cobra.Command{
	Use:   "patients",
	Short: "List the patients under your care",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := gate(cmd, "/doctor/patients")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		patients, err := client.DoctorPatients(ctx)
		if err != nil {
			return fmt.Errorf("failed to list patients: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tAGE\tGENDER\tCONDITION\tSYMPTOMS")
		for _, p := range patients {
			age := "-"
			if p.Profile.Age > 0 {
				age = fmt.Sprintf("%d", p.Profile.Age)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				format.ShortenID(p.ID, 8), p.Name, age,
				orDash(p.Profile.Gender), orDash(p.Profile.DiseaseType), orDash(p.Profile.Symptoms))
		}
		return w.Flush()
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
