package admincmd

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
	Short: "List registered patients",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := gate(cmd, "/admin/patients")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		patients, err := client.AdminPatients(ctx)
		if err != nil {
			return fmt.Errorf("failed to list patients: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tAGE\tCONDITION\tJOINED")
		for _, p := range patients {
			age := "-"
			if p.Profile.Age > 0 {
				age = fmt.Sprintf("%d", p.Profile.Age)
			}
			condition := p.Profile.DiseaseType
			if condition == "" {
				condition = "-"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				format.ShortenID(p.ID, 8), p.Name, p.Email, age, condition, format.Date(p.CreatedAt))
		}
		return w.Flush()
	},
}
