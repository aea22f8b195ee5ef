package patientcmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mahesh-Koilapu/hbctl/internal/assistant"
	"github.com/Mahesh-Koilapu/hbctl/internal/config"
)

var assistantCmd = &cobra.Command{
	Use:   "assistant",
	Short: "Talk to the conversational assistant",
	Long: `Opens the conversational assistant. It greets you by name, remembers the
conversation step, and walks multi-turn flows such as booking. Say
'goodbye' to end the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if cfg.NonInteractive {
			return fmt.Errorf("assistant is interactive; run without --non-interactive")
		}

		client, err := gate(cmd, "/patient/assistant")
		if err != nil {
			return err
		}

		store, err := cfg.Provider.Session()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		engine := &assistant.Engine{UserName: "there"}
		if state := store.Snapshot(); state.Identity != nil {
			engine.UserName = state.Identity.Name
		}
		if doctors, err := client.PatientDoctors(ctx); err == nil {
			engine.Doctors = doctors
		} else {
			cfg.Logger.Debug().Err(err).Msg("assistant running without doctor data")
		}
		if appointments, err := client.PatientAppointments(ctx); err == nil {
			engine.Appointments = appointments
		} else {
			cfg.Logger.Debug().Err(err).Msg("assistant running without appointment data")
		}

		fmt.Println()
		fmt.Println(engine.Greeting())
		fmt.Println()

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("you> ")
			if !scanner.Scan() {
				break
			}
			input := strings.TrimSpace(scanner.Text())
			if input == "" {
				continue
			}

			reply := engine.Respond(input)
			fmt.Println()
			fmt.Println(reply.Text)
			fmt.Println()
			if reply.Done {
				break
			}
		}
		return scanner.Err()
	},
}
