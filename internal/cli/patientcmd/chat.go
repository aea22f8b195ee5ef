package patientcmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Mahesh-Koilapu/hbctl/internal/chatbot"
	"github.com/Mahesh-Koilapu/hbctl/internal/config"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the medical assistant",
	Long: `Opens the scripted medical assistant. It knows your doctors and
appointments, walks you through bookings, and triages symptoms. Type
'quit' to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if cfg.NonInteractive {
			return fmt.Errorf("chat is interactive; run without --non-interactive")
		}

		client, err := gate(cmd, "/patient/chat")
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		engine := &chatbot.Engine{}
		if doctors, err := client.PatientDoctors(ctx); err == nil {
			engine.Doctors = doctors
		} else {
			cfg.Logger.Debug().Err(err).Msg("chat running without doctor data")
		}
		if appointments, err := client.PatientAppointments(ctx); err == nil {
			engine.Appointments = appointments
		} else {
			cfg.Logger.Debug().Err(err).Msg("chat running without appointment data")
		}

		printChatResponse(engine.Greeting())

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
			if input == "quit" || input == "exit" {
				break
			}
			printChatResponse(engine.Reply(input))
		}
		return scanner.Err()
	},
}

func printChatResponse(resp chatbot.Response) {
	fmt.Println()
	fmt.Println(resp.Text)
	if len(resp.QuickActions) > 0 {
		pterm.Info.Println("Try: " + strings.Join(resp.QuickActions, " | "))
	}
	fmt.Println()
}
