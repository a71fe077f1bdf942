package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/theirongolddev/splitabill/internal/cli"
	"github.com/theirongolddev/splitabill/internal/contact"

	"github.com/spf13/cobra"
)

var (
	flagContactSend    bool
	flagContactName    string
	flagContactEmail   string
	flagContactSubject string
	flagContactMessage string
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Support channels, payment apps and the contact form",
	RunE:  runContact,
}

func init() {
	contactCmd.Flags().BoolVar(&flagContactSend, "send", false, "Submit the contact form")
	contactCmd.Flags().StringVar(&flagContactName, "name", "", "Your name")
	contactCmd.Flags().StringVar(&flagContactEmail, "email", "", "Your email")
	contactCmd.Flags().StringVar(&flagContactSubject, "subject", "", "Message subject")
	contactCmd.Flags().StringVar(&flagContactMessage, "message", "", "Message body")
	rootCmd.AddCommand(contactCmd)
}

func runContact(_ *cobra.Command, _ []string) error {
	if flagContactSend {
		return sendContactForm()
	}

	channels := contact.Channels()
	rows := make([][]string, 0, len(channels))
	for _, c := range channels {
		rows = append(rows, []string{string(c.Kind), c.Label, c.URL})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:    "Get in touch",
		Headers:  []string{"Channel", "Contact", "Link"},
		Rows:     rows,
		LeftCols: []int{1, 2},
	}))

	apps := contact.PaymentApps()
	rows = make([][]string, 0, len(apps))
	for _, p := range apps {
		rows = append(rows, []string{p.Name, p.DeepLink, p.FallbackURL})
	}
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:    "Payment apps",
		Headers:  []string{"App", "Deep link", "Web"},
		Rows:     rows,
		LeftCols: []int{1, 2},
	}))
	return nil
}

func sendContactForm() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintln(os.Stderr, "  Sending...")
	receipt, err := contact.Submitter{}.Submit(ctx, contact.Form{
		Name:    flagContactName,
		Email:   flagContactEmail,
		Subject: flagContactSubject,
		Message: flagContactMessage,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  %s\n", cli.Good("Thanks "+receipt.Form.Name+", your message has been sent. We'll get back to you soon."))
	return nil
}
