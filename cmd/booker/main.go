// Package main is a terminal front-end for the parking booking page.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"techpark/internal/catalog"
	"techpark/internal/client"
	"techpark/internal/domain"
	"techpark/internal/pricing"
	"techpark/internal/utils"

	"github.com/spf13/cobra"
)

const defaultServer = "http://localhost:8080"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		server       string
		locationsYML string
		timeout      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "booker",
		Short: "Book a parking spot from the terminal",
		Long: `Book a parking spot against a running booking service.

Examples:
  booker locations
  booker quote --location airport-lot --duration 10
  booker book --location mall-parking --date 2025-03-09 --time 09:30 --duration 3 \
      --vehicle KA-19-AB-1234 --email me@example.com --upi gpay
`,
		SilenceUsage: true,
	}

	envServer := strings.TrimSpace(os.Getenv("BOOKER_SERVER"))
	if envServer == "" {
		envServer = defaultServer
	}
	cmd.PersistentFlags().StringVar(&server, "server", envServer, "booking service base URL (env BOOKER_SERVER)")
	cmd.PersistentFlags().StringVar(&locationsYML, "locations", "", "YAML location catalog used for local pricing")
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "overall command timeout")

	loadPricer := func() (pricing.Pricer, error) {
		c, err := catalog.Load(locationsYML)
		if err != nil {
			return pricing.Pricer{}, err
		}
		return pricing.New(c), nil
	}
	runCtx := func() (context.Context, context.CancelFunc) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		return ctx, func() { stop(); cancel() }
	}

	cmd.AddCommand(
		locationsCmd(&server, runCtx),
		quoteCmd(loadPricer),
		bookCmd(&server, loadPricer, runCtx),
	)
	return cmd
}

func locationsCmd(server *string, runCtx func() (context.Context, context.CancelFunc)) *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List parking locations and hourly rates from the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := runCtx()
			defer cancel()

			locs, err := client.NewHTTPClient(*server).Locations(ctx)
			if err != nil {
				return fmt.Errorf("fetch locations: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tADDRESS\tRATE\tAVAILABLE")
			for _, l := range locs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s/hour\t%d/%d\n", l.ID, l.Name, l.Address, utils.FormatRupee(l.Rate), l.Available, l.Total)
			}
			return tw.Flush()
		},
	}
}

func quoteCmd(loadPricer func() (pricing.Pricer, error)) *cobra.Command {
	var location, duration, date, at string

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a booking locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPricer()
			if err != nil {
				return err
			}
			q := p.Quote(location, duration, date, at)
			if !q.Ready {
				return fmt.Errorf("--location and --duration (1-%d hours) are required", pricing.MaxHours)
			}
			for _, line := range q.Breakdown() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "location id")
	cmd.Flags().StringVar(&duration, "duration", "", "duration in hours")
	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&at, "time", "", "start time (HH:MM)")
	return cmd
}

func bookCmd(server *string, loadPricer func() (pricing.Pricer, error), runCtx func() (context.Context, context.CancelFunc)) *cobra.Command {
	var (
		location, date, at, duration, vehicle, email string
		upi                                          string
		card                                         client.CardDetails
		receiptPath                                  string
	)

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Submit a booking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPricer()
			if err != nil {
				return err
			}
			ctl := client.NewController(client.NewHTTPClient(*server), p)

			ctl.SetLocation(location)
			ctl.SetDate(date)
			ctl.SetTime(at)
			ctl.SetDuration(duration)
			ctl.SetVehicle(vehicle)
			ctl.SetEmail(email)

			if card.Type != "" || card.Number != "" {
				if err := ctl.SelectPaymentMode(domain.PaymentCard); err != nil {
					return err
				}
				ctl.FillCard(card)
			} else if upi != "" {
				if err := ctl.SelectUPIProvider(client.UPIProvider(strings.ToLower(upi))); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for _, line := range ctl.Quote().Breakdown() {
				fmt.Fprintln(out, line)
			}

			ctx, cancel := runCtx()
			defer cancel()

			conf, err := ctl.Submit(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "\nBooking confirmed (#%d)\n", conf.BookingID)
			for _, line := range conf.Lines() {
				fmt.Fprintln(out, "  "+line)
			}

			if receiptPath != "" {
				if err := os.WriteFile(receiptPath, []byte(conf.Receipt()), 0o644); err != nil {
					return fmt.Errorf("write receipt: %w", err)
				}
				fmt.Fprintf(out, "Receipt saved to %s\n", receiptPath)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&location, "location", "", "location id")
	f.StringVar(&date, "date", "", "date (YYYY-MM-DD)")
	f.StringVar(&at, "time", "", "start time (HH:MM)")
	f.StringVar(&duration, "duration", "", "duration in hours")
	f.StringVar(&vehicle, "vehicle", "", "vehicle number")
	f.StringVar(&email, "email", "", "email for the receipt")
	f.StringVar(&upi, "upi", "", "UPI provider: gpay, phonepe, paytm, other")
	f.StringVar(&card.Type, "card-type", "", "card type, selects card payment")
	f.StringVar(&card.Name, "card-name", "", "name on card")
	f.StringVar(&card.Number, "card-number", "", "card number")
	f.StringVar(&card.Expiry, "card-expiry", "", "card expiry (MM/YY)")
	f.StringVar(&card.CVV, "card-cvv", "", "card CVV")
	f.StringVar(&receiptPath, "receipt", "", "write the plain-text receipt to this file")
	return cmd
}
