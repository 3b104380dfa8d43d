package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/diegoclair/duty-roster/internal/config"
	"github.com/diegoclair/duty-roster/internal/domain"
	"github.com/diegoclair/duty-roster/internal/domain/roster"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var (
		professionals []string
		start, end    string
	)

	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Print a schedule and monthly tally for an ad-hoc pool",
		Example: "  roster generate --professional Ayşe --professional Burak --start 2024-02-01 --end 2025-02-01",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			req := roster.Request{
				Professionals:    professionals,
				Start:            cfg.HorizonStart,
				End:              cfg.HorizonEnd,
				Holidays:         cfg.Holidays,
				HolidayDurations: cfg.HolidayDurations,
			}

			if start != "" {
				if req.Start, err = time.Parse(domain.DateLayout, start); err != nil {
					return fmt.Errorf("invalid --start: %w", err)
				}
			}
			if end != "" {
				if req.End, err = time.Parse(domain.DateLayout, end); err != nil {
					return fmt.Errorf("invalid --end: %w", err)
				}
			}

			result, err := roster.Generate(req)
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), professionals, result)
		},
	}

	cmd.Flags().StringArrayVarP(&professionals, "professional", "p", nil, "Professional name, repeat in tie-break order")
	cmd.Flags().StringVar(&start, "start", "", "First day (YYYY-MM-DD), defaults to HORIZON_START")
	cmd.Flags().StringVar(&end, "end", "", "Day after the last one (YYYY-MM-DD), defaults to HORIZON_END")

	return cmd
}

// printResult writes the schedule followed by the zero-filled monthly tally
func printResult(w io.Writer, professionals []string, result *roster.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "Date\tInternal\tExternal")
	for _, a := range result.Schedule {
		internal, _ := a.Get(domain.Internal)
		external, _ := a.Get(domain.External)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", a.Date.Format(domain.DisplayDateLayout), orDash(internal), orDash(external))
	}
	fmt.Fprintln(tw)

	months := result.Tally.Months()
	fmt.Fprintf(tw, "Person\t%s\n", strings.Join(months, "\t"))

	seen := make(map[string]bool, len(professionals))
	for _, p := range professionals {
		if seen[p] {
			continue
		}
		seen[p] = true

		cells := make([]string, 0, len(months))
		for _, m := range months {
			cells = append(cells, fmt.Sprint(result.Tally.Get(p, m)))
		}
		fmt.Fprintf(tw, "%s\t%s\n", p, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}

func orDash(name string) string {
	if name == "" {
		return "-"
	}
	return name
}
