package salary

import (
	"fmt"
	"strconv"

	"github.com/rkondo/realrent/cmd/cli/root"
	"github.com/rkondo/realrent/cmd/cli/users"
	"github.com/spf13/cobra"
)

// ==========================
// CLI Command Init
// ==========================
func init() {
	salaryCmd := &cobra.Command{
		Use:   "salary",
		Short: "Salary and rent computations",
	}

	salaryCmd.AddCommand(rateCmd(), evaluateCmd())
	root.GetRoot().AddCommand(salaryCmd)
}

// ==========================
// Minute Rate
// ==========================
func rateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rate <monthly income>",
		Short: "Compute the per-minute wage from a monthly income",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := strconv.ParseFloat(args[0], 64); err != nil {
				return fmt.Errorf("monthly income must be a number: %q", args[0])
			}

			var out struct {
				MonthlyIncome    float64 `json:"monthly_income"`
				TotalWorkHours   float64 `json:"total_work_hours"`
				TotalWorkMinutes float64 `json:"total_work_minutes"`
				MinuteRate       float64 `json:"average_minute_salary"`
			}
			if err := users.DoJSON("POST", "/api/salary", map[string]string{"monthly_income": args[0]}, &out); err != nil {
				return err
			}

			fmt.Printf("Monthly income: %.0f\n", out.MonthlyIncome)
			fmt.Printf("Working time:   %.2f hours (%.0f minutes)\n", out.TotalWorkHours, out.TotalWorkMinutes)
			fmt.Printf("Minute wage:    %.2f\n", out.MinuteRate)
			return nil
		},
	}
}

// ==========================
// Effective Rent
// ==========================
func evaluateCmd() *cobra.Command {
	var rent, toStation, toReference, minuteRate float64

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate the effective rent including commute cost",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{
				"rent_input":      rent,
				"time_to_station": toStation,
			}
			if cmd.Flags().Changed("to-reference") {
				payload["time_to_reference"] = toReference
			}
			if cmd.Flags().Changed("minute-rate") {
				payload["minute_salary"] = minuteRate
			}

			var out struct {
				EffectiveRent float64 `json:"real_rent_fee"`
			}
			if err := users.DoJSON("POST", "/api/rent/evaluate", payload, &out); err != nil {
				return err
			}

			fmt.Printf("Effective rent: %.2f\n", out.EffectiveRent)
			return nil
		},
	}
	cmd.Flags().Float64Var(&rent, "rent", 0, "monthly rent")
	cmd.Flags().Float64Var(&toStation, "to-station", 0, "minutes to the candidate station")
	cmd.Flags().Float64Var(&toReference, "to-reference", 0, "minutes from the candidate station to the reference station")
	cmd.Flags().Float64Var(&minuteRate, "minute-rate", 0, "your per-minute wage")
	cmd.MarkFlagRequired("rent")
	cmd.MarkFlagRequired("to-station")
	return cmd
}
