package properties

import (
	"encoding/json"
	"fmt"

	"github.com/rkondo/realrent/cmd/cli/output"
	"github.com/rkondo/realrent/cmd/cli/root"
	"github.com/rkondo/realrent/cmd/cli/users"
	"github.com/rkondo/realrent/internal/models"
	"github.com/spf13/cobra"
)

// ==========================
// CLI Command Init
// ==========================
func init() {
	propertiesCmd := &cobra.Command{
		Use:   "properties",
		Short: "Manage saved rental properties",
	}

	propertiesCmd.AddCommand(listCmd(), addCmd(), deleteCmd())
	root.GetRoot().AddCommand(propertiesCmd)
}

// ==========================
// List Properties
// ==========================
func listCmd() *cobra.Command {
	var userID int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List properties saved by a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			var out struct {
				Properties []models.Property `json:"properties"`
				Count      int               `json:"count"`
			}
			if err := users.GetJSON(fmt.Sprintf("/api/properties/%d", userID), &out); err != nil {
				return err
			}

			if asJSON {
				b, _ := json.MarshalIndent(out.Properties, "", "  ")
				fmt.Println(string(b))
				return nil
			}

			rows := make([][]interface{}, 0, len(out.Properties))
			for _, p := range out.Properties {
				rows = append(rows, []interface{}{
					p.ID,
					strOrDash(p.MansionName),
					strOrDash(p.Layout),
					intOrDash(p.Rent),
					intOrDash(p.TimeToStation),
					decOrDash(p.RealRent.Valid, func() string { return p.RealRent.Decimal.StringFixed(2) }),
				})
			}
			output.RenderTable([]string{"ID", "Name", "Layout", "Rent", "To Station (min)", "Real Rent"}, rows)
			return nil
		},
	}
	cmd.Flags().IntVar(&userID, "user", 0, "owner user id")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON instead of a table")
	cmd.MarkFlagRequired("user")
	return cmd
}

// ==========================
// Add Property
// ==========================
func addCmd() *cobra.Command {
	var userID, rent, timeToStation int
	var name, address, layout string
	var area, realRent float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a property for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{"user_id": userID}
			if name != "" {
				payload["mansion_name"] = name
			}
			if address != "" {
				payload["address"] = address
			}
			if layout != "" {
				payload["layout"] = layout
			}
			if cmd.Flags().Changed("area") {
				payload["area"] = area
			}
			if cmd.Flags().Changed("rent") {
				payload["rent"] = rent
			}
			if cmd.Flags().Changed("to-station") {
				payload["time_to_station"] = timeToStation
			}
			if cmd.Flags().Changed("real-rent") {
				payload["real_rent"] = realRent
			}

			var out struct {
				Property models.Property `json:"property"`
			}
			if err := users.DoJSON("POST", "/api/properties", payload, &out); err != nil {
				return err
			}

			fmt.Printf("Property saved with id %d\n", out.Property.ID)
			return nil
		},
	}
	cmd.Flags().IntVar(&userID, "user", 0, "owner user id")
	cmd.Flags().StringVar(&name, "name", "", "building name")
	cmd.Flags().StringVar(&address, "address", "", "address")
	cmd.Flags().StringVar(&layout, "layout", "", "layout code, e.g. 1LDK")
	cmd.Flags().Float64Var(&area, "area", 0, "floor area in square meters")
	cmd.Flags().IntVar(&rent, "rent", 0, "monthly rent")
	cmd.Flags().IntVar(&timeToStation, "to-station", 0, "minutes to the nearest station")
	cmd.Flags().Float64Var(&realRent, "real-rent", 0, "precomputed effective rent")
	cmd.MarkFlagRequired("user")
	return cmd
}

// ==========================
// Delete Property
// ==========================
func deleteCmd() *cobra.Command {
	var userID, propertyID int

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a property you own",
		RunE: func(cmd *cobra.Command, args []string) error {
			var out struct {
				ID          int     `json:"id"`
				MansionName *string `json:"mansion_name"`
			}
			path := fmt.Sprintf("/api/properties/%d", propertyID)
			if err := users.DoJSON("DELETE", path, map[string]int{"user_id": userID}, &out); err != nil {
				return err
			}

			fmt.Printf("Deleted property %d (%s)\n", out.ID, strOrDash(out.MansionName))
			return nil
		},
	}
	cmd.Flags().IntVar(&propertyID, "id", 0, "property id")
	cmd.Flags().IntVar(&userID, "user", 0, "owner user id")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("user")
	return cmd
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func intOrDash(i *int) string {
	if i == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *i)
}

func decOrDash(valid bool, render func() string) string {
	if !valid {
		return "-"
	}
	return render()
}
