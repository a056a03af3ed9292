package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newCelebrityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "celebrity",
		Short: "Celebrity catalog commands",
	}

	cmd.AddCommand(newCelebrityListCmd())
	cmd.AddCommand(newCelebrityGetCmd())
	cmd.AddCommand(newCelebrityProvinceCmd())
	cmd.AddCommand(newCelebrityNearbyCmd())
	cmd.AddCommand(newCelebrityCreateCmd())
	cmd.AddCommand(newCelebrityDeleteCmd())

	return cmd
}

func newCelebrityListCmd() *cobra.Command {
	var category, search string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List celebrities",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if category != "" {
				q.Set("category", category)
			}
			if search != "" {
				q.Set("search", search)
			}
			if limit > 0 {
				q.Set("limit", fmt.Sprintf("%d", limit))
			}

			path := "/api/celebrities"
			if len(q) > 0 {
				path += "?" + q.Encode()
			}

			var result []Celebrity
			if _, err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive name search")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum results")

	return cmd
}

func newCelebrityGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a celebrity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Celebrity
			if _, err := client.Get("/api/celebrities/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newCelebrityProvinceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "province <province>",
		Short: "List celebrities born in a province",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Celebrity
			if _, err := client.Get("/api/celebrities/province/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newCelebrityNearbyCmd() *cobra.Command {
	var lng, lat, distance float64

	cmd := &cobra.Command{
		Use:   "nearby",
		Short: "List celebrities near a point",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			q.Set("lng", fmt.Sprintf("%v", lng))
			q.Set("lat", fmt.Sprintf("%v", lat))
			if distance > 0 {
				q.Set("distance", fmt.Sprintf("%v", distance))
			}

			var result []Celebrity
			if _, err := client.Get("/api/celebrities/nearby?"+q.Encode(), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().Float64Var(&lng, "lng", 0, "Longitude (required)")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Latitude (required)")
	cmd.Flags().Float64Var(&distance, "distance", 0, "Search radius in meters")
	_ = cmd.MarkFlagRequired("lng")
	_ = cmd.MarkFlagRequired("lat")

	return cmd
}

func newCelebrityCreateCmd() *cobra.Command {
	var name, province, category, photo, bio string
	var lng, lat float64
	var birthYear int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a celebrity (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":          name,
				"birthProvince": province,
				"category":      category,
				"coordinates":   []float64{lng, lat},
			}
			if photo != "" {
				req["photo"] = photo
			}
			if bio != "" {
				req["bio"] = bio
			}
			if birthYear != 0 {
				req["birthYear"] = birthYear
			}

			var result Celebrity
			if _, err := client.Post("/api/celebrities", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Name (required)")
	cmd.Flags().StringVar(&province, "province", "", "Birth province (required)")
	cmd.Flags().StringVar(&category, "category", "", "Category (required)")
	cmd.Flags().Float64Var(&lng, "lng", 0, "Birthplace longitude (required)")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Birthplace latitude (required)")
	cmd.Flags().StringVar(&photo, "photo", "", "Photo URL")
	cmd.Flags().StringVar(&bio, "bio", "", "Short biography")
	cmd.Flags().IntVar(&birthYear, "birth-year", 0, "Birth year")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("province")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("lng")
	_ = cmd.MarkFlagRequired("lat")

	return cmd
}

func newCelebrityDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Deactivate a celebrity (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := client.Delete("/api/celebrities/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Celebrity deleted")
			return nil
		},
	}
}
