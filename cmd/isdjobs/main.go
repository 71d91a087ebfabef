// Command isdjobs is the terminal frontend: it submits a search to the API,
// filters the results locally and saves bookmark annotations.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"github.com/mrdomrivera-isd/ISDJOBS/internal/client"
	"github.com/mrdomrivera-isd/ISDJOBS/internal/config"
	"github.com/mrdomrivera-isd/ISDJOBS/internal/dtos"
	"github.com/mrdomrivera-isd/ISDJOBS/internal/filter"
	"github.com/mrdomrivera-isd/ISDJOBS/internal/models"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "search":
		err = runSearch(cfg, os.Args[2:])
	case "bookmark":
		err = runBookmark(cfg, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: isdjobs search [flags] | isdjobs bookmark -url URL [-status S] [-notes N]")
	fmt.Fprintln(os.Stderr, "focus tags:", strings.Join(filter.TagNames(), ", "))
}

func runSearch(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)

	criteria := models.DefaultCriteria()
	fs.StringVar(&criteria.Zip, "zip", criteria.Zip, "zip code")
	fs.Float64Var(&criteria.Radius, "radius", criteria.Radius, "search radius in miles")
	fs.BoolVar(&criteria.RequireClearance, "require-clearance", false, "only roles with a clearance requirement")
	fs.Float64Var(&criteria.SalaryMin, "min-salary", 0, "minimum annual salary")
	fs.Float64Var(&criteria.SalaryMax, "max-salary", 0, "maximum annual salary")
	lat := fs.Float64("lat", 0, "latitude")
	lon := fs.Float64("lon", 0, "longitude")
	boards := fs.String("boards", "", "comma-separated workday board specs (tenant|site|hostHint)")
	keywords := fs.String("keywords", "", "comma-separated search keywords (default: the ISD keyword list)")

	// Client-side filters, applied after the response arrives.
	query := fs.String("query", "", "free-text filter over title/company/department/location")
	remoteOnly := fs.Bool("remote-only", false, "keep only remote listings")
	payTypes := fs.String("pay-type", "", "comma-separated pay types to keep (hourly,salary)")
	focus := fs.String("focus", "", "comma-separated focus tags")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *boards != "" {
		criteria.CompaniesConfig["workday"] = splitList(*boards)
	}
	if *keywords != "" {
		criteria.Keywords = splitList(*keywords)
	}
	if *lat != 0 {
		criteria.Latitude = lat
	}
	if *lon != 0 {
		criteria.Longitude = lon
	}

	api := client.New(cfg.APIBase)
	resp, err := api.Search(context.Background(), criteria)
	if err != nil {
		return err
	}

	state := filter.State{
		Query:      *query,
		RemoteOnly: *remoteOnly,
		FocusTags:  splitList(*focus),
	}
	for _, pt := range splitList(*payTypes) {
		state.PayTypes = append(state.PayTypes, models.PayType(pt))
	}
	shown := filter.Apply(resp.Results, state)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COMPANY\tTITLE\tLOCATION\tSTATUS\tURL")
	for _, l := range shown {
		loc := l.Location
		if l.Remote && loc == "" {
			loc = "Remote"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", l.Company, l.Title, loc, l.BookmarkStatus, l.URL)
	}
	w.Flush()
	fmt.Printf("%d of %d listings shown\n", len(shown), resp.Meta.Count)
	return nil
}

func runBookmark(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("bookmark", flag.ExitOnError)
	url := fs.String("url", "", "listing url (required)")
	status := fs.String("status", "", "one of: "+strings.Join(models.BookmarkStatuses, ", ")+" (or empty)")
	notes := fs.String("notes", "", "free-text notes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *url == "" {
		return fmt.Errorf("-url is required")
	}

	api := client.New(cfg.APIBase)
	err := api.SaveBookmark(context.Background(), dtos.BookmarkRequest{
		URL:    *url,
		Status: *status,
		Notes:  *notes,
	})
	if err != nil {
		return err
	}
	fmt.Println("bookmark saved")
	return nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
