package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	flag "github.com/spf13/pflag"

	"github.com/MosaabBleik/pharmacy-service/internal/clients"
	"github.com/MosaabBleik/pharmacy-service/internal/config"
	"github.com/MosaabBleik/pharmacy-service/internal/dashboard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	addr := flag.String("addr", envOr("DASHBOARD_URL", "http://localhost:"+cfg.App.Port), "dashboard service base URL")
	timeout := flag.Duration("timeout", cfg.App.RequestTimeout, "request timeout")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	c := clients.NewDashboardClient(*addr, *timeout)
	if err := run(context.Background(), c, os.Stdout, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		var apiErr *clients.APIError
		if errors.As(err, &apiErr) && apiErr.Notice != nil {
			printNotice(os.Stderr, *apiErr.Notice)
		}
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: dashctl [flags] <command> [args]

Commands:
  show                  print the dashboard
  restock <id> [amount] add stock to a medicine (default 10)
  accept <request-id>   accept a pending request
  reject <request-id>   reject a pending request
  complete <request-id> mark a handoff as given to the CHW
  offline | online      toggle the mode flag
  notices [limit]       print recent notices

Flags:
`)
	flag.PrintDefaults()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func run(ctx context.Context, c *clients.DashboardClient, out io.Writer, args []string) error {
	cmd, rest := args[0], args[1:]

	need := func(n int) error {
		if len(rest) < n {
			return fmt.Errorf("%s needs %d argument(s)", cmd, n)
		}
		return nil
	}

	var (
		res *clients.ActionResult
		err error
	)
	switch cmd {
	case "show":
		view, err := c.Dashboard(ctx)
		if err != nil {
			return err
		}
		printView(out, view)
		return nil

	case "notices":
		limit := 0
		if len(rest) > 0 {
			if limit, err = strconv.Atoi(rest[0]); err != nil {
				return fmt.Errorf("invalid limit %q", rest[0])
			}
		}
		notices, err := c.Notices(ctx, limit)
		if err != nil {
			return err
		}
		for _, n := range notices {
			printNotice(out, n)
		}
		return nil

	case "restock":
		if err := need(1); err != nil {
			return err
		}
		amount := 0
		if len(rest) > 1 {
			if amount, err = strconv.Atoi(rest[1]); err != nil {
				return fmt.Errorf("invalid amount %q", rest[1])
			}
		}
		res, err = c.Restock(ctx, rest[0], amount)

	case "accept", "reject", "complete":
		if err := need(1); err != nil {
			return err
		}
		switch cmd {
		case "accept":
			res, err = c.Accept(ctx, rest[0])
		case "reject":
			res, err = c.Reject(ctx, rest[0])
		default:
			res, err = c.Complete(ctx, rest[0])
		}

	case "offline", "online":
		res, err = c.SetOffline(ctx, cmd == "offline")

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}

	if err != nil {
		return err
	}
	printNotice(out, res.Notice)
	return nil
}

func printNotice(w io.Writer, n dashboard.Notice) {
	if n.Description == "" {
		fmt.Fprintln(w, n.Title)
		return
	}
	fmt.Fprintf(w, "%s: %s\n", n.Title, n.Description)
}

func printView(w io.Writer, v *dashboard.View) {
	mode := "online"
	if v.Offline {
		mode = "offline"
	}
	fmt.Fprintf(w, "Mode: %s   Revenue (7d): %s   Pending: %d   Accepted: %d   Handed off: %d\n\n",
		mode, v.Stats.TotalRevenue.StringFixed(2), v.Stats.PendingRequests, v.Stats.Accepted, v.Stats.HandedOff)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STOCK ALERTS\tSTOCK\tMIN\tBADGE")
	for _, a := range v.OutOfStock {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", a.Name, a.Stock, a.MinStock, a.Badge)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "REQUEST\tPATIENT\tMEDICINE\tQTY\tKM\tPRIORITY")
	for _, r := range v.Requests {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.1f\t%s\n", r.ID, r.PatientName, r.MedicineName, r.Qty, r.DistanceKm, r.Priority)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "HANDOFF\tPATIENT\tMEDICINE\tQTY")
	for _, h := range v.Handoffs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", h.ID, h.PatientName, h.MedicineName, h.Qty)
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "\nSeason: %s\n", v.Seasonal.Season)
	for _, rec := range v.Seasonal.Recommendations {
		fmt.Fprintf(w, "  %s: %s\n", rec.Title, rec.Reason)
	}
}
