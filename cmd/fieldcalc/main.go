// Command fieldcalc computes the magnetic field around a straight wire from
// the command line. With -server it asks a running API server and falls back
// to the identical local computation when the server is unreachable.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Kawakarlyndo/Campomagnetico/internal/fieldclient"
)

func main() {
	current := flag.Float64("current", 1, "current through the wire in Amperes")
	distances := flag.String("distances", "0.01,0.1,1", "comma-separated distances from the wire in meters")
	server := flag.String("server", "", "base URL of a field API server (optional)")
	flag.Parse()

	ds, err := parseDistances(*distances)
	if err != nil {
		exitf("fieldcalc: %v", err)
	}

	var client *fieldclient.Client
	if *server != "" {
		client = fieldclient.New(*server)
	}

	samples, source, err := client.ComputeWithFallback(context.Background(), *current, ds)
	if err != nil {
		exitf("fieldcalc: %v", err)
	}

	fmt.Printf("B = μ0·I/(2πd), I = %g A (computed %s)\n\n", *current, source)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "d (m)\tB (T)")
	for _, s := range samples {
		fmt.Fprintf(w, "%g\t%.6e\n", s.Distance, s.Magnitude)
	}
	w.Flush()
}

func parseDistances(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	ds := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		d, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("distance %q is not a number", p)
		}
		ds = append(ds, d)
	}
	if len(ds) == 0 {
		return nil, fmt.Errorf("no distances given")
	}
	return ds, nil
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
