// Command stpg runs the Steiner-tree local-search engine over one or more
// benchmark instances and writes a JSON result file summarizing each run's
// weight trace.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"fortio.org/log"

	"github.com/voronoi-steiner/stpg/localsearch"
	"github.com/voronoi-steiner/stpg/orchestrator"
	"github.com/voronoi-steiner/stpg/startsol"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("stpg", flag.ContinueOnError)

	startFlag := fs.String("start", "dnh", "starting-solution algorithm: dnh or mst")
	methodFlag := fs.String("method", "kv", "local-search composition: kv or sv")
	noEarlyStop := fs.Bool("no-early-stop", false, "disable early stopping inside each move")
	all := fs.Bool("all", false, "solve every instance (odd ids in [1,199])")
	var ids intsFlag
	fs.Var(&ids, "id", "instance id to solve (repeatable)")
	timeoutSeconds := fs.Int("timeout", 3600, "per-instance timeout in seconds (0 disables)")
	dir := fs.String("dir", "instances", "directory containing instance<NNN>.gr files")
	save := fs.String("save", "", "path to write the result JSON (required)")
	verbose := fs.Bool("verbose", false, "verbose logging; only valid with exactly one --id")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	var selected []int
	switch {
	case *all:
		for i := 1; i < 200; i += 2 {
			selected = append(selected, i)
		}
	case len(ids) > 0:
		selected = ids
	default:
		fmt.Fprintln(os.Stderr, "stpg: one of --all or --id is required")
		return 2
	}

	if *verbose && len(selected) != 1 {
		fmt.Fprintln(os.Stderr, "stpg: --verbose requires exactly one --id")
		return 2
	}
	if *verbose {
		if err := log.SetLogLevelStr("debug"); err != nil {
			fmt.Fprintf(os.Stderr, "stpg: %v\n", err)
			return 2
		}
	}

	startAlgo := startsol.Algorithm(*startFlag)
	if startAlgo != startsol.DNH && startAlgo != startsol.MST {
		fmt.Fprintf(os.Stderr, "stpg: unknown --start %q\n", *startFlag)
		return 2
	}

	var method localsearch.Method
	switch *methodFlag {
	case "kv":
		method = localsearch.MethodKV
	case "sv":
		method = localsearch.MethodSV
	default:
		fmt.Fprintf(os.Stderr, "stpg: unknown --method %q\n", *methodFlag)
		return 2
	}

	if *save == "" {
		fmt.Fprintln(os.Stderr, "stpg: --save is required")
		return 2
	}

	cfg := orchestrator.Config{
		Start:     startAlgo,
		Method:    method,
		EarlyStop: !*noEarlyStop,
		Timeout:   time.Duration(*timeoutSeconds) * time.Second,
	}

	results, err := orchestrator.SolveBatch(context.Background(), orchestrator.DirSource{Dir: *dir}, selected, cfg)
	if err != nil {
		log.Warnf("some instances failed: %v", err)
	}

	out, err := os.Create(*save)
	if err != nil {
		log.Errf("creating result file: %v", err)
		return 1
	}
	defer out.Close()

	if err := json.NewEncoder(out).Encode(results); err != nil {
		log.Errf("writing result file: %v", err)
		return 1
	}

	return 0
}

// intsFlag implements flag.Value to accept a repeatable --id N flag.
type intsFlag []int

func (f *intsFlag) String() string {
	return fmt.Sprint([]int(*f))
}

func (f *intsFlag) Set(s string) error {
	var v int
	if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
		return fmt.Errorf("invalid instance id %q: %w", s, err)
	}
	*f = append(*f, v)
	return nil
}
