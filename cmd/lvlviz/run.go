package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlviz"
	"github.com/katalvlaran/lvlviz/core"
	"github.com/katalvlaran/lvlviz/internal/logging"
	"github.com/katalvlaran/lvlviz/parse"
	"github.com/katalvlaran/lvlviz/randgraph"
	"github.com/katalvlaran/lvlviz/run"
	"github.com/katalvlaran/lvlviz/step"
	"github.com/katalvlaran/lvlviz/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Execute one algorithm in the terminal",
	Long: `Executes a sorting or graph traversal algorithm step by step and
renders every published frame. Ctrl-C cancels the run; the board is
restored to its idle picture before lvlviz exits.

Sorting runs take --values; graph runs take --file or --random. With
--headless the run executes at full speed without rendering and prints
a frame summary instead.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		algoFlag, _ := cmd.Flags().GetString("algo")
		algo := run.Algorithm(algoFlag)
		kind := algo.Kind()
		if kind == "" {
			fmt.Printf("Unknown algorithm %q; pick one of %v\n", algoFlag, run.Catalog())
			os.Exit(1)
		}

		speed, _ := cmd.Flags().GetInt("speed")
		if speed == 0 {
			speed = cfg.DefaultSpeed
		}
		headless, _ := cmd.Flags().GetBool("headless")
		out := cmd.OutOrStdout()

		// Interactive runs render; frame pacing is the interface, so
		// lifecycle logging stays out of the picture. Headless runs
		// record frames instead and log normally.
		var rec *step.Recorder
		ctrlOpts := []run.Option{run.WithLogger(logging.NewNop())}
		if headless {
			rec = &step.Recorder{}
			ctrlOpts = []run.Option{
				run.WithLogger(logging.New(cfg.Level())),
				run.WithArraySink(rec),
				run.WithGraphSink(rec),
				run.WithTimerConstructor(step.Immediate),
			}
		} else {
			r := tui.NewRenderer(out)
			ctrlOpts = append(ctrlOpts, run.WithArraySink(r), run.WithGraphSink(r))
			tui.Banner(termenv.NewOutput(out))
		}
		ctrl := run.New(ctrlOpts...)

		var sess *run.Session
		switch kind {
		case run.KindSort:
			values, verr := parseValues(cmd)
			if verr != nil {
				fmt.Println(verr)
				os.Exit(1)
			}
			sess, err = ctrl.StartSort(algo, values, run.WithSpeed(speed))
		case run.KindGraph:
			g, pos, start, gerr := buildCommandGraph(cmd)
			if gerr != nil {
				fmt.Println(gerr)
				os.Exit(1)
			}
			sess, err = ctrl.StartTraversal(algo, g, start,
				run.WithSpeed(speed), run.WithPositions(pos))
		}
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-quit
			ctrl.Stop()
		}()

		sess.Wait()
		signal.Stop(quit)

		printOutcome(out, sess)
		if rec != nil {
			printRecorded(out, rec)
		}

		switch sess.Outcome() {
		case run.OutcomeCanceled, run.OutcomeFailed:
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("algo", "", "Algorithm id: bubble, selection, insertion, merge, quick, bfs, dfs, dijkstra or bellman-ford")
	runCmd.Flags().String("values", "", "Comma separated integers to sort, e.g. 5,3,8")
	runCmd.Flags().String("file", "", "Graph file: adjacency list or matrix, detected by content")
	runCmd.Flags().Int("random", 0, "Generate a random connected graph with this many vertices")
	runCmd.Flags().Int64("seed", 0, "Seed for --random; omit for a time-derived one")
	runCmd.Flags().String("start", "", "Start vertex of a graph run; defaults to the first vertex")
	runCmd.Flags().Int("speed", 0, "Pacing level 1 (slow) to 10 (fast); 0 picks the configured default")
	runCmd.Flags().Bool("directed", false, "Treat graph edges as one-way arcs")
	runCmd.Flags().Bool("weighted", false, "Allow arbitrary edge weights")
	runCmd.Flags().Bool("headless", false, "Run at full speed without rendering")
}

func parseValues(cmd *cobra.Command) ([]int, error) {
	raw, _ := cmd.Flags().GetString("values")
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("a sorting run needs --values")
	}
	parts := strings.Split(raw, ",")
	values := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad value %q in --values", p)
		}
		values = append(values, v)
	}
	return values, nil
}

// buildCommandGraph turns the graph flags into a model, optional
// layout positions and the effective start vertex.
func buildCommandGraph(cmd *cobra.Command) (*core.Graph, map[string]core.Position, string, error) {
	file, _ := cmd.Flags().GetString("file")
	random, _ := cmd.Flags().GetInt("random")
	directed, _ := cmd.Flags().GetBool("directed")
	weighted, _ := cmd.Flags().GetBool("weighted")
	start, _ := cmd.Flags().GetString("start")

	var (
		g   *core.Graph
		pos map[string]core.Position
		err error
	)
	switch {
	case file != "" && random > 0:
		return nil, nil, "", errors.New("--file and --random are mutually exclusive")

	case file != "":
		data, rerr := os.ReadFile(file)
		if rerr != nil {
			return nil, nil, "", rerr
		}
		text := string(data)
		popts := []parse.Option{parse.WithDirected(directed)}
		if weighted {
			popts = append(popts, parse.WithWeighted())
		}
		// Adjacency lines carry a colon after the vertex id; matrix
		// lines never do.
		if strings.Contains(text, ":") {
			g, err = parse.List(text, popts...)
		} else {
			g, err = parse.Matrix(text, popts...)
		}

	case random > 0:
		ropts := []randgraph.Option{randgraph.WithDirected(directed)}
		if weighted {
			ropts = append(ropts, randgraph.WithWeighted())
		}
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetInt64("seed")
			ropts = append(ropts, randgraph.WithSeed(seed))
		}
		g, pos, err = randgraph.Generate(random, ropts...)

	default:
		return nil, nil, "", errors.New("a graph run needs --file or --random")
	}
	if err != nil {
		return nil, nil, "", err
	}

	if start == "" {
		if ids := g.Vertices(); len(ids) > 0 {
			start = ids[0]
		}
	}
	return g, pos, start, nil
}

func printOutcome(w io.Writer, sess *run.Session) {
	fmt.Fprintf(w, "\n%s %s: %s\n", lvlviz.Name, sess.Algorithm, sess.Outcome())
	res := sess.Result()
	if res == nil {
		return
	}
	if len(res.Order) > 0 {
		fmt.Fprintln(w, "order:", strings.Join(res.Order, " "))
	}
	if res.NegativeCycle {
		fmt.Fprintln(w, "negative cycle detected; distances are not trustworthy")
		return
	}
	var dists []string
	for _, id := range res.Order {
		if d, ok := res.Dist[id]; ok && d != core.Unreached {
			dists = append(dists, fmt.Sprintf("%s=%d", id, d))
		}
	}
	if len(dists) > 0 {
		fmt.Fprintln(w, "dist:", strings.Join(dists, " "))
	}
}

func printRecorded(w io.Writer, rec *step.Recorder) {
	if frames := rec.Arrays(); len(frames) > 0 {
		fmt.Fprintln(w, "frames:", len(frames))
		fmt.Fprintf(w, "sorted: %v\n", frames[len(frames)-1].Values())
		return
	}
	if frames := rec.Graphs(); len(frames) > 0 {
		fmt.Fprintln(w, "frames:", len(frames))
	}
}
