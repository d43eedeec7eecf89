// Command mahjong-score scores riichi mahjong hands from the command line.
//
//	mahjong-score -hand 123456m123p2278s -win 6s -tsumo -round east -seat south
//	mahjong-score -hand 45m567p678s88p -call chi:234s -win 3m -round e -seat w
//	mahjong-score -waits -hand 123456m123p2278s
//	mahjong-score -batch hands.yaml
//	mahjong-score -i
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	mahjong "mahjong-go"
	"mahjong-go/internal/config"
	"mahjong-go/internal/logging"
	"mahjong-go/internal/natsrpc"
	"mahjong-go/internal/wire"
)

// callList collects repeated -call flags.
type callList []wire.CallSpec

func (c *callList) String() string {
	parts := make([]string, len(*c))
	for i, s := range *c {
		parts[i] = s.Type + ":" + s.Tiles
	}
	return strings.Join(parts, " ")
}

func (c *callList) Set(v string) error {
	typ, rest, ok := strings.Cut(v, ":")
	if !ok {
		return fmt.Errorf("call %q must look like type:tiles[@seat]", v)
	}
	tiles, from, _ := strings.Cut(rest, "@")
	*c = append(*c, wire.CallSpec{Type: typ, Tiles: tiles, From: from})
	return nil
}

type options struct {
	configPath  string
	req         wire.Request
	calls       callList
	all         bool
	asJSON      bool
	waits       bool
	batch       string
	remote      bool
	interactive bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("mahjong-score", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.StringVar(&o.configPath, "config", "", "YAML config file for rules, logging and NATS")
	fs.StringVar(&o.req.Hand, "hand", "", "concealed tiles, e.g. 123m456p789s1122z (0 is a red five)")
	fs.Var(&o.calls, "call", "called meld type:tiles[@seat], repeatable (chi, pon, daiminkan, shouminkan, ankan)")
	fs.StringVar(&o.req.WinningTile, "win", "", "winning tile")
	fs.BoolVar(&o.req.Tsumo, "tsumo", false, "won by self-draw")
	fs.StringVar(&o.req.RoundWind, "round", "east", "round wind")
	fs.StringVar(&o.req.SeatWind, "seat", "east", "seat wind")
	fs.BoolVar(&o.req.Riichi, "riichi", false, "riichi declared")
	fs.BoolVar(&o.req.DoubleRiichi, "double-riichi", false, "double riichi declared")
	fs.BoolVar(&o.req.Ippatsu, "ippatsu", false, "won within the ippatsu window")
	fs.BoolVar(&o.req.Haitei, "haitei", false, "won on the last wall tile")
	fs.BoolVar(&o.req.Houtei, "houtei", false, "won on the last discard")
	fs.BoolVar(&o.req.Rinshan, "rinshan", false, "won on a kan replacement tile")
	fs.BoolVar(&o.req.Chankan, "chankan", false, "won by robbing a kan")
	fs.BoolVar(&o.req.Tenhou, "tenhou", false, "dealer's first draw")
	fs.BoolVar(&o.req.Chiihou, "chiihou", false, "non-dealer's first draw")
	fs.StringVar(&o.req.DoraIndicators, "dora", "", "dora indicators")
	fs.StringVar(&o.req.UraDoraIndicators, "ura", "", "ura dora indicators")
	fs.IntVar(&o.req.AkaDora, "aka", 0, "red fives held, in addition to any written as 0")
	fs.IntVar(&o.req.Honba, "honba", 0, "honba counters")
	fs.IntVar(&o.req.RiichiSticks, "sticks", 0, "riichi sticks on the table")
	fs.BoolVar(&o.all, "all", false, "print every scoring reading (local only, not with -remote)")
	fs.BoolVar(&o.asJSON, "json", false, "print JSON")
	fs.BoolVar(&o.waits, "waits", false, "list the tiles a 13-tile hand waits on")
	fs.StringVar(&o.batch, "batch", "", "YAML file with a list of hands to score")
	fs.BoolVar(&o.remote, "remote", false, "score through the NATS service in the config")
	fs.BoolVar(&o.interactive, "i", false, "prompt for hands interactively")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	o.req.Calls = o.calls
	if o.remote && o.all {
		fmt.Fprintln(stderr, "-all cannot be combined with -remote: the service returns only the best reading")
		return 2
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	logger := logging.New(stderr, cfg.App)
	scorer := mahjong.NewScorer(mahjong.WithRules(cfg.Rules.ToRules()), mahjong.WithLogger(logger))
	app := &app{scorer: scorer, out: stdout, asJSON: o.asJSON, all: o.all}

	if o.remote {
		client, err := natsrpc.NewClient(cfg.NATS)
		if err != nil {
			fmt.Fprintln(stderr, "connect NATS:", err)
			return 1
		}
		defer client.Close()
		app.remote = natsrpc.NewRequester(client.Conn(), cfg.NATS.Subject, cfg.NATS.RequestTimeout)
	}

	switch {
	case o.interactive:
		err = app.prompt(stdin)
	case o.waits:
		err = app.printWaits(&wire.WaitsRequest{Hand: o.req.Hand, Calls: o.req.Calls})
	case o.batch != "":
		err = app.runBatch(o.batch)
	case o.req.Hand == "":
		fs.Usage()
		return 2
	default:
		err = app.score("", &o.req)
	}
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

// app renders results for one invocation.
type app struct {
	scorer *mahjong.Scorer
	remote *natsrpc.Requester
	out    io.Writer
	asJSON bool
	all    bool
}

func (a *app) score(name string, req *wire.Request) error {
	if name != "" {
		fmt.Fprintf(a.out, "== %s\n", name)
	}
	if a.remote != nil {
		res, err := a.remote.Score(context.Background(), req)
		if err != nil {
			return err
		}
		return a.printWire(res)
	}

	h, ctx, err := req.Build()
	if err != nil {
		return err
	}
	results, err := a.scorer.ScoreAll(h, ctx)
	if err != nil {
		return err
	}
	if !a.all {
		results = results[:1]
	}
	for i := range results {
		if a.asJSON {
			if err := a.printWire(wire.NewResult(&results[i])); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintln(a.out, mahjong.FormatResult(results[i]))
	}
	return nil
}

func (a *app) printWire(res *wire.Result) error {
	if a.asJSON {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	fmt.Fprintln(a.out, res.Headline)
	fmt.Fprintf(a.out, "  reading: %s\n", res.Partition)
	for _, y := range res.Yakuman {
		fmt.Fprintf(a.out, "  %-26s x%d\n", y.Name, y.Multiplier)
	}
	for _, y := range res.Yaku {
		fmt.Fprintf(a.out, "  %-26s %d han\n", y.Name, y.Han)
	}
	fmt.Fprintf(a.out, "  total %d\n", res.Points.Total)
	return nil
}

func (a *app) printWaits(req *wire.WaitsRequest) error {
	concealed, calls, err := req.Build()
	if err != nil {
		return err
	}
	waits := mahjong.Waits(concealed, calls)
	if len(waits) == 0 {
		fmt.Fprintln(a.out, "not tenpai")
		return nil
	}
	names := make([]string, len(waits))
	for i, t := range waits {
		names[i] = t.String()
	}
	fmt.Fprintf(a.out, "waits: %s\n", strings.Join(names, " "))
	return nil
}

// runBatch scores every entry and reports failures inline. It fails only when
// the file cannot be read or every hand failed.
func (a *app) runBatch(path string) error {
	entries, err := wire.LoadBatch(path)
	if err != nil {
		return err
	}
	failed := 0
	for i := range entries {
		if err := a.score(entries[i].Name, &entries[i].Request); err != nil {
			fmt.Fprintf(a.out, "  error: %v\n", err)
			failed++
		}
	}
	if failed > 0 && failed == len(entries) {
		return fmt.Errorf("all %d hands failed", failed)
	}
	return nil
}
