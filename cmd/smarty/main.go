// Command smarty calls the SmartyStreets API from the command line.
//
//	smarty verify [flags] "440 Park Ave S, New York, NY"
//	smarty verify [flags] '[{"street":"1 Infinite Loop","zipcode":"95014"}]'
//	smarty zipcode [flags] -city Cupertino -state CA
//	smarty suggest [flags] "1 Infinite"
//	smarty token -secret s3cret -subject ops
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/joho/godotenv"

	"smartystreets-api/internal/auth"
	"smartystreets-api/pkg/config"
	"smartystreets-api/pkg/logger"
	"smartystreets-api/pkg/smartystreets"
)

var json = sonic.ConfigStd

const usage = `usage: smarty <command> [flags] [args]

commands:
  verify   verify a street address (free text, JSON object or JSON array)
  zipcode  look up a city/state or ZIP Code
  suggest  autocomplete an address prefix
  token    issue a gateway bearer token
`

func main() {
	_ = godotenv.Load()
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "verify":
		err = runVerify(ctx, args[1:], stdout, stderr)
	case "zipcode":
		err = runZipcode(ctx, args[1:], stdout, stderr)
	case "suggest":
		err = runSuggest(ctx, args[1:], stdout, stderr)
	case "token":
		err = runToken(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		if e, ok := smartystreets.AsError(err); ok {
			fmt.Fprintf(stderr, "%s error: %s\n", e.Kind, e.Message)
		} else {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 1
	}
	return 0
}

// clientFlags are shared by the commands that talk to the API.
type clientFlags struct {
	configPath      string
	authID          string
	authToken       string
	host            string
	proxy           string
	includeInvalid  bool
	standardizeOnly bool
	timeout         time.Duration
	raw             bool
	verbose         bool
}

func (f *clientFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.configPath, "config", os.Getenv("CONFIG_PATH"), "YAML config file with a smartystreets section")
	fs.StringVar(&f.authID, "id", "", "auth id (default $SMARTY_AUTH_ID)")
	fs.StringVar(&f.authToken, "token", "", "auth token (default $SMARTY_AUTH_TOKEN)")
	fs.StringVar(&f.host, "host", "", "API base URL")
	fs.StringVar(&f.proxy, "proxy", "", "HTTP proxy URL")
	fs.BoolVar(&f.includeInvalid, "include-invalid", false, "send X-Include-Invalid")
	fs.BoolVar(&f.standardizeOnly, "standardize-only", false, "send X-Standardize-Only")
	fs.DurationVar(&f.timeout, "timeout", 0, "request timeout")
	fs.BoolVar(&f.raw, "raw", false, "print the raw response body")
	fs.BoolVar(&f.verbose, "v", false, "log requests to stderr")
}

// client merges config file, environment and flags, flags winning. The
// smartystreets section is validated only after the flags are applied.
func (f *clientFlags) client(stderr io.Writer) (*smartystreets.Client, error) {
	cfg, err := config.ReadConfig(f.configPath)
	if err != nil {
		return nil, err
	}

	s := &cfg.SmartyStreets
	if f.authID != "" {
		s.AuthID = f.authID
	}
	if f.authToken != "" {
		s.AuthToken = f.authToken
	}
	if f.host != "" {
		s.Host = f.host
	}
	if f.proxy != "" {
		s.Proxy = f.proxy
	}
	if f.includeInvalid {
		s.IncludeInvalid = true
	}
	if f.standardizeOnly {
		s.StandardizeOnly = true
	}
	if f.timeout > 0 {
		s.Timeout = f.timeout
	}
	if err := cfg.ValidateClient(); err != nil {
		return nil, err
	}

	level := "ERROR"
	if f.verbose {
		level = "DEBUG"
	}
	opts := append(cfg.ClientOptions(), smartystreets.WithLogger(logger.New(stderr, level)))
	return smartystreets.NewClient(s.AuthID, s.AuthToken, opts...)
}

func (f *clientFlags) print(w io.Writer, res *smartystreets.Result) error {
	if f.raw {
		_, err := fmt.Fprintln(w, string(res.Body))
		return err
	}
	out, err := json.MarshalIndent(res.Data, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func runVerify(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cf clientFlags
	fs := newFlagSet("verify", stderr)
	cf.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	in, err := addressInput(strings.TrimSpace(strings.Join(fs.Args(), " ")))
	if err != nil {
		return err
	}

	client, err := cf.client(stderr)
	if err != nil {
		return err
	}
	res, err := client.VerifyAddress(ctx, in)
	if err != nil {
		return err
	}
	return cf.print(stdout, res)
}

// addressInput reads a JSON object as Fields, a JSON array as a List and
// anything else as free text.
func addressInput(arg string) (smartystreets.Input, error) {
	switch {
	case arg == "":
		return nil, fmt.Errorf("an address is required")
	case strings.HasPrefix(arg, "{"):
		var fields map[string]any
		if err := json.UnmarshalFromString(arg, &fields); err != nil {
			return nil, fmt.Errorf("invalid address object: %v", err)
		}
		return smartystreets.Fields(fields), nil
	case strings.HasPrefix(arg, "["):
		var items []any
		if err := json.UnmarshalFromString(arg, &items); err != nil {
			return nil, fmt.Errorf("invalid address list: %v", err)
		}
		list := make(smartystreets.List, 0, len(items))
		for i, item := range items {
			switch v := item.(type) {
			case string:
				list = append(list, smartystreets.Text(v))
			case map[string]any:
				list = append(list, smartystreets.Fields(v))
			default:
				return nil, fmt.Errorf("address %d must be a string or an object", i)
			}
		}
		return list, nil
	default:
		return smartystreets.Text(arg), nil
	}
}

func runZipcode(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cf clientFlags
	fs := newFlagSet("zipcode", stderr)
	cf.register(fs)
	city := fs.String("city", "", "city name")
	state := fs.String("state", "", "state name or abbreviation")
	zipcode := fs.String("zipcode", "", "5-digit ZIP Code")
	if err := fs.Parse(args); err != nil {
		return err
	}

	q := smartystreets.Query{}
	if *city != "" {
		q["city"] = *city
	}
	if *state != "" {
		q["state"] = *state
	}
	if *zipcode != "" {
		q["zipcode"] = *zipcode
	} else if fs.NArg() > 0 {
		q["zipcode"] = fs.Arg(0)
	}
	if len(q) == 0 {
		return fmt.Errorf("a city, state or zipcode is required")
	}

	client, err := cf.client(stderr)
	if err != nil {
		return err
	}
	res, err := client.LookupZipcode(ctx, q)
	if err != nil {
		return err
	}
	return cf.print(stdout, res)
}

func runSuggest(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cf clientFlags
	fs := newFlagSet("suggest", stderr)
	cf.register(fs)
	cityFilter := fs.String("city-filter", "", "comma-separated cities to limit suggestions to")
	stateFilter := fs.String("state-filter", "", "comma-separated states to limit suggestions to")
	suggestions := fs.Int("suggestions", 0, "maximum number of suggestions")
	if err := fs.Parse(args); err != nil {
		return err
	}

	prefix := strings.TrimSpace(strings.Join(fs.Args(), " "))
	var s smartystreets.Suggestion = smartystreets.Prefix(prefix)
	if *cityFilter != "" || *stateFilter != "" || *suggestions > 0 {
		q := smartystreets.Query{"prefix": prefix}
		if *cityFilter != "" {
			q["city_filter"] = *cityFilter
		}
		if *stateFilter != "" {
			q["state_filter"] = *stateFilter
		}
		if *suggestions > 0 {
			q["suggestions"] = *suggestions
		}
		s = q
	}

	client, err := cf.client(stderr)
	if err != nil {
		return err
	}
	res, err := client.SuggestAddress(ctx, s)
	if err != nil {
		return err
	}
	return cf.print(stdout, res)
}

func runToken(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("token", stderr)
	secret := fs.String("secret", os.Getenv("JWT_SECRET"), "signing secret (default $JWT_SECRET)")
	subject := fs.String("subject", "", "token subject")
	scope := fs.String("scope", "", "token scope")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := auth.GenerateJWT(*subject, *scope, *secret, *ttl)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(out))
	return err
}
