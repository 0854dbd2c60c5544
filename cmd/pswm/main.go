// Command pswm is the CLI entry point: file locking (`lock`/`unlock`) and
// password-manager record management (`pwm get`/`pwm new`).
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/hexlocker/pswm/internal/app"
	"github.com/hexlocker/pswm/internal/genpass"
	"github.com/hexlocker/pswm/internal/record"
	"github.com/hexlocker/pswm/internal/ui"
)

// Dependencies holds every collaborator the CLI dispatch needs.
type Dependencies struct {
	Terminal *ui.Terminal
	Prompt   *ui.Prompt
	Styler   *ui.Styler
	App      *app.App
}

// NewDependencies wires the standard collaborator set.
func NewDependencies() *Dependencies {
	terminal := ui.NewTerminal()
	prompt := ui.NewPrompt()
	styler := ui.NewStyler()
	return &Dependencies{
		Terminal: terminal,
		Prompt:   prompt,
		Styler:   styler,
		App:      app.New(prompt, terminal, styler),
	}
}

// fieldFlags accumulates repeated `--field K=V` flags into a map.
type fieldFlags map[string]string

func (f fieldFlags) String() string { return "" }

func (f fieldFlags) Set(raw string) error {
	key, value, ok := strings.Cut(raw, "=")
	if !ok {
		return fmt.Errorf("invalid --field value %q, want KEY=VALUE", raw)
	}
	f[key] = value
	return nil
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	deps := NewDependencies()

	var err error
	switch os.Args[1] {
	case "lock":
		err = runLock(deps, os.Args[2:])
	case "unlock":
		err = runUnlock(deps, os.Args[2:])
	case "pwm":
		err = runPwm(deps, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Println(deps.Styler.Failure(err.Error()))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: pswm lock <path> <key> [--immutable]")
	fmt.Fprintln(os.Stderr, "       pswm unlock <path>")
	fmt.Fprintln(os.Stderr, "       pswm pwm get [--password P] [--domain D] [--username U] [--field K=V...] [--sort-by F] [--verbose]")
	fmt.Fprintln(os.Stderr, "       pswm pwm new [--password P] --username U --domain D [--field K=V...] [--length N] [--no-lower] [--no-upper] [--no-digits] [--no-symbols]")
}

func runLock(deps *Dependencies, args []string) error {
	fs := flag.NewFlagSet("lock", flag.ExitOnError)
	immutable := fs.Bool("immutable", false, "set the immutable attribute once locked")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// flag stops at the first positional argument, so flags written after
	// <path> <key> are parsed in a second pass.
	positional := fs.Args()
	if len(positional) > 2 {
		if err := fs.Parse(positional[2:]); err != nil {
			return err
		}
		if fs.NArg() != 0 {
			return fmt.Errorf("lock requires <path> and <key>")
		}
		positional = positional[:2]
	}
	if len(positional) != 2 {
		return fmt.Errorf("lock requires <path> and <key>")
	}
	path, key := positional[0], positional[1]

	return deps.App.Lock(path, []byte(key), *immutable)
}

func runUnlock(deps *Dependencies, args []string) error {
	fs := flag.NewFlagSet("unlock", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("unlock requires <path>")
	}
	return deps.App.Unlock(fs.Arg(0))
}

func runPwm(deps *Dependencies, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("pwm requires a subcommand: get, new")
	}

	switch args[0] {
	case "get":
		return runPwmGet(deps, args[1:])
	case "new":
		return runPwmNew(deps, args[1:])
	default:
		return fmt.Errorf("unknown pwm subcommand %q", args[0])
	}
}

func runPwmGet(deps *Dependencies, args []string) error {
	fs := flag.NewFlagSet("pwm get", flag.ExitOnError)
	password := fs.String("password", "", "filter by a password substring")
	domain := fs.String("domain", "", "filter by a domain substring")
	username := fs.String("username", "", "filter by a username substring")
	sortBy := fs.String("sort-by", "", "group results by \"domain\", \"username\", or an additional field name")
	verbose := fs.Bool("verbose", false, "also print additional fields")
	fields := make(fieldFlags)
	fs.Var(fields, "field", "filter by an additional field, as KEY=VALUE (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filter := record.Filter{AdditionalFilters: fields}
	if fs.Lookup("password").Value.String() != "" {
		filter.Password = password
	}
	if fs.Lookup("domain").Value.String() != "" {
		filter.Domain = domain
	}
	if fs.Lookup("username").Value.String() != "" {
		filter.Username = username
	}

	var sort *record.SortBy
	switch *sortBy {
	case "":
	case "domain":
		s := record.SortByDomain()
		sort = &s
	case "username":
		s := record.SortByUsername()
		sort = &s
	default:
		s := record.SortByField(*sortBy)
		sort = &s
	}

	return deps.App.PwmGet(app.PwmGetOptions{Filter: filter, SortBy: sort, Verbose: *verbose})
}

func runPwmNew(deps *Dependencies, args []string) error {
	fs := flag.NewFlagSet("pwm new", flag.ExitOnError)
	password := fs.String("password", "", "the record's password; if omitted, one is generated")
	username := fs.String("username", "", "the record's username (required)")
	domain := fs.String("domain", "", "the record's domain (required)")
	length := fs.Int("length", genpass.DefaultLength, "generated password length")
	noLower := fs.Bool("no-lower", false, "exclude lowercase letters from the generated dictionary")
	noUpper := fs.Bool("no-upper", false, "exclude uppercase letters from the generated dictionary")
	noDigits := fs.Bool("no-digits", false, "exclude digits from the generated dictionary")
	noSymbols := fs.Bool("no-symbols", false, "exclude symbols from the generated dictionary")
	fields := make(fieldFlags)
	fs.Var(fields, "field", "an additional field, as KEY=VALUE (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *username == "" || *domain == "" {
		return fmt.Errorf("pwm new requires --username and --domain")
	}

	opts := app.PwmNewOptions{
		Password: *password,
		Username: *username,
		Domain:   *domain,
		Fields:   fields,
		GenOptions: genpass.Options{
			Length:    *length,
			Lowercase: !*noLower,
			Uppercase: !*noUpper,
			Digits:    !*noDigits,
			Symbols:   !*noSymbols,
		},
	}

	return deps.App.PwmNew(opts)
}
