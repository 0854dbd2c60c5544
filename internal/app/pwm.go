package app

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/hexlocker/pswm/internal/genpass"
	"github.com/hexlocker/pswm/internal/pswmerr"
	"github.com/hexlocker/pswm/internal/record"
)

// recordSource is the minimal capability PwmGet's filter/sort pipeline
// consumes; both *record.Iterator and *record.FilteredIterator satisfy
// it.
type recordSource interface {
	Next() (*record.Record, error)
}

// PwmNewOptions holds the arguments of the `pwm new` command.
type PwmNewOptions struct {
	Password   string // empty means: generate one and copy it to the clipboard
	Username   string
	Domain     string
	Fields     map[string]string
	GenOptions genpass.Options
}

// PwmNew appends a new record to the password-manager store, mirroring
// `pwm new [--password P] --username U --domain D [--field K=V …]
// [--length N] [--no-lower|--no-upper|--no-digits|--no-symbols]`. If
// Password is empty, one is generated and copied to the clipboard.
func (a *App) PwmNew(opts PwmNewOptions) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	password := opts.Password
	generated := password == ""
	if generated {
		password, err = genpass.Generate(opts.GenOptions)
		if err != nil {
			return err
		}
	}

	rec := record.Record{
		Password:         password,
		Domain:           opts.Domain,
		Username:         opts.Username,
		AdditionalFields: opts.Fields,
	}

	appender, err := store.Appender()
	if err != nil {
		return err
	}
	if err := record.WriteRecord(appender, rec); err != nil {
		return err
	}
	if err := appender.Flush(); err != nil {
		return err
	}

	if generated {
		if err := clipboard.WriteAll(password); err != nil {
			return pswmerr.Wrap(pswmerr.CopyToClipboard, err)
		}
		fmt.Println(a.Styler.Success("generated password copied to clipboard"))
	}
	fmt.Println(a.Styler.Success(fmt.Sprintf("added record for %s@%s", opts.Username, opts.Domain)))
	return nil
}

// PwmGetOptions holds the arguments of the `pwm get` command.
type PwmGetOptions struct {
	Filter  record.Filter
	SortBy  *record.SortBy
	Verbose bool
}

// PwmGet lists records from the password-manager store matching Filter,
// mirroring `pwm get [--filters…] [--sort-by F] [--verbose]`. Every
// matching record is printed; when the match set is a single record,
// its password is additionally copied to the clipboard.
func (a *App) PwmGet(opts PwmGetOptions) error {
	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	var src recordSource = record.NewIterator(store)
	if !opts.Filter.IsRedundant() {
		src = record.FilterRecords(record.NewIterator(store), opts.Filter)
	}

	var groups []recordGroup
	if opts.SortBy != nil {
		sorted, err := record.Sort(src, *opts.SortBy)
		if err != nil {
			return err
		}
		groups = groupedRecords(sorted)
	} else {
		recs, err := drain(src)
		if err != nil {
			return err
		}
		groups = []recordGroup{{Records: recs}}
	}

	var recs []record.Record
	for _, group := range groups {
		if group.Header != "" {
			fmt.Println(a.Styler.Info(group.Header))
		}
		for _, rec := range group.Records {
			a.printRecord(rec, opts.Verbose)
			recs = append(recs, rec)
		}
	}

	if len(recs) == 1 {
		if err := clipboard.WriteAll(recs[0].Password); err == nil {
			fmt.Println(a.Styler.Success("copied to clipboard"))
		}
	}
	return nil
}

// drain collects every record from src, matching record.Collect's
// semantics but over the recordSource interface so it also accepts a
// *record.FilteredIterator.
func drain(src recordSource) ([]record.Record, error) {
	var out []record.Record
	for {
		rec, err := src.Next()
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return out, nil
		}
		out = append(out, *rec)
	}
}

// recordGroup is one printed section of a `pwm get --sort-by` listing: an
// optional header line (the field value the group shares) followed by its
// records.
type recordGroup struct {
	Header  string
	Records []record.Record
}

// groupedRecords turns a SortedRecords into the ordered sequence of
// recordGroups `pwm get --sort-by` prints, one labeled group per bucket
// followed by an unlabeled group for NoField, matching
// print_sorted_passwords's per-group headers.
func groupedRecords(sorted *record.SortedRecords) []recordGroup {
	var groups []recordGroup
	for field, bucket := range sorted.Buckets {
		groups = append(groups, recordGroup{Header: field + ":", Records: bucket})
	}
	if len(sorted.NoField) > 0 {
		groups = append(groups, recordGroup{Records: sorted.NoField})
	}
	return groups
}

// printRecord prints one record in the `user@domain: 'password'` form;
// verbose also prints its additional fields.
func (a *App) printRecord(rec record.Record, verbose bool) {
	fmt.Printf("%s@%s: '%s'\n", rec.Username, rec.Domain, rec.Password)
	if !verbose {
		return
	}
	for key, value := range rec.AdditionalFields {
		fmt.Printf("  %s: %s\n", key, value)
	}
}
