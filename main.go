package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jcorbin/linescript/internal/logio"
	"golang.org/x/sync/errgroup"
)

const usage = "Usage: linescript [arguments] [filename]"

func main() {
	ctx := context.Background()

	var cfg runConfig
	var dump bool
	var reportPath string
	var debug bool
	flag.BoolVar(&cfg.verbose, "v", false, "trace variable changes and diagnostics")
	flag.BoolVar(&debug, "debug", false, "enable scanner debug logging")
	flag.BoolVar(&dump, "dump", false, "dump variables to stderr after each run")
	flag.StringVar(&reportPath, "report", "", "write a YAML run report to `file`")
	flag.IntVar(&cfg.jobs, "j", 4, "run up to `n` files at once")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Println(usage)
		return
	}

	var log logio.Logger
	log.SetOutput(os.Stderr)
	if debug {
		cfg.logfn = log.Leveledf("DEBUG")
	}

	results, err := runFiles(ctx, os.Stdout, cfg, flag.Args()...)
	log.ErrorIf(err)

	var reports []Report
	for _, res := range results {
		if res.interp == nil {
			continue
		}
		if dump {
			log.ErrorIf(res.interp.Dump(os.Stderr))
		}
		reports = append(reports, res.interp.Report())
	}
	if reportPath != "" {
		log.ErrorIf(writeReportFile(reportPath, reports))
	}

	code := log.ExitCode()
	if code == 0 && anyUnopened(results) {
		code = 1
	}
	os.Exit(code)
}

type runConfig struct {
	verbose bool
	jobs    int
	logfn   func(mess string, args ...interface{})
}

func (cfg runConfig) options(out io.Writer) Option {
	opts := []Option{
		WithOutput(out),
		WithVerbose(cfg.verbose),
	}
	if cfg.logfn != nil {
		opts = append(opts, WithLogf(cfg.logfn))
	}
	return Options(opts...)
}

type runResult struct {
	name   string
	interp *Interp // nil if the file could not be opened
	out    bytes.Buffer
}

const openFailedMessage = "Error Opening file."

// runFiles runs each named file in its own interpreter, concurrently when
// there are several, writing each file's output to out in argument order.
func runFiles(ctx context.Context, out io.Writer, cfg runConfig, names ...string) ([]*runResult, error) {
	results := make([]*runResult, len(names))
	for i, name := range names {
		results[i] = &runResult{name: name}
	}

	if len(results) == 1 {
		res := results[0]
		err := res.run(ctx, out, cfg)
		return results, err
	}

	eg, ctx := errgroup.WithContext(ctx)
	if cfg.jobs > 0 {
		eg.SetLimit(cfg.jobs)
	}
	for _, res := range results {
		res := res
		eg.Go(func() error { return res.run(ctx, &res.out, cfg) })
	}
	err := eg.Wait()

	for _, res := range results {
		if _, werr := res.out.WriteTo(out); err == nil {
			err = werr
		}
	}
	return results, err
}

func (res *runResult) run(ctx context.Context, out io.Writer, cfg runConfig) error {
	it, err := RunFile(ctx, res.name, cfg.options(out))
	if IsOpenError(err) {
		_, err = fmt.Fprintln(out, openFailedMessage)
		return err
	}
	res.interp = it
	return err
}

func anyUnopened(results []*runResult) bool {
	for _, res := range results {
		if res.interp == nil {
			return true
		}
	}
	return false
}

func writeReportFile(path string, reports []Report) (rerr error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); rerr == nil {
			rerr = cerr
		}
	}()
	return WriteReports(f, reports...)
}
