package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

// initialize logging
func init() {
	log.SetFormatter(&log.TextFormatter{
		DisableColors: true,
	})
	log.SetOutput(os.Stdout)
}

// AppName to store application name
var AppName string = "phoneprice"

// AppVersion to set version at compilation time
var AppVersion string = "9999"

// GitCommit to set git commit at compilation time (can be empty)
var GitCommit string

// GoVersion to set Go version at compilation time
var GoVersion string

func main() {

	rand.Seed(time.Now().UnixNano())

	config := NewConfig()

	version := flag.Bool("version", false, "Print version and exit")
	quiet := flag.Bool("quiet", false, "Log errors only")
	verbose := flag.Bool("verbose", false, "Print more logs")
	debug := flag.Bool("debug", false, "Print even more logs")
	inputFileName := flag.String("input", "arcore_devicelist_depth_api_support.csv", "Device list file name")
	outputFileName := flag.String("output", "prices.csv", "Price ranges file name")
	configFileName := flag.String("config", "", "Configuration file name")
	logFileName := flag.String("log-file", "", "Log file name")
	workers := flag.Int("workers", 1, "number of workers for looking up prices")
	continueOnError := flag.Bool("continue-on-error", false, "Skip phones whose lookup failed instead of aborting")
	pidFile := flag.String("pid-file", "", "write process ID to this file to disable concurrent executions")
	pidWaitTimeout := flag.Int("pid-wait-timeout", 0, "seconds to wait before giving up when another instance is running")

	flag.Parse()

	if *version {
		showVersion()
		return
	}

	log.SetLevel(log.WarnLevel)
	if *debug {
		log.SetLevel(log.DebugLevel)
	}
	if *verbose {
		log.SetLevel(log.InfoLevel)
	}
	if *quiet {
		log.SetLevel(log.ErrorLevel)
	}

	if *logFileName != "" {
		fd, err := os.OpenFile(*logFileName, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			fmt.Printf("cannot open file for logging: %s\n", err)
		} else {
			defer fd.Close()
			log.SetOutput(fd)
		}
	}

	if *configFileName != "" {
		if err := config.Read(*configFileName); err != nil {
			log.Fatalf("cannot parse configuration file: %s", err)
		}
		log.Debugf("configuration file %s parsed", *configFileName)
	}

	// handle PID file
	if err := acquirePid(*pidFile, time.Duration(*pidWaitTimeout)*time.Second); err != nil {
		log.Fatalf("cannot write PID file: %s", err)
	}
	defer releasePid(*pidFile)

	fetcher, err := NewFetcherFromConfig(config.Source, config.BrowserAddress)
	if err != nil {
		releasePid(*pidFile)
		log.Fatalf("cannot create fetcher: %s", err)
	}

	opts := runOptions{
		Input:           *inputFileName,
		Output:          *outputFileName,
		Workers:         *workers,
		ContinueOnError: *continueOnError,
	}
	if err := run(context.Background(), config, fetcher, opts); err != nil {
		releasePid(*pidFile)
		log.Fatalf("%s", err)
	}
}

// runOptions to store command line options of a run
type runOptions struct {
	Input           string
	Output          string
	Workers         int
	ContinueOnError bool
}

// run looks up prices of every device of the input file and writes the output file
func run(ctx context.Context, config *Config, fetcher Fetcher, opts runOptions) error {
	infos, err := ReadPhoneInfos(opts.Input)
	if err != nil {
		return fmt.Errorf("cannot read devices: %w", err)
	}

	scraper, err := NewScraper(config.Source, fetcher, config.OutlierDeviation)
	if err != nil {
		return fmt.Errorf("cannot create scraper: %w", err)
	}
	log.Debugf("scraping with %s", scraper)

	phones, err := NewBatch(scraper, opts.Workers, opts.ContinueOnError).Run(ctx, infos)
	if err != nil {
		return err
	}

	if err := WritePrices(opts.Output, phones); err != nil {
		return fmt.Errorf("cannot write prices: %w", err)
	}
	log.Infof("price ranges written to %s", opts.Output)
	return nil
}

func showVersion() {
	if GitCommit != "" {
		AppVersion = fmt.Sprintf("%s-%s", AppVersion, GitCommit)
	}
	fmt.Printf("%s version %s (compiled with %s)\n", AppName, AppVersion, GoVersion)
}
