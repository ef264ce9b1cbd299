package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/foomo/htmlgen"
	"github.com/foomo/htmlgen/config"
	"github.com/foomo/htmlgen/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func must(comment string, err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, comment, err)
		os.Exit(1)
	}
}

func main() {
	flagOutput := flag.String("output", "", "overrides the output file of the config")
	flagDebug := flag.Bool("debug", false, "log at debug level")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage:", os.Args[0], "[flags] [path/to/config.yaml]")
		flag.PrintDefaults()
	}
	flag.Parse()
	if len(flag.Args()) > 1 {
		flag.Usage()
		os.Exit(1)
	}

	conf := config.Default()
	if len(flag.Args()) == 1 {
		var errConf error
		conf, errConf = config.Get(flag.Arg(0))
		must("config error:", errConf)
	}
	if *flagOutput != "" {
		conf.Output = *flagOutput
	}
	if *flagDebug {
		conf.Log.Level = "debug"
	}

	logger, errLogger := logging.New(logging.Config{
		Level:       conf.Log.Level,
		Development: conf.Log.Development,
	})
	must("could not create logger:", errLogger)
	defer func() { _ = logger.Sync() }()
	logger.Debug("config", zap.String("dump", spew.Sdump(conf)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	g, errGenerator := htmlgen.NewGenerator(conf, htmlgen.NewHTTPFetcher(conf, logger), logger, registry)
	must("could not create generator:", errGenerator)

	errRun := g.Run(ctx)
	if conf.MetricsFile != "" {
		if errMetrics := prometheus.WriteToTextfile(conf.MetricsFile, registry); errMetrics != nil {
			logger.Error("could not write metrics", zap.String("file", conf.MetricsFile), zap.Error(errMetrics))
		}
	}
	if errRun != nil {
		logger.Error("generation failed", zap.Error(errRun))
		stop()
		_ = logger.Sync()
		os.Exit(1)
	}
}
