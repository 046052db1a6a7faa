// Copyright ©2024 The GUDA Authors. All rights reserved.
// Copyright ©2025 The Cliffnet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command geonet builds a geometric point-cloud classifier, lifts a batch of
// random 3-D points into multivectors and prints the resulting logits.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/LynnColeArt/cliffnet"
	"github.com/LynnColeArt/cliffnet/config"
)

// Options represents command line options. Zero values keep the setting
// from the config file.
type Options struct {
	Config     string `long:"config" short:"c" description:"YAML config file"`
	Seed       uint64 `long:"seed" description:"seed for parameters and input points"`
	Classes    int    `long:"classes" description:"number of output classes"`
	Batch      int    `long:"batch" description:"number of point-cloud samples"`
	Workers    int    `long:"workers" description:"goroutines per forward pass, -1 for one per CPU"`
	Bench      int    `long:"bench" description:"time this many forward passes and log the results"`
	Checkpoint string `long:"checkpoint" description:"write network parameters to this file"`
	Restore    string `long:"restore" description:"load network parameters from this file"`
	Verbose    bool   `long:"verbose" short:"v" description:"debug logging"`
	LogFormat  string `long:"log-format" choice:"text" choice:"json" description:"log output format"`
	Info       bool   `long:"info" description:"print CPU and version information and exit"`
}

func main() {
	var opts Options
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "geonet: %v\n", err)
		os.Exit(2)
	}
	log := cfg.Log.NewLogger()

	if opts.Info {
		version, _ := cliffnet.Version()
		log.WithFields(logrus.Fields{
			"cpu":     cliffnet.Features().String(),
			"num_cpu": cliffnet.Features().NumCPU,
			"version": version,
		}).Info("host")
		return
	}

	if err := run(context.Background(), cfg, opts, log); err != nil {
		log.WithError(err).Fatal("geonet failed")
	}
}

// loadConfig applies command-line overrides to the config file or defaults.
func loadConfig(opts Options) (config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return cfg, err
		}
	}
	if opts.Seed > 0 {
		cfg.Network.Seed = opts.Seed
	}
	if opts.Classes > 0 {
		cfg.Network.Sizes[len(cfg.Network.Sizes)-1] = opts.Classes
	}
	if opts.Batch > 0 {
		cfg.Demo.Batch = opts.Batch
	}
	if opts.Workers > 0 {
		cfg.Network.Workers = opts.Workers
	} else if opts.Workers < 0 {
		cfg.Network.Workers = 0
	}
	if opts.Bench > 0 {
		cfg.Bench.Iterations = opts.Bench
	}
	if opts.Verbose {
		cfg.Log.Level = "debug"
	}
	if opts.LogFormat != "" {
		cfg.Log.Format = opts.LogFormat
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, cfg config.Config, opts Options, log *logrus.Logger) error {
	net, err := buildNetwork(cfg, opts.Restore)
	if err != nil {
		return err
	}
	for i, l := range net.Layers() {
		log.WithFields(logrus.Fields{
			"layer": i,
			"in":    l.InFeatures(),
			"out":   l.OutFeatures(),
		}).Debug("layer ready")
	}

	points := randomPoints(cfg.Network.Seed+1, cfg.Demo.Batch, net.InFeatures())
	x, err := cliffnet.LiftDense(cfg.Demo.Batch, net.InFeatures(), points)
	if err != nil {
		return err
	}

	y, err := net.ForwardContext(ctx, x)
	if err != nil {
		return err
	}
	logits := y.Scalars()
	classes, err := net.Classify(x)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"input":   fmt.Sprint([3]int{cfg.Demo.Batch, net.InFeatures(), 3}),
		"lifted":  fmt.Sprint(x.Dims()),
		"output":  fmt.Sprint(y.Dims()),
		"seed":    cfg.Network.Seed,
		"workers": cfg.Network.Workers,
		"classes": classes,
	}).Info("forward pass complete")
	fmt.Printf("logits =\n%v\n", mat.Formatted(logits, mat.Prefix("         "), mat.Squeeze()))

	if cfg.Bench.Iterations > 0 {
		if err := bench(ctx, cfg, net, x, log); err != nil {
			return err
		}
	}

	if opts.Checkpoint != "" {
		if err := saveCheckpoint(net, opts.Checkpoint); err != nil {
			return err
		}
		log.WithField("path", opts.Checkpoint).Info("checkpoint written")
	}
	return nil
}

func buildNetwork(cfg config.Config, restore string) (*cliffnet.Network, error) {
	if restore == "" {
		return cliffnet.NewNetwork(cfg.Network.Sizes,
			cliffnet.WithSource(rand.NewSource(cfg.Network.Seed)),
			cliffnet.WithWorkers(cfg.Network.Workers))
	}
	f, err := os.Open(restore)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return cliffnet.LoadCheckpoint(f, cliffnet.WithWorkers(cfg.Network.Workers))
}

// randomPoints draws batch*numPoints standard-normal 3-D points.
func randomPoints(seed uint64, batch, numPoints int) []float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}
	coords := make([]float64, batch*numPoints*3)
	for i := range coords {
		coords[i] = dist.Rand()
	}
	return coords
}

func bench(ctx context.Context, cfg config.Config, net *cliffnet.Network, x *cliffnet.Tensor, log *logrus.Logger) error {
	bl, err := cliffnet.NewBenchmarkLogger(cfg.Bench.Dir, "geonet")
	if err != nil {
		return err
	}
	res := cliffnet.BenchmarkForward(ctx, "forward", net, x, cfg.Bench.Iterations)
	if err := bl.Log(res); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"status":    res.Status,
		"ns_per_op": res.NsPerOp,
		"gflops":    res.GFLOPS,
		"file":      bl.SessionFile(),
	}).Info("benchmark")
	return nil
}

func saveCheckpoint(net *cliffnet.Network, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := net.SaveCheckpoint(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
