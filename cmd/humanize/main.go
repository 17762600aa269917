package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/Garik-/humanize/internal/logging"
	"github.com/Garik-/humanize/pkg/midi"
	"go.uber.org/zap"
)

var (
	configFlag   = flag.String("c", "", "The path to a toml config file")
	databaseFlag = flag.String("d", "", "The path to the database json file")
	inFlag       = flag.String("i", "", "Input midi file")
	outFlag      = flag.String("o", "", "Output midi file")
	minFlag      = flag.Int("min", -1, "Min velocity")
	maxFlag      = flag.Int("max", -1, "Max velocity")
	verboseFlag  = flag.Bool("v", false, "Debug logging")
)

func run(log *zap.Logger, cfg config, in, out string) error {
	data, err := importDatabase(cfg.Database)
	if err != nil {
		return err
	}

	src, err := os.Open(in)
	if err != nil {
		return err
	}
	defer src.Close()

	decoder := midi.NewDecoder(bufio.NewReader(src))
	if err := decoder.Decode(); err != nil {
		return fmt.Errorf("decode %s: %w", in, err)
	}
	if decoder.TimeFormat != midi.MetricalTF {
		return fmt.Errorf("%s: %w - time code division", in, midi.ErrFmtNotSupported)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UTC().UnixNano()
	}

	changed := humanize(decoder.Tracks, decoder.TicksPerQuarterNote, data, cfg, rand.New(rand.NewSource(seed)))
	log.Info("humanized", zap.String("in", in), zap.Int("tracks", len(decoder.Tracks)), zap.Int("notes", changed))

	dst, err := os.OpenFile(out, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(dst)
	encoder := midi.NewEncoder(w)
	encoder.RunningStatus = cfg.RunningStatus
	if err := encoder.Encode(decoder.Header, decoder.Tracks); err != nil {
		dst.Close()
		return fmt.Errorf("encode %s: %w", out, err)
	}
	if err := w.Flush(); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s \n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := logging.LoadEnv(logging.EnvFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logging.New(*verboseFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	midi.SetLogger(log)
	humanizeLog = log.Named("humanize")

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatal("config", zap.Error(err))
	}
	if *databaseFlag != "" {
		cfg.Database = *databaseFlag
	}
	if *minFlag >= 0 {
		cfg.MinVelocity = *minFlag
	}
	if *maxFlag >= 0 {
		cfg.MaxVelocity = *maxFlag
	}

	if cfg.Database == "" || *inFlag == "" || *outFlag == "" {
		flag.Usage()
		return
	}
	if err := cfg.validate(); err != nil {
		log.Fatal("config", zap.Error(err))
	}

	if err := run(log, cfg, *inFlag, *outFlag); err != nil {
		log.Fatal("humanize", zap.Error(err))
	}
}
