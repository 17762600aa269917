package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/Garik-/humanize/internal/logging"
	"github.com/Garik-/humanize/pkg/midi"
	"go.uber.org/zap"
)

var verboseFlag = flag.Bool("v", false, "Debug logging")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-v] file.mid\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

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

	name := flag.Arg(0)
	f, err := os.Open(name)
	if err != nil {
		log.Fatal("open", zap.Error(err))
	}
	defer f.Close()

	decoder := midi.NewDecoder(bufio.NewReader(f))
	if err := decoder.Decode(); err != nil {
		log.Fatal("decode", zap.String("file", name), zap.Error(err))
	}

	w := bufio.NewWriter(os.Stdout)
	report(w, decoder)
	w.Flush()
}
