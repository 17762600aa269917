package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/Garik-/humanize/internal/logging"
	"go.uber.org/zap"
)

const (
	maxGoroutines = 10
)

var (
	listFlag    = flag.String("l", "", "The path to the list of midi files,\nfind . -type f -name \"*.mid\" > midi_list.txt")
	maxFlag     = flag.Int("p", maxGoroutines, "Number of files processed in parallel, must be > 0")
	outFlag     = flag.String("o", "database.json", "Output database json file")
	skipFlag    = flag.Bool("k", false, "Keep going when a file fails to decode")
	verboseFlag = flag.Bool("v", false, "Debug logging")
)

func readList(file *os.File) <-chan string {
	out := make(chan string)

	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanLines)

	go func() {
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				out <- line
			}
		}
		close(out)
	}()

	return out
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s \n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *listFlag == "" || *maxFlag <= 0 {
		flag.Usage()
		return
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
	enableDebugLogging(log)

	f, err := os.Open(*listFlag)
	if err != nil {
		log.Fatal("open list", zap.Error(err))
	}
	defer f.Close()

	paths := readList(f)
	m, err := newVelocityMap(context.Background(), paths, *maxFlag, *skipFlag)
	if err != nil {
		log.Fatal("scan", zap.Error(err))
	}

	b, err := json.MarshalIndent(m.database(), "", "  ")
	if err != nil {
		log.Fatal("marshal", zap.Error(err))
	}

	if err := ioutil.WriteFile(*outFlag, b, 0644); err != nil {
		log.Fatal("write database", zap.Error(err))
	}

	log.Info("database written", zap.String("path", *outFlag), zap.Int("notes", len(m)))
}
