// Command miner extracts vocabulary from a Japanese text file, annotates
// it with frequency statistics, and reports which terms are worth mining
// against the user's Anki collection.
//
// Flags:
//
//	--input   path to the text file to mine (required)
//	--title   source title used in the report and export
//	--export  directory to write the mined terms as a Yomitan frequency
//	          dictionary (optional)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/myjapanese-miner/internal/app"
)

func main() {
	inputFlag := flag.String("input", "", "path to the text file to mine")
	titleFlag := flag.String("title", "", "source title for the report")
	exportFlag := flag.String("export", "", "directory for the Yomitan export")
	flag.Parse()

	if *inputFlag == "" {
		fmt.Fprintln(os.Stderr, "miner: --input is required")
		flag.Usage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, app.Options{
		InputPath: *inputFlag,
		Title:     *titleFlag,
		ExportDir: *exportFlag,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "miner: %v\n", err)
		os.Exit(1)
	}
}
