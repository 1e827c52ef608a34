package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"graybook/internal/capture"
)

func main() {
	url := flag.String("url", "http://localhost:8080/", "report page URL to capture")
	out := flag.String("out", "parity_report.png", "output path for the screenshot")
	timeout := flag.Duration("timeout", 30*time.Second, "overall capture timeout")
	headless := flag.Bool("headless", true, "run the browser headless")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	opts := capture.DefaultOptions(*url, *out)
	opts.Timeout = *timeout
	opts.Headless = *headless

	if err := capture.CapturePage(context.Background(), logger, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: capture failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved screenshot to %s\n", *out)
}
