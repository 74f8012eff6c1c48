package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/eof2030/eof1validate/eof"
)

// replayCommand reads newline-delimited hex containers from stdin and
// reports pass/fail per line, grounded on the reference client's
// ValidateStreaming batch-replay helper. Blank lines and lines starting with
// '#' are skipped without output, and --quiet suppresses the lines for
// valid containers.
func replayCommand() *cli.Command {
	return &cli.Command{
		Name:  "replay",
		Usage: "validate one hex-encoded container per line of stdin",
		Flags: []cli.Flag{
			revisionFlag(),
			depthCapFlag(),
			&cli.BoolFlag{Name: "stats", Usage: "print container statistics for each valid line"},
			&cli.BoolFlag{Name: "quiet", Usage: "print only failures"},
		},
		Action: func(c *cli.Context) error {
			rev, ok := eof.ParseRevision(c.String("revision"))
			if !ok {
				return cli.Exit(fmt.Sprintf("unknown revision %q", c.String("revision")), 2)
			}
			depthCap := c.Int("depth-cap")
			withStats := c.Bool("stats")
			quiet := c.Bool("quiet")

			scanner := bufio.NewScanner(os.Stdin)
			scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

			line := 0
			failures := 0
			for scanner.Scan() {
				line++
				text := strings.TrimSpace(scanner.Text())
				if text == "" || strings.HasPrefix(text, "#") {
					continue
				}
				container, err := decodeHexArg(text)
				if err != nil {
					failures++
					fmt.Printf("%d\tmalformed\thex decode: %v\n", line, err)
					continue
				}

				header, _, verr := eof.ValidateWithDepthCap(rev, container, depthCap)
				if verr != nil {
					failures++
					fmt.Printf("%d\tinvalid\t%s\n", line, verr)
					continue
				}
				if !quiet {
					fmt.Printf("%d\tvalid\n", line)
				}
				if withStats {
					stats, serr := eof.ComputeStats(header, container)
					if serr != nil {
						fmt.Printf("%d\tstats-error\t%v\n", line, serr)
						continue
					}
					fmt.Printf("%d\tstats\tcode_sections=%d data_bytes=%d max_stack=%d recursion=%v\n",
						line, stats.NumCodeSections, stats.TotalDataBytes, stats.MaxStackDepth, stats.HasRecursion)
				}
			}
			if err := scanner.Err(); err != nil {
				return cli.Exit(fmt.Sprintf("read stdin: %v", err), 2)
			}
			if failures > 0 {
				return cli.Exit(fmt.Sprintf("%d of %d lines failed", failures, line), 1)
			}
			return nil
		},
	}
}
