package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/eof2030/eof1validate/config"
	"github.com/eof2030/eof1validate/eof"
)

func decodeHexArg(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	return hex.DecodeString(s)
}

func revisionFlag() *cli.StringFlag {
	return &cli.StringFlag{Name: "revision", Value: "cancun", Usage: "EVM revision to validate against"}
}

// depthCapFlag exposes config.Config.RecursionDepthCap as a CLI flag so
// the sub-container recursion cap is configurable outside of a YAML file
// too, defaulting to the same value config.Default() uses.
func depthCapFlag() *cli.IntFlag {
	return &cli.IntFlag{Name: "depth-cap", Value: config.Default().RecursionDepthCap, Usage: "maximum sub-container recursion depth"}
}

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "run the full validation pipeline over a container",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "hex", Required: true, Usage: "hex-encoded container bytes"},
			revisionFlag(),
			depthCapFlag(),
		},
		Action: func(c *cli.Context) error {
			rev, ok := eof.ParseRevision(c.String("revision"))
			if !ok {
				return cli.Exit(fmt.Sprintf("unknown revision %q", c.String("revision")), 2)
			}
			container, err := decodeHexArg(c.String("hex"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("invalid hex: %v", err), 2)
			}

			verr, _ := eof.ValidateEOFWithDepthCap(rev, container, c.Int("depth-cap"))
			if verr != eof.Success {
				fmt.Printf("invalid: %s\n", eof.ErrorMessage(verr))
				return cli.Exit("", 1)
			}
			fmt.Println("valid")
			return nil
		},
	}
}

func readHeaderCommand() *cli.Command {
	return &cli.Command{
		Name:  "read-header",
		Usage: "validate then print the derived header offsets",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "hex", Required: true, Usage: "hex-encoded container bytes"},
			revisionFlag(),
			depthCapFlag(),
		},
		Action: func(c *cli.Context) error {
			rev, ok := eof.ParseRevision(c.String("revision"))
			if !ok {
				return cli.Exit(fmt.Sprintf("unknown revision %q", c.String("revision")), 2)
			}
			container, err := decodeHexArg(c.String("hex"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("invalid hex: %v", err), 2)
			}

			header, _, herr := eof.ValidateWithDepthCap(rev, container, c.Int("depth-cap"))
			if herr != nil {
				fmt.Printf("invalid: %s\n", herr)
				return cli.Exit("", 1)
			}
			fmt.Printf("code_sizes=%v code_offsets=%v data_size=%d data_offset=%d container_sizes=%v\n",
				header.CodeSizes, header.CodeOffsets, header.DataSize, header.DataOffset, header.ContainerSizes)
			return nil
		},
	}
}

func appendDataCommand() *cli.Command {
	return &cli.Command{
		Name:  "append-data",
		Usage: "append auxiliary bytes to a valid container's data section",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "hex", Required: true, Usage: "hex-encoded container bytes"},
			&cli.StringFlag{Name: "data", Required: true, Usage: "hex-encoded bytes to append"},
		},
		Action: func(c *cli.Context) error {
			container, err := decodeHexArg(c.String("hex"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("invalid hex: %v", err), 2)
			}
			aux, err := decodeHexArg(c.String("data"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("invalid data hex: %v", err), 2)
			}

			out, ok := eof.AppendData(container, aux)
			if !ok {
				return cli.Exit("append-data: new data section would exceed 16 bits", 1)
			}
			fmt.Println(hex.EncodeToString(out))
			return nil
		},
	}
}
