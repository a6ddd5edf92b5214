package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	md5 "github.com/7Duser/drbMD5"
)

func newLogger(w io.Writer, asJSON bool) *slog.Logger {
	if asJSON {
		return slog.New(slog.NewJSONHandler(w, nil))
	}
	return slog.New(slog.NewTextHandler(w, nil))
}

// run prints the sample digests followed by one digest per argument.
func run(w io.Writer, logger *slog.Logger, args []string) error {
	input := "Hello, World!"
	fmt.Fprintf(w, "MD5 hash of '%s':\n%s\n\n", input, md5.Hash(input))

	binary := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	sum := md5.ComputeHash(binary)
	s := hex.EncodeToString(sum[:])
	fmt.Fprintf(w, "MD5 hash of binary data:\n%s\n", strings.ToUpper(s))
	fmt.Fprintf(w, "As lowercase hex: %s\n\n", s)

	fmt.Fprintf(w, "MD5 hash of empty string:\n%s\n", md5.Hash(""))

	for _, arg := range args {
		h, err := md5.HashToHex(arg)
		if err != nil {
			logger.Error("hash", "error", err)
			return err
		}
		logger.Info("hash", "input", arg, "bytes", len(arg), "md5", h)
	}
	return nil
}

func main() {
	asJSON := flag.Bool("json", false, "log argument digests as JSON")
	flag.Parse()

	logger := newLogger(os.Stderr, *asJSON)
	slog.SetDefault(logger)

	if err := run(os.Stdout, logger, flag.Args()); err != nil {
		os.Exit(1)
	}
}
