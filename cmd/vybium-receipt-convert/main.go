package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/vybium/vybium-zkvm-receipt/pkg/vybium-zkvm-receipt"
)

// Output format mirrors the JSON shape downstream verifier tooling
// consumes: hex-encoded seal and journal.
type ProofOutput struct {
	Seal    string `json:"seal"`
	Journal string `json:"journal"`
}

func main() {
	inPath := flag.String("in", "-", "serialized receipt file (\"-\" for stdin)")
	flag.Parse()

	data, err := readInput(*inPath)
	if err != nil {
		fatal(fmt.Sprintf("Failed to read receipt: %v", err))
	}

	logStderr(fmt.Sprintf("Read %d receipt bytes", len(data)))

	logStderr("Converting receipt...")
	proof, err := vybiumzkvmreceipt.Convert(data)
	if err != nil {
		fatal(fmt.Sprintf("Conversion failed: %v", err))
	}

	logStderr(fmt.Sprintf("Seal is %d bytes, journal is %d bytes", len(proof.Seal), len(proof.Journal)))

	out, err := json.Marshal(ProofOutput{
		Seal:    hex.EncodeToString(proof.Seal),
		Journal: hex.EncodeToString(proof.Journal),
	})
	if err != nil {
		fatal(fmt.Sprintf("Failed to serialize output: %v", err))
	}

	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func logStderr(msg string) {
	fmt.Fprintln(os.Stderr, "receipt-convert:", msg)
}

func fatal(msg string) {
	logStderr("ERROR: " + msg)
	os.Exit(1)
}
