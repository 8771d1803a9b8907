// Package cli implements the shipday command tree.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/spf13/cobra"
	"github.com/tournevent/shipday/pkg/shipday"
	"github.com/tournevent/shipday/pkg/shipday/errs"
	"github.com/tournevent/shipday/pkg/shipday/order"
)

// Connector builds the Shipday client on first use, so that --help and
// argument errors never need credentials.
type Connector func(ctx context.Context) (*shipday.Client, error)

type app struct {
	connect Connector

	once   sync.Once
	client *shipday.Client
	err    error
}

func (a *app) shipday(cmd *cobra.Command) (*shipday.Client, error) {
	a.once.Do(func() {
		a.client, a.err = a.connect(cmd.Context())
	})
	return a.client, a.err
}

// NewRootCommand returns the shipday command tree.
func NewRootCommand(version string, connect Connector) *cobra.Command {
	a := &app{connect: connect}

	root := &cobra.Command{
		Use:           "shipday",
		Short:         "Shipday delivery dispatch client",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newOrdersCommand(a),
		newCarriersCommand(a),
		newOnDemandCommand(a),
		newSummaryCommand(a),
	)
	return root
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseID parses a positional identifier.
func parseID(field, raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.TypeMismatch(field, fmt.Sprintf("%s must be an integer", field)).WithCause(err)
	}
	return id, nil
}

// readFields decodes a JSON object from path, or from stdin when path is "-".
func readFields(cmd *cobra.Command, path string) (order.Fields, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	var fields order.Fields
	if err := json.NewDecoder(r).Decode(&fields); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return fields, nil
}
