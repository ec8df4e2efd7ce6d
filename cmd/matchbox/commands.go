package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/matchbox-ml/matchbox/internal/graphio"
	"github.com/matchbox-ml/matchbox/internal/tensor"
)

func demoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the computation tree of a sample graph",
		Long: `Build mean(sigmoid((a + b) @ w), axis 1) from a fixed 2x2 tensor a,
a standard normal 2x2 tensor b and a uniform 2x3 tensor w, then print the
recorded computation tree.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			grad, _ := cmd.Flags().GetBool("grad")

			root, err := buildDemoGraph(a.ctx, grad)
			if err != nil {
				return err
			}
			a.traceGraph("demo graph built", root)

			return root.PrintTree(cmd.OutOrStdout())
		},
	}

	cmd.Flags().Bool("grad", false, "request gradients on the sample's leaves")

	return cmd
}

func graphCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the sample graph as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("values") {
				a.cfg.Graph.Values, _ = cmd.Flags().GetBool("values")
			}
			if cmd.Flags().Changed("leaves-only") {
				a.cfg.Graph.LeavesOnly, _ = cmd.Flags().GetBool("leaves-only")
			}
			grad, _ := cmd.Flags().GetBool("grad")

			root, err := buildDemoGraph(a.ctx, grad)
			if err != nil {
				return err
			}

			var opts []graphio.BuildOption
			if a.cfg.Graph.Values {
				opts = append(opts, graphio.WithValues(a.cfg.Graph.LeavesOnly))
			}
			doc := graphio.Build(root, opts...)

			if path, _ := cmd.Flags().GetString("output"); path != "" {
				err = writeDocument(path, doc)
			} else {
				err = graphio.Encode(cmd.OutOrStdout(), doc)
			}
			if err != nil {
				return err
			}
			a.log.Debug("graph exported", "nodes", len(doc.Nodes), "values", a.cfg.Graph.Values)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	cmd.Flags().Bool("values", false, "include tensor payloads")
	cmd.Flags().Bool("leaves-only", true, "with --values, only include leaf payloads")
	cmd.Flags().Bool("grad", false, "request gradients on the sample's leaves")

	return cmd
}

func replayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "replay FILE",
		Short: "Rebuild a graph from a YAML export and print its tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "open graph")
			}
			defer f.Close()

			doc, err := graphio.Decode(f)
			if err != nil {
				return err
			}
			root, err := graphio.Replay(a.ctx, doc)
			if err != nil {
				return err
			}
			a.traceGraph("graph replayed", root, "file", args[0])

			return root.PrintTree(cmd.OutOrStdout())
		},
	}
}

// writeDocument encodes doc into a new file at path.
func writeDocument(path string, doc *graphio.Document) (err error) {
	f, err := os.Create(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return errors.Wrap(err, "create output file")
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close output file")
		}
	}()
	return graphio.Encode(f, doc)
}

// traceGraph logs a summary of root's graph, and every node when running in
// development mode.
func (a *app) traceGraph(msg string, root *tensor.Tensor, args ...any) {
	order := tensor.TopologicalOrder(root)
	a.log.Debug(msg, append(args, "root", root.ID(), "nodes", len(order))...)
	if !a.cfg.IsDevelopment() {
		return
	}
	for _, node := range order {
		op := "leaf"
		if node.Op() != nil {
			op = node.Op().String()
		}
		a.log.Debug("node", "id", node.ID(), "shape", node.Shape(), "grad", node.RequiresGrad(), "op", op)
	}
}

// buildDemoGraph builds mean(sigmoid((a + b) @ w), axis 1).
func buildDemoGraph(ctx *tensor.Context, grad bool) (*tensor.Tensor, error) {
	a, err := ctx.FromSlice([]float64{1, 2, -2, 1}, tensor.Shape{2, 2}, grad)
	if err != nil {
		return nil, err
	}
	b, err := ctx.Randn(tensor.Shape{2, 2}, false)
	if err != nil {
		return nil, err
	}
	w, err := ctx.RandUniform(-1, 1, tensor.Shape{2, 3}, grad)
	if err != nil {
		return nil, err
	}

	c, err := a.Add(b)
	if err != nil {
		return nil, err
	}
	h, err := c.MatMul(w)
	if err != nil {
		return nil, err
	}
	return h.Sigmoid().Mean(1)
}
