package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/stubgen/binding"
	"github.com/wippyai/stubgen/config"
	"github.com/wippyai/stubgen/marshal"
	"github.com/wippyai/stubgen/stub"
)

var (
	manifestPath string
	verbose      bool
)

func main() {
	root := &cobra.Command{
		Use:           "stubgen",
		Short:         "Generate marshalling stubs from an interop manifest",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				return nil
			}
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			marshal.SetLogger(logger)
			stub.SetLogger(logger)
			binding.SetLogger(logger)
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", "interop.toml", "path to the interop manifest")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newGenerateCmd(), newListCmd(), newExplainCmd(), newBrowseCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the functions a manifest declares",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := config.Load(manifestPath)
			if err != nil {
				return err
			}
			for _, fn := range m.Functions {
				surface := fn.Surface
				if surface == "" {
					surface = config.SurfaceStub
				}
				direction := fn.Direction
				if direction == "" {
					direction = "caller"
				}
				fmt.Printf("%s  (%s, %s", fn.Name, surface, direction)
				if fn.FrameBounded {
					fmt.Print(", frame-bounded")
				}
				fmt.Println(")")
				for _, p := range fn.Params {
					fmt.Printf("    %s: %s", p.Name, p.Type)
					if p.ByRef {
						fmt.Print(" byref")
					}
					if p.Direction != "" {
						fmt.Printf(" direction=%s", p.Direction)
					}
					if p.ByValue != "" {
						fmt.Printf(" byvalue=%s", p.ByValue)
					}
					fmt.Println()
				}
				if fn.Return != "" {
					fmt.Printf("    -> %s\n", fn.Return)
				}
			}
			return nil
		},
	}
}
