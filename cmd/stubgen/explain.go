package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/stubgen/config"
	"github.com/wippyai/stubgen/marshal"
	"github.com/wippyai/stubgen/stub"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold)
	valueColor   = color.New(color.FgWhite, color.Bold)
	detailColor  = color.New(color.FgHiBlack)
	pinnedColor  = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow)
	failureColor = color.New(color.FgRed, color.Bold)
)

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain",
		Short: "Show the marshalling decisions made for every value",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := config.Load(manifestPath)
			if err != nil {
				return err
			}
			funcs, err := m.StubFuncs()
			if err != nil {
				return err
			}

			registry := marshal.NewRegistry()
			for _, fn := range funcs {
				explainFunc(registry, fn)
			}
			return nil
		},
	}
}

func explainFunc(registry *marshal.Registry, fn stub.Func) {
	headerColor.Printf("%s", fn.Name)
	detailColor.Printf("  stub=%s frame-bounded=%t\n", fn.Direction, fn.FrameBounded)

	base := marshal.StubCodeContext{
		Direction:                     fn.Direction,
		SingleFrameSpansNativeContext: fn.FrameBounded,
	}

	for i, p := range fn.Params {
		info := marshal.TypePositionInfo{
			ManagedType: p.Type,
			Identifier:  p.Name,
			Position:    i,
			ByRef:       p.ByRef,
			Declared:    p.Declared,
			ByValue:     p.ByValue,
		}
		explainValue(registry, base, info)
	}
	if fn.Return != nil {
		info := marshal.TypePositionInfo{
			ManagedType: *fn.Return,
			Identifier:  "ret",
			Position:    marshal.ReturnPosition,
		}
		explainValue(registry, base, info)
	}
	fmt.Println()
}

func explainValue(registry *marshal.Registry, base marshal.StubCodeContext, info marshal.TypePositionInfo) {
	label := info.Identifier
	if info.Position == marshal.ReturnPosition {
		label = "return"
	}
	valueColor.Printf("  %s", label)
	detailColor.Printf("  %s", info.ManagedType)
	if info.ByRef {
		detailColor.Print("  byref")
	}
	fmt.Println()

	gen, err := registry.Resolve(info.ManagedType)
	if err != nil {
		failureColor.Printf("    %v\n", err)
		return
	}

	ctx := base.ForPosition(info)
	desc, err := gen.NativeType(info)
	if err != nil {
		failureColor.Printf("    %v\n", err)
		return
	}

	boundary := gen.BoundaryBehavior(info, ctx)
	uses := gen.UsesNativeIdentifier(info, ctx)

	fmt.Printf("    direction:    %s\n", marshal.ResolveDirection(info, ctx))
	fmt.Printf("    native type:  %s (core %s, size %d)\n", desc.Name, api.ValueTypeName(desc.Core), desc.Size)
	fmt.Printf("    signature:    %s\n", gen.SignatureBehavior(info))
	fmt.Printf("    boundary:     %s\n", boundary)
	fmt.Printf("    native local: %t\n", uses)

	if info.ByRef && boundary == marshal.NativeIdentifier && !uses {
		pinnedColor.Println("    pinning fast path: zero-copy pinned address")
	}

	if info.ByValue != marshal.ByValueDefault {
		if sup := gen.SupportsByValueMarshalKind(info.ByValue, info); !sup.Supported {
			warningColor.Printf("    diagnostic: %v\n", sup.Diagnostic)
		} else {
			fmt.Printf("    byvalue:      %s\n", info.ByValue)
		}
	}
}
