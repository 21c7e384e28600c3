package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/wippyai/stubgen/binding"
	"github.com/wippyai/stubgen/config"
	"github.com/wippyai/stubgen/emit"
	"github.com/wippyai/stubgen/stub"
)

func newGenerateCmd() *cobra.Command {
	var (
		outDir   string
		cacheDir string
		jobs     int
		watch    bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Assemble and render every stub the manifest declares",
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				return watchLoop(cmd.Context(), outDir, cacheDir, jobs)
			}
			return generateOnce(cmd.Context(), outDir, cacheDir, jobs)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "write listings to this directory instead of stdout")
	cmd.Flags().StringVar(&cacheDir, "cache", "", "reuse assembled programs from this cache directory")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "parallel generation workers (0 = GOMAXPROCS)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "regenerate whenever the manifest changes")

	return cmd
}

func generateOnce(ctx context.Context, outDir, cacheDir string, jobs int) error {
	m, err := config.Load(manifestPath)
	if err != nil {
		return err
	}

	programs, err := buildPrograms(ctx, m, cacheDir, jobs)
	if err != nil {
		return err
	}

	for _, p := range programs {
		if err := write(outDir, p.Name, emit.Render(p)); err != nil {
			return err
		}
	}

	result, err := renderBindings(m)
	if err != nil {
		return err
	}
	if result != "" {
		if err := write(outDir, "bindings", result); err != nil {
			return err
		}
	}
	return nil
}

// buildPrograms assembles the stub-surface functions, going through the
// program cache when one is configured and the parallel driver when not.
func buildPrograms(ctx context.Context, m *config.Manifest, cacheDir string, jobs int) ([]*stub.Program, error) {
	funcs, err := m.StubFuncs()
	if err != nil {
		return nil, err
	}

	if cacheDir == "" {
		return stub.NewDriver(jobs).GenerateAll(ctx, funcs)
	}

	cache, err := stub.NewCache(cacheDir)
	if err != nil {
		return nil, err
	}

	builder := stub.NewBuilder()
	programs := make([]*stub.Program, 0, len(funcs))
	for _, fn := range funcs {
		key := cache.Key(fn)
		if p, found, err := cache.Load(key); err != nil {
			return nil, err
		} else if found {
			programs = append(programs, p)
			continue
		}

		p, err := builder.Build(fn)
		if err != nil {
			return nil, err
		}
		if err := cache.Store(key, p); err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	return programs, nil
}

func renderBindings(m *config.Manifest) (string, error) {
	result, err := m.BindingShapes()
	if err != nil {
		return "", err
	}
	if len(result) == 0 {
		return "", nil
	}

	funcs := make([]config.Function, 0, len(result))
	for _, fn := range m.Functions {
		if fn.Surface == config.SurfaceBinding {
			funcs = append(funcs, fn)
		}
	}

	var b strings.Builder
	resolver := binding.NewResolver()
	for _, fn := range funcs {
		b.WriteString("binding ")
		b.WriteString(fn.Name)
		b.WriteByte('\n')
		names := make([]string, 0, len(fn.Params)+1)
		for _, p := range fn.Params {
			names = append(names, p.Name)
		}
		if fn.Return != "" {
			names = append(names, "return")
		}
		for i, s := range result[fn.Name] {
			expr, err := resolver.Bind(s)
			if err != nil {
				return "", err
			}
			b.WriteString("  ")
			b.WriteString(names[i])
			b.WriteString(" = ")
			b.WriteString(expr.String())
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}

func write(outDir, name, body string) error {
	if outDir == "" {
		fmt.Println(body)
		return nil
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outDir, name+".stub.txt"), []byte(body), 0o644)
}

// watchLoop regenerates on every manifest write until the context is
// cancelled. A broken intermediate save keeps the previous output; the
// error is reported and the watch continues.
func watchLoop(ctx context.Context, outDir, cacheDir string, jobs int) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(manifestPath); err != nil {
		return err
	}

	if err := generateOnce(ctx, outDir, cacheDir, jobs); err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
	}
	fmt.Fprintf(os.Stderr, "watching %s\n", manifestPath)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := generateOnce(ctx, outDir, cacheDir, jobs); err != nil {
				fmt.Fprintf(os.Stderr, "generate: %v\n", err)
				continue
			}
			fmt.Fprintf(os.Stderr, "regenerated after %s\n", event.Op)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
		}
	}
}
