package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"github.com/goliatone/go-htmlextra/internal/config"
	"github.com/goliatone/go-htmlextra/internal/state"
	"github.com/goliatone/go-htmlextra/pkg/attrs"
	"github.com/goliatone/go-htmlextra/pkg/escape"
	"github.com/goliatone/go-htmlextra/pkg/playground"
)

func operationList() string {
	return strings.Join(playground.Operations, ", ")
}

func runRender(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one template, got %d", cmd.Args().Len())
	}

	data := map[string]any{}
	if fname := cmd.String("data"); len(fname) > 0 {
		raw, err := os.ReadFile(fname)
		if err != nil {
			return fmt.Errorf("unable to read template data: %w", err)
		}
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("unable to decode template data '%s': %w", fname, err)
		}
	}

	engine, err := env.Environment()
	if err != nil {
		return err
	}
	name := cmd.Args().First()
	env.Log.Debug("Rendering template", zap.String("template", name), zap.Int("keys", len(data)))

	_, err = engine.Render(name, data, cmd.Root().Writer)
	return err
}

func runAttrs(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() == 0 {
		return fmt.Errorf("no attribute files given")
	}
	engine, err := env.Environment()
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	for _, fname := range cmd.Args().Slice() {
		line, er := mergeFile(engine.Extension.HTMLAttributes, fname)
		if er != nil {
			env.Log.Warn("Unable to merge attributes", zap.String("file", fname), zap.Error(er))
			err = multierr.Append(err, fmt.Errorf("%s: %w", fname, er))
			continue
		}
		fmt.Fprintln(out, line)
	}
	return err
}

func mergeFile(render func(...any) (escape.Markup, error), fname string) (string, error) {
	raw, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	sets, err := attrs.DecodeYAMLSets(raw)
	if err != nil {
		return "", err
	}
	sources := make([]any, len(sets))
	for i, set := range sets {
		sources[i] = set
	}
	out, err := render(sources...)
	return string(out), err
}

func runMarkup(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	text := strings.Join(cmd.Args().Slice(), " ")
	if cmd.Args().Len() == 0 {
		raw, err := io.ReadAll(cmd.Root().Reader)
		if err != nil {
			return fmt.Errorf("unable to read input: %w", err)
		}
		text = strings.TrimRight(string(raw), "\n")
	}

	length := cmd.Int("length")
	if length <= 0 {
		length = env.Cfg.Markup.ContextLength
	}
	req := playground.Request{
		Operation:   cmd.String("op"),
		Text:        text,
		Term:        cmd.String("term"),
		Sequence:    cmd.String("sequence"),
		Length:      length,
		Tag:         cmd.String("tag"),
		ClassName:   cmd.String("class"),
		NoBreaks:    cmd.Bool("no-breaks"),
		KeepSlashes: cmd.Bool("keep-slashes"),
	}

	engine, err := env.Environment()
	if err != nil {
		return err
	}
	out, err := playground.Execute(engine.Extension, req)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.Root().Writer, out)
	return err
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err  error
		data []byte
		kind string
	)

	out := cmd.Root().Writer
	if len(fname) > 0 {
		f, err := os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer f.Close()
		out = f
	}

	if cmd.Bool("default") {
		kind = "default"
		data = config.Prepare()
	} else {
		kind = "actual"
		if data, err = config.Dump(env.Cfg); err != nil {
			return fmt.Errorf("unable to get configuration: %w", err)
		}
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Info("Outputting configuration", zap.String("state", kind), zap.String("file", fname))

	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
