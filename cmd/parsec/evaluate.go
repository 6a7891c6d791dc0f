package main

import (
	"context"
	stdjson "encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"time"

	"github.com/alecthomas/repr"
	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/alecthomas/parsec"
	"github.com/alecthomas/parsec/grammars/json"
)

type globals struct {
	Verbose int           `short:"v" type:"counter" help:"Increase log verbosity."`
	Format  string        `short:"f" enum:"repr,json,yaml" default:"repr" help:"Output format (${enum})."`
	Trace   bool          `help:"Trace named parsers to stderr."`
	Timeout time.Duration `default:"0s" help:"Abandon an evaluation that runs longer than this (0 disables)."`
	Watch   bool          `short:"w" help:"Re-evaluate input files whenever they change."`

	stdin  io.Reader `kong:"-"`
	stdout io.Writer `kong:"-"`
	stderr io.Writer `kong:"-"`
}

// An evaluator parses one document.
type evaluator func(text string, options ...parsec.Option) (interface{}, error)

// Printed as-is in every output format.
type rawOutput string

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func (g *globals) in() io.Reader {
	if g.stdin == nil {
		return os.Stdin
	}
	return g.stdin
}

func (g *globals) out() io.Writer {
	if g.stdout == nil {
		return os.Stdout
	}
	return g.stdout
}

func (g *globals) errOut() io.Writer {
	if g.stderr == nil {
		return os.Stderr
	}
	return g.stderr
}

// Evaluate each file, or stdin if there are none, and print the results.
func (g *globals) run(files []string, eval evaluator) error {
	ctx, cancel := signalContext()
	defer cancel()
	if len(files) == 0 {
		data, err := io.ReadAll(g.in())
		if err != nil {
			return err
		}
		return g.evaluateAndPrint(ctx, "<stdin>", string(data), eval)
	}
	for _, file := range files {
		if err := g.evaluateFile(ctx, file, eval); err != nil {
			if !g.Watch {
				return err
			}
			log.Errorf("%s", err)
		}
	}
	if g.Watch {
		return g.watch(ctx, files, eval)
	}
	return nil
}

func (g *globals) evaluateFile(ctx context.Context, file string, eval evaluator) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	return g.evaluateAndPrint(ctx, file, string(data), eval)
}

func (g *globals) evaluateAndPrint(ctx context.Context, name, text string, eval evaluator) error {
	start := time.Now()
	value, err := g.evaluate(ctx, name, text, eval)
	log.Debugf("evaluated %s (%d bytes) in %s", name, len(text), time.Since(start))
	if err != nil {
		return err
	}
	return g.print(value)
}

// Evaluate text, abandoning the evaluation if it exceeds the configured timeout.
//
// An abandoned evaluation keeps running in the background until it completes, as parsers do not
// observe cancellation.
func (g *globals) evaluate(ctx context.Context, name, text string, eval evaluator) (interface{}, error) {
	options := []parsec.Option{parsec.Filename(name)}
	if g.Trace {
		options = append(options, parsec.Trace(g.errOut()))
	}
	log.Infof("evaluating %s", name)
	if g.Timeout <= 0 {
		return eval(text, options...)
	}
	ctx, cancel := context.WithTimeout(ctx, g.Timeout)
	defer cancel()
	type result struct {
		value interface{}
		err   error
	}
	done := make(chan result, 1)
	go func() {
		value, err := eval(text, options...)
		done <- result{value, err}
	}()
	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: evaluation abandoned after %s: %w", name, g.Timeout, ctx.Err())
	}
}

func (g *globals) print(value interface{}) error {
	w := g.out()
	if raw, ok := value.(rawOutput); ok {
		_, err := io.WriteString(w, string(raw))
		return err
	}
	switch g.Format {
	case "json":
		enc := stdjson.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)

	case "yaml":
		if v, ok := value.(*json.Value); ok {
			value = jsonToYAML(v)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()

	default:
		repr.New(w, repr.Indent("  ")).Println(value)
		return nil
	}
}

// Convert a JSON value to a YAML node, preserving the order of object members.
func jsonToYAML(v *json.Value) *yaml.Node {
	scalar := func(tag, value string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
	}
	switch v.Kind {
	case json.Bool:
		return scalar("!!bool", strconv.FormatBool(v.Bool))
	case json.Int:
		return scalar("!!int", strconv.FormatInt(v.Int, 10))
	case json.Float:
		return scalar("!!float", strconv.FormatFloat(v.Float, 'g', -1, 64))
	case json.String:
		return scalar("!!str", v.Str)
	case json.Array:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range v.Array {
			node.Content = append(node.Content, jsonToYAML(e))
		}
		return node
	case json.Object:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, m := range v.Members {
			node.Content = append(node.Content, scalar("!!str", m.Key), jsonToYAML(m.Value))
		}
		return node
	}
	return scalar("!!null", "null")
}

// Re-evaluate files whenever they are written, until interrupted.
func (g *globals) watch(ctx context.Context, files []string, eval evaluator) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	watched := map[string]bool{}
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return err
		}
		watched[abs] = true
		// Watch the directory, as editors commonly replace files instead of writing to them.
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("watch %s: %w", file, err)
		}
	}
	log.Noticef("watching %d file(s)", len(watched))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[event.Name] || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			if err := g.evaluateFile(ctx, event.Name, eval); err != nil {
				log.Errorf("%s", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warningf("watch: %s", err)
		}
	}
}
