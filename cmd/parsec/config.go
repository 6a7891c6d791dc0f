package main

import (
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/kong"
)

// TOMLConfig is a kong.ConfigurationLoader for TOML files.
//
// Keys are flag names. A table named after a command overrides the top level for that command:
//
//	format = "yaml"
//
//	[calc]
//	format = "json"
//	timeout = "2s"
func TOMLConfig(r io.Reader) (kong.Resolver, error) {
	values := map[string]interface{}{}
	if _, err := toml.NewDecoder(r).Decode(&values); err != nil {
		return nil, err
	}
	var f kong.ResolverFunc = func(kctx *kong.Context, parent *kong.Path, flag *kong.Flag) (interface{}, error) {
		if cmd := kctx.Selected(); cmd != nil {
			if table, ok := values[cmd.Name].(map[string]interface{}); ok {
				if value, ok := lookup(table, flag.Name); ok {
					return value, nil
				}
			}
		}
		value, _ := lookup(values, flag.Name)
		return value, nil
	}
	return f, nil
}

func lookup(values map[string]interface{}, name string) (interface{}, bool) {
	for _, key := range []string{name, strings.ReplaceAll(name, "-", "_")} {
		value, ok := values[key]
		if !ok {
			continue
		}
		if _, table := value.(map[string]interface{}); table {
			continue
		}
		return value, true
	}
	return nil, false
}
