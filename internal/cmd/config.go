package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/nxpad/nxpad/internal/configpaths"
	"github.com/nxpad/nxpad/internal/log"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration template"`
}

// ConfigInit scaffolds a configuration file for a specific command.
type ConfigInit struct {
	Command string `arg:"" name:"command" help:"Command to generate config for" enum:"replay"`
	Format  string `help:"Output format" enum:"json,yaml,toml" default:"json"`
	Output  string `help:"Destination file path (defaults to current directory)"`
	Force   bool   `help:"Overwrite if the file already exists"`
}

// Run generates a configuration template by reflecting over the command
// structs and their kong tags.
func (c *ConfigInit) Run() error {
	dest, err := c.Write()
	if err != nil {
		return err
	}
	fmt.Println(dest)
	return nil
}

// Write renders the template and returns the path it was written to.
func (c *ConfigInit) Write() (string, error) {
	format := normalizeFormat(c.Format)
	if format == "" {
		return "", fmt.Errorf("unsupported format: %s", c.Format)
	}

	root, err := templateFor(c.Command)
	if err != nil {
		return "", err
	}

	dest := c.Output
	if dest == "" {
		dest = c.Command + "." + configpaths.Ext(format)
	}

	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return "", errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return "", err
	}

	data, err := marshalTemplate(root, format)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", err
	}
	return dest, nil
}

func templateFor(command string) (map[string]any, error) {
	var root map[string]any
	switch command {
	case "replay":
		root = buildMapFromStruct(reflect.TypeOf(Replay{}))
	default:
		return nil, fmt.Errorf("unknown command %q; expected 'replay'", command)
	}
	root["log"] = buildMapFromStruct(reflect.TypeOf(log.Config{}))
	return root, nil
}

func marshalTemplate(root map[string]any, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(root, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml":
		return yaml.Marshal(root)
	case "toml":
		return toml.Marshal(root)
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}

func normalizeFormat(f string) string {
	switch strings.ToLower(f) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return ""
	}
}

// snakeCase turns a Go field name into the key kong's resolvers look up
// for the matching flag: PollInterval becomes poll_interval.
func snakeCase(s string) string {
	r := []rune(s)
	var b strings.Builder
	for i, c := range r {
		if unicode.IsUpper(c) {
			prevLower := i > 0 && !unicode.IsUpper(r[i-1])
			nextLower := i+1 < len(r) && unicode.IsLower(r[i+1])
			if i > 0 && (prevLower || (nextLower && unicode.IsUpper(r[i-1]))) {
				b.WriteByte('_')
			}
			c = unicode.ToLower(c)
		}
		b.WriteRune(c)
	}
	return b.String()
}

func fieldKey(f reflect.StructField) string {
	if name := f.Tag.Get("name"); name != "" {
		return strings.ReplaceAll(name, "-", "_")
	}
	return snakeCase(f.Name)
}

func buildMapFromStruct(t reflect.Type) map[string]any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Tag.Get("kong") == "-" {
			continue
		}
		// positional arguments and subcommands cannot come from a file
		if _, ok := f.Tag.Lookup("arg"); ok {
			continue
		}
		if _, ok := f.Tag.Lookup("cmd"); ok {
			continue
		}

		if _, ok := f.Tag.Lookup("embed"); ok {
			prefix := f.Tag.Get("prefix")
			name := strings.ReplaceAll(strings.TrimSuffix(prefix, "."), "-", "_")
			sub := buildMapFromStruct(f.Type)
			if name != "" {
				out[name] = sub
			} else {
				for k, v := range sub {
					out[k] = v
				}
			}
			continue
		}

		val := defaultValueForField(f.Type, f.Tag.Get("default"))
		if val != nil {
			out[fieldKey(f)] = val
		}
	}
	return out
}

func defaultValueForField(t reflect.Type, def string) any {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() == "time" && t.Name() == "Duration" {
		if def != "" {
			return def
		}
		return "0s"
	}
	switch t.Kind() {
	case reflect.String:
		return def // may be empty
	case reflect.Bool:
		if def == "" {
			return false
		}
		b, err := strconv.ParseBool(def)
		if err != nil {
			return false
		}
		return b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if def == "" {
			return 0
		}
		n, err := strconv.ParseInt(def, 10, 64)
		if err != nil {
			return 0
		}
		return n
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if def == "" {
			return 0
		}
		n, err := strconv.ParseUint(def, 10, 64)
		if err != nil {
			return 0
		}
		return n
	case reflect.Float32, reflect.Float64:
		if def == "" {
			return 0
		}
		f, err := strconv.ParseFloat(def, 64)
		if err != nil {
			return 0
		}
		return f
	case reflect.Slice:
		if t.Elem().Kind() != reflect.String {
			return nil
		}
		items := []string{}
		for _, s := range strings.Split(def, ",") {
			if s = strings.TrimSpace(s); s != "" {
				items = append(items, s)
			}
		}
		return items
	case reflect.Struct:
		return buildMapFromStruct(t)
	default:
		return nil
	}
}
