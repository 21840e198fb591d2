// Package flagx lets several independent flag sets share one command line.
//
// The entrypoint hands the full argument list to cobra for subcommand routing
// while the configuration layer picks out only the flags it owns. Both the
// single-dash and the double-dash spelling of a flag are accepted.
package flagx

import (
	"flag"
	"io"
	"os"
	"strings"
)

// Spellings returns "-name" and "--name" for every given flag name.
func Spellings(names ...string) []string {
	out := make([]string, 0, len(names)*2)
	for _, n := range names {
		n = strings.TrimLeft(n, "-")
		out = append(out, "-"+n, "--"+n)
	}
	return out
}

// FilterArgs keeps only the allowed flags from args together with their
// values. A value is either attached with '=' or is the next argument when
// that argument does not itself start with '-' (a lone "-" counts as a value). Everything else, including
// positional arguments, is dropped. The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]bool, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = true
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if name, _, ok := strings.Cut(arg, "="); ok {
			if allowed[name] {
				filtered = append(filtered, arg)
			}
			continue
		}

		if !allowed[arg] {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && (args[i+1] == "-" || !strings.HasPrefix(args[i+1], "-")) {
			filtered = append(filtered, args[i+1])
			i++
		}
	}

	return filtered
}

// ConfigFilePath returns the JSON config path given with -c or -config in
// args, or "" when neither is present. The last occurrence wins.
func ConfigFilePath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to JSON config file")
	fs.StringVar(&path, "c", "", "path to JSON config file (short)")
	_ = fs.Parse(FilterArgs(args, Spellings("c", "config")))

	return path
}

// JsonConfigFlags is ConfigFilePath applied to the process arguments.
func JsonConfigFlags() string {
	return ConfigFilePath(os.Args[1:])
}
