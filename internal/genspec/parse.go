package genspec

import (
	"regexp"
	"strings"

	"github.com/withlazers/auto-secret-operator/internal/generator"
)

// Secret data key constraints, see k8s.io/apimachinery validation.
var keyPattern = regexp.MustCompile(`^[-._a-zA-Z0-9]+$`)

// Parse reads a generation-spec annotation value. Each non-empty line has the
// form "KEY: GENSPEC" where GENSPEC is a generator kind optionally followed
// by ":param=value,param=value". Lines starting with '#' are comments.
//
// Generator kinds are validated against the given registry so that a typo
// fails at parse time rather than during generation. All problems are
// collected into a single *ParseError.
func Parse(value string, registry *generator.Registry) (Spec, error) {
	var (
		spec Spec
		errs ParseError
		seen = map[string]int{}
	)

	for i, line := range strings.Split(value, "\n") {
		lineNo := i + 1
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, genspec, found := strings.Cut(line, ":")
		if !found {
			errs.add(lineNo, "missing %q separator between key and generator", ":")
			continue
		}

		key = strings.TrimSpace(key)
		switch {
		case key == "":
			errs.add(lineNo, "empty key")
			continue
		case !keyPattern.MatchString(key):
			errs.add(lineNo, "key %q contains characters not allowed in data keys", key)
			continue
		}

		if first, dup := seen[key]; dup {
			errs.add(lineNo, "duplicate key %q, first defined on line %d", key, first)
			continue
		}
		seen[key] = lineNo

		entry, ok := parseGenSpec(lineNo, key, strings.TrimSpace(genspec), registry, &errs)
		if !ok {
			continue
		}
		spec = append(spec, entry)
	}

	if len(errs.Lines) > 0 {
		return nil, &errs
	}
	return spec, nil
}

func parseGenSpec(lineNo int, key, genspec string, registry *generator.Registry, errs *ParseError) (Entry, bool) {
	name, rawParams, hasParams := strings.Cut(genspec, ":")
	name = strings.TrimSpace(name)

	if name == "" {
		errs.add(lineNo, "missing generator for key %q", key)
		return Entry{}, false
	}
	if !registry.Has(name) {
		errs.add(lineNo, "unknown generator %q, expected one of [%s]", name, strings.Join(registry.Kinds(), ", "))
		return Entry{}, false
	}

	entry := Entry{Key: key, Kind: name}
	if !hasParams {
		return entry, true
	}

	entry.Params = map[string]string{}
	ok := true
	for _, param := range strings.Split(rawParams, ",") {
		pname, pvalue, found := strings.Cut(param, "=")
		pname = strings.TrimSpace(pname)
		switch {
		case !found:
			errs.add(lineNo, "parameter %q is not of the form name=value", strings.TrimSpace(param))
			ok = false
		case pname == "":
			errs.add(lineNo, "parameter with empty name")
			ok = false
		default:
			if _, dup := entry.Params[pname]; dup {
				errs.add(lineNo, "duplicate parameter %q", pname)
				ok = false
				continue
			}
			entry.Params[pname] = strings.TrimSpace(pvalue)
		}
	}
	return entry, ok
}
