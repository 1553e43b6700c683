package rules

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Factory builds a rule from expression arguments.
type Factory func(args []string) (*Rule, error)

func needArgs(name string, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrInvalidRuleArgs, name, n, len(args))
	}
	return nil
}

func intArg(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not an integer", ErrInvalidRuleArgs, name, arg)
	}
	return n, nil
}

func floatArg(name, arg string) (float64, error) {
	f, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not a number", ErrInvalidRuleArgs, name, arg)
	}
	return f, nil
}

// builtinFactories maps expression rule names to their factories.
// Remote rules are not expressible here; they need a check function
// and are attached programmatically.
var builtinFactories = map[string]Factory{
	"required": func(args []string) (*Rule, error) {
		if err := needArgs("required", args, 0); err != nil {
			return nil, err
		}
		return Required(), nil
	},
	"email": func(args []string) (*Rule, error) {
		if err := needArgs("email", args, 0); err != nil {
			return nil, err
		}
		return Email(), nil
	},
	"numeric": func(args []string) (*Rule, error) {
		if err := needArgs("numeric", args, 0); err != nil {
			return nil, err
		}
		return Numeric(), nil
	},
	"image": func(args []string) (*Rule, error) {
		if err := needArgs("image", args, 0); err != nil {
			return nil, err
		}
		return Image(), nil
	},
	"minLength": func(args []string) (*Rule, error) {
		if err := needArgs("minLength", args, 1); err != nil {
			return nil, err
		}
		n, err := intArg("minLength", args[0])
		if err != nil {
			return nil, err
		}
		return MinLength(n), nil
	},
	"maxLength": func(args []string) (*Rule, error) {
		if err := needArgs("maxLength", args, 1); err != nil {
			return nil, err
		}
		n, err := intArg("maxLength", args[0])
		if err != nil {
			return nil, err
		}
		return MaxLength(n), nil
	},
	"min": func(args []string) (*Rule, error) {
		if err := needArgs("min", args, 1); err != nil {
			return nil, err
		}
		f, err := floatArg("min", args[0])
		if err != nil {
			return nil, err
		}
		return Min(f), nil
	},
	"max": func(args []string) (*Rule, error) {
		if err := needArgs("max", args, 1); err != nil {
			return nil, err
		}
		f, err := floatArg("max", args[0])
		if err != nil {
			return nil, err
		}
		return Max(f), nil
	},
	"maxFileSize": func(args []string) (*Rule, error) {
		if err := needArgs("maxFileSize", args, 1); err != nil {
			return nil, err
		}
		n, err := intArg("maxFileSize", args[0])
		if err != nil {
			return nil, err
		}
		return MaxFileSize(int64(n)), nil
	},
	"sameAs": func(args []string) (*Rule, error) {
		if err := needArgs("sameAs", args, 1); err != nil {
			return nil, err
		}
		return SameAs(args[0]), nil
	},
	"requiredIf": func(args []string) (*Rule, error) {
		if err := needArgs("requiredIf", args, 2); err != nil {
			return nil, err
		}
		return RequiredIf(args[0], args[1]), nil
	},
	"oneOf": func(args []string) (*Rule, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: oneOf takes at least one argument", ErrInvalidRuleArgs)
		}
		choices := make([]any, len(args))
		for i, a := range args {
			choices[i] = a
		}
		return OneOf(choices...), nil
	},
}

// Parse compiles a rule expression like "required|minLength:3" or
// "sameAs:password" into an ordered rule list. Rule tokens are
// separated by "|", arguments follow ":" and are comma-separated, so
// patterns with those characters (Matches) cannot be expressed here
// and are attached programmatically instead.
func Parse(expr string) ([]*Rule, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidRuleArgs)
	}

	var out []*Rule
	for _, token := range strings.Split(expr, "|") {
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, fmt.Errorf("%w: empty rule in %q", ErrInvalidRuleArgs, expr)
		}

		name, argstr, _ := strings.Cut(token, ":")
		factory, ok := builtinFactories[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
		}

		var args []string
		if argstr != "" {
			args = strings.Split(argstr, ",")
		}

		rule, err := factory(args)
		if err != nil {
			return nil, err
		}
		out = append(out, rule)
	}
	return out, nil
}

// manifest is the YAML shape of a declarative rule table: field paths
// or patterns mapped to a rule expression or a list of expressions.
//
//	fields:
//	  password: required|minLength:8
//	  confirm: sameAs:password
//	  contacts.*.email:
//	    - required
//	    - email
type manifest struct {
	Fields map[string]any `yaml:"fields"`
}

// FromManifest parses a YAML rule manifest into a rule table keyed by
// field path or pattern, ready for Engine.SetRules.
func FromManifest(data []byte) (map[string][]*Rule, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	if len(m.Fields) == 0 {
		return nil, fmt.Errorf("%w: no fields", ErrInvalidManifest)
	}

	out := make(map[string][]*Rule, len(m.Fields))
	for field, spec := range m.Fields {
		switch v := spec.(type) {
		case string:
			list, err := Parse(v)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", field, err)
			}
			out[field] = list
		case []any:
			var list []*Rule
			for _, item := range v {
				expr, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("%w: field %s: rule entries must be strings", ErrInvalidManifest, field)
				}
				parsed, err := Parse(expr)
				if err != nil {
					return nil, fmt.Errorf("field %s: %w", field, err)
				}
				list = append(list, parsed...)
			}
			out[field] = list
		default:
			return nil, fmt.Errorf("%w: field %s: expected string or list", ErrInvalidManifest, field)
		}
	}
	return out, nil
}
