package config

import (
	"fmt"

	umlerrors "github.com/umltranslator/translator-go/pkg/errors"
)

// Path is a lazy access path: an ordered sequence of namespace keys built up
// at pipe-declaration time, long before any Namespace exists to evaluate it
// against. Path{} (the zero value) is the empty path.
type Path struct {
	segments []string
}

// NewPath starts a Path from the given segments, e.g.
// config.NewPath("TAGS", "model").
func NewPath(segments ...string) Path {
	return Path{segments: append([]string(nil), segments...)}
}

// Extend returns a new Path with segment appended, leaving the receiver
// unmodified so a shared prefix path may be reused across several proxies.
func (p Path) Extend(segment string) Path {
	return Path{segments: append(append([]string(nil), p.segments...), segment)}
}

func (p Path) String() string { return joinPath(p.segments) }

// Proxy records a Path as a stand-in value. It does not read anything at
// construction time; evaluating it against a Namespace is deferred to
// Resolve, which may be called multiple times (idempotent) and never
// mutates the namespace.
type Proxy struct {
	path Path
}

// NewProxy wraps path as a Proxy.
func NewProxy(path Path) *Proxy {
	return &Proxy{path: path}
}

// Resolve evaluates the proxy's path against ns, returning the raw value.
// Accessing an absent key raises a ConfigurationError — a programmer error,
// never caught by the Dispatcher's format-probing recovery.
func (p *Proxy) Resolve(ns *Namespace) (any, error) {
	return ns.Get(p.path.segments...)
}

// ResolveString evaluates the proxy and asserts the result is a string,
// the common case for tag names and attribute keys.
func (p *Proxy) ResolveString(ns *Namespace) (string, error) {
	v, err := p.Resolve(ns)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", umlerrors.NewConfigurationError(p.path.String(), fmt.Sprintf("expected string, got %T", v))
	}
	return s, nil
}

// ResolveBool evaluates the proxy and asserts the result is a bool.
func (p *Proxy) ResolveBool(ns *Namespace) (bool, error) {
	v, err := p.Resolve(ns)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, umlerrors.NewConfigurationError(p.path.String(), fmt.Sprintf("expected bool, got %T", v))
	}
	return b, nil
}

// ResolveStringMap evaluates the proxy and asserts the result is a
// string-to-string mapping, the shape used by mapValueFromKey's
// enum-rewrite tables.
func (p *Proxy) ResolveStringMap(ns *Namespace) (map[string]string, error) {
	v, err := p.Resolve(ns)
	if err != nil {
		return nil, err
	}
	switch m := v.(type) {
	case map[string]string:
		return m, nil
	case map[string]any:
		out := make(map[string]string, len(m))
		for k, raw := range m {
			s, ok := raw.(string)
			if !ok {
				return nil, umlerrors.NewConfigurationError(p.path.String(), fmt.Sprintf("expected string value for key %q, got %T", k, raw))
			}
			out[k] = s
		}
		return out, nil
	default:
		return nil, umlerrors.NewConfigurationError(p.path.String(), fmt.Sprintf("expected string map, got %T", v))
	}
}
