package codex

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/danieljhkim/mcport/internal/fsops"
)

// SectionKey is the top-level table holding server definitions.
const SectionKey = "mcp_servers"

// DecodeFile reads path through fs and decodes it with Decode.
// The caller is expected to have checked that the file exists.
func DecodeFile(fs fsops.FS, path string) ([]Server, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read codex config %s: %w", path, err)
	}

	servers, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse codex config %s: %w", path, err)
	}
	return servers, nil
}

// Decode parses TOML data and returns the servers under mcp_servers in the
// order they appear in the document.
func Decode(data []byte) ([]Server, error) {
	var raw map[string]interface{}
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, err
	}

	section, ok := raw[SectionKey].(map[string]interface{})
	if !ok {
		return []Server{}, nil
	}

	names := orderedNames(md, section)
	servers := make([]Server, 0, len(names))
	for _, name := range names {
		servers = append(servers, decodeServer(name, section[name]))
	}
	return servers, nil
}

// orderedNames returns the keys of section in document order. The TOML
// metadata records keys as they are defined; any key it does not mention is
// appended in sorted order so the result stays deterministic.
func orderedNames(md toml.MetaData, section map[string]interface{}) []string {
	seen := make(map[string]bool, len(section))
	names := make([]string, 0, len(section))

	for _, key := range md.Keys() {
		if len(key) < 2 || key[0] != SectionKey {
			continue
		}
		name := key[1]
		if seen[name] {
			continue
		}
		if _, ok := section[name]; !ok {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	var rest []string
	for name := range section {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)

	return append(names, rest...)
}

func decodeServer(name string, value interface{}) Server {
	server := Server{Name: name}

	fields, ok := value.(map[string]interface{})
	if !ok {
		return server
	}

	if v, ok := fields["url"].(string); ok {
		server.URL = v
	}
	if v, ok := fields["bearer_token_env_var"].(string); ok {
		server.BearerTokenEnvVar = v
	}
	if v, ok := fields["command"].(string); ok {
		server.Command = v
	}
	if args, ok := asList(fields["args"]); ok {
		server.Args = make([]string, 0, len(args))
		for _, arg := range args {
			server.Args = append(server.Args, stringify(arg))
		}
	}
	if env, ok := fields["env"].(map[string]interface{}); ok {
		server.Env = make(map[string]string, len(env))
		for k, v := range env {
			server.Env[k] = stringify(v)
		}
	}

	return server
}

// asList unwraps any TOML array. Arrays of tables decode to
// []map[string]interface{} rather than []interface{}, so reflection is used.
func asList(value interface{}) ([]interface{}, bool) {
	if value == nil {
		return nil, false
	}
	if list, ok := value.([]interface{}); ok {
		return list, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	list := make([]interface{}, rv.Len())
	for i := range list {
		list[i] = rv.Index(i).Interface()
	}
	return list, true
}

// stringify renders a decoded TOML value as text.
func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		switch {
		case math.IsNaN(v):
			return "nan"
		case math.IsInf(v, 1):
			return "inf"
		case math.IsInf(v, -1):
			return "-inf"
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.Format(time.RFC3339Nano)
	}

	if list, ok := asList(value); ok {
		parts := make([]string, len(list))
		for i, item := range list {
			parts[i] = stringify(item)
		}
		return strings.Join(parts, ",")
	}

	return fmt.Sprint(value)
}
