package config

import (
	"fmt"
	"os"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// LoadKDL loads configuration from a .sift.kdl file. The format is flat
// top-level nodes:
//
//	case_sensitive false
//	flexibility 2
//	ignore_stop_words true
//	stemming false
//	limit 5
//	exclude "colou?r" "draft-"
func LoadKDL(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("failed to read %s: %w", path, err)
	}
	return parseKDL(string(content))
}

func parseKDL(content string) (Config, error) {
	cfg := Default()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return cfg, fmt.Errorf("failed to parse KDL config: %w", err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "case_sensitive":
			if v, ok := firstBoolArg(n); ok {
				cfg.CaseSensitive = v
			}
		case "flexibility":
			if v, ok := firstIntArg(n); ok {
				cfg.Flexibility = v
			}
		case "ignore_stop_words":
			if v, ok := firstBoolArg(n); ok {
				cfg.IgnoreStopWords = v
			}
		case "stemming":
			if v, ok := firstBoolArg(n); ok {
				cfg.Stemming = v
			}
		case "limit":
			if v, ok := firstIntArg(n); ok {
				cfg.Limit = v
			}
		case "exclude":
			cfg.Exclusions = append(cfg.Exclusions, collectStringArgs(n)...)
		}
	}

	return cfg.clamp(), nil
}

// Helper functions over the kdl-go document model.
func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}

func collectStringArgs(n *document.Node) []string {
	if n == nil {
		return nil
	}
	out := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		if s, ok := a.Value.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
