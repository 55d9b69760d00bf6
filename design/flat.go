package design

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Flatten returns every numeric parameter of a keyed by its dotted YAML
// path, e.g. "wing.sections.1.airfoil.chord". Booleans map to 0 and 1.
func Flatten(a Aircraft) map[string]float64 {
	root, err := toNode(a)
	if err != nil {
		// Aircraft only holds plain fields.
		panic(err)
	}
	out := make(map[string]float64)
	walkScalars(root, "", func(key string, n *yaml.Node) {
		switch n.ShortTag() {
		case "!!bool":
			var b bool
			if n.Decode(&b) == nil && b {
				out[key] = 1
			} else {
				out[key] = 0
			}
		case "!!int", "!!float":
			v, err := strconv.ParseFloat(n.Value, 64)
			if err == nil {
				out[key] = v
			}
		}
	})
	return out
}

// Unflatten rebuilds an Aircraft from a map produced by Flatten. Keys missing
// from values keep their Default value. The number of wing sections follows
// the highest section index present. Unknown keys are an error.
func Unflatten(values map[string]float64) (Aircraft, error) {
	root, err := toNode(Default())
	if err != nil {
		return Aircraft{}, err
	}
	if n := sectionCount(values); n > 0 {
		resizeSections(root, n)
	}
	used := 0
	walkScalars(root, "", func(key string, n *yaml.Node) {
		v, ok := values[key]
		if !ok {
			return
		}
		used++
		if n.ShortTag() == "!!bool" {
			n.Value = strconv.FormatBool(v != 0)
			return
		}
		n.Tag = ""
		n.Value = strconv.FormatFloat(v, 'g', -1, 64)
	})
	if used != len(values) {
		return Aircraft{}, fmt.Errorf("unknown keys in flattened design: %v", unknownKeys(root, values))
	}
	var a Aircraft
	if err := root.Decode(&a); err != nil {
		return Aircraft{}, err
	}
	// Integer and boolean fields silently round, reject values they cannot hold.
	got := Flatten(a)
	for k, v := range values {
		if got[k] != v {
			return Aircraft{}, fmt.Errorf("key %q: value %g not representable, got %g", k, v, got[k])
		}
	}
	return a, nil
}

// Key returns a stable hash of the flattened design. Equal designs have
// equal keys regardless of map iteration order.
func Key(a Aircraft) uint64 {
	flat := Flatten(a)
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	h := fnv.New64a()
	var buf [8]byte
	for _, k := range keys {
		h.Write([]byte(k))
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(flat[k]))
		h.Write(buf[:])
	}
	return h.Sum64()
}

func toNode(a Aircraft) (*yaml.Node, error) {
	var n yaml.Node
	if err := n.Encode(a); err != nil {
		return nil, err
	}
	if n.Kind == yaml.DocumentNode {
		return n.Content[0], nil
	}
	return &n, nil
}

func walkScalars(n *yaml.Node, prefix string, fn func(key string, n *yaml.Node)) {
	join := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + "." + k
	}
	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			walkScalars(c, prefix, fn)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			walkScalars(n.Content[i+1], join(n.Content[i].Value), fn)
		}
	case yaml.SequenceNode:
		for i, c := range n.Content {
			walkScalars(c, join(strconv.Itoa(i)), fn)
		}
	case yaml.ScalarNode:
		fn(prefix, n)
	}
}

const sectionsPrefix = "wing.sections."

func sectionCount(values map[string]float64) int {
	n := 0
	for k := range values {
		rest, ok := strings.CutPrefix(k, sectionsPrefix)
		if !ok {
			continue
		}
		idx, _, _ := strings.Cut(rest, ".")
		i, err := strconv.Atoi(idx)
		if err == nil && i+1 > n {
			n = i + 1
		}
	}
	return n
}

// resizeSections grows or shrinks the wing section sequence to n entries.
// New sections copy the last one.
func resizeSections(root *yaml.Node, n int) {
	seq := lookup(root, "wing", "sections")
	if seq == nil || seq.Kind != yaml.SequenceNode || len(seq.Content) == 0 {
		return
	}
	for len(seq.Content) < n {
		seq.Content = append(seq.Content, cloneNode(seq.Content[len(seq.Content)-1]))
	}
	seq.Content = seq.Content[:n]
}

func lookup(n *yaml.Node, path ...string) *yaml.Node {
	for _, p := range path {
		if n.Kind != yaml.MappingNode {
			return nil
		}
		var next *yaml.Node
		for i := 0; i+1 < len(n.Content); i += 2 {
			if n.Content[i].Value == p {
				next = n.Content[i+1]
				break
			}
		}
		if next == nil {
			return nil
		}
		n = next
	}
	return n
}

func cloneNode(n *yaml.Node) *yaml.Node {
	c := *n
	c.Content = make([]*yaml.Node, len(n.Content))
	for i, child := range n.Content {
		c.Content[i] = cloneNode(child)
	}
	return &c
}

func unknownKeys(root *yaml.Node, values map[string]float64) []string {
	known := make(map[string]bool)
	walkScalars(root, "", func(key string, _ *yaml.Node) { known[key] = true })
	var unknown []string
	for k := range values {
		if !known[k] {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	return unknown
}
