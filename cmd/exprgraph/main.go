// Command exprgraph demonstrates the exprgraph package. It assembles the
// graph ((A+B)*C)*D from four leaf constants, evaluates it, and prints the
// value and the partial derivative over one or more leaves.
package main

import (
	goflag "flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"

	"github.com/zephyrtronium/exprgraph"
)

// defaults are the leaf constants of the demonstration graph.
var defaults = []struct {
	name string
	val  float64
}{
	{"A", 10},
	{"B", 5},
	{"C", 20},
	{"D", 25},
}

func main() {
	log.SetFlags(0)
	var (
		sets []string
		over []string
		all  bool
		verb string
	)
	flag.StringArrayVar(&sets, "set", nil, "name=value leaf override (any number of times)")
	flag.StringArrayVar(&over, "over", []string{"A"}, "leaf name to differentiate over (any number of times)")
	flag.BoolVar(&all, "all", false, "print the derivative over every leaf")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	flag.Parse()

	vals := make(map[string]float64, len(defaults))
	for _, d := range defaults {
		vals[d.name] = d.val
	}
	for _, s := range sets {
		if err := override(vals, s); err != nil {
			log.Fatal(err)
		}
	}

	root := assemble(vals)
	glog.V(1).Infof("assembled %v", root)
	ev := exprgraph.Evaluate(root)
	glog.V(1).Infof("leaves in evaluation order: %q", ev.Names())

	verb += "\n"
	fmt.Printf("%v = "+verb, root, ev.Value())
	if all {
		g := ev.Gradient()
		seen := make(map[string]bool, len(g))
		for _, n := range ev.Names() {
			if seen[n] {
				continue
			}
			seen[n] = true
			fmt.Printf("over %s: "+verb, n, g[n])
		}
		return
	}
	for _, n := range over {
		d, err := ev.DerivativeOver(n)
		if err != nil {
			log.Fatal(errors.Wrapf(err, "differentiating %v", root))
		}
		fmt.Printf("over %s: "+verb, n, d)
	}
}

// override applies a name=value setting to the leaf values.
func override(vals map[string]float64, s string) error {
	d := strings.SplitN(s, "=", 2)
	if len(d) != 2 {
		return errors.Errorf(`leaf overrides must be "name=value", not %q`, s)
	}
	name := strings.TrimSpace(d[0])
	if _, ok := vals[name]; !ok {
		return errors.Errorf("no leaf named %q", name)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(d[1]), 64)
	if err != nil {
		return errors.Wrapf(err, "setting %s", name)
	}
	vals[name] = v
	return nil
}

// assemble builds ((A+B)*C)*D from the leaf values.
func assemble(vals map[string]float64) *exprgraph.Node {
	a := exprgraph.Leaf(vals["A"], "A")
	b := exprgraph.Leaf(vals["B"], "B")
	c := exprgraph.Leaf(vals["C"], "C")
	d := exprgraph.Leaf(vals["D"], "D")
	f1 := exprgraph.Sum(a, b)
	f2 := exprgraph.Product(f1, c)
	return exprgraph.Product(f2, d)
}
