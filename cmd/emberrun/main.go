package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	emberruntime "github.com/emberlang/ember-runtime"
	"github.com/emberlang/ember-runtime/array"
	"github.com/emberlang/ember-runtime/heap"
	"github.com/emberlang/ember-runtime/numeric"
	"github.com/emberlang/ember-runtime/runtime"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to runtime config YAML")
		verbose     = flag.Bool("v", false, "Verbose allocation tracing")
		interactive = flag.Bool("i", false, "Interactive allocation inspector TUI")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *verbose || cfg.Trace {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		heap.SetLogger(logger.Named("heap"))
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runDemo(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runDemo walks the runtime surface the way an emitted Ember program
// would: build values, combine them, print them, sweep at the end.
func runDemo(cfg *Config) error {
	defer func() {
		if cfg.SweepOnExit {
			n := runtime.Cleanup()
			fmt.Printf("swept %d leaked allocation(s)\n", n)
		}
	}()

	greeting := runtime.Concat(runtime.NewString("hello, "), runtime.NewString("ember"))
	runtime.PrintString(greeting)

	n := runtime.ParseBigInt("123456789012345678901234567890")
	runtime.PrintBigInt(n)

	a := runtime.ParseDecimal("1.5")
	b := runtime.ParseDecimal("2.5")
	sum := numeric.Add(numeric.NewDec(), a, b)
	runtime.PrintDecimal(sum)

	scores := array.New[int](0)
	for _, v := range []int{1, 2, 3} {
		scores.Append(v)
	}
	runtime.PrintArray(scores, emberruntime.TagInt)

	fmt.Printf("live tracked allocations: %d\n", heap.Default().Len())
	return nil
}
