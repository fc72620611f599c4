package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"bset/internal/btree"
	"bset/internal/telemetry"
	"bset/internal/visualize"
)

var replDegree int

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session over a single tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := telemetry.New(telemetry.Options{Path: cfg.LogPath, Level: cfg.LogLevel})
		degree := resolveDegree(replDegree)
		tr := btree.NewTree[string](degree)
		r := &repl{tree: tr, scanner: bufio.NewScanner(os.Stdin)}
		log.Info().Int("degree", degree).Msg("repl starting")
		r.start()
		return nil
	},
}

func init() {
	replCmd.Flags().IntVar(&replDegree, "degree", 0, "minimum degree (0 uses the configured default)")
}

// resolveDegree applies the per-command --degree override over cfg.Degree;
// 0 means "not set".
func resolveDegree(override int) int {
	if override > 0 {
		return override
	}
	return cfg.Degree
}

type repl struct {
	tree    *btree.Tree[string]
	scanner *bufio.Scanner
}

func (r *repl) start() {
	r.printHelp()
	r.printPrompt()
	for r.scanner.Scan() {
		r.process(r.scanner.Text())
		r.printPrompt()
	}
}

func (r *repl) printHelp() {
	fmt.Print(`
btreectl REPL

Available commands:
  INSERT <key>    Insert a key
  REMOVE <key>    Remove a key
  CONTAINS <key>  Report whether key is present
  WALK            Print every key in ascending order
  SIZE            Print the number of keys stored
  SHOW            Render the tree's shape
  EXIT            Terminate this session
`)
}

func (r *repl) printPrompt() {
	fmt.Print("> ")
}

func (r *repl) process(line string) {
	fields, err := shlex.Split(line)
	if err != nil || len(fields) < 1 {
		return
	}
	command := strings.ToLower(fields[0])
	switch command {
	default:
		fmt.Printf("Unknown command %q\n", command)
	case "insert":
		r.processInsert(fields[1:])
	case "remove":
		r.processRemove(fields[1:])
	case "contains":
		r.processContains(fields[1:])
	case "walk":
		r.processWalk()
	case "size":
		fmt.Println(countNoun(r.tree.Len(), "key"))
	case "show":
		fmt.Println(visualize.Box(r.tree, "tree"))
	case "exit":
		os.Exit(0)
	}
}

func (r *repl) processInsert(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: INSERT <key>")
		return
	}
	if r.tree.Insert(args[0]) {
		fmt.Println("ok")
	} else {
		fmt.Println("already present")
	}
}

func (r *repl) processRemove(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: REMOVE <key>")
		return
	}
	if r.tree.Remove(args[0]) {
		fmt.Println("ok")
	} else {
		fmt.Println("not found")
	}
}

func (r *repl) processContains(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: CONTAINS <key>")
		return
	}
	fmt.Println(r.tree.Contains(args[0]))
}

func (r *repl) processWalk() {
	var keys []string
	r.tree.Walk(func(k string) bool {
		keys = append(keys, k)
		return true
	})
	fmt.Println(strings.Join(keys, " "))
}
