// Package cmd implements the trellis CLI commands.
//
// A root command dispatches to subcommands registered from each file's
// init: check, tree, render and term.
package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = &Command{
	Name:  "trellis",
	Short: "Trellis - themed widget trees",
	Long: `Trellis builds widget trees from theme files and draws them to
images or the terminal.

Use "trellis <command> --help" for more information about a command.`,
	Usage: "trellis <command> [flags]",
}

// stdout receives command output. Tests replace it.
var stdout io.Writer = os.Stdout

// Commands registered with the CLI, in registration order.
var commands []*Command

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands = append(commands, cmd)
}

func lookup(name string) (*Command, bool) {
	i := slices.IndexFunc(commands, func(c *Command) bool { return c.Name == name })
	if i < 0 {
		return nil, false
	}
	return commands[i], true
}

// Execute runs the CLI with the given arguments, not including the program
// name.
func Execute(args []string) error {
	if len(args) == 0 {
		printHelp()
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp()
		return nil
	case "-v", "--version", "version":
		fmt.Fprintf(stdout, "trellis version %s (built %s)\n", Version, BuildTime)
		return nil
	}

	cmd, ok := lookup(args[0])
	if !ok {
		printHelp()
		return fmt.Errorf("unknown command: %s", args[0])
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

func printHelp() {
	var b strings.Builder
	fmt.Fprintln(&b, rootCmd.Long)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Usage:")
	fmt.Fprintf(&b, "  %s\n", rootCmd.Usage)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Commands:")
	for _, sub := range commands {
		fmt.Fprintf(&b, "  %-10s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Flags:")
	fmt.Fprintln(&b, "  -h, --help       Show help for a command")
	fmt.Fprintln(&b, "  -v, --version    Show version information")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Examples:")
	fmt.Fprintln(&b, "  trellis check ui.yaml             Validate a theme file")
	fmt.Fprintln(&b, "  trellis render ui.yaml -o ui.png  Rasterize the tree rooted at \"root\"")
	io.WriteString(stdout, b.String())
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
