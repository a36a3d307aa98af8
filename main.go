// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/cybrota/baltree/avl"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// enableTracing routes the tree's rebalancing traces to stderr.
func enableTracing() {
	selector := tracing.SelectorForAdapter(gologadapter.GetAdapter())
	selector.Select("avl").SetTraceLevel(tracing.LevelDebug)
	tracing.SetTraceSelector(selector)
}

func mustLoadConfig(path string) *Config {
	config, err := LoadConfig(path)
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	return config
}

func parseKeys(args []string) ([]int, error) {
	keys := make([]int, 0, len(args))
	for _, a := range args {
		for _, field := range strings.FieldsFunc(a, func(r rune) bool { return r == ',' }) {
			k, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("invalid key %q", field)
			}
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// buildDot builds a tree from keys and returns its DOT text together with the
// duplicate keys that were skipped.
func buildDot(keys []int) (string, []int, error) {
	tree := avl.New[int]()
	var skipped []int
	for _, k := range keys {
		if err := tree.Insert(k); err != nil {
			if errors.Is(err, avl.ErrDuplicateKey) {
				skipped = append(skipped, k)
				continue
			}
			return "", nil, err
		}
	}
	var b strings.Builder
	if err := tree.WriteDot(&b); err != nil {
		return "", nil, err
	}
	return b.String(), skipped, nil
}

func main() {
	InitializeColors()

	asciiLogo := `
██████╗  █████╗ ██╗  ████████╗██████╗ ███████╗███████╗
██╔══██╗██╔══██╗██║  ╚══██╔══╝██╔══██╗██╔════╝██╔════╝
██████╔╝███████║██║     ██║   ██████╔╝█████╗  █████╗
██╔══██╗██╔══██║██║     ██║   ██╔══██╗██╔══╝  ██╔══╝
██████╔╝██║  ██║███████╗██║   ██║  ██║███████╗███████╗
╚═════╝ ╚═╝  ╚═╝╚══════╝╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝
Self-balancing AVL tree with an interactive playground [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var configPath string
	var trace bool

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Run the reference insert/delete/range/depth scenario",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Demo inserts, deletes and queries the keys configured in the demo section`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := mustLoadConfig(configPath)
			showTree, _ := cmd.Flags().GetBool("tree")
			if err := runDemo(os.Stdout, config.Demo, showTree); err != nil {
				log.Fatalf("Demo failed: %v", err)
			}
		},
	}
	cmdDemo.Flags().Bool("tree", false, "draw the tree after every phase")

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Start a line based tree interpreter",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Shell reads interpreter commands from standard input`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := mustLoadConfig(configPath)
			quiet, _ := cmd.Flags().GetBool("quiet")
			if err := runShell(os.Stdin, os.Stdout, config.Shell, !quiet); err != nil {
				log.Fatalf("Shell failed: %v", err)
			}
		},
	}
	cmdShell.Flags().Bool("quiet", false, "no banner and prompt (for piped input)")

	var cmdExplore = &cobra.Command{
		Use:   "explore",
		Short: "Launch the interactive tree explorer UI",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Explore opens a terminal UI showing the tree while you edit it`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := runExplore(mustLoadConfig(configPath)); err != nil {
				log.Fatalf("Explorer failed: %v", err)
			}
		},
	}

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Run a random workload and validate the tree invariants",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Stress applies random inserts and deletes, checking balance, heights and order`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := mustLoadConfig(configPath)
			flags := cmd.Flags()
			if flags.Changed("ops") {
				config.Stress.Operations, _ = flags.GetInt("ops")
			}
			if flags.Changed("keys") {
				config.Stress.KeySpace, _ = flags.GetInt("keys")
			}
			if flags.Changed("seed") {
				config.Stress.Seed, _ = flags.GetInt64("seed")
			}
			quiet, _ := flags.GetBool("quiet")

			report, err := runStress(os.Stdout, config.Stress, quiet)
			if err != nil {
				printError(os.Stderr, err)
				os.Exit(1)
			}
			printStressReport(os.Stdout, report)
		},
	}
	cmdStress.Flags().Int("ops", 0, "number of operations (overrides config)")
	cmdStress.Flags().Int("keys", 0, "size of the key space (overrides config)")
	cmdStress.Flags().Int64("seed", 0, "random seed (overrides config)")
	cmdStress.Flags().Bool("quiet", false, "hide the progress bar")

	var cmdDot = &cobra.Command{
		Use:   "dot <key>...",
		Short: "Print a Graphviz description of a tree built from keys",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Dot inserts the keys in order and prints the resulting tree in DOT format`),
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			keys, err := parseKeys(args)
			if err != nil {
				log.Fatalf("Error parsing keys: %v", err)
			}
			dot, skipped, err := buildDot(keys)
			if err != nil {
				log.Fatalf("Error writing dot: %v", err)
			}
			if len(skipped) > 0 {
				fmt.Fprintf(os.Stderr, "%sSkipped duplicate keys: %v%s\n", Warning, skipped, Reset)
			}
			if copyFlag, _ := cmd.Flags().GetBool("copy"); copyFlag {
				if err := clipboard.WriteAll(dot); err != nil {
					log.Fatalf("Error copying to clipboard: %v", err)
				}
				fmt.Fprintf(os.Stderr, "📋 Copied %sDOT output%s to clipboard.\n", Green, Reset)
				return
			}
			fmt.Print(dot)
		},
	}
	cmdDot.Flags().Bool("copy", false, "copy the output to the clipboard instead of printing it")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print baltree usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the baltree CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the effective configuration",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings prints ~/.baltree.yaml, creating it with defaults when missing`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := displaySettings(os.Stdout, configPath); err != nil {
				log.Fatalf("Error displaying settings: %v", err)
			}
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print baltree version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "baltree",
		Version: version,
		Long:    asciiLogo,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if trace {
				enableTracing()
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the demo when no subcommand is provided
			if err := runDemo(os.Stdout, mustLoadConfig(configPath).Demo, true); err != nil {
				log.Fatalf("Demo failed: %v", err)
			}
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (default ~/.baltree.yaml)")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "log rebalancing steps to stderr")
	rootCmd.AddCommand(cmdDemo, cmdShell, cmdExplore, cmdStress, cmdDot, cmdUsage, cmdSettings, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
