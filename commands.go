package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tadeaspaule/logic-toolkit/config"
	"github.com/tadeaspaule/logic-toolkit/kb"
	"github.com/tadeaspaule/logic-toolkit/logic"
)

// app carries the resolved configuration and logger into every command.
type app struct {
	cfg config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: zap.NewNop()}
	var (
		cfgPath string
		debug   bool
	)
	root := &cobra.Command{
		Use:           "logic-toolkit",
		Short:         "Work with propositional formulas: normal forms, semantics and definite-rule queries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath != "" {
				cfg, err := config.Load(cfgPath)
				if err != nil {
					return fmt.Errorf("load config %s: %w", cfgPath, err)
				}
				a.cfg = cfg
			}
			if debug {
				a.cfg.Debug = true
			}
			if a.cfg.Debug {
				log, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				a.log = log
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML configuration file")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug trace logging")
	root.AddCommand(
		newCNFCmd(a),
		newDNFCmd(a),
		newTautologyCmd(a),
		newContradictionCmd(a),
		newSatisfiableCmd(a),
		newInterpsCmd(a),
		newRandomCmd(a),
		newRulesCmd(a),
		newQueryCmd(a),
	)
	return root
}

func newCNFCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cnf <formula>",
		Short: "Convert a formula to conjunctive normal form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := logic.Parse(args[0])
			if err != nil {
				return err
			}
			cnf := logic.ToCNF(f)
			a.log.Debug("converted to CNF",
				zap.String("input", f.String()),
				zap.String("output", cnf.String()))
			fmt.Fprintln(cmd.OutOrStdout(), cnf)
			return nil
		},
	}
}

func newDNFCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dnf <formula>",
		Short: "Convert a formula to disjunctive normal form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := logic.Parse(args[0])
			if err != nil {
				return err
			}
			dnf := logic.ToDNF(f)
			a.log.Debug("converted to DNF",
				zap.String("input", f.String()),
				zap.String("output", dnf.String()))
			fmt.Fprintln(cmd.OutOrStdout(), dnf)
			return nil
		},
	}
}

func newTautologyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tautology <formula>",
		Short: "Check whether a formula is true under every interpretation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := logic.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), logic.IsTautology(f))
			return nil
		},
	}
}

func newContradictionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contradiction <formula>",
		Short: "Check whether a formula is false under every interpretation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := logic.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), logic.IsContradiction(f))
			return nil
		},
	}
}

func newSatisfiableCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "satisfiable <formula>",
		Short: "Check whether some interpretation makes a formula true",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := logic.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), logic.IsSatisfiable(f))
			return nil
		},
	}
}

func newInterpsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interps <formula>",
		Short: "List the interpretations under which a formula is true",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := logic.Parse(args[0])
			if err != nil {
				return err
			}
			names := logic.Literals(f)
			for _, model := range logic.TrueInterpretations(f) {
				parts := make([]string, len(names))
				for i, name := range names {
					parts[i] = fmt.Sprintf("%s=%t", name, model[name])
				}
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(parts, " "))
			}
			return nil
		},
	}
}

func newRandomCmd(a *app) *cobra.Command {
	var (
		pool  []string
		depth int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random well-formed formula",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gcfg := a.cfg.Generator
			if cmd.Flags().Changed("pool") {
				gcfg.Pool = pool
			}
			if cmd.Flags().Changed("depth") {
				gcfg.MaxDepth = depth
			}
			if cmd.Flags().Changed("seed") {
				gcfg.Seed = seed
			}
			g, err := logic.NewGenerator(gcfg.Pool, gcfg.Seed)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), g.Generate(gcfg.MaxDepth))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&pool, "pool", nil, "literal pool, e.g. A,B,C")
	cmd.Flags().IntVar(&depth, "depth", 0, "maximum tree depth")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	return cmd
}

func newRulesCmd(a *app) *cobra.Command {
	rules := &cobra.Command{
		Use:   "rules",
		Short: "Manage the persistent set of definite rules",
	}
	rules.AddCommand(
		&cobra.Command{
			Use:   "add <rule>",
			Short: "Assert a rule, e.g. 'A', 'A->B' or 'A,B->C'",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				rule, err := kb.ParseRule(args[0])
				if err != nil {
					return err
				}
				return a.withKB(cmd.Context(), func(base *kb.KnowledgeBase) error {
					return base.Add(rule)
				})
			},
		},
		&cobra.Command{
			Use:   "extract <formula>",
			Short: "Convert a formula to CNF and assert its definite rules",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				f, err := logic.Parse(args[0])
				if err != nil {
					return err
				}
				extracted, err := kb.Extract(logic.ToCNF(f))
				if err != nil {
					return err
				}
				return a.withKB(cmd.Context(), func(base *kb.KnowledgeBase) error {
					return base.Add(extracted...)
				})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List the known rules",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withKB(cmd.Context(), func(base *kb.KnowledgeBase) error {
					for _, r := range base.Rules() {
						fmt.Fprintln(cmd.OutOrStdout(), r)
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Forget every known rule",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withKB(cmd.Context(), func(base *kb.KnowledgeBase) error {
					base.Clear()
					return nil
				})
			},
		},
	)
	return rules
}

func newQueryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "query <literal>",
		Short: "Ask whether a literal follows from the known rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if err := kb.ValidateLiteral(name); err != nil {
				return err
			}
			return a.withKB(cmd.Context(), func(base *kb.KnowledgeBase) error {
				fmt.Fprintln(cmd.OutOrStdout(), base.Query(name))
				return nil
			})
		},
	}
}

// withKB loads the persistent knowledge base, runs fn on it and saves it
// back.
func (a *app) withKB(ctx context.Context, fn func(base *kb.KnowledgeBase) error) error {
	store, err := kb.Open(ctx, a.cfg.KBPath)
	if err != nil {
		return fmt.Errorf("open knowledge base %s: %w", a.cfg.KBPath, err)
	}
	defer store.Close()
	base, err := store.Load(ctx, kb.WithLogger(a.log))
	if err != nil {
		return err
	}
	if err := fn(base); err != nil {
		return err
	}
	return store.Save(ctx, base)
}
