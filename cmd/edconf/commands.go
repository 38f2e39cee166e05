package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/edconf/internal/config"
	"github.com/dshills/edconf/internal/config/loader"
)

func newGetCmd(c *cli) *cobra.Command {
	var kind, def string
	var showSource bool
	cmd := &cobra.Command{
		Use:   "get <domain> <section> <option>",
		Short: "Print one option, user value first",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := config.ParseDomain(args[0])
			if err != nil {
				return err
			}
			k, err := config.ParseValueKind(kind)
			if err != nil {
				return err
			}
			defValue := config.Value{Kind: k}
			if def != "" {
				if defValue, err = config.ParseValue(k, def); err != nil {
					return fmt.Errorf("--default: %w", err)
				}
			}
			reg, err := c.open()
			if err != nil {
				return err
			}

			v, set, ok := reg.Store(d).Lookup(args[1], args[2], k, defValue)
			source := "fallback"
			if ok {
				source = set.String()
			}
			data := map[string]string{"value": v.String(), "source": source}
			return c.print(data, func(w io.Writer) error {
				if showSource {
					_, err := fmt.Fprintf(w, "%s\t(%s)\n", v.String(), source)
					return err
				}
				_, err := fmt.Fprintln(w, v.String())
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", "string", "value kind: string, int or bool")
	cmd.Flags().StringVarP(&def, "default", "d", "", "value returned when the option is not configured")
	cmd.Flags().BoolVar(&showSource, "show-source", false, "also print which source supplied the value")
	return cmd
}

func newSectionsCmd(c *cli) *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   "sections <domain>",
		Short: "List the sections of one source of a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := config.ParseDomain(args[0])
			if err != nil {
				return err
			}
			set, err := config.ParseConfigSet(source)
			if err != nil {
				return err
			}
			reg, err := c.open()
			if err != nil {
				return err
			}
			return c.printList("sections", reg.GetSectionList(set, d))
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "default", "config set: default or user")
	return cmd
}

func (c *cli) printList(key string, items []string) error {
	return c.print(map[string][]string{key: items}, func(w io.Writer) error {
		for _, item := range items {
			if _, err := fmt.Fprintln(w, item); err != nil {
				return err
			}
		}
		return nil
	})
}

func newThemeCmd(c *cli) *cobra.Command {
	var element, sel string
	cmd := &cobra.Command{
		Use:   "theme [name]",
		Short: "Print a resolved highlight theme (default: the current theme)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.open()
			if err != nil {
				return err
			}
			themes := reg.Themes()
			theme := themes.Current()
			if len(args) == 1 {
				theme = themes.Resolve(args[0])
			}

			if element != "" {
				return c.printHighlight(theme, element, sel)
			}

			doc := loader.NewDocument()
			section := doc.AddSection(theme.Name)
			for _, key := range theme.Keys() {
				colour, _ := theme.Get(key)
				section.Set(key, colour)
			}
			return c.print(doc, func(w io.Writer) error {
				return writeSection(w, section)
			})
		},
	}
	cmd.Flags().StringVarP(&element, "element", "e", "", "print one element (e.g. comment, cursor)")
	cmd.Flags().StringVar(&sel, "sel", "", "with --element, print only fg or bg")
	return cmd
}

func (c *cli) printHighlight(theme config.Theme, element, sel string) error {
	h, err := theme.Highlight(element)
	if err != nil {
		return err
	}
	if sel == "" {
		return c.print(h, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "foreground = %s\nbackground = %s\n", h.Foreground, h.Background)
			return err
		})
	}
	s, err := config.ParseSelector(sel)
	if err != nil {
		return err
	}
	colour, err := h.Pick(s)
	if err != nil {
		return err
	}
	return c.print(map[string]string{s.String(): colour}, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, colour)
		return err
	})
}

func newKeysCmd(c *cli) *cobra.Command {
	var core bool
	cmd := &cobra.Command{
		Use:   "keys [name]",
		Short: "Print a resolved key set (default: the current key set)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.open()
			if err != nil {
				return err
			}
			name := reg.CurrentKeys()
			if len(args) == 1 {
				name = args[0]
			}
			resolver := reg.Keys()
			ks := resolver.Resolve(name)
			if core {
				ks = resolver.CoreKeys(name)
			}
			if name == "" {
				name = "baseline"
			}
			return c.printKeySet(name, ks)
		},
	}
	cmd.Flags().BoolVar(&core, "core", false, "only core bindings, without extensions")
	return cmd
}

func (c *cli) printKeySet(name string, ks *config.KeySet) error {
	doc := loader.NewDocument()
	section := doc.AddSection(name)
	for _, event := range ks.Events() {
		chords, _ := ks.Get(event)
		section.Set(event, strings.Join(chords, " "))
	}
	return c.print(doc, func(w io.Writer) error {
		return writeSection(w, section)
	})
}

func writeSection(w io.Writer, s *loader.Section) error {
	if _, err := fmt.Fprintf(w, "[%s]\n", s.Name()); err != nil {
		return err
	}
	for _, opt := range s.Options() {
		value, _ := s.Get(opt)
		if _, err := fmt.Fprintf(w, "%s = %s\n", opt, value); err != nil {
			return err
		}
	}
	return nil
}

func newExtensionsCmd(c *cli) *cobra.Command {
	var all, raw bool
	cmd := &cobra.Command{
		Use:   "extensions [name]",
		Short: "List extensions, or print the bindings of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.open()
			if err != nil {
				return err
			}
			catalog := reg.Extensions()

			if len(args) == 0 {
				return c.printList("extensions", catalog.List(!all))
			}

			name := args[0]
			if _, ok := catalog.Describe(name); !ok {
				return fmt.Errorf("extension %q is not declared", name)
			}
			ks := catalog.Bindings(name)
			if raw {
				ks = catalog.RawKeys(name)
			}
			return c.printKeySet(name, ks)
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include disabled extensions")
	cmd.Flags().BoolVar(&raw, "raw", false, "print configurable bindings as stored, before collision handling")
	return cmd
}

func newHelpSourcesCmd(c *cli) *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   "help-sources",
		Short: "List extra help documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.open()
			if err != nil {
				return err
			}
			var sources []config.HelpSource
			if source == "all" {
				sources = reg.AllHelpSources()
			} else {
				set, err := config.ParseConfigSet(source)
				if err != nil {
					return err
				}
				sources = reg.HelpSources(set)
			}
			return c.print(map[string][]config.HelpSource{"help_sources": sources}, func(w io.Writer) error {
				for _, hs := range sources {
					if _, err := fmt.Fprintf(w, "%s\t%s\n", hs.MenuItem, hs.Path); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&source, "source", "s", "all", "config set: default, user or all")
	return cmd
}

func newSetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "set <domain> <section> <option> <value>",
		Short: "Store a user override and save it",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := config.ParseDomain(args[0])
			if err != nil {
				return err
			}
			reg, err := c.open()
			if err != nil {
				return err
			}
			changed, err := reg.SetUserOption(d, args[1], args[2], args[3])
			if err != nil {
				return err
			}
			if !changed {
				fmt.Fprintln(c.stderr, "unchanged")
				return nil
			}
			return reg.Store(d).Save()
		},
	}
}

func newUnsetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "unset <domain> <section> <option>",
		Short: "Remove a user override and save; an empty user file is deleted",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := config.ParseDomain(args[0])
			if err != nil {
				return err
			}
			reg, err := c.open()
			if err != nil {
				return err
			}
			removed, err := reg.RemoveUserOption(d, args[1], args[2])
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintln(c.stderr, "not set")
				return nil
			}
			return reg.Store(d).Save()
		},
	}
}
