package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/davgit/diagnosticss/internal/logging"
	"github.com/davgit/diagnosticss/pkg/lint"
	"github.com/davgit/diagnosticss/pkg/lint/rules"
)

type rulesFlags struct {
	format string
	tag    string
}

const formatJSON = "json"

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Enabled     bool     `json:"enabled"`
	Tags        []string `json:"tags,omitempty"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available rules",
		Long: `List all available rules with their IDs, descriptions, default
severity, and whether they are enabled by default.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			catalog := filterRules(rules.Builtin(), flags.tag)

			if flags.format == formatJSON {
				return outputRulesJSON(catalog)
			}

			logger := logging.NewInteractive()

			if len(catalog) == 0 {
				logger.Info("no rules match the given tag")
				return nil
			}

			logger.Info("available rules")

			for _, rule := range catalog {
				logger.Info(rule.ID,
					logging.FieldSeverity, rule.Severity,
					logging.FieldDescription, rule.Description,
				)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")
	cmd.Flags().StringVar(&flags.tag, "tag", "",
		"only list rules carrying the given tag")

	return cmd
}

// filterRules returns the rules carrying the given tag, or all rules when
// tag is empty.
func filterRules(catalog []lint.Rule, tag string) []lint.Rule {
	if tag == "" {
		return catalog
	}

	var filtered []lint.Rule
	for _, rule := range catalog {
		for _, t := range rule.Tags {
			if t == tag {
				filtered = append(filtered, rule)
				break
			}
		}
	}
	return filtered
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(catalog []lint.Rule) error {
	infos := make([]ruleInfo, 0, len(catalog))
	for _, rule := range catalog {
		infos = append(infos, ruleInfo{
			ID:          rule.ID,
			Description: rule.Description,
			Severity:    string(rule.Severity),
			Enabled:     rule.Enabled,
			Tags:        rule.Tags,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
