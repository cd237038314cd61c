package cli

import (
	"strings"

	"github.com/clausewise/clausewise/internal/model"
	"github.com/spf13/viper"
)

// buildConfig layers the config file and environment over the built-in
// defaults. Flags are applied on top by each command.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()

	if viper.IsSet("language") {
		cfg.Language = viper.GetString("language")
	}
	if viper.IsSet("min_clause_length") {
		cfg.MinClauseLength = viper.GetInt("min_clause_length")
	}
	if viper.IsSet("templates.path") {
		cfg.Templates.Path = viper.GetString("templates.path")
	}
	if viper.IsSet("concurrency.workers") {
		cfg.Concurrency.Workers = viper.GetInt("concurrency.workers")
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if viper.IsSet("cache.dir") {
		cfg.Cache.Dir = viper.GetString("cache.dir")
	}
	if viper.IsSet("llm.provider") {
		cfg.LLM.Provider = viper.GetString("llm.provider")
	}
	if viper.IsSet("llm.model") {
		cfg.LLM.Model = viper.GetString("llm.model")
	}
	if viper.IsSet("llm.base_url") {
		cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	}
	if viper.IsSet("output.include_footer") {
		cfg.Output.IncludeFooter = viper.GetBool("output.include_footer")
	}

	cfg.Output.Verbose = verbose
	return cfg
}

// sanitizeFilename turns a source name into a safe report file stem.
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
		"\"", "_", "<", "_", ">", "_", "|", "_", " ", "-",
	)
	s = replacer.Replace(s)
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}
