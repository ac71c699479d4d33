package config

import (
	"github.com/spf13/viper"
)

// Default pipeline settings.
const (
	DefaultWorkers        = 4
	DefaultMaxPages       = 3
	DefaultRequestTimeout = "15s"
	DefaultPageDelay      = "1s"
	DefaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultReferer = "https://www.google.com/"
)

// defaultKeywords is the default AI/ML relevance vocabulary. It is
// configuration, not part of the scoring algorithm: override it under
// scorer.keywords in config.yaml to retune classification without redeploying.
var defaultKeywords = []string{
	"machine learning", "deep learning", "neural network", "nlp", "natural language",
	"computer vision", "ai", "artificial intelligence", "tensorflow", "pytorch",
	"scikit-learn", "data science", "data scientist", "ml engineer", "ai engineer",
	"predictive modeling", "classification", "regression", "clustering",
	"llm", "gpt", "generative", "transformer", "bert", "model training",
	"data analysis", "analytics", "algorithm", "optimization", "reinforcement learning",
}

// defaultPortals is the default portal scope for scheduled runs.
var defaultPortals = []string{
	"guru", "truelancer", "twine", "remotework", "weworkremotely", "remoteok",
}

// setDefaults sets default configuration values.
func setDefaults() {
	viper.SetDefault("app", map[string]any{
		"name":        "jobscout",
		"environment": "production",
		"debug":       false,
	})

	viper.SetDefault("logger", map[string]any{
		"level":        "info",
		"development":  false,
		"encoding":     "json",
		"output_paths": []string{"stdout"},
	})

	viper.SetDefault("database", map[string]any{
		"host":     "127.0.0.1",
		"port":     "5432",
		"user":     "jobscout",
		"password": "",
		"dbname":   "jobscout",
		"sslmode":  "disable",
	})

	viper.SetDefault("server", map[string]any{
		"address":       ":8080",
		"read_timeout":  "15s",
		"write_timeout": "15s",
		"idle_timeout":  "60s",
	})

	viper.SetDefault("scraper", map[string]any{
		"request_timeout": DefaultRequestTimeout,
		"page_delay":      DefaultPageDelay,
		"max_pages":       DefaultMaxPages,
		"workers":         DefaultWorkers,
		"user_agent":      DefaultUserAgent,
		"referer":         DefaultReferer,
		"portals":         defaultPortals,
		"filter_relevant": true,
	})

	viper.SetDefault("scorer.keywords", defaultKeywords)

	viper.SetDefault("scheduler.spec", "@hourly")
}
