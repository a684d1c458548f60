// Package config defines the application configuration structure and loads
// it from environment variables and an optional YAML file. Environment
// variables take precedence and use the CARDFOLIO_ prefix with underscores,
// e.g. CARDFOLIO_DATABASE_URL or CARDFOLIO_LLM_GEMINI_API_KEY.
package config
