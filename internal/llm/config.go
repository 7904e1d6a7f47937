package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation being performed.
type TaskType string

const (
	TaskReferral    TaskType = "referral"
	TaskCoverLetter TaskType = "cover_letter"
	TaskResumeEdit  TaskType = "resume_edit"
)

// TaskConfig holds per-task generation parameters. Zero values are not sent,
// leaving the model defaults in place.
type TaskConfig struct {
	Temperature     float64
	MaxOutputTokens int
	TimeoutMs       int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	APIKey    string
	LogCalls  bool
	Endpoint  string
	Model     string
	TimeoutMs int // 0 disables the client-side timeout
	Tasks     map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig with no API key and no timeouts.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Endpoint: "https://generativelanguage.googleapis.com/v1beta",
		Model:    "gemini-2.5-flash",
		Tasks: map[TaskType]TaskConfig{
			TaskReferral:    {},
			TaskCoverLetter: {},
			TaskResumeEdit:  {},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	if v := os.Getenv("OUTREACH_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("OUTREACH_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("OUTREACH_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("OUTREACH_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.TimeoutMs = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskReferral, "OUTREACH_LLM_REFERRAL_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskCoverLetter, "OUTREACH_LLM_COVER_LETTER_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskResumeEdit, "OUTREACH_LLM_RESUME_EDIT_TIMEOUT_MS")

	return cfg
}

// Validate reports ErrMissingAPIKey when no key is configured.
func (c LLMConfig) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
