package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if err := c.Assessment.validate(); err != nil {
		return fmt.Errorf("assessment: %w", err)
	}

	if err := c.Bot.validate(); err != nil {
		return fmt.Errorf("bot: %w", err)
	}

	return nil
}

func (c *AssessmentConfig) validate() error {
	if c.QuestionCount <= 0 {
		return fmt.Errorf("question_count must be > 0 (got %d)", c.QuestionCount)
	}
	if c.MaxDistractors <= 0 {
		return fmt.Errorf("max_distractors must be > 0 (got %d)", c.MaxDistractors)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be > 0 (got %v)", c.SessionTTL)
	}
	return nil
}

func (c *BotConfig) validate() error {
	if c.ReminderHour < 0 || c.ReminderHour > 23 {
		return fmt.Errorf("reminder_hour must be in [0, 23] (got %d)", c.ReminderHour)
	}
	if _, err := time.LoadLocation(c.ReminderTimezone); err != nil {
		return fmt.Errorf("reminder_timezone %q: %w", c.ReminderTimezone, err)
	}
	return nil
}
