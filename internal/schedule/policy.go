package schedule

import (
	"fmt"
	"os"

	"roster-backend/internal/database/models"

	"gopkg.in/yaml.v3"
)

// ShiftWindow is the canonical start/end of one of the two daily slots
type ShiftWindow struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Policy holds the scheduling constants: canonical shift windows, the Saturday
// lock hour, and whether morning edits link the afternoon start by default.
type Policy struct {
	Morning         ShiftWindow `yaml:"morning"`
	Afternoon       ShiftWindow `yaml:"afternoon"`
	LockHour        int         `yaml:"lock_hour"`
	AutoLinkDefault bool        `yaml:"auto_link_afternoon"`
}

// DefaultPolicy returns the built-in scheduling constants
func DefaultPolicy() *Policy {
	return &Policy{
		Morning:         ShiftWindow{Start: "08:00", End: "14:00"},
		Afternoon:       ShiftWindow{Start: "14:00", End: "23:00"},
		LockHour:        23,
		AutoLinkDefault: true,
	}
}

// LoadPolicy reads a policy file, falling back to defaults when the file is
// absent. A present but unreadable file is an error.
func LoadPolicy(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultPolicy(), nil
		}
		return nil, fmt.Errorf("read schedule policy: %w", err)
	}

	policy := DefaultPolicy()
	if err := yaml.Unmarshal(data, policy); err != nil {
		return nil, fmt.Errorf("parse schedule policy: %w", err)
	}

	if err := policy.validate(); err != nil {
		return nil, fmt.Errorf("invalid schedule policy: %w", err)
	}

	return policy, nil
}

func (p *Policy) validate() error {
	for _, window := range []ShiftWindow{p.Morning, p.Afternoon} {
		start, err := ParseClockTime(window.Start)
		if err != nil {
			return err
		}
		end, err := ParseClockTime(window.End)
		if err != nil {
			return err
		}
		if ElapsedMinutes(start, end) <= 0 {
			return fmt.Errorf("shift window %s-%s has no duration", window.Start, window.End)
		}
	}
	if p.LockHour < 0 || p.LockHour > 23 {
		return fmt.Errorf("lock hour %d out of range", p.LockHour)
	}
	return nil
}

// Window returns the canonical window for a shift time
func (p *Policy) Window(shift models.ShiftTime) ShiftWindow {
	if shift == models.ShiftAfternoon {
		return p.Afternoon
	}
	return p.Morning
}

// CanonicalStart returns the canonical start time for a shift time
func (p *Policy) CanonicalStart(shift models.ShiftTime) string {
	return p.Window(shift).Start
}

// CanonicalEnd returns the canonical end time for a shift time
func (p *Policy) CanonicalEnd(shift models.ShiftTime) string {
	return p.Window(shift).End
}
