// Package rules resolves which border colours apply to a window.
package rules

import (
	"log/slog"
	"strings"

	"github.com/mj1618/cute-borders/internal/config"
	"github.com/mj1618/cute-borders/internal/model"
)

// Resolution is the colour pair chosen for one window. Both slots are
// model.ColorNone when no rule matched.
type Resolution struct {
	Active   model.ColorSpec
	Inactive model.ColorSpec
	// Rule is the index of the rule that supplied the colours, or -1.
	Rule int
}

// Matched reports whether any rule applied.
func (r Resolution) Matched() bool {
	return r.Rule >= 0
}

// Resolve walks rules in order. Global rules always match but keep scanning
// so a later Title/Class rule can override them; the first matching specific
// rule wins immediately. logger may be nil.
func Resolve(title, class string, rules []config.Rule, logger *slog.Logger) Resolution {
	res := Resolution{Rule: -1}
	titleLower := strings.ToLower(title)
	classLower := strings.ToLower(class)

	for i, rule := range rules {
		if !ruleApplies(rule, titleLower, classLower, i, logger) {
			continue
		}
		res = Resolution{Active: rule.Active, Inactive: rule.Inactive, Rule: i}
		if rule.Match != config.MatchGlobal {
			break
		}
	}
	return res
}

func ruleApplies(rule config.Rule, titleLower, classLower string, index int, logger *slog.Logger) bool {
	var field string
	switch rule.Match {
	case config.MatchGlobal:
		return true
	case config.MatchTitle:
		field = titleLower
	case config.MatchClass:
		field = classLower
	default:
		return false
	}
	if rule.Contains == nil {
		if logger != nil {
			logger.Debug("rule skipped: expected `contains`", "rule", index, "match", rule.Match.String())
		}
		return false
	}
	return strings.Contains(field, strings.ToLower(*rule.Contains))
}
