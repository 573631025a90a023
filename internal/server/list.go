package server

import (
	"github.com/mj1618/cute-borders/internal/config"
	"github.com/mj1618/cute-borders/internal/engine"
	"github.com/mj1618/cute-borders/internal/model"
	"github.com/mj1618/cute-borders/internal/output"
)

// BuildList turns a plan into the `list` output shape.
func BuildList(decisions []engine.Decision, cfg config.Config, fg model.Handle) output.ListResult {
	res := output.ListResult{
		Rainbow: cfg.RainbowEnabled(),
		Windows: make([]output.WindowRow, 0, len(decisions)),
	}
	if fg != 0 {
		res.Foreground = fg.String()
	}
	for _, d := range decisions {
		res.Windows = append(res.Windows, output.WindowRow{
			Handle:   d.Window.Handle.String(),
			Title:    d.Window.Title,
			Class:    d.Window.Class,
			PID:      d.Window.PID,
			Active:   d.Active,
			Rule:     d.Resolution.Rule,
			ActiveC:  colorLabel(d.Resolution.Active),
			Inactive: colorLabel(d.Resolution.Inactive),
			Paint:    paintLabel(d),
		})
	}
	return res
}

func colorLabel(c model.ColorSpec) string {
	switch c.Kind {
	case model.ColorDefault:
		return "default"
	case model.ColorNone:
		if c.Raw != "" {
			return "invalid(" + c.Raw + ")"
		}
		return "none"
	default:
		return c.String()
	}
}

// paintLabel names the paint for d. A rainbow slot planned without an
// animator reads "rainbow" rather than "none".
func paintLabel(d engine.Decision) string {
	spec := d.Resolution.Inactive
	if d.Active {
		spec = d.Resolution.Active
	}
	if !d.Paint.Valid() && spec.Kind == model.ColorRainbow {
		return model.RainbowToken
	}
	return d.Paint.String()
}
