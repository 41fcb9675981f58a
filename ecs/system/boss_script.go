package system

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/bossarena/ecs/component"
)

// ScriptSelector asks a tengo script which attack to use. The script sees
// target_x, target_y, platform_line and phase, and sets attack to "swipe" or
// "drop". Anything else, or a runtime error, falls back to the threshold rule.
type ScriptSelector struct {
	name     string
	compiled *tengo.Compiled
	fallback AttackSelector
	logger   *slog.Logger
}

func NewScriptSelector(name string, src []byte, logger *slog.Logger) (*ScriptSelector, error) {
	if logger == nil {
		logger = slog.Default()
	}

	script := tengo.NewScript(src)
	_ = script.Add("target_x", 0.0)
	_ = script.Add("target_y", 0.0)
	_ = script.Add("platform_line", 0.0)
	_ = script.Add("phase", 0)
	_ = script.Add("attack", "")

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("boss script %s: compile: %w", name, err)
	}

	return &ScriptSelector{
		name:     name,
		compiled: compiled,
		fallback: ThresholdSelector{},
		logger:   logger,
	}, nil
}

func (s *ScriptSelector) SelectAttack(ctx AttackContext) component.ManeuverKind {
	attack, err := s.run(ctx)
	if err != nil {
		s.logger.Warn("boss script failed, using threshold", "script", s.name, "err", err)
		return s.fallback.SelectAttack(ctx)
	}

	switch attack {
	case "swipe":
		return component.ManeuverSwipe
	case "drop":
		return component.ManeuverDrop
	default:
		s.logger.Warn("boss script chose unknown attack, using threshold", "script", s.name, "attack", attack)
		return s.fallback.SelectAttack(ctx)
	}
}

func (s *ScriptSelector) run(ctx AttackContext) (string, error) {
	if err := s.compiled.Set("target_x", ctx.Target.X); err != nil {
		return "", err
	}
	if err := s.compiled.Set("target_y", ctx.Target.Y); err != nil {
		return "", err
	}
	if err := s.compiled.Set("platform_line", ctx.PlatformLine); err != nil {
		return "", err
	}
	if err := s.compiled.Set("phase", int(ctx.Phase)); err != nil {
		return "", err
	}
	if err := s.compiled.Set("attack", ""); err != nil {
		return "", err
	}
	if err := s.compiled.Run(); err != nil {
		return "", err
	}
	return strings.ToLower(strings.TrimSpace(s.compiled.Get("attack").String())), nil
}
