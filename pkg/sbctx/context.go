// Package sbctx carries per-command state through a context.Context.
package sbctx

import (
	"context"

	"github.com/spf13/viper"
)

// Context key type - struct to avoid collisions with other packages
type contextKey struct{ name string }

var (
	viperKey = contextKey{"viper"}
	groupKey = contextKey{"group"}
)

// NewViper creates an owned viper instance with :: delimiter.
// The :: delimiter keeps dotted keys such as "statusbars.barWidth" flat.
func NewViper() *viper.Viper {
	return viper.NewWithOptions(viper.KeyDelimiter("::"))
}

// ContextWithViper returns a context with viper instance stored
func ContextWithViper(ctx context.Context, v *viper.Viper) context.Context {
	return context.WithValue(ctx, viperKey, v)
}

// Viper returns the viper instance from context.
// Panics if viper was not set - this is a programming error.
func Viper(ctx context.Context) *viper.Viper {
	v, ok := ctx.Value(viperKey).(*viper.Viper)
	if !ok {
		panic("viper not found in context - must call ContextWithViper first")
	}
	return v
}

// ContextWithGroup returns a context scoped to one settings group
func ContextWithGroup(ctx context.Context, group string) context.Context {
	return context.WithValue(ctx, groupKey, group)
}

// GroupFromContext returns the settings group from context, or "" if unset
func GroupFromContext(ctx context.Context) string {
	if group, ok := ctx.Value(groupKey).(string); ok {
		return group
	}
	return ""
}
