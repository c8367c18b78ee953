package sbctx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/isometry/statusbars/pkg/sbctx"
)

func TestViper(t *testing.T) {
	v := sbctx.NewViper()
	v.Set("statusbars.barWidth", 25)

	ctx := sbctx.ContextWithViper(context.Background(), v)
	assert.Same(t, v, sbctx.Viper(ctx))
	assert.Equal(t, 25, sbctx.Viper(ctx).GetInt("statusbars.barWidth"))

	assert.Panics(t, func() { sbctx.Viper(context.Background()) })
}

func TestGroup(t *testing.T) {
	assert.Equal(t, "", sbctx.GroupFromContext(context.Background()))

	ctx := sbctx.ContextWithGroup(context.Background(), "statusbars")
	assert.Equal(t, "statusbars", sbctx.GroupFromContext(ctx))
}
