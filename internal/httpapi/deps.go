package httpapi

import (
	"sync/atomic"

	"shopscout-engine/internal/config"
	"shopscout-engine/internal/events"
	"shopscout-engine/internal/pipeline"
)

type Deps struct {
	Hub *events.Hub

	// CfgVal stores config.Config; updated on PUT /config
	CfgVal *atomic.Value

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// BuildEngine assembles a pipeline for a config snapshot, so a saved
	// config takes effect on the next search without a restart.
	BuildEngine func(cfg config.Config) *pipeline.Engine
}
