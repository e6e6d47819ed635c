package cfgloader

import (
	"encoding/json"

	"github.com/rise-and-shine/wrapkit/logger"
	"github.com/rise-and-shine/wrapkit/mask"
)

// printConfig logs the loaded config with `mask:"true"` fields hidden.
func printConfig(config any) {
	masked := mask.StructToOrdMap(config)

	out, err := json.MarshalIndent(masked, "", "  ")
	if err != nil {
		logger.With("error", err.Error()).Warn("failed to marshal config for printing")
		return
	}

	logger.Named("cfgloader").Infof("loaded config:\n%s", string(out))
}
