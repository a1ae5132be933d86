// Package analysis wires the picker pipeline together: record in, picks out.
package analysis

import (
	"github.com/claraeyoon/phasenet-go/internal/conf"
	"github.com/claraeyoon/phasenet-go/internal/phasenet"
)

// buildNetwork instantiates the picker network from the model settings.
//
// Parameters are stand-in deterministic values; trained weights are
// installed by the embedding application through the parameter setters.
func buildNetwork(settings *conf.Settings) (*phasenet.PhaseNet, error) {
	cfg := phasenet.DefaultNetworkConfig()
	cfg.InChannels = settings.Model.InChannels
	cfg.WindowSamples = settings.Model.WindowSamples
	cfg.Phases = settings.Model.Phases
	cfg.Classes = len(settings.Model.Phases)

	network, err := phasenet.New(cfg)
	if err != nil {
		return nil, err
	}
	network.InitDeterministic(1)
	return network, nil
}
