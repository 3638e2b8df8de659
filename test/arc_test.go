package architecture_test

import (
	"testing"

	"github.com/mstrYoda/go-arctest/pkg/arctest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mod = `github\.com/Nazarious-ucu/weather-forecast-app`

func TestLayeredArchitecture(t *testing.T) {
	arch, err := arctest.New("../")
	require.NoError(t, err)

	err = arch.ParsePackages()
	require.NoError(t, err, "failed to parse packages")

	domainLayer, err := arctest.NewLayer("domain", `^`+mod+`/internal/models`)
	require.NoError(t, err)

	serviceLayer, err := arctest.NewLayer("service",
		`^`+mod+`/internal/(services/weather|render|client)`)
	require.NoError(t, err)

	transportLayer, err := arctest.NewLayer("transport", `^`+mod+`/internal/handlers`)
	require.NoError(t, err)

	infraLayer, err := arctest.NewLayer("infrastructure",
		`^`+mod+`/internal/(config|services/metrics|services/logger)`,
		`^`+mod+`/pkg/logger`,
	)
	require.NoError(t, err)

	layered := arch.NewLayeredArchitecture(domainLayer, serviceLayer, transportLayer, infraLayer)

	err = serviceLayer.DependsOnLayer(domainLayer)
	assert.NoError(t, err)

	err = transportLayer.DependsOnLayer(domainLayer)
	assert.NoError(t, err)

	err = transportLayer.DependsOnLayer(serviceLayer)
	assert.NoError(t, err)

	violations, err := layered.Check()
	require.NoError(t, err)

	for _, v := range violations {
		assert.Failf(t, "", "violation: %s", v)
	}
}
