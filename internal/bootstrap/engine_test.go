package bootstrap

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/shopdesk/internal/catalog"
	"github.com/angelmondragon/shopdesk/pkg/config"
	"github.com/angelmondragon/shopdesk/pkg/enums"
)

func testConfig(driver string) *config.Config {
	return &config.Config{
		Store: config.StoreConfig{Driver: driver, DSN: "file:bootstrap_test?mode=memory&cache=shared", MaxOpenConns: 1},
		LLM:   config.LLMConfig{Provider: config.LLMProviderMock, Model: "test"},
	}
}

func TestBuildMemory(t *testing.T) {
	engine, err := Build(context.Background(), Params{Config: testConfig(config.StoreDriverMemory), Registerer: prometheus.NewRegistry()})
	require.NoError(t, err)
	defer engine.Close()

	assert.Nil(t, engine.DB)
	assert.Nil(t, engine.Redis)
	assert.Equal(t, "test-mock", engine.Generator.Model())

	report, err := engine.Inventory.LookupStock(context.Background(), "PROD001")
	require.NoError(t, err)
	assert.Equal(t, "PROD001", report.SKU)
}

func TestBuildSQLite(t *testing.T) {
	engine, err := Build(context.Background(), Params{Config: testConfig(config.StoreDriverSQLite)})
	require.NoError(t, err)
	defer engine.Close()

	require.NotNil(t, engine.DB)
	require.NoError(t, engine.DB.Ping(context.Background()))

	result, err := engine.Orders.Transition(context.Background(), "ORD002", "ship")
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusShipped, result.Order.Status)
}

func TestBuildRejectsInvalidSeed(t *testing.T) {
	seed := catalog.DefaultSeed()
	seed.Products = append(seed.Products, seed.Products[0])

	_, err := Build(context.Background(), Params{Config: testConfig(config.StoreDriverMemory), Seed: &seed})
	require.Error(t, err)
}

func TestBuildRequiresConfig(t *testing.T) {
	_, err := Build(context.Background(), Params{})
	require.Error(t, err)
}
