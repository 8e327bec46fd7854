package clevercloud_test

import (
	"testing"

	"github.com/fivetwenty-io/clevercloud/pkg/clevercloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddonProviderID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected clevercloud.AddonProviderID
	}{
		{name: "postgresql", input: "postgresql-addon", expected: clevercloud.AddonProviderPostgreSQL},
		{name: "redis", input: "redis-addon", expected: clevercloud.AddonProviderRedis},
		{name: "mysql", input: "mysql-addon", expected: clevercloud.AddonProviderMySQL},
		{name: "mongodb", input: "mongodb-addon", expected: clevercloud.AddonProviderMongoDB},
		{name: "pulsar", input: "addon-pulsar", expected: clevercloud.AddonProviderPulsar},
		{name: "config provider", input: "config-provider", expected: clevercloud.AddonProviderConfigProvider},
		{name: "elasticsearch", input: "es-addon", expected: clevercloud.AddonProviderElasticSearch},
		{name: "mixed case", input: "PostgreSQL-Addon", expected: clevercloud.AddonProviderPostgreSQL},
		{name: "surrounding whitespace", input: " redis-addon ", expected: clevercloud.AddonProviderRedis},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, err := clevercloud.ParseAddonProviderID(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}

	t.Run("unknown identifier fails", func(t *testing.T) {
		t.Parallel()

		_, err := clevercloud.ParseAddonProviderID("cassandra-addon")
		require.ErrorIs(t, err, clevercloud.ErrInvalidProviderID)
	})
}
