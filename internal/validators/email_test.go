package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Only the structural short-circuits are asserted here; resolving domains
// would make the test depend on live DNS.
func TestIsDeliverableEmail(t *testing.T) {
	t.Run("no at sign", func(t *testing.T) {
		assert.False(t, IsDeliverableEmail("alex.example.com"))
	})

	t.Run("empty domain", func(t *testing.T) {
		assert.False(t, IsDeliverableEmail("alex@"))
	})

	t.Run("empty address", func(t *testing.T) {
		assert.False(t, IsDeliverableEmail(""))
	})
}
