package records

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func frequencyJSON(t *testing.T, frequency map[string]int) string {
	t.Helper()

	data, err := json.Marshal(frequency)
	require.NoError(t, err)
	return string(data)
}
