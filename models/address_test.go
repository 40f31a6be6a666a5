package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressSnapshot(t *testing.T) {
	phone := "+1-555-0100"
	addr := Address{
		Label:     "Home",
		FirstName: "Ade",
		LastName:  "Shopper",
		Street:    "12 Market Lane",
		City:      "Springfield",
		State:     "IL",
		Zip:       "62701",
		Country:   "US",
		Phone:     &phone,
	}

	snapshot := addr.Snapshot()

	assert.Equal(t, "Home", snapshot["label"])
	assert.Equal(t, "Ade", snapshot["first_name"])
	assert.Equal(t, "62701", snapshot["zip"])
	assert.Equal(t, &phone, snapshot["phone"])

	// The snapshot has to survive the round trip onto the order row
	raw, err := json.Marshal(snapshot)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"street":"12 Market Lane"`)
}
