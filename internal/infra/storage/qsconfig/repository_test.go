package qsconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayByVenueAndWeekdayQuery_DeterministicOnDuplicates(t *testing.T) {
	query, args, err := dayByVenueAndWeekdayQuery("revolver-upstairs", 5)

	require.NoError(t, err)

	// дубликаты (venue_id, day_of_week) возможны без уникального constraint-а:
	// lookup обязан выбирать старейшую строку, а не произвольную
	assert.Contains(t, query, "ORDER BY id ASC")
	assert.Contains(t, query, "LIMIT 1")

	assert.Contains(t, query, "FROM qs_config_days")
	assert.ElementsMatch(t, []interface{}{"revolver-upstairs", 5}, args)
}
