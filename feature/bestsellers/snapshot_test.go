package bestsellers

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/overview.json")
	require.NoError(t, err)
	return data
}

func TestDecode(t *testing.T) {
	t.Run("Fixture", func(t *testing.T) {
		overview, err := Decode(loadFixture(t))
		require.NoError(t, err)
		assert.Equal(t, "OK", overview.Status)
		assert.Equal(t, "2025-10-05", overview.Results.PublishedDate)
		require.Len(t, overview.Results.Lists, 3)
		assert.Equal(t, "combined-print-and-e-book-fiction", overview.Results.Lists[0].ID)
		assert.Len(t, overview.Results.Lists[0].Books, 3)
	})

	t.Run("EmptyLists", func(t *testing.T) {
		overview, err := Decode([]byte(`{"results":{"lists":[]}}`))
		require.NoError(t, err)
		assert.Empty(t, overview.Results.Lists)
	})

	shapes := map[string]string{
		"NoResults":    `{"status":"OK"}`,
		"NoLists":      `{"results":{"published_date":"2025-10-05"}}`,
		"NullLists":    `{"results":{"lists":null}}`,
		"ObjectLists":  `{"results":{"lists":{}}}`,
		"NullResults":  `{"results":null}`,
		"FaultPayload": `{"fault":{"faultstring":"Invalid ApiKey"}}`,
	}
	for name, body := range shapes {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(body))
			assert.ErrorIs(t, err, ErrUnexpectedShape)
		})
	}

	t.Run("InvalidJSON", func(t *testing.T) {
		_, err := Decode([]byte(`{"results":`))
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrUnexpectedShape)
	})
}

func TestOverview_Index(t *testing.T) {
	overview := &Overview{}
	overview.Results.Lists = []List{
		{ID: "a", Name: "first"},
		{ID: "", Name: "unnamed"},
		{ID: "a", Name: "second"},
		{ID: "b", Name: "b"},
	}

	index := overview.Index()
	assert.Len(t, index, 2)
	assert.Equal(t, "first", index["a"].Name)
	assert.Contains(t, index, "b")
}
