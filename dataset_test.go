package pagesift_test

import (
	"fmt"
	"testing"

	"github.com/pagesift/pagesift"
	"github.com/stretchr/testify/assert"
)

func TestRecord_FieldCount(t *testing.T) {
	t.Parallel()

	t.Run("bookkeeping keys are not fields", func(t *testing.T) {
		t.Parallel()
		rec := pagesift.Record{
			pagesift.KeyIndex:  0,
			pagesift.KeyType:   "card",
			pagesift.KeySource: "json-ld",
		}
		assert.Equal(t, 0, rec.FieldCount())
		assert.True(t, rec.Empty())
	})

	t.Run("content fields are counted", func(t *testing.T) {
		t.Parallel()
		rec := pagesift.Record{
			pagesift.KeyIndex: 0,
			"title":           "Widget",
			"price":           "$5",
		}
		assert.Equal(t, 2, rec.FieldCount())
		assert.False(t, rec.Empty())
	})
}

func TestDataset_Cap(t *testing.T) {
	t.Parallel()

	t.Run("oversized dataset is truncated and flagged", func(t *testing.T) {
		t.Parallel()
		ds := pagesift.Dataset{ID: "list_1", Type: pagesift.DatasetList}
		for i := 0; i < pagesift.MaxDatasetRows+500; i++ {
			ds.Rows = append(ds.Rows, pagesift.Record{"text": fmt.Sprintf("row %d", i)})
		}

		ds.Cap(pagesift.MaxDatasetRows)

		assert.Len(t, ds.Rows, pagesift.MaxDatasetRows)
		assert.True(t, ds.Truncated)
		// First rows are kept in order.
		assert.Equal(t, "row 0", ds.Rows[0]["text"])
	})

	t.Run("dataset at the limit is never truncated", func(t *testing.T) {
		t.Parallel()
		ds := pagesift.Dataset{ID: "table_1", Type: pagesift.DatasetTable}
		for i := 0; i < pagesift.MaxDatasetRows; i++ {
			ds.Rows = append(ds.Rows, pagesift.Record{"text": "x"})
		}

		ds.Cap(pagesift.MaxDatasetRows)

		assert.Len(t, ds.Rows, pagesift.MaxDatasetRows)
		assert.False(t, ds.Truncated)
	})
}
