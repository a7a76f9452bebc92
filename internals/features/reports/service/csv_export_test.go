package service

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	matModel "buildops_backend/internals/features/jobs/materials/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	return &t
}

func readAll(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	r := csv.NewReader(buf)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteMaterialsCSV(t *testing.T) {
	materials := []matModel.MaterialModel{
		{MaterialName: "Quartz slab", MaterialQty: "2", MaterialVendor: "StoneCo",
			MaterialStatus: matModel.MaterialStatusOrdered, MaterialDeliveryDate: datePtr(2025, time.June, 16)},
		{MaterialName: "Hinges", MaterialQty: "40", MaterialVendor: "HardwareHut",
			MaterialStatus: matModel.MaterialStatusNotOrdered, MaterialOrderByDate: datePtr(2025, time.June, 12)},
		{MaterialName: "Shims", MaterialQty: "1 box",
			MaterialStatus: matModel.MaterialStatusAtShop},
	}

	t.Run("flat export keeps input order", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteMaterialsCSV(&buf, "Smith Kitchen", materials, false))
		rows := readAll(t, &buf)

		require.Len(t, rows, 5) // title, header, 3 materials
		assert.Equal(t, "Materials: Smith Kitchen", rows[0][0])
		assert.Equal(t, "Material", rows[1][0])
		assert.Equal(t, "Quartz slab", rows[2][0])
		assert.Equal(t, "2025-06-16", rows[2][5]) // delivery column
		assert.Equal(t, "Hinges", rows[3][0])
		assert.Equal(t, "", rows[3][5])
	})

	t.Run("vendor grouping buckets under sorted headers", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteMaterialsCSV(&buf, "Smith Kitchen", materials, true))
		rows := readAll(t, &buf)

		// title, header, then: (no vendor) header + shims, HardwareHut header +
		// hinges, StoneCo header + slab
		require.Len(t, rows, 8)
		assert.Equal(t, "-- (no vendor) (1 items)", rows[2][0])
		assert.Equal(t, "Shims", rows[3][0])
		assert.Equal(t, "-- HardwareHut (1 items)", rows[4][0])
		assert.Equal(t, "Hinges", rows[5][0])
		assert.Equal(t, "-- StoneCo (1 items)", rows[6][0])
		assert.Equal(t, "Quartz slab", rows[7][0])
	})
}

func TestWriteTimeEntriesCSV(t *testing.T) {
	rows := []TimeEntryExportRow{
		{UserName: "Dana", JobName: "Smith Kitchen", WorkDate: time.Date(2025, time.June, 2, 0, 0, 0, 0, time.Local), Hours: 8, Description: "demo"},
		{UserName: "Lee", JobName: "Oak Bath", WorkDate: time.Date(2025, time.June, 3, 0, 0, 0, 0, time.Local), Hours: 6.5, Description: "tile prep"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTimeEntriesCSV(&buf, "2025-06-01", "2025-06-07", rows))
	got := readAll(t, &buf)

	require.Len(t, got, 5) // title, header, 2 rows, total
	assert.Equal(t, "Time entries 2025-06-01 to 2025-06-07", got[0][0])
	assert.Equal(t, []string{"2025-06-02", "Dana", "Smith Kitchen", "8.00", "demo"}, got[2])
	assert.Equal(t, []string{"2025-06-03", "Lee", "Oak Bath", "6.50", "tile prep"}, got[3])
	assert.Equal(t, "Total", got[4][2])
	assert.Equal(t, "14.50", got[4][3])
}
