package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryRow(t *testing.T) {
	tests := []struct {
		name string
		line string
		want OverviewRow
	}{
		{
			name: "three fields",
			line: "Alpha | 2009-05-12 10:11:12 | Updated: True",
			want: OverviewRow{Name: "Alpha", Fields: []string{"2009-05-12 10:11:12", "Updated: True"}},
		},
		{
			name: "missing fields are empty",
			line: "Beta",
			want: OverviewRow{Name: "Beta", Fields: []string{"", ""}},
		},
		{
			name: "extra fields dropped",
			line: "Gamma | a | b | c",
			want: OverviewRow{Name: "Gamma", Fields: []string{"a", "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SummaryRow(tt.line)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got.Cells(), 3)
		})
	}
}

func TestDetailedRow(t *testing.T) {
	row := DetailedRow(DataCollection{
		Name:             "Alpha",
		Description:      "x",
		CreationDate:     "1960",
		ModificationDate: "2080",
		Updated:          false,
	})

	assert.Equal(t, []string{"Alpha", "x", "1960", "2080", "false"}, row.Cells())
	assert.Len(t, DetailedHeader, len(row.Cells()))
}

func decodeKeys(t *testing.T, v any) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	return m
}

func TestBackupRequest_DateOmittedOnlyWhenEmpty(t *testing.T) {
	body := decodeKeys(t, BackupRequest{CollectionName: "Alpha", BackupName: "snap1", BackupLocation: "/srv"})
	assert.NotContains(t, body, "backup_date")

	body = decodeKeys(t, BackupRequest{CollectionName: "Alpha", BackupName: "snap1", BackupLocation: "/srv", BackupDate: "2024-01-02"})
	assert.Equal(t, "2024-01-02", body["backup_date"])
}

func TestCollectionRequest_EmptyDatesOmitted(t *testing.T) {
	body := decodeKeys(t, CollectionRequest{Name: "Alpha", Description: "x", Updated: false})

	assert.NotContains(t, body, "creation_date")
	assert.NotContains(t, body, "modification_date")
	assert.Equal(t, false, body["updated"], "false must still be sent")
}

func TestEditRequest_SendsWholeFieldSet(t *testing.T) {
	body := decodeKeys(t, EditRequest{CollectionName: "Alpha", Name: "Alpha"})

	for _, key := range []string{"collection_name", "name", "description", "creation_date", "modification_date", "updated"} {
		assert.Contains(t, body, key)
	}
}
