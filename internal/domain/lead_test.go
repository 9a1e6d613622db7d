package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadStatusIsValid(t *testing.T) {
	valid := []LeadStatus{
		LeadStatusNew, LeadStatusContacted, LeadStatusQualified,
		LeadStatusConverted, LeadStatusUnqualified,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), "expected %s to be valid", s)
	}

	assert.False(t, LeadStatus("archived").IsValid())
	assert.False(t, LeadStatus("").IsValid())
}

func TestLeadStatusCanTransitionTo(t *testing.T) {
	testCases := []struct {
		name    string
		from    LeadStatus
		to      LeadStatus
		allowed bool
	}{
		{"new to contacted", LeadStatusNew, LeadStatusContacted, true},
		{"new to qualified skips a stage", LeadStatusNew, LeadStatusQualified, true},
		{"new to converted skips stages", LeadStatusNew, LeadStatusConverted, true},
		{"contacted to qualified", LeadStatusContacted, LeadStatusQualified, true},
		{"qualified to converted", LeadStatusQualified, LeadStatusConverted, true},
		{"converted to new is backward", LeadStatusConverted, LeadStatusNew, false},
		{"qualified to contacted is backward", LeadStatusQualified, LeadStatusContacted, false},
		{"contacted to new is backward", LeadStatusContacted, LeadStatusNew, false},
		{"same status is not a transition", LeadStatusNew, LeadStatusNew, false},
		{"new to unqualified", LeadStatusNew, LeadStatusUnqualified, true},
		{"contacted to unqualified", LeadStatusContacted, LeadStatusUnqualified, true},
		{"qualified to unqualified", LeadStatusQualified, LeadStatusUnqualified, true},
		{"converted stays converted", LeadStatusConverted, LeadStatusUnqualified, false},
		{"unqualified is terminal", LeadStatusUnqualified, LeadStatusContacted, false},
		{"unqualified to unqualified", LeadStatusUnqualified, LeadStatusUnqualified, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestLeadStatusTimestampColumn(t *testing.T) {
	assert.Equal(t, "contacted_at", LeadStatusContacted.TimestampColumn())
	assert.Equal(t, "qualified_at", LeadStatusQualified.TimestampColumn())
	assert.Equal(t, "converted_at", LeadStatusConverted.TimestampColumn())
	assert.Empty(t, LeadStatusNew.TimestampColumn())
	assert.Empty(t, LeadStatusUnqualified.TimestampColumn())
}

func TestLeadValidate(t *testing.T) {
	lead := &Lead{
		EmailHash: "abc123",
		Status:    LeadStatusNew,
		Score:     72,
	}
	require.NoError(t, lead.Validate())

	missingHash := &Lead{Status: LeadStatusNew, Score: 50}
	require.Error(t, missingHash.Validate())

	badStatus := &Lead{EmailHash: "abc123", Status: "weird", Score: 50}
	require.Error(t, badStatus.Validate())

	badScore := &Lead{EmailHash: "abc123", Status: LeadStatusNew, Score: 120}
	require.Error(t, badScore.Validate())
}

func TestPaginationNormalize(t *testing.T) {
	p := Pagination{}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, "created_at", p.SortBy)
	assert.Equal(t, "desc", p.SortOrder)

	p = Pagination{Page: 3, Limit: 500, SortBy: "score", SortOrder: "asc"}
	p.Normalize()
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 100, p.Limit)
	assert.Equal(t, "score", p.SortBy)
	assert.Equal(t, "asc", p.SortOrder)

	p = Pagination{SortOrder: "sideways"}
	p.Normalize()
	assert.Equal(t, "desc", p.SortOrder)
}
