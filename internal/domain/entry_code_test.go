package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tirasundara/csv2txf/internal/domain"
)

func TestValidateEntryCodes(t *testing.T) {
	require.NoError(t, domain.ValidateEntryCodes())
}

func TestEntryCodeFor(t *testing.T) {
	tests := []struct {
		term      domain.Term
		reporting domain.Reporting
		want      domain.EntryCode
	}{
		{domain.ShortTerm, domain.BasisReported, 321},
		{domain.ShortTerm, domain.BasisNotReported, 711},
		{domain.ShortTerm, domain.NotOn1099B, 712},
		{domain.LongTerm, domain.BasisReported, 323},
		{domain.LongTerm, domain.BasisNotReported, 713},
		{domain.LongTerm, domain.NotOn1099B, 714},
	}

	for _, tt := range tests {
		got := domain.EntryCodeFor(tt.term, tt.reporting)
		assert.Equal(t, tt.want, got, "%s reporting %d", tt.term, tt.reporting)
		assert.True(t, got.IsValid())
		assert.Equal(t, tt.term, got.Term())
	}
}

func TestEntryCodeFor_Unknown(t *testing.T) {
	got := domain.EntryCodeFor(domain.Term(7), domain.BasisReported)

	assert.Equal(t, domain.UnknownEntryCode, got)
	assert.False(t, got.IsValid())
}

func TestTermString(t *testing.T) {
	assert.Equal(t, "short-term", domain.ShortTerm.String())
	assert.Equal(t, "long-term", domain.LongTerm.String())
	assert.Equal(t, "Term(5)", domain.Term(5).String())
}
