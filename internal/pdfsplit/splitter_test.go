package pdfsplit

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/paystubs-tracker/internal/pdfsplit/pdftest"
)

func collect(t *testing.T, pages *Pages) []Page {
	t.Helper()
	var out []Page
	for pages.Next() {
		out = append(out, pages.Page())
	}
	require.NoError(t, pages.Err())
	return out
}

func TestSplitter_PagesInOrderWithText(t *testing.T) {
	doc := pdftest.Build(
		pdftest.Statement("JANE DOE", "05/03/2024", "$1,234.56", "Acme Co"),
		pdftest.Statement("JOHN ROE", "06/03/2024", "$980.00", "Globex"),
		pdftest.Statement("MARY ANN", "07/03/2024", "$10.00", "Initech"),
	)

	pages, err := NewSplitter(nil).Open(context.Background(), bytes.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 3, pages.Total())

	got := collect(t, pages)
	require.Len(t, got, 3)
	for i, want := range []string{"JANE DOE", "JOHN ROE", "MARY ANN"} {
		assert.Equal(t, i+1, got[i].Number)
		assert.NoError(t, got[i].Err)
		assert.Contains(t, got[i].Text, want+"\n")
		assert.True(t, bytes.HasPrefix(got[i].Data, []byte("%PDF")), "page %d is not a pdf", i+1)
	}
	assert.Contains(t, got[0].Text, "Cheque Date: 05/03/2024\n")
}

func TestSplitter_SinglePageDocumentsStandAlone(t *testing.T) {
	doc := pdftest.Build(
		pdftest.Statement("JANE DOE", "05/03/2024", "$1.00", "Acme"),
		pdftest.Statement("JOHN ROE", "06/03/2024", "$2.00", "Acme"),
	)
	s := NewSplitter(nil)

	pages, err := s.Open(context.Background(), bytes.NewReader(doc))
	require.NoError(t, err)
	got := collect(t, pages)
	require.Len(t, got, 2)

	second, err := s.Open(context.Background(), bytes.NewReader(got[1].Data))
	require.NoError(t, err)
	assert.Equal(t, 1, second.Total())
	reread := collect(t, second)
	require.Len(t, reread, 1)
	assert.Contains(t, reread[0].Text, "JOHN ROE")
	assert.NotContains(t, reread[0].Text, "JANE DOE")
}

func TestSplitter_PageWithoutTextLayer(t *testing.T) {
	doc := pdftest.Build(nil, []string{"ALEX ROE"})

	pages, err := NewSplitter(nil).Open(context.Background(), bytes.NewReader(doc))
	require.NoError(t, err)

	got := collect(t, pages)
	require.Len(t, got, 2)
	assert.Equal(t, "", strings.TrimSpace(got[0].Text))
	assert.Contains(t, got[1].Text, "ALEX ROE")
}

func TestSplitter_MalformedInput(t *testing.T) {
	s := NewSplitter(nil)

	for name, input := range map[string][]byte{
		"empty":     nil,
		"not a pdf": []byte("hello, this is plain text"),
		"truncated": pdftest.Build([]string{"JANE DOE"})[:40],
	} {
		t.Run(name, func(t *testing.T) {
			pages, err := s.Open(context.Background(), bytes.NewReader(input))
			assert.ErrorIs(t, err, ErrMalformedDocument)
			assert.Nil(t, pages)
		})
	}
}

func TestSplitter_NotRestartable(t *testing.T) {
	doc := pdftest.Build([]string{"JANE DOE"})

	pages, err := NewSplitter(nil).Open(context.Background(), bytes.NewReader(doc))
	require.NoError(t, err)

	assert.Len(t, collect(t, pages), 1)
	assert.False(t, pages.Next())
}

func TestSplitter_StopsOnCancelledContext(t *testing.T) {
	doc := pdftest.Build([]string{"JANE DOE"}, []string{"JOHN ROE"})
	ctx, cancel := context.WithCancel(context.Background())

	pages, err := NewSplitter(nil).Open(ctx, bytes.NewReader(doc))
	require.NoError(t, err)
	require.True(t, pages.Next())
	cancel()

	assert.False(t, pages.Next())
	assert.ErrorIs(t, pages.Err(), context.Canceled)
}
