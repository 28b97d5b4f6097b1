package api

import (
	"net/http"
	"testing"

	"crypto_wallet/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNews(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/news", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var articles []domain.NewsArticle
	decodeBody(t, w, &articles)
	require.Len(t, articles, 2)
	assert.Equal(t, "Bitcoin Hits New All-Time High!", articles[0].Title)
	assert.NotEmpty(t, articles[0].Source)
	assert.NotEmpty(t, articles[1].FullContent)
}
