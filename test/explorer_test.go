//go:build integration

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/workoutexplorer/internal/explorer"
	"github.com/2beens/workoutexplorer/internal/favorites"
	pkgtesting "github.com/2beens/workoutexplorer/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path string, out any) int {
	t := s.T()

	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s%s", serverEndpoint, path), nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.Unmarshal(respBytes, out))
	}

	return resp.StatusCode
}

func (s *IntegrationTestSuite) TestReferenceAndSelection() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	var ref explorer.ReferenceResponse
	require.Equal(t, http.StatusOK, s.doRequest(ctx, http.MethodGet, "/reference", &ref))
	assert.Len(t, ref.Categories, 3)
	assert.Len(t, ref.Languages, 3)

	var sel explorer.SelectionResponse
	require.Equal(t, http.StatusOK, s.doRequest(ctx, http.MethodPut, "/selection/category/10", &sel))
	require.Equal(t, 1, sel.Total)
	assert.Equal(t, 31, sel.Exercises[0].ID)
	assert.Equal(t, "https://wger.de/media/crunches.png", sel.Exercises[0].Image)

	require.Equal(t, http.StatusOK, s.doRequest(ctx, http.MethodPut, "/selection/category/0", &sel))
	assert.Equal(t, 3, sel.Total)
}

func (s *IntegrationTestSuite) TestFavoritesStoredInRedis() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	redisCtx, rdb := pkgtesting.GetRedisClientAndCtx(t, s.redisPort)

	var sel explorer.SelectionResponse
	require.Equal(t, http.StatusOK, s.doRequest(ctx, http.MethodPut, "/selection/category/0", &sel))

	var toggle explorer.ToggleResponse
	require.Equal(t, http.StatusOK, s.doRequest(ctx, http.MethodPost, "/favorites/33/toggle", &toggle))
	assert.True(t, toggle.IsFavorite)

	stored, err := rdb.Get(redisCtx, "workout-explorer::"+favorites.StorageKey).Bytes()
	require.NoError(t, err)
	var entries []favorites.Entry
	require.NoError(t, json.Unmarshal(stored, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, 33, entries[0].ID)
	assert.Equal(t, "Curl", entries[0].Name)

	var favs explorer.FavoritesResponse
	require.Equal(t, http.StatusOK, s.doRequest(ctx, http.MethodGet, "/favorites", &favs))
	assert.Equal(t, 1, favs.Total)

	require.Equal(t, http.StatusOK, s.doRequest(ctx, http.MethodPost, "/favorites/33/toggle", &toggle))
	assert.False(t, toggle.IsFavorite)
	assert.Equal(t, 0, toggle.Total)

	stored, err = rdb.Get(redisCtx, "workout-explorer::"+favorites.StorageKey).Bytes()
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(stored))
}

func (s *IntegrationTestSuite) TestToggleRateLimited() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	var sel explorer.SelectionResponse
	require.Equal(t, http.StatusOK, s.doRequest(ctx, http.MethodPut, "/selection/category/0", &sel))

	// the limit is shared across the suite, so keep toggling until it kicks in
	limited := false
	for range toggleAllowedPerMin + 1 {
		status := s.doRequest(ctx, http.MethodPost, "/favorites/31/toggle", nil)
		if status == http.StatusTooManyRequests {
			limited = true
			break
		}
		require.Equal(t, http.StatusOK, status)
	}
	assert.True(t, limited)
}
