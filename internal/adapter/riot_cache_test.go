// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-riot-proxy/internal/mock"
	"github.com/MKhiriev/go-riot-proxy/internal/store"
	"github.com/MKhiriev/go-riot-proxy/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const cacheTTL = time.Hour

func newTestCachingAdapter(t *testing.T) (RiotAdapter, *mock.MockRiotAdapter, *mock.MockResponseCache) {
	t.Helper()
	ctrl := gomock.NewController(t)
	inner := mock.NewMockRiotAdapter(ctrl)
	cache := mock.NewMockResponseCache(ctrl)

	return NewCachingRiotAdapter(inner, cache, cacheTTL), inner, cache
}

func TestCachingRiotAdapter_Hit(t *testing.T) {
	a, _, cache := newTestCachingAdapter(t)
	ctx := context.Background()

	cache.EXPECT().Get(ctx, "match:EUW1_1").Return([]byte(`{"info":{}}`), nil)

	resp, err := a.MatchByID(ctx, "EUW1_1")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"info":{}}`, string(resp.Body))
}

func TestCachingRiotAdapter_MissStoresSuccess(t *testing.T) {
	a, inner, cache := newTestCachingAdapter(t)
	ctx := context.Background()
	upstream := models.UpstreamResponse{StatusCode: http.StatusOK, Body: []byte(`{"metadata":{}}`)}

	gomock.InOrder(
		cache.EXPECT().Get(ctx, "match:EUW1_2").Return(nil, store.ErrCacheMiss),
		inner.EXPECT().MatchByID(ctx, "EUW1_2").Return(upstream, nil),
		cache.EXPECT().Set(ctx, "match:EUW1_2", upstream.Body, cacheTTL).Return(nil),
	)

	resp, err := a.MatchByID(ctx, "EUW1_2")

	require.NoError(t, err)
	assert.Equal(t, upstream, resp)
}

func TestCachingRiotAdapter_ErrorStatusNotStored(t *testing.T) {
	a, inner, cache := newTestCachingAdapter(t)
	ctx := context.Background()
	upstream := models.UpstreamResponse{StatusCode: http.StatusNotFound, Body: []byte(`{"status":{"status_code":404}}`)}

	cache.EXPECT().Get(ctx, "match:EUW1_3").Return(nil, store.ErrCacheMiss)
	inner.EXPECT().MatchByID(ctx, "EUW1_3").Return(upstream, nil)

	resp, err := a.MatchByID(ctx, "EUW1_3")

	require.NoError(t, err)
	assert.Equal(t, upstream, resp)
}

func TestCachingRiotAdapter_UpstreamErrorPropagates(t *testing.T) {
	a, inner, cache := newTestCachingAdapter(t)
	ctx := context.Background()

	cache.EXPECT().Get(ctx, "match:EUW1_4").Return(nil, store.ErrCacheMiss)
	inner.EXPECT().MatchByID(ctx, "EUW1_4").Return(models.UpstreamResponse{}, ErrUpstreamUnavailable)

	_, err := a.MatchByID(ctx, "EUW1_4")

	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestCachingRiotAdapter_CacheFailuresAreIgnored(t *testing.T) {
	a, inner, cache := newTestCachingAdapter(t)
	ctx := context.Background()
	upstream := models.UpstreamResponse{StatusCode: http.StatusOK, Body: []byte(`{}`)}
	cacheDown := errors.New("redis down")

	cache.EXPECT().Get(ctx, "match:EUW1_5").Return(nil, cacheDown)
	inner.EXPECT().MatchByID(ctx, "EUW1_5").Return(upstream, nil)
	cache.EXPECT().Set(ctx, "match:EUW1_5", upstream.Body, cacheTTL).Return(cacheDown)

	resp, err := a.MatchByID(ctx, "EUW1_5")

	require.NoError(t, err)
	assert.Equal(t, upstream, resp)
}

func TestCachingRiotAdapter_OtherCallsPassThrough(t *testing.T) {
	a, inner, _ := newTestCachingAdapter(t)
	ctx := context.Background()
	upstream := models.UpstreamResponse{StatusCode: http.StatusOK, Body: []byte(`["EUW1_1"]`)}

	inner.EXPECT().MatchIDsByPUUID(ctx, "puuid", models.DefaultMatchWindow).Return(upstream, nil)

	resp, err := a.MatchIDsByPUUID(ctx, "puuid", models.DefaultMatchWindow)

	require.NoError(t, err)
	assert.Equal(t, upstream, resp)
}
