package main

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/listing"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/domain/pet"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/navigation"
	"github.com/Kilat-Pet-Delivery/client-adoption/internal/notification"
)

func TestPetsList_FiltersByLocation(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "pets", "list", "--location", "台北市")
	require.NoError(t, err)

	assert.Contains(t, out, "Bella")
	assert.Contains(t, out, "Luna")
	assert.NotContains(t, out, "Milo")
}

func TestPetsList_RejectsUnknownOption(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "pets", "list", "--size", "巨型")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid size option")
}

func TestPetsList_MarksFavorites(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "pets", "list", "--location", "高雄市")
	require.NoError(t, err)
	assert.Contains(t, out, "♥")
}

func TestPetsShow_JSON(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "pets", "show", "1", "--json")
	require.NoError(t, err)

	var p pet.Pet
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, "Bella", p.Name)
}

func TestPetsShow_NotFoundUsesBackendMessage(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "pets", "show", "404")
	require.Error(t, err)
	assert.Equal(t, "找不到寵物", err.Error())
}

func TestPetsContact_OpensShelterThread(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "pets", "contact", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "thread "+navigation.ThreadBella)
}

func TestHome(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "home")
	require.NoError(t, err)
	assert.Contains(t, out, "Bella")
	assert.Contains(t, out, "Lucky")
}

func TestMe_PrefersConfiguredEmail(t *testing.T) {
	h := newHarness(t)
	h.cfg.UserEmail = "me@example.com"

	out, err := h.run(t, "me")
	require.NoError(t, err)
	assert.Contains(t, out, "王小明")
	assert.Contains(t, out, "me@example.com")
}

func TestFavoritesToggle(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "favorites", "toggle", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "added")

	out, err = h.run(t, "favorites", "toggle", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "removed")

	h.backend.mu.Lock()
	defer h.backend.mu.Unlock()
	assert.Equal(t, map[string]bool{"1": true}, h.backend.favorites)
}

func TestFavoritesList(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "favorites", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Milo")
	assert.NotContains(t, out, "Bella")
}

func TestApplicationsSubmit(t *testing.T) {
	h := newHarness(t)
	h.cfg.UserEmail = "ming@example.com"

	out, err := h.run(t, "applications", "submit", "1",
		"--name", "王小明", "--phone", "0912345678", "--agree", "--housing", "apartment")
	require.NoError(t, err)
	assert.Contains(t, out, "申請已送出")

	h.backend.mu.Lock()
	defer h.backend.mu.Unlock()
	require.Len(t, h.backend.applications, 1)
	got := h.backend.applications[0]
	assert.Equal(t, "1", got.PetID)
	assert.Equal(t, "ming@example.com", got.Email)
	assert.Equal(t, "fence", got.OutdoorSpace)
}

func TestApplicationsSubmit_RequiresAgreement(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "applications", "submit", "1", "--name", "王小明", "--phone", "0912345678")
	require.Error(t, err)

	h.backend.mu.Lock()
	defer h.backend.mu.Unlock()
	assert.Empty(t, h.backend.applications)
}

func TestListingsStatus(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "listings", "status", "l1", "inactive")
	require.NoError(t, err)
	assert.Contains(t, out, listing.StatusInactive.Label())
}

func TestListingsStatus_AdoptedIsFinal(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "listings", "status", "l2", "active")
	require.ErrorIs(t, err, listing.ErrInvalidTransition)
}

func TestMessagesSend(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "messages", "send", "t1", "請問", "還在嗎")
	require.NoError(t, err)
	assert.Contains(t, out, "請問 還在嗎")

	h.backend.mu.Lock()
	defer h.backend.mu.Unlock()
	assert.Len(t, h.backend.messages["t1"], 2)
}

func TestMessagesThreads_Unread(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "messages", "threads", "--unread")
	require.NoError(t, err)
	assert.Contains(t, out, "快樂爪收容所")
	assert.NotContains(t, out, "毛孩之家")
}

func TestMessagesAnnounce_RequiresBrokers(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "messages", "announce", "t1", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADOPT_KAFKA_BROKERS")
}

func TestWatch_ShowsDemoBanner(t *testing.T) {
	h := newHarness(t)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	out, err := h.exec(ctx, t, "watch")
	require.NoError(t, err)
	assert.Contains(t, out, "快樂爪收容所")
	assert.Contains(t, out, "1 unread")
}

func TestWatch_OpenPrintsBannerThenThread(t *testing.T) {
	h := newHarness(t)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	out, err := h.exec(ctx, t, "watch", "--open")
	require.NoError(t, err)

	bannerAt := strings.Index(out, "1 unread")
	threadAt := strings.Index(out, "thread "+notification.Demo.ThreadID)
	require.GreaterOrEqual(t, bannerAt, 0)
	require.GreaterOrEqual(t, threadAt, 0)
	assert.Less(t, bannerAt, threadAt)
}
